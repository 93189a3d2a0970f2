package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/KeivinIsmaili/cashcard/internal/config"
	"github.com/KeivinIsmaili/cashcard/internal/ctrl"
	"github.com/KeivinIsmaili/cashcard/internal/dto"
	mappers "github.com/KeivinIsmaili/cashcard/internal/dto/mapper"
	"github.com/KeivinIsmaili/cashcard/internal/hdl"
	"github.com/KeivinIsmaili/cashcard/internal/hdl/http/middleware"
	"github.com/KeivinIsmaili/cashcard/internal/hdl/http/utils"
	"github.com/KeivinIsmaili/cashcard/internal/hdl/validation"
	"github.com/KeivinIsmaili/cashcard/internal/model"
	metrics "github.com/KeivinIsmaili/cashcard/internal/observability/metrics/prometheus"
	"github.com/go-chi/chi/v5"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

func RegisterCashCardRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.listCashCards)
	r.Post("/", h.createCashCard)
	r.Get("/{id}", h.getCashCard)
	r.Put("/{id}", h.updateCashCard)
	r.Delete("/{id}", h.deleteCashCard)
}

func (h *Handler) getCashCard(w http.ResponseWriter, r *http.Request) {
	s, c := time.Now(), http.StatusOK
	const op = "cashcard.getCashCard.hdl"
	span := opentracing.GlobalTracer().StartSpan(op, opentracing.ChildOf(spanContext(r)))
	ctx := opentracing.ContextWithSpan(r.Context(), span)
	defer func() {
		span.Finish()
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	p, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		c = http.StatusUnauthorized
		zap.L().Error(hdl.ErrFailedToGetPrincipal.Error(), zap.String("op", op))
		utils.ErrResponse(w, c, hdl.ErrFailedToGetPrincipal)
		return
	}

	id, err := parseID(r)
	if err != nil {
		c = http.StatusBadRequest
		zap.L().Debug("failed to parse id", zap.String("op", op), zap.Error(err))
		utils.ErrResponse(w, c, ErrInvalidID)
		return
	}

	res, err := h.ctrl.GetCashCard(ctx, id, p.Name)
	if err != nil && errors.Is(err, ctrl.ErrNotFound) {
		c = http.StatusNotFound
		utils.ErrResponse(w, c, err)
		return
	} else if err != nil {
		c = http.StatusInternalServerError
		zap.L().Debug(hdl.ErrInternal.Error(), zap.String("op", op), zap.Error(err))
		utils.ErrResponse(w, c, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, c, mappers.CashCardToDTO(res))
}

func (h *Handler) createCashCard(w http.ResponseWriter, r *http.Request) {
	s, c := time.Now(), http.StatusCreated
	const op = "cashcard.createCashCard.hdl"
	span := opentracing.GlobalTracer().StartSpan(op, opentracing.ChildOf(spanContext(r)))
	ctx := opentracing.ContextWithSpan(r.Context(), span)
	defer func() {
		span.Finish()
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	p, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		c = http.StatusUnauthorized
		zap.L().Error(hdl.ErrFailedToGetPrincipal.Error(), zap.String("op", op))
		utils.ErrResponse(w, c, hdl.ErrFailedToGetPrincipal)
		return
	}

	req := &dto.CashCardRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		c = http.StatusBadRequest
		zap.L().Debug("failed to decode request", zap.String("op", op), zap.Error(err))
		utils.ErrResponse(w, c, hdl.ErrDecodeRequest)
		return
	}

	res, err := h.ctrl.CreateCashCard(ctx, p.Name, req)
	if err != nil {
		c = http.StatusInternalServerError
		zap.L().Debug(hdl.ErrInternal.Error(), zap.String("op", op), zap.Error(err))
		utils.ErrResponse(w, c, hdl.ErrInternal)
		return
	}

	w.Header().Set("Location", location(r, res.ID))
	utils.StatusResponse(w, c)
}

func (h *Handler) listCashCards(w http.ResponseWriter, r *http.Request) {
	s, c := time.Now(), http.StatusOK
	const op = "cashcard.listCashCards.hdl"
	span := opentracing.GlobalTracer().StartSpan(op, opentracing.ChildOf(spanContext(r)))
	ctx := opentracing.ContextWithSpan(r.Context(), span)
	defer func() {
		span.Finish()
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	p, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		c = http.StatusUnauthorized
		zap.L().Error(hdl.ErrFailedToGetPrincipal.Error(), zap.String("op", op))
		utils.ErrResponse(w, c, hdl.ErrFailedToGetPrincipal)
		return
	}

	page := pageRequest(r.URL.Query())
	if err := validation.ListReq(page); err != nil {
		c = http.StatusBadRequest
		zap.L().Debug("failed to validate list request", zap.String("op", op), zap.Error(err))
		utils.ErrResponse(w, c, err)
		return
	}

	res, err := h.ctrl.ListCashCards(ctx, p.Name, page)
	if err != nil {
		c = http.StatusInternalServerError
		zap.L().Debug(hdl.ErrInternal.Error(), zap.String("op", op), zap.Error(err))
		utils.ErrResponse(w, c, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, c, mappers.CashCardsToDTO(res))
}

func (h *Handler) updateCashCard(w http.ResponseWriter, r *http.Request) {
	s, c := time.Now(), http.StatusNoContent
	const op = "cashcard.updateCashCard.hdl"
	span := opentracing.GlobalTracer().StartSpan(op, opentracing.ChildOf(spanContext(r)))
	ctx := opentracing.ContextWithSpan(r.Context(), span)
	defer func() {
		span.Finish()
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	p, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		c = http.StatusUnauthorized
		zap.L().Error(hdl.ErrFailedToGetPrincipal.Error(), zap.String("op", op))
		utils.ErrResponse(w, c, hdl.ErrFailedToGetPrincipal)
		return
	}

	id, err := parseID(r)
	if err != nil {
		c = http.StatusBadRequest
		zap.L().Debug("failed to parse id", zap.String("op", op), zap.Error(err))
		utils.ErrResponse(w, c, ErrInvalidID)
		return
	}

	req := &dto.CashCardRequest{}
	if err = json.NewDecoder(r.Body).Decode(req); err != nil {
		c = http.StatusBadRequest
		zap.L().Debug("failed to decode request", zap.String("op", op), zap.Error(err))
		utils.ErrResponse(w, c, hdl.ErrDecodeRequest)
		return
	}

	err = h.ctrl.UpdateCashCard(ctx, id, p.Name, req)
	if err != nil && errors.Is(err, ctrl.ErrNotFound) {
		c = http.StatusNotFound
		utils.ErrResponse(w, c, err)
		return
	} else if err != nil {
		c = http.StatusInternalServerError
		zap.L().Debug(hdl.ErrInternal.Error(), zap.String("op", op), zap.Error(err))
		utils.ErrResponse(w, c, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, c)
}

func (h *Handler) deleteCashCard(w http.ResponseWriter, r *http.Request) {
	s, c := time.Now(), http.StatusNoContent
	const op = "cashcard.deleteCashCard.hdl"
	span := opentracing.GlobalTracer().StartSpan(op, opentracing.ChildOf(spanContext(r)))
	ctx := opentracing.ContextWithSpan(r.Context(), span)
	defer func() {
		span.Finish()
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	p, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		c = http.StatusUnauthorized
		zap.L().Error(hdl.ErrFailedToGetPrincipal.Error(), zap.String("op", op))
		utils.ErrResponse(w, c, hdl.ErrFailedToGetPrincipal)
		return
	}

	id, err := parseID(r)
	if err != nil {
		c = http.StatusBadRequest
		zap.L().Debug("failed to parse id", zap.String("op", op), zap.Error(err))
		utils.ErrResponse(w, c, ErrInvalidID)
		return
	}

	err = h.ctrl.DeleteCashCard(ctx, id, p.Name)
	if err != nil && errors.Is(err, ctrl.ErrNotFound) {
		c = http.StatusNotFound
		utils.ErrResponse(w, c, err)
		return
	} else if err != nil {
		c = http.StatusInternalServerError
		zap.L().Debug(hdl.ErrInternal.Error(), zap.String("op", op), zap.Error(err))
		utils.ErrResponse(w, c, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, c)
}

func spanContext(r *http.Request) opentracing.SpanContext {
	if span := opentracing.SpanFromContext(r.Context()); span != nil {
		return span.Context()
	}
	return nil
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func location(r *http.Request, id int64) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	u := url.URL{
		Scheme: scheme,
		Host:   r.Host,
		Path:   fmt.Sprintf("/cashcards/%d", id),
	}
	return u.String()
}

// pageRequest reads page, size and sort. Numbers that are unparsable or do
// not fit in 32 bits fall back to the defaults and size is capped at
// config.MaxSize.
func pageRequest(q url.Values) *model.PageRequest {
	page, err := strconv.ParseInt(q.Get("page"), 10, 32)
	if err != nil || page < 0 {
		page = config.DefaultPage
	}

	size, err := strconv.ParseInt(q.Get("size"), 10, 32)
	if err != nil || size < 1 {
		size = config.DefaultSize
	}
	if size > config.MaxSize {
		size = config.MaxSize
	}

	return &model.PageRequest{
		Page: int(page),
		Size: int(size),
		Sort: parseSort(q["sort"]),
	}
}

// parseSort accepts "property[,property...][,asc|desc]" per value.
func parseSort(values []string) []model.Order {
	orders := make([]model.Order, 0, len(values))
	for _, v := range values {
		parts := strings.Split(v, ",")
		dir := model.Asc
		if last := strings.ToLower(strings.TrimSpace(parts[len(parts)-1])); len(parts) > 1 &&
			(last == string(model.Asc) || last == string(model.Desc)) {
			dir = model.Direction(last)
			parts = parts[:len(parts)-1]
		}

		for _, prop := range parts {
			prop = strings.TrimSpace(prop)
			if prop == "" {
				continue
			}
			orders = append(orders, model.Order{Property: prop, Direction: dir})
		}
	}
	return orders
}
