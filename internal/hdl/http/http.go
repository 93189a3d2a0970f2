package http

import (
	"context"
	"errors"
	"fmt"
	"github.com/KeivinIsmaili/cashcard/internal/auth"
	"github.com/KeivinIsmaili/cashcard/internal/ctrl"
	mid "github.com/KeivinIsmaili/cashcard/internal/hdl/http/middleware"
	"github.com/KeivinIsmaili/cashcard/internal/hdl/http/utils"
	"github.com/KeivinIsmaili/cashcard/internal/model"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"net/http"
	"time"
)

const healthPath = "/health"

type Handler struct {
	srv   *http.Server
	ctrl  ctrl.AppCtrl
	au    auth.Verifier
	realm string
}

func New(au auth.Verifier, ctrl ctrl.AppCtrl, realm string) *Handler {
	return &Handler{
		au:    au,
		ctrl:  ctrl,
		realm: realm,
	}
}

// Router wires the middleware chain: every path but /health needs valid
// credentials, unknown paths included, and the card routes additionally need
// the card-owner role.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(
		mid.RecoverPanic,
		mid.LoggingMiddleware,
		mid.TracingMiddleware,
		mid.Except(mid.BasicAuth(h.au, h.realm), healthPath),
	)

	r.Get(
		healthPath, func(w http.ResponseWriter, r *http.Request) {
			utils.SuccessResponse(w, http.StatusOK, "OK")
		},
	)

	r.Route(
		"/cashcards", func(r chi.Router) {
			r.Use(mid.RequireRole(model.RoleCardOwner))
			RegisterCashCardRoutes(r, h)
		},
	)

	return r
}

func (h *Handler) Start(port int) {
	h.srv = &http.Server{
		Handler:      h.Router(),
		Addr:         fmt.Sprintf(":%v", port),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	err := h.srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		zap.L().Error("Server error", zap.Error(err))
	}
}

func (h *Handler) Close(ctx context.Context) error {
	if h.srv == nil {
		return nil
	}
	return h.srv.Shutdown(ctx)
}
