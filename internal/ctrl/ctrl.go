package ctrl

import (
	"context"
	"errors"
	"github.com/KeivinIsmaili/cashcard/internal/config"
	"github.com/KeivinIsmaili/cashcard/internal/dto"
	"github.com/KeivinIsmaili/cashcard/internal/model"
	"github.com/KeivinIsmaili/cashcard/internal/repo"
	"github.com/opentracing/opentracing-go"
)

var ErrNotFound = errors.New("not found")

// AppRepo is the cash card store. Every point read and existence check
// takes the owner, so no id-only lookup can reach a caller.
type AppRepo interface {
	FindByIDAndOwner(ctx context.Context, id int64, owner string) (*model.CashCard, error)
	FindByOwner(ctx context.Context, owner string, page *model.PageRequest) ([]*model.CashCard, error)
	ExistsByIDAndOwner(ctx context.Context, id int64, owner string) (bool, error)
	Create(ctx context.Context, card *model.CashCard) (int64, error)
	Update(ctx context.Context, card *model.CashCard) error
	DeleteByID(ctx context.Context, id int64) error
}

type AppCtrl interface {
	GetCashCard(ctx context.Context, id int64, owner string) (*model.CashCard, error)
	CreateCashCard(ctx context.Context, owner string, req *dto.CashCardRequest) (*model.CashCard, error)
	ListCashCards(ctx context.Context, owner string, page *model.PageRequest) ([]*model.CashCard, error)
	UpdateCashCard(ctx context.Context, id int64, owner string, req *dto.CashCardRequest) error
	DeleteCashCard(ctx context.Context, id int64, owner string) error
}

type Controller struct {
	repo AppRepo
}

func New(repo AppRepo) *Controller {
	return &Controller{
		repo: repo,
	}
}

func (c *Controller) GetCashCard(ctx context.Context, id int64, owner string) (*model.CashCard, error) {
	const op = "cashcard.GetCashCard.ctrl"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	ctx = opentracing.ContextWithSpan(ctx, span)
	defer span.Finish()

	res, err := c.repo.FindByIDAndOwner(ctx, id, owner)
	if err != nil && errors.Is(err, repo.ErrNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return res, nil
}

func (c *Controller) CreateCashCard(ctx context.Context, owner string, req *dto.CashCardRequest) (*model.CashCard, error) {
	const op = "cashcard.CreateCashCard.ctrl"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	ctx = opentracing.ContextWithSpan(ctx, span)
	defer span.Finish()

	card := &model.CashCard{
		Amount: req.Amount,
		Owner:  owner,
	}

	id, err := c.repo.Create(ctx, card)
	if err != nil {
		return nil, err
	}

	card.ID = id
	return card, nil
}

func (c *Controller) ListCashCards(ctx context.Context, owner string, page *model.PageRequest) ([]*model.CashCard, error) {
	const op = "cashcard.ListCashCards.ctrl"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	ctx = opentracing.ContextWithSpan(ctx, span)
	defer span.Finish()

	req := *page
	if len(req.Sort) == 0 {
		req.Sort = []model.Order{{Property: config.DefaultSortProperty, Direction: model.Asc}}
	}

	res, err := c.repo.FindByOwner(ctx, owner, &req)
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (c *Controller) UpdateCashCard(ctx context.Context, id int64, owner string, req *dto.CashCardRequest) error {
	const op = "cashcard.UpdateCashCard.ctrl"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	ctx = opentracing.ContextWithSpan(ctx, span)
	defer span.Finish()

	existing, err := c.repo.FindByIDAndOwner(ctx, id, owner)
	if err != nil && errors.Is(err, repo.ErrNotFound) {
		return ErrNotFound
	} else if err != nil {
		return err
	}

	err = c.repo.Update(
		ctx, &model.CashCard{
			ID:     existing.ID,
			Amount: req.Amount,
			Owner:  owner,
		},
	)
	if err != nil && errors.Is(err, repo.ErrNotFound) {
		return ErrNotFound
	} else if err != nil {
		return err
	}

	return nil
}

func (c *Controller) DeleteCashCard(ctx context.Context, id int64, owner string) error {
	const op = "cashcard.DeleteCashCard.ctrl"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	ctx = opentracing.ContextWithSpan(ctx, span)
	defer span.Finish()

	ok, err := c.repo.ExistsByIDAndOwner(ctx, id, owner)
	if err != nil {
		return err
	}

	if !ok {
		return ErrNotFound
	}

	// Ownership was proven by the existence check above.
	return c.repo.DeleteByID(ctx, id)
}
