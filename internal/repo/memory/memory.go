package memory

import (
	"context"
	"github.com/KeivinIsmaili/cashcard/internal/model"
	"github.com/KeivinIsmaili/cashcard/internal/repo"
	"github.com/opentracing/opentracing-go"
	"sort"
	"strings"
	"sync"
)

// Repository keeps cash cards in process memory. Every method is safe for
// concurrent use.
type Repository struct {
	mu    sync.RWMutex
	seq   int64
	cards map[int64]model.CashCard
}

func New() *Repository {
	return &Repository{cards: make(map[int64]model.CashCard)}
}

func (r *Repository) Close() error {
	return nil
}

func (r *Repository) FindByIDAndOwner(ctx context.Context, id int64, owner string) (*model.CashCard, error) {
	const op = "cashcard.FindByIDAndOwner.repo"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	r.mu.RLock()
	defer r.mu.RUnlock()

	card, ok := r.cards[id]
	if !ok || card.Owner != owner {
		return nil, repo.ErrNotFound
	}
	return &card, nil
}

func (r *Repository) FindByOwner(ctx context.Context, owner string, page *model.PageRequest) ([]*model.CashCard, error) {
	const op = "cashcard.FindByOwner.repo"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	r.mu.RLock()
	owned := make([]*model.CashCard, 0)
	for _, c := range r.cards {
		if c.Owner == owner {
			card := c
			owned = append(owned, &card)
		}
	}
	r.mu.RUnlock()

	sort.Slice(
		owned, func(i, j int) bool {
			return less(owned[i], owned[j], page.Sort)
		},
	)

	offset, total := page.Offset(), int64(len(owned))
	if offset < 0 || offset >= total {
		return []*model.CashCard{}, nil
	}

	end := offset + int64(page.Size)
	if end > total {
		end = total
	}
	return owned[offset:end], nil
}

func (r *Repository) ExistsByIDAndOwner(ctx context.Context, id int64, owner string) (bool, error) {
	const op = "cashcard.ExistsByIDAndOwner.repo"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	r.mu.RLock()
	defer r.mu.RUnlock()

	card, ok := r.cards[id]
	return ok && card.Owner == owner, nil
}

func (r *Repository) Create(ctx context.Context, card *model.CashCard) (int64, error) {
	const op = "cashcard.Create.repo"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.cards[r.seq] = model.CashCard{ID: r.seq, Amount: card.Amount, Owner: card.Owner}
	return r.seq, nil
}

func (r *Repository) Update(ctx context.Context, card *model.CashCard) error {
	const op = "cashcard.Update.repo"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cards[card.ID]; !ok {
		return repo.ErrNotFound
	}
	r.cards[card.ID] = *card
	return nil
}

func (r *Repository) DeleteByID(ctx context.Context, id int64) error {
	const op = "cashcard.DeleteByID.repo"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.cards, id)
	return nil
}

// less orders by each requested property in turn, then by id ascending.
func less(a, b *model.CashCard, orders []model.Order) bool {
	for _, o := range orders {
		cmp := 0
		switch o.Property {
		case model.PropertyAmount:
			cmp = a.Amount.Cmp(b.Amount)
		case model.PropertyOwner:
			cmp = strings.Compare(a.Owner, b.Owner)
		case model.PropertyID:
			cmp = compareInt(a.ID, b.ID)
		}

		if cmp == 0 {
			continue
		}
		if o.Direction == model.Desc {
			return cmp > 0
		}
		return cmp < 0
	}
	return a.ID < b.ID
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
