package mappers

import (
	"encoding/json"
	"github.com/KeivinIsmaili/cashcard/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestCashCardsToDTO(t *testing.T) {
	cards := []*model.CashCard{
		{ID: 99, Amount: decimal.RequireFromString("123.45"), Owner: "sarah1"},
		{ID: 100, Amount: decimal.RequireFromString("-1"), Owner: "sarah1"},
	}

	res := CashCardsToDTO(cards)
	require.Len(t, res, 2)
	assert.Equal(t, int64(99), res[0].ID)
	assert.Equal(t, "sarah1", res[1].Owner)

	body, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(
		t,
		`[{"id":99,"amount":123.45,"owner":"sarah1"},{"id":100,"amount":-1,"owner":"sarah1"}]`,
		string(body),
	)
}

func TestCashCardsToDTO_Empty(t *testing.T) {
	res := CashCardsToDTO(nil)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}
