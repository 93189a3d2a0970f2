package model

import (
	"encoding/json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestCashCard_JSONAmountIsNumber(t *testing.T) {
	card := &CashCard{ID: 99, Amount: decimal.RequireFromString("123.45"), Owner: "sarah1"}

	body, err := json.Marshal(card)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":99,"amount":123.45,"owner":"sarah1"}`, string(body))
}

func TestPrincipal_HasRole(t *testing.T) {
	p := &Principal{Name: "sarah1", Roles: []string{RoleCardOwner}}
	assert.True(t, p.HasRole(RoleCardOwner))
	assert.False(t, p.HasRole("NON-OWNER"))

	var empty *Principal
	assert.False(t, empty.HasRole(RoleCardOwner))
}

func TestPageRequest_Offset(t *testing.T) {
	assert.Equal(t, int64(0), (&PageRequest{Page: 0, Size: 20}).Offset())
	assert.Equal(t, int64(6), (&PageRequest{Page: 2, Size: 3}).Offset())
	assert.Equal(t, int64(4294967294000), (&PageRequest{Page: 2147483647, Size: 2000}).Offset())
}
