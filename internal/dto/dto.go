package dto

import "github.com/shopspring/decimal"

// CashCardRequest is the body of create and update calls. ID and Owner are
// decoded so clients may send a full record, but the server never uses them.
type CashCardRequest struct {
	ID     *int64          `json:"id,omitempty"`
	Amount decimal.Decimal `json:"amount"`
	Owner  string          `json:"owner,omitempty"`
}

type CashCardResponse struct {
	ID     int64           `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Owner  string          `json:"owner"`
}
