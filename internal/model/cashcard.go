package model

import "github.com/shopspring/decimal"

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type CashCard struct {
	ID     int64           `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Owner  string          `json:"owner"`
}
