package mappers

import (
	"github.com/KeivinIsmaili/cashcard/internal/dto"
	"github.com/KeivinIsmaili/cashcard/internal/model"
)

func CashCardToDTO(req *model.CashCard) *dto.CashCardResponse {
	return &dto.CashCardResponse{
		ID:     req.ID,
		Amount: req.Amount,
		Owner:  req.Owner,
	}
}

func CashCardsToDTO(req []*model.CashCard) []*dto.CashCardResponse {
	res := make([]*dto.CashCardResponse, 0, len(req))
	for i := 0; i < len(req); i++ {
		res = append(res, CashCardToDTO(req[i]))
	}
	return res
}
