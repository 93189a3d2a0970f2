package validation

import (
	"github.com/KeivinIsmaili/cashcard/internal/model"
)

var sortable = map[string]struct{}{
	model.PropertyID:     {},
	model.PropertyAmount: {},
	model.PropertyOwner:  {},
}

func ListReq(req *model.PageRequest) error {
	for _, o := range req.Sort {
		if _, ok := sortable[o.Property]; !ok {
			return SortPropertyIsInvalid
		}

		if o.Direction != model.Asc && o.Direction != model.Desc {
			return SortDirectionIsInvalid
		}
	}

	return nil
}
