package model

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

const (
	PropertyID     = "id"
	PropertyAmount = "amount"
	PropertyOwner  = "owner"
)

type Order struct {
	Property  string
	Direction Direction
}

type PageRequest struct {
	Page int
	Size int
	Sort []Order
}

// Offset is the number of rows skipped before the page. Page and size are
// both bounded to 32 bits by the parser, so the product fits in int64.
func (p *PageRequest) Offset() int64 {
	return int64(p.Page) * int64(p.Size)
}
