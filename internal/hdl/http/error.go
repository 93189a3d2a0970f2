package http

import "errors"

var ErrInvalidID = errors.New("invalid id")
