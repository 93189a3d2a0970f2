package hdl

import "errors"

var ErrInternal = errors.New("internal error")
var ErrDecodeRequest = errors.New("decode request")
var ErrFailedToGetPrincipal = errors.New("failed to get principal")
