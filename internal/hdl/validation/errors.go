package validation

import "errors"

var UsernameIsRequired = errors.New("username is required")
var PasswordIsRequired = errors.New("password is required")

var SortPropertyIsInvalid = errors.New("sort property is invalid")
var SortDirectionIsInvalid = errors.New("sort direction is invalid")
