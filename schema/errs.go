package schema

import "errors"

var ErrSchema = errors.New("schema error")
