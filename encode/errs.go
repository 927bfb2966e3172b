package encode

import "errors"

var ErrEncode = errors.New("encoding error")
