package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUserLookup      = errors.New("failed to check username availability")
)
