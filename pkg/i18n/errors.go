package i18n

import "errors"

var (
	ErrInvalidSource = errors.New("i18n: invalid translation source")
)
