package normalizer

import "errors"

var (
	ErrInvalidArgument = errors.New("raw task text is empty")
	ErrUnknownPolicy   = errors.New("unknown ambiguity policy")
)
