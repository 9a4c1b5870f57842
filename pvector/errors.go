package pvector

import "errors"

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrSliceBounds     = errors.New("slice bounds out of range")
)
