package hdd

import "errors"

var (
	ErrUnknownSoilType  = errors.New("unknown soil type")
	ErrUnknownSoilGroup = errors.New("unknown soil group")
	ErrInvalidLength    = errors.New("invalid length")
	ErrInvalidDiameter  = errors.New("invalid diameter")
)
