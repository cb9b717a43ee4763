package ternary

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidTritCode is returned when a scalar trit code is not one of 0, 1 or 2.
	ErrInvalidTritCode = errors.New("invalid trit code")
	// ErrInvalidTrit is returned when a balanced trit is not one of -1, 0 or 1.
	ErrInvalidTrit = errors.New("invalid trit")
	// ErrInvalidEncoding is returned when a lane holds the unreachable all-zero word pattern.
	ErrInvalidEncoding = errors.New("invalid binary coded trit")
	// ErrMixedLanes is returned when a word pair is decoded as a single trit but its lanes diverge.
	ErrMixedLanes = errors.New("lanes hold different trits")
	// ErrLaneOutOfRange is returned when a lane index is not in [0, NumberOfLanes).
	ErrLaneOutOfRange = errors.New("lane out of range")
	// ErrLengthMismatch is returned when word sequences or trit sequences differ in length.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrIndexOutOfRange is returned when an index or window exceeds the register or source bounds.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrTooManyLanes is returned when more than NumberOfLanes trit sequences are multiplexed.
	ErrTooManyLanes = errors.New("too many lanes")
	// ErrNoLanes is returned when an empty multiplexer is extracted.
	ErrNoLanes = errors.New("no lanes to extract")
)
