package ternary

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

const (
	// Max is the word with every lane set.
	Max uint64 = 0xFFFFFFFFFFFFFFFF
	// Min is the word with every lane cleared.
	Min uint64 = 0x0000000000000000
	// NumberOfLanes is the number of independent trits carried by one word pair.
	NumberOfLanes = 64
)

// BCTrit is a Binary Coded Trit: one trit per bit lane, spread over two words.
//
//	 0 => Lo=1, Hi=1
//	+1 => Lo=0, Hi=1
//	-1 => Lo=1, Hi=0
//
// The combination Lo=0, Hi=0 never occurs.
type BCTrit struct {
	Lo uint64
	Hi uint64
}

var (
	bcZero     = BCTrit{Lo: Max, Hi: Max}
	bcPlusOne  = BCTrit{Lo: Min, Hi: Max}
	bcMinusOne = BCTrit{Lo: Max, Hi: Min}
)

// NewBCTrit broadcasts the given trit to all lanes.
func NewBCTrit(t int8) (BCTrit, error) {
	switch t {
	case Zero:
		return bcZero, nil
	case PlusOne:
		return bcPlusOne, nil
	case MinusOne:
		return bcMinusOne, nil
	default:
		return BCTrit{}, errors.Wrapf(ErrInvalidTrit, "trit %d", t)
	}
}

// Valid returns true if no lane holds the unreachable pattern.
func (b BCTrit) Valid() bool {
	return b.Lo|b.Hi == Max
}

// Decode returns the trit shared by all lanes.
func (b BCTrit) Decode() (int8, error) {
	switch b {
	case bcZero:
		return Zero, nil
	case bcPlusOne:
		return PlusOne, nil
	case bcMinusOne:
		return MinusOne, nil
	}

	if !b.Valid() {
		return Zero, errors.Wrapf(ErrInvalidEncoding, "%s", b)
	}

	return Zero, errors.Wrapf(ErrMixedLanes, "%s", b)
}

// Lane returns the trit stored in a single lane.
func (b BCTrit) Lane(lane uint) (int8, error) {
	if lane >= NumberOfLanes {
		return Zero, errors.Wrapf(ErrLaneOutOfRange, "lane %d", lane)
	}

	lo, hi := (b.Lo>>lane)&1, (b.Hi>>lane)&1
	switch {
	case lo == 1 && hi == 1:
		return Zero, nil
	case hi == 1:
		return PlusOne, nil
	case lo == 1:
		return MinusOne, nil
	default:
		return Zero, errors.Wrapf(ErrInvalidEncoding, "lane %d", lane)
	}
}

func (b BCTrit) String() string {
	return fmt.Sprintf("BCTrit(lo=%016x, hi=%016x)", b.Lo, b.Hi)
}

// BCTrits is a window of Binary Coded Trits stored as two parallel word sequences.
type BCTrits struct {
	Lo []uint64
	Hi []uint64
}

// Len returns the number of word pairs.
func (b BCTrits) Len() int {
	return len(b.Lo)
}
