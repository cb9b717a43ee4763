package ternary

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/iota.go/trinary"
)

const (
	// MinusOne is the balanced ternary digit -1.
	MinusOne int8 = -1
	// Zero is the neutral digit.
	Zero int8 = 0
	// PlusOne is the balanced ternary digit +1.
	PlusOne int8 = 1
)

// TritFromCode converts a scalar trit code into its balanced trit. Codes follow the mod 3 convention: 0 is 0,
// 1 is +1 and 2 is -1.
func TritFromCode(code int8) (int8, error) {
	switch code {
	case 0:
		return Zero, nil
	case 1:
		return PlusOne, nil
	case 2:
		return MinusOne, nil
	default:
		return Zero, errors.Wrapf(ErrInvalidTritCode, "code %d", code)
	}
}

// CodeFromTrit returns the scalar code of a balanced trit.
func CodeFromTrit(t int8) (int8, error) {
	if !trinary.ValidTrit(t) {
		return 0, errors.Wrapf(ErrInvalidTrit, "trit %d", t)
	}
	if t == MinusOne {
		return 2, nil
	}

	return t, nil
}
