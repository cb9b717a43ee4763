package ternary

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/iota.go/trinary"
)

// Register is a bit-sliced ternary register. Index i of the register holds one Binary Coded Trit
// spread over low[i] and high[i], so that NumberOfLanes independent trit sequences are processed by
// the same word operation.
//
// A Register is owned by exactly one goroutine. Workers that need their own state use Duplicate.
type Register struct {
	low    []uint64
	high   []uint64
	rounds int
}

// NewRegister allocates a register of the given length. All words start at zero, which is the
// unreachable pattern, so every index has to be initialized or absorbed before it is used.
func NewRegister(length, rounds int) *Register {
	return &Register{
		low:    make([]uint64, length),
		high:   make([]uint64, length),
		rounds: rounds,
	}
}

// NewRegisterFrom creates a register holding copies of the given words.
func NewRegisterFrom(low, high []uint64, rounds int) (*Register, error) {
	if len(low) != len(high) {
		return nil, errors.Wrapf(ErrLengthMismatch, "low has %d words, high has %d", len(low), len(high))
	}

	return &Register{
		low:    append(make([]uint64, 0, len(low)), low...),
		high:   append(make([]uint64, 0, len(high)), high...),
		rounds: rounds,
	}, nil
}

// Len returns the number of indices.
func (r *Register) Len() int {
	return len(r.low)
}

// Rounds returns the number of permutation rounds carried for the transform.
func (r *Register) Rounds() int {
	return r.rounds
}

// Low returns a copy of the low words.
func (r *Register) Low() []uint64 {
	return append(make([]uint64, 0, len(r.low)), r.low...)
}

// High returns a copy of the high words.
func (r *Register) High() []uint64 {
	return append(make([]uint64, 0, len(r.high)), r.high...)
}

// Initialize sets every index in [from, to) to the zero trit on all lanes. Both bounds must lie in
// [0, Len()]; from >= to writes nothing.
func (r *Register) Initialize(from, to int) error {
	if from < 0 || from > len(r.low) || to > len(r.low) {
		return errors.Wrapf(ErrIndexOutOfRange, "initialize [%d, %d) on register of length %d", from, to, len(r.low))
	}

	for i := from; i < to; i++ {
		r.low[i] = Max
		r.high[i] = Max
	}

	return nil
}

// Absorb writes the scalar trit codes trits[offset:offset+length] into the indices [0, length),
// broadcasting each trit to all lanes. It returns offset+length so that consecutive calls can walk a
// larger buffer. Nothing is written if any code is invalid.
func (r *Register) Absorb(trits []int8, length, offset int) (int, error) {
	if length < 0 || offset < 0 || offset > len(trits)-length {
		return offset, errors.Wrapf(ErrIndexOutOfRange, "absorb %d trits at offset %d from %d trits", length, offset, len(trits))
	}
	if length > len(r.low) {
		return offset, errors.Wrapf(ErrIndexOutOfRange, "absorb %d trits into register of length %d", length, len(r.low))
	}

	source := trits[offset : offset+length]
	for i, code := range source {
		if code < 0 || code > 2 {
			return offset, errors.Wrapf(ErrInvalidTritCode, "code %d at position %d", code, offset+i)
		}
	}

	for i, code := range source {
		switch code {
		case 0:
			r.low[i] = Max
			r.high[i] = Max
		case 1:
			r.low[i] = Min
			r.high[i] = Max
		default:
			r.low[i] = Max
			r.high[i] = Min
		}
	}

	return offset + length, nil
}

// Increment advances the balanced ternary counter stored in [from, to) by one. The scan starts at
// from: a +1 wraps to -1 and carries into the next index, a -1 becomes 0 and a 0 becomes +1, both
// without carry. It returns true if the carry left the window, i.e. the counter wrapped around.
func (r *Register) Increment(from, to int) (wrapped bool, err error) {
	if err = r.checkWindow(from, to); err != nil {
		return false, err
	}

	for i := from; i < to; i++ {
		if r.low[i] == Min {
			r.low[i] = Max
			r.high[i] = Min

			continue
		}

		if r.high[i] == Min {
			r.high[i] = Max
		} else {
			r.low[i] = Min
		}

		return false, nil
	}

	return from < to, nil
}

// Duplicate returns an independent deep copy of the register.
func (r *Register) Duplicate() *Register {
	return &Register{
		low:    r.Low(),
		high:   r.High(),
		rounds: r.rounds,
	}
}

// Get returns the word pair stored at index i.
func (r *Register) Get(i int) (BCTrit, error) {
	if i < 0 || i >= len(r.low) {
		return BCTrit{}, errors.Wrapf(ErrIndexOutOfRange, "index %d on register of length %d", i, len(r.low))
	}

	return BCTrit{Lo: r.low[i], Hi: r.high[i]}, nil
}

// Set stores the word pair at index i.
func (r *Register) Set(i int, t BCTrit) error {
	if i < 0 || i >= len(r.low) {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d on register of length %d", i, len(r.low))
	}
	if !t.Valid() {
		return errors.Wrapf(ErrInvalidEncoding, "index %d: %s", i, t)
	}

	r.low[i] = t.Lo
	r.high[i] = t.Hi

	return nil
}

// Snapshot decodes the window [from, to), which must hold the same trit on every lane.
func (r *Register) Snapshot(from, to int) (trinary.Trits, error) {
	if err := r.checkWindow(from, to); err != nil {
		return nil, err
	}

	trits := make(trinary.Trits, to-from)
	for i := from; i < to; i++ {
		trit, err := BCTrit{Lo: r.low[i], Hi: r.high[i]}.Decode()
		if err != nil {
			return nil, errors.Wrapf(err, "index %d", i)
		}
		trits[i-from] = trit
	}

	return trits, nil
}

// LaneTrits returns the trits a single lane holds in the window [from, to).
func (r *Register) LaneTrits(lane uint, from, to int) (trinary.Trits, error) {
	if err := r.checkWindow(from, to); err != nil {
		return nil, err
	}

	trits := make(trinary.Trits, to-from)
	for i := from; i < to; i++ {
		trit, err := BCTrit{Lo: r.low[i], Hi: r.high[i]}.Lane(lane)
		if err != nil {
			return nil, errors.Wrapf(err, "index %d", i)
		}
		trits[i-from] = trit
	}

	return trits, nil
}

// Store writes the given window into the register starting at offset.
func (r *Register) Store(offset int, trits BCTrits) error {
	if len(trits.Lo) != len(trits.Hi) {
		return errors.Wrapf(ErrLengthMismatch, "low has %d words, high has %d", len(trits.Lo), len(trits.Hi))
	}
	if err := r.checkWindow(offset, offset+len(trits.Lo)); err != nil {
		return err
	}
	for i := range trits.Lo {
		if trits.Lo[i]|trits.Hi[i] != Max {
			return errors.Wrapf(ErrInvalidEncoding, "word pair %d", i)
		}
	}

	copy(r.low[offset:], trits.Lo)
	copy(r.high[offset:], trits.Hi)

	return nil
}

// Validate returns an error if any lane in [from, to) holds the unreachable pattern.
func (r *Register) Validate(from, to int) error {
	if err := r.checkWindow(from, to); err != nil {
		return err
	}

	for i := from; i < to; i++ {
		if r.low[i]|r.high[i] != Max {
			return errors.Wrapf(ErrInvalidEncoding, "index %d", i)
		}
	}

	return nil
}

// Apply hands the words to fn so that an external permutation can mutate them in place. fn must
// not retain the slices.
func (r *Register) Apply(fn func(low, high []uint64, rounds int)) {
	fn(r.low, r.high, r.rounds)
}

func (r *Register) checkWindow(from, to int) error {
	if from < 0 || from > to || to > len(r.low) {
		return errors.Wrapf(ErrIndexOutOfRange, "window [%d, %d) on register of length %d", from, to, len(r.low))
	}

	return nil
}
