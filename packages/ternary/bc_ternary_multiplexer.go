package ternary

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/iota.go/trinary"
)

// BCTernaryMultiplexer assembles up to NumberOfLanes trit sequences of equal length into one
// multi-lane BCTrits window. Sequence j ends up in lane j.
type BCTernaryMultiplexer struct {
	trinaries []trinary.Trits
}

// NewBCTernaryMultiplexer creates an empty multiplexer.
func NewBCTernaryMultiplexer() *BCTernaryMultiplexer {
	return &BCTernaryMultiplexer{
		trinaries: make([]trinary.Trits, 0, NumberOfLanes),
	}
}

// Add copies the trits into the next free lane and returns its index. Empty lanes are rejected.
func (m *BCTernaryMultiplexer) Add(trits trinary.Trits) (int, error) {
	if len(m.trinaries) == NumberOfLanes {
		return -1, errors.Wrapf(ErrTooManyLanes, "multiplexer already holds %d lanes", NumberOfLanes)
	}
	if len(m.trinaries) > 0 && len(trits) != len(m.trinaries[0]) {
		return -1, errors.Wrapf(ErrLengthMismatch, "lane has %d trits, expected %d", len(trits), len(m.trinaries[0]))
	}
	if err := trinary.ValidTrits(trits); err != nil {
		return -1, errors.Wrapf(ErrInvalidTrit, "lane %d: %s", len(m.trinaries), err)
	}

	m.trinaries = append(m.trinaries, append(trinary.Trits(nil), trits...))

	return len(m.trinaries) - 1, nil
}

// Get returns the trits of the given lane.
func (m *BCTernaryMultiplexer) Get(lane int) trinary.Trits {
	return m.trinaries[lane]
}

// Len returns the number of occupied lanes.
func (m *BCTernaryMultiplexer) Len() int {
	return len(m.trinaries)
}

// Reset drops all lanes so the multiplexer can be reused.
func (m *BCTernaryMultiplexer) Reset() {
	m.trinaries = m.trinaries[:0]
}

// Extract encodes the lanes into word pairs. Lanes that were never added carry the zero trit.
func (m *BCTernaryMultiplexer) Extract() (BCTrits, error) {
	trinariesCount := len(m.trinaries)
	if trinariesCount == 0 {
		return BCTrits{}, ErrNoLanes
	}
	tritsCount := len(m.trinaries[0])

	result := BCTrits{
		Lo: make([]uint64, tritsCount),
		Hi: make([]uint64, tritsCount),
	}

	// lanes at or above trinariesCount stay at zero (both bits set)
	unused := Max << uint(trinariesCount)

	for i := 0; i < tritsCount; i++ {
		bcTrit := BCTrit{Lo: unused, Hi: unused}

		for j := 0; j < trinariesCount; j++ {
			switch m.trinaries[j][i] {
			case MinusOne:
				bcTrit.Lo |= 1 << uint(j)

			case PlusOne:
				bcTrit.Hi |= 1 << uint(j)

			case Zero:
				bcTrit.Lo |= 1 << uint(j)
				bcTrit.Hi |= 1 << uint(j)
			}
		}

		result.Lo[i] = bcTrit.Lo
		result.Hi[i] = bcTrit.Hi
	}

	return result, nil
}
