package ternary

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/iota.go/trinary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBCTernaryMultiplexer(t *testing.T) {
	trinaries := []trinary.Trits{
		{PlusOne, Zero, MinusOne},
		{MinusOne, PlusOne, Zero},
		{Zero, MinusOne, PlusOne},
	}

	multiplexer := NewBCTernaryMultiplexer()
	for i, trits := range trinaries {
		lane, err := multiplexer.Add(trits)
		require.NoError(t, err)
		require.Equal(t, i, lane)
	}
	assert.Equal(t, len(trinaries), multiplexer.Len())
	assert.Equal(t, trinaries[1], multiplexer.Get(1))

	bcTrits, err := multiplexer.Extract()
	require.NoError(t, err)
	require.Equal(t, 3, bcTrits.Len())

	r := NewRegister(3, 81)
	require.NoError(t, r.Store(0, bcTrits))
	require.NoError(t, r.Validate(0, 3))

	for lane, expected := range trinaries {
		trits, err := r.LaneTrits(uint(lane), 0, 3)
		require.NoError(t, err)
		assert.Equal(t, expected, trits)
	}

	// unused lanes hold the zero trit
	for lane := uint(len(trinaries)); lane < NumberOfLanes; lane++ {
		trits, err := r.LaneTrits(lane, 0, 3)
		require.NoError(t, err)
		require.Equal(t, trinary.Trits{Zero, Zero, Zero}, trits)
	}
}

func TestBCTernaryMultiplexer_FullLanes(t *testing.T) {
	multiplexer := NewBCTernaryMultiplexer()
	for i := 0; i < NumberOfLanes; i++ {
		_, err := multiplexer.Add(trinary.Trits{PlusOne})
		require.NoError(t, err)
	}

	_, err := multiplexer.Add(trinary.Trits{PlusOne})
	assert.True(t, errors.Is(err, ErrTooManyLanes))

	bcTrits, err := multiplexer.Extract()
	require.NoError(t, err)
	assert.Equal(t, BCTrits{Lo: []uint64{Min}, Hi: []uint64{Max}}, bcTrits)

	multiplexer.Reset()
	assert.Equal(t, 0, multiplexer.Len())
	_, err = multiplexer.Extract()
	assert.True(t, errors.Is(err, ErrNoLanes))
}

func TestBCTernaryMultiplexer_Add(t *testing.T) {
	multiplexer := NewBCTernaryMultiplexer()

	trits := trinary.Trits{Zero, PlusOne}
	_, err := multiplexer.Add(trits)
	require.NoError(t, err)

	trits[0] = MinusOne
	assert.Equal(t, trinary.Trits{Zero, PlusOne}, multiplexer.Get(0))

	_, err = multiplexer.Add(trinary.Trits{Zero})
	assert.True(t, errors.Is(err, ErrLengthMismatch))

	_, err = multiplexer.Add(trinary.Trits{Zero, 2})
	assert.True(t, errors.Is(err, ErrInvalidTrit))
	assert.Equal(t, 1, multiplexer.Len())
}

// Recording 64 sequential increments and multiplexing the snapshots yields a register whose lanes
// hold 64 consecutive counter values.
func TestBCTernaryMultiplexer_IncrementSnapshots(t *testing.T) {
	const width = 5

	r := NewRegister(width, 81)
	require.NoError(t, r.Initialize(0, width))

	multiplexer := NewBCTernaryMultiplexer()
	for i := 0; i < NumberOfLanes; i++ {
		_, err := r.Increment(0, width)
		require.NoError(t, err)
		snapshot, err := r.Snapshot(0, width)
		require.NoError(t, err)
		_, err = multiplexer.Add(snapshot)
		require.NoError(t, err)
	}

	bcTrits, err := multiplexer.Extract()
	require.NoError(t, err)

	lanes := NewRegister(width, 81)
	require.NoError(t, lanes.Store(0, bcTrits))

	seen := make(map[string]struct{})
	for lane := uint(0); lane < NumberOfLanes; lane++ {
		trits, err := lanes.LaneTrits(lane, 0, width)
		require.NoError(t, err)
		seen[tritsString(trits)] = struct{}{}
	}
	assert.Len(t, seen, NumberOfLanes)
}
