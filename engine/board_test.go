package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPiece(t *testing.T, notation string) Piece {
	t.Helper()
	p, err := ParsePiece(notation)
	require.NoError(t, err)
	return p
}

func newTestBoard(t *testing.T, w, h int) *Board {
	t.Helper()
	b, err := NewBoard(w, h)
	require.NoError(t, err)
	return b
}

// gridCopy captures the occupancy bit pattern for exact comparisons.
func gridCopy(b *Board) []bool {
	return append([]bool(nil), b.grid...)
}

// requireTalliesConsistent rederives both tallies from the grid and compares
// them against the cached values.
func requireTalliesConsistent(t *testing.T, b *Board) {
	t.Helper()
	for x := 0; x < b.Width(); x++ {
		want := 0
		for y := 0; y < b.Height(); y++ {
			if b.cell(x, y) {
				want = y + 1
			}
		}
		require.Equal(t, want, b.ColumnHeight(x), "column %d height", x)
	}
	for y := 0; y < b.Height(); y++ {
		want := 0
		for x := 0; x < b.Width(); x++ {
			if b.cell(x, y) {
				want++
			}
		}
		require.Equal(t, want, b.RowWidth(y), "row %d fill", y)
	}
}

func TestNewBoardRejectsBadSizes(t *testing.T) {
	testcases := []struct {
		name string
		w, h int
	}{
		{name: "zero width", w: 0, h: 5},
		{name: "zero height", w: 5, h: 0},
		{name: "negative width", w: -1, h: 5},
		{name: "negative height", w: 5, h: -3},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBoard(tc.w, tc.h)
			assert.Error(t, err)
		})
	}
}

func TestNewGameBoardIsEmptyAndCommitted(t *testing.T) {
	b := newTestBoard(t, 6, 10)

	assert.Equal(t, 6, b.Width())
	assert.Equal(t, 10, b.Height())
	assert.Equal(t, 0, b.MaxHeight())
	assert.True(t, b.Committed())
	for x := 0; x < b.Width(); x++ {
		assert.Equal(t, 0, b.ColumnHeight(x))
	}
	for y := 0; y < b.Height(); y++ {
		assert.Equal(t, 0, b.RowWidth(y))
	}
	for x := 0; x < b.Width(); x++ {
		for y := 0; y < b.Height(); y++ {
			assert.False(t, b.Occupied(x, y))
		}
	}
}

func TestNewGameResetsAfterPlay(t *testing.T) {
	b := newTestBoard(t, 4, 4)
	require.Equal(t, PlaceOK, b.Place(mustPiece(t, "0 0 0 1"), 2, 0))

	b.NewGame()

	assert.Equal(t, 0, b.MaxHeight())
	assert.True(t, b.Committed())
	assert.False(t, b.Occupied(2, 0))
	requireTalliesConsistent(t, b)
}

func TestOccupiedOutsideBoundsReadsAsFilled(t *testing.T) {
	b := newTestBoard(t, 3, 3)

	assert.True(t, b.Occupied(-1, 0))
	assert.True(t, b.Occupied(0, -1))
	assert.True(t, b.Occupied(3, 0))
	assert.True(t, b.Occupied(0, 3))
	assert.False(t, b.Occupied(0, 0))
}

func TestTallyQueriesPanicOutOfRange(t *testing.T) {
	b := newTestBoard(t, 3, 3)

	assert.Panics(t, func() { b.ColumnHeight(-1) })
	assert.Panics(t, func() { b.ColumnHeight(3) })
	assert.Panics(t, func() { b.RowWidth(-1) })
	assert.Panics(t, func() { b.RowWidth(3) })
}

func TestMaxHeightTracksTallestColumn(t *testing.T) {
	b := newTestBoard(t, 4, 6)

	require.Equal(t, PlaceOK, b.Place(mustPiece(t, "0 0 0 1 0 2"), 1, 0))
	b.Commit()
	assert.Equal(t, 3, b.MaxHeight())

	require.Equal(t, PlaceOK, b.Place(mustPiece(t, "0 0"), 3, 0))
	b.Commit()
	assert.Equal(t, 3, b.MaxHeight())
}
