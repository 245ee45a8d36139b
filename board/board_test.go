package board_test

import (
	"bytes"
	"testing"

	"github.com/nagare-zdd/nagare/board"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsBadSize(t *testing.T) {
	_, err := board.New(0, 3)
	require.ErrorIs(t, err, board.ErrInvalidSize)

	_, err = board.New(3, -1)
	require.ErrorIs(t, err, board.ErrInvalidSize)
}

// S1: a 2x2 all-empty board is fully connected and has exactly the four
// boundary edges once properized.
func TestProperize_EmptyTwoByTwo(t *testing.T) {
	b, err := board.New(2, 2)
	require.NoError(t, err)

	b.Properize()

	require.True(t, b.IsConnected())
	require.Equal(t, 0, b.NumWhiteCells())
	require.Len(t, b.Edges(), 4)
}

// S2: a single Black cell with no outgoing arrow in the center of a 3x3
// board severs that cell from the graph but leaves the rest connected.
func TestProperize_BlackCellSeversNode(t *testing.T) {
	b, err := board.New(3, 3)
	require.NoError(t, err)

	require.NoError(t, b.SetCell(2, 2, board.Black, board.NoDirection))
	b.Properize()

	require.False(t, b.IsValidNode(b.Pos(2, 2)))
	require.True(t, b.IsConnected())
}

// S3: a White arrow cell at (2,1) pointing Up on a 3x3 board is
// meaningless, since Up from the top row points off the board.
func TestMeaninglessWhiteCell_OffBoardArrow(t *testing.T) {
	b, err := board.New(3, 3)
	require.NoError(t, err)

	require.NoError(t, b.SetCell(2, 1, board.White, board.Up))
	b.Properize()

	require.True(t, b.IsMeaninglessWhiteCell(2, 1))
	require.True(t, b.IsMeaningless())
}

// S4: a White cell with no arrow is always meaningless.
func TestMeaninglessWhiteCell_NoDirection(t *testing.T) {
	b, err := board.New(2, 2)
	require.NoError(t, err)

	require.NoError(t, b.SetCell(1, 1, board.White, board.NoDirection))
	b.Properize()

	require.True(t, b.IsMeaninglessWhiteCell(1, 1))
}

func TestMeaningless_ValidWhiteArrowInWindStream(t *testing.T) {
	b, err := board.New(4, 1)
	require.NoError(t, err)

	require.NoError(t, b.SetCell(1, 1, board.Black, board.Right))
	require.NoError(t, b.SetCell(3, 1, board.White, board.Right))
	b.Properize()

	require.False(t, b.IsMeaninglessWhiteCell(3, 1))
}

// S5: round-tripping a board through WritePZPRv3/ParsePZPRv3 reproduces
// the same cell-by-cell layout.
func TestRoundTripPZPRv3(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("pzprv3\nnagare\n3\n3\n. . .\n. u .\n. . B\n")

	b, err := board.ParsePZPRv3(&buf)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, b.WritePZPRv3(&out))

	b2, err := board.ParsePZPRv3(&out)
	require.NoError(t, err)

	require.Equal(t, b.Width(), b2.Width())
	require.Equal(t, b.Height(), b2.Height())
	for i := 0; i < b.Width()*b.Height(); i++ {
		require.Equal(t, b.ColorAt(i), b2.ColorAt(i), "cell %d color mismatch", i)
		require.Equal(t, b.Directions(i), b2.Directions(i), "cell %d direction mismatch", i)
	}
}

// Testable property 3: Properize is idempotent.
func TestProperize_Idempotent(t *testing.T) {
	b, err := board.New(4, 4)
	require.NoError(t, err)

	require.NoError(t, b.SetCell(1, 1, board.Black, board.Right))
	require.NoError(t, b.SetCell(4, 4, board.Black, board.Left))
	b.Properize()

	edgesBefore := b.Edges()
	whiteBefore := b.NumWhiteCells()

	b.Properize()

	require.Equal(t, edgesBefore, b.Edges())
	require.Equal(t, whiteBefore, b.NumWhiteCells())
}

// Testable property 4: Edges() is always in row-major construction order
// (horizontal edge at i before vertical edge at i, increasing i).
func TestProperize_EdgeOrder(t *testing.T) {
	b, err := board.New(3, 3)
	require.NoError(t, err)
	b.Properize()

	edges := b.Edges()
	require.NotEmpty(t, edges)
	for k := 1; k < len(edges); k++ {
		prev, cur := edges[k-1], edges[k]
		require.True(t, cur.V1 > prev.V1 || (cur.V1 == prev.V1 && cur.V2 > prev.V2))
	}
}

func TestIsValidEdge_RejectsRowWrap(t *testing.T) {
	b, err := board.New(3, 1)
	require.NoError(t, err)
	b.Properize()

	require.False(t, b.IsValidEdge(2, 3))
}

func TestWinds_NoBlackNoWind(t *testing.T) {
	b, err := board.New(3, 3)
	require.NoError(t, err)

	require.Empty(t, b.Winds(2, 2))
}

func TestWinds_SingleBlackBlowsIn(t *testing.T) {
	b, err := board.New(3, 3)
	require.NoError(t, err)

	require.NoError(t, b.SetCell(2, 3, board.Black, board.Up))
	b.Properize()

	require.Equal(t, board.Gray, b.ColorXY(2, 2))
	require.Contains(t, b.DirectionsXY(2, 2), board.Up)
}
