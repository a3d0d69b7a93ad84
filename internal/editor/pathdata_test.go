package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePathAbsolute(t *testing.T) {
	segs, err := ParsePath("M 10,20 30,20 30,40 Z")
	require.NoError(t, err)
	require.Equal(t, []Segment{
		MoveTo{X: 10, Y: 20},
		LineTo{X: 30, Y: 20},
		LineTo{X: 30, Y: 40},
		Close{},
	}, segs)
}

func TestParsePathRelative(t *testing.T) {
	segs, err := ParsePath("m10,20l5,0v5h-5z")
	require.NoError(t, err)
	require.Equal(t, []Segment{
		MoveTo{X: 10, Y: 20},
		LineTo{X: 15, Y: 20},
		LineTo{X: 15, Y: 25},
		LineTo{X: 10, Y: 25},
		Close{},
	}, segs)
}

func TestParsePathSmoothCubic(t *testing.T) {
	segs, err := ParsePath("M0,0C1,1 2,1 3,0s2,-1 3,0")
	require.NoError(t, err)
	require.Len(t, segs, 3)
	// the smooth control point reflects the previous second control point
	assert.Equal(t, CubicTo{X1: 4, Y1: -1, X2: 5, Y2: -1, X: 6, Y: 0}, segs[2])
}

func TestParsePathSmoothWithoutPriorCubic(t *testing.T) {
	segs, err := ParsePath("M1,2S3,4 5,6")
	require.NoError(t, err)
	require.Len(t, segs, 2)
	assert.Equal(t, CubicTo{X1: 1, Y1: 2, X2: 3, Y2: 4, X: 5, Y: 6}, segs[1])
}

func TestParsePathCompactNumbers(t *testing.T) {
	// minus signs and repeated decimal points separate numbers
	segs, err := ParsePath("M-7.5,0l2.5-2c0,0,.5-.5,.5-.5z")
	require.NoError(t, err)
	require.Equal(t, []Segment{
		MoveTo{X: -7.5, Y: 0},
		LineTo{X: -5, Y: -2},
		CubicTo{X1: -5, Y1: -2, X2: -4.5, Y2: -2.5, X: -4.5, Y: -2.5},
		Close{},
	}, segs)
}

func TestParsePathMultipleSubpaths(t *testing.T) {
	segs, err := ParsePath("M0,0h4v4z M10,10h2z")
	require.NoError(t, err)
	closes := 0
	moves := 0
	for _, s := range segs {
		switch s.(type) {
		case Close:
			closes++
		case MoveTo:
			moves++
		}
	}
	assert.Equal(t, 2, closes)
	assert.Equal(t, 2, moves)
}

func TestParsePathErrors(t *testing.T) {
	_, err := ParsePath("Q1,2 3,4")
	require.Error(t, err)

	_, err = ParsePath("10,20")
	require.Error(t, err)

	_, err = ParsePath("M1,")
	require.Error(t, err)
}

func TestFormatPathRoundTrip(t *testing.T) {
	segs, err := ParsePath("m10,20l5,0v5h-5s1,1 2,2z")
	require.NoError(t, err)

	again, err := ParsePath(FormatPath(segs))
	require.NoError(t, err)
	assert.Equal(t, segs, again)
}

func TestTranslate(t *testing.T) {
	segs, err := ParsePath("M1,2L3,4C5,6 7,8 9,10Z")
	require.NoError(t, err)

	moved := Translate(segs, 10, -1)
	require.Equal(t, []Segment{
		MoveTo{X: 11, Y: 1},
		LineTo{X: 13, Y: 3},
		CubicTo{X1: 15, Y1: 5, X2: 17, Y2: 7, X: 19, Y: 9},
		Close{},
	}, moved)
	// the input is left alone
	assert.Equal(t, MoveTo{X: 1, Y: 2}, segs[0])
}

func TestPathPoints(t *testing.T) {
	segs, err := ParsePath("M0,0L10,0L10,10L0,10Z")
	require.NoError(t, err)
	assert.Equal(t, [][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, PathPoints(segs))
}
