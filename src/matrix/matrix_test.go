package matrix

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sketchtree/src/sketch"
)

// testSketches returns three hand-built sketches with known bin overlaps:
// a and b share half their bins, c shares none with either
func testSketches() []*sketch.Sketch {
	return []*sketch.Sketch{
		{ID: "a", KmerSize: 16, SketchSize: 4, Bins: []uint64{1, 2, 3, 4}},
		{ID: "b", KmerSize: 16, SketchSize: 4, Bins: []uint64{1, 2, 30, 40}},
		{ID: "c", KmerSize: 16, SketchSize: 4, Bins: []uint64{100, 200, 300, 400}},
	}
}

func TestBuild(t *testing.T) {
	dm, err := Build(testSketches(), 1)
	require.NoError(t, err)
	require.Equal(t, 3, dm.Size())
	assert.Equal(t, []string{"a", "b", "c"}, dm.Names())

	// zero diagonal and symmetric access
	for i := 0; i < 3; i++ {
		assert.Zero(t, dm.Get(i, i))
		for j := 0; j < 3; j++ {
			assert.Equal(t, dm.Get(i, j), dm.Get(j, i))
		}
	}

	// a and b share 2 of 4 bins: J = 0.5, d = -ln(2J/(1+J))/k = ln(1.5)/16
	assert.InDelta(t, math.Log(1.5)/16.0, dm.Get(0, 1), 1e-12)

	// c shares nothing: clipped to the maximum distance
	assert.Equal(t, sketch.MaxDistance, dm.Get(0, 2))
	assert.Equal(t, sketch.MaxDistance, dm.Get(1, 2))
}

func TestBuildDeterminism(t *testing.T) {
	serial, err := Build(testSketches(), 1)
	require.NoError(t, err)
	parallel, err := Build(testSketches(), 4)
	require.NoError(t, err)
	for i := 0; i < serial.Size(); i++ {
		for j := 0; j < serial.Size(); j++ {
			assert.Equal(t, serial.Get(i, j), parallel.Get(i, j))
		}
	}
}

func TestBuildErrors(t *testing.T) {
	_, err := Build(testSketches()[:1], 1)
	assert.Error(t, err, "fewer than 2 sketches should be rejected")

	// mismatched sketches surface the offending pair
	bad := testSketches()
	bad[2].SketchSize = 8
	bad[2].Bins = make([]uint64, 8)
	_, err = Build(bad, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "c")
}

func TestSetGet(t *testing.T) {
	dm := NewDistanceMatrix([]string{"x", "y", "z"})
	dm.Set(0, 2, 0.25)
	dm.Set(2, 1, 0.5)
	assert.Equal(t, 0.25, dm.Get(2, 0))
	assert.Equal(t, 0.5, dm.Get(1, 2))
	assert.Zero(t, dm.Get(1, 1))
}

func TestPhylipRoundTrip(t *testing.T) {
	names := []string{"genomeA", "genomeB", "genomeC", "genomeD"}
	dm := NewDistanceMatrix(names)
	dm.Set(0, 1, 0.123456)
	dm.Set(0, 2, 0.5)
	dm.Set(0, 3, 1.25)
	dm.Set(1, 2, 0.75)
	dm.Set(1, 3, 2.0)
	dm.Set(2, 3, 0.015625)

	var buf bytes.Buffer
	require.NoError(t, dm.WritePhylip(&buf))

	parsed, err := ReadPhylip(&buf)
	require.NoError(t, err)
	require.Equal(t, 4, parsed.Size())
	assert.Equal(t, names, parsed.Names())
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.InDelta(t, dm.Get(i, j), parsed.Get(i, j), 1e-6)
		}
	}
}

func TestReadPhylipErrors(t *testing.T) {
	_, err := ReadPhylip(bytes.NewReader(nil))
	assert.Error(t, err, "empty input should be rejected")

	_, err = ReadPhylip(bytes.NewReader([]byte("not a count\n")))
	assert.Error(t, err, "bad genome count should be rejected")

	_, err = ReadPhylip(bytes.NewReader([]byte("3\na 0 1 1\nb 1 0 1\n")))
	assert.Error(t, err, "truncated matrix should be rejected")

	_, err = ReadPhylip(bytes.NewReader([]byte("2\na 0 1 1\nb 1 0 1\n")))
	assert.Error(t, err, "row with wrong field count should be rejected")

	_, err = ReadPhylip(bytes.NewReader([]byte("2\na 0 -1\nb -1 0\n")))
	assert.Error(t, err, "negative distance should be rejected")
}
