package colormap

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmuldo/viscm/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	black = palette.RGB{0, 0, 0}
	red   = palette.RGB{1, 0, 0}
	white = palette.RGB{1, 1, 1}
)

func mustNew(t *testing.T, name string, colors ...palette.RGB) Colormap {
	t.Helper()
	cm, err := New(name, colors, Metadata{})
	require.NoError(t, err)
	return cm
}

func TestNew(t *testing.T) {
	_, err := New("empty", nil, Metadata{})
	assert.Error(t, err)
	_, err = New("", []palette.RGB{black}, Metadata{})
	assert.Error(t, err)

	src := []palette.RGB{black, white}
	cm, err := New("bw", src, Metadata{Category: "sequential"})
	require.NoError(t, err)
	src[0] = red
	assert.Equal(t, black, cm.At(0), "New must copy its input")

	got := cm.Colors()
	got[1] = red
	assert.Equal(t, white, cm.At(1), "Colors must return a copy")
}

func TestIndex(t *testing.T) {
	cm := mustNew(t, "three", black, red, white)
	tests := []struct {
		t    float64
		want int
	}{
		{0, 0},
		{-0.5, 0},
		{0.24, 0},
		{0.25, 1},
		{0.5, 1},
		{0.75, 2},
		{1, 2},
		{3, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cm.Index(tt.t), "Index(%v)", tt.t)
	}

	one := mustNew(t, "one", red)
	for _, v := range []float64{0, 0.5, 1} {
		assert.Equal(t, red, one.Nearest(v))
	}
}

func TestReversed(t *testing.T) {
	cm := mustNew(t, "bw", black, red, white).Reversed()
	assert.Equal(t, "bw_r", cm.Name)
	assert.Equal(t, []palette.RGB{white, red, black}, cm.Colors())
}

func TestStops(t *testing.T) {
	s := NewStops(black, white)
	assert.Equal(t, black, s.At(-1))
	assert.Equal(t, white, s.At(2))
	mid := s.At(0.5)
	assert.InDelta(t, 0.5, mid.R, 1e-12)

	hot := Hot.At(0.365079)
	assert.Equal(t, red, hot)
	assert.Equal(t, palette.RGB{}, Stops(nil).At(0.5))
}

func TestSample(t *testing.T) {
	cm, err := Sample("viridis", Viridis, 256, Metadata{Source: "test"})
	require.NoError(t, err)
	assert.Equal(t, 256, cm.Len())
	assert.Equal(t, 256, cm.Metadata.NumPoints)
	assert.Equal(t, Viridis[0].Color, cm.At(0))
	assert.Equal(t, Viridis[len(Viridis)-1].Color, cm.At(255))

	one, err := Sample("one", Gray, 1, Metadata{})
	require.NoError(t, err)
	assert.Equal(t, []palette.RGB{black}, one.Colors())

	_, err = Sample("none", Gray, 0, Metadata{})
	assert.Error(t, err)
}

func TestRegistry(t *testing.T) {
	a := mustNew(t, "a", black)
	b, err := New("b", []palette.RGB{white}, Metadata{Category: "x"})
	require.NoError(t, err)
	c, err := New("c", []palette.RGB{red}, Metadata{Category: "w"})
	require.NoError(t, err)

	reg, err := NewRegistry(b, a, c)
	require.NoError(t, err)
	assert.Equal(t, 3, reg.Len())
	assert.Equal(t, []string{"b", "a", "c"}, reg.Names())
	assert.Equal(t, []string{"w", "x"}, reg.Categories())
	assert.Equal(t, []Colormap{b}, reg.ByCategory("x"))
	assert.Empty(t, reg.ByCategory("nope"))

	first, ok := reg.First()
	assert.True(t, ok)
	assert.Equal(t, "b", first.Name)

	_, ok = reg.Get("missing")
	assert.False(t, ok)

	_, err = NewRegistry(a, a)
	assert.Error(t, err)
	_, err = NewRegistry(Colormap{Name: "zero"})
	assert.Error(t, err)
}

func TestBuiltin(t *testing.T) {
	reg, err := Builtin(DefaultSteps)
	require.NoError(t, err)
	for _, name := range []string{"viridis", "gray", "hot"} {
		cm, ok := reg.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, DefaultSteps, cm.Len())
		assert.Equal(t, "builtin", cm.Metadata.Source)
	}
	assert.Len(t, reg.ByCategory("sequential2"), 2)
}

const index = `{
  "colormaps": [
    {"name": "bw", "colors": [{"r": 0, "g": 0, "b": 0}, {"r": 1, "g": 1, "b": 1}],
     "metadata": {"source": "matplotlib", "num_points": 2, "type": "continuous"}},
    {"name": "reds", "colors": [{"r": 1, "g": 0, "b": 0}],
     "metadata": {"category": "custom"}}
  ],
  "categories": {"sequential": ["bw"], "other": ["reds"]},
  "metadata": {"total_count": 2}
}`

func TestReadIndex(t *testing.T) {
	reg, err := ReadIndex(strings.NewReader(index))
	require.NoError(t, err)
	assert.Equal(t, []string{"bw", "reds"}, reg.Names())

	bw, _ := reg.Get("bw")
	assert.Equal(t, Metadata{Source: "matplotlib", NumPoints: 2, Type: "continuous", Category: "sequential"}, bw.Metadata)
	assert.Equal(t, []palette.RGB{black, white}, bw.Colors())

	reds, _ := reg.Get("reds")
	assert.Equal(t, "custom", reds.Metadata.Category)
}

func TestReadIndexErrors(t *testing.T) {
	for _, src := range []string{
		`{`,
		`{"colormaps": [{"name": "empty", "colors": []}]}`,
		`{"colormaps": [{"name": "a", "colors": [{"r":0,"g":0,"b":0}]}, {"name": "a", "colors": [{"r":0,"g":0,"b":0}]}]}`,
	} {
		_, err := ReadIndex(strings.NewReader(src))
		assert.Error(t, err, src)
	}
}

func TestDefinitionRoundTrip(t *testing.T) {
	cm, err := New("bw", []palette.RGB{black, white}, Metadata{Category: "sequential"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteDefinition(&buf, cm))

	path := filepath.Join(t.TempDir(), "index.json")
	idx := `{"colormaps": [` + buf.String() + `]}`
	require.NoError(t, os.WriteFile(path, []byte(idx), 0644))

	reg, err := LoadIndex(path)
	require.NoError(t, err)
	got, ok := reg.Get("bw")
	require.True(t, ok)
	assert.Equal(t, cm, got)

	_, err = LoadIndex(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
