package analysis

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/mmuldo/viscm/colormap"
	"github.com/mmuldo/viscm/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var blackWhite = []palette.RGB{{0, 0, 0}, {1, 1, 1}}

func viridis(t *testing.T) []palette.RGB {
	t.Helper()
	reg, err := colormap.Builtin(64)
	require.NoError(t, err)
	cm, ok := reg.Get("viridis")
	require.True(t, ok)
	return cm.Colors()
}

func reversed(colors []palette.RGB) []palette.RGB {
	rev := make([]palette.RGB, len(colors))
	for i, c := range colors {
		rev[len(rev)-1-i] = c
	}
	return rev
}

func TestPerceptualDeltas(t *testing.T) {
	colors := viridis(t)
	for _, m := range palette.Metrics() {
		deltas := PerceptualDeltas(colors, m)
		require.Len(t, deltas, len(colors)-1, m.String())
		for _, d := range deltas {
			assert.GreaterOrEqual(t, d, 0.0, m.String())
		}
	}
}

func TestPerceptualDeltasDegenerate(t *testing.T) {
	assert.Empty(t, PerceptualDeltas(nil, palette.CIEDE2000))
	assert.Empty(t, PerceptualDeltas(blackWhite[:1], palette.CIEDE2000))
	assert.NotNil(t, PerceptualDeltas(nil, palette.CIEDE2000))
}

func TestBlackToWhite(t *testing.T) {
	pd := PerceptualDeltas(blackWhite, palette.CIEDE2000)
	require.Len(t, pd, 1)
	assert.Greater(t, pd[0], 0.0)

	ld := LightnessDeltas(blackWhite)
	require.Len(t, ld, 1)
	assert.InDelta(t, 100, ld[0], 0.05)
	assert.LessOrEqual(t, ld[0], 100.0+1e-3)
}

func TestLightnessDeltasReverse(t *testing.T) {
	colors := viridis(t)
	fwd := LightnessDeltas(colors)
	back := LightnessDeltas(reversed(colors))
	require.Len(t, fwd, len(colors)-1)
	require.Len(t, back, len(fwd))

	neg := make([]float64, len(back))
	for i, d := range back {
		neg[len(neg)-1-i] = -d
	}
	if diff := cmp.Diff(fwd, neg, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("reversed lightness deltas mismatch (-want +got):\n%s", diff)
	}
}

func TestLightnessDeltasUseGrayscale(t *testing.T) {
	colors := []palette.RGB{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	gray := palette.ToGrayscale(colors)
	want := []float64{
		palette.Lightness(gray[1]) - palette.Lightness(gray[0]),
		palette.Lightness(gray[2]) - palette.Lightness(gray[1]),
	}
	assert.Equal(t, want, LightnessDeltas(colors))
	assert.Empty(t, LightnessDeltas(colors[:1]))
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name   string
		deltas []float64
		want   Stats
	}{
		{name: "empty", want: Stats{}},
		{name: "single", deltas: []float64{5}, want: Stats{5, 5, 5, 5}},
		{name: "constant zero", deltas: []float64{0, 0, 0}, want: Stats{}},
		{
			name:   "signed",
			deltas: []float64{3, -4},
			want:   Stats{TotalLength: 7, RMSDeviation: math.Sqrt(12.5), MaxDelta: 3, MinDelta: -4},
		},
		{
			name:   "positive",
			deltas: []float64{1, 2, 3, 4},
			want:   Stats{TotalLength: 10, RMSDeviation: math.Sqrt(7.5), MaxDelta: 4, MinDelta: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStats(tt.deltas)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("ComputeStats(%v) mismatch (-want +got):\n%s", tt.deltas, diff)
			}
			assert.False(t, math.IsNaN(got.RMSDeviation))
		})
	}
}

func TestStatsBounds(t *testing.T) {
	deltas := LightnessDeltas(viridis(t))
	s := ComputeStats(deltas)
	assert.GreaterOrEqual(t, s.TotalLength, 0.0)
	for _, d := range deltas {
		assert.True(t, s.MinDelta <= d && d <= s.MaxDelta)
	}
}

func TestUniformity(t *testing.T) {
	assert.Zero(t, Stats{}.Uniformity())
	assert.InDelta(t, 50, Stats{TotalLength: 10, RMSDeviation: 5}.Uniformity(), 1e-12)
}

func TestLabCoordinates(t *testing.T) {
	c := LabCoordinates(blackWhite)
	require.Len(t, c.X, 2)
	require.Len(t, c.Y, 2)
	require.Len(t, c.Z, 2)
	assert.InDelta(t, 0, c.Z[0], 1e-6)
	assert.InDelta(t, 100, c.Z[1], 0.05)
	assert.InDelta(t, 0, c.X[1], 0.05)
	assert.InDelta(t, 0, c.Y[1], 0.05)
}

func TestAnalyze(t *testing.T) {
	cm, err := colormap.New("bw", blackWhite, colormap.Metadata{})
	require.NoError(t, err)

	a := Analyze(cm, palette.CIE76)
	assert.Equal(t, "bw", a.Name)
	assert.Equal(t, "76", a.Metric)
	assert.Equal(t, 2, a.Points)
	require.Len(t, a.PerceptualDeltas, 1)
	assert.InDelta(t, a.PerceptualDeltas[0], a.Perceptual.TotalLength, 1e-12)
	assert.InDelta(t, 100, a.Lightness.MaxDelta, 0.05)
	require.Len(t, a.Grayscale, 2)
	assert.InDelta(t, 1, a.Grayscale[1].R, 1e-4)
	assert.Len(t, a.Lab.Z, 2)
}
