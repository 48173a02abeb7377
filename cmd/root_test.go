package cmd

import (
	"testing"

	"github.com/mmuldo/viscm/palette"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryAndLookup(t *testing.T) {
	viper.Set("colormaps", "")
	viper.Set("steps", 32)
	viper.Set("colormap", "gray")
	defer viper.Reset()

	reg, err := registry()
	require.NoError(t, err)

	cm, err := lookup(reg, "")
	require.NoError(t, err)
	assert.Equal(t, "gray", cm.Name)
	assert.Equal(t, 32, cm.Len())

	cm, err = lookup(reg, "hot")
	require.NoError(t, err)
	assert.Equal(t, "hot", cm.Name)

	_, err = lookup(reg, "nope")
	assert.Error(t, err)
}

func TestMetric(t *testing.T) {
	defer viper.Reset()

	viper.Set("metric", "cmc")
	assert.Equal(t, palette.CMC, metric())

	viper.Set("metric", "stale")
	assert.Equal(t, palette.CIEDE2000, metric())
}
