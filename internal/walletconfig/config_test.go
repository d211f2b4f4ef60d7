package walletconfig

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("WALLETNV_IMAGE_PATH", "")
	viper.SetEnvPrefix("WALLETNV")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "./wallet.nv", cfg.ImagePath)
	assert.Equal(t, int64(1<<20), cfg.ImageSize)
	assert.Equal(t, 16, cfg.BlockSize)
	assert.True(t, cfg.AutoCreate)
}

func TestLoadEnvOverride(t *testing.T) {
	viper.Reset()
	t.Setenv("WALLETNV_IMAGE_PATH", "/tmp/custom.nv")
	t.Setenv("WALLETNV_AUTO_CREATE", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom.nv", cfg.ImagePath)
	assert.False(t, cfg.AutoCreate)
}

func TestLoadRejectsUnalignedImageSize(t *testing.T) {
	viper.Reset()
	t.Setenv("WALLETNV_IMAGE_SIZE", "17")

	_, err := Load()
	assert.Error(t, err)
}
