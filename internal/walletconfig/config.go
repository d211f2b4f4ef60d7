// Package walletconfig loads the configuration used to locate and size the
// NV image a FileDevice opens or creates.
package walletconfig

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds configuration for the wallet's NV image.
type Config struct {
	// ImagePath is the path to the NV image file on disk.
	ImagePath string `mapstructure:"image_path"`
	// ImageSize is the declared size in bytes of the addressable NV region,
	// used only when AutoCreate creates a fresh image. Must be a multiple
	// of BlockSize (16).
	ImageSize int64 `mapstructure:"image_size"`
	// BlockSize is the NV block size. It defaults to 16 and is exposed here
	// only so operators can see it reflected in a dumped config; Load does
	// not validate a configured value, and the core itself never reads this
	// field.
	BlockSize int `mapstructure:"block_size"`
	// AutoCreate creates the NV image at ImagePath if it does not already
	// exist, instead of failing on open.
	AutoCreate bool `mapstructure:"auto_create"`
}

// Load loads wallet configuration using Viper: a walletnv-config.yaml file
// from the search paths below (optional), defaults, and environment
// variables with the WALLETNV_ prefix.
func Load() (*Config, error) {
	viper.SetConfigName("walletnv-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("../..") // for tests running from subdirectories
	viper.AddConfigPath("$HOME/.walletnv")
	viper.AddConfigPath("/etc/walletnv")

	viper.SetDefault("image_path", "./wallet.nv")
	viper.SetDefault("image_size", 1<<20) // 1 MiB
	viper.SetDefault("block_size", 16)
	viper.SetDefault("auto_create", true)

	viper.SetEnvPrefix("WALLETNV")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("walletconfig: read config file: %w", err)
		}
		// config file not found is OK, we'll use defaults.
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("walletconfig: unmarshal config: %w", err)
	}

	if cfg.ImageSize%16 != 0 {
		return nil, fmt.Errorf("walletconfig: image_size %d is not a multiple of 16", cfg.ImageSize)
	}

	return &cfg, nil
}
