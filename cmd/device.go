package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/jiankeliu5/hardware-bitcoin-wallet/internal/keystore"
	"github.com/jiankeliu5/hardware-bitcoin-wallet/internal/nvstore"
	"github.com/jiankeliu5/hardware-bitcoin-wallet/internal/walletconfig"
)

// storeFromHexKey parses a hex-encoded 32-byte combined key (empty string is
// the all-zero key) into a fresh keystore.Store.
func storeFromHexKey(hexKey string) (*keystore.Store, error) {
	s := keystore.New()
	if hexKey == "" {
		return s, nil
	}

	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("--key must be hex-encoded: %w", err)
	}

	if err := s.SetKey(key); err != nil {
		return nil, err
	}

	return s, nil
}

// openDevice loads walletconfig and opens (or creates) the configured NV
// image file.
func openDevice() (*nvstore.FileDevice, *walletconfig.Config, error) {
	cfg, err := walletconfig.Load()
	if err != nil {
		return nil, nil, err
	}

	dev, err := nvstore.OpenFileDevice(cfg.ImagePath)
	if err != nil {
		if !cfg.AutoCreate {
			return nil, nil, err
		}
		dev, err = nvstore.CreateFileDevice(cfg.ImagePath, cfg.ImageSize)
		if err != nil {
			return nil, nil, err
		}
	}

	return dev, cfg, nil
}
