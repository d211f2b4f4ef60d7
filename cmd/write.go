package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jiankeliu5/hardware-bitcoin-wallet/internal/nvstore"
)

var (
	writeKeyHex  string
	writeAddress uint32
	writeDataHex string
)

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Write a byte range to the NV image",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWrite()
	},
}

func init() {
	rootCmd.AddCommand(writeCmd)
	writeCmd.Flags().StringVar(&writeKeyHex, "key", "", "combined key, 32 bytes hex-encoded")
	writeCmd.Flags().Uint32Var(&writeAddress, "address", 0, "NV byte address to write to")
	writeCmd.Flags().StringVar(&writeDataHex, "data", "", "data to write, hex-encoded")
	_ = writeCmd.MarkFlagRequired("key")
	_ = writeCmd.MarkFlagRequired("data")
}

func runWrite() error {
	keys, err := storeFromHexKey(writeKeyHex)
	if err != nil {
		return err
	}

	data, err := hex.DecodeString(writeDataHex)
	if err != nil {
		return fmt.Errorf("--data must be hex-encoded: %w", err)
	}

	dev, _, err := openDevice()
	if err != nil {
		return err
	}
	defer dev.Close()

	adapter := nvstore.New(dev, keys)

	if err := adapter.Write(data, writeAddress, len(data)); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	if !GetQuiet() {
		fmt.Printf("wrote %d bytes at address %#x\n", len(data), writeAddress)
	}
	return nil
}
