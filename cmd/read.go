package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jiankeliu5/hardware-bitcoin-wallet/internal/nvstore"
)

var (
	readKeyHex  string
	readAddress uint32
	readLength  int
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Read a byte range from the NV image",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRead()
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().StringVar(&readKeyHex, "key", "", "combined key, 32 bytes hex-encoded")
	readCmd.Flags().Uint32Var(&readAddress, "address", 0, "NV byte address to read from")
	readCmd.Flags().IntVar(&readLength, "length", 16, "number of bytes to read")
	_ = readCmd.MarkFlagRequired("key")
}

func runRead() error {
	keys, err := storeFromHexKey(readKeyHex)
	if err != nil {
		return err
	}

	dev, _, err := openDevice()
	if err != nil {
		return err
	}
	defer dev.Close()

	adapter := nvstore.New(dev, keys)

	out := make([]byte, readLength)
	if err := adapter.Read(out, readAddress, readLength); err != nil {
		return fmt.Errorf("read: %w", err)
	}

	if !GetQuiet() {
		fmt.Println(hex.EncodeToString(out))
	}
	return nil
}
