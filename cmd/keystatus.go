package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var keystatusHex string

var keystatusCmd = &cobra.Command{
	Use:   "keystatus",
	Short: "Report key status and the configured NV image's size",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runKeystatus()
	},
}

func init() {
	rootCmd.AddCommand(keystatusCmd)
	keystatusCmd.Flags().StringVar(&keystatusHex, "key", "", "combined key, 32 bytes hex-encoded (omit to check an all-zero key)")
}

func runKeystatus() error {
	s, err := storeFromHexKey(keystatusHex)
	if err != nil {
		return err
	}

	dev, cfg, err := openDevice()
	if err != nil {
		return err
	}
	defer dev.Close()

	if GetQuiet() {
		return nil
	}

	fmt.Printf("image:      %s\n", cfg.ImagePath)
	fmt.Printf("image id:   %s\n", dev.ID())
	fmt.Printf("size:       %d bytes\n", dev.Size())
	fmt.Printf("key set:    %t\n", s.IsKeyNonzero())
	return nil
}
