package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

var getkeyHex string

var getkeyCmd = &cobra.Command{
	Use:   "getkey",
	Short: "Split a combined key into its encryption and tweak halves",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGetkey()
	},
}

func init() {
	rootCmd.AddCommand(getkeyCmd)
	getkeyCmd.Flags().StringVar(&getkeyHex, "key", "", "combined key, 32 bytes hex-encoded")
	_ = getkeyCmd.MarkFlagRequired("key")
}

func runGetkey() error {
	s, err := storeFromHexKey(getkeyHex)
	if err != nil {
		return err
	}

	if GetQuiet() {
		return nil
	}

	fmt.Printf("encryption key: %s\n", hex.EncodeToString(s.EncryptionKey()))
	fmt.Printf("tweak key:      %s\n", hex.EncodeToString(s.TweakKey()))
	return nil
}
