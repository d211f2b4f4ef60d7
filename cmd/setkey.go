package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var setkeyHex string

var setkeyCmd = &cobra.Command{
	Use:   "setkey",
	Short: "Validate a combined key and report its zero/non-zero status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetkey()
	},
}

func init() {
	rootCmd.AddCommand(setkeyCmd)
	setkeyCmd.Flags().StringVar(&setkeyHex, "key", "", "combined key, 32 bytes hex-encoded")
	_ = setkeyCmd.MarkFlagRequired("key")
}

func runSetkey() error {
	s, err := storeFromHexKey(setkeyHex)
	if err != nil {
		return err
	}

	if GetQuiet() {
		return nil
	}

	fmt.Printf("key set: non-zero=%t\n", s.IsKeyNonzero())
	return nil
}
