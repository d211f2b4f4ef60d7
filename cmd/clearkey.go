package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearkeyHex string

var clearkeyCmd = &cobra.Command{
	Use:   "clearkey",
	Short: "Set a key, then erase it and report the resulting zero status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClearkey()
	},
}

func init() {
	rootCmd.AddCommand(clearkeyCmd)
	clearkeyCmd.Flags().StringVar(&clearkeyHex, "key", "", "combined key, 32 bytes hex-encoded")
	_ = clearkeyCmd.MarkFlagRequired("key")
}

func runClearkey() error {
	s, err := storeFromHexKey(clearkeyHex)
	if err != nil {
		return err
	}

	s.ClearKey()

	if GetQuiet() {
		return nil
	}

	fmt.Printf("key cleared: non-zero=%t\n", s.IsKeyNonzero())
	return nil
}
