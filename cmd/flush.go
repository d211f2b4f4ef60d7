package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flushCmd = &cobra.Command{
	Use:   "flush",
	Short: "Flush the NV image to persistent storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFlush()
	},
}

func init() {
	rootCmd.AddCommand(flushCmd)
}

func runFlush() error {
	dev, cfg, err := openDevice()
	if err != nil {
		return err
	}
	defer dev.Close()

	if err := dev.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	if !GetQuiet() {
		fmt.Printf("flushed %s\n", cfg.ImagePath)
	}
	return nil
}
