// Package cmd implements the walletnv command-line tool: a thin host
// wrapper driving the encrypted NV core end-to-end. It is the "host CLI"
// the core itself is agnostic to — it exists to exercise setkey, getkey,
// clearkey, keystatus, read, write and flush, not to implement wallet
// semantics of its own.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "walletnv",
	Short: "Encrypted NV block storage shim for a hardware wallet",
	Long: `walletnv drives an AES-XEX encrypted, random-access NV block store.

It keeps no key material between invocations: every subcommand that needs
key material takes it via --key (32 bytes, hex-encoded: the first 16 bytes
are the encryption key, the last 16 the tweak key).

Commands:
  setkey      Validate and report on a combined key
  getkey      Split a combined key into its encryption/tweak halves
  clearkey    Demonstrate the zero/erase lifecycle of a key
  keystatus   Report whether a key is set and the NV image's size
  read        Read a byte range from the NV image
  write       Write a byte range to the NV image
  flush       Flush the NV image to persistent storage`,
	Version: "0.1.0-dev",
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output except errors")
}

// GetVerbose returns the verbose flag value.
func GetVerbose() bool {
	return verbose
}

// GetQuiet returns the quiet flag value.
func GetQuiet() bool {
	return quiet
}
