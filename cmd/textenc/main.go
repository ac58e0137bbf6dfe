// textenc inspects and applies the textio encoding policy from a shell:
// `textenc detect` reports what the policy would select for the standard
// streams, `textenc transcode` re-encodes data through it.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "textenc",
	Short:         "Inspect and apply the textio encoding policy",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func main() {
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(transcodeCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
