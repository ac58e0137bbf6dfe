package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pkt.systems/textio"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Report the encodings the policy resolves for this process",
	Long: `Detect prints the dev-mode state, the locale's preferred encoding, and
the device encoding (if any) of stdin, stdout, and stderr. Terminals
report a device encoding; pipes and redirections do not.`,
	Args: cobra.NoArgs,
	RunE: runDetect,
}

func runDetect(cmd *cobra.Command, args []string) error {
	rt := textio.DefaultRuntime()
	label := color.New(color.Bold)
	onVal := color.New(color.FgGreen)
	offVal := color.New(color.FgYellow)

	label.Fprint(cmd.OutOrStdout(), "dev mode:        ")
	if rt.DevMode {
		onVal.Fprintln(cmd.OutOrStdout(), "on")
	} else {
		offVal.Fprintln(cmd.OutOrStdout(), "off")
	}

	label.Fprint(cmd.OutOrStdout(), "locale encoding: ")
	if name, ok := rt.LookupLocaleEncoding(); ok {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	} else {
		offVal.Fprintln(cmd.OutOrStdout(), "(none)")
	}

	streams := []struct {
		name string
		file *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	}
	for _, s := range streams {
		label.Fprintf(cmd.OutOrStdout(), "%-7s device:  ", s.name)
		if name, ok := rt.LookupDeviceEncoding(s.file.Fd()); ok {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		} else {
			offVal.Fprintln(cmd.OutOrStdout(), "(none)")
		}
	}
	return nil
}
