package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pkt.systems/textio"
)

var (
	transcodeFrom string
	transcodeTo   string
)

var transcodeCmd = &cobra.Command{
	Use:   "transcode [file]",
	Short: "Re-encode text through the policy",
	Long: `Transcode decodes a file (or stdin) using --from and re-encodes it to
stdout using --to. Leaving --from empty exercises the omission path: the
locale default applies and, in dev mode, the pending-deprecation hint is
reported. --from locale selects the sentinel explicitly and stays quiet.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTranscode,
}

func init() {
	transcodeCmd.Flags().StringVarP(&transcodeFrom, "from", "f", "", "source encoding (empty for the default policy, 'locale' for the sentinel)")
	transcodeCmd.Flags().StringVarP(&transcodeTo, "to", "t", "utf-8", "target encoding ('locale' for the sentinel)")
}

func runTranscode(cmd *cobra.Command, args []string) error {
	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	r, err := textio.NewReaderWithOptions(in, textio.ReaderOptions{
		Encoding:   textio.ParseEncoding(transcodeFrom),
		CallerSkip: 1,
	})
	if err != nil {
		return err
	}

	w, err := textio.NewWriterWithOptions(cmd.OutOrStdout(), textio.WriterOptions{
		Encoding: textio.ParseEncoding(transcodeTo),
	})
	if err != nil {
		return err
	}

	if _, err := io.Copy(w, r); err != nil {
		return fmt.Errorf("transcode: %w", err)
	}
	return w.Close()
}
