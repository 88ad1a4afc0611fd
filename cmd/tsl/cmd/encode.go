package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/tsl/internal/transcode"
)

var encodeBreakLines bool

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Translates whitespace into TSL notation",
	Long: `Reads text from stdin and writes its tabs, spaces and newlines as
T, S and L to stdout. All other characters are dropped, so piping the
result through tsl gives back the whitespace of the input.`,
	Args: cobra.NoArgs,
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().BoolVar(&encodeBreakLines, "break-lines", false, "start a new line after every L (default from config)")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	opts := transcode.EncodeOptions{BreakLines: appConfig.Encode.BreakLines}
	if cmd.Flags().Changed("break-lines") {
		opts.BreakLines = encodeBreakLines
	}

	timer := logger.StartTimer("encode").WithField("break_lines", opts.BreakLines)
	if err := transcode.EncodeTo(cmd.InOrStdin(), cmd.OutOrStdout(), opts); err != nil {
		timer.StopWithError(err)
		return err
	}
	timer.Stop()
	return nil
}
