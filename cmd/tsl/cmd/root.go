package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	tslerror "github.com/msto63/tsl/foundation/core/error"
	tsllog "github.com/msto63/tsl/foundation/core/log"
	"github.com/msto63/tsl/internal/transcode"
	"github.com/msto63/tsl/pkg/core/config"
	"github.com/msto63/tsl/pkg/core/logging"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string

	appConfig *config.Config
	logger    = tsllog.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "tsl",
	Short: "Translates TSL notation into whitespace",
	Long: `tsl reads TSL source from stdin and writes the whitespace it
describes to stdout.

  T  tab
  S  space
  L  newline
  #  comment up to the end of the line

Every other character, including the line breaks of the source, is
ignored. Only L produces a newline in the output.`,
	Example: `  echo 'SSL # two spaces, newline' | tsl
  tsl encode < program.ws > program.tsl`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initApp,
	RunE:              runDecode,
}

// Execute runs the command line and reports a failure on stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// ExitCode maps an error returned by Execute to a process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return tslerror.GetCode(err).ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $TSL_CONFIG or ./configs/tsl.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: json, text, console, logfmt")
}

func initApp(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		appConfig, err = config.Load(cfgFile)
	} else {
		appConfig, err = config.Discover()
	}
	if err != nil {
		return err
	}

	lc := logging.FromConfig(appConfig)
	lc.Output = cmd.ErrOrStderr()
	if verbose {
		lc.Level = "debug"
	}
	if logFormat != "" {
		if _, err := tsllog.ParseFormat(logFormat); err != nil {
			return tslerror.Wrap(err, "invalid --log-format").
				WithCode(tslerror.CodeInvalidInput).
				WithOperation("cmd.initApp")
		}
		lc.Format = logFormat
	}

	logger = logging.NewLogger(lc).WithField("command", cmd.Name())
	if path, skipped := appConfig.Skipped(); skipped != nil {
		logger.WarnWithErr("ignoring config file, using defaults", skipped, tsllog.Field("config_path", path))
	}
	logger.Debug("configuration loaded", tsllog.Fields{
		"config_path": appConfig.Path(),
		"log_level":   logger.GetLevel().String(),
	})
	return nil
}

func runDecode(cmd *cobra.Command, args []string) error {
	timer := logger.StartTimer("decode")

	stats, err := transcode.Decode(cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		timer.StopWithError(err)
		return err
	}

	timer.WithFields(statsFields(stats)).Stop()
	return nil
}

func statsFields(s transcode.Stats) tsllog.Fields {
	return tsllog.Fields{
		"lines":         s.Lines,
		"comment_lines": s.CommentLines,
		"tabs":          s.Tabs,
		"spaces":        s.Spaces,
		"newlines":      s.Newlines,
		"ignored":       s.Ignored,
		"bytes":         s.Bytes(),
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("Error: "+err.Error()))
}
