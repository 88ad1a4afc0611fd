package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/tsl/internal/transcode"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Shows what decoding stdin would produce",
	Long: `Reads TSL source from stdin and prints a summary instead of the
whitespace: number of lines, comment lines, emitted tabs, spaces and
newlines, and ignored characters.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	lines, err := transcode.ReadLines(cmd.InOrStdin())
	if err != nil {
		logger.LogError(err)
		return err
	}

	stats := transcode.Analyze(lines)
	logger.Debug("input analyzed", statsFields(stats))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), renderStats(stats))
	return err
}

func renderStats(s transcode.Stats) string {
	rows := []struct {
		label string
		value int
	}{
		{"Lines", s.Lines},
		{"Comment lines", s.CommentLines},
		{"Tabs (T)", s.Tabs},
		{"Spaces (S)", s.Spaces},
		{"Newlines (L)", s.Newlines},
		{"Ignored", s.Ignored},
		{"Output bytes", s.Bytes()},
	}

	rendered := []string{titleStyle.Render("TSL statistics")}
	for _, row := range rows {
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(row.label),
			valueStyle.Render(strconv.Itoa(row.value)),
		))
	}

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rendered...))
}
