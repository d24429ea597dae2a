// report.go implements the "quiz report" command for past quiz scores.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/berth-dev/quiz/internal/config"
	"github.com/berth-dev/quiz/internal/log"
	quizreport "github.com/berth-dev/quiz/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show past quiz scores",
	Long: `Summarize the attempts recorded in .quiz/log.jsonl: when each
quiz was played, the bank, the score, and how many questions timed out.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

var lastFlag int

func init() {
	reportCmd.Flags().IntVar(&lastFlag, "last", 10, "Show only the most recent attempts (0 for all)")
}

func runReport(cmd *cobra.Command, args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	return printReport(cmd.OutOrStdout(), dir, lastFlag)
}

func printReport(out io.Writer, dir string, last int) error {
	events, err := log.ReadFile(filepath.Join(config.Dir(dir), "log.jsonl"))
	if err != nil {
		return fmt.Errorf("failed to read event log: %w", err)
	}

	fmt.Fprint(out, quizreport.FormatReport(quizreport.Build(events), last))
	return nil
}
