// validate.go implements the "quiz validate" command.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/berth-dev/quiz/banks"
	"github.com/berth-dev/quiz/internal/bank"
	"github.com/berth-dev/quiz/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check a question bank",
	Long: `Load and validate a question bank and print a summary.
Without a path, the bank from .quiz/config.yaml is checked, or the
built-in bank when none is configured.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		dir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		cfg, err := config.ReadConfig(dir)
		if err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
		path = cfg.Bank.Path
	}
	return validateBank(cmd.OutOrStdout(), path)
}

func validateBank(out io.Writer, path string) error {
	name := path
	if name == "" {
		name = banks.DefaultName + " (built in)"
	}

	b, err := bank.Load(path)
	if err != nil {
		return fmt.Errorf("invalid bank %s: %w", name, err)
	}

	fmt.Fprintf(out, "Bank:      %s\n", name)
	if b.Title != "" {
		fmt.Fprintf(out, "Title:     %s\n", b.Title)
	}
	fmt.Fprintf(out, "Questions: %d\n", len(b.Questions))
	for i, q := range b.Questions {
		fmt.Fprintf(out, "  %2d. %s (%d options, answer %d)\n", i+1, q.Description, len(q.Options), q.Correct()+1)
	}
	if len(b.Questions) == 0 {
		fmt.Fprintln(out, "Warning: the bank is empty; the quiz will finish immediately with 0/0.")
	}
	fmt.Fprintln(out, "OK")
	return nil
}
