// init.go implements the "quiz init" command.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/berth-dev/quiz/internal/bank"
	"github.com/berth-dev/quiz/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a quiz project in the current directory",
	Long: `Create .quiz/config.yaml with default settings and a sample
question bank at .quiz/bank.json to edit. The config points at the
sample bank, so "quiz" plays it right away.`,
	RunE: runInit,
}

var forceFlag bool

func init() {
	initCmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing .quiz/ setup without asking")
}

// sampleBankPath is relative to the project root.
var sampleBankPath = filepath.Join(".quiz", "bank.json")

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	return initProject(dir, cmd.InOrStdin(), cmd.OutOrStdout(), forceFlag)
}

func initProject(dir string, in io.Reader, out io.Writer, force bool) error {
	configPath := filepath.Join(config.Dir(dir), "config.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		fmt.Fprintln(out, "Warning: .quiz/config.yaml already exists.")
		fmt.Fprint(out, "Reinitialize? [y/N]: ")
		answer, _ := bufio.NewReader(in).ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	sample, err := bank.Default()
	if err != nil {
		return fmt.Errorf("loading sample bank: %w", err)
	}
	data, err := sample.Encode(bank.FormatJSON)
	if err != nil {
		return fmt.Errorf("encoding sample bank: %w", err)
	}
	if err := os.MkdirAll(config.Dir(dir), 0755); err != nil {
		return fmt.Errorf("creating .quiz directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, sampleBankPath), data, 0644); err != nil {
		return fmt.Errorf("writing sample bank: %w", err)
	}

	cfg := config.DefaultConfig()
	cfg.Bank.Path = sampleBankPath
	if err := config.WriteConfig(dir, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if err := ensureGitignore(dir); err != nil {
		fmt.Fprintf(out, "Warning: failed to set up .gitignore: %v\n", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Quiz initialized")
	fmt.Fprintln(out, "  Configuration: .quiz/config.yaml")
	fmt.Fprintf(out, "  Sample bank:   %s (%d questions)\n", sampleBankPath, len(sample.Questions))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit the sample bank or point bank.path at your own")
	fmt.Fprintln(out, "  2. Check it with: quiz validate")
	fmt.Fprintln(out, "  3. Play: quiz")
	return nil
}

// ensureGitignore appends the quiz runtime files to .gitignore, skipping
// entries that are already present.
func ensureGitignore(dir string) error {
	gitignorePath := filepath.Join(dir, ".gitignore")

	requiredEntries := []string{
		".env",
		".quiz/log.jsonl",
	}

	existing := ""
	if data, err := os.ReadFile(gitignorePath); err == nil {
		existing = string(data)
	}

	var missing []string
	for _, entry := range requiredEntries {
		if !strings.Contains(existing, entry) {
			missing = append(missing, entry)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var toAppend strings.Builder
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		toAppend.WriteString("\n")
	}
	if existing != "" {
		toAppend.WriteString("\n# Added by quiz init\n")
	}
	for _, entry := range missing {
		toAppend.WriteString(entry + "\n")
	}

	f, err := os.OpenFile(gitignorePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening .gitignore: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(toAppend.String()); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}
	return nil
}
