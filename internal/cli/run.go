package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"
)

// newRunCmd creates the run command. It runs the skill project in the given
// directory (default: the current one) with "go run", pointing the skill at
// the selected configuration file.
func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [dir]",
		Short: "Run a skill project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			abs, err := filepath.Abs(dir)
			if err != nil {
				return err
			}
			if _, err := os.Stat(filepath.Join(abs, "go.mod")); err != nil {
				return fmt.Errorf("%s is not a skill project: %w", abs, err)
			}

			okLabel.Fprintf(cmd.OutOrStdout(), "Running skill in %s\n", abs)

			run := exec.Command("go", "run", ".")
			run.Dir = abs
			run.Env = append(os.Environ(), "SKILL_CONF="+configFile)
			run.Stdin = os.Stdin
			run.Stdout = os.Stdout
			run.Stderr = os.Stderr
			return run.Run()
		},
	}
}
