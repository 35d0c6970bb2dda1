package cmd

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eng618/suriza-solver/cmd/batch"
	"github.com/eng618/suriza-solver/cmd/render"
	"github.com/eng618/suriza-solver/cmd/solve"
	"github.com/eng618/suriza-solver/cmd/validate"
	"github.com/eng618/suriza-solver/pkg/common"
)

var (
	// Global flags
	verbose    bool
	workers    string
	workingDir string
	logFile    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "suriza",
	Short: "Suriza/Slitherlink puzzle solver",
	Long: `Suriza is a CLI tool for solving, validating, and rendering Suriza
(Slitherlink) puzzles.

It provides commands for:
  - Solving a single puzzle file
  - Batch-solving every puzzle in a directory
  - Validating a claimed solved edge grid against a puzzle's clues
  - Rendering a puzzle or its solution as ASCII/colorized terminal art`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		common.VerboseEnabled = verbose
		common.LogFile = logFile

		count, err := parseWorkers(workers)
		if err != nil {
			return fmt.Errorf("invalid --workers value: %w", err)
		}
		common.WorkerCount = count
		common.Verbose("Workers: %d (from flag: %s)", count, workers)

		if workingDir != "" {
			common.Verbose("Changing working directory to: %s", workingDir)
			if err := os.Chdir(workingDir); err != nil {
				return fmt.Errorf("failed to change working directory: %w", err)
			}
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output for debugging")
	rootCmd.PersistentFlags().StringVarP(&workers, "workers", "j", "half", "number of concurrent workers for batch solving (integer, 'half', or 'full')")
	rootCmd.PersistentFlags().StringVarP(&workingDir, "working-dir", "w", "", "working directory to run from (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append plain-text Info/Verbose/Error/Warning output to this file in addition to the terminal")

	// Register subcommands
	rootCmd.AddCommand(solve.GetCommand())
	rootCmd.AddCommand(batch.GetCommand())
	rootCmd.AddCommand(validate.GetCommand())
	rootCmd.AddCommand(render.GetCommand())
}

// parseWorkers parses the workers flag value
// Accepts: "full" -> NumCPU(), "half" -> NumCPU()/2, or integer string -> that value
func parseWorkers(value string) (int, error) {
	value = strings.TrimSpace(strings.ToLower(value))

	switch value {
	case "full":
		return runtime.NumCPU(), nil
	case "half":
		count := runtime.NumCPU() / 2
		if count < 1 {
			count = 1
		}
		return count, nil
	default:
		count, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("must be 'full', 'half', or a positive integer (got: %s)", value)
		}
		if count < 1 {
			return 0, fmt.Errorf("must be at least 1 (got: %d)", count)
		}
		return count, nil
	}
}
