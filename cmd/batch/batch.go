package batch

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/spf13/cobra"

	"github.com/eng618/suriza-solver/pkg/common"
	"github.com/eng618/suriza-solver/pkg/puzzleio"
	"github.com/eng618/suriza-solver/pkg/solver"
)

var dirFlag string

// batchCmd solves every puzzle file in a directory concurrently.
var batchCmd = &cobra.Command{
	Use:     "batch",
	Aliases: []string{"b"},
	Short:   "Solve every puzzle file in a directory",
	Long: `Batch scans a directory for puzzle files (.json, .yaml, .yml, or ASCII
text) and solves each one, using the worker count from the --workers flag.
This command's concurrency is solely over which files run at once — each
individual puzzle is still solved single-threaded by pkg/solver.Solve.

Examples:
  suriza batch --dir testdata/puzzles
  suriza batch --dir testdata/puzzles -j full`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := common.PuzzlesDir(dirFlag)
		if err != nil {
			return fmt.Errorf("failed to resolve puzzles directory: %w", err)
		}

		files, err := findPuzzleFiles(dir)
		if err != nil {
			return fmt.Errorf("failed to scan %s: %w", dir, err)
		}
		if len(files) == 0 {
			common.Warning("No puzzle files found in %s", dir)
			return nil
		}

		common.Info("Solving %d puzzles from %s with %d workers", len(files), dir, common.WorkerCount)

		spin := common.NewSpinner(fmt.Sprintf("solving 0/%d", len(files)))
		spin.Start()

		results := solveAll(files, common.WorkerCount, spin)

		spin.Stop()

		return report(cmd, results)
	},
}

// Result is the outcome of solving one puzzle file.
type Result struct {
	Path     string
	Solved   bool
	Vertices int
	Err      error
}

func findPuzzleFiles(dir string) ([]string, error) {
	var files []string

	entries, err := filepath.Glob(filepath.Join(dir, "*"))
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		switch filepath.Ext(entry) {
		case ".json", ".yaml", ".yml", ".txt":
			files = append(files, entry)
		}
	}

	sort.Strings(files)
	return files, nil
}

// solveAll fans the files out across workers goroutines, each pulling paths
// off a shared channel, and reports progress through spin as results land.
func solveAll(files []string, workers int, spin *common.Spinner) []Result {
	type indexed struct {
		index int
		path  string
	}

	jobs := make(chan indexed)
	results := make([]Result, len(files))

	var wg sync.WaitGroup
	var mu sync.Mutex
	done := 0

	if workers < 1 {
		workers = 1
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				result := solveOne(job.path)

				mu.Lock()
				results[job.index] = result
				done++
				spin.UpdateMessage("solving %d/%d", done, len(files))
				mu.Unlock()
			}
		}()
	}

	for i, path := range files {
		jobs <- indexed{index: i, path: path}
	}
	close(jobs)

	wg.Wait()
	return results
}

func solveOne(path string) Result {
	cells, err := puzzleio.LoadAny(path)
	if err != nil {
		return Result{Path: path, Err: fmt.Errorf("load: %w", err)}
	}

	edges, err := solver.Solve(cells)
	if err != nil {
		return Result{Path: path, Err: fmt.Errorf("solve: %w", err)}
	}

	route := edges.Route()
	vertices := len(route) - 1
	if vertices < 0 {
		vertices = 0
	}

	return Result{Path: path, Solved: len(route) > 0, Vertices: vertices}
}

func report(cmd *cobra.Command, results []Result) error {
	solved, failed := 0, 0

	for _, result := range results {
		switch {
		case result.Err != nil:
			failed++
			common.Error("%s: %v", result.Path, result.Err)
		case result.Solved:
			solved++
			common.Verbose("%s: loop with %d vertices", result.Path, result.Vertices)
		default:
			common.Warning("%s: no loop found", result.Path)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "solved %d/%d puzzles (%d errored)\n", solved, len(results), failed)

	if failed > 0 {
		return fmt.Errorf("%d puzzle(s) failed to load or solve", failed)
	}
	return nil
}

func init() {
	batchCmd.Flags().StringVarP(&dirFlag, "dir", "d", "", "directory of puzzle files to solve (default: testdata/puzzles)")
}

// GetCommand returns the batch command for registration with root.
func GetCommand() *cobra.Command {
	return batchCmd
}
