// CubeFit is a polycube packing puzzle solver.
//
// Enumerates every way a set of polycube pieces exactly fills a cubic
// grid. Puzzle geometry is read from a text/CSV or Excel file; solutions
// can be printed to the terminal and exported to PDF, Excel, DXF, or
// QR-coded label sheets.
//
// Build:
//
//	go build -o cubefit ./cmd/cubefit
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jdekker3d/cubefit/internal/engine"
	"github.com/jdekker3d/cubefit/internal/export"
	"github.com/jdekker3d/cubefit/internal/importer"
	"github.com/jdekker3d/cubefit/internal/model"
	"github.com/jdekker3d/cubefit/internal/project"
	"github.com/jdekker3d/cubefit/internal/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "cubefit:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, cfgPath, err := project.LoadOrCreateConfig()
	if err != nil {
		// A broken config is not fatal; fall back to defaults.
		fmt.Fprintf(os.Stderr, "cubefit: config: %v (using defaults)\n", err)
		cfg = model.DefaultAppConfig()
		cfgPath = ""
	}

	distinct := flag.Bool("distinct", cfg.DistinctSolutions, "report each distinct configuration once instead of every search leaf")
	corner := flag.Bool("corner", false, "use the corner-first heuristic (seeds all eight corners; assumes every corner is filled by a distinct piece)")
	pin := flag.Bool("pin", false, "pre-place the first piece at its first placement to cut whole-board symmetries")
	workers := flag.Int("workers", cfg.DefaultWorkers, "parallel workers for the first search level")
	verbose := flag.Bool("v", false, "print every solution board")
	noColor := flag.Bool("no-color", !cfg.ColorOutput, "disable colored output")
	pdfPath := flag.String("pdf", "", "export solutions to a PDF file")
	labelsPath := flag.String("labels", "", "export QR piece labels of the first solution to a PDF file")
	xlsxPath := flag.String("xlsx", "", "export pieces and solutions to an Excel workbook")
	dxfPath := flag.String("dxf", "", "export the first solution's layers to a DXF file")
	backupPath := flag.String("backup", "", "write a versioned backup of the application data and exit")
	restorePath := flag.String("restore", "", "restore application data from a backup file and exit")
	flag.Parse()

	if *backupPath != "" || *restorePath != "" {
		return runMaintenance(cfg, cfgPath, *backupPath, *restorePath)
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: cubefit [flags] <puzzle-file>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	puzzlePath := flag.Arg(0)

	render.SetColorOutput(!*noColor)

	result := importer.ImportFile(puzzlePath)
	for _, w := range result.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			fmt.Fprintln(os.Stderr, "error:", e)
		}
		return fmt.Errorf("cannot load puzzle %q", puzzlePath)
	}
	puzzle := result.Puzzle

	fmt.Print(render.PieceTable(puzzle))

	solver := engine.NewSolver(puzzle, engine.Options{
		DistinctOnly: *distinct,
		Workers:      *workers,
	})

	var stored []engine.Solution
	needStored := *pdfPath != "" || *labelsPath != "" || *xlsxPath != "" || *dxfPath != ""
	onSolution := func(sol engine.Solution) {
		if *verbose {
			fmt.Print(render.Solution(puzzle, sol))
		}
		if needStored && len(stored) < cfg.MaxStoredSolutions {
			stored = append(stored, sol)
		}
	}

	count := solve(solver, puzzle, *corner, *pin, onSolution)
	fmt.Printf("%d solution(s)\n", count)

	if err := writeExports(puzzle, stored, *pdfPath, *labelsPath, *xlsxPath, *dxfPath); err != nil {
		return err
	}

	if cfgPath != "" {
		cfg.AddRecentPuzzle(puzzlePath)
		if err := project.SaveConfig(cfgPath, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "cubefit: config: %v\n", err)
		}
	}
	return nil
}

// runMaintenance handles the backup and restore modes; both run without a
// puzzle file.
func runMaintenance(cfg model.AppConfig, cfgPath, backupPath, restorePath string) error {
	if backupPath != "" {
		if err := project.ExportAllData(backupPath, cfg); err != nil {
			return fmt.Errorf("backup: %w", err)
		}
		fmt.Println("backup written to", backupPath)
	}
	if restorePath != "" {
		backup, err := project.ImportAllData(restorePath)
		if err != nil {
			return fmt.Errorf("restore: %w", err)
		}
		if cfgPath == "" {
			return fmt.Errorf("restore: config path unavailable")
		}
		if err := project.SaveConfig(cfgPath, backup.Config); err != nil {
			return fmt.Errorf("restore: %w", err)
		}
		fmt.Println("config restored from", restorePath)
	}
	return nil
}

// solve dispatches to the requested search variant. Pinning places piece 0
// at its first placement before the search starts; with the corner
// heuristic the corner cells covered by the pinned piece are skipped.
//
// The corner mode seeds every free corner, so it requires each corner to
// be filled by a distinct piece: solutions that place one piece across two
// corners are unreachable with it (see EnumerateCorners).
func solve(solver *engine.Solver, puzzle *model.Puzzle, corner, pin bool, fn engine.SolutionFunc) int {
	if !corner && !pin {
		// Plain enumeration; this is the only variant that honors the
		// parallel fan-out.
		return solver.Enumerate(fn)
	}

	board := engine.NewBoard(puzzle.Grid)
	remaining := make([]int, 0, len(puzzle.Pieces))
	for _, p := range puzzle.Pieces {
		remaining = append(remaining, p.ID)
	}

	if pin && len(puzzle.Pieces) > 0 && len(puzzle.Pieces[0].Placements) > 0 {
		board.Push(0, puzzle.Pieces[0].Placements[0])
		remaining = remaining[1:]
	}

	if !corner {
		return solver.EnumerateFrom(board, remaining, fn)
	}

	occupied := board.Occupied()
	var corners []model.Bitmask
	for _, c := range puzzle.Grid.CornerMasks() {
		if !occupied.Intersects(c) {
			corners = append(corners, c)
		}
	}
	return solver.EnumerateCorners(corners, board, remaining, fn)
}

func writeExports(puzzle *model.Puzzle, stored []engine.Solution, pdfPath, labelsPath, xlsxPath, dxfPath string) error {
	if pdfPath == "" && labelsPath == "" && xlsxPath == "" && dxfPath == "" {
		return nil
	}
	if len(stored) == 0 {
		fmt.Fprintln(os.Stderr, "cubefit: no solutions to export")
		return nil
	}

	if pdfPath != "" {
		if err := export.ExportPDF(pdfPath, puzzle, stored); err != nil {
			return fmt.Errorf("pdf export: %w", err)
		}
	}
	if labelsPath != "" {
		if err := export.ExportLabels(labelsPath, puzzle, stored[0]); err != nil {
			return fmt.Errorf("labels export: %w", err)
		}
	}
	if xlsxPath != "" {
		if err := export.ExportExcel(xlsxPath, puzzle, stored); err != nil {
			return fmt.Errorf("excel export: %w", err)
		}
	}
	if dxfPath != "" {
		if err := export.ExportDXF(dxfPath, puzzle, stored[0]); err != nil {
			return fmt.Errorf("dxf export: %w", err)
		}
	}
	return nil
}
