// Package importer reads puzzle definitions from text/CSV and Excel
// files. It supports automatic delimiter detection and accumulates
// per-line errors and warnings instead of failing on the first problem.
//
// The text format is one record per line:
//
//	name,edge            header: puzzle name and grid edge length
//	piece,color,blocks   one line per piece
//
// where blocks is a dash-separated list of xyz digit triples, e.g.
// "000-100-110" for an L-tromino, and color is one of red, yellow, blue,
// white.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jdekker3d/cubefit/internal/model"
)

// ImportResult holds the outcome of an import operation. Puzzle is nil
// when Errors is non-empty.
type ImportResult struct {
	Puzzle   *model.Puzzle
	Errors   []string
	Warnings []string
}

// DetectCSVDelimiter determines the most likely delimiter of the data.
// It tries comma, semicolon, tab, and pipe; the delimiter producing the
// most consistent multi-column split across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}
		score := 0
		for _, rec := range records {
			if len(rec) > 1 {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			bestDelimiter = delim
		}
	}
	return bestDelimiter
}

// ImportFile imports a puzzle, dispatching on the file extension:
// .xlsx/.xls go through the Excel reader, everything else is treated as
// text/CSV.
func ImportFile(path string) ImportResult {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".xlsx" || ext == ".xls" {
		return ImportExcel(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot read puzzle file: %v", err)}}
	}
	return Parse(data)
}

// Parse imports a puzzle from raw text/CSV data.
func Parse(data []byte) ImportResult {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = DetectCSVDelimiter(data)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot parse puzzle data: %v", err)}}
	}
	return importFromRows(records, "Line")
}

// importFromRows is the shared import logic for text and Excel data.
func importFromRows(rows [][]string, rowPrefix string) ImportResult {
	result := ImportResult{}

	rows = dropEmptyRows(rows)
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	header := rows[0]
	if len(header) < 2 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("%s 1: expected 'name,edge' header, got %d field(s)", rowPrefix, len(header)))
		return result
	}
	name := strings.TrimSpace(header[0])
	edge, err := strconv.Atoi(strings.TrimSpace(header[1]))
	if err != nil || edge < 1 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("%s 1: invalid grid edge %q", rowPrefix, header[1]))
		return result
	}

	var pieces []*model.Piece
	for i, row := range rows[1:] {
		rowNum := i + 2
		piece, warnings, err := parsePieceRow(len(pieces), row)
		result.Warnings = append(result.Warnings, prefixAll(warnings, rowPrefix, rowNum)...)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s %d: %v", rowPrefix, rowNum, err))
			continue
		}
		pieces = append(pieces, piece)
	}
	if len(result.Errors) > 0 {
		return result
	}
	if len(pieces) == 0 {
		result.Errors = append(result.Errors, "Puzzle defines no pieces")
		return result
	}

	puzzle, err := model.NewPuzzle(name, edge, pieces)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	if total := puzzle.TotalBlocks(); total != puzzle.Grid.Cells {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Piece blocks sum to %d but the grid has %d cells; no exact cover can exist",
				total, puzzle.Grid.Cells))
	}
	result.Puzzle = puzzle
	return result
}

// parsePieceRow parses one "name,color,blocks" record.
func parsePieceRow(id int, row []string) (*model.Piece, []string, error) {
	if len(row) < 3 {
		return nil, nil, fmt.Errorf("expected 'name,color,blocks', got %d field(s)", len(row))
	}
	name := strings.TrimSpace(row[0])
	if name == "" {
		return nil, nil, fmt.Errorf("piece name is empty")
	}

	color, err := model.ParseColorTag(strings.TrimSpace(strings.ToLower(row[1])))
	if err != nil {
		return nil, nil, err
	}

	blocks, warnings, err := parseBlocks(strings.TrimSpace(row[2]))
	if err != nil {
		return nil, warnings, err
	}

	piece, err := model.NewPiece(id, name, color, model.NewOrientation(blocks))
	if err != nil {
		return nil, warnings, err
	}
	return piece, warnings, nil
}

// parseBlocks parses a dash-separated list of xyz digit triples.
// Duplicate blocks are dropped with a warning.
func parseBlocks(s string) ([]model.Block, []string, error) {
	if s == "" {
		return nil, nil, fmt.Errorf("piece has no blocks")
	}

	var blocks []model.Block
	var warnings []string
	seen := make(map[model.Block]bool)

	for _, part := range strings.Split(s, "-") {
		part = strings.TrimSpace(part)
		if len(part) != 3 {
			return nil, warnings, fmt.Errorf("block %q is not an xyz digit triple", part)
		}
		coords := make([]int, 3)
		for i, c := range part {
			if c < '0' || c > '9' {
				return nil, warnings, fmt.Errorf("block %q contains non-digit %q", part, c)
			}
			coords[i] = int(c - '0')
		}
		block := model.Block{X: coords[0], Y: coords[1], Z: coords[2]}
		if seen[block] {
			warnings = append(warnings, fmt.Sprintf("duplicate block %s dropped", block))
			continue
		}
		seen[block] = true
		blocks = append(blocks, block)
	}
	return blocks, warnings, nil
}

func dropEmptyRows(rows [][]string) [][]string {
	kept := rows[:0]
	for _, row := range rows {
		empty := true
		for _, f := range row {
			if strings.TrimSpace(f) != "" {
				empty = false
				break
			}
		}
		if !empty {
			kept = append(kept, row)
		}
	}
	return kept
}

func prefixAll(warnings []string, rowPrefix string, rowNum int) []string {
	out := make([]string, len(warnings))
	for i, w := range warnings {
		out[i] = fmt.Sprintf("%s %d: %s", rowPrefix, rowNum, w)
	}
	return out
}
