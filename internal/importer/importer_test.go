package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const slabsPuzzle = `slabs,2
bottom,red,000-100-010-110
top,blue,001-101-011-111
`

func TestParse_ValidPuzzle(t *testing.T) {
	result := Parse([]byte(slabsPuzzle))

	require.Empty(t, result.Errors)
	require.NotNil(t, result.Puzzle)
	assert.Empty(t, result.Warnings)

	assert.Equal(t, "slabs", result.Puzzle.Name)
	assert.Equal(t, 2, result.Puzzle.Grid.Edge)
	require.Len(t, result.Puzzle.Pieces, 2)
	assert.Equal(t, "bottom", result.Puzzle.Pieces[0].Name)
	assert.Equal(t, 4, result.Puzzle.Pieces[0].Size)
	assert.NotEmpty(t, result.Puzzle.Pieces[0].Placements)
}

func TestParse_SemicolonDelimiter(t *testing.T) {
	data := strings.ReplaceAll(slabsPuzzle, ",", ";")
	result := Parse([]byte(data))

	require.Empty(t, result.Errors)
	require.NotNil(t, result.Puzzle)
	assert.Equal(t, 2, result.Puzzle.Grid.Edge)
}

func TestDetectCSVDelimiter(t *testing.T) {
	assert.Equal(t, ',', DetectCSVDelimiter([]byte("a,b,c\nd,e,f")))
	assert.Equal(t, ';', DetectCSVDelimiter([]byte("a;b;c\nd;e;f")))
	assert.Equal(t, '\t', DetectCSVDelimiter([]byte("a\tb\nc\td")))
	assert.Equal(t, '|', DetectCSVDelimiter([]byte("a|b\nc|d")))
}

func TestParse_InvalidColor(t *testing.T) {
	result := Parse([]byte("p,2\ncube,green,000\n"))

	assert.Nil(t, result.Puzzle)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Line 2")
}

func TestParse_InvalidEdge(t *testing.T) {
	result := Parse([]byte("p,zero\ncube,red,000\n"))

	assert.Nil(t, result.Puzzle)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "invalid grid edge")
}

func TestParse_DuplicateBlockWarning(t *testing.T) {
	result := Parse([]byte("p,1\ncube,red,000-000\n"))

	require.Empty(t, result.Errors)
	require.NotNil(t, result.Puzzle)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "duplicate block")
	assert.Equal(t, 1, result.Puzzle.Pieces[0].Size)
}

func TestParse_BadBlockDigit(t *testing.T) {
	result := Parse([]byte("p,2\ncube,red,0a0\n"))

	assert.Nil(t, result.Puzzle)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "non-digit")
}

func TestParse_EmptyBlocksField(t *testing.T) {
	result := Parse([]byte("p,2\ncube,red,\n"))

	assert.Nil(t, result.Puzzle)
	require.NotEmpty(t, result.Errors)
}

func TestParse_NoPieces(t *testing.T) {
	result := Parse([]byte("lonely,3\n"))

	assert.Nil(t, result.Puzzle)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "no pieces")
}

func TestParse_EmptyInput(t *testing.T) {
	result := Parse(nil)

	assert.Nil(t, result.Puzzle)
	require.NotEmpty(t, result.Errors)
}

func TestParse_BlockSumMismatchWarns(t *testing.T) {
	result := Parse([]byte("short,2\ncube,red,000\n"))

	require.Empty(t, result.Errors)
	require.NotNil(t, result.Puzzle)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[len(result.Warnings)-1], "no exact cover")
}

func TestParse_SkipsEmptyLines(t *testing.T) {
	data := "slabs,2\n\nbottom,red,000-100-010-110\n\ntop,blue,001-101-011-111\n"
	result := Parse([]byte(data))

	require.Empty(t, result.Errors)
	require.NotNil(t, result.Puzzle)
	assert.Len(t, result.Puzzle.Pieces, 2)
}

func TestParse_TooManyPieces(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("huge,6\n")
	for i := 0; i < 37; i++ {
		sb.WriteString("cube,red,000\n")
	}
	result := Parse([]byte(sb.String()))

	assert.Nil(t, result.Puzzle)
	require.NotEmpty(t, result.Errors)
}

func TestImportFile_Text(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slabs.csv")
	require.NoError(t, os.WriteFile(path, []byte(slabsPuzzle), 0o644))

	result := ImportFile(path)
	require.Empty(t, result.Errors)
	require.NotNil(t, result.Puzzle)
}

func TestImportFile_Missing(t *testing.T) {
	result := ImportFile(filepath.Join(t.TempDir(), "nope.csv"))

	assert.Nil(t, result.Puzzle)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "Cannot read puzzle file")
}
