package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/jdekker3d/cubefit/internal/engine"
	"github.com/jdekker3d/cubefit/internal/model"
)

// LabelInfo holds the data encoded into each piece label's QR code.
type LabelInfo struct {
	PieceName    string `json:"name"`
	Char         string `json:"char"`
	Color        string `json:"color"`
	Size         int    `json:"size"`
	Orientations int    `json:"orientations"`
	Placements   int    `json:"placements"`
	Solution     int    `json:"solution"`
	Cells        []int  `json:"cells"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10
// rows per page). Each label cell is approximately 66.7mm x 25.4mm on US
// Letter paper.
const (
	labelPageWidth  = 215.9 // US Letter width in mm
	labelPageHeight = 279.4 // US Letter height in mm
	labelMarginTop  = 12.7  // mm
	labelMarginLeft = 4.8   // mm
	labelWidth      = 66.7  // mm per label
	labelHeight     = 25.4  // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded labels, one per piece of the
// given solution. Each label carries the piece name, its stats, and a QR
// code encoding piece metadata plus the cells it occupies as JSON.
func ExportLabels(path string, puzzle *model.Puzzle, sol engine.Solution) error {
	if len(sol.Placed) == 0 {
		return fmt.Errorf("solution has no placements to generate labels for")
	}

	var labels []LabelInfo
	for _, pl := range sol.Placed {
		piece := puzzle.Pieces[pl.PieceID]
		var cells []int
		for i := 0; i < puzzle.Grid.Cells; i++ {
			if pl.Mask.Test(i) {
				cells = append(cells, i)
			}
		}
		labels = append(labels, LabelInfo{
			PieceName:    piece.Name,
			Char:         string(piece.CharID()),
			Color:        piece.Color.String(),
			Size:         piece.Size,
			Orientations: len(piece.Orientations),
			Placements:   len(piece.Placements),
			Solution:     sol.Number,
			Cells:        cells,
		})
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.PieceName, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s_%d", info.Char, info.Solution)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Piece name (bold, larger)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	name := info.PieceName
	if pdf.GetStringWidth(name) > textW {
		for len(name) > 0 && pdf.GetStringWidth(name+"...") > textW {
			name = name[:len(name)-1]
		}
		name += "..."
	}
	pdf.CellFormat(textW, 4.5, name, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	stats := fmt.Sprintf("char %s | %d blocks | %s", info.Char, info.Size, info.Color)
	pdf.CellFormat(textW, 3.5, stats, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	detail := fmt.Sprintf("%d orientations, %d placements, solution %d",
		info.Orientations, info.Placements, info.Solution)
	pdf.CellFormat(textW, 3, detail, "", 1, "L", false, 0, "")

	return nil
}
