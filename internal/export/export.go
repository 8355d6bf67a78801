// Package export renders the stored client list as downloadable documents.
package export

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"clientmap-api/internal/ingest"
	"clientmap-api/internal/models"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

const clientsSheet = "Clientes"

// Content types of the generated documents.
const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

// BuildClientsXLSX renders clients in the import column layout, so the file can be re-imported as is.
func BuildClientsXLSX(clients []models.Client) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", clientsSheet); err != nil {
		return nil, fmt.Errorf("export: rename sheet: %w", err)
	}

	header := make([]any, len(ingest.CanonicalHeaders))
	for i, h := range ingest.CanonicalHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(clientsSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("export: write header: %w", err)
	}

	for i, c := range clients {
		row := []any{
			c.Name,
			c.LegalName,
			c.Address,
			coordCell(c.CoordX),
			coordCell(c.CoordY),
			c.Identifier,
			voidedCell(c.Voided),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("export: row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(clientsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("export: write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(clientsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("export: freeze header: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("export: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// coordCell leaves absent coordinates blank so they read back as absent.
func coordCell(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}

func voidedCell(voided bool) string {
	if voided {
		return "SI"
	}
	return "NO"
}

// BuildClientsPDF renders a printable client listing with the record counters on top.
func BuildClientsPDF(clients []models.Client, stats *models.Stats, generated time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Clientes")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", generated.Format(time.RFC3339)))
	pdf.Ln(5)
	if stats != nil {
		pdf.Cell(0, 6, fmt.Sprintf("Total: %d   Active: %d   Voided: %d   Mappable: %d",
			stats.Total, stats.Active, stats.Voided, stats.Mappable))
		pdf.Ln(8)
	}

	widths := []float64{60, 60, 70, 22, 22, 25, 18}
	headers := []string{"Cliente", "Razon social", "Domicilio", "Coord X", "Coord Y", "Identificador", "Anulado"}

	pdf.SetFont("Arial", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, c := range clients {
		cells := []string{
			clip(tr(c.Name), 40),
			clip(tr(c.LegalName), 40),
			clip(tr(c.Address), 48),
			coordText(c.CoordX),
			coordText(c.CoordY),
			clip(tr(c.Identifier), 16),
			voidedCell(c.Voided),
		}
		for i, text := range cells {
			align := "L"
			if i == 3 || i == 4 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 5, text, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("export: write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func coordText(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// clip shortens s to n bytes of the single-byte encoded text.
func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
