package ingest

import (
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"clientmap-api/internal/models"

	"github.com/rs/zerolog/log"
)

// Canonical column headers, matched verbatim.
const (
	HeaderClient     = "Cliente"
	HeaderLegalName  = "Razon social"
	HeaderAddress    = "Domicilio"
	HeaderCoordX     = "Coord X"
	HeaderCoordY     = "Coord Y"
	HeaderIdentifier = "Identificador"
	HeaderVoided     = "Anulado"
)

// CanonicalHeaders lists the columns every batch is normalized to, in export order.
var CanonicalHeaders = []string{
	HeaderClient,
	HeaderLegalName,
	HeaderAddress,
	HeaderCoordX,
	HeaderCoordY,
	HeaderIdentifier,
	HeaderVoided,
}

const defaultVoidedToken = "NO"

// Column widths of the clientes table.
const (
	maxTextLen       = 255
	maxIdentifierLen = 100
)

// Coord X holds the longitude and Coord Y the latitude.
const (
	maxLongitude = 180
	maxLatitude  = 90
)

var voidedTokens = map[string]bool{
	"SI":        true,
	"SÍ":        true,
	"S":         true,
	"YES":       true,
	"Y":         true,
	"1":         true,
	"VERDADERO": true,
	"TRUE":      true,
	"NO":        false,
	"N":         false,
	"0":         false,
	"FALSO":     false,
	"FALSE":     false,
}

// Batch is a normalized set of records ready for a full replace.
type Batch struct {
	Records []models.Client
	Report  models.ImportReport
}

// Parse reads an uploaded document and normalizes it.
func Parse(filename string, r io.Reader) (*Batch, error) {
	table, err := ReadTable(filename, r)
	if err != nil {
		return nil, err
	}
	return Normalize(filename, table), nil
}

// ParseVoided maps a raw Anulado cell to a flag. Unknown tokens map to false with recognized=false.
func ParseVoided(raw string) (voided bool, token string, recognized bool) {
	token = strings.ToUpper(strings.TrimSpace(raw))
	if token == "" {
		token = defaultVoidedToken
	}
	voided, recognized = voidedTokens[token]
	return voided, token, recognized
}

// ParseCoordinate converts a coordinate cell. An empty cell is nil without error.
func ParseCoordinate(raw string) (*float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, true
	}
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, false
	}
	return &v, true
}

// Normalize maps a table onto the canonical columns. It never fails: missing columns get
// defaults and bad cells are reported as warnings.
func Normalize(filename string, t *Table) *Batch {
	batch := &Batch{Report: models.ImportReport{
		FileName:           filename,
		AvailableColumns:   []string{},
		MissingColumns:     []string{},
		UnrecognizedVoided: []string{},
		Warnings:           []models.ValidationWarning{},
	}}
	if t == nil {
		return batch
	}
	report := &batch.Report

	report.AvailableColumns = append(report.AvailableColumns, t.Header...)

	index := make(map[string]int, len(t.Header))
	for i, h := range t.Header {
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}
	col := make(map[string]int, len(CanonicalHeaders))
	for _, h := range CanonicalHeaders {
		i, ok := index[h]
		if !ok {
			i = -1
			report.MissingColumns = append(report.MissingColumns, h)
		}
		col[h] = i
	}

	seenUnknown := make(map[string]bool)
	batch.Records = make([]models.Client, 0, len(t.Rows))

	for _, row := range t.Rows {
		text := func(header string, limit int) string {
			v := strings.TrimSpace(row.Cell(col[header]))
			if utf8.RuneCountInString(v) > limit {
				report.Warnings = append(report.Warnings, models.ValidationWarning{
					Row:     row.Number,
					Column:  header,
					Value:   v,
					Message: "value truncated to " + strconv.Itoa(limit) + " characters",
				})
				v = string([]rune(v)[:limit])
			}
			return v
		}
		coord := func(header string, limit float64) *float64 {
			raw := row.Cell(col[header])
			v, ok := ParseCoordinate(raw)
			if !ok {
				report.Warnings = append(report.Warnings, models.ValidationWarning{
					Row:     row.Number,
					Column:  header,
					Value:   raw,
					Message: "not a number, stored as empty",
				})
				return nil
			}
			if v != nil && math.Abs(*v) > limit {
				report.Warnings = append(report.Warnings, models.ValidationWarning{
					Row:     row.Number,
					Column:  header,
					Value:   raw,
					Message: "out of range ±" + strconv.FormatFloat(limit, 'f', -1, 64) + ", stored as empty",
				})
				return nil
			}
			return v
		}

		voided, token, recognized := ParseVoided(row.Cell(col[HeaderVoided]))
		if !recognized && !seenUnknown[token] {
			seenUnknown[token] = true
			report.UnrecognizedVoided = append(report.UnrecognizedVoided, token)
			report.Warnings = append(report.Warnings, models.ValidationWarning{
				Row:     row.Number,
				Column:  HeaderVoided,
				Value:   token,
				Message: "unrecognized value, treated as NO",
			})
		}

		batch.Records = append(batch.Records, models.Client{
			Name:       text(HeaderClient, maxTextLen),
			LegalName:  text(HeaderLegalName, maxTextLen),
			Address:    text(HeaderAddress, math.MaxInt),
			CoordX:     coord(HeaderCoordX, maxLongitude),
			CoordY:     coord(HeaderCoordY, maxLatitude),
			Identifier: text(HeaderIdentifier, maxIdentifierLen),
			Voided:     voided,
		})

		if voided {
			report.Voided++
		} else {
			report.Active++
		}
	}
	report.Rows = len(batch.Records)

	if len(report.UnrecognizedVoided) > 0 {
		log.Warn().
			Str("file", filename).
			Strs("values", report.UnrecognizedVoided).
			Msg("ingest: unrecognized values in Anulado column, treated as NO")
	}
	log.Info().
		Str("file", filename).
		Strs("missing_columns", report.MissingColumns).
		Int("rows", report.Rows).
		Int("voided", report.Voided).
		Int("active", report.Active).
		Int("warnings", len(report.Warnings)).
		Msg("ingest: normalization completed")

	return batch
}
