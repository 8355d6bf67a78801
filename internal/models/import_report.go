package models

// ImportReport describes what the normalizer did with an uploaded document.
type ImportReport struct {
	FileName           string              `json:"file_name"`
	AvailableColumns   []string            `json:"available_columns"`
	MissingColumns     []string            `json:"missing_columns"`
	Rows               int                 `json:"rows"`
	Voided             int                 `json:"voided"`
	Active             int                 `json:"active"`
	UnrecognizedVoided []string            `json:"unrecognized_voided"`
	Warnings           []ValidationWarning `json:"warnings"`
}

// ImportResult is returned after a full-replace ingestion.
type ImportResult struct {
	Inserted int          `json:"inserted"`
	Report   ImportReport `json:"report"`
}
