package dto

// ImportSheetRequest identifies a Google Sheet to ingest.
type ImportSheetRequest struct {
	SpreadsheetID string `json:"spreadsheet_id" validate:"required"`
	Range         string `json:"range,omitempty"`
}

// ImportResult summarizes a bulk company import.
type ImportResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}
