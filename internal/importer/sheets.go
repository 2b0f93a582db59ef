package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/labstack/gommon/log"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

// SheetReader fetches tabular company data from a Google Sheet. It replaces
// the one-off spreadsheet import scripts with a durable admin operation.
type SheetReader struct {
	service *sheets.Service
}

// NewSheetReader builds a reader authenticated with an API key.
func NewSheetReader(ctx context.Context, apiKey string) (*SheetReader, error) {
	if apiKey == "" {
		return nil, errors.New("sheets api key must be set")
	}
	service, err := sheets.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &SheetReader{service: service}, nil
}

// Rows returns the cell values of the given range as strings, skipping the
// header row.
func (r *SheetReader) Rows(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	if strings.TrimSpace(spreadsheetID) == "" {
		return nil, errors.New("spreadsheet id must not be empty")
	}
	if readRange == "" {
		readRange = "A:M"
	}

	resp, err := r.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read spreadsheet %s: %w", spreadsheetID, err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}

	log.Infof("spreadsheet %s: %d rows fetched", spreadsheetID, len(resp.Values))

	rows := make([][]string, 0, len(resp.Values)-1)
	for i, raw := range resp.Values {
		if i == 0 {
			continue
		}
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}
