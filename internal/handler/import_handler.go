package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/industrikatalogen/api/internal/dto"
	"github.com/industrikatalogen/api/internal/importer"
	"github.com/industrikatalogen/api/internal/service"
)

// ImportHandler exposes the bulk company-import endpoints. The spreadsheet
// reader may be nil when no API key is configured.
type ImportHandler struct {
	companies *service.CompaniesService
	sheets    *importer.SheetReader
}

// NewImportHandler constructs an ImportHandler.
func NewImportHandler(companies *service.CompaniesService, sheets *importer.SheetReader) *ImportHandler {
	return &ImportHandler{companies: companies, sheets: sheets}
}

// ImportCSV handles POST /api/admin/companies/import with a multipart CSV
// file under the "file" field.
func (h *ImportHandler) ImportCSV(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return Error(c, http.StatusBadRequest, "csv file is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return Error(c, http.StatusBadRequest, "unable to open uploaded file")
	}
	defer file.Close()

	result, err := h.companies.ImportCompaniesCSV(c.Request().Context(), file)
	if err != nil {
		var valErr service.CSVValidationError
		if errors.As(err, &valErr) {
			return Error(c, http.StatusBadRequest, valErr.Message)
		}
		return Error(c, http.StatusInternalServerError, "import failed")
	}

	return Success(c, http.StatusOK, "import completed", dto.ImportResult{
		Created: result.Inserted,
		Updated: result.Updated,
	})
}

// ImportSheet handles POST /api/admin/companies/import-sheet, pulling rows
// from a Google Sheet.
func (h *ImportHandler) ImportSheet(c echo.Context) error {
	if h.sheets == nil {
		return Error(c, http.StatusServiceUnavailable, "spreadsheet import is not configured")
	}

	var req dto.ImportSheetRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(req.SpreadsheetID) == "" {
		return Error(c, http.StatusBadRequest, "spreadsheet_id is required")
	}

	rows, err := h.sheets.Rows(c.Request().Context(), req.SpreadsheetID, req.Range)
	if err != nil {
		return Error(c, http.StatusBadGateway, "unable to read spreadsheet")
	}

	result, err := h.companies.ImportRows(c.Request().Context(), rows)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "import failed")
	}

	return Success(c, http.StatusOK, "import completed", dto.ImportResult{
		Created: result.Inserted,
		Updated: result.Updated,
	})
}
