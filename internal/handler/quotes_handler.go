package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/industrikatalogen/api/internal/dto"
	"github.com/industrikatalogen/api/internal/repository"
	"github.com/industrikatalogen/api/internal/service"
)

// maxAttachmentBytes caps a single uploaded attachment.
const maxAttachmentBytes = 10 << 20

// QuotesHandler exposes quote-request submission and admin listing.
type QuotesHandler struct {
	quotes *service.QuotesService
}

// NewQuotesHandler constructs a QuotesHandler.
func NewQuotesHandler(quotes *service.QuotesService) *QuotesHandler {
	return &QuotesHandler{quotes: quotes}
}

// Submit handles POST /api/quote-requests. JSON bodies carry no
// attachments; multipart bodies may include files under "attachments".
func (h *QuotesHandler) Submit(c echo.Context) error {
	return h.submit(c, false)
}

// SubmitGeneral handles POST /api/general-quote-requests.
func (h *QuotesHandler) SubmitGeneral(c echo.Context) error {
	return h.submit(c, true)
}

func (h *QuotesHandler) submit(c echo.Context, general bool) error {
	var (
		req         dto.CreateQuoteRequest
		attachments []service.Attachment
	)

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		if err := bindQuoteForm(c, &req, &attachments); err != nil {
			return Error(c, http.StatusBadRequest, err.Error())
		}
	} else if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if general {
		req.CompanySlug = ""
	} else if strings.TrimSpace(req.CompanySlug) == "" {
		return Error(c, http.StatusBadRequest, "company_slug is required")
	}
	if err := c.Validate(&req); err != nil {
		return Error(c, http.StatusBadRequest, "missing required fields")
	}

	quote, err := h.quotes.Submit(c.Request().Context(), req, attachments)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrCompanyNotFound):
			return Error(c, http.StatusNotFound, "company not found")
		case errors.Is(err, service.ErrNameRequired),
			errors.Is(err, service.ErrServiceDescriptionRequired),
			errors.Is(err, service.ErrInvalidEmail):
			return Error(c, http.StatusBadRequest, err.Error())
		default:
			return Error(c, http.StatusInternalServerError, "unable to submit quote request")
		}
	}

	return Success(c, http.StatusCreated, "quote request submitted", dto.QuoteSubmittedResponse{
		ID:          quote.ID.String(),
		Attachments: quote.Attachments,
	})
}

// ListAdmin handles GET /api/admin/quote-requests.
func (h *QuotesHandler) ListAdmin(c echo.Context) error {
	var companyID *uuid.UUID
	if raw := strings.TrimSpace(c.QueryParam("company_id")); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return Error(c, http.StatusBadRequest, "invalid company_id")
		}
		companyID = &parsed
	}

	quotes, err := h.quotes.List(c.Request().Context(),
		companyID,
		parseIntDefault(c.QueryParam("limit"), 20),
		parseIntDefault(c.QueryParam("offset"), 0))
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list quote requests")
	}

	return Success(c, http.StatusOK, "quote requests retrieved", quotes)
}

func bindQuoteForm(c echo.Context, req *dto.CreateQuoteRequest, attachments *[]service.Attachment) error {
	req.CompanySlug = c.FormValue("company_slug")
	req.Name = c.FormValue("name")
	req.Email = c.FormValue("email")
	req.ServiceDescription = c.FormValue("service_description")
	if v := c.FormValue("phone"); v != "" {
		req.Phone = &v
	}
	if v := c.FormValue("urgency"); v != "" {
		req.Urgency = &v
	}
	if v := c.FormValue("preferred_contact"); v != "" {
		req.PreferredContact = &v
	}

	form, err := c.MultipartForm()
	if err != nil {
		return errors.New("invalid multipart form")
	}
	for _, fileHeader := range form.File["attachments"] {
		if fileHeader.Size > maxAttachmentBytes {
			return errors.New("attachment too large")
		}
		file, err := fileHeader.Open()
		if err != nil {
			return errors.New("unable to open attachment")
		}
		data, err := io.ReadAll(io.LimitReader(file, maxAttachmentBytes+1))
		file.Close()
		if err != nil {
			return errors.New("unable to read attachment")
		}
		*attachments = append(*attachments, service.Attachment{
			Filename: fileHeader.Filename,
			Data:     data,
		})
	}
	return nil
}
