package echo

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	app "github.com/miestilo/leadcrm/internal/application/lead"
	domain "github.com/miestilo/leadcrm/internal/domain/lead"
)

// Opener resolves an import reference (server-local path or sheet URL) to
// its raw contents.
type Opener interface {
	Open(ctx context.Context, ref string) (io.ReadCloser, error)
}

// RowParser extracts ordered rows plus the header list from file contents.
type RowParser func(filename string, r io.Reader) ([]domain.RawRow, []string, error)

type ImportHandler struct {
	useCase   app.ImportLeads
	parseRows RowParser
	local     Opener
	sheets    Opener
}

type importLeadsRequest struct {
	SheetURL   string `json:"sheet_url"`
	SourcePath string `json:"source_path"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiResponse struct {
	Data  any        `json:"data,omitempty"`
	Error *errorBody `json:"error,omitempty"`
}

func NewImportHandler(useCase app.ImportLeads, parseRows RowParser, local, sheets Opener) *ImportHandler {
	return &ImportHandler{
		useCase:   useCase,
		parseRows: parseRows,
		local:     local,
		sheets:    sheets,
	}
}

// ImportLeads accepts either a multipart upload ("file" part) or a JSON
// body naming a sheet_url or server-local source_path, parses it, and runs
// the import for the user identified by X-User-ID.
func (h *ImportHandler) ImportLeads(c echo.Context) error {
	userID := strings.TrimSpace(c.Request().Header.Get("X-User-ID"))

	rows, status, errResp := h.readRows(c)
	if errResp != nil {
		return c.JSON(status, apiResponse{Error: errResp})
	}

	out, err := h.useCase.Execute(c.Request().Context(), app.ImportLeadsInput{
		Rows:   rows,
		UserID: userID,
	})
	if err != nil {
		return h.importError(c, err)
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *ImportHandler) readRows(c echo.Context) ([]domain.RawRow, int, *errorBody) {
	if file, err := c.FormFile("file"); err == nil {
		reader, err := file.Open()
		if err != nil {
			return nil, http.StatusBadRequest, &errorBody{
				Code:    "unreadable_file",
				Message: "could not open uploaded file",
			}
		}
		defer reader.Close()
		return h.parse(file.Filename, reader)
	}

	var req importLeadsRequest
	if err := c.Bind(&req); err != nil {
		return nil, http.StatusBadRequest, &errorBody{
			Code:    "bad_request",
			Message: "upload a file or provide sheet_url or source_path",
		}
	}

	switch {
	case strings.TrimSpace(req.SheetURL) != "":
		reader, err := h.sheets.Open(c.Request().Context(), req.SheetURL)
		if err != nil {
			return nil, http.StatusBadGateway, &errorBody{
				Code:    "sheet_fetch_failed",
				Message: "failed to download sheet; ensure it is publicly accessible via link",
			}
		}
		defer reader.Close()
		// Sheet exports always come back as CSV.
		return h.parse("sheet.csv", reader)
	case strings.TrimSpace(req.SourcePath) != "":
		reader, err := h.local.Open(c.Request().Context(), req.SourcePath)
		if err != nil {
			return nil, http.StatusBadRequest, &errorBody{
				Code:    "invalid_source",
				Message: "source_path could not be opened",
			}
		}
		defer reader.Close()
		return h.parse(req.SourcePath, reader)
	default:
		return nil, http.StatusBadRequest, &errorBody{
			Code:    "bad_request",
			Message: "upload a file or provide sheet_url or source_path",
		}
	}
}

func (h *ImportHandler) parse(filename string, r io.Reader) ([]domain.RawRow, int, *errorBody) {
	rows, _, err := h.parseRows(filename, r)
	if err != nil {
		return nil, http.StatusBadRequest, &errorBody{
			Code:    "unreadable_file",
			Message: "could not parse import file: " + err.Error(),
		}
	}
	return rows, 0, nil
}

func (h *ImportHandler) importError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, app.ErrNoAuthenticatedUser):
		return c.JSON(http.StatusUnauthorized, apiResponse{Error: &errorBody{
			Code:    "unauthenticated",
			Message: "could not verify user identity",
		}})
	case errors.Is(err, app.ErrEmptyImport):
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "empty_import",
			Message: "no data found to import",
		}})
	case errors.Is(err, app.ErrNoUsableRows):
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "no_usable_rows",
			Message: "no rows with usable lead data found",
		}})
	case errors.Is(err, app.ErrDuplicateLookup), errors.Is(err, app.ErrInsertLeads):
		return c.JSON(http.StatusBadGateway, apiResponse{Error: &errorBody{
			Code:    "store_unavailable",
			Message: "lead store request failed; nothing was imported",
		}})
	default:
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to import leads",
		}})
	}
}
