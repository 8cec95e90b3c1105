package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"
)

var sheetDocPattern = regexp.MustCompile(`/d/([a-zA-Z0-9-_]+)`)

// SheetSource downloads a publicly shared Google Sheet as CSV. A standard
// edit URL is rewritten to the sheet's CSV export endpoint; any other URL
// is fetched as-is.
type SheetSource struct {
	client *http.Client
}

func NewSheetSource(client *http.Client) *SheetSource {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &SheetSource{client: client}
}

func (s *SheetSource) Open(ctx context.Context, sheetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, exportURL(sheetURL), nil)
	if err != nil {
		return nil, fmt.Errorf("build sheet request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch sheet: unexpected status %d; ensure the sheet is publicly accessible", resp.StatusCode)
	}

	return resp.Body, nil
}

// exportURL rewrites a standard sheet edit URL to its CSV export form.
func exportURL(sheetURL string) string {
	if match := sheetDocPattern.FindStringSubmatch(sheetURL); match != nil {
		return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv", match[1])
	}
	return sheetURL
}
