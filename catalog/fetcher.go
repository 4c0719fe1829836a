package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/kroogliy/maitsevcatering-sub000/models"
)

// FetchError is any failure to obtain the catalog: transport errors, non-2xx
// responses and payloads the upstream itself marks as failed.
type FetchError struct {
	Status  int
	Message string
}

func (e *FetchError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("catalog fetch failed (status %d): %s", e.Status, e.Message)
	}
	return "catalog fetch failed: " + e.Message
}

// Client fetches the combined product+beverage payload from the upstream
// catalog endpoint.
type Client struct {
	url  string
	http *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchCatalog performs one GET against the catalog endpoint. The response
// body is decoded even on error statuses so the server-provided message can
// be surfaced.
func (c *Client) FetchCatalog(ctx context.Context) (*models.RawCatalogPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &FetchError{Message: err.Error()}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{Message: err.Error()}
	}
	defer resp.Body.Close()

	var payload models.RawCatalogPayload
	decodeErr := json.NewDecoder(resp.Body).Decode(&payload)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := payload.Error
		if msg == "" {
			msg = "unexpected status from catalog endpoint"
		}
		return nil, &FetchError{Status: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return nil, &FetchError{Status: resp.StatusCode, Message: "invalid catalog response: " + decodeErr.Error()}
	}
	if !payload.Success {
		msg := payload.Error
		if msg == "" {
			msg = "catalog endpoint reported failure"
		}
		return nil, &FetchError{Status: resp.StatusCode, Message: msg}
	}
	return &payload, nil
}
