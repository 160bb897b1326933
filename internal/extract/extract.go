// Package extract is the boundary to the document-to-structured-data
// extraction service. The service is a black box that may fail outright or
// return a partially populated draft; a failed call never produces a draft.
package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Shrijana18/StockPilot-v1-sub002/internal/models"
)

// Parser turns an uploaded document URL into a structured draft candidate.
type Parser interface {
	Parse(ctx context.Context, documentURL string) (models.InvoiceDraft, error)
}

// Config for the HTTP extraction client.
type Config struct {
	// Endpoint is the extraction service URL the document reference is posted to.
	Endpoint string

	// Timeout bounds a single extraction call. Default 60s; OCR on a full
	// invoice page routinely takes tens of seconds.
	Timeout time.Duration
}

// Client calls a remote extraction endpoint over HTTP.
type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

type parseRequest struct {
	URL string `json:"url"`
}

// Parse posts the document URL and decodes the service's draft candidate.
// Any network, status or decode failure is returned as-is: the caller surfaces
// it as an OCR-path failure and does not fabricate a draft.
func (c *Client) Parse(ctx context.Context, documentURL string) (models.InvoiceDraft, error) {
	var draft models.InvoiceDraft

	body, err := json.Marshal(parseRequest{URL: documentURL})
	if err != nil {
		return draft, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return draft, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return draft, fmt.Errorf("extraction request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return draft, fmt.Errorf("extraction service returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&draft); err != nil {
		return draft, fmt.Errorf("extraction response decode failed: %w", err)
	}
	return draft, nil
}
