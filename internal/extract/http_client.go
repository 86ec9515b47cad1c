package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ClientConfig holds settings for the external document-understanding service.
type ClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client implements Extractor against the extraction service's HTTP API.
type Client struct {
	cfg  ClientConfig
	http *http.Client
	log  *slog.Logger
}

func NewClient(cfg ClientConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger,
	}
}

// serviceError is the error envelope the extraction service returns on 4xx.
type serviceError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Extract posts the PDF and decodes the structured payload. Responses are
// validated against the extraction schema before they are trusted; validation
// failures count as unreadable documents, not transport errors.
func (c *Client) Extract(ctx context.Context, pdf []byte) (*ExtractedData, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("extract.start", "req_id", rid, "pdf_bytes", len(pdf))

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/v1/illustrations/extract"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(pdf))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/pdf")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("extract.http_error", "req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, &TransientError{Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, &TransientError{Cause: fmt.Errorf("read response: %w", err)}
	}

	switch {
	case resp.StatusCode >= 500:
		c.log.Error("extract.server_error", "req_id", rid, "status", resp.StatusCode)
		return nil, &TransientError{Cause: fmt.Errorf("service returned %d", resp.StatusCode)}
	case resp.StatusCode >= 400:
		var se serviceError
		if err := json.Unmarshal(body, &se); err != nil || se.Kind == "" {
			se = serviceError{Kind: "unreadable", Message: strings.TrimSpace(string(body))}
		}
		c.log.Warn("extract.rejected", "req_id", rid, "kind", se.Kind, "message", se.Message)
		return nil, &ExtractionError{Kind: se.Kind, Message: se.Message}
	}

	schema := BuildExtractionJSONSchema()
	if err := ValidateJSONAgainstSchema(schema, body); err != nil {
		c.log.Error("extract.schema_validation_failed", "req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, &ExtractionError{Kind: "unreadable", Message: fmt.Sprintf("schema validation failed: %v", err)}
	}

	var out ExtractedData
	if err := json.Unmarshal(body, &out); err != nil {
		c.log.Error("extract.unmarshal_failed", "req_id", rid, "error", err)
		return nil, &ExtractionError{Kind: "unreadable", Message: fmt.Sprintf("decode payload: %v", err)}
	}
	out.Sanitize()

	c.log.Info("extract.ok",
		"req_id", rid,
		"insurance_name", out.BasicInfo.InsuranceName,
		"provider", out.BasicInfo.InsuranceProvider,
		"cash_values", len(out.CashValueData.CashValues),
		"confidence", out.Metadata.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return &out, nil
}
