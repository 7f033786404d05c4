// Package mf implements the company-registry lookup against the Ministry of
// Finance VAT white-list API.
package mf

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"fakturo/internal/config"
	"fakturo/internal/domain"
	"fakturo/internal/port"
)

const apiURL = "https://wl-api.mf.gov.pl"

var nipPattern = regexp.MustCompile(`^\d{10}$`)

// Client implements port.CompanyRegistry using the white-list search API.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a registry client from config.
func NewClient(cfg *config.RegistryConfig) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = apiURL
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// NewClientWithEndpoint creates a client pointing at a custom endpoint (for testing).
func NewClientWithEndpoint(endpoint string) *Client {
	return &Client{
		baseURL: strings.TrimRight(endpoint, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type searchResponse struct {
	Result struct {
		Subject *struct {
			Name           string `json:"name"`
			NIP            string `json:"nip"`
			REGON          string `json:"regon"`
			StatusVat      string `json:"statusVat"`
			WorkingAddress string `json:"workingAddress"`
			ResidenceAddr  string `json:"residenceAddress"`
		} `json:"subject"`
	} `json:"result"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) LookupNIP(ctx context.Context, nip string) (*domain.RegistryEntry, error) {
	if !nipPattern.MatchString(nip) {
		return nil, domain.NewValidationError("nip", "must be exactly 10 digits")
	}

	endpoint := fmt.Sprintf("%s/api/search/nip/%s?date=%s",
		c.baseURL, url.PathEscape(nip), time.Now().UTC().Format("2006-01-02"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("mf: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRegistryUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("mf: reading response: %w", err)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("mf: decoding response (status %d): %w", resp.StatusCode, err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRegistryUnavailable, parsed.Error.Message)
	}
	if parsed.Result.Subject == nil {
		return nil, domain.ErrNotFound
	}

	subject := parsed.Result.Subject
	address := subject.WorkingAddress
	if address == "" {
		address = subject.ResidenceAddr
	}

	return &domain.RegistryEntry{
		Name:      subject.Name,
		NIP:       subject.NIP,
		REGON:     subject.REGON,
		Address:   address,
		VATStatus: subject.StatusVat,
	}, nil
}

var _ port.CompanyRegistry = (*Client)(nil)
