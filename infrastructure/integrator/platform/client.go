// Package platform lê eventos brutos pela API REST da plataforma hospedada
package platform

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/delivery-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	eventsResource = "campaign_events"
	pageSize       = 1000
)

// EventRow é o formato de uma linha de campaign_events na API REST
type EventRow struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	EntityID   string    `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Value      *float64  `json:"value"`
}

// EventsParams filtra a consulta de eventos
type EventsParams struct {
	EntityID  string
	Kinds     []string
	StartDate time.Time
	EndBefore time.Time // exclusivo
	Offset    int
	Limit     int
}

type Client interface {
	GetEvents(ctx context.Context, params EventsParams) ([]EventRow, error)
}

type PlatformClient struct {
	httpClient *retryablehttp.Client
	baseURL    string
	apiKey     string
}

func NewClient(cfg config.Platform) Client {
	return &PlatformClient{
		httpClient: newRetryClient(cfg.Timeout),
		baseURL:    cfg.URL,
		apiKey:     cfg.APIKey,
	}
}

func newRetryClient(timeout time.Duration) *retryablehttp.Client {
	c := retryablehttp.NewClient()
	c.RetryMax = 3
	c.RetryWaitMin = 500 * time.Millisecond
	c.RetryWaitMax = 3 * time.Second
	c.Logger = nil
	if timeout > 0 {
		c.HTTPClient.Timeout = timeout
	}
	return c
}

func (c *PlatformClient) GetEvents(ctx context.Context, params EventsParams) ([]EventRow, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, eventsResource)

	query := url.Values{}
	query.Set("select", "id,kind,entity_id,occurred_at,value")
	query.Add("occurred_at", "gte."+params.StartDate.UTC().Format(time.RFC3339Nano))
	query.Add("occurred_at", "lt."+params.EndBefore.UTC().Format(time.RFC3339Nano))
	if params.EntityID != "" {
		query.Set("entity_id", "eq."+params.EntityID)
	}
	if len(params.Kinds) > 0 {
		query.Set("kind", "in.("+strings.Join(params.Kinds, ",")+")")
	}
	query.Set("order", "occurred_at.asc,id.asc")
	endpoint.RawQuery = query.Encode()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if params.Limit > 0 {
		req.Header.Set("Range-Unit", "items")
		req.Header.Set("Range", fmt.Sprintf("%d-%d", params.Offset, params.Offset+params.Limit-1))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("requisição falhou com status %s: %s", resp.Status, body)
	}

	var rows []EventRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return rows, nil
}
