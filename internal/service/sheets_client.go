package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"brewdash/internal/config"
	"brewdash/internal/logger"
	"brewdash/internal/model"
)

// SheetsClient fetches checklist submissions from the five spreadsheet-backed
// web app endpoints. Sources without a configured URL resolve to an empty set.
type SheetsClient struct {
	cfg        *config.SourcesConfig
	httpClient *http.Client
	log        *logger.Logger
}

func NewSheetsClient(cfg *config.SourcesConfig, log *logger.Logger) *SheetsClient {
	return &SheetsClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
		log: log,
	}
}

// FetchAll pulls the submission sets of every source. A failing configured
// source fails the whole fetch, stale analyses are worse than no analysis.
func (c *SheetsClient) FetchAll(ctx context.Context) (*model.ChecklistData, error) {
	data := &model.ChecklistData{}
	for _, src := range []struct {
		source model.Source
		url    string
		dest   *[]model.SubmissionRecord
	}{
		{model.SourceHR, c.cfg.HRURL, &data.HR},
		{model.SourceOperations, c.cfg.OperationsURL, &data.Operations},
		{model.SourceTraining, c.cfg.TrainingURL, &data.Training},
		{model.SourceQA, c.cfg.QAURL, &data.QA},
		{model.SourceFinance, c.cfg.FinanceURL, &data.Finance},
	} {
		subs, err := c.fetchSource(ctx, src.source, src.url)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", src.source, err)
		}
		*src.dest = subs
	}
	return data, nil
}

func (c *SheetsClient) fetchSource(ctx context.Context, src model.Source, url string) ([]model.SubmissionRecord, error) {
	if url == "" {
		c.log.WithField("source", src).Debug("source not configured, skipping")
		return []model.SubmissionRecord{}, nil
	}

	var subs []model.SubmissionRecord
	operation := func() error {
		records, err := c.fetchOnce(ctx, url)
		if err != nil {
			return err
		}
		subs = records
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	c.log.WithField("source", src).WithField("count", len(subs)).Debug("source fetched")
	return subs, nil
}

func (c *SheetsClient) fetchOnce(ctx context.Context, url string) ([]model.SubmissionRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("endpoint returned %d", resp.StatusCode)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}
	return decodeSubmissions(body)
}

// decodeSubmissions accepts both shapes the web apps produce: a bare JSON
// array, or an object wrapping it under "data".
func decodeSubmissions(body []byte) ([]model.SubmissionRecord, error) {
	var direct []model.SubmissionRecord
	if err := json.Unmarshal(body, &direct); err == nil {
		return direct, nil
	}
	var wrapped struct {
		Data []model.SubmissionRecord `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Data != nil {
		return wrapped.Data, nil
	}
	return nil, backoff.Permanent(fmt.Errorf("unrecognized response shape"))
}
