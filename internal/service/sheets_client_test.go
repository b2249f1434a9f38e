package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewdash/internal/config"
	"brewdash/internal/logger"
)

func newSheetsClient(cfg *config.SourcesConfig) *SheetsClient {
	if cfg.TimeoutMS == 0 {
		cfg.TimeoutMS = 2000
	}
	return NewSheetsClient(cfg, logger.New())
}

func TestFetchAll_BareArrayShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"q2":"Every time","region":"North"}]`))
	}))
	defer srv.Close()

	c := newSheetsClient(&config.SourcesConfig{HRURL: srv.URL})
	data, err := c.FetchAll(context.Background())
	require.NoError(t, err)

	require.Len(t, data.HR, 1)
	assert.Equal(t, "Every time", data.HR[0].StringField("q2"))
	assert.Empty(t, data.Operations)
}

func TestFetchAll_WrappedShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"CG_1":"Yes"},{"CG_1":"No"}]}`))
	}))
	defer srv.Close()

	c := newSheetsClient(&config.SourcesConfig{OperationsURL: srv.URL})
	data, err := c.FetchAll(context.Background())
	require.NoError(t, err)

	assert.Len(t, data.Operations, 2)
}

func TestFetchAll_UnconfiguredSourcesEmpty(t *testing.T) {
	c := newSheetsClient(&config.SourcesConfig{})
	data, err := c.FetchAll(context.Background())
	require.NoError(t, err)

	assert.Zero(t, data.Total())
	assert.NotNil(t, data.HR)
}

func TestFetchAll_ConfiguredFailurePropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := newSheetsClient(&config.SourcesConfig{QAURL: srv.URL})
	_, err := c.FetchAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "qa")
}

func TestFetchSource_ClientErrorNotRetried(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := newSheetsClient(&config.SourcesConfig{HRURL: srv.URL})
	_, err := c.FetchAll(context.Background())
	require.Error(t, err)
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
}

func TestFetchSource_ServerErrorRetried(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt64(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[{"FIN_1":"Yes"}]`))
	}))
	defer srv.Close()

	c := newSheetsClient(&config.SourcesConfig{FinanceURL: srv.URL})
	data, err := c.FetchAll(context.Background())
	require.NoError(t, err)

	assert.Len(t, data.Finance, 1)
	assert.Equal(t, int64(3), atomic.LoadInt64(&calls))
}
