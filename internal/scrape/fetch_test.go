package scrape

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchDocumentParsesPage(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`<html><body><div class="job_listing">x</div></body></html>`))
	}))
	defer srv.Close()

	c := NewClient(5*time.Second, 100)
	doc, err := c.FetchDocument(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, 1, doc.Find("div.job_listing").Length())
	assert.Equal(t, userAgent, gotUA)
}

func TestFetchDocumentNon2xxIsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(5*time.Second, 100)
	_, err := c.FetchDocument(context.Background(), srv.URL)
	require.Error(t, err)

	var fe *FetchError
	assert.True(t, errors.As(err, &fe))
	assert.Contains(t, fe.Error(), "403")
}

func TestFetchDocumentTransportFailureIsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(time.Second, 100)
	_, err := c.FetchDocument(context.Background(), srv.URL)

	var fe *FetchError
	assert.True(t, errors.As(err, &fe))
}
