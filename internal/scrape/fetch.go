package scrape

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.3"

// FetchError wraps whatever went wrong getting or parsing one portal's page:
// transport failure, non-2xx status, or unparseable markup.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client fetches portal pages as parsed documents. One attempt per page;
// retries are the next scheduled run's problem.
type Client struct {
	hc      *http.Client
	limiter *hostLimiter
}

func NewClient(timeout time.Duration, reqPerSec float64) *Client {
	return &Client{
		hc:      &http.Client{Timeout: timeout},
		limiter: newHostLimiter(reqPerSec, 1),
	}
}

// FetchDocument downloads the page at url and parses it. All failure modes
// come back as a *FetchError.
func (c *Client) FetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	if err := c.limiter.waitURL(ctx, url); err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("status %d", res.StatusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("parse html: %w", err)}
	}
	return doc, nil
}
