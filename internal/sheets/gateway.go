// Package sheets is the tabular store boundary: read the whole worksheet,
// append rows after existing content. Row 1 is always the header and is
// written exactly once, when the sheet is still empty.
package sheets

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"jobsheet-engine/internal/domain"
)

type Config struct {
	SpreadsheetID string
	Worksheet     string
}

// Client talks to the Google Sheets v4 API with service-account credentials.
type Client struct {
	svc *sheetsapi.Service
	cfg Config
}

// NewClient authenticates with the given service-account key JSON.
func NewClient(ctx context.Context, cfg Config, credentialsJSON []byte) (*Client, error) {
	jwt, err := google.JWTConfigFromJSON(credentialsJSON, sheetsapi.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("sheets credentials: %w", err)
	}
	svc, err := sheetsapi.NewService(ctx, option.WithHTTPClient(jwt.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Client{svc: svc, cfg: cfg}, nil
}

// ReadAll fetches every row of the worksheet, header included.
func (c *Client) ReadAll(ctx context.Context) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.
		Get(c.cfg.SpreadsheetID, c.cfg.Worksheet).
		Context(ctx).Do()
	if err != nil {
		return nil, &StoreUnavailableError{Op: "read", Err: err}
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Append adds the listings as rows strictly after existing content and
// returns the number of cells written. includeHeader prepends the header
// row; the caller sets it only when the snapshot showed an empty sheet.
func (c *Client) Append(ctx context.Context, listings []domain.JobListing, includeHeader bool) (int, error) {
	vr := &sheetsapi.ValueRange{Values: Rows(listings, includeHeader)}

	resp, err := c.svc.Spreadsheets.Values.
		Append(c.cfg.SpreadsheetID, c.cfg.Worksheet, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return 0, &StoreUnavailableError{Op: "append", Err: err}
	}
	if resp.Updates == nil {
		return 0, nil
	}
	return int(resp.Updates.UpdatedCells), nil
}

// Rows serializes listings into sheet values, optionally led by the header.
func Rows(listings []domain.JobListing, includeHeader bool) [][]interface{} {
	var values [][]interface{}
	if includeHeader {
		values = append(values, toCells(domain.Header()))
	}
	for _, l := range listings {
		values = append(values, toCells(l.Row()))
	}
	return values
}

func toCells(row []string) []interface{} {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}
	return cells
}
