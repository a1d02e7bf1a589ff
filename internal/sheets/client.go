package sheets

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"

	"weekly-check/internal/model"
)

// Store is the read/append surface of the backing spreadsheet. Services
// depend on this interface; tests substitute an in-memory fake.
type Store interface {
	Read(ctx context.Context, rng string) ([][]string, error)
	Append(ctx context.Context, rng string, rows [][]string) error
}

// Client talks to one spreadsheet through the Sheets v4 API.
type Client struct {
	svc           *sheetsv4.Service
	spreadsheetID string
}

// New builds a Client from service-account credentials. credFile points at a
// service-account JSON key; if credJSON is non-empty it takes precedence and
// is parsed directly (the key handed over via env in deployments).
func New(ctx context.Context, spreadsheetID, credFile, credJSON string) (*Client, error) {
	var opts []option.ClientOption
	if credJSON != "" {
		jwtCfg, err := google.JWTConfigFromJSON([]byte(credJSON), sheetsv4.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("parse service account key: %w", err)
		}
		opts = append(opts, option.WithHTTPClient(jwtCfg.Client(ctx)))
	} else {
		if _, err := os.Stat(credFile); err != nil {
			return nil, fmt.Errorf("credentials file %s: %w", credFile, err)
		}
		opts = append(opts,
			option.WithCredentialsFile(credFile),
			option.WithScopes(sheetsv4.SpreadsheetsScope))
	}

	svc, err := sheetsv4.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

func (c *Client) Read(ctx context.Context, rng string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", model.ErrStoreUnavailable, rng, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = fmt.Sprint(cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (c *Client) Append(ctx context.Context, rng string, rows [][]string) error {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}

	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rng,
		&sheetsv4.ValueRange{Values: values}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: append %s: %v", model.ErrStoreUnavailable, rng, err)
	}
	return nil
}
