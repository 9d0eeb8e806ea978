package sheets

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/habitflow-ai/habitflow/Backend_go/pkg/config"
)

// Worksheet names double as the collection names of the record store.
const (
	SheetUsers   = "users"
	SheetHabits  = "habits"
	SheetEntries = "entries"
)

// sheetHeaders is the canonical header row of every worksheet. The store
// is append-only; readers key each row by these headers.
var sheetHeaders = map[string][]string{
	SheetUsers:   {"user_id", "username", "first_name", "last_name", "joined_at", "is_active"},
	SheetHabits:  {"user_id", "name", "description", "target_frequency", "created_at"},
	SheetEntries: {"user_id", "habit_name", "completed", "date", "notes", "rating"},
}

// Store is the record-store contract the domain repositories consume:
// append a row, or read the whole collection. No update, delete or
// incremental query exists on purpose.
type Store interface {
	AppendRow(ctx context.Context, sheet string, row []string) error
	ReadAll(ctx context.Context, sheet string) ([]Record, error)
}

// Client talks to a single spreadsheet used as the record store.
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewClient authorizes against the Sheets API with a service account and
// makes sure the three worksheets exist with their header rows.
func NewClient(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*Client, error) {
	data, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheets credentials: %w", err)
	}

	jwtConfig, err := google.JWTConfigFromJSON(data, sheetsapi.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}

	svc, err := sheetsapi.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	client := &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}

	if err := client.ensureSheets(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize worksheets: %w", err)
	}

	return client, nil
}

// ensureSheets creates any missing worksheet and writes its header row.
func (c *Client) ensureSheets(ctx context.Context) error {
	spreadsheet, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to open spreadsheet %s: %w", c.spreadsheetID, err)
	}

	existing := make(map[string]bool, len(spreadsheet.Sheets))
	for _, sheet := range spreadsheet.Sheets {
		existing[sheet.Properties.Title] = true
	}

	for _, title := range []string{SheetUsers, SheetHabits, SheetEntries} {
		if existing[title] {
			continue
		}

		req := &sheetsapi.BatchUpdateSpreadsheetRequest{
			Requests: []*sheetsapi.Request{
				{
					AddSheet: &sheetsapi.AddSheetRequest{
						Properties: &sheetsapi.SheetProperties{Title: title},
					},
				},
			},
		}
		if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
			return fmt.Errorf("failed to create worksheet %s: %w", title, err)
		}

		if err := c.AppendRow(ctx, title, sheetHeaders[title]); err != nil {
			return fmt.Errorf("failed to write header row for %s: %w", title, err)
		}

		c.logger.Info("Created worksheet",
			zap.String("sheet", title),
			zap.Strings("headers", sheetHeaders[title]))
	}

	return nil
}

// AppendRow appends one row to the given worksheet.
func (c *Client) AppendRow(ctx context.Context, sheet string, row []string) error {
	values := make([]interface{}, len(row))
	for i, cell := range row {
		values[i] = cell
	}

	valueRange := &sheetsapi.ValueRange{
		Values: [][]interface{}{values},
	}

	_, err := c.svc.Spreadsheets.Values.
		Append(c.spreadsheetID, sheet+"!A1", valueRange).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append row to %s: %w", sheet, err)
	}

	return nil
}

// ReadAll reads the entire worksheet and returns its data rows keyed by
// the header row. Full-collection scans are the only read the store
// offers; callers filter in memory.
func (c *Client) ReadAll(ctx context.Context, sheet string) ([]Record, error) {
	resp, err := c.svc.Spreadsheets.Values.
		Get(c.spreadsheetID, sheet).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", sheet, err)
	}

	return rowsToRecords(resp.Values), nil
}
