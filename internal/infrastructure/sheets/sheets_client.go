package sheets

import (
	"context"
	"cotacao_ia/internal/usecase/interfaces"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

const (
	valueInputUserEntered = "USER_ENTERED"
	insertRows            = "INSERT_ROWS"
)

// Client appends lead rows to a Google spreadsheet through values.append.
type Client struct {
	svc           *gsheets.Service
	spreadsheetID string
	appendRange   string
}

var _ interfaces.ILeadSheet = (*Client)(nil)

// NewClient builds the spreadsheet client. opts usually carries the service
// account credentials (option.WithCredentialsJSON).
func NewClient(ctx context.Context, spreadsheetID, appendRange string, opts ...option.ClientOption) (*Client, error) {
	if strings.TrimSpace(spreadsheetID) == "" {
		return nil, errors.New("sheets: spreadsheet id is required")
	}
	if strings.TrimSpace(appendRange) == "" {
		appendRange = "A1"
	}
	opts = append([]option.ClientOption{option.WithScopes(gsheets.SpreadsheetsScope)}, opts...)
	svc, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: failed to create service: %w", err)
	}
	return &Client{svc: svc, spreadsheetID: spreadsheetID, appendRange: appendRange}, nil
}

// NewClientFromCredentials is the production constructor: service account JSON
// plus the target spreadsheet.
func NewClientFromCredentials(ctx context.Context, credentialsJSON, spreadsheetID, appendRange string) (*Client, error) {
	if strings.TrimSpace(credentialsJSON) == "" {
		return nil, errors.New("sheets: credentials are required")
	}
	return NewClient(ctx, spreadsheetID, appendRange, option.WithCredentialsJSON([]byte(credentialsJSON)))
}

func (c *Client) AppendRow(ctx context.Context, row []string) error {
	values := make([]interface{}, len(row))
	for i, v := range row {
		values[i] = v
	}
	vr := &gsheets.ValueRange{Values: [][]interface{}{values}}

	_, err := c.svc.Spreadsheets.Values.
		Append(c.spreadsheetID, c.appendRange, vr).
		ValueInputOption(valueInputUserEntered).
		InsertDataOption(insertRows).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets: append failed: %w", err)
	}
	return nil
}
