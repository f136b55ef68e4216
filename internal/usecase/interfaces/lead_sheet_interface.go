package interfaces

import "context"

// ILeadSheet appends one lead row to the sales spreadsheet.
type ILeadSheet interface {
	AppendRow(ctx context.Context, row []string) error
}
