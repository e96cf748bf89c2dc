package interfaces

import "context"

// IPrintChannel is the single print_data slot shared with the print view.
// The last write wins. Read returns "" when nothing was written.
type IPrintChannel interface {
	Write(ctx context.Context, payload string) error
	Read(ctx context.Context) (string, error)
}
