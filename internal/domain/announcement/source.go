package announcement

import "context"

// Source retrieves announcements whose announcement date falls inside the window.
type Source interface {
	FetchAnnouncements(ctx context.Context, window Window, apiKey string) (*Set, error)
}
