package save

import "context"

// Store reads and writes the single saved game.
type Store interface {
	Save(ctx context.Context, rec Record) error
	Load(ctx context.Context) (Record, error)
	Close() error
}
