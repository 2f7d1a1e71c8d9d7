package ports

import "context"

// Sequence allocates monotonically increasing ids. Next must be atomic
// under concurrent callers; it is the single serialization point for
// id assignment in backends without native auto-increment.
type Sequence interface {
	Next(ctx context.Context, name string) (int64, error)
}

// Sequence names shared by repository implementations.
const (
	SeqUsers  = "users"
	SeqJobs   = "jobs"
	SeqQuotes = "quotes"
)
