package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Sequence allocates monotonic integer ids via Redis INCR.
// Key format: seq:<name>
//
// INCR is atomic on the server, so concurrent writers across any
// number of API processes never receive the same id. Mongo has no
// auto-increment; this is the id authority for the Mongo-backed
// repositories.
type Sequence struct {
	client *redis.Client
}

// NewSequence creates a Sequence wrapping the given Redis client.
func NewSequence(client *redis.Client) *Sequence {
	return &Sequence{client: client}
}

// Next returns the next id for the named sequence, starting at 1.
func (s *Sequence) Next(ctx context.Context, name string) (int64, error) {
	id, err := s.client.Incr(ctx, s.key(name)).Result()
	if err != nil {
		return 0, fmt.Errorf("sequence %s: %w", name, err)
	}
	return id, nil
}

func (s *Sequence) key(name string) string {
	return "seq:" + name
}
