// Package tokenstore holds active access-token sessions in a TTL keyed
// store. Tokens expire on read: a Get past the deadline deletes the entry
// and reports a miss, so no sweeper goroutine is required for correctness.
package tokenstore

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Store interface {
	// Put registers token for userID with the given time to live.
	Put(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error
	// Get resolves token to its user. ok is false for unknown or expired
	// tokens; err reports backend failures only.
	Get(ctx context.Context, token string) (userID uuid.UUID, ok bool, err error)
	// Delete removes token. Deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error
}
