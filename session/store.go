// Package session persists completed prompt-roadmap sessions. A session is
// stored fully populated or not at all; there is no partial clarify-stage
// snapshot.
package session

import (
	"context"

	"github.com/promptpilot/prompt-pilot-service/types"
)

// Store saves and restores completed sessions by key. Implementations are
// best-effort caches: a Load miss returns (nil, nil).
type Store interface {
	Save(ctx context.Context, key string, sess *types.Session) error
	Load(ctx context.Context, key string) (*types.Session, error)
	Delete(ctx context.Context, key string) error
}
