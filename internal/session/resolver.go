// Package session reconciles the identity of a caller from several
// independently populated sources into one effective user.
package session

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"verdant/plantcare-api/pkg/util"
)

// Identity is the effective user produced by a Resolver. Guest
// identities are synthesized and never hit the database.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token,omitempty"`
	Guest bool   `json:"guest,omitempty"`
}

// Source is a single place an identity may come from, e.g. a session
// cookie, a bearer header or a cached previous resolution.
type Source interface {
	Name() string
	Resolve(ctx context.Context) (*Identity, error)
}

// SourceFunc adapts a plain function into a Source.
type SourceFunc struct {
	SourceName string
	Fn         func(ctx context.Context) (*Identity, error)
}

func (s SourceFunc) Name() string { return s.SourceName }

func (s SourceFunc) Resolve(ctx context.Context) (*Identity, error) {
	return s.Fn(ctx)
}

// Resolver consults its sources in a fixed order. The order is the
// precedence: the first source that yields an identity wins, later
// sources are not consulted.
type Resolver struct {
	sources []Source
}

func NewResolver(sources ...Source) *Resolver {
	return &Resolver{sources: sources}
}

// Resolve walks the sources in order and returns the first identity
// found together with the name of the source that produced it. A
// failing source is logged and skipped so that a broken cache or an
// unreachable endpoint never blocks the fallthrough. When every source
// comes back empty a guest identity is synthesized.
func (r *Resolver) Resolve(ctx context.Context) (*Identity, string) {
	for _, s := range r.sources {
		id, err := s.Resolve(ctx)
		if err != nil {
			zap.L().Debug("Session source failed",
				zap.String("source", s.Name()),
				zap.Error(err))
			continue
		}

		if id != nil {
			return id, s.Name()
		}
	}

	return NewGuest(), "guest"
}

// NewGuest synthesizes a placeholder user with a throwaway token. The
// token is deliberately not a signed JWT: authenticated routes will
// reject it, which is the intended behavior for guests.
func NewGuest() *Identity {
	return &Identity{
		ID:    "guest-" + uuid.NewString(),
		Name:  "Guest User",
		Email: "guest@example.com",
		Token: "temp-token-" + util.RandStr(13),
		Guest: true,
	}
}
