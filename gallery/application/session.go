package application

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/mrozco/galleria/gallery/domain"
)

// SessionGate controls access to the administration surface and to every
// mutating store operation. It is a deliberately weak client-grade gate: a
// single shared secret compared by exact match, unlimited retries, no
// lockout. Real security is a documented non-goal.
type SessionGate struct {
	mu         sync.Mutex
	authorized bool
	secret     string
	repo       domain.SessionRepository
}

func NewSessionGate(secret string, repo domain.SessionRepository) *SessionGate {
	return &SessionGate{secret: secret, repo: repo}
}

// Hydrate restores the persisted session flag. Missing or malformed storage
// degrades to guest.
func (g *SessionGate) Hydrate(ctx context.Context) {
	authorized, err := g.repo.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Could not hydrate session flag, starting as guest")
		authorized = false
	}

	g.mu.Lock()
	g.authorized = authorized
	g.mu.Unlock()
}

// Login presents a credential. On exact match the session transitions to
// authorized and the flag is persisted; on mismatch the state is unchanged
// and domain.ErrUnauthorized is returned.
func (g *SessionGate) Login(ctx context.Context, credential string) error {
	if strings.TrimSpace(credential) != g.secret {
		return fmt.Errorf("%w: credential mismatch", domain.ErrUnauthorized)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.authorized = true
	if err := g.repo.Save(ctx, true); err != nil {
		wrapped := fmt.Errorf("%w: %v", domain.ErrPersist, err)
		log.Warn().Err(err).Msg("Session flag write failed; session stays authorized in memory")
		return wrapped
	}
	return nil
}

// Logout returns the session to guest and clears the persisted flag,
// regardless of prior state.
func (g *SessionGate) Logout(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.authorized = false
	if err := g.repo.Clear(ctx); err != nil {
		wrapped := fmt.Errorf("%w: %v", domain.ErrPersist, err)
		log.Warn().Err(err).Msg("Session flag removal failed; session stays guest in memory")
		return wrapped
	}
	return nil
}

// Authorized reports whether the session may reach guarded operations.
func (g *SessionGate) Authorized() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.authorized
}
