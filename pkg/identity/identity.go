package identity

import (
	"context"
	"crypto/md5"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Identity is what an identity provider hands back after authentication. Only
// a stable unique identifier is required by the core; everything else is
// display data.
type Identity struct {
	ID         string
	Name       string
	Email      string
	PictureURL string
	Token      string
}

// StableID derives the partition-forming identifier for an identity. Display
// fields never participate; the external id wins, falling back to a normalized
// email so repeat logins land on the same partition.
func StableID(id Identity) string {
	src := id.ID
	if src == "" {
		src = strings.ToLower(strings.TrimSpace(id.Email))
	}
	sum := md5.Sum([]byte(src))
	return fmt.Sprintf("user_%x", sum[:8])
}

// Provider supplies authenticated identities. Real providers are out of scope;
// SimulatedProvider stands in for the hosted OAuth flow.
type Provider interface {
	Authenticate(ctx context.Context) (Identity, error)
}

// SimulatedProvider fabricates the mock Google identity after a short delay,
// the way the hosted flow would.
type SimulatedProvider struct {
	Delay time.Duration
}

func (p SimulatedProvider) Authenticate(ctx context.Context) (Identity, error) {
	delay := p.Delay
	if delay == 0 {
		delay = time.Second
	}
	select {
	case <-time.After(delay):
	case <-ctx.Done():
		return Identity{}, ctx.Err()
	}
	return Identity{
		Name:       "John Doe",
		Email:      "johndoe@example.com",
		PictureURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=john",
		Token:      uuid.NewString(),
	}, nil
}
