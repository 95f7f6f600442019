package identity

import (
	"errors"
	"fmt"
	"time"

	"tableflip.dev/daypack/pkg/stats"
	"tableflip.dev/daypack/pkg/store"
)

// Session is the active user record, stored under the unpartitioned "user"
// key. At most one session exists at a time; its absence hides partitioned
// state but never deletes it.
type Session struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
	Token string `json:"token,omitempty"`
	Guest bool   `json:"guest,omitempty"`
}

// Partition returns the partition key all of this session's entities live
// under.
func (s *Session) Partition() store.Partition {
	if s == nil {
		return store.Anonymous
	}
	return store.Partition(s.ID)
}

var ErrNoStore = errors.New("identity: no store configured")

// Manager owns the session lifecycle and resolves the active partition key
// for every other component.
type Manager struct {
	Store *store.Store

	current *Session
}

// NewManager resolves any persisted session pointer at startup. A corrupt
// session record propagates; there is no safe partition to fall back to.
func NewManager(s *store.Store) (*Manager, error) {
	if s == nil {
		return nil, ErrNoStore
	}
	m := &Manager{Store: s}
	var sess Session
	ok, err := s.ReadJSON(store.KindUser, store.Anonymous, &sess)
	if err != nil {
		return nil, err
	}
	if ok {
		m.current = &sess
	}
	return m, nil
}

// Current returns the active session, or nil when logged out.
func (m *Manager) Current() *Session {
	return m.current
}

// Partition returns the active partition key, store.Anonymous when logged out.
func (m *Manager) Partition() store.Partition {
	return m.current.Partition()
}

// Login derives the stable partition for the identity, guarantees its stats
// partition exists, and persists the session pointer. Other components never
// need to special-case a first login.
func (m *Manager) Login(id Identity) (*Session, error) {
	sess := &Session{
		ID:    StableID(id),
		Name:  id.Name,
		Email: id.Email,
		Image: id.PictureURL,
		Token: id.Token,
	}
	return m.establish(sess)
}

// LoginGuest creates a synthetic guest session with a timestamp-derived
// identifier and no external token.
func (m *Manager) LoginGuest(now time.Time) (*Session, error) {
	sess := &Session{
		ID:    fmt.Sprintf("guest_%d", now.UnixMilli()),
		Name:  "Guest",
		Guest: true,
	}
	return m.establish(sess)
}

func (m *Manager) establish(sess *Session) (*Session, error) {
	ledger := stats.Ledger{Store: m.Store}
	if err := ledger.Ensure(sess.Partition()); err != nil {
		return nil, err
	}
	if err := m.Store.WriteJSON(store.KindUser, store.Anonymous, sess); err != nil {
		return nil, err
	}
	m.current = sess
	return sess, nil
}

// Logout clears only the session pointer; partitioned collections survive and
// reappear on the next login with the same identity.
func (m *Manager) Logout() error {
	if err := m.Store.Erase(store.KindUser, store.Anonymous); err != nil {
		return err
	}
	m.current = nil
	return nil
}
