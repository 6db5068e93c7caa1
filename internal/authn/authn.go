// Package authn wraps the authentication provider. Credential lifecycle
// (password checks, token issuing) belongs to the provider; this package
// only signs in, signs up, signs out and lets the app observe the
// current-credential transitions.
package authn

import (
	"context"
	"sync"
	"time"
)

// Credential is the provider-issued proof of a signed-in user.
type Credential struct {
	UID          string
	Email        string
	IDToken      string
	RefreshToken string
	ExpiresAt    time.Time
}

type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (*Credential, error)
	SignUp(ctx context.Context, email, password string) (*Credential, error)
	SignOut()
	// Current returns the credential of the signed-in user, or nil.
	Current() *Credential
	// Subscribe registers fn to run on every sign-in/sign-out transition
	// with the new current credential (nil on sign-out). The returned
	// function unsubscribes.
	Subscribe(fn func(*Credential)) func()
}

// notifier carries the shared current-credential state and fan-out. Both
// the Firebase implementation and the test fake embed it.
type notifier struct {
	mu      sync.Mutex
	current *Credential
	subs    map[int]func(*Credential)
	nextSub int
}

func (n *notifier) Current() *Credential {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

func (n *notifier) Subscribe(fn func(*Credential)) func() {
	n.mu.Lock()
	if n.subs == nil {
		n.subs = make(map[int]func(*Credential))
	}
	id := n.nextSub
	n.nextSub++
	n.subs[id] = fn
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		delete(n.subs, id)
		n.mu.Unlock()
	}
}

func (n *notifier) setCurrent(c *Credential) {
	n.mu.Lock()
	n.current = c
	fns := make([]func(*Credential), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn(c)
	}
}
