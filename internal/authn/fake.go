package authn

import (
	"context"
	"fmt"
	"sync"
)

// Fake is a scripted in-process Authenticator for tests.
type Fake struct {
	notifier

	mu       sync.Mutex
	accounts map[string]fakeAccount
	nextUID  int

	// SignInErr, when set, makes every SignIn fail with it.
	SignInErr error
}

type fakeAccount struct {
	uid      string
	password string
}

func NewFake() *Fake {
	return &Fake{accounts: make(map[string]fakeAccount)}
}

// Seed registers an account without signing it in and returns its uid.
func (f *Fake) Seed(email, password string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextUID++
	uid := fmt.Sprintf("uid-%d", f.nextUID)
	f.accounts[email] = fakeAccount{uid: uid, password: password}
	return uid
}

func (f *Fake) SignIn(ctx context.Context, email, password string) (*Credential, error) {
	if f.SignInErr != nil {
		return nil, f.SignInErr
	}
	f.mu.Lock()
	acct, ok := f.accounts[email]
	f.mu.Unlock()
	if !ok || acct.password != password {
		return nil, fmt.Errorf("authn: sign in: provider rejected request: INVALID_LOGIN_CREDENTIALS")
	}
	cred := &Credential{UID: acct.uid, Email: email}
	f.setCurrent(cred)
	return cred, nil
}

func (f *Fake) SignUp(ctx context.Context, email, password string) (*Credential, error) {
	f.mu.Lock()
	if _, exists := f.accounts[email]; exists {
		f.mu.Unlock()
		return nil, fmt.Errorf("authn: sign up: provider rejected request: EMAIL_EXISTS")
	}
	f.nextUID++
	uid := fmt.Sprintf("uid-%d", f.nextUID)
	f.accounts[email] = fakeAccount{uid: uid, password: password}
	f.mu.Unlock()

	cred := &Credential{UID: uid, Email: email}
	f.setCurrent(cred)
	return cred, nil
}

func (f *Fake) SignOut() {
	f.setCurrent(nil)
}
