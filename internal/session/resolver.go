// Package session rebuilds the transient session from the provider's
// current credential: on process start and on every sign-in/sign-out.
package session

import (
	"context"

	firebaseauth "firebase.google.com/go/v4/auth"

	"github.com/modasmart/storefront/internal/apperr"
	"github.com/modasmart/storefront/internal/authn"
	"github.com/modasmart/storefront/internal/logging"
	"github.com/modasmart/storefront/internal/models"
)

type UserStore interface {
	GetUser(ctx context.Context, uid string) (*models.User, error)
}

// TokenVerifier optionally checks the credential's ID token before the
// role lookup. A verification failure is handled like a failed lookup.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) error
}

// FirebaseVerifier verifies ID tokens with the Firebase auth client.
type FirebaseVerifier struct {
	Client *firebaseauth.Client
}

func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) error {
	_, err := v.Client.VerifyIDToken(ctx, idToken)
	return err
}

type Resolver struct {
	Users    UserStore
	Verifier TokenVerifier // optional
}

// Resolve maps the current credential onto a session. Outcomes:
//
//	no credential          -> unauthenticated
//	missing user document  -> user kept, role empty (invalid role)
//	lookup/verify failure  -> unauthenticated
//
// The returned error reports the failed lookup; it is for display and
// logging only, never fatal, and the session is valid either way.
func (r *Resolver) Resolve(ctx context.Context, cred *authn.Credential) (models.Session, error) {
	log := logging.FromContext(ctx)

	if cred == nil {
		return models.Session{}, nil
	}

	if r.Verifier != nil && cred.IDToken != "" {
		if err := r.Verifier.Verify(ctx, cred.IDToken); err != nil {
			log.Error("session: id token rejected", "uid", cred.UID, "err", err)
			return models.Session{}, err
		}
	}

	user, err := r.Users.GetUser(ctx, cred.UID)
	if err != nil {
		if apperr.IsNotFound(err) {
			log.Error("session: user document not found", "uid", cred.UID)
			return models.Session{
				User: &models.User{ID: cred.UID, Email: cred.Email},
			}, err
		}
		log.Error("session: role lookup failed", "uid", cred.UID, "err", err)
		return models.Session{}, err
	}

	return models.Session{User: user, Role: user.Role}, nil
}
