package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modasmart/storefront/internal/authn"
	"github.com/modasmart/storefront/internal/models"
	"github.com/modasmart/storefront/internal/nav"
	"github.com/modasmart/storefront/internal/store"
)

func TestResolve_NoCredential(t *testing.T) {
	t.Parallel()

	r := &Resolver{Users: store.NewMemStore()}
	sess, err := r.Resolve(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, sess.User)
	assert.Empty(t, sess.Role)
}

func TestResolve_KnownUser(t *testing.T) {
	t.Parallel()

	mem := store.NewMemStore()
	require.NoError(t, mem.SetUser(context.Background(), "uid-1", models.User{
		Email: "a@b.c", Name: "Ana", Role: models.RoleAdmin,
	}))

	r := &Resolver{Users: mem}
	sess, err := r.Resolve(context.Background(), &authn.Credential{UID: "uid-1", Email: "a@b.c"})
	require.NoError(t, err)
	require.NotNil(t, sess.User)
	assert.Equal(t, models.RoleAdmin, sess.Role)
	assert.Equal(t, "uid-1", sess.User.ID)
}

func TestResolve_MissingUserDocument(t *testing.T) {
	t.Parallel()

	r := &Resolver{Users: store.NewMemStore()}
	sess, err := r.Resolve(context.Background(), &authn.Credential{UID: "uid-9", Email: "x@y.z"})

	// The credential is kept but the role stays empty; the router turns
	// that into Login plus the invalid-role notice.
	require.Error(t, err)
	require.NotNil(t, sess.User)
	assert.Equal(t, "uid-9", sess.User.ID)
	assert.Empty(t, sess.Role)

	set := nav.Route(sess)
	assert.Equal(t, []nav.Screen{nav.ScreenLogin}, set.Screens)
	assert.Equal(t, nav.InvalidRoleNotice, set.Notice)
}

func TestResolve_LookupFailure(t *testing.T) {
	t.Parallel()

	mem := store.NewMemStore()
	require.NoError(t, mem.SetUser(context.Background(), "uid-1", models.User{Role: models.RoleClient}))
	mem.FailOp = func(op, id string) error {
		if op == "get user" {
			return errors.New("transport down")
		}
		return nil
	}

	r := &Resolver{Users: mem}
	sess, err := r.Resolve(context.Background(), &authn.Credential{UID: "uid-1"})

	// A failed lookup drops both user and role: back to Login as plain
	// unauthenticated, not invalid-role.
	require.Error(t, err)
	assert.Nil(t, sess.User)
	assert.Empty(t, sess.Role)
	assert.Equal(t, nav.ScreenLogin, nav.Route(sess).Initial)
	assert.Empty(t, nav.Route(sess).Notice)
}

type rejectingVerifier struct{}

func (rejectingVerifier) Verify(ctx context.Context, idToken string) error {
	return errors.New("token expired")
}

func TestResolve_VerifierRejection(t *testing.T) {
	t.Parallel()

	mem := store.NewMemStore()
	require.NoError(t, mem.SetUser(context.Background(), "uid-1", models.User{Role: models.RoleClient}))

	r := &Resolver{Users: mem, Verifier: rejectingVerifier{}}
	sess, err := r.Resolve(context.Background(), &authn.Credential{UID: "uid-1", IDToken: "stale"})
	require.Error(t, err)
	assert.Nil(t, sess.User)
}
