package authn

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirebase_SignIn(t *testing.T) {
	t.Parallel()

	exp := time.Now().Add(time.Hour)
	idToken := mintToken(t, jwt.MapClaims{"sub": "uid-1", "exp": exp.Unix()})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "accounts:signInWithPassword")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req toolkitRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ana@example.com", req.Email)
		assert.True(t, req.ReturnSecureToken)

		json.NewEncoder(w).Encode(toolkitResponse{
			LocalID:      "uid-1",
			Email:        req.Email,
			IDToken:      idToken,
			RefreshToken: "refresh-1",
			ExpiresIn:    "3600",
		})
	}))
	defer srv.Close()

	f := NewFirebase("test-key", srv.URL)

	var observed []*Credential
	unsubscribe := f.Subscribe(func(c *Credential) { observed = append(observed, c) })
	defer unsubscribe()

	cred, err := f.SignIn(context.Background(), "ana@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", cred.UID)
	assert.Equal(t, "refresh-1", cred.RefreshToken)
	assert.WithinDuration(t, exp, cred.ExpiresAt, time.Second)

	require.NotNil(t, f.Current())
	require.Len(t, observed, 1)

	f.SignOut()
	assert.Nil(t, f.Current())
	require.Len(t, observed, 2)
	assert.Nil(t, observed[1])
}

func TestFirebase_SignInRejected(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"INVALID_LOGIN_CREDENTIALS"}}`))
	}))
	defer srv.Close()

	f := NewFirebase("test-key", srv.URL)
	_, err := f.SignIn(context.Background(), "ana@example.com", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_LOGIN_CREDENTIALS")
	assert.Nil(t, f.Current())
}

func TestFirebase_SignUp(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "accounts:signUp")
		json.NewEncoder(w).Encode(toolkitResponse{LocalID: "uid-2", Email: "new@example.com"})
	}))
	defer srv.Close()

	f := NewFirebase("test-key", srv.URL)
	cred, err := f.SignUp(context.Background(), "new@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "uid-2", cred.UID)
	assert.Equal(t, cred, f.Current())
}
