package authn

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultEndpoint = "https://identitytoolkit.googleapis.com/v1"

// Firebase signs users in and up against the Identity Toolkit REST
// surface. The admin SDK deliberately has no email/password sign-in, so
// this is the same call the mobile client SDKs make.
type Firebase struct {
	notifier

	APIKey   string
	Endpoint string
	HTTP     *http.Client
}

func NewFirebase(apiKey, endpoint string) *Firebase {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &Firebase{
		APIKey:   apiKey,
		Endpoint: endpoint,
		HTTP:     &http.Client{Timeout: 15 * time.Second},
	}
}

type toolkitRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type toolkitResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (f *Firebase) SignIn(ctx context.Context, email, password string) (*Credential, error) {
	cred, err := f.call(ctx, "accounts:signInWithPassword", email, password)
	if err != nil {
		return nil, fmt.Errorf("authn: sign in: %w", err)
	}
	f.setCurrent(cred)
	return cred, nil
}

func (f *Firebase) SignUp(ctx context.Context, email, password string) (*Credential, error) {
	cred, err := f.call(ctx, "accounts:signUp", email, password)
	if err != nil {
		return nil, fmt.Errorf("authn: sign up: %w", err)
	}
	f.setCurrent(cred)
	return cred, nil
}

func (f *Firebase) SignOut() {
	f.setCurrent(nil)
}

func (f *Firebase) call(ctx context.Context, method, email, password string) (*Credential, error) {
	body, err := json.Marshal(toolkitRequest{Email: email, Password: password, ReturnSecureToken: true})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s?key=%s", f.Endpoint, method, f.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out toolkitResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %v", err)
	}
	if out.Error != nil {
		return nil, fmt.Errorf("provider rejected request: %s", out.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	cred := &Credential{
		UID:          out.LocalID,
		Email:        out.Email,
		IDToken:      out.IDToken,
		RefreshToken: out.RefreshToken,
	}

	// The ID token is the source of truth for uid and expiry; the flat
	// fields are a convenience copy.
	if claims, err := ParseIDToken(out.IDToken); err == nil {
		if claims.UID != "" {
			cred.UID = claims.UID
		}
		cred.ExpiresAt = claims.ExpiresAt
	}
	return cred, nil
}
