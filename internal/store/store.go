// Package store holds the document-store adapters. The remote backend is
// Cloud Firestore; MemStore is the in-process stand-in used by tests.
// Consumers depend on narrow interfaces declared in their own packages,
// both adapters satisfy all of them.
package store

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Collections names the three collections the storefront touches.
type Collections struct {
	Users    string
	Products string
	Cart     string
}

func DefaultCollections() Collections {
	return Collections{Users: "users", Products: "products", Cart: "cart"}
}

// Client is the Firestore-backed store. One instance is shared by the
// catalog, cart, session and user services.
type Client struct {
	fs   *firestore.Client
	cols Collections
}

// Firebase bundles the app-level handles built once at startup.
type Firebase struct {
	App   *firebase.App
	Auth  *firebaseauth.Client
	Store *Client
}

// NewFirebase initializes the Firebase app and derives the Firestore and
// auth clients from it. credentialsFile may be empty, in which case
// Application Default Credentials are used.
func NewFirebase(ctx context.Context, projectID, credentialsFile string, cols Collections) (*Firebase, error) {
	if projectID == "" {
		return nil, errors.New("store: project id is empty")
	}

	conf := &firebase.Config{ProjectID: projectID}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("store: init firebase app: %w", err)
	}

	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("store: init firestore client: %w", err)
	}

	auth, err := app.Auth(ctx)
	if err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("store: init auth client: %w", err)
	}

	return &Firebase{
		App:   app,
		Auth:  auth,
		Store: &Client{fs: fs, cols: cols},
	}, nil
}

func (f *Firebase) Close() error {
	if f == nil || f.Store == nil || f.Store.fs == nil {
		return nil
	}
	return f.Store.fs.Close()
}
