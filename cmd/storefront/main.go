package main

import (
	"bufio"
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/modasmart/storefront/internal/authn"
	"github.com/modasmart/storefront/internal/cart"
	"github.com/modasmart/storefront/internal/catalog"
	"github.com/modasmart/storefront/internal/config"
	"github.com/modasmart/storefront/internal/logging"
	"github.com/modasmart/storefront/internal/screens"
	"github.com/modasmart/storefront/internal/session"
	"github.com/modasmart/storefront/internal/store"
	"github.com/modasmart/storefront/internal/users"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logging.IntoContext(ctx, logger)

	cols := store.Collections{
		Users:    configuration.USERS_COLLECTION,
		Products: configuration.PRODUCTS_COLLECTION,
		Cart:     configuration.CART_COLLECTION,
	}
	fb, err := store.NewFirebase(ctx, configuration.FIREBASE_PROJECT_ID, configuration.FIREBASE_CREDENTIALS, cols)
	if err != nil {
		log.Fatalf("firebase init error: %v", err)
	}
	defer func() {
		if err := fb.Close(); err != nil {
			logger.Error("store close error", "err", err)
		}
	}()

	auth := authn.NewFirebase(configuration.FIREBASE_WEB_API_KEY, configuration.IDENTITY_TOOLKIT_URL)

	ui := &screens.UI{
		In:  bufio.NewScanner(os.Stdin),
		Out: os.Stdout,

		Auth: auth,
		Resolver: &session.Resolver{
			Users:    fb.Store,
			Verifier: &session.FirebaseVerifier{Client: fb.Auth},
		},
		Catalog: catalog.NewService(fb.Store),
		Cart:    cart.NewEngine(fb.Store),
		Users:   users.NewService(auth, fb.Store),
		Log:     logger,
	}

	unsubscribe := auth.Subscribe(func(cred *authn.Credential) {
		if cred != nil {
			logger.Info("signed in", "uid", cred.UID)
		} else {
			logger.Info("signed out")
		}
	})
	defer unsubscribe()

	if err := ui.Run(ctx); err != nil {
		logger.Error("ui error", "err", err)
		os.Exit(1)
	}
}
