package screens

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modasmart/storefront/internal/authn"
	"github.com/modasmart/storefront/internal/cart"
	"github.com/modasmart/storefront/internal/catalog"
	"github.com/modasmart/storefront/internal/logging"
	"github.com/modasmart/storefront/internal/models"
	"github.com/modasmart/storefront/internal/session"
	"github.com/modasmart/storefront/internal/store"
	"github.com/modasmart/storefront/internal/users"
)

func newTestUI(t *testing.T, script []string) (*UI, *authn.Fake, *store.MemStore, *bytes.Buffer) {
	t.Helper()
	auth := authn.NewFake()
	mem := store.NewMemStore()
	out := &bytes.Buffer{}
	ui := &UI{
		In:       bufio.NewScanner(strings.NewReader(strings.Join(script, "\n") + "\n")),
		Out:      out,
		Auth:     auth,
		Resolver: &session.Resolver{Users: mem},
		Catalog:  catalog.NewService(mem),
		Cart:     cart.NewEngine(mem),
		Users:    users.NewService(auth, mem),
		Log:      logging.New("error"),
	}
	return ui, auth, mem, out
}

func TestRun_ClientShoppingFlow(t *testing.T) {
	t.Parallel()

	script := []string{
		"1", "ana@example.com", "secret1", // sign in
		"1",      // browse products
		"a", "1", // add the first product
		"a", "1", // and again
		"-", "1", // one less
		"b", // back to home
		"l", // log out
		"q", // quit from login
	}
	ui, auth, mem, out := newTestUI(t, script)

	uid := auth.Seed("ana@example.com", "secret1")
	require.NoError(t, mem.SetUser(context.Background(), uid, models.User{
		Email: "ana@example.com", Name: "Ana", Role: models.RoleClient,
	}))
	_, err := mem.InsertProduct(context.Background(), models.Product{Name: "Shirt", Price: 19.99})
	require.NoError(t, err)

	require.NoError(t, ui.Run(context.Background()))

	lines, err := mem.LinesFor(context.Background(), uid)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, int64(1), lines[0].Quantity)

	assert.Contains(t, out.String(), "Shirt")
	assert.Contains(t, out.String(), "Total: $19.99")
	assert.Nil(t, auth.Current())
}

func TestRun_AdminManagesCatalog(t *testing.T) {
	t.Parallel()

	script := []string{
		"1", "boss@example.com", "secret1", // sign in
		"1",                    // manage products
		"a", "Jacket", "59.90", // add
		"e", "1", "Jacket", "49.90", // edit
		"b", // back
		"q", // quit
	}
	ui, auth, mem, out := newTestUI(t, script)

	uid := auth.Seed("boss@example.com", "secret1")
	require.NoError(t, mem.SetUser(context.Background(), uid, models.User{
		Email: "boss@example.com", Role: models.RoleAdmin,
	}))

	require.NoError(t, ui.Run(context.Background()))

	products, err := mem.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Jacket", products[0].Name)
	assert.Equal(t, 49.90, products[0].Price)
	assert.Contains(t, out.String(), "Product management")
}

func TestRun_InvalidRoleLandsOnLogin(t *testing.T) {
	t.Parallel()

	script := []string{
		"1", "who@example.com", "secret1", // sign in; no user document exists
		"q", // quit from login
	}
	ui, auth, _, out := newTestUI(t, script)
	auth.Seed("who@example.com", "secret1")

	require.NoError(t, ui.Run(context.Background()))

	assert.Contains(t, out.String(), "Invalid role. Contact the administrator.")
	assert.Nil(t, auth.Current())
}

func TestRun_BadCredentialsShowNotice(t *testing.T) {
	t.Parallel()

	script := []string{
		"1", "ana@example.com", "wrong",
		"q",
	}
	ui, auth, _, out := newTestUI(t, script)
	auth.Seed("ana@example.com", "secret1")

	require.NoError(t, ui.Run(context.Background()))
	assert.Contains(t, out.String(), "Sign in failed")
}
