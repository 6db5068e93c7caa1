// Package screens renders the storefront as interactive terminal
// prompts and dispatches user intents into the services. Everything here
// is presentation plumbing; the reachable screens come from nav.Route
// and nothing is shown that the router did not allow.
package screens

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/modasmart/storefront/internal/authn"
	"github.com/modasmart/storefront/internal/cart"
	"github.com/modasmart/storefront/internal/catalog"
	"github.com/modasmart/storefront/internal/session"
	"github.com/modasmart/storefront/internal/users"
)

type UI struct {
	In  *bufio.Scanner
	Out io.Writer

	Auth     authn.Authenticator
	Resolver *session.Resolver
	Catalog  *catalog.Service
	Cart     *cart.Engine
	Users    *users.Service
	Log      *slog.Logger
}

// prompt prints the label and reads one trimmed line. ok is false when
// input is exhausted.
func (u *UI) prompt(label string) (string, bool) {
	fmt.Fprintf(u.Out, "%s: ", label)
	if !u.In.Scan() {
		return "", false
	}
	return strings.TrimSpace(u.In.Text()), true
}

func (u *UI) printf(format string, args ...any) {
	fmt.Fprintf(u.Out, format+"\n", args...)
}

// notice reports a failure to the user. Every failed operation ends up
// here and nowhere else, one line per failure.
func (u *UI) notice(format string, args ...any) {
	fmt.Fprintf(u.Out, "! "+format+"\n", args...)
}
