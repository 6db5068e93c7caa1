package screens

import (
	"context"

	"github.com/modasmart/storefront/internal/nav"
)

// Run is the navigation loop. Every pass rebuilds the session from the
// provider's current credential, routes it, and enters the landing
// screen. Screens return when the session must be re-resolved (sign-in,
// logout) or when the user quits.
func (u *UI) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		sess, err := u.Resolver.Resolve(ctx, u.Auth.Current())
		set := nav.Route(sess)

		if set.Notice != "" {
			u.notice("%s", set.Notice)
			// A credential with no usable role cannot go anywhere;
			// drop it so the next pass lands on a clean login.
			u.Auth.SignOut()
		} else if err != nil {
			u.notice("Could not load your profile: %v", err)
		}

		var quit bool
		switch set.Initial {
		case nav.ScreenLogin:
			quit = u.loginScreen(ctx)
		case nav.ScreenHome:
			quit = u.homeScreen(ctx, sess, set)
		default:
			u.printf("Loading...")
			continue
		}
		if quit {
			return nil
		}
	}
}
