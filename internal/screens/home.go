package screens

import (
	"context"

	"github.com/modasmart/storefront/internal/models"
	"github.com/modasmart/storefront/internal/nav"
)

// homeScreen shows the role-appropriate menu. The entries offered are
// exactly the screens the router made reachable.
func (u *UI) homeScreen(ctx context.Context, sess models.Session, set nav.ScreenSet) bool {
	for {
		u.printf("")
		u.printf("=== Home (%s) ===", sess.User.Email)
		if set.Contains(nav.ScreenAdmin) {
			u.printf("[1] Manage products")
			u.printf("[2] Manage users")
		}
		if set.Contains(nav.ScreenClient) {
			u.printf("[1] Browse products")
		}
		u.printf("[l] Log out  [q] Quit")

		choice, ok := u.prompt("choice")
		if !ok {
			return true
		}

		switch {
		case choice == "1" && set.Contains(nav.ScreenAdmin):
			if u.adminScreen(ctx) {
				return true
			}
		case choice == "2" && set.Contains(nav.ScreenAdmin):
			if u.userAdminScreen(ctx) {
				return true
			}
		case choice == "1" && set.Contains(nav.ScreenClient):
			if u.clientScreen(ctx, sess.User.ID) {
				return true
			}
		case choice == "l":
			u.Auth.SignOut()
			return false
		case choice == "q":
			return true
		}
	}
}
