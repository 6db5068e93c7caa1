// Package nav decides which screens a session may reach. Route is a pure
// function; the interactive loop in internal/screens interprets its output.
package nav

import "github.com/modasmart/storefront/internal/models"

type Screen string

const (
	ScreenLoading Screen = "loading"
	ScreenLogin   Screen = "login"
	ScreenHome    Screen = "home"
	ScreenAdmin   Screen = "admin"
	ScreenClient  Screen = "client"
)

// InvalidRoleNotice is attached when a signed-in user has no usable role.
const InvalidRoleNotice = "Invalid role. Contact the administrator."

// ScreenSet is the set of screens reachable in the current session state,
// with the screen the app should land on first.
type ScreenSet struct {
	Screens []Screen
	Initial Screen
	Notice  string
}

func (s ScreenSet) Contains(screen Screen) bool {
	for _, sc := range s.Screens {
		if sc == screen {
			return true
		}
	}
	return false
}

// Route gates navigation on the session. Admins and clients share Home
// and keep Login reachable so logout can land there without re-routing.
func Route(s models.Session) ScreenSet {
	if s.Loading {
		return ScreenSet{Screens: []Screen{ScreenLoading}, Initial: ScreenLoading}
	}
	if s.User == nil {
		return ScreenSet{Screens: []Screen{ScreenLogin}, Initial: ScreenLogin}
	}
	switch s.Role {
	case models.RoleAdmin:
		return ScreenSet{Screens: []Screen{ScreenHome, ScreenAdmin, ScreenLogin}, Initial: ScreenHome}
	case models.RoleClient:
		return ScreenSet{Screens: []Screen{ScreenHome, ScreenClient, ScreenLogin}, Initial: ScreenHome}
	default:
		return ScreenSet{
			Screens: []Screen{ScreenLogin},
			Initial: ScreenLogin,
			Notice:  InvalidRoleNotice,
		}
	}
}
