package screens

import "context"

// loginScreen handles sign-in and hands off to registration. Returns
// true when the user quits the program.
func (u *UI) loginScreen(ctx context.Context) bool {
	u.printf("")
	u.printf("=== ModaSmart ===")
	u.printf("[1] Sign in  [2] Register  [q] Quit")

	choice, ok := u.prompt("choice")
	if !ok {
		return true
	}

	switch choice {
	case "1":
		email, ok := u.prompt("email")
		if !ok {
			return true
		}
		password, ok := u.prompt("password")
		if !ok {
			return true
		}
		if _, err := u.Auth.SignIn(ctx, email, password); err != nil {
			u.notice("Sign in failed: %v", err)
		}
		return false
	case "2":
		return u.registerScreen(ctx)
	case "q":
		return true
	default:
		return false
	}
}
