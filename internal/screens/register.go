package screens

import (
	"context"

	"github.com/modasmart/storefront/internal/users"
)

// registerScreen collects the registration form and creates the account
// plus its role document. A successful registration leaves the new user
// signed in, so the navigation loop routes them straight to Home.
func (u *UI) registerScreen(ctx context.Context) bool {
	u.printf("")
	u.printf("=== Register ===")

	email, ok := u.prompt("email")
	if !ok {
		return true
	}
	password, ok := u.prompt("password")
	if !ok {
		return true
	}
	name, ok := u.prompt("name")
	if !ok {
		return true
	}
	phone, ok := u.prompt("phone")
	if !ok {
		return true
	}
	role, ok := u.prompt("role (admin/client)")
	if !ok {
		return true
	}
	if role == "" {
		role = "client"
	}

	_, err := u.Users.Register(ctx, users.RegisterInput{
		Email:    email,
		Password: password,
		Name:     name,
		Phone:    phone,
		Role:     role,
	})
	if err != nil {
		u.notice("Registration failed: %v", err)
		return false
	}
	u.printf("User registered.")
	return false
}
