package screens

import (
	"context"
	"strconv"

	"github.com/modasmart/storefront/internal/users"
)

// userAdminScreen lists the users collection and lets an admin add or
// delete directory entries.
func (u *UI) userAdminScreen(ctx context.Context) bool {
	for {
		list, err := u.Users.List(ctx)
		if err != nil {
			u.notice("Could not load the users: %v", err)
		}

		u.printf("")
		u.printf("=== User management ===")
		if len(list) == 0 {
			u.printf("(no users)")
		}
		for i, usr := range list {
			u.printf("[%d] %s  %s  %s  (%s)", i+1, usr.Name, usr.Email, usr.Phone, usr.Role)
		}
		u.printf("[a] Add  [d] Delete  [b] Back")

		choice, ok := u.prompt("choice")
		if !ok {
			return true
		}

		switch choice {
		case "a":
			name, ok := u.prompt("name")
			if !ok {
				return true
			}
			email, ok := u.prompt("email")
			if !ok {
				return true
			}
			phone, ok := u.prompt("phone")
			if !ok {
				return true
			}
			if _, err := u.Users.Add(ctx, users.DirectoryInput{Name: name, Email: email, Phone: phone}); err != nil {
				u.notice("Could not add the user: %v", err)
			}
		case "d":
			raw, ok := u.prompt("user #")
			if !ok {
				return true
			}
			i, err := strconv.Atoi(raw)
			if err != nil || i < 1 || i > len(list) {
				u.notice("No such user.")
				continue
			}
			if err := u.Users.Delete(ctx, list[i-1].ID); err != nil {
				u.notice("Could not delete the user: %v", err)
			}
		case "b":
			return false
		}
	}
}
