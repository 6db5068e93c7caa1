package screens

import (
	"context"
)

// clientScreen is the shopping screen: the product list on top, the
// user's cart with the running total below. Cart actions address lines
// by product.
func (u *UI) clientScreen(ctx context.Context, userID string) bool {
	if err := u.Catalog.Refresh(ctx); err != nil {
		u.notice("Could not load the products: %v", err)
	}
	if err := u.Cart.Refresh(ctx, userID); err != nil {
		u.notice("Could not load the cart: %v", err)
	}

	for {
		products := u.Catalog.Products()
		lines := u.Cart.Lines()

		u.printf("")
		u.printf("=== Products ===")
		if len(products) == 0 {
			u.printf("(no products)")
		}
		for i, p := range products {
			u.printf("[%d] %s  $%.2f", i+1, p.Name, p.Price)
		}

		u.printf("=== Cart ===")
		if len(lines) == 0 {
			u.printf("(empty)")
		}
		for _, l := range lines {
			u.printf("    %s x%d  $%.2f", l.Name, l.Quantity, l.Price*float64(l.Quantity))
		}
		u.printf("Total: $%.2f", u.Cart.CurrentTotal())
		u.printf("[a] Add to cart  [+] One more  [-] One less  [c] Clear cart  [b] Back")

		choice, ok := u.prompt("choice")
		if !ok {
			return true
		}

		switch choice {
		case "a", "+":
			p, quit, okSel := u.pickProduct(products)
			if quit {
				return true
			}
			if !okSel {
				continue
			}
			if err := u.Cart.AddOrIncrement(ctx, userID, p); err != nil {
				u.notice("Could not add to the cart: %v", err)
			}
		case "-":
			p, quit, okSel := u.pickProduct(products)
			if quit {
				return true
			}
			if !okSel {
				continue
			}
			if err := u.Cart.DecrementOrRemove(ctx, userID, p.ID); err != nil {
				u.notice("Could not remove from the cart: %v", err)
			}
		case "c":
			if err := u.Cart.Clear(ctx, userID); err != nil {
				u.notice("Could not clear the cart: %v", err)
			}
		case "b":
			return false
		}
	}
}
