package screens

import (
	"context"
	"strconv"

	"github.com/modasmart/storefront/internal/catalog"
	"github.com/modasmart/storefront/internal/models"
)

// adminScreen is the product-management screen: list, add, edit, delete.
// The list on screen is always the snapshot from the last full re-list.
func (u *UI) adminScreen(ctx context.Context) bool {
	if err := u.Catalog.Refresh(ctx); err != nil {
		u.notice("Could not load the products: %v", err)
	}

	for {
		products := u.Catalog.Products()

		u.printf("")
		u.printf("=== Product management ===")
		if len(products) == 0 {
			u.printf("(no products)")
		}
		for i, p := range products {
			u.printf("[%d] %s  $%.2f", i+1, p.Name, p.Price)
		}
		u.printf("[a] Add  [e] Edit  [d] Delete  [b] Back")

		choice, ok := u.prompt("choice")
		if !ok {
			return true
		}

		switch choice {
		case "a":
			name, ok := u.prompt("product name")
			if !ok {
				return true
			}
			price, ok := u.prompt("price")
			if !ok {
				return true
			}
			if _, err := u.Catalog.Create(ctx, catalog.ProductInput{Name: name, Price: price}); err != nil {
				u.notice("Could not add the product: %v", err)
			} else {
				u.printf("Product added.")
			}
		case "e":
			p, quit, ok := u.pickProduct(products)
			if quit {
				return true
			}
			if !ok {
				continue
			}
			name, okIn := u.prompt("new name")
			if !okIn {
				return true
			}
			price, okIn := u.prompt("new price")
			if !okIn {
				return true
			}
			if err := u.Catalog.Update(ctx, p.ID, catalog.ProductInput{Name: name, Price: price}); err != nil {
				u.notice("Could not update the product: %v", err)
			} else {
				u.printf("Product updated.")
			}
		case "d":
			p, quit, ok := u.pickProduct(products)
			if quit {
				return true
			}
			if !ok {
				continue
			}
			if err := u.Catalog.Delete(ctx, p.ID); err != nil {
				u.notice("Could not delete the product: %v", err)
			} else {
				u.printf("Product deleted.")
			}
		case "b":
			return false
		}
	}
}

// pickProduct resolves a list index typed by the user. quit reports EOF,
// ok reports a valid selection.
func (u *UI) pickProduct(products []models.Product) (models.Product, bool, bool) {
	raw, okIn := u.prompt("product #")
	if !okIn {
		return models.Product{}, true, false
	}
	i, err := strconv.Atoi(raw)
	if err != nil || i < 1 || i > len(products) {
		u.notice("No such product.")
		return models.Product{}, false, false
	}
	return products[i-1], false, true
}
