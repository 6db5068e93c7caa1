package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/modasmart/storefront/internal/apperr"
	"github.com/modasmart/storefront/internal/models"
)

// wrapErr maps a Firestore error onto the shared taxonomy. NotFound is
// kept distinct so callers can branch on it.
func wrapErr(op string, err error) error {
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
	}
	return fmt.Errorf("%s: %v: %w", op, err, apperr.ErrStore)
}

// ---- users ----

func (c *Client) GetUser(ctx context.Context, uid string) (*models.User, error) {
	snap, err := c.fs.Collection(c.cols.Users).Doc(uid).Get(ctx)
	if err != nil {
		return nil, wrapErr("get user", err)
	}
	var u models.User
	if err := snap.DataTo(&u); err != nil {
		return nil, wrapErr("decode user", err)
	}
	u.ID = snap.Ref.ID
	return &u, nil
}

func (c *Client) SetUser(ctx context.Context, uid string, u models.User) error {
	if _, err := c.fs.Collection(c.cols.Users).Doc(uid).Set(ctx, u); err != nil {
		return wrapErr("set user", err)
	}
	return nil
}

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	it := c.fs.Collection(c.cols.Users).Documents(ctx)
	defer it.Stop()

	var users []models.User
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapErr("list users", err)
		}
		var u models.User
		if err := snap.DataTo(&u); err != nil {
			return nil, wrapErr("decode user", err)
		}
		u.ID = snap.Ref.ID
		users = append(users, u)
	}
	return users, nil
}

func (c *Client) InsertUser(ctx context.Context, u models.User) (string, error) {
	ref, _, err := c.fs.Collection(c.cols.Users).Add(ctx, u)
	if err != nil {
		return "", wrapErr("insert user", err)
	}
	return ref.ID, nil
}

// DeleteUser removes a user document. Deleting an absent document is not
// an error.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if _, err := c.fs.Collection(c.cols.Users).Doc(id).Delete(ctx); err != nil {
		return wrapErr("delete user", err)
	}
	return nil
}

// ---- products ----

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	it := c.fs.Collection(c.cols.Products).Documents(ctx)
	defer it.Stop()

	var products []models.Product
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapErr("list products", err)
		}
		var p models.Product
		if err := snap.DataTo(&p); err != nil {
			return nil, wrapErr("decode product", err)
		}
		p.ID = snap.Ref.ID
		products = append(products, p)
	}
	return products, nil
}

func (c *Client) InsertProduct(ctx context.Context, p models.Product) (string, error) {
	ref, _, err := c.fs.Collection(c.cols.Products).Add(ctx, p)
	if err != nil {
		return "", wrapErr("insert product", err)
	}
	return ref.ID, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, p models.Product) error {
	_, err := c.fs.Collection(c.cols.Products).Doc(id).Update(ctx, []firestore.Update{
		{Path: "name", Value: p.Name},
		{Path: "price", Value: p.Price},
	})
	if err != nil {
		return wrapErr("update product", err)
	}
	return nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	if _, err := c.fs.Collection(c.cols.Products).Doc(id).Delete(ctx); err != nil {
		return wrapErr("delete product", err)
	}
	return nil
}

// ---- cart ----

func (c *Client) LinesFor(ctx context.Context, userID string) ([]models.CartLine, error) {
	it := c.fs.Collection(c.cols.Cart).Where("userId", "==", userID).Documents(ctx)
	defer it.Stop()

	var lines []models.CartLine
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapErr("list cart lines", err)
		}
		var l models.CartLine
		if err := snap.DataTo(&l); err != nil {
			return nil, wrapErr("decode cart line", err)
		}
		l.ID = snap.Ref.ID
		lines = append(lines, l)
	}
	return lines, nil
}

// LineFor fetches the single line for (userID, productID). The engine
// keeps the pair unique; if the store ever holds duplicates the first
// one wins.
func (c *Client) LineFor(ctx context.Context, userID, productID string) (*models.CartLine, error) {
	it := c.fs.Collection(c.cols.Cart).
		Where("userId", "==", userID).
		Where("productId", "==", productID).
		Limit(1).
		Documents(ctx)
	defer it.Stop()

	snap, err := it.Next()
	if err == iterator.Done {
		return nil, fmt.Errorf("cart line for product %s: %w", productID, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, wrapErr("get cart line", err)
	}
	var l models.CartLine
	if err := snap.DataTo(&l); err != nil {
		return nil, wrapErr("decode cart line", err)
	}
	l.ID = snap.Ref.ID
	return &l, nil
}

func (c *Client) InsertLine(ctx context.Context, l models.CartLine) (string, error) {
	ref, _, err := c.fs.Collection(c.cols.Cart).Add(ctx, l)
	if err != nil {
		return "", wrapErr("insert cart line", err)
	}
	return ref.ID, nil
}

func (c *Client) UpdateQuantity(ctx context.Context, id string, quantity int64) error {
	_, err := c.fs.Collection(c.cols.Cart).Doc(id).Update(ctx, []firestore.Update{
		{Path: "quantity", Value: quantity},
	})
	if err != nil {
		return wrapErr("update cart line", err)
	}
	return nil
}

func (c *Client) DeleteLine(ctx context.Context, id string) error {
	if _, err := c.fs.Collection(c.cols.Cart).Doc(id).Delete(ctx); err != nil {
		return wrapErr("delete cart line", err)
	}
	return nil
}
