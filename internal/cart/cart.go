// Package cart keeps a per-user mapping from product to quantity in the
// remote store. The store does not enforce one line per (user, product);
// the engine does, by serializing every read-modify-write on that pair
// behind a keyed lock. Without it two concurrent adds can both read
// quantity=1 and both write quantity=2.
package cart

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/modasmart/storefront/internal/apperr"
	"github.com/modasmart/storefront/internal/models"
)

type LineStore interface {
	LinesFor(ctx context.Context, userID string) ([]models.CartLine, error)
	LineFor(ctx context.Context, userID, productID string) (*models.CartLine, error)
	InsertLine(ctx context.Context, l models.CartLine) (string, error)
	UpdateQuantity(ctx context.Context, id string, quantity int64) error
	DeleteLine(ctx context.Context, id string) error
}

type Engine struct {
	Store LineStore

	lockMu sync.Mutex
	locks  map[string]*sync.Mutex

	mu    sync.Mutex
	lines []models.CartLine
	total float64
}

func NewEngine(store LineStore) *Engine {
	return &Engine{
		Store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

func (e *Engine) lockFor(userID, productID string) *sync.Mutex {
	key := userID + "|" + productID
	e.lockMu.Lock()
	defer e.lockMu.Unlock()
	if l, ok := e.locks[key]; ok {
		return l
	}
	l := &sync.Mutex{}
	e.locks[key] = l
	return l
}

// Total sums price times quantity over the lines. Pure; order of the
// input does not matter.
func Total(lines []models.CartLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// Lines returns the snapshot from the last Refresh.
func (e *Engine) Lines() []models.CartLine {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.CartLine, len(e.lines))
	copy(out, e.lines)
	return out
}

func (e *Engine) CurrentTotal() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.total
}

// Refresh re-fetches the user's lines and recomputes the total. Every
// mutation ends here; there are no partial snapshot updates.
func (e *Engine) Refresh(ctx context.Context, userID string) error {
	lines, err := e.Store.LinesFor(ctx, userID)
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.lines = lines
	e.total = Total(lines)
	e.mu.Unlock()
	return nil
}

// AddOrIncrement bumps the quantity of the user's line for the product,
// creating the line with quantity 1 on first add. Name and price are
// copied from the product at that moment and never updated afterwards.
func (e *Engine) AddOrIncrement(ctx context.Context, userID string, p models.Product) error {
	lock := e.lockFor(userID, p.ID)
	lock.Lock()
	defer lock.Unlock()

	line, err := e.Store.LineFor(ctx, userID, p.ID)
	switch {
	case err == nil:
		if err := e.Store.UpdateQuantity(ctx, line.ID, line.Quantity+1); err != nil {
			return err
		}
	case apperr.IsNotFound(err):
		newLine := models.CartLine{
			UserID:    userID,
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  1,
		}
		if _, err := e.Store.InsertLine(ctx, newLine); err != nil {
			return err
		}
	default:
		return err
	}

	return e.Refresh(ctx, userID)
}

// DecrementOrRemove lowers the quantity by one, deleting the line when
// it would reach zero. Decrementing a product that is not in the cart is
// a precondition failure, not a silent no-op.
func (e *Engine) DecrementOrRemove(ctx context.Context, userID, productID string) error {
	lock := e.lockFor(userID, productID)
	lock.Lock()
	defer lock.Unlock()

	line, err := e.Store.LineFor(ctx, userID, productID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return fmt.Errorf("product %s is not in the cart: %w", productID, apperr.ErrPrecondition)
		}
		return err
	}

	if line.Quantity <= 1 {
		if err := e.Store.DeleteLine(ctx, line.ID); err != nil {
			return err
		}
	} else {
		if err := e.Store.UpdateQuantity(ctx, line.ID, line.Quantity-1); err != nil {
			return err
		}
	}

	return e.Refresh(ctx, userID)
}

// Clear deletes all of the user's lines in parallel and waits for every
// delete to settle. It is best effort: a failed delete is reported but
// the rest still run, nothing is rolled back, and the recovery path is
// simply running Clear again. The local snapshot is emptied either way.
func (e *Engine) Clear(ctx context.Context, userID string) error {
	lines, err := e.Store.LinesFor(ctx, userID)
	if err != nil {
		return err
	}

	g := new(errgroup.Group)
	for _, line := range lines {
		g.Go(func() error {
			return e.Store.DeleteLine(ctx, line.ID)
		})
	}
	err = g.Wait()

	e.mu.Lock()
	e.lines = nil
	e.total = 0
	e.mu.Unlock()

	return err
}
