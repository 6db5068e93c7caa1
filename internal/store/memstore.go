package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/modasmart/storefront/internal/apperr"
	"github.com/modasmart/storefront/internal/models"
)

// MemStore is an in-memory document store with the same surface as
// Client. It plays the role the in-memory sqlite database plays in a
// server-side test suite: fast, hermetic, and shaped like the real thing.
type MemStore struct {
	mu       sync.Mutex
	users    map[string]models.User
	products map[string]models.Product
	lines    map[string]models.CartLine

	// FailOp, when set, is consulted before every operation. Returning a
	// non-nil error makes the operation fail with it. Tests use this to
	// inject store failures.
	FailOp func(op, id string) error

	// BeforeDeleteLine, when set, runs at the start of DeleteLine. Tests
	// use it to skew per-delete latency.
	BeforeDeleteLine func(line models.CartLine)
}

func NewMemStore() *MemStore {
	return &MemStore{
		users:    make(map[string]models.User),
		products: make(map[string]models.Product),
		lines:    make(map[string]models.CartLine),
	}
}

func (m *MemStore) fail(op, id string) error {
	if m.FailOp != nil {
		if err := m.FailOp(op, id); err != nil {
			return fmt.Errorf("%s: %v: %w", op, err, apperr.ErrStore)
		}
	}
	return nil
}

// ---- users ----

func (m *MemStore) GetUser(ctx context.Context, uid string) (*models.User, error) {
	if err := m.fail("get user", uid); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[uid]
	if !ok {
		return nil, fmt.Errorf("get user %s: %w", uid, apperr.ErrNotFound)
	}
	u.ID = uid
	return &u, nil
}

func (m *MemStore) SetUser(ctx context.Context, uid string, u models.User) error {
	if err := m.fail("set user", uid); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	u.ID = uid
	m.users[uid] = u
	return nil
}

func (m *MemStore) ListUsers(ctx context.Context) ([]models.User, error) {
	if err := m.fail("list users", ""); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	users := make([]models.User, 0, len(m.users))
	for id, u := range m.users {
		u.ID = id
		users = append(users, u)
	}
	return users, nil
}

func (m *MemStore) InsertUser(ctx context.Context, u models.User) (string, error) {
	if err := m.fail("insert user", ""); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.NewString()
	u.ID = id
	m.users[id] = u
	return id, nil
}

func (m *MemStore) DeleteUser(ctx context.Context, id string) error {
	if err := m.fail("delete user", id); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
	return nil
}

// ---- products ----

func (m *MemStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	if err := m.fail("list products", ""); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	products := make([]models.Product, 0, len(m.products))
	for id, p := range m.products {
		p.ID = id
		products = append(products, p)
	}
	return products, nil
}

func (m *MemStore) InsertProduct(ctx context.Context, p models.Product) (string, error) {
	if err := m.fail("insert product", ""); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.NewString()
	p.ID = id
	m.products[id] = p
	return id, nil
}

func (m *MemStore) UpdateProduct(ctx context.Context, id string, p models.Product) error {
	if err := m.fail("update product", id); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.products[id]
	if !ok {
		return fmt.Errorf("update product %s: %w", id, apperr.ErrNotFound)
	}
	cur.Name = p.Name
	cur.Price = p.Price
	m.products[id] = cur
	return nil
}

// DeleteProduct is idempotent: deleting an absent id succeeds, matching
// Firestore.
func (m *MemStore) DeleteProduct(ctx context.Context, id string) error {
	if err := m.fail("delete product", id); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.products, id)
	return nil
}

// ---- cart ----

func (m *MemStore) LinesFor(ctx context.Context, userID string) ([]models.CartLine, error) {
	if err := m.fail("list cart lines", userID); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var lines []models.CartLine
	for id, l := range m.lines {
		if l.UserID == userID {
			l.ID = id
			lines = append(lines, l)
		}
	}
	return lines, nil
}

func (m *MemStore) LineFor(ctx context.Context, userID, productID string) (*models.CartLine, error) {
	if err := m.fail("get cart line", productID); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, l := range m.lines {
		if l.UserID == userID && l.ProductID == productID {
			l.ID = id
			return &l, nil
		}
	}
	return nil, fmt.Errorf("cart line for product %s: %w", productID, apperr.ErrNotFound)
}

func (m *MemStore) InsertLine(ctx context.Context, l models.CartLine) (string, error) {
	if err := m.fail("insert cart line", l.ProductID); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.NewString()
	l.ID = id
	m.lines[id] = l
	return id, nil
}

func (m *MemStore) UpdateQuantity(ctx context.Context, id string, quantity int64) error {
	if err := m.fail("update cart line", id); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.lines[id]
	if !ok {
		return fmt.Errorf("update cart line %s: %w", id, apperr.ErrNotFound)
	}
	l.Quantity = quantity
	m.lines[id] = l
	return nil
}

func (m *MemStore) DeleteLine(ctx context.Context, id string) error {
	if m.BeforeDeleteLine != nil {
		m.mu.Lock()
		l, ok := m.lines[id]
		m.mu.Unlock()
		if ok {
			m.BeforeDeleteLine(l)
		}
	}
	if err := m.fail("delete cart line", id); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.lines, id)
	return nil
}
