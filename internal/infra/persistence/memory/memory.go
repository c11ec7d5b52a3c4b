// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Store holds users, carts and products behind one mutex. Every repository method is a single critical section,
// which makes cart increments and decrements atomic.
type Store struct {
	mu       sync.Mutex
	users    map[uuid.UUID]*entity.User
	emails   map[string]uuid.UUID
	carts    map[uuid.UUID]entity.Cart
	products map[int]*entity.Product
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		users:    make(map[uuid.UUID]*entity.User),
		emails:   make(map[string]uuid.UUID),
		carts:    make(map[uuid.UUID]entity.Cart),
		products: make(map[int]*entity.Product),
	}
}

// Users returns the UserRepository view of the store.
func (s *Store) Users() repository.UserRepository { return &UserRepo{s: s} }

// Carts returns the CartRepository view of the store.
func (s *Store) Carts() repository.CartRepository { return &CartRepo{s: s} }

// Products returns the ProductRepository view of the store.
func (s *Store) Products() repository.ProductRepository { return &ProductRepo{s: s} }

// Ensure interfaces are met.
var _ repository.UserRepository = (*UserRepo)(nil)
var _ repository.CartRepository = (*CartRepo)(nil)
var _ repository.ProductRepository = (*ProductRepo)(nil)

// --- UserRepository ---

// UserRepo implements repository.UserRepository.
type UserRepo struct{ s *Store }

// FindByID returns a copy of the stored user.
func (r *UserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u

	return &cp, nil
}

// FindByEmail returns a copy of the user owning email.
func (r *UserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id, ok := r.s.emails[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *r.s.users[id]

	return &cp, nil
}

// Create stores the user and an empty cart.
func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.emails[user.Email]; taken {
		return errors.Wrap(repository.ErrUserEmailTaken, user.Email)
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	cp := *user
	cp.Cart = nil
	r.s.users[user.ID] = &cp
	r.s.emails[user.Email] = user.ID
	r.s.carts[user.ID] = entity.Cart{}

	return nil
}

// --- CartRepository ---

// CartRepo implements repository.CartRepository.
type CartRepo struct{ s *Store }

// Get returns a copy of the user's cart.
func (r *CartRepo) Get(_ context.Context, userID uuid.UUID) (entity.Cart, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cart, ok := r.s.carts[userID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cart.Clone(), nil
}

// Increment adds one to the item under the store lock.
func (r *CartRepo) Increment(_ context.Context, userID uuid.UUID, itemID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cart, ok := r.s.carts[userID]
	if !ok {
		return errors.Wrap(repository.ErrUserNotFound, "cart owner")
	}
	cart.Add(itemID)

	return nil
}

// Decrement subtracts one from the item under the store lock, never below zero.
func (r *CartRepo) Decrement(_ context.Context, userID uuid.UUID, itemID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cart, ok := r.s.carts[userID]
	if !ok {
		return errors.Wrap(repository.ErrUserNotFound, "cart owner")
	}
	cart.Remove(itemID)

	return nil
}

// --- ProductRepository ---

// ProductRepo implements repository.ProductRepository.
type ProductRepo struct{ s *Store }

// MaxCatalogID scans the catalog for its highest id.
func (r *ProductRepo) MaxCatalogID(_ context.Context) (int, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	maxID, found := 0, false
	for id := range r.s.products {
		if !found || id > maxID {
			maxID, found = id, true
		}
	}

	return maxID, found, nil
}

// Create stores a copy of the product, rejecting a taken catalog id.
func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.products[product.CatalogID]; taken {
		return errors.Wrapf(repository.ErrProductIDTaken, "catalog id %d", product.CatalogID)
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now().UTC()
	}
	cp := *product
	r.s.products[product.CatalogID] = &cp

	return nil
}

// FindByCatalogID returns a copy of one product.
func (r *ProductRepo) FindByCatalogID(_ context.Context, catalogID int) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.products[catalogID]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	cp := *p

	return &cp, nil
}

// DeleteByCatalogID removes the product and returns it.
func (r *ProductRepo) DeleteByCatalogID(_ context.Context, catalogID int) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.products[catalogID]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	delete(r.s.products, catalogID)

	return p, nil
}

// List returns every product ordered by catalog id.
func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	return r.filter("", 0), nil
}

// ListByCategory returns up to limit products of category ordered by catalog id.
func (r *ProductRepo) ListByCategory(_ context.Context, category string, limit int) ([]*entity.Product, error) {
	return r.filter(category, limit), nil
}

func (r *ProductRepo) filter(category string, limit int) []*entity.Product {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		if category != "" && p.Category != category {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CatalogID < out[j].CatalogID })

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out
}
