// Package auth implements the role gate: a process-local session
// holding the current role and the active cart. The gate only informs
// the presentation layer which operations to offer; the stores never
// consult it.
package auth

import (
	"errors"
	"sync"

	"food_storefront/internal/cart"
	"food_storefront/internal/models"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// Credential maps one known login to a role. Demo-grade: the set is
// fixed at construction, there is no registration.
type Credential struct {
	Email        string
	PasswordHash []byte
	Role         models.Role
}

// DefaultCredentials returns the built-in demo accounts.
func DefaultCredentials() []Credential {
	return []Credential{
		{Email: "admin@food.ru", PasswordHash: mustHash("admin"), Role: models.RoleStaff},
		{Email: "user@food.ru", PasswordHash: mustHash("user"), Role: models.RoleCustomer},
	}
}

func mustHash(password string) []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return hash
}

type Gate struct {
	mu    sync.Mutex
	creds []Credential
	role  models.Role
	cart  cart.Cart
}

func NewGate(creds []Credential) *Gate {
	return &Gate{creds: creds, role: models.RoleGuest}
}

// Login matches the credential pair against the known set. On a
// mismatch the role stays guest.
func (g *Gate) Login(email, password string) (models.Role, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, cred := range g.creds {
		if cred.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword(cred.PasswordHash, []byte(password)) == nil {
			g.role = cred.Role
			return g.role, nil
		}
	}
	return g.role, ErrInvalidCredentials
}

// Logout resets the role to guest and clears the active cart.
func (g *Gate) Logout() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.role = models.RoleGuest
	g.cart = cart.Clear()
}

func (g *Gate) Role() models.Role {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.role
}

func (g *Gate) IsStaff() bool {
	return g.Role() == models.RoleStaff
}

func (g *Gate) IsCustomer() bool {
	return g.Role() == models.RoleCustomer
}

// Cart returns the active cart.
func (g *Gate) Cart() cart.Cart {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cart
}

func (g *Gate) AddToCart(dish models.Dish) cart.Cart {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cart = cart.AddItem(g.cart, dish)
	return g.cart
}

func (g *Gate) RemoveFromCart(dishID int64) cart.Cart {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cart = cart.RemoveItem(g.cart, dishID)
	return g.cart
}

func (g *Gate) AdjustCartQuantity(dishID int64, delta int) cart.Cart {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cart = cart.AdjustQuantity(g.cart, dishID, delta)
	return g.cart
}

func (g *Gate) ClearCart() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cart = cart.Clear()
}
