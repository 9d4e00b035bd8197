package auth

import (
	"testing"

	"food_storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantRole models.Role
		wantErr  bool
	}{
		{name: "staff login", email: "admin@food.ru", password: "admin", wantRole: models.RoleStaff},
		{name: "customer login", email: "user@food.ru", password: "user", wantRole: models.RoleCustomer},
		{name: "wrong password", email: "admin@food.ru", password: "nope", wantRole: models.RoleGuest, wantErr: true},
		{name: "unknown email", email: "ghost@food.ru", password: "admin", wantRole: models.RoleGuest, wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			gate := NewGate(DefaultCredentials())

			role, err := gate.Login(testCase.email, testCase.password)

			if testCase.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, testCase.wantRole, role)
			assert.Equal(t, testCase.wantRole, gate.Role())
		})
	}
}

func TestCapabilityPredicates(t *testing.T) {
	gate := NewGate(DefaultCredentials())
	assert.False(t, gate.IsStaff())
	assert.False(t, gate.IsCustomer())

	_, err := gate.Login("admin@food.ru", "admin")
	require.NoError(t, err)
	assert.True(t, gate.IsStaff())
	assert.False(t, gate.IsCustomer())

	_, err = gate.Login("user@food.ru", "user")
	require.NoError(t, err)
	assert.True(t, gate.IsCustomer())
	assert.False(t, gate.IsStaff())
}

func TestLogout_ResetsRoleAndClearsCart(t *testing.T) {
	gate := NewGate(DefaultCredentials())
	_, err := gate.Login("user@food.ru", "user")
	require.NoError(t, err)

	gate.AddToCart(models.Dish{ID: 1, Title: "Пицца Маргарита", Price: 590})
	require.Len(t, gate.Cart(), 1)

	gate.Logout()

	assert.Equal(t, models.RoleGuest, gate.Role())
	assert.Empty(t, gate.Cart())
}

func TestGateCartOperations(t *testing.T) {
	gate := NewGate(DefaultCredentials())
	dish := models.Dish{ID: 1, Title: "Пицца Маргарита", Price: 590}

	gate.AddToCart(dish)
	gate.AddToCart(dish)
	c := gate.AdjustCartQuantity(1, -5)
	require.Len(t, c, 1)
	assert.Equal(t, 1, c[0].Quantity)

	c = gate.RemoveFromCart(1)
	assert.Empty(t, c)
}
