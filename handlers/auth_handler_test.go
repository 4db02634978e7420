package handlers

import (
	"net/http"
	"testing"

	"github.com/Shishir-Zaman/GoodFinds/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp(db)

	register := RegisterRequest{
		Name:     "Nabila Rahman",
		Email:    "nabila@example.com",
		Password: "s3cret-pass",
		Role:     models.RoleSeller,
	}

	resp := performRequest(t, app, http.MethodPost, "/api/auth/register", "", register)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var user models.User
	require.NoError(t, db.Where("email = ?", register.Email).First(&user).Error)
	assert.Equal(t, models.RoleSeller, user.Role)
	assert.NotEqual(t, register.Password, user.Password, "password must be stored hashed")
	assert.False(t, user.IsVerified)

	// Duplicate registration is rejected
	resp = performRequest(t, app, http.MethodPost, "/api/auth/register", "", register)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = performRequest(t, app, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Email:    register.Email,
		Password: register.Password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login struct {
		Token string `json:"token"`
		User  struct {
			ID   uint   `json:"id"`
			Role string `json:"role"`
		} `json:"user"`
	}
	decodeBody(t, resp, &login)
	require.NotEmpty(t, login.Token)
	assert.Equal(t, user.ID, login.User.ID)
	assert.Equal(t, models.RoleSeller, login.User.Role)

	// The issued token passes the auth gate
	resp = performRequest(t, app, http.MethodGet, "/api/orders/buyer/"+itoa(user.ID), login.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRegisterDefaultsToBuyer(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp(db)

	resp := performRequest(t, app, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Name:     "Default Role",
		Email:    "default@example.com",
		Password: "whatever",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var user models.User
	require.NoError(t, db.Where("email = ?", "default@example.com").First(&user).Error)
	assert.Equal(t, models.RoleBuyer, user.Role)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp(db)

	resp := performRequest(t, app, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Name:     "Sneaky Admin",
		Email:    "sneaky@example.com",
		Password: "whatever",
		Role:     models.RoleAdmin,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, countRows(t, db, &models.User{}))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp(db)

	resp := performRequest(t, app, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Name:     "Login Target",
		Email:    "target@example.com",
		Password: "correct-horse",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = performRequest(t, app, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Email:    "target@example.com",
		Password: "battery-staple",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = performRequest(t, app, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct-horse",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
