package handlers

import (
	"net/http"
	"testing"

	"github.com/Shishir-Zaman/GoodFinds/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteUserCascades(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp(db)

	admin := createUser(t, db, "Cascade Admin", models.RoleAdmin)
	seller := createUser(t, db, "Cascade Seller", models.RoleSeller)
	buyer := createUser(t, db, "Cascade Buyer", models.RoleBuyer)
	category := createCategory(t, db, "Clothing")
	product := createProduct(t, db, seller, category, "Silk Punjabi", 2200)

	order := models.Order{BuyerID: buyer.ID, TotalAmount: 2200, Status: models.OrderStatusPending}
	require.NoError(t, db.Create(&order).Error)
	require.NoError(t, db.Create(&models.OrderItem{OrderID: order.ID, ProductID: product.ID, Quantity: 1, Price: 2200}).Error)

	// Deleting the seller removes their products and, transitively, the
	// order items referencing them. The buyer's order header survives.
	resp := performRequest(t, app, http.MethodDelete, "/api/users/"+itoa(seller.ID), tokenFor(t, admin), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Zero(t, countRows(t, db, &models.Product{}))
	assert.Zero(t, countRows(t, db, &models.OrderItem{}))
	assert.Equal(t, int64(1), countRows(t, db, &models.Order{}))

	// Deleting the buyer removes their orders.
	resp = performRequest(t, app, http.MethodDelete, "/api/users/"+itoa(buyer.ID), tokenFor(t, admin), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Zero(t, countRows(t, db, &models.Order{}))
}

func TestDeleteUserIsAdminOnly(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp(db)

	seller := createUser(t, db, "Plain Seller", models.RoleSeller)
	victim := createUser(t, db, "Victim User", models.RoleBuyer)

	resp := performRequest(t, app, http.MethodDelete, "/api/users/"+itoa(victim.ID), tokenFor(t, seller), nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	assert.Equal(t, int64(2), countRows(t, db, &models.User{}))
}

func TestVerifyUser(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp(db)

	admin := createUser(t, db, "Verify Admin", models.RoleAdmin)
	seller := createUser(t, db, "Unverified Seller", models.RoleSeller)
	require.False(t, seller.IsVerified)

	resp := performRequest(t, app, http.MethodPut, "/api/users/"+itoa(seller.ID)+"/verify", tokenFor(t, admin), map[string]bool{"is_verified": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.User
	require.NoError(t, db.First(&updated, seller.ID).Error)
	assert.True(t, updated.IsVerified)

	// Non-admin callers are denied
	resp = performRequest(t, app, http.MethodPut, "/api/users/"+itoa(seller.ID)+"/verify", tokenFor(t, seller), map[string]bool{"is_verified": false})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestUpdateProfileSelfOnly(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp(db)

	alice := createUser(t, db, "Alice Buyer", models.RoleBuyer)
	mallory := createUser(t, db, "Mallory Buyer", models.RoleBuyer)

	resp := performRequest(t, app, http.MethodPut, "/api/users/"+itoa(alice.ID), tokenFor(t, mallory), UpdateProfileRequest{Name: "Hijacked"})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = performRequest(t, app, http.MethodPut, "/api/users/"+itoa(alice.ID), tokenFor(t, alice), UpdateProfileRequest{Name: "Alice Renamed"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.User
	require.NoError(t, db.First(&updated, alice.ID).Error)
	assert.Equal(t, "Alice Renamed", updated.Name)
	assert.Equal(t, alice.Email, updated.Email)
}

func TestGetSellersIsPublic(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp(db)

	createUser(t, db, "Listed Seller", models.RoleSeller)
	createUser(t, db, "Hidden Buyer", models.RoleBuyer)
	createUser(t, db, "Hidden Admin", models.RoleAdmin)

	resp := performRequest(t, app, http.MethodGet, "/api/users/sellers", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list struct {
		Data []models.User `json:"data"`
	}
	decodeBody(t, resp, &list)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "Listed Seller", list.Data[0].Name)
}

func TestGetAllUsersExcludesAdmins(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp(db)

	admin := createUser(t, db, "Listing Admin", models.RoleAdmin)
	createUser(t, db, "Some Seller", models.RoleSeller)
	createUser(t, db, "Some Buyer", models.RoleBuyer)

	resp := performRequest(t, app, http.MethodGet, "/api/users/", tokenFor(t, admin), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list struct {
		Data []models.User `json:"data"`
	}
	decodeBody(t, resp, &list)
	require.Len(t, list.Data, 2)
	for _, user := range list.Data {
		assert.NotEqual(t, models.RoleAdmin, user.Role)
	}
}

func TestGetUser(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp(db)

	user := createUser(t, db, "Public Profile", models.RoleSeller)

	resp := performRequest(t, app, http.MethodGet, "/api/users/"+itoa(user.ID), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		Data models.User `json:"data"`
	}
	decodeBody(t, resp, &got)
	assert.Equal(t, user.ID, got.Data.ID)
	assert.Equal(t, "Public Profile", got.Data.Name)

	resp = performRequest(t, app, http.MethodGet, "/api/users/424242", "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
