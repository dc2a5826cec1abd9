package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"bistro_backend/internal/analytics"
	"bistro_backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminStatsRequiresAdmin(t *testing.T) {
	db := setupDB(t)
	r := setupRouter(db, setupRedis(t))
	require.NoError(t, db.Create(&domain.User{Name: "Alice", Email: "alice@example.com", Role: "user"}).Error)

	// No token
	w := doJSON(t, r, http.MethodGet, "/admin-stats", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid token, stored role is not admin
	w = doJSON(t, r, http.MethodGet, "/admin-stats", nil, tokenFor(t, "alice@example.com"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Valid token, no stored user at all
	w = doJSON(t, r, http.MethodGet, "/order-stats", nil, tokenFor(t, "ghost@example.com"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminStatsDashboard(t *testing.T) {
	db := setupDB(t)
	r := setupRouter(db, setupRedis(t))
	adminToken := seedAdmin(t, db)

	require.NoError(t, db.Create(&domain.MenuItem{Name: "Caesar", Category: "salad", Price: 8}).Error)
	require.NoError(t, db.Create(&domain.PaymentRecord{Email: "a@example.com", Price: 10.005, TransactionID: "tx_1"}).Error)
	require.NoError(t, db.Create(&domain.PaymentRecord{Email: "b@example.com", Price: 5.00, TransactionID: "tx_2"}).Error)

	w := doJSON(t, r, http.MethodGet, "/admin-stats", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["users"]) // Only the seeded admin
	assert.Equal(t, float64(1), body["menuItems"])
	assert.Equal(t, float64(2), body["orders"])
	assert.Equal(t, 15.01, body["revenue"]) // Rounded half up, not truncated
}

func TestAdminStatsServedFromCache(t *testing.T) {
	db := setupDB(t)
	r := setupRouter(db, setupRedis(t))
	adminToken := seedAdmin(t, db)

	w := doJSON(t, r, http.MethodGet, "/admin-stats", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	first := decodeBody(t, w)

	// A write that bypasses the invalidation path is invisible until TTL
	require.NoError(t, db.Create(&domain.PaymentRecord{Email: "a@example.com", Price: 99, TransactionID: "tx_x"}).Error)

	w = doJSON(t, r, http.MethodGet, "/admin-stats", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, first, decodeBody(t, w))
}

func TestOrderStatsEndpoint(t *testing.T) {
	db := setupDB(t)
	r := setupRouter(db, setupRedis(t))
	adminToken := seedAdmin(t, db)

	salad := domain.MenuItem{Name: "Caesar", Category: "Salad", Price: 8}
	require.NoError(t, db.Create(&salad).Error)
	rec := domain.PaymentRecord{
		Email:         "alice@example.com",
		Price:         8,
		TransactionID: "tx_1",
		Items: []domain.PaymentItem{
			{MenuItemID: salad.ID},
			{MenuItemID: salad.ID + 999}, // Does not resolve, dropped silently
		},
	}
	require.NoError(t, db.Create(&rec).Error)

	w := doJSON(t, r, http.MethodGet, "/order-stats", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	var stats []analytics.CategoryStat
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.ElementsMatch(t, []analytics.CategoryStat{
		{Category: "Salad", Quantity: 1, Revenue: 8},
	}, stats)
}

func TestRecordPaymentInvalidatesStatsCache(t *testing.T) {
	db := setupDB(t)
	r := setupRouter(db, setupRedis(t))
	adminToken := seedAdmin(t, db)

	// Prime the cache with zero orders
	w := doJSON(t, r, http.MethodGet, "/admin-stats", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decodeBody(t, w)["orders"])

	// Recording a payment drops the cached stats
	payload := map[string]any{
		"email":         "alice@example.com",
		"price":         12.5,
		"transactionId": "tx_new",
		"menuItemIds":   []uint{1},
	}
	w = doJSON(t, r, http.MethodPost, "/payments", payload, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/admin-stats", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["orders"])
	assert.Equal(t, 12.5, body["revenue"])
}
