package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"bistro_backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartOwnership(t *testing.T) {
	db := setupDB(t)
	r := setupRouter(db, setupRedis(t))

	require.NoError(t, db.Create(&domain.CartEntry{Email: "alice@example.com", MenuItemID: 1, Name: "Caesar", Price: 8}).Error)

	// Reading someone else's cart is forbidden
	w := doJSON(t, r, http.MethodGet, "/carts?email=alice@example.com", nil, tokenFor(t, "bob@example.com"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Own cart works
	w = doJSON(t, r, http.MethodGet, "/carts?email=alice@example.com", nil, tokenFor(t, "alice@example.com"))
	require.Equal(t, http.StatusOK, w.Code)
	var entries []domain.CartEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	assert.Len(t, entries, 1)
}

func TestCartAddAndRemove(t *testing.T) {
	db := setupDB(t)
	r := setupRouter(db, setupRedis(t))
	token := tokenFor(t, "alice@example.com")

	payload := map[string]any{"menuItemId": 3, "name": "Margherita", "price": 14.5, "image": "pizza.jpg"}
	w := doJSON(t, r, http.MethodPost, "/carts", payload, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotZero(t, decodeBody(t, w)["insertedId"])

	// The owner comes from the token, not the payload
	var entry domain.CartEntry
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, "alice@example.com", entry.Email)

	w = doJSON(t, r, http.MethodDelete, "/carts/"+itoa(entry.ID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeBody(t, w)["deletedCount"])

	var count int64
	require.NoError(t, db.Model(&domain.CartEntry{}).Count(&count).Error)
	assert.Zero(t, count)
}
