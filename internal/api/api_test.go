package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"bistro_backend/internal/domain"
	"bistro_backend/internal/middleware"
	"bistro_backend/internal/payment"
	"bistro_backend/internal/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.MenuItem{},
		&domain.Review{},
		&domain.CartEntry{},
		&domain.PaymentRecord{},
		&domain.PaymentItem{},
	))
	return db
}

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

// setupRouter mirrors the route wiring in cmd/server
func setupRouter(db *gorm.DB, rdb *redis.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	recorder := payment.NewRecorder(db, nil)
	r := gin.New()

	r.POST("/jwt", IssueTokenHandler(testSecret))
	r.POST("/users", CreateUserHandler(db))
	r.GET("/menu", ListMenuHandler(db, rdb))
	r.GET("/menu/:id", GetMenuItemHandler(db))
	r.GET("/reviews", ListReviewsHandler(db))
	r.POST("/create-payment-intent", CreatePaymentIntentHandler(payment.DevIntentClient{}))
	r.POST("/payments", RecordPaymentHandler(recorder, rdb))

	authed := r.Group("")
	authed.Use(middleware.JWTAuthMiddleware(testSecret))
	authed.GET("/users/admin/:email", IsAdminHandler(db))
	authed.POST("/reviews", CreateReviewHandler(db))
	authed.GET("/carts", ListCartHandler(db))
	authed.POST("/carts", CreateCartHandler(db))
	authed.DELETE("/carts/:id", DeleteCartHandler(db))
	authed.GET("/payments/:email", ListPaymentsHandler(db))

	admin := r.Group("")
	admin.Use(middleware.JWTAuthMiddleware(testSecret), middleware.AdminOnlyMiddleware(db))
	admin.GET("/users", ListUsersHandler(db))
	admin.DELETE("/users/:id", DeleteUserHandler(db))
	admin.PATCH("/users/admin/:id", PromoteUserHandler(db))
	admin.POST("/menu", CreateMenuItemHandler(db, rdb))
	admin.PATCH("/menu/:id", UpdateMenuItemHandler(db, rdb))
	admin.DELETE("/menu/:id", DeleteMenuItemHandler(db, rdb))
	admin.GET("/admin-stats", AdminStatsHandler(db, rdb))
	admin.GET("/order-stats", OrderStatsHandler(db, rdb))
	return r
}

func tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := utils.GenerateJWT(email, "", testSecret)
	require.NoError(t, err)
	return token
}

// doJSON performs a request with an optional JSON body and bearer token
func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func seedAdmin(t *testing.T, db *gorm.DB) string {
	t.Helper()
	require.NoError(t, db.Create(&domain.User{Name: "Boss", Email: "boss@example.com", Role: "admin"}).Error)
	return tokenFor(t, "boss@example.com")
}
