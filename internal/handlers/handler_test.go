// internal/handlers/handler_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/medhub/medhub-backend/internal/database"
	"github.com/medhub/medhub-backend/internal/middleware"
	"github.com/medhub/medhub-backend/internal/services"
	"github.com/medhub/medhub-backend/internal/utils"
)

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

// newTestEnv wires the marketplace routes against a private in-memory
// database, mirroring the production route table minus rate limiting.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	utils.SetJWTSecret("handler-test-secret")

	productHandler := NewProductHandler(services.NewProductService(db))
	directoryHandler := NewDirectoryHandler(services.NewDirectoryService(db))
	reviewHandler := NewReviewHandler(services.NewReviewService(db))
	comparisonHandler := NewComparisonHandler(services.NewComparisonService(db))

	r := gin.New()
	api := r.Group("/api")
	{
		products := api.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.POST("", productHandler.CreateProduct)
			products.GET("/:id/reviews", reviewHandler.ListReviews)
			products.POST("/:id/reviews", middleware.AuthRequired(), reviewHandler.CreateReview)
		}

		api.GET("/categories", directoryHandler.ListCategories)
		api.GET("/topics", directoryHandler.ListTopics)
		api.GET("/topics/:slug", directoryHandler.GetTopicBySlug)

		comparisons := api.Group("/comparisons")
		{
			comparisons.POST("", middleware.OptionalAuth(), comparisonHandler.CreateComparison)
			comparisons.GET("/:id", comparisonHandler.GetComparison)
		}
	}

	return &testEnv{db: db, router: r}
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) token(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateJWT(uuid.New(), "tester", 1)
	require.NoError(t, err)
	return token
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
