// internal/handlers/review_test.go
package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medhub/medhub-backend/internal/models"
)

func seedProduct(t *testing.T, env *testEnv) models.Product {
	t.Helper()
	product := models.Product{
		Name:        "ChartPilot",
		Slug:        "chartpilot",
		Description: "EHR navigation and order entry assistant.",
	}
	require.NoError(t, env.db.Create(&product).Error)
	return product
}

func TestCreateReviewRequiresSession(t *testing.T) {
	env := newTestEnv(t)
	product := seedProduct(t, env)

	w := env.request(t, "POST", fmt.Sprintf("/api/products/%d/reviews", product.ID),
		map[string]interface{}{"rating": 5}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthorized", decodeBody(t, w)["message"])

	var count int64
	require.NoError(t, env.db.Model(&models.Review{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateReviewUpdatesProductAggregate(t *testing.T) {
	env := newTestEnv(t)
	product := seedProduct(t, env)
	token := env.token(t)

	w := env.request(t, "POST", fmt.Sprintf("/api/products/%d/reviews", product.ID),
		map[string]interface{}{"rating": 4, "content": "Solid product."}, token)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = env.request(t, "GET", fmt.Sprintf("/api/products/%d", product.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(40), body["rating"])
	assert.Equal(t, float64(1), body["reviewCount"])
}

func TestCreateReviewRatingOutOfRange(t *testing.T) {
	env := newTestEnv(t)
	product := seedProduct(t, env)

	w := env.request(t, "POST", fmt.Sprintf("/api/products/%d/reviews", product.ID),
		map[string]interface{}{"rating": 6}, env.token(t))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "rating", decodeBody(t, w)["field"])
}

func TestCreateReviewUnknownProduct(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, "POST", "/api/products/12345/reviews",
		map[string]interface{}{"rating": 5}, env.token(t))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product not found", decodeBody(t, w)["message"])
}

func TestListReviewsEmpty(t *testing.T) {
	env := newTestEnv(t)
	product := seedProduct(t, env)

	w := env.request(t, "GET", fmt.Sprintf("/api/products/%d/reviews", product.ID), nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
