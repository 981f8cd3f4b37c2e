// internal/handlers/product_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medhub/medhub-backend/internal/models"
)

func TestListProductsReturnsBareArray(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.db.Create(&models.Product{
		Name:        "ScanAssist",
		Slug:        "scanassist",
		Description: "Radiology worklist prioritization.",
	}).Error)

	w := env.request(t, "GET", "/api/products", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var products []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "ScanAssist", products[0]["name"])
}

func TestListProductsFilterQueryParams(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.db.Create(&[]models.Product{
		{Name: "ScanAssist", Slug: "scanassist", Description: "Radiology worklist prioritization.", IsAiCapable: true},
		{Name: "ClaimFlow", Slug: "claimflow", Description: "Claims scrubbing and denial management."},
	}).Error)

	w := env.request(t, "GET", "/api/products?isAiCapable=true&search=scan", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var products []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "ScanAssist", products[0]["name"])
}

func TestGetProductNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, "GET", "/api/products/12345", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product not found", decodeBody(t, w)["message"])
}

func TestCreateProduct(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, "POST", "/api/products", map[string]interface{}{
		"name":        "NoteTaker",
		"slug":        "notetaker",
		"description": "Ambient clinical documentation assistant.",
		"isAiCapable": true,
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "NoteTaker", body["name"])
	assert.Equal(t, float64(0), body["rating"])
	assert.Equal(t, float64(0), body["reviewCount"])
}

func TestCreateProductMissingNameReportsField(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, "POST", "/api/products", map[string]interface{}{
		"slug":        "unnamed",
		"description": "A listing without a name.",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "name", body["field"])
	assert.Equal(t, "name is required", body["message"])

	var count int64
	require.NoError(t, env.db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateProductMalformedBody(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, "POST", "/api/products", "not an object", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
