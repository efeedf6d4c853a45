package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookshelf-graphql/internal/config"
	"bookshelf-graphql/pkg/container"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, env string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		App:   config.AppConfig{Environment: env, Version: "test"},
		Store: config.StoreConfig{Driver: config.StoreMemory},
		GraphQL: config.GraphQLConfig{
			Path:           "/graphql",
			MaxConcurrency: 4,
			MaxBodyBytes:   1 << 20,
		},
	}
	c, err := container.New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(c.Cleanup)
	return SetupRouter(c)
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, "development")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Status   string            `json:"status"`
			Services map[string]string `json:"services"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "ok", body.Data.Status)
	assert.Equal(t, "disabled", body.Data.Services["cache"])
}

func TestGraphQLRoundTrip(t *testing.T) {
	r := newTestRouter(t, "development")

	create := `{"query":"mutation { createAuthor(firstName: \"Jane\", lastName: \"Doe\", email: \"jane@x.com\", age: 40) { id firstName } }"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(create))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"firstName":"Jane"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/graphql?query=%7BgetAuthors%7BlastName%7D%7D", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"getAuthors":[{"lastName":"Doe"}]}}`, w.Body.String())
}

func TestSchemaEndpointHiddenInProduction(t *testing.T) {
	dev := newTestRouter(t, "development")
	w := httptest.NewRecorder()
	dev.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/graphql/schema", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "type Query")

	prod := newTestRouter(t, "production")
	w = httptest.NewRecorder()
	prod.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/graphql/schema", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNoRoute(t *testing.T) {
	r := newTestRouter(t, "development")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "route not found")
}
