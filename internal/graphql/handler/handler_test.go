package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	authorrepo "bookshelf-graphql/internal/domains/author/repository"
	authorservice "bookshelf-graphql/internal/domains/author/service"
	bookrepo "bookshelf-graphql/internal/domains/book/repository"
	bookservice "bookshelf-graphql/internal/domains/book/service"
	userrepo "bookshelf-graphql/internal/domains/user/repository"
	userservice "bookshelf-graphql/internal/domains/user/service"
	"bookshelf-graphql/internal/graphql/resolver"
	"bookshelf-graphql/internal/graphql/schema"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T, maxBody int64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authors := authorservice.NewAuthorService(authorrepo.NewMemoryRepository())
	books := bookservice.NewBookService(bookrepo.NewMemoryRepository(), bookservice.AuthorLinkerFunc(
		func(ctx context.Context, authorID, bookID uuid.UUID) error {
			_, err := authors.LinkBook(ctx, authorID, bookID)
			return err
		}))
	users := userservice.NewUserService(userrepo.NewMemoryRepository())

	exec, err := resolver.NewExecutor(schema.MustLoad(), resolver.New(authors, books, users))
	require.NoError(t, err)

	r := gin.New()
	NewGraphQLHandler(exec, maxBody).Register(r, "/graphql")
	return r
}

type envelope struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []struct {
		Message    string         `json:"message"`
		Extensions map[string]any `json:"extensions"`
	} `json:"errors"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func postJSON(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPostMutationThenQuery(t *testing.T) {
	r := setupRouter(t, 0)

	w := postJSON(r, `{"query":"mutation($f: String!) { createAuthor(firstName: $f, lastName: \"Doe\", email: \"jane@x.com\", age: 40) { id firstName } }","variables":{"f":"Jane"}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	env := decode(t, w)
	assert.Empty(t, env.Errors)
	assert.Contains(t, string(env.Data["createAuthor"]), `"firstName":"Jane"`)

	w = postJSON(r, `{"query":"{ getAuthors { firstName } }"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"getAuthors":[{"firstName":"Jane"}]}}`, w.Body.String())
}

func TestPostGraphQLBody(t *testing.T) {
	r := setupRouter(t, 0)

	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{ getBooks { id } }`))
	req.Header.Set("Content-Type", "application/graphql")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"getBooks":[]}}`, w.Body.String())
}

func TestFieldErrorsStillReturnOK(t *testing.T) {
	r := setupRouter(t, 0)

	w := postJSON(r, `{"query":"mutation { registerUser { id } }"}`)
	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "UNIMPLEMENTED", env.Errors[0].Extensions["code"])
	assert.Equal(t, "null", string(env.Data["registerUser"]))
}

func TestInvalidDocumentsAreBadRequests(t *testing.T) {
	r := setupRouter(t, 0)

	for _, body := range []string{
		`{"query":"{ getBooks { nope } }"}`,
		`{"query":"{ getBooks "}`,
		`{"query":""}`,
		`not json`,
	} {
		w := postJSON(r, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		env := decode(t, w)
		require.NotEmpty(t, env.Errors, body)
		assert.Equal(t, "VALIDATION_FAILURE", env.Errors[0].Extensions["code"])
		assert.Nil(t, env.Data)
	}
}

func TestGetRejectsMutations(t *testing.T) {
	r := setupRouter(t, 0)

	q := url.Values{"query": {`mutation { registerUser { id } }`}}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/graphql?"+q.Encode(), nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, http.MethodPost, w.Header().Get("Allow"))

	q = url.Values{
		"query":     {`query($id: ID) { findBookById(id: $id) { id } }`},
		"variables": {`{"id":"` + uuid.NewString() + `"}`},
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/graphql?"+q.Encode(), nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"findBookById":null}}`, w.Body.String())
}

func TestBodyLimit(t *testing.T) {
	r := setupRouter(t, 64)

	body := `{"query":"{ getBooks { id } }","variables":{"pad":"` + strings.Repeat("x", 128) + `"}}`
	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestSchemaEndpoint(t *testing.T) {
	r := setupRouter(t, 0)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/graphql/schema", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "type Mutation")
}
