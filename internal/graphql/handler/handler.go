// Package handler exposes the GraphQL executor over HTTP.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"bookshelf-graphql/internal/graphql/executor"
	"bookshelf-graphql/internal/graphql/schema"
	"bookshelf-graphql/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

const defaultMaxBodyBytes = 1 << 20

type GraphQLHandler struct {
	exec         *executor.Executor
	maxBodyBytes int64
}

func NewGraphQLHandler(exec *executor.Executor, maxBodyBytes int64) *GraphQLHandler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}
	return &GraphQLHandler{
		exec:         exec,
		maxBodyBytes: maxBodyBytes,
	}
}

// Register mounts the endpoint at path and the SDL at path + "/schema".
func (h *GraphQLHandler) Register(r gin.IRoutes, path string) {
	r.POST(path, h.Post)
	r.GET(path, h.Get)
	r.GET(path+"/schema", h.Schema)
}

// ════════════════════════════════════════════════════════════════
// POST /graphql
// ════════════════════════════════════════════════════════════════

// Post accepts application/json {query, operationName, variables} or a raw
// application/graphql document.
func (h *GraphQLHandler) Post(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)

	var params executor.Params
	mediaType, _, _ := mime.ParseMediaType(c.ContentType())
	switch mediaType {
	case "application/graphql":
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			h.bodyError(c, err)
			return
		}
		params.Query = string(body)
		params.OperationName = c.Query("operationName")

	case "application/json", "":
		if err := json.NewDecoder(c.Request.Body).Decode(&params); err != nil {
			h.bodyError(c, err)
			return
		}

	default:
		writeRequestError(c, http.StatusUnsupportedMediaType, "unsupported content type "+mediaType)
		return
	}

	h.serve(c, params, true)
}

// ════════════════════════════════════════════════════════════════
// GET /graphql?query=&operationName=&variables=
// ════════════════════════════════════════════════════════════════

// Get serves queries only; mutations must be sent with POST.
func (h *GraphQLHandler) Get(c *gin.Context) {
	params := executor.Params{
		Query:         c.Query("query"),
		OperationName: c.Query("operationName"),
	}
	if raw := c.Query("variables"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &params.Variables); err != nil {
			writeRequestError(c, http.StatusBadRequest, "variables must be a JSON object")
			return
		}
	}

	h.serve(c, params, false)
}

// ════════════════════════════════════════════════════════════════
// GET /graphql/schema
// ════════════════════════════════════════════════════════════════

func (h *GraphQLHandler) Schema(c *gin.Context) {
	c.String(http.StatusOK, schema.SDL())
}

func (h *GraphQLHandler) serve(c *gin.Context, params executor.Params, allowMutation bool) {
	op, errs := h.exec.Prepare(params)
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, &executor.Response{Errors: errs})
		return
	}

	if op.Type() == ast.Mutation && !allowMutation {
		c.Header("Allow", http.MethodPost)
		writeRequestError(c, http.StatusMethodNotAllowed, "mutations must be sent with POST")
		return
	}

	c.JSON(http.StatusOK, h.exec.Run(c.Request.Context(), op))
}

func (h *GraphQLHandler) bodyError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeRequestError(c, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	writeRequestError(c, http.StatusBadRequest, "request body must be a JSON object: "+err.Error())
}

func writeRequestError(c *gin.Context, status int, message string) {
	err := &gqlerror.Error{
		Message:    message,
		Extensions: map[string]any{"code": string(apperror.CodeValidationFailure)},
	}
	c.JSON(status, &executor.Response{Errors: gqlerror.List{err}})
}
