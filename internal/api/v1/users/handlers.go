package users

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"cleanresponse/internal/api/types"
	"cleanresponse/internal/storage"
	"cleanresponse/pkg/response"

	"github.com/gin-gonic/gin"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Store is the persistence the users handlers depend on.
type Store interface {
	ListUsers(ctx context.Context, page, perPage int) ([]storage.User, int64, error)
	GetUser(ctx context.Context, id int64) (*storage.User, error)
	CreateUser(ctx context.Context, user *storage.User) error
	DeleteUser(ctx context.Context, id int64) error
}

// Handler manages all user-related HTTP endpoints.
//
// It focuses on request parsing, translating storage errors into error
// envelopes, and choosing the HTTP status for each envelope.
type Handler struct {
	store      Store
	production bool
}

// NewHandler creates a new users handler instance.
//
// Parameters:
//   - store: Persistence for users
//   - production: Suppresses stack traces in 500 envelopes when true
func NewHandler(store Store, production bool) *Handler {
	return &Handler{
		store:      store,
		production: production,
	}
}

// List handles GET /api/v1/users
//
// Query parameters:
//   - page (default: 1, min: 1)
//   - per_page (default: 20, max: 100)
//
// Returns:
//   - 200 OK with a paginated envelope
//   - 400 Bad Request for invalid or out-of-range pagination parameters
//   - 500 Internal Server Error on storage failure
func (h *Handler) List(c *gin.Context) {
	var pagination types.PaginationRequest
	if err := c.ShouldBindQuery(&pagination); err != nil {
		h.invalidPagination(c, types.QueryFieldErrors(c.Request.URL.Query(), err)...)
		return
	}
	pagination.Normalize()
	if !pagination.InRange() {
		h.invalidPagination(c, pageOutOfRange)
		return
	}

	users, total, err := h.store.ListUsers(c.Request.Context(), pagination.Page, pagination.PerPage)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidPage) {
			h.invalidPagination(c, pageOutOfRange)
			return
		}
		h.internalError(c, "Failed to retrieve users", err)
		return
	}

	items := make([]UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, toResponse(u))
	}

	meta := response.PaginationMeta{
		Page:       pagination.Page,
		PerPage:    pagination.PerPage,
		Total:      total,
		TotalPages: pagination.TotalPages(total),
	}

	types.JSON(c, http.StatusOK, response.Paginate(items, meta, "Users retrieved successfully", types.Options(c)...))
}

// Create handles POST /api/v1/users
//
// Returns:
//   - 201 Created with the new user
//   - 422 Unprocessable Entity with field errors for invalid payloads
//   - 409 Conflict when the email is already registered
//   - 500 Internal Server Error on storage failure
func (h *Handler) Create(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		types.AbortWithError(c, response.ValidationError(types.FieldErrors(err), "", types.Options(c)...))
		return
	}

	user := &storage.User{Name: req.Name, Email: req.Email}
	if err := h.store.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			types.AbortWithError(c, response.Conflict("User with this email already exists", types.Options(c)...))
			return
		}
		h.internalError(c, "Failed to create user", err)
		return
	}

	log.Info().Int64("user_id", user.ID).Str("request_id", types.RequestID(c)).Msg("User created")

	types.JSON(c, http.StatusCreated, response.Created(toResponse(*user), "User created successfully", types.Options(c)...))
}

// Get handles GET /api/v1/users/:id
//
// Returns:
//   - 200 OK with the user
//   - 400 Bad Request for a malformed id
//   - 404 Not Found when the user does not exist
func (h *Handler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	user, err := h.store.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			types.AbortWithError(c, response.NotFound("User", types.Options(c)...))
			return
		}
		h.internalError(c, "Failed to retrieve user", err)
		return
	}

	types.JSON(c, http.StatusOK, response.Success(toResponse(*user), "", types.Options(c)...))
}

// Delete handles DELETE /api/v1/users/:id
//
// A 204 response cannot carry a body, so deletions answer 200 with a
// no-content envelope.
//
// Returns:
//   - 200 OK with null data
//   - 400 Bad Request for a malformed id
//   - 404 Not Found when the user does not exist
func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			types.AbortWithError(c, response.NotFound("User", types.Options(c)...))
			return
		}
		h.internalError(c, "Failed to delete user", err)
		return
	}

	types.JSON(c, http.StatusOK, response.NoContent("User deleted successfully", types.Options(c)...))
}

var pageOutOfRange = response.FieldError{
	Field:   "page",
	Message: "is out of range",
	Code:    "OUT_OF_RANGE",
}

func (h *Handler) invalidPagination(c *gin.Context, errs ...response.FieldError) {
	types.AbortWithError(c, response.BadRequest("Invalid pagination parameters",
		types.Options(c, response.WithFieldErrors(errs...))...))
}

// parseID reads the :id path parameter, writing a 400 envelope when it is not a positive integer.
func (h *Handler) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		types.AbortWithError(c, response.BadRequest("Invalid user ID", types.Options(c, response.WithDetails(map[string]any{
			"id": c.Param("id"),
		}))...))
		return 0, false
	}
	return id, true
}

// internalError logs err and writes a 500 envelope; the stack is kept out of production responses.
func (h *Handler) internalError(c *gin.Context, message string, err error) {
	err = pkgerrors.WithStack(err)

	log.Error().
		Err(err).
		Str("request_id", types.RequestID(c)).
		Str("path", c.Request.URL.Path).
		Msg(message)

	types.AbortWithError(c, response.InternalServerError(message, err, h.production, types.Options(c)...))
}
