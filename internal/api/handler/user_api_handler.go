package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicops/directory-admin/internal/core/domain"
	"github.com/clinicops/directory-admin/internal/core/ports"
)

// UserAPIHandler exposes the listing and creation operations as JSON, guarded
// by the same session middleware as the pages.
type UserAPIHandler struct {
	directory ports.DirectoryService
	accounts  ports.AccountService
}

func NewUserAPIHandler(directory ports.DirectoryService, accounts ports.AccountService) *UserAPIHandler {
	return &UserAPIHandler{directory: directory, accounts: accounts}
}

// List handles GET /api/v1/users.
//
// @Summary      List directory users
// @Description  Returns all users ordered by creation time descending, optionally filtered by a free-text query.
// @Tags         users
// @Produce      json
// @Param        q    query     string  false  "Case-insensitive substring matched against email, name, role, and office"
// @Success      200  {object}  usersResponse
// @Failure      401  {object}  errorResponse
// @Failure      502  {object}  errorResponse
// @Router       /api/v1/users [get]
func (h *UserAPIHandler) List(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	users, err := h.directory.SearchUsers(c.Request().Context(), session.AccessToken, c.QueryParam("q"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, usersResponse{Users: users, Count: len(users)})
}

// Create handles POST /api/v1/users.
//
// @Summary      Create a directory user
// @Description  Registers an identity with the identity service, then patches the directory record its trigger created.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "New user details"
// @Success      201   {object}  createUserResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /api/v1/users [post]
func (h *UserAPIHandler) Create(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "role must be one of the listed values"})
	}

	if err := h.accounts.CreateUser(c.Request().Context(), session, req.toInput(role)); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createUserResponse{Status: "created"})
}
