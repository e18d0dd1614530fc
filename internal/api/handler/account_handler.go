package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicops/directory-admin/internal/api/cookies"
	"github.com/clinicops/directory-admin/internal/core/domain"
	"github.com/clinicops/directory-admin/internal/core/ports"
)

// AccountHandler serves the add-user form and its submission.
type AccountHandler struct {
	accounts ports.AccountService
	cookies  *cookies.Manager
}

func NewAccountHandler(accounts ports.AccountService, cookieMgr *cookies.Manager) *AccountHandler {
	return &AccountHandler{accounts: accounts, cookies: cookieMgr}
}

type addUserPage struct {
	Roles  []domain.Role
	Form   createUserRequest
	Notice *cookies.Flash
}

// AddUserForm handles GET /dashboard/add.
func (h *AccountHandler) AddUserForm(c echo.Context) error {
	return c.Render(http.StatusOK, "add_user.html", addUserPage{
		Roles: domain.Roles(),
		Form:  createUserRequest{Role: string(domain.DefaultRole)},
	})
}

// AddUser handles POST /dashboard/add: validate, then the two-phase create.
// Failures re-render the form with the submitted values (password excluded)
// so the operator can correct and resubmit.
func (h *AccountHandler) AddUser(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return h.renderError(c, createUserRequest{Role: string(domain.DefaultRole)}, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return h.renderError(c, req, err.Error())
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return h.renderError(c, req, "role must be one of the listed values")
	}

	if err := h.accounts.CreateUser(c.Request().Context(), session, req.toInput(role)); err != nil {
		return h.renderError(c, req, domain.ErrorMessage(err, "Failed to create user"))
	}

	h.cookies.WriteFlash(c, cookies.Flash{
		Title:       "Success",
		Description: "User has been created successfully",
		Variant:     cookies.VariantDefault,
	})
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *AccountHandler) renderError(c echo.Context, form createUserRequest, msg string) error {
	form.Password = ""
	return c.Render(http.StatusOK, "add_user.html", addUserPage{
		Roles:  domain.Roles(),
		Form:   form,
		Notice: &cookies.Flash{Title: "Error", Description: msg, Variant: cookies.VariantDestructive},
	})
}
