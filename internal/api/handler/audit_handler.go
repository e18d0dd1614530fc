package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clinicops/directory-admin/internal/core/ports"
)

// AuditHandler exposes the local audit trail.
type AuditHandler struct {
	audit ports.AuditRepository
}

func NewAuditHandler(audit ports.AuditRepository) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// Recent handles GET /api/v1/audit.
//
// @Summary      Recent audit entries
// @Description  Returns the most recent administrative actions, newest first.
// @Tags         audit
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of entries (default 50)"
// @Success      200    {object}  auditResponse
// @Failure      401    {object}  errorResponse
// @Router       /api/v1/audit [get]
func (h *AuditHandler) Recent(c echo.Context) error {
	if _, err := ctxSession(c); err != nil {
		return err
	}

	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	entries, err := h.audit.Recent(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, auditResponse{Entries: entries})
}
