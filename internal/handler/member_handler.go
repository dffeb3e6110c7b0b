package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"forumhub/internal/service"
)

// MemberHandler serves the member directory.
type MemberHandler struct {
	memberService service.MemberService
}

// NewMemberHandler creates a new member handler.
func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// ListMembers godoc
// @Summary List all members ranked by points
// @Tags members
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errors.Envelope
// @Router /members [get]
func (h *MemberHandler) ListMembers(c echo.Context) error {
	members, err := h.memberService.ListMembers(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load members")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"members": members,
	})
}
