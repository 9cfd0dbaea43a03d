package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/core/domain"
	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/core/ports"
)

// MembershipHandler administers office memberships. Routes mounting it are
// restricted to admins; the lifecycle endpoints only ever read memberships.
type MembershipHandler struct {
	memberships ports.MembershipAdmin
}

func NewMembershipHandler(memberships ports.MembershipAdmin) *MembershipHandler {
	return &MembershipHandler{memberships: memberships}
}

type grantMembershipRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Role   string `json:"role" validate:"required"`
}

type membershipResponse struct {
	UserID   string `json:"user_id"`
	OfficeID string `json:"office_id"`
	Role     string `json:"role"`
}

// Grant handles POST /v1/offices/:office_id/memberships.
//
// @Summary      Grant a user a role at an office
// @Tags         memberships
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        office_id  path      string                  true  "Office id"
// @Param        body       body      grantMembershipRequest  true  "Membership to grant"
// @Success      201        {object}  membershipResponse
// @Failure      400        {object}  errorResponse
// @Failure      403        {object}  errorResponse
// @Failure      422        {object}  errorResponse
// @Router       /v1/offices/{office_id}/memberships [post]
func (h *MembershipHandler) Grant(c echo.Context) error {
	var req grantMembershipRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	m := domain.OfficeMembership{
		UserID:   req.UserID,
		OfficeID: c.Param("office_id"),
		Role:     req.Role,
	}
	if err := h.memberships.Grant(c.Request().Context(), m); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, membershipResponse{
		UserID:   m.UserID,
		OfficeID: m.OfficeID,
		Role:     m.Role,
	})
}
