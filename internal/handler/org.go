package handler

import (
	"net/http"

	"orghub/internal/model"
	"orghub/internal/service"

	"github.com/gin-gonic/gin"
)

// OrgHandler handles organization and membership HTTP requests
type OrgHandler struct {
	orgs *service.OrgService
}

// NewOrgHandler creates a new organization handler
func NewOrgHandler(orgs *service.OrgService) *OrgHandler {
	return &OrgHandler{orgs: orgs}
}

// Create handles POST /organizations/
// @Summary Create a new organization
// @Accept json
// @Produce json
// @Param organization body model.CreateOrganizationRequest true "Organization to create"
// @Success 201 {object} model.OrganizationResponse
// @Router /organizations/ [post]
func (h *OrgHandler) Create(c *gin.Context) {
	var req model.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Both name and created_by fields are required", err.Error()))
		return
	}

	org, err := h.orgs.Create(c.Request.Context(), req.Name, req.CreatedBy)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, org.ToResponse())
}

// List handles GET /organizations/
// @Summary List organizations
// @Produce json
// @Param name query string false "Case-insensitive substring filter on name"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} model.OrganizationsResponse
// @Router /organizations/ [get]
func (h *OrgHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)

	total, orgs, err := h.orgs.List(c.Request.Context(), c.Query("name"), limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := model.OrganizationsResponse{TotalCount: total, Organizations: make([]model.OrganizationResponse, len(orgs))}
	for i, o := range orgs {
		resp.Organizations[i] = o.ToResponse()
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /organizations/:orgId
// @Summary Get a single organization by id or name
// @Produce json
// @Param idOrName path string true "Organization id or name"
// @Success 200 {object} model.OrganizationResponse
// @Router /organizations/{idOrName} [get]
func (h *OrgHandler) Get(c *gin.Context) {
	org, err := h.orgs.Get(c.Request.Context(), c.Param("orgId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, org.ToResponse())
}

// AddMember handles POST /organizations/:orgId/members/:authorId
// @Summary Add a member to an organization
// @Accept json
// @Produce json
// @Param orgId path string true "Organization id"
// @Param authorId path string true "Id of the acting user (must be ADMIN)"
// @Param member body model.MemberRequest true "Member to add"
// @Success 200 {object} model.OrganizationResponse
// @Router /organizations/{orgId}/members/{authorId} [post]
func (h *OrgHandler) AddMember(c *gin.Context) {
	var req model.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Both user_id and access_level fields are required", err.Error()))
		return
	}

	org, err := h.orgs.AddMember(c.Request.Context(), c.Param("orgId"), c.Param("authorId"), req.UserID, req.AccessLevel)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, org.ToResponse())
}

// UpdateMember handles PATCH /organizations/:orgId/members/:authorId
// @Summary Update a member's access level
// @Accept json
// @Produce json
// @Param orgId path string true "Organization id"
// @Param authorId path string true "Id of the acting user (must be ADMIN)"
// @Param member body model.MemberRequest true "Member to update"
// @Success 200 {object} model.OrganizationResponse
// @Router /organizations/{orgId}/members/{authorId} [patch]
func (h *OrgHandler) UpdateMember(c *gin.Context) {
	var req model.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Both user_id and access_level fields are required", err.Error()))
		return
	}

	org, err := h.orgs.UpdateMemberAccess(c.Request.Context(), c.Param("orgId"), c.Param("authorId"), req.UserID, req.AccessLevel)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, org.ToResponse())
}

// RemoveMember handles DELETE /organizations/:orgId/members/:authorId
// @Summary Remove a member from an organization
// @Accept json
// @Produce json
// @Param orgId path string true "Organization id"
// @Param authorId path string true "Id of the acting user (must be ADMIN)"
// @Param member body model.RemoveMemberRequest true "Member to remove"
// @Success 200 {object} model.OrganizationResponse
// @Router /organizations/{orgId}/members/{authorId} [delete]
func (h *OrgHandler) RemoveMember(c *gin.Context) {
	var req model.RemoveMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("The user_id field is required", err.Error()))
		return
	}

	org, err := h.orgs.RemoveMember(c.Request.Context(), c.Param("orgId"), c.Param("authorId"), req.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, org.ToResponse())
}
