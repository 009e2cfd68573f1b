package handler

import (
	"net/http"
	"regexp"
	"strings"

	"orghub/internal/model"
	"orghub/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	maxNameLength  = 100
	maxEmailLength = 254
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// UserHandler handles user HTTP requests
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Create handles POST /users/
// @Summary Create a new user
// @Accept json
// @Produce json
// @Param user body model.CreateUserRequest true "User to create"
// @Success 201 {object} model.UserResponse
// @Router /users/ [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Both name and email fields are required", err.Error()))
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if len(req.Name) > maxNameLength {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Name exceeds maximum length", ""))
		return
	}
	if len(req.Email) > maxEmailLength {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Email exceeds maximum length", ""))
		return
	}
	if !emailRegex.MatchString(req.Email) {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid email format", ""))
		return
	}

	user, err := h.users.Create(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user.ToResponse())
}

// List handles GET /users/
// @Summary List users
// @Produce json
// @Param name query string false "Case-insensitive substring filter on name"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} model.UsersResponse
// @Router /users/ [get]
func (h *UserHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)

	total, users, err := h.users.List(c.Request.Context(), c.Query("name"), limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := model.UsersResponse{TotalCount: total, Users: make([]model.UserResponse, len(users))}
	for i, u := range users {
		resp.Users[i] = u.ToResponse()
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /users/:idOrEmail
// @Summary Get a single user by id or email
// @Produce json
// @Param idOrEmail path string true "User id or email"
// @Success 200 {object} model.UserResponse
// @Router /users/{idOrEmail} [get]
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), c.Param("idOrEmail"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.ToResponse())
}
