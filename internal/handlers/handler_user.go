package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tallyhq/tally_pro_app/internal/core/ports/services"
	"github.com/tallyhq/tally_pro_app/internal/dto"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.POST("", h.createUser)
		users.GET("", h.listUsers)
		users.GET("/me", h.getMe)
	}
}

// createUser godoc
// @Summary Add employee
// @Description Creates an employee account in the caller's company. Admin only.
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "Employee Data"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Security BearerAuth
// @Router /users [post]
func (h *userHandler) createUser(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// listUsers godoc
// @Summary List company users
// @Description Lists all users of the caller's company. Admin only.
// @Tags users
// @Produce json
// @Success 200 {object} dto.ListUsersResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list users")
		return
	}

	c.JSON(http.StatusOK, dto.ToListUsersResponse(users))
}

// getMe godoc
// @Summary Get own profile
// @Description Returns the authenticated user's own account.
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getMe(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to get user")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
