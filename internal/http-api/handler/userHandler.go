package handler

import (
	"net/http"

	"cinehub/internal/http-api/dto"
	"cinehub/internal/http-api/middleware"
	"cinehub/internal/http-api/patch"
	"cinehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService       service.UserService
	assessmentService service.AssessmentService
	friendshipService service.FriendshipService
}

func NewUserHandler(
	userService service.UserService,
	assessmentService service.AssessmentService,
	friendshipService service.FriendshipService,
) *UserHandler {
	return &UserHandler{
		userService:       userService,
		assessmentService: assessmentService,
		friendshipService: friendshipService,
	}
}

// RegisterRoutes registers user routes plus the friends and assessments
// sub-resources. The group is expected to carry the auth middleware; user
// creation is registered separately as an open route.
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("", h.List)
		users.GET("/:email", h.Get)
		users.PUT("/:email", middleware.RequireSelfOrAdmin("email"), h.Replace)
		users.PATCH("/:email", middleware.RequireSelfOrAdmin("email"), h.Patch)
		users.DELETE("/:email", middleware.RequireSelfOrAdmin("email"), h.Delete)

		users.GET("/:email/assessments", h.ListAssessments)

		users.GET("/:email/friends", h.ListFriends)
		users.GET("/:email/friends/:friend", h.GetFriendship)
		users.POST("/:email/friends/:friend", middleware.RequireSelfOrAdmin("email"), h.AddFriend)
		users.PATCH("/:email/friends/:friend", h.PatchFriendship)
		users.DELETE("/:email/friends/:friend", h.DeleteFriendship)
	}
}

// List retrieves users with pagination, sorting and the optional email/name
// filters
// GET /users?page=0&size=20&sort=+name&email=&name=
func (h *UserHandler) List(c *gin.Context) {
	page, size, ok := pageParams(c)
	if !ok {
		return
	}
	sortTokens := c.QueryArray("sort")

	users, total, err := h.userService.List(c.Request.Context(), page, size, sortTokens,
		c.Query("email"), c.Query("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	setLinkHeader(c, page, size, total)
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(users, page, size, total))
}

// Get retrieves one user
// GET /users/:email
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.Get(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Create registers a new user
// POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.Create(c.Request.Context(), req.ToModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Replace overwrites the user's profile
// PUT /users/:email
func (h *UserHandler) Replace(c *gin.Context) {
	var req dto.UpdateUserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.Replace(c.Request.Context(), req.ToModel(c.Param("email")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Patch applies a JSON patch to the user
// PATCH /users/:email
func (h *UserHandler) Patch(c *gin.Context) {
	var ops []patch.Operation
	if err := c.ShouldBindJSON(&ops); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.Patch(c.Request.Context(), c.Param("email"), ops)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete removes the user. Dependent assessments and friendships are kept.
// DELETE /users/:email
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userService.Delete(c.Request.Context(), c.Param("email")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListAssessments retrieves the user's assessments
// GET /users/:email/assessments
func (h *UserHandler) ListAssessments(c *gin.Context) {
	page, size, ok := pageParams(c)
	if !ok {
		return
	}
	sortTokens := c.QueryArray("sort")

	assessments, total, err := h.assessmentService.List(c.Request.Context(), page, size, sortTokens,
		c.Param("email"), "")
	if err != nil {
		respondError(c, err)
		return
	}

	setLinkHeader(c, page, size, total)
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(assessments, page, size, total))
}

// ListFriends retrieves the friendships the user appears in, on either side
// GET /users/:email/friends
func (h *UserHandler) ListFriends(c *gin.Context) {
	page, size, ok := pageParams(c)
	if !ok {
		return
	}
	sortTokens := c.QueryArray("sort")

	friendships, total, err := h.friendshipService.ListForUser(c.Request.Context(),
		c.Param("email"), page, size, sortTokens)
	if err != nil {
		respondError(c, err)
		return
	}

	setLinkHeader(c, page, size, total)
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(friendships, page, size, total))
}

// GetFriendship retrieves the friendship between the two users, whichever
// side filed it
// GET /users/:email/friends/:friend
func (h *UserHandler) GetFriendship(c *gin.Context) {
	friendship, err := h.friendshipService.Get(c.Request.Context(),
		c.Param("email"), c.Param("friend"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, friendship)
}

// AddFriend files a friend request from :email to :friend
// POST /users/:email/friends/:friend
func (h *UserHandler) AddFriend(c *gin.Context) {
	friendship, err := h.friendshipService.Create(c.Request.Context(),
		c.Param("email"), c.Param("friend"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, friendship)
}

// PatchFriendship applies a JSON patch to the friendship; confirming it is
// only valid from the addressed party
// PATCH /users/:email/friends/:friend
func (h *UserHandler) PatchFriendship(c *gin.Context) {
	var ops []patch.Operation
	if err := c.ShouldBindJSON(&ops); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	friendship, err := h.friendshipService.Patch(c.Request.Context(),
		c.Param("email"), c.Param("friend"), middleware.CallerEmail(c), ops)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, friendship)
}

// DeleteFriendship removes the friendship; only a participant or an admin
// may do so
// DELETE /users/:email/friends/:friend
func (h *UserHandler) DeleteFriendship(c *gin.Context) {
	caller := middleware.CallerEmail(c)
	if caller != c.Param("email") && caller != c.Param("friend") && !middleware.IsAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
		return
	}

	if err := h.friendshipService.Delete(c.Request.Context(),
		c.Param("email"), c.Param("friend")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
