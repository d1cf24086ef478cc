package http

import (
	"net/http"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
	"github.com/comitanigiacomo/consistency-tracker/internal/core/services"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service *services.AuthService
	tokens  *services.TokenService
}

func NewAuthHandler(service *services.AuthService, tokens *services.TokenService) *AuthHandler {
	return &AuthHandler{
		service: service,
		tokens:  tokens,
	}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required" example:"Ada"`
	Email    string `json:"email" binding:"required" example:"ada@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"secret1"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required" example:"ada@example.com"`
	Password string `json:"password" binding:"required" example:"secret1"`
}

type profileRequest struct {
	Name  string `json:"name" binding:"required" example:"Ada Lovelace"`
	Email string `json:"email" binding:"required" example:"ada@example.com"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}
}

func (h *AuthHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/profile", h.GetProfile)
	router.PUT("/profile", h.UpdateProfile)
}

// Register godoc
// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "New account"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.service.Register(c.Request.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	h.respondWithToken(c, http.StatusCreated, user)
}

// Login godoc
// @Summary      Sign in and receive a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.service.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	h.respondWithToken(c, http.StatusOK, user)
}

// GetProfile godoc
// @Summary   Current account
// @Tags      profile
// @Security  BearerAuth
// @Produce   json
// @Success   200  {object}  domain.User
// @Failure   401  {object}  errorResponse
// @Router    /profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user.Public())
}

// UpdateProfile godoc
// @Summary   Change name or email
// @Tags      profile
// @Security  BearerAuth
// @Accept    json
// @Produce   json
// @Param     body  body      profileRequest  true  "Profile"
// @Success   200   {object}  domain.User
// @Failure   400   {object}  errorResponse
// @Failure   409   {object}  errorResponse
// @Router    /profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), services.UpdateProfileInput{
		UserID: userID,
		Name:   req.Name,
		Email:  req.Email,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user.Public())
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, user *domain.User) {
	token, err := h.tokens.GenerateToken(user.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(status, authResponse{Token: token, User: user.Public()})
}
