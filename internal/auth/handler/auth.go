package handler

import (
	"net/http"
	"strings"

	"inapp-server/internal/apierrors"
	"inapp-server/internal/auth/processor"
	"inapp-server/internal/observability"
	"inapp-server/internal/store"

	"github.com/gin-gonic/gin"
)

// UserContextKey is the gin context key the authenticated store.User is kept under.
const UserContextKey = "User"

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Username  string `json:"username" binding:"required,email,max=100"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

func (h *Handler) HandleRegister(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	user, err := h.authProcessor.Register(c.Request.Context(), processor.RegisterParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Password:  req.Password,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *Handler) HandleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.authProcessor.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleJWTMiddleware admits requests carrying a valid bearer token and
// stores the authenticated user in the context. All rejections look alike.
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		apierrors.RespondWithError(c, processor.ErrUnauthorized)
		return
	}

	user, err := h.authProcessor.Authenticate(c.Request.Context(), strings.TrimSpace(token))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	ctx := observability.WithFields(c.Request.Context(), observability.Field{Key: "user_id", Value: user.ID})
	c.Request = c.Request.WithContext(ctx)
	c.Set(UserContextKey, user)
	c.Next()
}

func (h *Handler) GetUserInfo(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		apierrors.RespondWithError(c, processor.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// CurrentUser returns the user set by HandleJWTMiddleware.
func CurrentUser(c *gin.Context) (store.User, bool) {
	v, ok := c.Get(UserContextKey)
	if !ok {
		return store.User{}, false
	}
	user, ok := v.(store.User)
	return user, ok
}
