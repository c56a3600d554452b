package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobcast/domain/dto"
	"jobcast/domain/model"
	"jobcast/infrastructure/logger"
	"jobcast/usecase"
)

type IAuthHandler interface {
	AuthenticateUser(ctx *gin.Context)
	GetSession(ctx *gin.Context)
}

type AuthHandler struct {
	authUsecase usecase.IAuthUsecase
}

func NewAuthHandler(uc usecase.IAuthUsecase) IAuthHandler {
	return &AuthHandler{authUsecase: uc}
}

// AuthenticateUser handles POST /api/auth/user: signer UUID in, resolved user
// and session token out.
func (h *AuthHandler) AuthenticateUser(ctx *gin.Context) {
	if h.authUsecase == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Social features are not configured"})
		return
	}
	var req dto.AuthUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.SignerUUID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "signerUuid is required"})
		return
	}

	res, err := h.authUsecase.Login(ctx.Request.Context(), req.SignerUUID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidSigner):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or unapproved signer"})
		case errors.Is(err, model.ErrUserNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			logger.GetLogger().WithField("error", err.Error()).Error("Failed to authenticate user")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to authenticate user"})
		}
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// GetSession handles GET /api/auth/session. The session middleware has already
// validated the bearer token and stored its claims.
func (h *AuthHandler) GetSession(ctx *gin.Context) {
	fid := ctx.GetInt64("fid")
	ctx.JSON(http.StatusOK, gin.H{
		"fid":        fid,
		"signerUuid": ctx.GetString("signer_uuid"),
		"username":   ctx.GetString("username"),
	})
}
