package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobcast/domain/dto"
	"jobcast/infrastructure/logger"
	"jobcast/usecase"
)

type ICastHandler interface {
	PublishCast(ctx *gin.Context)
	DeleteCast(ctx *gin.Context)
}

type CastHandler struct {
	socialUsecase usecase.ISocialUsecase
}

func NewCastHandler(uc usecase.ISocialUsecase) ICastHandler {
	return &CastHandler{socialUsecase: uc}
}

func (h *CastHandler) PublishCast(ctx *gin.Context) {
	if h.socialUsecase == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Social features are not configured"})
		return
	}
	var req dto.PublishCastRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Text) == "" || req.SignerUUID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Text and signerUuid are required"})
		return
	}

	res, err := h.socialUsecase.PublishCast(ctx.Request.Context(), &req)
	if err != nil {
		logger.GetLogger().WithField("error", err.Error()).Error("Failed to publish cast")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish cast"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "cast": res.Cast})
}

// DeleteCast handles DELETE /api/casts with signerUuid and hash query
// parameters.
func (h *CastHandler) DeleteCast(ctx *gin.Context) {
	if h.socialUsecase == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Social features are not configured"})
		return
	}
	signerUUID := ctx.Query("signerUuid")
	hash := ctx.Query("hash")
	if signerUUID == "" || hash == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "signerUuid and hash are required"})
		return
	}

	if err := h.socialUsecase.DeleteCast(ctx.Request.Context(), signerUUID, hash); err != nil {
		logger.GetLogger().WithField("hash", hash).WithField("error", err.Error()).Error("Failed to delete cast")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cast"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
