package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobcast/domain/dto"
	"jobcast/domain/model"
	"jobcast/infrastructure/logger"
	"jobcast/usecase"
)

type IReactionHandler interface {
	PublishReaction(ctx *gin.Context)
	DeleteReaction(ctx *gin.Context)
}

type ReactionHandler struct {
	socialUsecase usecase.ISocialUsecase
}

func NewReactionHandler(uc usecase.ISocialUsecase) IReactionHandler {
	return &ReactionHandler{socialUsecase: uc}
}

func (h *ReactionHandler) PublishReaction(ctx *gin.Context) {
	if h.socialUsecase == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Social features are not configured"})
		return
	}
	var req dto.ReactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.SignerUUID == "" || req.TargetHash == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "signerUuid and targetHash are required"})
		return
	}
	// Reaction type is validated before the provider call; a bad value never
	// leaves the process.
	if !model.ValidReactionType(req.ReactionType) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "reactionType must be 'like' or 'recast'"})
		return
	}

	if err := h.socialUsecase.React(ctx.Request.Context(), req.SignerUUID, req.ReactionType, req.TargetHash); err != nil {
		logger.GetLogger().WithField("hash", req.TargetHash).WithField("error", err.Error()).Error("Failed to publish reaction")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish reaction"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ReactionHandler) DeleteReaction(ctx *gin.Context) {
	if h.socialUsecase == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Social features are not configured"})
		return
	}
	signerUUID := ctx.Query("signerUuid")
	reactionType := ctx.Query("reactionType")
	targetHash := ctx.Query("targetHash")
	if signerUUID == "" || targetHash == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "signerUuid and targetHash are required"})
		return
	}
	if !model.ValidReactionType(reactionType) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "reactionType must be 'like' or 'recast'"})
		return
	}

	if err := h.socialUsecase.Unreact(ctx.Request.Context(), signerUUID, reactionType, targetHash); err != nil {
		logger.GetLogger().WithField("hash", targetHash).WithField("error", err.Error()).Error("Failed to delete reaction")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reaction"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
