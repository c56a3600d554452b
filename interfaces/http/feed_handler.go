package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobcast/domain/dto"
	"jobcast/infrastructure/logger"
	"jobcast/usecase"
)

type IFeedHandler interface {
	GetFeed(ctx *gin.Context)
}

type FeedHandler struct {
	socialUsecase usecase.ISocialUsecase
}

func NewFeedHandler(uc usecase.ISocialUsecase) IFeedHandler {
	return &FeedHandler{socialUsecase: uc}
}

// GetFeed handles GET /api/feed. Defaults: feedType "filter", filterType
// "global_trending", limit 25.
func (h *FeedHandler) GetFeed(ctx *gin.Context) {
	if h.socialUsecase == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Social features are not configured"})
		return
	}

	req := dto.FeedRequest{
		FeedType:   ctx.DefaultQuery("feedType", "filter"),
		FilterType: ctx.DefaultQuery("filterType", "global_trending"),
		Cursor:     ctx.Query("cursor"),
		ChannelID:  ctx.Query("channelId"),
		Limit:      25,
	}
	if v := ctx.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			req.Limit = n
		}
	}
	if v := ctx.Query("fid"); v != "" {
		if fid, err := strconv.ParseInt(v, 10, 64); err == nil {
			req.Fid = fid
		}
	}

	feed, err := h.socialUsecase.GetFeed(ctx.Request.Context(), req)
	if err != nil {
		logger.GetLogger().WithField("feedType", req.FeedType).WithField("error", err.Error()).Error("Failed to fetch feed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feed"})
		return
	}
	ctx.JSON(http.StatusOK, feed)
}
