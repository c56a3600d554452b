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

type IJobHandler interface {
	ListJobs(ctx *gin.Context)
	GetJob(ctx *gin.Context)
	CreateJob(ctx *gin.Context)
	JobAction(ctx *gin.Context)
}

type JobHandler struct {
	jobUsecase usecase.IJobUsecase
}

func NewJobHandler(uc usecase.IJobUsecase) IJobHandler {
	return &JobHandler{jobUsecase: uc}
}

// ListJobs handles GET /api/jobs with optional q/type/remote/location filters.
func (h *JobHandler) ListJobs(ctx *gin.Context) {
	req := dto.JobSearchRequest{
		Query:    ctx.Query("q"),
		Type:     ctx.Query("type"),
		Location: ctx.Query("location"),
	}
	if v := ctx.Query("remote"); v != "" {
		remote := v == "true"
		req.Remote = &remote
	}

	jobs, err := h.jobUsecase.ListJobs(ctx.Request.Context(), req)
	if err != nil {
		logger.GetLogger().WithField("error", err.Error()).Error("Failed to list jobs")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch jobs"})
		return
	}
	if jobs == nil {
		jobs = []model.Job{}
	}
	ctx.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *JobHandler) GetJob(ctx *gin.Context) {
	job, err := h.jobUsecase.GetJob(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, model.ErrJobNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		logger.GetLogger().WithField("id", ctx.Param("id")).WithField("error", err.Error()).Error("Failed to fetch job")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch job"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"job": job})
}

func (h *JobHandler) CreateJob(ctx *gin.Context) {
	var req dto.CreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Title == "" || req.Company == "" || req.Location == "" || req.Description == "" || req.PostedBy == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if req.PaymentTxHash == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Payment transaction hash is required"})
		return
	}

	job, err := h.jobUsecase.CreateJob(ctx.Request.Context(), &req)
	if err != nil {
		var vErr *model.ValidationError
		if errors.As(err, &vErr) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
			return
		}
		logger.GetLogger().WithField("error", err.Error()).Error("Failed to create job")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job"})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"job": job})
}

// JobAction handles POST /api/jobs/:id. The only action today is "apply".
func (h *JobHandler) JobAction(ctx *gin.Context) {
	var req dto.JobActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Action != "apply" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unknown action"})
		return
	}

	if err := h.jobUsecase.Apply(ctx.Request.Context(), ctx.Param("id")); err != nil {
		if errors.Is(err, model.ErrJobNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		logger.GetLogger().WithField("id", ctx.Param("id")).WithField("error", err.Error()).Error("Failed to record application")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record application"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
