package usecase

import (
	"context"
	"fmt"
	"strconv"

	"jobcast/domain/dto"
	"jobcast/domain/model"
	"jobcast/domain/repository"
	"jobcast/infrastructure/utils"
)

// IJobUsecase defines the job listing operations.
type IJobUsecase interface {
	ListJobs(ctx context.Context, req dto.JobSearchRequest) ([]model.Job, error)
	GetJob(ctx context.Context, id string) (*model.Job, error)
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*model.Job, error)
	Apply(ctx context.Context, id string) error
}

type jobUsecase struct {
	jobRepo repository.IJob
}

func NewJobUsecase(jobRepo repository.IJob) IJobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

// ListJobs returns all active jobs, or a filtered search when a query or any
// filter is present. Ordering is featured-first, newest-first either way.
func (u *jobUsecase) ListJobs(ctx context.Context, req dto.JobSearchRequest) ([]model.Job, error) {
	if req.Query == "" && req.Type == "" && req.Remote == nil && req.Location == "" {
		return u.jobRepo.GetAllJobs(ctx)
	}
	filters := model.JobFilters{
		Type:     req.Type,
		Remote:   req.Remote,
		Location: req.Location,
	}
	return u.jobRepo.SearchJobs(ctx, req.Query, filters)
}

func (u *jobUsecase) GetJob(ctx context.Context, id string) (*model.Job, error) {
	return u.jobRepo.GetJobByID(ctx, id)
}

func (u *jobUsecase) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*model.Job, error) {
	if err := validateJobRequest(req); err != nil {
		return nil, err
	}

	now := utils.GetCurrentTime()
	expires := now.AddDate(0, 0, model.JobExpirationDays)

	currency := req.SalaryCurrency
	if currency == "" {
		currency = "USD"
	}

	job := model.Job{
		ID:               utils.GenerateJobID(),
		Title:            req.Title,
		Company:          req.Company,
		CompanyLogoURL:   req.CompanyLogoURL,
		Location:         req.Location,
		Type:             req.Type,
		Remote:           req.Remote,
		SalaryMin:        parseSalary(req.SalaryMin),
		SalaryMax:        parseSalary(req.SalaryMax),
		SalaryCurrency:   currency,
		Description:      req.Description,
		Requirements:     utils.ParseStringList(req.Requirements),
		Benefits:         utils.ParseStringList(req.Benefits),
		Tags:             utils.ParseStringList(req.Tags),
		ApplicationURL:   req.ApplicationURL,
		Featured:         req.Featured,
		PostedBy:         *req.PostedBy,
		PostedAt:         now,
		Expires:          &expires,
		ApplicationCount: 0,
		PaymentTxHash:    req.PaymentTxHash,
		PaymentAmount:    req.PaymentAmount,
		PaymentToken:     req.PaymentToken,
		PaymentVerified:  false, // verified separately via /api/verify-payment
	}

	created, err := u.jobRepo.CreateJob(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return created, nil
}

func (u *jobUsecase) Apply(ctx context.Context, id string) error {
	return u.jobRepo.IncrementApplicationCount(ctx, id)
}

func validateJobRequest(req *dto.CreateJobRequest) error {
	if req.PostedBy == nil || req.PostedBy.Fid == 0 {
		return model.NewValidationError("postedBy with a valid fid is required")
	}
	if len(req.Title) > model.MaxTitleLength {
		return model.NewValidationError(fmt.Sprintf("title exceeds %d characters", model.MaxTitleLength))
	}
	if len(req.Description) > model.MaxDescriptionLength {
		return model.NewValidationError(fmt.Sprintf("description exceeds %d characters", model.MaxDescriptionLength))
	}
	if len(req.Requirements) > model.MaxRequirementsLength {
		return model.NewValidationError(fmt.Sprintf("requirements exceed %d characters", model.MaxRequirementsLength))
	}
	if len(req.Benefits) > model.MaxBenefitsLength {
		return model.NewValidationError(fmt.Sprintf("benefits exceed %d characters", model.MaxBenefitsLength))
	}
	if req.Type != "" && !contains(model.SupportedJobTypes, req.Type) {
		return model.NewValidationError("unsupported job type: " + req.Type)
	}
	if req.SalaryCurrency != "" && !contains(model.SupportedCurrencies, req.SalaryCurrency) {
		return model.NewValidationError("unsupported currency: " + req.SalaryCurrency)
	}
	if req.ApplicationURL != "" && !utils.IsValidURL(req.ApplicationURL) {
		return model.NewValidationError("applicationUrl is not a valid URL")
	}
	return nil
}

func parseSalary(s string) int64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
