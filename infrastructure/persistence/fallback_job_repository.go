package persistence

import (
	"context"
	"errors"

	"jobcast/domain/model"
	"jobcast/domain/repository"
	"jobcast/infrastructure/logger"
)

// FallbackJobRepository serves demo data from an in-memory copy when the
// primary store fails. Availability over consistency: this masks store outages
// on a non-critical listing path. With failFast set, store errors propagate
// instead.
type FallbackJobRepository struct {
	primary  repository.IJob
	fallback repository.IJob
	failFast bool
}

func NewFallbackJobRepository(primary, fallback repository.IJob, failFast bool) repository.IJob {
	return &FallbackJobRepository{primary: primary, fallback: fallback, failFast: failFast}
}

// useFallback decides whether an error is a store failure worth masking.
// Domain errors (job not found) pass through untouched.
func (r *FallbackJobRepository) useFallback(err error) bool {
	if err == nil || r.failFast {
		return false
	}
	return !errors.Is(err, model.ErrJobNotFound)
}

func (r *FallbackJobRepository) GetAllJobs(ctx context.Context) ([]model.Job, error) {
	jobs, err := r.primary.GetAllJobs(ctx)
	if r.useFallback(err) {
		logger.GetLogger().WithField("error", err).Warn("Job store unreachable; serving demo dataset")
		return r.fallback.GetAllJobs(ctx)
	}
	return jobs, err
}

func (r *FallbackJobRepository) GetJobByID(ctx context.Context, id string) (*model.Job, error) {
	job, err := r.primary.GetJobByID(ctx, id)
	if r.useFallback(err) {
		logger.GetLogger().WithField("error", err).Warn("Job store unreachable; serving demo dataset")
		return r.fallback.GetJobByID(ctx, id)
	}
	return job, err
}

func (r *FallbackJobRepository) SearchJobs(ctx context.Context, query string, filters model.JobFilters) ([]model.Job, error) {
	jobs, err := r.primary.SearchJobs(ctx, query, filters)
	if r.useFallback(err) {
		logger.GetLogger().WithField("error", err).Warn("Job store unreachable; serving demo dataset")
		return r.fallback.SearchJobs(ctx, query, filters)
	}
	return jobs, err
}

func (r *FallbackJobRepository) CreateJob(ctx context.Context, job model.Job) (*model.Job, error) {
	created, err := r.primary.CreateJob(ctx, job)
	if r.useFallback(err) {
		logger.GetLogger().WithField("error", err).Warn("Job store unreachable; writing to in-memory fallback")
		return r.fallback.CreateJob(ctx, job)
	}
	return created, err
}

func (r *FallbackJobRepository) IncrementApplicationCount(ctx context.Context, id string) error {
	err := r.primary.IncrementApplicationCount(ctx, id)
	if r.useFallback(err) {
		logger.GetLogger().WithField("error", err).Warn("Job store unreachable; updating in-memory fallback")
		return r.fallback.IncrementApplicationCount(ctx, id)
	}
	return err
}

func (r *FallbackJobRepository) VerifyPayment(ctx context.Context, txHash, jobID string) error {
	err := r.primary.VerifyPayment(ctx, txHash, jobID)
	if r.useFallback(err) {
		logger.GetLogger().WithField("error", err).Warn("Job store unreachable; updating in-memory fallback")
		return r.fallback.VerifyPayment(ctx, txHash, jobID)
	}
	return err
}
