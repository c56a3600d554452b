package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobcast/domain/model"
	"jobcast/domain/repository"
)

// failingJobRepository fails every call with the configured error.
type failingJobRepository struct {
	err error
}

var _ repository.IJob = (*failingJobRepository)(nil)

func (r *failingJobRepository) GetAllJobs(ctx context.Context) ([]model.Job, error) {
	return nil, r.err
}

func (r *failingJobRepository) GetJobByID(ctx context.Context, id string) (*model.Job, error) {
	return nil, r.err
}

func (r *failingJobRepository) SearchJobs(ctx context.Context, query string, filters model.JobFilters) ([]model.Job, error) {
	return nil, r.err
}

func (r *failingJobRepository) CreateJob(ctx context.Context, job model.Job) (*model.Job, error) {
	return nil, r.err
}

func (r *failingJobRepository) IncrementApplicationCount(ctx context.Context, id string) error {
	return r.err
}

func (r *failingJobRepository) VerifyPayment(ctx context.Context, txHash, jobID string) error {
	return r.err
}

func TestFallbackJobRepository_ServesFallbackOnStoreFailure(t *testing.T) {
	storeErr := errors.New("connection refused")
	primary := &failingJobRepository{err: storeErr}
	fallback := NewMemoryJobRepository(seedJobs())
	repo := NewFallbackJobRepository(primary, fallback, false)

	jobs, err := repo.GetAllJobs(context.Background())
	require.NoError(t, err)
	assert.Len(t, jobs, 3)

	job, err := repo.GetJobByID(context.Background(), "job_new")
	require.NoError(t, err)
	assert.Equal(t, "job_new", job.ID)

	created, err := repo.CreateJob(context.Background(), model.Job{ID: "job_extra"})
	require.NoError(t, err)
	assert.Equal(t, "job_extra", created.ID)
}

func TestFallbackJobRepository_FailFastPropagates(t *testing.T) {
	storeErr := errors.New("connection refused")
	primary := &failingJobRepository{err: storeErr}
	fallback := NewMemoryJobRepository(seedJobs())
	repo := NewFallbackJobRepository(primary, fallback, true)

	_, err := repo.GetAllJobs(context.Background())
	assert.ErrorIs(t, err, storeErr)

	_, err = repo.GetJobByID(context.Background(), "job_new")
	assert.ErrorIs(t, err, storeErr)
}

func TestFallbackJobRepository_NotFoundPassesThrough(t *testing.T) {
	// A domain error is not a store failure; the fallback must not mask it.
	primary := &failingJobRepository{err: model.ErrJobNotFound}
	fallback := NewMemoryJobRepository(seedJobs())
	repo := NewFallbackJobRepository(primary, fallback, false)

	_, err := repo.GetJobByID(context.Background(), "job_new")
	assert.ErrorIs(t, err, model.ErrJobNotFound)
}

func TestFallbackJobRepository_HealthyPrimaryWins(t *testing.T) {
	primary := NewMemoryJobRepository([]model.Job{{ID: "primary_job"}})
	fallback := NewMemoryJobRepository(seedJobs())
	repo := NewFallbackJobRepository(primary, fallback, false)

	jobs, err := repo.GetAllJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "primary_job", jobs[0].ID)
}
