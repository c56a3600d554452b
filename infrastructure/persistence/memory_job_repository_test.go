package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobcast/domain/model"
)

func seedJobs() []model.Job {
	now := time.Now()
	return []model.Job{
		{
			ID:       "job_old",
			Title:    "Solidity Engineer",
			Company:  "ChainWorks",
			Location: "Berlin, Germany",
			Type:     "full-time",
			Remote:   false,
			Tags:     []string{"solidity", "evm"},
			PostedAt: now.Add(-72 * time.Hour),
		},
		{
			ID:       "job_new",
			Title:    "Backend Engineer",
			Company:  "Jobcast Labs",
			Location: "Remote",
			Type:     "full-time",
			Remote:   true,
			Tags:     []string{"golang"},
			PostedAt: now.Add(-1 * time.Hour),
		},
		{
			ID:       "job_featured",
			Title:    "Product Designer",
			Company:  "Warp Industries",
			Location: "New York, NY",
			Type:     "contract",
			Remote:   true,
			Featured: true,
			PostedAt: now.Add(-48 * time.Hour),
		},
	}
}

func TestMemoryJobRepository_SortOrder(t *testing.T) {
	repo := NewMemoryJobRepository(seedJobs())

	jobs, err := repo.GetAllJobs(context.Background())

	require.NoError(t, err)
	require.Len(t, jobs, 3)
	// featured first, then newest first
	assert.Equal(t, "job_featured", jobs[0].ID)
	assert.Equal(t, "job_new", jobs[1].ID)
	assert.Equal(t, "job_old", jobs[2].ID)
}

func TestMemoryJobRepository_SearchWithoutFiltersMatchesGetAll(t *testing.T) {
	repo := NewMemoryJobRepository(seedJobs())

	all, err := repo.GetAllJobs(context.Background())
	require.NoError(t, err)
	searched, err := repo.SearchJobs(context.Background(), "", model.JobFilters{})
	require.NoError(t, err)

	assert.Equal(t, all, searched)
}

func TestMemoryJobRepository_SearchJobs(t *testing.T) {
	repo := NewMemoryJobRepository(seedJobs())
	remote := true

	byTag, err := repo.SearchJobs(context.Background(), "golang", model.JobFilters{})
	require.NoError(t, err)
	require.Len(t, byTag, 1)
	assert.Equal(t, "job_new", byTag[0].ID)

	byCompany, err := repo.SearchJobs(context.Background(), "chainworks", model.JobFilters{})
	require.NoError(t, err)
	require.Len(t, byCompany, 1)
	assert.Equal(t, "job_old", byCompany[0].ID)

	byFilters, err := repo.SearchJobs(context.Background(), "", model.JobFilters{Type: "contract", Remote: &remote})
	require.NoError(t, err)
	require.Len(t, byFilters, 1)
	assert.Equal(t, "job_featured", byFilters[0].ID)

	byLocation, err := repo.SearchJobs(context.Background(), "", model.JobFilters{Location: "new york"})
	require.NoError(t, err)
	require.Len(t, byLocation, 1)

	none, err := repo.SearchJobs(context.Background(), "cobol", model.JobFilters{})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryJobRepository_GetJobByID(t *testing.T) {
	repo := NewMemoryJobRepository(seedJobs())

	job, err := repo.GetJobByID(context.Background(), "job_new")
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", job.Title)

	_, err = repo.GetJobByID(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrJobNotFound)
}

func TestMemoryJobRepository_IncrementApplicationCount(t *testing.T) {
	repo := NewMemoryJobRepository(seedJobs())

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.IncrementApplicationCount(context.Background(), "job_new"))
	}

	job, err := repo.GetJobByID(context.Background(), "job_new")
	require.NoError(t, err)
	assert.Equal(t, 3, job.ApplicationCount)

	assert.ErrorIs(t, repo.IncrementApplicationCount(context.Background(), "missing"), model.ErrJobNotFound)
}

func TestMemoryJobRepository_VerifyPayment(t *testing.T) {
	repo := NewMemoryJobRepository(seedJobs())

	require.NoError(t, repo.VerifyPayment(context.Background(), "0xabc", "job_new"))

	job, err := repo.GetJobByID(context.Background(), "job_new")
	require.NoError(t, err)
	assert.True(t, job.PaymentVerified)
	assert.Equal(t, "0xabc", job.PaymentTxHash)

	assert.ErrorIs(t, repo.VerifyPayment(context.Background(), "0xabc", "missing"), model.ErrJobNotFound)
}

func TestMemoryJobRepository_SeedIsCopied(t *testing.T) {
	seed := seedJobs()
	repo := NewMemoryJobRepository(seed)

	_, err := repo.CreateJob(context.Background(), model.Job{ID: "job_extra"})
	require.NoError(t, err)

	assert.Len(t, seed, 3)
	jobs, err := repo.GetAllJobs(context.Background())
	require.NoError(t, err)
	assert.Len(t, jobs, 4)
}

func TestDemoJobs(t *testing.T) {
	jobs := DemoJobs()

	require.Len(t, jobs, 3)
	featured := 0
	for _, job := range jobs {
		assert.NotEmpty(t, job.ID)
		assert.NotEmpty(t, job.Title)
		assert.NotZero(t, job.PostedBy.Fid)
		if job.Featured {
			featured++
		}
	}
	assert.Equal(t, 1, featured)
}
