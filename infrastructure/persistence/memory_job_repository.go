package persistence

import (
	"context"
	"sort"
	"strings"
	"sync"

	"jobcast/domain/model"
	"jobcast/domain/repository"
)

// MemoryJobRepository keeps jobs in process memory. It backs the demo fallback
// and tests; contents are lost on restart. Constructed per instance, never a
// package-level singleton.
type MemoryJobRepository struct {
	mu   sync.Mutex
	jobs []model.Job
}

func NewMemoryJobRepository(seed []model.Job) *MemoryJobRepository {
	jobs := make([]model.Job, len(seed))
	copy(jobs, seed)
	return &MemoryJobRepository{jobs: jobs}
}

var _ repository.IJob = (*MemoryJobRepository)(nil)

func (r *MemoryJobRepository) GetAllJobs(ctx context.Context) ([]model.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return sortJobs(r.jobs), nil
}

func (r *MemoryJobRepository) GetJobByID(ctx context.Context, id string) (*model.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.jobs {
		if r.jobs[i].ID == id {
			job := r.jobs[i]
			return &job, nil
		}
	}
	return nil, model.ErrJobNotFound
}

func (r *MemoryJobRepository) SearchJobs(ctx context.Context, query string, filters model.JobFilters) ([]model.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	filtered := make([]model.Job, 0, len(r.jobs))
	term := strings.ToLower(query)
	for _, job := range r.jobs {
		if term != "" && !matchesQuery(job, term) {
			continue
		}
		if filters.Type != "" && job.Type != filters.Type {
			continue
		}
		if filters.Remote != nil && job.Remote != *filters.Remote {
			continue
		}
		if filters.Location != "" && !strings.Contains(strings.ToLower(job.Location), strings.ToLower(filters.Location)) {
			continue
		}
		filtered = append(filtered, job)
	}
	return sortJobs(filtered), nil
}

func (r *MemoryJobRepository) CreateJob(ctx context.Context, job model.Job) (*model.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs = append(r.jobs, job)
	return &job, nil
}

func (r *MemoryJobRepository) IncrementApplicationCount(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.jobs {
		if r.jobs[i].ID == id {
			r.jobs[i].ApplicationCount++
			return nil
		}
	}
	return model.ErrJobNotFound
}

func (r *MemoryJobRepository) VerifyPayment(ctx context.Context, txHash, jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.jobs {
		if r.jobs[i].ID == jobID {
			r.jobs[i].PaymentVerified = true
			r.jobs[i].PaymentTxHash = txHash
			return nil
		}
	}
	return model.ErrJobNotFound
}

func matchesQuery(job model.Job, term string) bool {
	if strings.Contains(strings.ToLower(job.Title), term) ||
		strings.Contains(strings.ToLower(job.Company), term) ||
		strings.Contains(strings.ToLower(job.Description), term) {
		return true
	}
	for _, tag := range job.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// sortJobs orders featured listings first, then newest first. The sort is
// stable so ties keep their insertion order.
func sortJobs(jobs []model.Job) []model.Job {
	out := make([]model.Job, len(jobs))
	copy(out, jobs)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Featured != out[j].Featured {
			return out[i].Featured
		}
		return out[i].PostedAt.After(out[j].PostedAt)
	})
	return out
}
