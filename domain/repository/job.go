package repository

import (
	"context"

	"jobcast/domain/model"
)

// IJob defines the data access contract for job listings. Implementations:
// Postgres (primary), in-memory (demo fallback), and a wrapper combining both.
type IJob interface {
	GetAllJobs(ctx context.Context) ([]model.Job, error)
	GetJobByID(ctx context.Context, id string) (*model.Job, error)
	SearchJobs(ctx context.Context, query string, filters model.JobFilters) ([]model.Job, error)
	CreateJob(ctx context.Context, job model.Job) (*model.Job, error)
	IncrementApplicationCount(ctx context.Context, id string) error
	// VerifyPayment marks the job's payment as verified and records the hash.
	VerifyPayment(ctx context.Context, txHash, jobID string) error
}
