package persistence

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobcast/domain/model"
)

var jobColumnList = []string{
	"id", "title", "company", "company_logo_url", "location", "type", "remote",
	"salary_min", "salary_max", "salary_currency", "description",
	"requirements", "benefits", "tags", "application_url", "featured",
	"posted_by_fid", "posted_by_username", "posted_by_display_name", "posted_by_pfp_url",
	"posted_at", "expires_at", "application_count",
	"payment_tx_hash", "payment_amount", "payment_token", "payment_verified",
}

func jobRow(postedAt time.Time) []driver.Value {
	return []driver.Value{
		"job_1", "Backend Engineer", "Jobcast Labs", nil, "Remote", "full-time", true,
		int64(120000), int64(160000), "USD", "Build the backend",
		"{Go}", "{}", "{golang}", nil, false,
		int64(3621), "horsefacts", nil, nil,
		postedAt, nil, 2,
		"0xabc", nil, nil, true,
	}
}

func TestJobRepository_GetJobByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewJobRepository(db)
	postedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectPrepare(regexp.QuoteMeta(`SELECT ` + jobColumns + ` FROM jobs WHERE id = $1 AND status = 'active'`)).
		ExpectQuery().WithArgs("job_1").
		WillReturnRows(sqlmock.NewRows(jobColumnList).AddRow(jobRow(postedAt)...))

	job, err := repo.GetJobByID(context.Background(), "job_1")

	require.NoError(t, err)
	assert.Equal(t, "job_1", job.ID)
	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, int64(120000), job.SalaryMin)
	assert.Equal(t, int64(3621), job.PostedBy.Fid)
	assert.Equal(t, []string{"Go"}, job.Requirements)
	assert.Equal(t, []string{}, job.Benefits)
	assert.True(t, job.PaymentVerified)
	assert.Nil(t, job.Expires)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_GetJobByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewJobRepository(db)

	mock.ExpectPrepare(regexp.QuoteMeta(`SELECT ` + jobColumns + ` FROM jobs WHERE id = $1 AND status = 'active'`)).
		ExpectQuery().WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(jobColumnList))

	_, err = repo.GetJobByID(context.Background(), "missing")

	assert.ErrorIs(t, err, model.ErrJobNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_GetAllJobs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewJobRepository(db)
	postedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+jobColumns+` FROM jobs WHERE `+activeJobs+` ORDER BY featured DESC, posted_at DESC`)).
		WillReturnRows(sqlmock.NewRows(jobColumnList).AddRow(jobRow(postedAt)...))

	jobs, err := repo.GetAllJobs(context.Background())

	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "job_1", jobs[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_SearchJobs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewJobRepository(db)
	postedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	remote := true

	mock.ExpectQuery(`SELECT .+ FROM jobs WHERE .+ ILIKE .+ AND type = .+ AND remote = .+ ORDER BY featured DESC, posted_at DESC`).
		WithArgs("%golang%", "full-time", true).
		WillReturnRows(sqlmock.NewRows(jobColumnList).AddRow(jobRow(postedAt)...))

	jobs, err := repo.SearchJobs(context.Background(), "golang", model.JobFilters{Type: "full-time", Remote: &remote})

	require.NoError(t, err)
	require.Len(t, jobs, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_CreateJob(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewJobRepository(db)
	postedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	expires := postedAt.AddDate(0, 0, 30)

	job := model.Job{
		ID:             "job_1",
		Title:          "Backend Engineer",
		Company:        "Jobcast Labs",
		Location:       "Remote",
		Type:           "full-time",
		Remote:         true,
		SalaryCurrency: "USD",
		Description:    "Build the backend",
		Requirements:   []string{"Go"},
		Benefits:       []string{},
		Tags:           []string{"golang"},
		PostedBy:       model.JobPoster{Fid: 3621, Username: "horsefacts"},
		PostedAt:       postedAt,
		Expires:        &expires,
		PaymentTxHash:  "0xabc",
	}

	mock.ExpectPrepare(`INSERT INTO jobs`).
		ExpectExec().
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateJob(context.Background(), job)

	require.NoError(t, err)
	assert.Equal(t, "job_1", created.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_IncrementApplicationCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewJobRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE jobs SET application_count = application_count + 1 WHERE id = $1 AND status = 'active'`)).
		WithArgs("job_1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.IncrementApplicationCount(context.Background(), "job_1"))

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE jobs SET application_count = application_count + 1 WHERE id = $1 AND status = 'active'`)).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.IncrementApplicationCount(context.Background(), "missing"), model.ErrJobNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_VerifyPayment(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewJobRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE jobs SET payment_verified = TRUE, payment_tx_hash = $1 WHERE id = $2`)).
		WithArgs("0xabc", "job_1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.VerifyPayment(context.Background(), "0xabc", "job_1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
