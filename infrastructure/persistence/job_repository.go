package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"jobcast/domain/model"
	"jobcast/domain/repository"
)

const jobColumns = `id, title, company, company_logo_url, location, type, remote, salary_min, salary_max, salary_currency, description, requirements, benefits, tags, application_url, featured, posted_by_fid, posted_by_username, posted_by_display_name, posted_by_pfp_url, posted_at, expires_at, application_count, payment_tx_hash, payment_amount, payment_token, payment_verified`

// Listings only ever show active, unexpired rows.
const activeJobs = `status = 'active' AND (expires_at IS NULL OR expires_at > NOW())`

// JobRepository implements job persistence on PostgreSQL (native sql.DB).
type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) repository.IJob { return &JobRepository{db: db} }

func (r *JobRepository) GetAllJobs(ctx context.Context) ([]model.Job, error) {
	q := fmt.Sprintf(`SELECT %s FROM jobs WHERE %s ORDER BY featured DESC, posted_at DESC`, jobColumns, activeJobs)
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func (r *JobRepository) GetJobByID(ctx context.Context, id string) (*model.Job, error) {
	q := fmt.Sprintf(`SELECT %s FROM jobs WHERE id = $1 AND status = 'active'`, jobColumns)
	stmt, err := r.db.PrepareContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	job, err := scanJob(stmt.QueryRowContext(ctx, id))
	if err == sql.ErrNoRows {
		return nil, model.ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (r *JobRepository) SearchJobs(ctx context.Context, query string, filters model.JobFilters) ([]model.Job, error) {
	conds := []string{activeJobs}
	args := []interface{}{}
	n := 1

	if query != "" {
		pattern := "%" + query + "%"
		conds = append(conds, fmt.Sprintf(`(title ILIKE $%d OR company ILIKE $%d OR description ILIKE $%d OR EXISTS (SELECT 1 FROM unnest(tags) AS t WHERE t ILIKE $%d))`, n, n, n, n))
		args = append(args, pattern)
		n++
	}
	if filters.Type != "" {
		conds = append(conds, fmt.Sprintf(`type = $%d`, n))
		args = append(args, filters.Type)
		n++
	}
	if filters.Remote != nil {
		conds = append(conds, fmt.Sprintf(`remote = $%d`, n))
		args = append(args, *filters.Remote)
		n++
	}
	if filters.Location != "" {
		conds = append(conds, fmt.Sprintf(`location ILIKE $%d`, n))
		args = append(args, "%"+filters.Location+"%")
		n++
	}

	q := fmt.Sprintf(`SELECT %s FROM jobs WHERE %s ORDER BY featured DESC, posted_at DESC`, jobColumns, strings.Join(conds, " AND "))
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func (r *JobRepository) CreateJob(ctx context.Context, job model.Job) (*model.Job, error) {
	q := `INSERT INTO jobs (id, title, company, company_logo_url, location, type, remote, salary_min, salary_max, salary_currency, description, requirements, benefits, tags, application_url, featured, posted_by_fid, posted_by_username, posted_by_display_name, posted_by_pfp_url, posted_at, expires_at, application_count, payment_tx_hash, payment_amount, payment_token, payment_verified, status)
	      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27,'active')`
	stmt, err := r.db.PrepareContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx,
		job.ID, job.Title, job.Company, nullString(job.CompanyLogoURL), job.Location, job.Type, job.Remote,
		nullInt(job.SalaryMin), nullInt(job.SalaryMax), job.SalaryCurrency, job.Description,
		pq.Array(job.Requirements), pq.Array(job.Benefits), pq.Array(job.Tags),
		nullString(job.ApplicationURL), job.Featured,
		job.PostedBy.Fid, nullString(job.PostedBy.Username), nullString(job.PostedBy.DisplayName), nullString(job.PostedBy.PfpURL),
		job.PostedAt, job.Expires, job.ApplicationCount,
		nullString(job.PaymentTxHash), nullString(job.PaymentAmount), nullString(job.PaymentToken), job.PaymentVerified,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *JobRepository) IncrementApplicationCount(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE jobs SET application_count = application_count + 1 WHERE id = $1 AND status = 'active'`, id)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return model.ErrJobNotFound
	}
	return nil
}

func (r *JobRepository) VerifyPayment(ctx context.Context, txHash, jobID string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE jobs SET payment_verified = TRUE, payment_tx_hash = $1 WHERE id = $2`, txHash, jobID)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return model.ErrJobNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanJob(row rowScanner) (*model.Job, error) {
	var (
		job                                 model.Job
		logoURL, applicationURL             sql.NullString
		username, displayName, pfpURL       sql.NullString
		salaryMin, salaryMax                sql.NullInt64
		txHash, paymentAmount, paymentToken sql.NullString
		expires                             sql.NullTime
		requirements, benefits, tags        pq.StringArray
	)
	err := row.Scan(
		&job.ID, &job.Title, &job.Company, &logoURL, &job.Location, &job.Type, &job.Remote,
		&salaryMin, &salaryMax, &job.SalaryCurrency, &job.Description,
		&requirements, &benefits, &tags,
		&applicationURL, &job.Featured,
		&job.PostedBy.Fid, &username, &displayName, &pfpURL,
		&job.PostedAt, &expires, &job.ApplicationCount,
		&txHash, &paymentAmount, &paymentToken, &job.PaymentVerified,
	)
	if err != nil {
		return nil, err
	}
	job.CompanyLogoURL = logoURL.String
	job.ApplicationURL = applicationURL.String
	job.PostedBy.Username = username.String
	job.PostedBy.DisplayName = displayName.String
	job.PostedBy.PfpURL = pfpURL.String
	job.SalaryMin = salaryMin.Int64
	job.SalaryMax = salaryMax.Int64
	job.PaymentTxHash = txHash.String
	job.PaymentAmount = paymentAmount.String
	job.PaymentToken = paymentToken.String
	if expires.Valid {
		t := expires.Time
		job.Expires = &t
	}
	job.Requirements = []string(requirements)
	job.Benefits = []string(benefits)
	job.Tags = []string(tags)
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	if job.Benefits == nil {
		job.Benefits = []string{}
	}
	if job.Tags == nil {
		job.Tags = []string{}
	}
	return &job, nil
}

func scanJobs(rows *sql.Rows) ([]model.Job, error) {
	jobs := []model.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: v != 0}
}
