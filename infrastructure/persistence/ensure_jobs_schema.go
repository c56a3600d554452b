package persistence

import (
	"database/sql"

	"jobcast/infrastructure/logger"
)

// EnsureJobsSchema creates the jobs table when missing. Column names mirror the
// hosted store's snake_case schema.
func EnsureJobsSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS jobs (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			company TEXT NOT NULL,
			company_logo_url TEXT,
			location TEXT NOT NULL,
			type TEXT NOT NULL,
			remote BOOLEAN NOT NULL DEFAULT FALSE,
			salary_min BIGINT,
			salary_max BIGINT,
			salary_currency TEXT NOT NULL DEFAULT 'USD',
			description TEXT NOT NULL,
			requirements TEXT[] NOT NULL DEFAULT '{}',
			benefits TEXT[] NOT NULL DEFAULT '{}',
			tags TEXT[] NOT NULL DEFAULT '{}',
			application_url TEXT,
			featured BOOLEAN NOT NULL DEFAULT FALSE,
			posted_by_fid BIGINT NOT NULL,
			posted_by_username TEXT,
			posted_by_display_name TEXT,
			posted_by_pfp_url TEXT,
			posted_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			expires_at TIMESTAMPTZ,
			application_count INTEGER NOT NULL DEFAULT 0,
			payment_tx_hash TEXT,
			payment_amount TEXT,
			payment_token TEXT,
			payment_verified BOOLEAN NOT NULL DEFAULT FALSE,
			status TEXT NOT NULL DEFAULT 'active'
		)`,
		`CREATE INDEX IF NOT EXISTS idx_jobs_listing ON jobs (featured DESC, posted_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_jobs_status ON jobs (status)`,
	}
	for _, q := range stmts {
		if _, err := db.Exec(q); err != nil {
			logger.GetLogger().WithField("error", err).Error("failed ensuring jobs schema")
			return err
		}
	}
	return nil
}
