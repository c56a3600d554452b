package model

import "time"

// Supported job types and salary currencies. Anything else is rejected at the
// handler layer.
var (
	SupportedJobTypes   = []string{"full-time", "part-time", "contract", "internship"}
	SupportedCurrencies = []string{"USD", "EUR", "GBP", "ETH"}
)

const (
	MaxTitleLength        = 100
	MaxDescriptionLength  = 2000
	MaxRequirementsLength = 1000
	MaxBenefitsLength     = 1000
	JobExpirationDays     = 30
)

// JobPoster identifies the Farcaster account that posted a job.
type JobPoster struct {
	Fid         int64  `json:"fid"`
	Username    string `json:"username,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	PfpURL      string `json:"pfpUrl,omitempty"`
}

// Job is a single job listing.
type Job struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Company         string     `json:"company"`
	CompanyLogoURL  string     `json:"companyLogoUrl,omitempty"`
	Location        string     `json:"location"`
	Type            string     `json:"type"`
	Remote          bool       `json:"remote"`
	SalaryMin       int64      `json:"salaryMin,omitempty"`
	SalaryMax       int64      `json:"salaryMax,omitempty"`
	SalaryCurrency  string     `json:"salaryCurrency"`
	Description     string     `json:"description"`
	Requirements    []string   `json:"requirements"`
	Benefits        []string   `json:"benefits"`
	Tags            []string   `json:"tags"`
	PostedBy        JobPoster  `json:"postedBy"`
	PostedAt        time.Time  `json:"postedAt"`
	ApplicationURL  string     `json:"applicationUrl,omitempty"`
	ApplicationCount int       `json:"applicationCount"`
	Featured        bool       `json:"featured"`
	PaymentTxHash   string     `json:"paymentTxHash,omitempty"`
	PaymentAmount   string     `json:"paymentAmount,omitempty"`
	PaymentToken    string     `json:"paymentToken,omitempty"`
	PaymentVerified bool       `json:"paymentVerified"`
	Expires         *time.Time `json:"expires,omitempty"`
}

// JobFilters narrows a job search. Zero values mean "no filter".
type JobFilters struct {
	Type     string
	Remote   *bool
	Location string
}
