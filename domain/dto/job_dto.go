package dto

import "jobcast/domain/model"

// CreateJobRequest is the POST /api/jobs body. Requirements, benefits and tags
// arrive as free text and are split on commas/newlines into trimmed lists.
type CreateJobRequest struct {
	Title          string           `json:"title"`
	Company        string           `json:"company"`
	CompanyLogoURL string           `json:"companyLogoUrl,omitempty"`
	Location       string           `json:"location"`
	Type           string           `json:"type"`
	Remote         bool             `json:"remote"`
	SalaryMin      string           `json:"salaryMin,omitempty"`
	SalaryMax      string           `json:"salaryMax,omitempty"`
	SalaryCurrency string           `json:"salaryCurrency,omitempty"`
	Description    string           `json:"description"`
	Requirements   string           `json:"requirements,omitempty"`
	Benefits       string           `json:"benefits,omitempty"`
	Tags           string           `json:"tags,omitempty"`
	ApplicationURL string           `json:"applicationUrl,omitempty"`
	Featured       bool             `json:"featured"`
	PostedBy       *model.JobPoster `json:"postedBy"`
	PaymentTxHash  string           `json:"paymentTxHash"`
	PaymentAmount  string           `json:"paymentAmount,omitempty"`
	PaymentToken   string           `json:"paymentToken,omitempty"`
}

// JobSearchRequest carries the GET /api/jobs query parameters.
type JobSearchRequest struct {
	Query    string
	Type     string
	Remote   *bool
	Location string
}

// JobActionRequest is the POST /api/jobs/:id body.
type JobActionRequest struct {
	Action string `json:"action"`
}
