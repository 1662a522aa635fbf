package entity

import (
	"fmt"
	"strings"
	"time"
)

// WorkExperience is a position held by the profile owner. Projects may link
// back to it through Project.WorkExperienceID.
type WorkExperience struct {
	Audit
	ProfileID   int64      `json:"profile_id"`
	JobTitle    string     `json:"job_title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Description string     `json:"description,omitempty"`
}

func NewWorkExperience(profileID int64, jobTitle, company string, startDate time.Time) (*WorkExperience, error) {
	w := &WorkExperience{
		Audit:     Audit{IsActive: true},
		ProfileID: profileID,
		JobTitle:  strings.TrimSpace(jobTitle),
		Company:   strings.TrimSpace(company),
		StartDate: startDate,
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *WorkExperience) Validate() error {
	if w.JobTitle == "" {
		return fmt.Errorf("%w: job title is required", ErrInvalid)
	}
	if w.Company == "" {
		return fmt.Errorf("%w: company is required", ErrInvalid)
	}
	if w.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required", ErrInvalid)
	}
	if w.EndDate != nil && w.EndDate.Before(w.StartDate) {
		return fmt.Errorf("%w: end date cannot be before start date", ErrInvalid)
	}
	return nil
}

func (w *WorkExperience) OwnerProfileID() int64 { return w.ProfileID }
