package entity

import (
	"fmt"
	"strings"
)

const maxBioLength = 500

// Profile is the single per-user aggregate root owning all portfolio content.
// Sub-resources reference it through ProfileID and never another user's.
type Profile struct {
	Audit
	UserID       int64  `json:"user_id"`
	Name         string `json:"name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	CurrentTitle string `json:"current_title,omitempty"`
	BioSummary   string `json:"bio_summary,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Location     string `json:"location,omitempty"`
	PhotoURL     string `json:"photo_url,omitempty"`
}

// NewProfile normalizes and validates so a Profile never exists in memory with
// dirty data: names are collapsed to single spaces and title-cased, emails are
// lowercased.
func NewProfile(userID int64, name, lastName, email string) (*Profile, error) {
	p := &Profile{
		Audit:    Audit{IsActive: true},
		UserID:   userID,
		Name:     name,
		LastName: lastName,
		Email:    email,
	}
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Normalize cleans the name parts and lowercases the email. Update paths call
// it on the merged record before Validate, mirroring construction.
func (p *Profile) Normalize() {
	p.Name = titleCase(p.Name)
	p.LastName = titleCase(p.LastName)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
}

// Validate enforces the profile invariants; update paths re-run it on the
// merged record so create and update share the same rules.
func (p *Profile) Validate() error {
	if p.Name == "" || p.LastName == "" {
		return fmt.Errorf("%w: name and last name are required", ErrInvalid)
	}
	if len(p.BioSummary) > maxBioLength {
		return fmt.Errorf("%w: bio summary cannot exceed %d characters", ErrInvalid, maxBioLength)
	}
	return nil
}

// FullName joins the normalized name parts.
func (p *Profile) FullName() string {
	return p.Name + " " + p.LastName
}

// titleCase collapses runs of whitespace and capitalizes each word, so
// "  juan   carlos " becomes "Juan Carlos".
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
