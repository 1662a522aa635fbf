package entity

import (
	"fmt"
	"strings"
)

// Client is a testimonial/reference entry on the portfolio.
type Client struct {
	Audit
	ProfileID      int64  `json:"profile_id"`
	Name           string `json:"name"`
	Company        string `json:"company,omitempty"`
	Feedback       string `json:"feedback,omitempty"`
	ClientPhotoURL string `json:"client_photo_url,omitempty"`
	ProjectLink    string `json:"project_link,omitempty"`
}

func NewClient(profileID int64, name string) (*Client, error) {
	c := &Client{
		Audit:     Audit{IsActive: true},
		ProfileID: profileID,
		Name:      strings.TrimSpace(name),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalid)
	}
	return nil
}

func (c *Client) OwnerProfileID() int64 { return c.ProfileID }
