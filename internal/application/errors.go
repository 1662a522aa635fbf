package application

import "errors"

// Caller-facing error taxonomy. Handlers translate these 1:1 to HTTP statuses
// with errors.Is; nothing here is process-fatal.
var (
	// Conflicts
	ErrUserAlreadyExists    = errors.New("email or username already registered")
	ErrProfileAlreadyExists = errors.New("user already has a profile")

	// Preconditions / ownership
	ErrNoProfile          = errors.New("user has no profile")
	ErrUnauthorizedAccess = errors.New("resource does not belong to the caller's profile")

	// Not found, one per aggregate so boundaries can answer precisely
	ErrProfileNotFound        = errors.New("profile not found")
	ErrWorkExperienceNotFound = errors.New("work experience not found")
	ErrProjectNotFound        = errors.New("project not found")
	ErrTechnologyNotFound     = errors.New("technology not found")
	ErrClientNotFound         = errors.New("client not found")
	ErrSocialNotFound         = errors.New("social link not found")
	ErrUserNotFound           = errors.New("user not found")

	// Uploads
	ErrNotAnImage = errors.New("file must be an image")
)
