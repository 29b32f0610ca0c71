package homepagecontroller

import "errors"

var (
	ErrSectionNotFound = errors.New("section not found")
	ErrNoActiveSection = errors.New("no section selected")
	ErrNoCategoryEdit  = errors.New("no category row in edit mode")
)
