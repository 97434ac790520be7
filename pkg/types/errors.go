package types

import "errors"

var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrAdminUserNotFound  = errors.New("admin user not found")
)
