package errs

import "errors"

var (
	InvalidInput  = errors.New("invalid submission payload")
	InvalidAction = errors.New(`action must be either "accepted" or "denied"`)
	NotFound      = errors.New("submission not found")
)
