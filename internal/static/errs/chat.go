package errs

import "errors"

var (
	MemberNotFound   = errors.New("member not found")
	PermissionDenied = errors.New("missing permissions on the chat platform")
)
