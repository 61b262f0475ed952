package hrm

import "errors"

var (
	ErrDocumentNotFound = errors.New("no document in durable slot")
	ErrCompanyNotFound  = errors.New("company not found")
	ErrClientNotFound   = errors.New("client not found")
)
