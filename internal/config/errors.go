package config

import "errors"

// Validation errors for required connection fields.
var (
	ErrTargetIPRequired   = errors.New("server address is required")
	ErrTargetUserRequired = errors.New("ssh username is required")
	ErrSSHKeyPathRequired = errors.New("ssh private key path is required")
)
