package wizard

import "errors"

// Validation errors for the interactive front-ends.
var (
	errAddressRequired  = errors.New("server address is required")
	errAddressInvalid   = errors.New("invalid server address (expected an IP or hostname without spaces)")
	errUserRequired     = errors.New("SSH username is required")
	errUserInvalid      = errors.New("SSH username must not contain spaces")
	errKeyPathRequired  = errors.New("SSH private key path is required")
	errUserNameRequired = errors.New("username is required")
	errUserNameInvalid  = errors.New("username must be 1-32 lowercase alphanumeric characters, underscores or hyphens, starting with a letter or underscore")
)
