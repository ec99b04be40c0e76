package domain

import "errors"

// Failure categories for one watch run. Fatal: ErrFetch at listing or
// download level, ErrParse at page level, ErrSecretNotFound when email is
// enabled. Everything else degrades and is surfaced through logging.
var (
	ErrFetch            = errors.New("fetch failed")
	ErrParse            = errors.New("listing parse failed")
	ErrStoreUnavailable = errors.New("seen store unavailable")
	ErrSecretNotFound   = errors.New("secret not found")
	ErrNotify           = errors.New("notification failed")
)
