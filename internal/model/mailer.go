package model

import "context"

// Mailer delivers reset-code messages. An implementation may be
// unconfigured, in which case SendResetCode returns a ConfigurationError.
type Mailer interface {
	SendResetCode(ctx context.Context, to, name, code string) error
}
