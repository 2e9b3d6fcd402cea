package core

// error_messages.go maps technical errors to support codes.
//
// Codes are reported alongside the raw error in API failure envelopes and in
// server logs so a failed submission can be traced quickly:
//
//	DB001-DB006   database constraint and connectivity problems
//	UPL001-UPL007 rejected or interrupted submissions
//	VAL001        record rejected by an installed validator
//	ERR000        anything else; check the logs for the original error
//
// Patterns are matched case-insensitively with strings.Contains and the first
// match wins, so specific patterns precede general ones.

import "strings"

// UserMessage is the user-facing description of an error.
type UserMessage struct {
	Message string // What happened
	Action  string // What to do about it
	Code    string // Support reference
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	// Database
	{"duplicate key", UserMessage{"A record with this ID already exists", "Please submit the form again", "DB001"}},
	{"violates not-null", UserMessage{"A required column was empty", "Check the database schema matches the application", "DB002"}},
	{"does not exist", UserMessage{"The employees table is missing", "Run the database migrations", "DB003"}},
	{"connection refused", UserMessage{"Unable to connect to database", "Please try again in a few moments", "DB004"}},
	{"connection reset", UserMessage{"Database connection was interrupted", "Please try again", "DB005"}},
	{"failed to connect", UserMessage{"Unable to connect to database", "Please try again in a few moments", "DB004"}},
	{"timeout", UserMessage{"Operation timed out", "Please try again later", "DB006"}},

	// Submissions
	{"unexpected file field", UserMessage{"The form contained an unknown attachment field", "Reload the form and submit again", "UPL001"}},
	{"too many files", UserMessage{"Too many files were attached to one field", "Remove some files and submit again", "UPL002"}},
	{"too many submissions", UserMessage{"The system is busy processing other submissions", "Please wait a moment and try again", "UPL003"}},
	{"malformed multipart", UserMessage{"The form could not be read", "Reload the form and submit again", "UPL004"}},
	{"request body too large", UserMessage{"The attachments exceed the maximum upload size", "Attach smaller files", "UPL005"}},
	{"form value too large", UserMessage{"A text field is too long", "Shorten the field and submit again", "UPL006"}},
	{"context canceled", UserMessage{"Request was cancelled", "Please try again", "UPL007"}},
	{"context deadline exceeded", UserMessage{"Request timed out", "Please try again", "DB006"}},

	// Validation
	{"invalid record", UserMessage{"Some submitted values were rejected", "Fill in the required fields and submit again", "VAL001"}},
}

var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError returns the user message for the first pattern err matches,
// or the ERR000 fallback.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}
