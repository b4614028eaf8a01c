package maintenance

import "errors"

// Sentinel errors for the calculation core. Callers match with errors.Is;
// wrapped messages carry the offending value.
var (
	// ErrUnknownCheckType is returned when a check code outside A/B/C/D is
	// requested from the limit registry. Never silently defaulted.
	ErrUnknownCheckType = errors.New("unknown check type")

	// ErrInvalidDateFormat is returned when a snapshot date cannot be parsed
	// as YYYY-MM-DD. The core does not guess or repair malformed dates.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrMissingField is returned when a required snapshot attribute is
	// absent. The core does not substitute defaults for operational data.
	ErrMissingField = errors.New("missing required field")
)
