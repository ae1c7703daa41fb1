package styling

import "errors"

// Error codes carried by apperrors.AppError values returned from this package.
const (
	CodeInvalidMeasurement = "invalid_measurement"
	CodeInvalidInput       = "invalid_input"
	CodeInvalidCategory    = "invalid_category"
	CodeUnavailable        = "collaborator_unavailable"
	CodeSchemaMismatch     = "schema_mismatch"
	CodePersistence        = "persistence_error"
)

// ErrSchemaMismatch is returned by stores when a record's field set differs from the established layout.
var ErrSchemaMismatch = errors.New("record fields do not match established schema")

// UnavailableText is rendered in place of a section whose collaborator failed.
const UnavailableText = "Advice unavailable for this section."
