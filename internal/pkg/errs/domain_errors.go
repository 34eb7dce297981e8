package errs

// Categories used to mark domain sentinels so the transport layer can pick a
// response shape without knowing every individual error.
var (
	// Field-level input problems, reported as a field -> messages map.
	ErrValidation = New("validation error")
	// Cross-field rule violations, reported as a flat list.
	ErrBusinessRule = New("business rule violation")
	// Identifier did not resolve.
	ErrNotFound = New("not found")
	// Malformed query parameters.
	ErrInvalidRequest = New("invalid request")
)

// Category returns the first category marker carried by err, or nil.
func Category(err error) error {
	for _, c := range []error{ErrValidation, ErrBusinessRule, ErrNotFound, ErrInvalidRequest} {
		if Is(err, c) {
			return c
		}
	}
	return nil
}
