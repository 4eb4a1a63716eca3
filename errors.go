package abnffsm

// IsKind reports whether err is a *ValidationError of the given kind. Safe
// to call with any error, including nil.
func IsKind(err error, kind ErrorKind) bool {
	ve, ok := err.(*ValidationError)
	return ok && ve != nil && ve.Kind == kind
}

// AsValidationError extracts the *ValidationError from err, if any.
func AsValidationError(err error) (*ValidationError, bool) {
	ve, ok := err.(*ValidationError)
	return ve, ok
}
