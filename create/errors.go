package create

// ValidationError reports a precondition the pipeline refuses to proceed
// past: a non-empty destination or a template that does not exist.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }
