package submit

// RejectionError reports a submission the backend refused. Message is the
// user-visible error text taken verbatim from the response exception field.
type RejectionError struct {
	Message string
}

// Error implements the error interface.
func (e *RejectionError) Error() string {
	if e == nil || e.Message == "" {
		return "submit: rejected"
	}
	return e.Message
}

// Rejection returns the inline error text. Callers that should not depend on
// this package can detect rejections through an interface assertion on this
// method.
func (e *RejectionError) Rejection() string {
	if e == nil {
		return ""
	}
	return e.Message
}
