package field

import "errors"

var (
	// ErrMissingURL signals a widget constructed without an endpoint URL.
	ErrMissingURL = errors.New("field: endpoint url is required")
	// ErrMissingBuilder signals a widget constructed without a params builder.
	ErrMissingBuilder = errors.New("field: params builder is required")
	// ErrMissingSubmitter signals a commit attempted without a submitter.
	ErrMissingSubmitter = errors.New("field: submitter is required")
	// ErrNotEditable signals activation of a widget whose edit permission is
	// false.
	ErrNotEditable = errors.New("field: not editable")
)
