package contact

import (
	"context"
	"errors"
	"strings"
)

// Status is the user-visible submission state
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// Submitter is satisfied by *Client
type Submitter interface {
	Submit(ctx context.Context, s Submission) (*Response, error)
}

// Form tracks one contact form's submission state
type Form struct {
	submitter Submitter
	status    Status
	message   string
}

func NewForm(s Submitter) *Form {
	return &Form{submitter: s}
}

// Submit validates locally, sends, and records the outcome
// The returned error is the same one reflected in Status and ErrorMessage
func (f *Form) Submit(ctx context.Context, s Submission) error {
	f.status = StatusSubmitting
	f.message = ""

	if err := Validate(s); err != nil {
		var ve *ValidationError
		errors.As(err, &ve)
		f.fail(strings.Join(ve.Problems, "; "))
		return err
	}

	_, err := f.submitter.Submit(ctx, s)
	var re *RelayError
	switch {
	case err == nil:
		f.status = StatusSuccess
	case errors.As(err, &re):
		f.fail(re.Message)
	default:
		f.fail(ErrConnection.Error())
	}
	return err
}

func (f *Form) fail(msg string) {
	f.status = StatusError
	f.message = msg
}

// Reset returns to idle, clearing any error
func (f *Form) Reset() {
	f.status = StatusIdle
	f.message = ""
}

func (f *Form) Status() Status { return f.status }

func (f *Form) ErrorMessage() string { return f.message }

func (f *Form) Submitting() bool { return f.status == StatusSubmitting }
