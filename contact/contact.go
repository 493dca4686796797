// Package contact submits contact-form messages to an external mail relay
package contact

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Submission is the payload accepted by the relay
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

const (
	MinNameLength    = 2
	MinMessageLength = 10
)

var (
	ErrValidation = errors.New("invalid submission")
	ErrConnection = errors.New("connection error, please try again")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError lists every rule a submission breaks
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid submission: " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Validate applies the relay's acceptance rules locally
func Validate(s Submission) error {
	var problems []string
	if utf8.RuneCountInString(strings.TrimSpace(s.Name)) < MinNameLength {
		problems = append(problems, "name must be at least 2 characters")
	}
	if !emailPattern.MatchString(s.Email) {
		problems = append(problems, "invalid email")
	}
	if utf8.RuneCountInString(strings.TrimSpace(s.Message)) < MinMessageLength {
		problems = append(problems, "message must be at least 10 characters")
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
