// Package errors classifies CLI failures so the formatter can attach a
// useful hint.
package errors

import (
	stderrors "errors"
	"io/fs"
	"strings"
)

type ErrorKind string

const (
	ErrorKindConfig   ErrorKind = "config"
	ErrorKindNotFound ErrorKind = "not-found"
	ErrorKindOther    ErrorKind = "other"
)

type ClassifiedError struct {
	Kind    ErrorKind `json:"kind" yaml:"kind"`
	Message string    `json:"message" yaml:"message"`
	Hint    string    `json:"hint,omitempty" yaml:"hint,omitempty"` // User-friendly suggestion
	Raw     error     `json:"-" yaml:"-"`
}

func (e ClassifiedError) Error() string {
	return e.Message
}

func Classify(err error) ClassifiedError {
	if err == nil {
		return ClassifiedError{}
	}

	msg := strings.ToLower(err.Error())

	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		return ClassifiedError{
			Kind:    ErrorKindNotFound,
			Message: err.Error(),
			Hint:    "Check the file path. Config is looked up exactly where you point --config.",
			Raw:     err,
		}
	case strings.Contains(msg, "parse config") || strings.Contains(msg, "unmarshal") || strings.Contains(msg, "yaml") || strings.Contains(msg, "toml"):
		return ClassifiedError{
			Kind:    ErrorKindConfig,
			Message: err.Error(),
			Hint:    "The config file could not be parsed. Selector fields accept \"all\", \"none\", or a list of keys.",
			Raw:     err,
		}
	default:
		return ClassifiedError{
			Kind:    ErrorKindOther,
			Message: err.Error(),
			Raw:     err,
		}
	}
}
