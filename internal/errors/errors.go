// Package errors defines typed errors with categories for user-friendly reporting.
// Commands wrap failures in E so that the root command can choose an exit
// message by Kind instead of by matching error text.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// LibraryLoadFailed indicates the RFC SDK library could not be loaded.
	LibraryLoadFailed Kind = "library_load_failed"
	// ConnectionFailed indicates the logon to the SAP system failed.
	ConnectionFailed Kind = "connection_failed"
	// ProfileMissing indicates the selected profile is not configured.
	ProfileMissing Kind = "profile_missing"
	// CredentialsMissing indicates no password is stored or given.
	CredentialsMissing Kind = "credentials_missing"
	// ExportFailed indicates writing to the export database failed.
	ExportFailed Kind = "export_failed"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf returns the Kind of the first E in err's chain, or "".
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}
