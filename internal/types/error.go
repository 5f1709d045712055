// error.go
//
// PropIQ, a property, lease and tenant management service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of propiq.
// propiq is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// propiq is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with propiq.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package types

import (
	"errors"
	"fmt"
)

// CustomError is an HTTP-facing failure rendered by the global error handler
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

var (
	// ErrNotFound is returned by the store when a keyed lookup matches nothing
	ErrNotFound = errors.New("not found")

	// ErrSubmitInProgress is returned when a form or gate is already submitting
	ErrSubmitInProgress = errors.New("submit already in progress")
)

// ValidationError is a local, synchronous required-field failure.
// It never reaches the data store and its message is static per form.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RemoteKind distinguishes reads from writes against the data store
type RemoteKind string

const (
	RemoteQuery    RemoteKind = "query"
	RemoteMutation RemoteKind = "mutation"
)

// RemoteError is a structured data store failure.
// The detail fields are for diagnostics only and are not shown to users.
type RemoteError struct {
	Kind    RemoteKind
	Op      string
	Message string
	Code    string
	Details string
	Hint    string
	Err     error
}

func (e *RemoteError) Error() string {
	msg := fmt.Sprintf("%s %s failed: %s", e.Kind, e.Op, e.Message)
	if e.Code != "" {
		msg += fmt.Sprintf(" [code: %s]", e.Code)
	}
	if e.Details != "" {
		msg += fmt.Sprintf(" [details: %s]", e.Details)
	}
	if e.Hint != "" {
		msg += fmt.Sprintf(" [hint: %s]", e.Hint)
	}
	return msg
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// AuthError is a sign-in or sign-up rejection. Unlike the other categories
// its message comes from the auth service and is shown to the user verbatim.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is (or wraps) a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsRemote reports whether err is (or wraps) a RemoteError
func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}
