// Copyright (C) 2025 Signpost-Go Project
//
// This file is part of signpost-go.
//
// signpost-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// signpost-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with signpost-go.  If not, see <https://www.gnu.org/licenses/>.

package oauth

import "fmt"

// ExpectationFailedError reports a caller-configuration precondition
// violation, such as signing with an unset consumer key or secret. Signing
// fails with this error before the request is read or modified.
type ExpectationFailedError struct {
	Reason string
}

func (e *ExpectationFailedError) Error() string {
	return fmt.Sprintf("oauth: expectation failed: %s", e.Reason)
}

// CommunicationError reports an I/O failure while reading the request
// payload during parameter collection. No partial signature is produced.
type CommunicationError struct {
	Err error
}

func (e *CommunicationError) Error() string {
	return fmt.Sprintf("oauth: communication error: %v", e.Err)
}

func (e *CommunicationError) Unwrap() error {
	return e.Err
}

// MessageSignerError reports that the configured message signer could not
// produce a signature, e.g. because of malformed key material.
type MessageSignerError struct {
	Err error
}

func (e *MessageSignerError) Error() string {
	return fmt.Sprintf("oauth: message signer failed: %v", e.Err)
}

func (e *MessageSignerError) Unwrap() error {
	return e.Err
}
