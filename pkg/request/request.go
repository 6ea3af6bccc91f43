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

package request

import "io"

// HTTPRequest is the protocol-neutral view of an outgoing HTTP request that
// the signing machinery reads parameters from and writes the signature into.
//
// Adapters over concrete request types implement this interface; the
// orchestrator never touches a native request directly.
type HTTPRequest interface {
	// Method returns the HTTP method, e.g. "GET" or "POST".
	Method() string

	// RequestURL returns the full request URL including any query string.
	RequestURL() string

	// SetRequestURL replaces the request URL. Used by signing strategies
	// that place the signature in the query string.
	SetRequestURL(url string) error

	// Header returns the value of the named header, or "" when unset.
	Header(name string) string

	// SetHeader sets the named header, replacing any existing value.
	SetHeader(name, value string)

	// ContentType returns the request's content type, or "" when unset.
	ContentType() string

	// MessagePayload returns a reader over the request body. Reading the
	// payload must not consume the body of the underlying request.
	MessagePayload() (io.Reader, error)

	// Unwrap returns the underlying native request object.
	Unwrap() any
}
