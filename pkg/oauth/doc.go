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

// Package oauth holds the OAuth Core 1.0a protocol vocabulary shared by the
// rest of the module: parameter names, the percent-encoding rules of
// RFC 3986, the application/x-www-form-urlencoded codec, Authorization
// header parsing, and the error taxonomy of a signing pass.
//
// # Encoding
//
// OAuth signature material uses the strict RFC 3986 encoding, which differs
// from Go's query escaping in two visible ways: a space encodes as %20 (not
// "+") and "~" stays literal. PercentEncode implements that rule; all header
// and base-string assembly in this module goes through it.
//
// # Error Taxonomy
//
// A signing pass fails in exactly one of three ways, each a distinct type:
//
//   - ExpectationFailedError: the caller's consumer configuration is
//     incomplete (missing key or secret).
//   - CommunicationError: reading the request body failed.
//   - MessageSignerError: the cryptographic computation failed.
//
// All three are terminal for the current call and none is retriable; use
// errors.As to distinguish them.
package oauth
