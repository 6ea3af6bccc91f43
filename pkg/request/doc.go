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

// Package request defines the protocol-neutral request view consumed by the
// signing machinery, together with adapters for the common cases:
//
//   - NetHTTPRequest wraps a *http.Request. Its MessagePayload preserves the
//     body, so a request can be signed and then sent.
//   - URLRequest wraps a bare URL string for query-string signing.
//
// Custom transports implement HTTPRequest to make their request type
// signable without this module depending on it.
package request
