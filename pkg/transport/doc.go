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

// Package transport integrates OAuth signing into the standard net/http
// client stack as a RoundTripper:
//
//	c := consumer.New(key, secret)
//	client := transport.New(nil, c).Client()
//
//	resp, err := client.Get("https://api.example.com/resource")
//
// Every request issued through the client is cloned, signed, and sent; the
// original request object stays untouched, so callers can retry safely.
package transport
