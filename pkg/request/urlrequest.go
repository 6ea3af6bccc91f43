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

import (
	"io"
	"strings"
)

// URLRequest adapts a bare URL string to the HTTPRequest capability. It
// models a GET without headers or body and exists so that URLs can be
// signed directly with a query-string strategy.
type URLRequest struct {
	url string
}

// NewURLRequest wraps rawURL.
func NewURLRequest(rawURL string) *URLRequest {
	return &URLRequest{url: rawURL}
}

// Method always returns "GET".
func (r *URLRequest) Method() string {
	return "GET"
}

// RequestURL returns the wrapped URL.
func (r *URLRequest) RequestURL() string {
	return r.url
}

// SetRequestURL replaces the wrapped URL.
func (r *URLRequest) SetRequestURL(rawURL string) error {
	r.url = rawURL
	return nil
}

// Header always returns "".
func (r *URLRequest) Header(string) string {
	return ""
}

// SetHeader is a no-op; a bare URL has no headers to write to.
func (r *URLRequest) SetHeader(string, string) {}

// ContentType always returns "".
func (r *URLRequest) ContentType() string {
	return ""
}

// MessagePayload returns an empty reader.
func (r *URLRequest) MessagePayload() (io.Reader, error) {
	return strings.NewReader(""), nil
}

// Unwrap returns the current URL string.
func (r *URLRequest) Unwrap() any {
	return r.url
}
