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
	"bytes"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// NetHTTPRequest adapts a *http.Request to the HTTPRequest capability.
type NetHTTPRequest struct {
	req *http.Request
}

// NewNetHTTPRequest wraps req. The request is mutated in place when a
// signing strategy writes the signature.
func NewNetHTTPRequest(req *http.Request) *NetHTTPRequest {
	return &NetHTTPRequest{req: req}
}

// Method returns the HTTP method.
func (r *NetHTTPRequest) Method() string {
	return r.req.Method
}

// RequestURL returns the full request URL.
func (r *NetHTTPRequest) RequestURL() string {
	return r.req.URL.String()
}

// SetRequestURL replaces the request URL.
func (r *NetHTTPRequest) SetRequestURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	r.req.URL = parsed
	return nil
}

// Header returns the value of the named header.
func (r *NetHTTPRequest) Header(name string) string {
	return r.req.Header.Get(name)
}

// SetHeader sets the named header.
func (r *NetHTTPRequest) SetHeader(name, value string) {
	if r.req.Header == nil {
		r.req.Header = make(http.Header)
	}
	r.req.Header.Set(name, value)
}

// ContentType returns the Content-Type header value.
func (r *NetHTTPRequest) ContentType() string {
	return r.req.Header.Get("Content-Type")
}

// MessagePayload returns a reader over the request body without consuming
// it. When the request carries GetBody (as requests built by
// http.NewRequest from common reader types do), a fresh body copy is
// returned; otherwise the body is read fully and restored.
func (r *NetHTTPRequest) MessagePayload() (io.Reader, error) {
	if r.req.GetBody != nil {
		body, err := r.req.GetBody()
		if err != nil {
			return nil, err
		}
		return body, nil
	}

	if r.req.Body == nil {
		return strings.NewReader(""), nil
	}

	data, err := io.ReadAll(r.req.Body)
	r.req.Body.Close()
	if err != nil {
		return nil, err
	}
	r.req.Body = io.NopCloser(bytes.NewReader(data))
	return bytes.NewReader(data), nil
}

// Unwrap returns the wrapped *http.Request.
func (r *NetHTTPRequest) Unwrap() any {
	return r.req
}
