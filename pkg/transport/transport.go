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

package transport

import (
	"bytes"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/signpost-project/signpost-go/pkg/consumer"
)

// Transport is an http.RoundTripper that signs every outgoing request with
// a consumer before delegating to a base transport. It never mutates the
// caller's request; each request is cloned and the clone is signed and sent.
type Transport struct {
	base     http.RoundTripper
	consumer *consumer.Consumer
	logger   *zap.Logger
}

// Option configures a Transport.
type Option func(*Transport)

// WithLogger attaches a logger; the transport emits a debug line per signed
// request. Without this option the transport stays silent.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Transport) {
		t.logger = logger
	}
}

// New creates a signing transport around base. When base is nil,
// http.DefaultTransport is used.
func New(base http.RoundTripper, c *consumer.Consumer, opts ...Option) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	t := &Transport{
		base:     base,
		consumer: c,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// RoundTrip clones req, signs the clone, and delegates to the base
// transport. The caller's request is never mutated: when GetBody is
// available the clone receives its own body copy, and otherwise the body is
// read fully once, the clone gets the buffered bytes, and the caller's Body
// is replaced with an equivalent reader over the same buffer.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())

	if clone.Body != nil {
		if req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, err
			}
			clone.Body = body
		} else {
			data, err := io.ReadAll(req.Body)
			req.Body.Close()
			if err != nil {
				return nil, err
			}
			req.Body = io.NopCloser(bytes.NewReader(data))
			clone.Body = io.NopCloser(bytes.NewReader(data))
			clone.GetBody = func() (io.ReadCloser, error) {
				return io.NopCloser(bytes.NewReader(data)), nil
			}
		}
	}

	if err := t.consumer.SignHTTP(clone); err != nil {
		return nil, err
	}

	t.logger.Debug("signed outgoing request",
		zap.String("method", clone.Method),
		zap.String("url", clone.URL.String()),
	)

	return t.base.RoundTrip(clone)
}

// Client returns an *http.Client whose requests are signed by this
// transport.
func (t *Transport) Client() *http.Client {
	return &http.Client{Transport: t}
}
