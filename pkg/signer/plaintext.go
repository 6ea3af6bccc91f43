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

package signer

import (
	"github.com/signpost-project/signpost-go/pkg/parameters"
	"github.com/signpost-project/signpost-go/pkg/request"
)

// PlainTextSigner implements the PLAINTEXT signature method: the signature
// is the signing key itself, with no base string and no digest. Only
// appropriate over a channel that is itself secure (TLS).
type PlainTextSigner struct {
	Secrets
}

// NewPlainTextSigner creates a PLAINTEXT message signer.
func NewPlainTextSigner() *PlainTextSigner {
	return &PlainTextSigner{}
}

// SignatureMethod returns "PLAINTEXT".
func (s *PlainTextSigner) SignatureMethod() string {
	return "PLAINTEXT"
}

// Sign returns enc(consumerSecret) "&" enc(tokenSecret). The request and
// parameters are not consulted.
func (s *PlainTextSigner) Sign(request.HTTPRequest, *parameters.Store) (string, error) {
	return string(s.SigningKey()), nil
}
