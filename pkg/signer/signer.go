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
	"github.com/signpost-project/signpost-go/pkg/oauth"
	"github.com/signpost-project/signpost-go/pkg/parameters"
	"github.com/signpost-project/signpost-go/pkg/request"
)

// MessageSigner computes an OAuth signature string over a request and its
// finalized parameter set. Implementations carry the shared-secret key
// material; the consumer pushes the consumer secret into a signer the
// moment it is installed.
type MessageSigner interface {
	// SignatureMethod returns the protocol name of the algorithm, sent as
	// the oauth_signature_method parameter (e.g. "HMAC-SHA1").
	SignatureMethod() string

	// SetConsumerSecret installs the consumer secret.
	SetConsumerSecret(secret string)

	// ConsumerSecret returns the installed consumer secret.
	ConsumerSecret() string

	// SetTokenSecret installs the token secret.
	SetTokenSecret(secret string)

	// TokenSecret returns the installed token secret.
	TokenSecret() string

	// Sign computes the signature string for req over params.
	Sign(req request.HTTPRequest, params *parameters.Store) (string, error)
}

// SigningStrategy writes a computed signature into a request. Where the
// signature lands (Authorization header, query string, body) is entirely the
// strategy's concern.
type SigningStrategy interface {
	WriteSignature(signature string, req request.HTTPRequest, params *parameters.Store) error
}

// Secrets holds the shared-secret key material common to all signers.
// Embed it to satisfy the secret accessors of MessageSigner.
type Secrets struct {
	consumerSecret string
	tokenSecret    string
}

// SetConsumerSecret installs the consumer secret.
func (s *Secrets) SetConsumerSecret(secret string) {
	s.consumerSecret = secret
}

// ConsumerSecret returns the installed consumer secret.
func (s *Secrets) ConsumerSecret() string {
	return s.consumerSecret
}

// SetTokenSecret installs the token secret.
func (s *Secrets) SetTokenSecret(secret string) {
	s.tokenSecret = secret
}

// TokenSecret returns the installed token secret.
func (s *Secrets) TokenSecret() string {
	return s.tokenSecret
}

// SigningKey derives the OAuth key material from the installed secrets:
// enc(consumerSecret) "&" enc(tokenSecret). An unset token secret leaves
// the part after "&" empty, as the protocol requires.
func (s *Secrets) SigningKey() []byte {
	return []byte(oauth.PercentEncode(s.consumerSecret) + "&" + oauth.PercentEncode(s.tokenSecret))
}
