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
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"hash"

	"github.com/signpost-project/signpost-go/pkg/parameters"
	"github.com/signpost-project/signpost-go/pkg/request"
)

// HMACSHA1Signer signs requests with HMAC-SHA1, the default and most widely
// deployed OAuth 1.0a signature method.
type HMACSHA1Signer struct {
	Secrets
}

// NewHMACSHA1Signer creates an HMAC-SHA1 message signer with no secrets
// installed yet.
func NewHMACSHA1Signer() *HMACSHA1Signer {
	return &HMACSHA1Signer{}
}

// SignatureMethod returns "HMAC-SHA1".
func (s *HMACSHA1Signer) SignatureMethod() string {
	return "HMAC-SHA1"
}

// Sign computes the base64 HMAC-SHA1 of the signature base string.
func (s *HMACSHA1Signer) Sign(req request.HTTPRequest, params *parameters.Store) (string, error) {
	return hmacSign(sha1.New, &s.Secrets, req, params)
}

// HMACSHA256Signer signs requests with HMAC-SHA256. Not part of OAuth Core
// 1.0, but accepted by several providers as a drop-in hardening of the
// HMAC-SHA1 method.
type HMACSHA256Signer struct {
	Secrets
}

// NewHMACSHA256Signer creates an HMAC-SHA256 message signer.
func NewHMACSHA256Signer() *HMACSHA256Signer {
	return &HMACSHA256Signer{}
}

// SignatureMethod returns "HMAC-SHA256".
func (s *HMACSHA256Signer) SignatureMethod() string {
	return "HMAC-SHA256"
}

// Sign computes the base64 HMAC-SHA256 of the signature base string.
func (s *HMACSHA256Signer) Sign(req request.HTTPRequest, params *parameters.Store) (string, error) {
	return hmacSign(sha256.New, &s.Secrets, req, params)
}

func hmacSign(newHash func() hash.Hash, secrets *Secrets, req request.HTTPRequest, params *parameters.Store) (string, error) {
	base, err := SignatureBaseString(req, params)
	if err != nil {
		return "", fmt.Errorf("failed to build signature base string: %w", err)
	}

	mac := hmac.New(newHash, secrets.SigningKey())
	mac.Write([]byte(base))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}
