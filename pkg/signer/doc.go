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

// Package signer provides the two capabilities a consumer delegates to: the
// MessageSigner that computes a signature string, and the SigningStrategy
// that decides where the signature lands in the request.
//
// # Message Signers
//
//   - HMACSHA1Signer: "HMAC-SHA1", the protocol default.
//   - HMACSHA256Signer: "HMAC-SHA256", provider extension.
//   - PlainTextSigner: "PLAINTEXT", key material as the signature.
//
// The HMAC signers sign the canonical signature base string
// (SignatureBaseString): uppercase method, normalized URL, and the sorted,
// percent-encoded parameter set, joined by "&". The signing key is always
// enc(consumerSecret) "&" enc(tokenSecret); the consumer installs the
// consumer secret into a signer as soon as the signer is configured.
//
// # Signing Strategies
//
//   - AuthorizationHeaderStrategy: OAuth-scheme Authorization header
//     (the default).
//   - QueryStringStrategy: signature appended to the URL query, for
//     signed URLs usable without headers.
//
// Custom algorithms and placements plug in by implementing MessageSigner or
// SigningStrategy; no other part of the module needs to change.
package signer
