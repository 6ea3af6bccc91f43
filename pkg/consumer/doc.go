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

// Package consumer implements the OAuth 1.0a request-signing orchestration:
// given an outbound request and a consumer's credentials, it assembles the
// complete protocol parameter set, obtains a signature from the configured
// message signer, and writes it back through the configured signing
// strategy.
//
// # Signing a Request
//
//	c := consumer.New("dpf43f3p2l4k3l03", "kd94hf93k423kf44")
//
//	req, _ := http.NewRequest("GET", "https://photos.example.net/photos?file=vacation.jpg", nil)
//	if err := c.SignHTTP(req); err != nil {
//	    log.Fatal(err)
//	}
//	// req now carries an OAuth Authorization header.
//
// # Parameter Assembly
//
// Each signing pass starts from a fresh parameter store and consults four
// sources in fixed order: caller-supplied additional parameters, the
// request's Authorization header, the URL query string, and an
// x-www-form-urlencoded body. The first two merge without overwriting;
// query and body parameters take precedence over same-named earlier values.
// Whatever is still missing of the required protocol parameters
// (oauth_consumer_key, oauth_signature_method, oauth_timestamp,
// oauth_nonce, oauth_version, and oauth_token when a token is configured)
// is synthesized from consumer state, the clock, and the nonce source.
//
// # Determinism in Tests
//
// The clock and the nonce source are injectable:
//
//	c.SetClock(func() time.Time { return time.Unix(1191242096, 0) })
//	c.SetNonceSource(fixedNonce("kllo9940pd9333jh"))
//
// With both pinned, a signing pass produces byte-identical output.
package consumer
