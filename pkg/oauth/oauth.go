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

package oauth

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/signpost-project/signpost-go/pkg/parameters"
)

// Protocol parameter names defined by OAuth Core 1.0a.
const (
	ConsumerKeyParam     = "oauth_consumer_key"
	SignatureMethodParam = "oauth_signature_method"
	TimestampParam       = "oauth_timestamp"
	NonceParam           = "oauth_nonce"
	VersionParam         = "oauth_version"
	SignatureParam       = "oauth_signature"
	TokenParam           = "oauth_token"
	TokenSecretParam     = "oauth_token_secret"
	CallbackParam        = "oauth_callback"
	VerifierParam        = "oauth_verifier"
)

const (
	// Version10 is the fixed protocol version string sent as oauth_version.
	Version10 = "1.0"

	// AuthorizationHeader is the HTTP header carrying OAuth credentials.
	AuthorizationHeader = "Authorization"

	// AuthScheme is the auth-scheme token of an OAuth Authorization header.
	AuthScheme = "OAuth"

	// FormEncodedType is the content type whose request bodies contribute
	// parameters to the signature.
	FormEncodedType = "application/x-www-form-urlencoded"

	// RealmParam may appear in an Authorization header alongside the
	// oauth_ parameters; it never participates in the signature.
	RealmParam = "realm"
)

// OAuthParamPrefix marks the protocol parameters within a mixed parameter set.
const OAuthParamPrefix = "oauth_"

// PercentEncode encodes s per RFC 3986 as required for OAuth signature
// material: ALPHA / DIGIT / "-" / "." / "_" / "~" pass through, everything
// else becomes an uppercase %XX escape.
//
// Note that url.QueryEscape produces "+" for space and escapes "~", neither
// of which is valid in an OAuth signature base string.
func PercentEncode(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') ||
			c == '-' || c == '.' || c == '_' || c == '~' {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}

// PercentDecode reverses percent-encoding. A "+" decodes to a space so that
// form-encoded payloads round-trip. Malformed escapes are left as-is rather
// than rejected, matching the lenient parsing of incoming parameters.
func PercentDecode(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

// FormEncode serializes params as application/x-www-form-urlencoded,
// preserving the store's ordering. Names without values are skipped.
func FormEncode(params *parameters.Store) string {
	if params == nil {
		return ""
	}
	var parts []string
	for _, name := range params.Names() {
		if name == "" {
			continue
		}
		for _, value := range params.Values(name) {
			parts = append(parts, PercentEncode(name)+"="+PercentEncode(value))
		}
	}
	return strings.Join(parts, "&")
}

// DecodeForm parses an application/x-www-form-urlencoded string into a
// parameter store. A pair without "=" yields an empty value. Repeated names
// are kept as multiple values.
func DecodeForm(form string) *parameters.Store {
	params := parameters.New()
	for _, nvp := range strings.Split(form, "&") {
		if nvp == "" {
			continue
		}
		name, value, found := strings.Cut(nvp, "=")
		if !found {
			params.Put(PercentDecode(nvp), "", false)
			continue
		}
		params.Put(PercentDecode(name), PercentDecode(value), false)
	}
	return params
}

// DecodeFormReader reads r to the end and decodes it as form parameters.
// A read failure is returned unwrapped so the caller can classify it.
func DecodeFormReader(r io.Reader) (*parameters.Store, error) {
	if r == nil {
		return parameters.New(), nil
	}
	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return DecodeForm(string(payload)), nil
}

// HeaderToParams parses an OAuth Authorization header value of the form
//
//	OAuth realm="https://example.com/", oauth_consumer_key="dpf43f3...", ...
//
// into a parameter store. The realm and any non-oauth_ pairs are parsed
// uniformly alongside protocol parameters. A header that does not carry the
// OAuth scheme yields an empty store.
func HeaderToParams(header string) *parameters.Store {
	params := parameters.New()
	if len(header) < len(AuthScheme)+1 || !strings.EqualFold(header[:len(AuthScheme)], AuthScheme) || header[len(AuthScheme)] != ' ' {
		return params
	}
	for _, element := range strings.Split(header[len(AuthScheme)+1:], ",") {
		name, value, found := strings.Cut(element, "=")
		if !found {
			continue
		}
		name = strings.TrimSpace(name)
		value = strings.Trim(strings.TrimSpace(value), `"`)
		if name == "" {
			continue
		}
		params.Put(PercentDecode(name), PercentDecode(value), false)
	}
	return params
}
