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
	"strings"

	"github.com/signpost-project/signpost-go/pkg/oauth"
	"github.com/signpost-project/signpost-go/pkg/parameters"
	"github.com/signpost-project/signpost-go/pkg/request"
)

// AuthorizationHeaderStrategy places the signature in an OAuth-scheme
// Authorization header, the placement recommended by the protocol. Only
// oauth_-prefixed parameters (plus an optional realm) are written; request
// parameters from the query or body stay where they are.
type AuthorizationHeaderStrategy struct{}

// NewAuthorizationHeaderStrategy creates the default signing strategy.
func NewAuthorizationHeaderStrategy() *AuthorizationHeaderStrategy {
	return &AuthorizationHeaderStrategy{}
}

// WriteSignature sets the request's Authorization header to
//
//	OAuth [realm="...", ]oauth_k1="v1", ..., oauth_signature="..."
//
// with every element value percent-encoded.
func (s *AuthorizationHeaderStrategy) WriteSignature(signature string, req request.HTTPRequest, params *parameters.Store) error {
	var elements []string
	if params.ContainsKey(oauth.RealmParam) {
		elements = append(elements, headerElement(oauth.RealmParam, params.First(oauth.RealmParam)))
	}
	for _, name := range params.Names() {
		if !strings.HasPrefix(name, oauth.OAuthParamPrefix) || name == oauth.SignatureParam {
			continue
		}
		elements = append(elements, headerElement(name, params.First(name)))
	}
	elements = append(elements, headerElement(oauth.SignatureParam, signature))

	req.SetHeader(oauth.AuthorizationHeader, oauth.AuthScheme+" "+strings.Join(elements, ", "))
	return nil
}

func headerElement(name, value string) string {
	return oauth.PercentEncode(name) + `="` + oauth.PercentEncode(value) + `"`
}

// QueryStringStrategy places the signature and the protocol parameters in
// the request URL's query string. Used for signed URLs that must work
// without headers, e.g. links handed to a browser.
type QueryStringStrategy struct{}

// NewQueryStringStrategy creates a query-string signing strategy.
func NewQueryStringStrategy() *QueryStringStrategy {
	return &QueryStringStrategy{}
}

// WriteSignature rewrites the request URL so its query carries every
// oauth_ parameter plus the new signature. Protocol parameters already in
// the query keep their position; a stale oauth_signature is dropped first.
func (s *QueryStringStrategy) WriteSignature(signature string, req request.HTTPRequest, params *parameters.Store) error {
	base, rawQuery, _ := strings.Cut(req.RequestURL(), "?")

	query := oauth.DecodeForm(rawQuery)
	query.Remove(oauth.SignatureParam)
	for _, name := range params.Names() {
		if !strings.HasPrefix(name, oauth.OAuthParamPrefix) || name == oauth.SignatureParam {
			continue
		}
		if query.ContainsKey(name) {
			continue
		}
		query.Put(name, params.First(name), true)
	}
	query.Put(oauth.SignatureParam, signature, true)

	return req.SetRequestURL(base + "?" + oauth.FormEncode(query))
}
