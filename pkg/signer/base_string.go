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
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/signpost-project/signpost-go/pkg/oauth"
	"github.com/signpost-project/signpost-go/pkg/parameters"
	"github.com/signpost-project/signpost-go/pkg/request"
)

// SignatureBaseString builds the canonical string signed by the HMAC
// signers, per OAuth Core 1.0 section 9.1:
//
//	METHOD "&" enc(normalized-url) "&" enc(normalized-parameters)
func SignatureBaseString(req request.HTTPRequest, params *parameters.Store) (string, error) {
	normURL, err := normalizeRequestURL(req.RequestURL())
	if err != nil {
		return "", err
	}
	return strings.ToUpper(req.Method()) + "&" +
		oauth.PercentEncode(normURL) + "&" +
		oauth.PercentEncode(normalizeParameters(params)), nil
}

// normalizeRequestURL lowercases scheme and authority, strips the default
// port (80 for http, 443 for https), drops query and fragment, and defaults
// an empty path to "/".
func normalizeRequestURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("not an absolute URL: %q", rawURL)
	}

	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Host)
	if (scheme == "http" && strings.HasSuffix(host, ":80")) ||
		(scheme == "https" && strings.HasSuffix(host, ":443")) {
		host = host[:strings.LastIndex(host, ":")]
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return scheme + "://" + host + path, nil
}

// normalizeParameters flattens params into the sorted k=v&k=v form of OAuth
// Core 1.0 section 9.1.1. The oauth_signature and realm parameters never
// participate. Pairs sort by encoded name, then by encoded value, so
// multi-valued names flatten deterministically.
func normalizeParameters(params *parameters.Store) string {
	if params == nil {
		return ""
	}

	type pair struct {
		name, value string
	}
	var pairs []pair
	for _, name := range params.Names() {
		if name == oauth.SignatureParam || name == oauth.RealmParam {
			continue
		}
		for _, value := range params.Values(name) {
			pairs = append(pairs, pair{oauth.PercentEncode(name), oauth.PercentEncode(value)})
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].name == pairs[j].name {
			return pairs[i].value < pairs[j].value
		}
		return pairs[i].name < pairs[j].name
	})

	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p.name + "=" + p.value
	}
	return strings.Join(parts, "&")
}
