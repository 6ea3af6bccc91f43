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

package consumer

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signpost-project/signpost-go/pkg/oauth"
	"github.com/signpost-project/signpost-go/pkg/parameters"
	"github.com/signpost-project/signpost-go/pkg/request"
	"github.com/signpost-project/signpost-go/pkg/signer"
)

// mockRequest is an in-memory implementation of request.HTTPRequest that
// records every mutation, so tests can assert a request stayed untouched.
type mockRequest struct {
	method      string
	url         string
	contentType string
	headers     map[string]string
	body        string
	payloadErr  error

	headerWrites int
	urlWrites    int
}

func (m *mockRequest) Method() string {
	if m.method == "" {
		return "GET"
	}
	return m.method
}

func (m *mockRequest) RequestURL() string {
	return m.url
}

func (m *mockRequest) SetRequestURL(url string) error {
	m.url = url
	m.urlWrites++
	return nil
}

func (m *mockRequest) Header(name string) string {
	return m.headers[name]
}

func (m *mockRequest) SetHeader(name, value string) {
	if m.headers == nil {
		m.headers = make(map[string]string)
	}
	m.headers[name] = value
	m.headerWrites++
}

func (m *mockRequest) ContentType() string {
	return m.contentType
}

func (m *mockRequest) MessagePayload() (io.Reader, error) {
	if m.payloadErr != nil {
		return nil, m.payloadErr
	}
	return strings.NewReader(m.body), nil
}

func (m *mockRequest) Unwrap() any {
	return m
}

// fixedNonce is a NonceSource that always returns the same value.
type fixedNonce string

func (n fixedNonce) Nonce() string {
	return string(n)
}

func fixedClock(unix int64) Clock {
	return func() time.Time {
		return time.Unix(unix, 0)
	}
}

// failingSigner is a MessageSigner whose computation always fails.
type failingSigner struct {
	signer.Secrets
}

func (failingSigner) SignatureMethod() string {
	return "FAIL"
}

func (failingSigner) Sign(request.HTTPRequest, *parameters.Store) (string, error) {
	return "", errors.New("malformed key material")
}

func newTestConsumer() *Consumer {
	c := New("dpf43f3p2l4k3l03", "kd94hf93k423kf44")
	c.SetClock(fixedClock(1191242096))
	c.SetNonceSource(fixedNonce("kllo9940pd9333jh"))
	return c
}

func TestSign_AppendixAExample(t *testing.T) {
	// Test Case 1: full signing pass reproduces the OAuth Core 1.0
	// Appendix A.5 vector.
	c := newTestConsumer()
	c.SetTokenWithSecret("nnch734d00sl2jdk", "pfkkdhi9sl3r4s00")

	req := &mockRequest{url: "http://photos.example.net/photos?file=vacation.jpg"}

	signed, err := c.Sign(req)
	require.NoError(t, err)
	require.Same(t, request.HTTPRequest(req), signed)

	header := req.headers[oauth.AuthorizationHeader]
	assert.Contains(t, header, `oauth_signature="tR3%2BTy81lMeYAr%2FFid0kMTYa%2FWM%3D"`)
}

func TestSign_CompletesAllProtocolParameters(t *testing.T) {
	// Test Case 2: a request with no pre-existing OAuth parameters ends up
	// carrying exactly one value for each of the six protocol parameters.
	c := newTestConsumer()

	req := &mockRequest{url: "http://photos.example.net/photos"}
	_, err := c.Sign(req)
	require.NoError(t, err)

	headerParams := oauth.HeaderToParams(req.headers[oauth.AuthorizationHeader])
	for _, name := range []string{
		oauth.ConsumerKeyParam,
		oauth.SignatureMethodParam,
		oauth.TimestampParam,
		oauth.NonceParam,
		oauth.VersionParam,
		oauth.SignatureParam,
	} {
		assert.Len(t, headerParams.Values(name), 1, "parameter %s", name)
	}

	assert.Equal(t, "1.0", headerParams.First(oauth.VersionParam))
	assert.Equal(t, "HMAC-SHA1", headerParams.First(oauth.SignatureMethodParam))
	assert.Equal(t, "1191242096", headerParams.First(oauth.TimestampParam))
	assert.Equal(t, "kllo9940pd9333jh", headerParams.First(oauth.NonceParam))
}

func TestSign_DoesNotOverwriteCallerTimestamp(t *testing.T) {
	// Test Case 3: a pre-supplied oauth_timestamp survives signing.
	c := newTestConsumer()

	req := &mockRequest{url: "http://x/y?oauth_timestamp=99"}
	_, err := c.Sign(req)
	require.NoError(t, err)

	headerParams := oauth.HeaderToParams(req.headers[oauth.AuthorizationHeader])
	assert.Equal(t, "99", headerParams.First(oauth.TimestampParam))
}

func TestSign_PurgesStaleSignature(t *testing.T) {
	// Test Case 4: a signature surviving from a previous signing of the
	// same request never influences the new computation.
	c := newTestConsumer()

	stale := &mockRequest{
		url:     "http://x/y",
		headers: map[string]string{oauth.AuthorizationHeader: `OAuth oauth_signature="stale"`},
	}
	fresh := &mockRequest{url: "http://x/y"}

	_, err := c.Sign(stale)
	require.NoError(t, err)
	_, err = c.Sign(fresh)
	require.NoError(t, err)

	staleSig := oauth.HeaderToParams(stale.headers[oauth.AuthorizationHeader]).First(oauth.SignatureParam)
	freshSig := oauth.HeaderToParams(fresh.headers[oauth.AuthorizationHeader]).First(oauth.SignatureParam)

	assert.NotEqual(t, "stale", staleSig)
	// With clock and nonce pinned, purging the stale value makes both
	// computations identical.
	assert.Equal(t, freshSig, staleSig)
	assert.False(t, c.RequestParameters().ContainsKey(oauth.SignatureParam))
}

func TestSign_FreshNoncePerCall(t *testing.T) {
	// Test Case 5: consecutive calls draw distinct nonces.
	c := New("key", "secret")

	first := &mockRequest{url: "http://x/y"}
	second := &mockRequest{url: "http://x/y"}

	_, err := c.Sign(first)
	require.NoError(t, err)
	nonce1 := oauth.HeaderToParams(first.headers[oauth.AuthorizationHeader]).First(oauth.NonceParam)

	_, err = c.Sign(second)
	require.NoError(t, err)
	nonce2 := oauth.HeaderToParams(second.headers[oauth.AuthorizationHeader]).First(oauth.NonceParam)

	assert.NotEqual(t, nonce1, nonce2)
}

func TestSign_CollectsBodyParameters(t *testing.T) {
	// Test Case 6: form-encoded body parameters reach the finalized store.
	c := newTestConsumer()

	req := &mockRequest{
		method:      "POST",
		url:         "http://x/y",
		contentType: "application/x-www-form-urlencoded; charset=UTF-8",
		body:        "a=1&b=2",
	}
	_, err := c.Sign(req)
	require.NoError(t, err)

	params := c.RequestParameters()
	assert.Equal(t, "1", params.First("a"))
	assert.Equal(t, "2", params.First("b"))
}

func TestSign_IgnoresNonFormBody(t *testing.T) {
	c := newTestConsumer()

	req := &mockRequest{
		method:      "POST",
		url:         "http://x/y",
		contentType: "application/json",
		body:        `{"a":1}`,
	}
	_, err := c.Sign(req)
	require.NoError(t, err)

	// Only the five synthesized protocol parameters are present.
	assert.Equal(t, 5, c.RequestParameters().Len())
}

func TestSign_CollectsQueryParameters(t *testing.T) {
	// Test Case 7: query parameters after the first "?" reach the store.
	c := newTestConsumer()

	req := &mockRequest{url: "http://x/y?c=3"}
	_, err := c.Sign(req)
	require.NoError(t, err)

	assert.Equal(t, "3", c.RequestParameters().First("c"))
}

func TestSign_DuplicateQueryNamesAllReachSignature(t *testing.T) {
	// A repeated query name contributes every value to the signed set, per
	// OAuth Core 1.0 section 9.1.1.
	c := newTestConsumer()

	req := &mockRequest{url: "http://x/y?tag=a&tag=b"}
	_, err := c.Sign(req)
	require.NoError(t, err)

	require.Equal(t, []string{"a", "b"}, c.RequestParameters().Values("tag"))

	// The written signature covers both pairs: recompute it over a store
	// that carries the full multi-valued entry.
	headerParams := oauth.HeaderToParams(req.headers[oauth.AuthorizationHeader])
	params := parameters.New()
	params.Put("tag", "a", false)
	params.Put("tag", "b", false)
	for _, name := range headerParams.Names() {
		if name == oauth.SignatureParam {
			continue
		}
		params.Put(name, headerParams.First(name), false)
	}
	s := signer.NewHMACSHA1Signer()
	s.SetConsumerSecret("kd94hf93k423kf44")
	expected, err := s.Sign(req, params)
	require.NoError(t, err)
	assert.Equal(t, expected, headerParams.First(oauth.SignatureParam))
}

func TestSign_DuplicateBodyNamesAllReachSignature(t *testing.T) {
	c := newTestConsumer()

	req := &mockRequest{
		method:      "POST",
		url:         "http://x/y",
		contentType: "application/x-www-form-urlencoded",
		body:        "tag=a&tag=b",
	}
	_, err := c.Sign(req)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, c.RequestParameters().Values("tag"))
}

func TestSign_QueryOverwritesHeaderCollectedValue(t *testing.T) {
	// Header-collected values are defaults; the query wins on a name clash.
	c := newTestConsumer()

	req := &mockRequest{
		url:     "http://x/y?shared=from-query",
		headers: map[string]string{oauth.AuthorizationHeader: `OAuth shared="from-header"`},
	}
	_, err := c.Sign(req)
	require.NoError(t, err)

	assert.Equal(t, []string{"from-query"}, c.RequestParameters().Values("shared"))
}

func TestSign_MissingCredentialsFailBeforeTouchingRequest(t *testing.T) {
	// Test Case 8: expectation failure leaves the request untouched.
	tests := []struct {
		name   string
		key    string
		secret string
	}{
		{"missing key", "", "secret"},
		{"missing secret", "key", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.key, tt.secret)
			req := &mockRequest{url: "http://x/y"}

			_, err := c.Sign(req)

			var expErr *oauth.ExpectationFailedError
			require.ErrorAs(t, err, &expErr)
			assert.Zero(t, req.headerWrites)
			assert.Zero(t, req.urlWrites)
			assert.Nil(t, c.RequestParameters())
		})
	}
}

func TestSign_BodyReadFailureIsCommunicationError(t *testing.T) {
	// Test Case 9: an I/O failure reading the body surfaces as a
	// communication failure, not a signer or expectation failure.
	c := newTestConsumer()

	req := &mockRequest{
		method:      "POST",
		url:         "http://x/y",
		contentType: "application/x-www-form-urlencoded",
		payloadErr:  errors.New("connection reset"),
	}
	_, err := c.Sign(req)

	var commErr *oauth.CommunicationError
	require.ErrorAs(t, err, &commErr)
	assert.Equal(t, "connection reset", errors.Unwrap(err).Error())

	var signErr *oauth.MessageSignerError
	assert.False(t, errors.As(err, &signErr))
	var expErr *oauth.ExpectationFailedError
	assert.False(t, errors.As(err, &expErr))

	// No partial signature was written.
	assert.Zero(t, req.headerWrites)
}

func TestSign_SignerFailureIsMessageSignerError(t *testing.T) {
	c := newTestConsumer()
	c.SetMessageSigner(&failingSigner{})

	req := &mockRequest{url: "http://x/y"}
	_, err := c.Sign(req)

	var signErr *oauth.MessageSignerError
	require.ErrorAs(t, err, &signErr)
	assert.Zero(t, req.headerWrites)
}

func TestSign_ConcurrentCallsDoNotContaminate(t *testing.T) {
	// Test Case 10: concurrent Sign calls on one consumer are serialized;
	// every request's signature verifies independently against its own
	// parameters.
	const callers = 16

	c := New("dpf43f3p2l4k3l03", "kd94hf93k423kf44")

	requests := make([]*mockRequest, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		requests[i] = &mockRequest{url: fmt.Sprintf("http://x/y?id=%d", i)}
		wg.Add(1)
		go func(req *mockRequest) {
			defer wg.Done()
			_, err := c.Sign(req)
			assert.NoError(t, err)
		}(requests[i])
	}
	wg.Wait()

	for i, req := range requests {
		headerParams := oauth.HeaderToParams(req.headers[oauth.AuthorizationHeader])
		signature := headerParams.First(oauth.SignatureParam)

		// Rebuild the signed parameter set from the request itself and
		// recompute: any cross-call contamination breaks the match.
		params := parameters.New()
		_, query, _ := strings.Cut(req.url, "?")
		params.PutAll(oauth.DecodeForm(query), false)
		for _, name := range headerParams.Names() {
			if name == oauth.SignatureParam {
				continue
			}
			params.Put(name, headerParams.First(name), false)
		}

		s := signer.NewHMACSHA1Signer()
		s.SetConsumerSecret("kd94hf93k423kf44")
		expected, err := s.Sign(req, params)
		require.NoError(t, err)
		assert.Equal(t, expected, signature, "request %d", i)
	}
}

func TestSign_AdditionalParametersAreDefaults(t *testing.T) {
	c := newTestConsumer()

	extra := parameters.New()
	extra.Put("scope", "read", false)
	extra.Put(oauth.TimestampParam, "424242", false)
	c.SetAdditionalParameters(extra)

	req := &mockRequest{url: "http://x/y"}
	_, err := c.Sign(req)
	require.NoError(t, err)

	params := c.RequestParameters()
	assert.Equal(t, "read", params.First("scope"))
	// Caller-supplied protocol parameters are not overwritten by completion.
	assert.Equal(t, "424242", params.First(oauth.TimestampParam))
}

func TestSign_TokenHandling(t *testing.T) {
	t.Run("no token means no oauth_token", func(t *testing.T) {
		c := newTestConsumer()
		req := &mockRequest{url: "http://x/y"}
		_, err := c.Sign(req)
		require.NoError(t, err)
		assert.False(t, c.RequestParameters().ContainsKey(oauth.TokenParam))
	})

	t.Run("configured token is sent", func(t *testing.T) {
		c := newTestConsumer()
		c.SetTokenWithSecret("nnch734d00sl2jdk", "pfkkdhi9sl3r4s00")
		req := &mockRequest{url: "http://x/y"}
		_, err := c.Sign(req)
		require.NoError(t, err)
		assert.Equal(t, "nnch734d00sl2jdk", c.RequestParameters().First(oauth.TokenParam))
		assert.Equal(t, "nnch734d00sl2jdk", c.Token())
		assert.Equal(t, "pfkkdhi9sl3r4s00", c.TokenSecret())
	})

	t.Run("empty token sent only when enabled", func(t *testing.T) {
		c := newTestConsumer()
		c.SetSendEmptyTokens(true)
		req := &mockRequest{url: "http://x/y"}
		_, err := c.Sign(req)
		require.NoError(t, err)
		require.True(t, c.RequestParameters().ContainsKey(oauth.TokenParam))
		assert.Equal(t, "", c.RequestParameters().First(oauth.TokenParam))
	})
}

func TestSetMessageSigner_PushesConsumerSecret(t *testing.T) {
	c := New("key", "secret")

	s := signer.NewHMACSHA256Signer()
	c.SetMessageSigner(s)

	assert.Equal(t, "secret", s.ConsumerSecret())

	req := &mockRequest{url: "http://x/y"}
	_, err := c.Sign(req)
	require.NoError(t, err)
	assert.Equal(t, "HMAC-SHA256",
		oauth.HeaderToParams(req.headers[oauth.AuthorizationHeader]).First(oauth.SignatureMethodParam))
}

func TestRequestParameters_ReplacedByNextCall(t *testing.T) {
	c := newTestConsumer()

	_, err := c.Sign(&mockRequest{url: "http://x/y?a=1"})
	require.NoError(t, err)
	assert.True(t, c.RequestParameters().ContainsKey("a"))

	_, err = c.Sign(&mockRequest{url: "http://x/y?b=2"})
	require.NoError(t, err)
	assert.False(t, c.RequestParameters().ContainsKey("a"))
	assert.True(t, c.RequestParameters().ContainsKey("b"))
}

func TestSignHTTP(t *testing.T) {
	c := newTestConsumer()

	req, err := http.NewRequest("GET", "http://photos.example.net/photos?file=vacation.jpg", nil)
	require.NoError(t, err)

	require.NoError(t, c.SignHTTP(req))

	header := req.Header.Get(oauth.AuthorizationHeader)
	assert.True(t, strings.HasPrefix(header, "OAuth "))
	assert.Contains(t, header, "oauth_signature=")
}

func TestSignURL(t *testing.T) {
	c := newTestConsumer()
	c.SetTokenWithSecret("nnch734d00sl2jdk", "pfkkdhi9sl3r4s00")

	signed, err := c.SignURL("http://photos.example.net/photos?file=vacation.jpg")
	require.NoError(t, err)

	signedParams := oauth.DecodeForm(strings.SplitN(signed, "?", 2)[1])
	assert.Equal(t, "vacation.jpg", signedParams.First("file"))
	for _, name := range []string{
		oauth.ConsumerKeyParam,
		oauth.SignatureMethodParam,
		oauth.TimestampParam,
		oauth.NonceParam,
		oauth.VersionParam,
		oauth.TokenParam,
		oauth.SignatureParam,
	} {
		assert.True(t, signedParams.ContainsKey(name), "parameter %s", name)
	}
	assert.Equal(t, "tR3+Ty81lMeYAr/Fid0kMTYa/WM=", signedParams.First(oauth.SignatureParam))

	// The configured strategy is untouched: the next Sign writes a header.
	req := &mockRequest{url: "http://x/y"}
	_, err = c.Sign(req)
	require.NoError(t, err)
	assert.NotEmpty(t, req.headers[oauth.AuthorizationHeader])
	assert.Zero(t, req.urlWrites)
}
