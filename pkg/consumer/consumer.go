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
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/signpost-project/signpost-go/pkg/oauth"
	"github.com/signpost-project/signpost-go/pkg/parameters"
	"github.com/signpost-project/signpost-go/pkg/request"
	"github.com/signpost-project/signpost-go/pkg/signer"
)

// Clock supplies the current time for the oauth_timestamp parameter.
// Substitute a fixed clock in tests to get deterministic output.
type Clock func() time.Time

// Consumer is a registered OAuth client identity and the single entry point
// for signing requests. The consumer key and secret are fixed at
// construction; the message signer and signing strategy can be swapped at
// any time between signing calls.
//
// A Consumer may be shared by concurrent callers: each Sign call runs under
// a per-consumer lock, so at most one signing pass is in flight at a time.
// Swapping the signer or strategy concurrently with an in-flight Sign is
// not synchronized; reconfigure only between calls.
type Consumer struct {
	mu sync.Mutex

	consumerKey    string
	consumerSecret string
	token          string

	messageSigner   signer.MessageSigner
	signingStrategy signer.SigningStrategy

	// params supplied directly by the caller, merged into every request
	additionalParameters *parameters.Store

	// finalized store of the most recent Sign, kept for inspection
	requestParameters *parameters.Store

	sendEmptyTokens bool

	nonces NonceSource
	clock  Clock
}

// New creates a consumer with the given key and secret, an HMAC-SHA1
// message signer, an Authorization-header signing strategy, and a random
// nonce source seeded once at construction.
func New(consumerKey, consumerSecret string) *Consumer {
	c := &Consumer{
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		nonces:         NewRandomNonceSource(time.Now().UnixNano()),
		clock:          time.Now,
	}
	c.SetMessageSigner(signer.NewHMACSHA1Signer())
	c.SetSigningStrategy(signer.NewAuthorizationHeaderStrategy())
	return c
}

// ConsumerKey returns the consumer key.
func (c *Consumer) ConsumerKey() string {
	return c.consumerKey
}

// ConsumerSecret returns the consumer secret.
func (c *Consumer) ConsumerSecret() string {
	return c.consumerSecret
}

// SetMessageSigner installs a message signer and immediately pushes the
// consumer secret into it.
func (c *Consumer) SetMessageSigner(messageSigner signer.MessageSigner) {
	c.messageSigner = messageSigner
	messageSigner.SetConsumerSecret(c.consumerSecret)
}

// SetSigningStrategy installs a signing strategy.
func (c *Consumer) SetSigningStrategy(strategy signer.SigningStrategy) {
	c.signingStrategy = strategy
}

// SetTokenWithSecret stores the token obtained from the service provider
// and pushes the token secret into the current message signer.
func (c *Consumer) SetTokenWithSecret(token, tokenSecret string) {
	c.token = token
	c.messageSigner.SetTokenSecret(tokenSecret)
}

// Token returns the currently stored token, or "" when none is set.
func (c *Consumer) Token() string {
	return c.token
}

// TokenSecret returns the token secret held by the current message signer.
func (c *Consumer) TokenSecret() string {
	return c.messageSigner.TokenSecret()
}

// SetAdditionalParameters supplies parameters that are merged into every
// signing pass without going through the request object. They never
// overwrite values collected from the request.
func (c *Consumer) SetAdditionalParameters(params *parameters.Store) {
	c.additionalParameters = params
}

// SetSendEmptyTokens controls whether an empty oauth_token parameter is
// sent when no token is set. Some providers require the parameter to be
// present even before a token exchange.
func (c *Consumer) SetSendEmptyTokens(enable bool) {
	c.sendEmptyTokens = enable
}

// SetNonceSource replaces the nonce generator.
func (c *Consumer) SetNonceSource(nonces NonceSource) {
	c.nonces = nonces
}

// SetClock replaces the timestamp clock.
func (c *Consumer) SetClock(clock Clock) {
	c.clock = clock
}

// RequestParameters returns the finalized parameter store of the most
// recent Sign call, including the synthesized protocol parameters. It is
// retained for diagnostics until the next Sign call replaces it.
func (c *Consumer) RequestParameters() *parameters.Store {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.requestParameters
}

// Sign assembles the complete OAuth parameter set for req, computes a
// signature with the configured message signer, writes it into req via the
// configured signing strategy, and returns the mutated request.
//
// Parameters are gathered in fixed precedence order: caller-supplied
// additional parameters and Authorization-header parameters merge first
// (never clobbering earlier values), then query-string and form-body
// parameters overwrite. Missing protocol parameters (consumer key,
// signature method, timestamp, nonce, version, token) are synthesized; a
// stale oauth_signature is always purged before signing.
//
// Sign fails with *oauth.ExpectationFailedError when the consumer key or
// secret is empty, *oauth.CommunicationError when reading the request body
// fails, and *oauth.MessageSignerError when the signature computation
// fails. On any failure the request is left unmodified.
func (c *Consumer) Sign(req request.HTTPRequest) (request.HTTPRequest, error) {
	return c.sign(req, nil)
}

// SignHTTP signs a *http.Request in place.
func (c *Consumer) SignHTTP(req *http.Request) error {
	_, err := c.Sign(request.NewNetHTTPRequest(req))
	return err
}

// SignURL signs a bare URL and returns it with the protocol parameters and
// signature appended to its query string. The consumer's configured signing
// strategy is not consulted and not changed; the query-string strategy
// applies to this call only.
func (c *Consumer) SignURL(rawURL string) (string, error) {
	req := request.NewURLRequest(rawURL)
	if _, err := c.sign(req, signer.NewQueryStringStrategy()); err != nil {
		return "", err
	}
	return req.RequestURL(), nil
}

func (c *Consumer) sign(req request.HTTPRequest, strategyOverride signer.SigningStrategy) (request.HTTPRequest, error) {
	if c.consumerKey == "" {
		return nil, &oauth.ExpectationFailedError{Reason: "consumer key not set"}
	}
	if c.consumerSecret == "" {
		return nil, &oauth.ExpectationFailedError{Reason: "consumer secret not set"}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// A fresh store per call; parameters never leak between requests.
	params := parameters.New()
	c.requestParameters = params

	params.PutAll(c.additionalParameters, false)
	c.collectHeaderParameters(req, params)
	c.collectQueryParameters(req, params)
	if err := c.collectBodyParameters(req, params); err != nil {
		return nil, &oauth.CommunicationError{Err: err}
	}

	c.completeOAuthParameters(params)

	// A signature left over from a previous signing of the same request
	// must never influence the new one.
	params.Remove(oauth.SignatureParam)

	signature, err := c.messageSigner.Sign(req, params)
	if err != nil {
		return nil, &oauth.MessageSignerError{Err: err}
	}

	strategy := c.signingStrategy
	if strategyOverride != nil {
		strategy = strategyOverride
	}
	if err := strategy.WriteSignature(signature, req, params); err != nil {
		return nil, fmt.Errorf("failed to write signature: %w", err)
	}

	return req, nil
}

// collectHeaderParameters merges parameters from the request's OAuth
// Authorization header, per OAuth Core 1.0 section 9.1.1. Header values are
// defaults: they never overwrite values already present.
func (c *Consumer) collectHeaderParameters(req request.HTTPRequest, out *parameters.Store) {
	out.PutAll(oauth.HeaderToParams(req.Header(oauth.AuthorizationHeader)), false)
}

// collectQueryParameters merges parameters from the request URL's query
// string, per OAuth Core 1.0 section 9.1.1. Query values overwrite
// same-named values collected earlier.
func (c *Consumer) collectQueryParameters(req request.HTTPRequest, out *parameters.Store) {
	if _, query, found := strings.Cut(req.RequestURL(), "?"); found {
		out.PutAll(oauth.DecodeForm(query), true)
	}
}

// collectBodyParameters merges x-www-form-urlencoded body parameters, per
// OAuth Core 1.0 section 9.1.1. A failure reading the payload aborts the
// signing pass.
func (c *Consumer) collectBodyParameters(req request.HTTPRequest, out *parameters.Store) error {
	if !strings.HasPrefix(req.ContentType(), oauth.FormEncodedType) {
		return nil
	}

	payload, err := req.MessagePayload()
	if err != nil {
		return err
	}
	body, err := oauth.DecodeFormReader(payload)
	if err != nil {
		return err
	}
	out.PutAll(body, true)
	return nil
}

// completeOAuthParameters synthesizes any protocol parameters required for
// signing that the request did not already carry. A value supplied by the
// caller or the request is never overwritten.
func (c *Consumer) completeOAuthParameters(out *parameters.Store) {
	if !out.ContainsKey(oauth.ConsumerKeyParam) {
		out.Put(oauth.ConsumerKeyParam, c.consumerKey, true)
	}
	if !out.ContainsKey(oauth.SignatureMethodParam) {
		out.Put(oauth.SignatureMethodParam, c.messageSigner.SignatureMethod(), true)
	}
	if !out.ContainsKey(oauth.TimestampParam) {
		out.Put(oauth.TimestampParam, strconv.FormatInt(c.clock().Unix(), 10), true)
	}
	if !out.ContainsKey(oauth.NonceParam) {
		out.Put(oauth.NonceParam, c.nonces.Nonce(), true)
	}
	if !out.ContainsKey(oauth.VersionParam) {
		out.Put(oauth.VersionParam, oauth.Version10, true)
	}
	if !out.ContainsKey(oauth.TokenParam) {
		if c.token != "" || c.sendEmptyTokens {
			out.Put(oauth.TokenParam, c.token, true)
		}
	}
}
