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

// Command oauthsign signs a single HTTP request from the command line and
// prints the resulting Authorization header (or, with --query, the signed
// URL). It is meant for debugging provider integrations and for scripting
// signed calls with curl.
package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	signpost "github.com/signpost-project/signpost-go"
	"github.com/signpost-project/signpost-go/pkg/consumer"
	"github.com/signpost-project/signpost-go/pkg/oauth"
	"github.com/signpost-project/signpost-go/pkg/signer"
)

var (
	requestURL      string
	method          string
	data            string
	consumerKey     string
	consumerSecret  string
	token           string
	tokenSecret     string
	signatureMethod string
	asQuery         bool
	logLevel        string
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "oauthsign",
		Short:   "Sign an HTTP request with OAuth 1.0a credentials",
		Version: signpost.Version,
		RunE:    runSign,
	}

	rootCmd.Flags().StringVarP(&requestURL, "url", "u", "", "Request URL to sign (required)")
	rootCmd.Flags().StringVarP(&method, "method", "X", http.MethodGet, "HTTP method")
	rootCmd.Flags().StringVarP(&data, "data", "d", "", "Form-encoded request body (implies POST unless --method is set)")
	rootCmd.Flags().StringVar(&consumerKey, "consumer-key", "", "OAuth consumer key (env: OAUTHSIGN_CONSUMER_KEY)")
	rootCmd.Flags().StringVar(&consumerSecret, "consumer-secret", "", "OAuth consumer secret (env: OAUTHSIGN_CONSUMER_SECRET)")
	rootCmd.Flags().StringVar(&token, "token", "", "OAuth token (env: OAUTHSIGN_TOKEN)")
	rootCmd.Flags().StringVar(&tokenSecret, "token-secret", "", "OAuth token secret (env: OAUTHSIGN_TOKEN_SECRET)")
	rootCmd.Flags().StringVar(&signatureMethod, "signature-method", "hmac-sha1", "Signature method (hmac-sha1, hmac-sha256, plaintext)")
	rootCmd.Flags().BoolVar(&asQuery, "query", false, "Put OAuth parameters in the query string and print the signed URL")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSign(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(logLevel)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	applyEnvCredentials()

	if requestURL == "" {
		return fmt.Errorf("--url is required")
	}
	if consumerKey == "" || consumerSecret == "" {
		return fmt.Errorf("consumer credentials are required (flags or OAUTHSIGN_* environment)")
	}

	c := consumer.New(consumerKey, consumerSecret)
	s, err := newSigner(signatureMethod)
	if err != nil {
		return err
	}
	c.SetMessageSigner(s)
	if token != "" || tokenSecret != "" {
		c.SetTokenWithSecret(token, tokenSecret)
	}

	logger.Debug("signing request",
		zap.String("method", method),
		zap.String("url", requestURL),
		zap.String("signature_method", s.SignatureMethod()))

	if asQuery {
		signedURL, err := c.SignURL(requestURL)
		if err != nil {
			return fmt.Errorf("failed to sign URL: %w", err)
		}
		fmt.Println(signedURL)
		return nil
	}

	if data != "" && !cmd.Flags().Changed("method") {
		method = http.MethodPost
	}
	var body *strings.Reader
	if data != "" {
		body = strings.NewReader(data)
	} else {
		body = strings.NewReader("")
	}
	req, err := http.NewRequest(method, requestURL, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if data != "" {
		req.Header.Set("Content-Type", oauth.FormEncodedType)
	}

	if err := c.SignHTTP(req); err != nil {
		return fmt.Errorf("failed to sign request: %w", err)
	}

	fmt.Println(req.Header.Get(oauth.AuthorizationHeader))
	return nil
}

// applyEnvCredentials fills credentials not given as flags from the
// OAUTHSIGN_* environment, so secrets can stay out of shell history.
func applyEnvCredentials() {
	v := viper.New()
	v.SetEnvPrefix("OAUTHSIGN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if consumerKey == "" {
		consumerKey = v.GetString("consumer_key")
	}
	if consumerSecret == "" {
		consumerSecret = v.GetString("consumer_secret")
	}
	if token == "" {
		token = v.GetString("token")
	}
	if tokenSecret == "" {
		tokenSecret = v.GetString("token_secret")
	}
}

func newSigner(name string) (signer.MessageSigner, error) {
	switch strings.ToLower(name) {
	case "hmac-sha1":
		return signer.NewHMACSHA1Signer(), nil
	case "hmac-sha256":
		return signer.NewHMACSHA256Signer(), nil
	case "plaintext":
		return signer.NewPlainTextSigner(), nil
	default:
		return nil, fmt.Errorf("unknown signature method %q", name)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsed)
	return cfg.Build()
}
