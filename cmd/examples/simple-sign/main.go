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

package main

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/signpost-project/signpost-go/pkg/consumer"
	"github.com/signpost-project/signpost-go/pkg/oauth"
	"github.com/signpost-project/signpost-go/pkg/signer"
)

func main() {
	fmt.Println("Signpost-Go - Simple Signing Example")
	fmt.Println("=====================================")

	// Create a consumer with the token credentials from RFC 5849 Appendix A
	fmt.Println("\n1. Creating OAuth consumer...")
	c := consumer.New("dpf43f3p2l4k3l03", "kd94hf93k423kf44")
	c.SetTokenWithSecret("nnch734d00sl2jdk", "pfkkdhi9sl3r4s00")
	fmt.Println("   Consumer key: dpf43f3p2l4k3l03")

	// Sign a GET request
	fmt.Println("\n2. Signing a GET request...")
	req, err := http.NewRequest(http.MethodGet,
		"http://photos.example.net/photos?file=vacation.jpg&size=original", nil)
	if err != nil {
		log.Fatalf("Failed to build request: %v", err)
	}
	if err := c.SignHTTP(req); err != nil {
		log.Fatalf("Failed to sign request: %v", err)
	}
	fmt.Printf("   %s: %s\n", oauth.AuthorizationHeader, req.Header.Get(oauth.AuthorizationHeader))

	// Sign a form-encoded POST request with a different signature method
	fmt.Println("\n3. Signing a POST request with HMAC-SHA256...")
	// Swapping the signer resets the token secret, so re-apply the token.
	c.SetMessageSigner(signer.NewHMACSHA256Signer())
	c.SetTokenWithSecret("nnch734d00sl2jdk", "pfkkdhi9sl3r4s00")
	post, err := http.NewRequest(http.MethodPost, "http://photos.example.net/photos",
		strings.NewReader("title=sunset&album=holiday"))
	if err != nil {
		log.Fatalf("Failed to build request: %v", err)
	}
	post.Header.Set("Content-Type", oauth.FormEncodedType)
	if err := c.SignHTTP(post); err != nil {
		log.Fatalf("Failed to sign request: %v", err)
	}
	fmt.Printf("   %s: %s\n", oauth.AuthorizationHeader, post.Header.Get(oauth.AuthorizationHeader))

	// Sign a bare URL for clients that cannot set headers
	fmt.Println("\n4. Signing a bare URL...")
	c.SetMessageSigner(signer.NewHMACSHA1Signer())
	c.SetTokenWithSecret("nnch734d00sl2jdk", "pfkkdhi9sl3r4s00")
	signedURL, err := c.SignURL("http://photos.example.net/feed?page=2")
	if err != nil {
		log.Fatalf("Failed to sign URL: %v", err)
	}
	fmt.Printf("   Signed URL: %s\n", signedURL)

	fmt.Println("\nExample completed!")
}
