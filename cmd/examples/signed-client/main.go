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
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"

	"go.uber.org/zap"

	"github.com/signpost-project/signpost-go/pkg/consumer"
	"github.com/signpost-project/signpost-go/pkg/oauth"
	"github.com/signpost-project/signpost-go/pkg/transport"
)

func main() {
	fmt.Println("Signpost-Go - Signed HTTP Client Example")
	fmt.Println("=========================================")

	// Start a local server that echoes the Authorization header it received
	fmt.Println("\n1. Starting local echo server...")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "received %s %s\nAuthorization: %s\n",
			r.Method, r.URL.RequestURI(), r.Header.Get(oauth.AuthorizationHeader))
	}))
	defer server.Close()
	fmt.Printf("   Listening on %s\n", server.URL)

	// Build a consumer and wrap a client with the signing transport
	fmt.Println("\n2. Creating signing HTTP client...")
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	c := consumer.New("dpf43f3p2l4k3l03", "kd94hf93k423kf44")
	c.SetTokenWithSecret("nnch734d00sl2jdk", "pfkkdhi9sl3r4s00")
	client := transport.New(nil, c, transport.WithLogger(logger)).Client()

	// Every request through this client is signed transparently
	fmt.Println("\n3. Sending a GET request...")
	resp, err := client.Get(server.URL + "/photos?file=vacation.jpg")
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	echo, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		log.Fatalf("Failed to read response: %v", err)
	}
	fmt.Printf("   Server saw:\n%s", indent(string(echo)))

	fmt.Println("\n4. Sending a form-encoded POST request...")
	resp, err = client.Post(server.URL+"/photos", oauth.FormEncodedType,
		strings.NewReader("title=sunset&album=holiday"))
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	echo, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		log.Fatalf("Failed to read response: %v", err)
	}
	fmt.Printf("   Server saw:\n%s", indent(string(echo)))

	fmt.Println("\nExample completed!")
}

func indent(s string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		b.WriteString("      ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
