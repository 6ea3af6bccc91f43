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
	"math/rand"
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// NonceSource produces the single-use values sent as oauth_nonce.
// Implementations must be safe for concurrent use when the source is shared
// between consumers.
type NonceSource interface {
	Nonce() string
}

// RandomNonceSource emits decimal renderings of a 64-bit pseudo-random
// stream. The generator is seeded once at construction and never reseeded,
// so consecutive nonces from one source never collide in practice.
type RandomNonceSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomNonceSource creates a nonce source seeded with seed.
func NewRandomNonceSource(seed int64) *RandomNonceSource {
	return &RandomNonceSource{rng: rand.New(rand.NewSource(seed))}
}

// Nonce returns the next pseudo-random 64-bit value as a decimal string.
func (s *RandomNonceSource) Nonce() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strconv.FormatUint(s.rng.Uint64(), 10)
}

// UUIDNonceSource emits random UUID strings. Useful against providers that
// reject purely numeric nonces.
type UUIDNonceSource struct{}

// Nonce returns a fresh random UUID.
func (UUIDNonceSource) Nonce() string {
	return uuid.NewString()
}
