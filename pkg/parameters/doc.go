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

// Package parameters provides the ordered multimap that carries request
// parameters through an OAuth signing pass.
//
// # Insertion Semantics
//
// Every insertion chooses between two behaviors:
//
//	store.Put("a", "1", true)  // replace: any existing values for "a" are dropped
//	store.Put("a", "2", false) // merge: existing values stay, "2" is appended
//
// The merge behavior is what lets parameters collected from independent
// request sources (Authorization header, query string, form body) coexist as
// multiple values for the same name instead of clobbering one another.
//
// # Ordering
//
// Names iterate in first-insertion order and values in append order, so
// repeated passes over the same store are deterministic. The OAuth signature
// base string requires lexicographic ordering; that reordering belongs to the
// message signer and never changes the store itself.
package parameters
