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

// Package signpost provides version information for signpost-go.
package signpost

const (
	// Version is the current version of signpost-go
	Version = "1.0.0"

	// OAuthProtocolVersion is the OAuth Core specification version this library implements
	// See: https://oauth.net/core/1.0a/
	OAuthProtocolVersion = "1.0a"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	SignpostVersion      string
	OAuthProtocolVersion string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		SignpostVersion:      Version,
		OAuthProtocolVersion: OAuthProtocolVersion,
	}
}
