// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the recipe
// keeper HTTP handlers and middleware.
//
// The Msg* constants are the human-readable strings written into response
// bodies when the underlying error must not be shown to the client.
package app

const (
	// MsgInternalServerError replaces the details of storage and other
	// server-side failures.
	MsgInternalServerError = "internal server error"

	// MsgAuthorizationRequired is returned when a protected route is called
	// without an Authorization header.
	MsgAuthorizationRequired = "authorization required"

	// MsgTokenIsExpiredOrInvalid is returned when the bearer token is expired
	// or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgTokenCreationFailed is returned when login or registration succeeded
	// but no session token could be issued.
	MsgTokenCreationFailed = "could not create session token"
)
