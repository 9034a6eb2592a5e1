// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-car-keeper server handlers and the API client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
package app

const (
	// MsgUserRegistered is the body of a successful registration.
	MsgUserRegistered = "User registered successfully"

	// MsgHello is the body of the authenticated greeting endpoint.
	MsgHello = "Hello, World!"

	// MsgHome is the body of the authenticated landing endpoint.
	MsgHome = "You are home"

	// MsgCarDeleted is the body of a successful car deletion.
	MsgCarDeleted = "Car Deleted"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request body fails basic
	// validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidUsernamePassword is returned for every failed login,
	// whatever the cause.
	MsgInvalidUsernamePassword = "invalid username/password"

	// MsgUsernameAlreadyExists is returned when registration hits a taken
	// username.
	MsgUsernameAlreadyExists = "username already exists"
)
