// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings shared by the protocol catalog
// handlers and middleware.
//
// Every error body of the API has the shape {"message": "..."}; keeping the
// wording here makes it consistent across handlers.
package app

const (
	// MsgInvalidDataProvided is returned when a request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgUsernamePasswordRequired is returned by login when either
	// credential is empty.
	MsgUsernamePasswordRequired = "username and password are required"

	// MsgInvalidCredentials is returned for an unknown username and for a
	// wrong password alike.
	MsgInvalidCredentials = "invalid username or password"

	MsgInternalServerError = "internal server error"

	// MsgTokenAbsent is returned when the Authorization header is missing or
	// carries no bearer token.
	MsgTokenAbsent = "token absent"

	// MsgInvalidToken is returned for a bad signature, a wrong issuer or an
	// expired token.
	MsgInvalidToken = "invalid token"

	MsgAdminRoleRequired = "admin role required"

	// MsgUserNoLongerExists is returned when a valid token refers to a
	// deleted account.
	MsgUserNoLongerExists = "user no longer exists"

	MsgInvalidID = "invalid id"

	MsgProtocolNotFound      = "protocol not found"
	MsgProtocolAlreadyExists = "protocol already exists"
	MsgNoPermissionToDelete  = "no permission to delete this protocol"

	MsgUserNotFound           = "user not found"
	MsgUsernameAlreadyExists  = "username already exists"
	MsgCannotDeleteOwnAccount = "cannot delete your own account"
	MsgNotFound               = "not found"
	MsgNothingToUpdate        = "nothing to update"

	// success messages

	MsgLoginSuccessful = "login successful"
	MsgProtocolAdded   = "protocol added"
	MsgProtocolDeleted = "protocol deleted"
	MsgUserCreated     = "user created"
	MsgUserUpdated     = "user updated"
	MsgUserDeleted     = "user deleted"
)
