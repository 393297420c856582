// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the protocol
// catalog.
//
// [App] dispatches one subcommand per run. The login state lives in a
// [session.Session] passed in by the caller and shared with the server
// adapter, so a rejected token clears it for every later command.
//
// Commands that need a login fail fast without calling the server; user
// management additionally requires the admin role.
package client
