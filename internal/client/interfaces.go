// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract of runnable client applications.
type Client interface {
	// Run executes one command line and returns when it is done.
	Run(ctx context.Context, args []string) error
}

// Prompter asks the user for credentials interactively.
type Prompter interface {
	PromptCredentials(ctx context.Context, username string) (string, string, error)
}
