// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"net"
	"strings"
	"syscall"
)

const msgServerUnreachable = "server is unreachable, check the address and your network"

// HumanizeError turns transport failures into a hint the user can act on.
// Anything else is returned as is.
func HumanizeError(err error) string {
	if err == nil {
		return ""
	}

	if unreachable(err) {
		return msgServerUnreachable
	}
	return err.Error()
}

func unreachable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}

	var dnsErr *net.DNSError
	var opErr *net.OpError
	if errors.As(err, &dnsErr) || errors.As(err, &opErr) {
		return true
	}

	// resty flattens some dial errors into plain text
	s := strings.ToLower(err.Error())
	for _, hint := range []string{"connection refused", "no such host", "network is unreachable", "i/o timeout"} {
		if strings.Contains(s, hint) {
			return true
		}
	}
	return false
}
