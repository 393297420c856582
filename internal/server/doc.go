// Package server runs the HTTP server of the protocol catalog and shuts it
// down gracefully on SIGINT, SIGTERM or SIGQUIT.
package server
