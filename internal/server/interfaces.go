package server

// Server is the lifecycle contract of the transport server.
type Server interface {
	// RunServer serves requests until a stop signal arrives or listening
	// fails, and returns only after shutdown has finished.
	RunServer() error

	// Shutdown gracefully stops the server.
	Shutdown() error
}
