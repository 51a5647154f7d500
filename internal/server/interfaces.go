package server

// Server defines the lifecycle of the backend process.
//
// RunServer blocks until a stop signal arrives or Shutdown is called, then
// drains in-flight requests and stops the workers.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown asks a running server to stop. It does not wait.
	Shutdown()
}
