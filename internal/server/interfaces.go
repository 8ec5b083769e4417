package server

// Server runs the inbound transport until a stop signal arrives, then shuts
// it down gracefully.
type Server interface {
	RunServer()
	Shutdown()
}
