// Package server runs the HTTP transport of the go-places API.
//
// It owns the [http.Server] lifecycle: listening, stopping when the run
// context is canceled, and draining in-flight requests on shutdown.
package server
