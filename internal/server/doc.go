// Package server runs the transports of the API: the HTTP server and the
// optional gRPC health server. Listeners are bound when the server is
// created; RunServer blocks until a stop signal and then drains both.
package server
