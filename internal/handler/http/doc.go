// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as request tracing, access logging, rate
// limiting, authentication, and error translation are handled in this package
// before requests are delegated to the service layer.
//
// Every failure reaching this layer is written by a single boundary
// ([Handler.writeError]) as the {message, status, stack?} envelope.
package http
