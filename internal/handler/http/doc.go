// Package http implements the REST transport of the go-places server.
//
// It wires chi routes for users, places and uploaded images, decodes JSON
// and multipart bodies, and turns service errors into JSON error responses.
// Authentication, request tracing, access logging, CORS and compression
// are applied here before requests reach the service layer.
package http
