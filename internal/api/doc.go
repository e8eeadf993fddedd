// Package api contains the HTTP handlers, request/response models, and
// error mapping for the HBnB REST API. Handlers are thin: they decode
// and validate payloads, call the service facade, and translate the
// returned errors into HTTP status codes.
package api
