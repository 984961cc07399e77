// Package client is a typed HTTP client for the task REST API.
//
// Every method takes a context and returns either the decoded payload or an
// error. Responses outside the 2xx range are reported as *APIError, carrying
// the status code and the message from the server's {"error": "..."} body.
package client
