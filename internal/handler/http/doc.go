// Package http implements the REST surface of the local stand-in list
// service.
//
// Routes live under /todo and mirror the remote API the client talks to:
// owners are read and provisioned under /users/{owner}, todos are created
// under /todos/{owner} and changed or removed under /todos/{id}. Request
// tracing, access logging and response compression are applied as
// middleware before requests reach the service layer.
package http
