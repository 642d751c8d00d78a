// Package server runs the HTTP listener of the local stand-in list service
// and shuts it down gracefully on SIGINT, SIGTERM or SIGQUIT.
package server
