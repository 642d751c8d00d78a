// Package utils provides small helpers shared by the client and the local
// stand-in server: the resty HTTP client wrapper, JSON response writing and
// trace id generation.
package utils
