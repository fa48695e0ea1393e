// Package ipc provides JSON-RPC daemon control over a Unix domain socket.
//
// The server registers the daemon under the service name "Slugline" and
// serves one goroutine per connection. The client wraps every RPC in a
// typed method so CLI call sites never touch method name strings. Request
// and response payloads reuse the api package DTOs, keeping the socket
// surface aligned with the HTTP API.
package ipc
