// Package client contains the HTTP transport of the rfidcredits client.
//
// # Overview
//
//  1. SessionContext owns the cookie jar. It is created once by the
//     application root and shared by everything that talks to the server, so
//     the session cookie set by a successful login rides along on every later
//     request.
//  2. FormExecutor issues one application/x-www-form-urlencoded POST per call,
//     with redirect-following chosen per call, and returns the status code.
//     It never retries.
//
// # Error Handling
//
// Transport failures are returned as *TransportError (errors.Is(err,
// ErrTransport)). Status-code interpretation is left to the services, which
// use ErrAuthenticationFailed and *CreditUpdateError.
//
// Concurrency
//
// A FormExecutor and its SessionContext are safe for concurrent use; no
// ordering between concurrent requests is implied.
package client
