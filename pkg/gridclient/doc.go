// Package gridclient provides the main entry point for talking to the
// GridIron REST API: a chainable RequestBuilder that accumulates query
// configuration, derives request URLs, and executes HTTP calls.
//
// # Overview
//
// A builder holds one request's worth of configuration — endpoint,
// service, function, field-selection mask, filter, pagination window,
// credentials — mutated through chainable setters and executed with
// Exec. On top of that single-call primitive sit GetPages (sequential
// multi-page fetch), Pages (a page iterator), and EmployeeLogin (a
// session-token exchange that adopts the returned pair as the builder's
// credentials).
//
// Getting started
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/gridiron-io/gridapi-client/pkg/gridclient"
//	)
//
//	func example() {
//	  builder := gridclient.NewWithPassword("api.gridiron.cloud/rest/v3", "user", "key")
//	  _ = builder.ObjectMask().Push("", "id", "hostname")
//
//	  result, err := builder.Service("Account").Function("getHardware").Exec(context.Background())
//	  if err != nil { log.Fatal(err) }
//	  _ = result
//	}
//
// # Concurrency
//
// One logical thread of control per builder: operations are sequential,
// page fetches are strictly ordered with a pacing delay, and no internal
// locking exists. Sharing a builder across goroutines is out of scope.
package gridclient
