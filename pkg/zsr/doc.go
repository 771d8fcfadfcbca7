// Package zsr is a small engine for querying the Octane ZSR REST API.
//
// # Overview
//
// An Endpoint describes one call: its path relative to the base URL, its
// method, its query parameters and an optional body. The engine turns a
// descriptor into an HTTP request, hands it to a transport, and decodes the
// JSON response into the caller's type. Concrete descriptors for events,
// matches, games, players, teams, stats and records live in package octane.
//
// Two transports are supported. A Client blocks on Rest. An AsyncClient
// returns a channel from RestAsync and the engine waits on it (or on the
// context). Query and QueryAsync build identical requests and classify
// failures identically.
//
//	cli, err := zsrclient.New(zsrclient.DefaultConfig())
//	if err != nil { log.Fatal(err) }
//
//	ep, err := octane.NewGetEvent("5f35882d53fbbb5894b43040")
//	if err != nil { log.Fatal(err) }
//
//	event, err := zsr.Query[octane.Event](ctx, ep, cli)
//
// # Pagination
//
// Descriptors that embed Paged can be fetched one page at a time with
// NewPage and QueryPage, walked with the blocking iterator from Iter, or
// ranged over lazily with Stream:
//
//	ep, err := octane.NewListMatches().Tier(octane.TierS).Build()
//	if err != nil { return err }
//
//	for match, err := range zsr.Stream[octane.Match](ctx, ep, async) {
//	  if err != nil { return err }
//	  fmt.Println(match.ID)
//	}
//
// Traversals stop after an empty page or a page shorter than its requested
// size. A failed page yields one *PageError and ends the traversal; start
// again with WithStartPage to resume from that page.
//
// # Errors
//
// Every failure is an *APIError tagged with the stage that failed. Response
// failures wrap a *ResponseError that keeps the raw JSON for status and type
// mismatches. IsHTTPStatus, IsDataType, IsParse and StatusCode inspect them.
package zsr
