/*
Package zsrclient builds transports for the zsr.octane.gg API.

	client, err := zsrclient.New(zsrclient.DefaultConfig())
	if err != nil {
		log.Fatal(err)
	}

	ep, err := octane.NewGetEvent("5f35882d53fbbb5894b43040")
	if err != nil {
		log.Fatal(err)
	}

	event, err := zsr.Query[octane.Event](ctx, ep, client)

Each client owns its base URL; there is no package level default client.
Use NewAsync for a client whose exchanges run on their own goroutines, for
zsr.QueryAsync and zsr.Stream.
*/
package zsrclient
