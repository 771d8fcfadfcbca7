// Package octane describes the zsr.octane.gg resources: typed ids, wire
// enums, request descriptors and the response types they decode into.
//
// Single resources are fetched with a Get descriptor. Collections are
// configured with a builder whose Build validates the filters:
//
//	ep, err := octane.NewListEvents().
//		Tier(octane.TierS).
//		Region(octane.RegionEurope).
//		Sort(octane.EventSortName, zsr.Desc).
//		Build()
//
// List descriptors embed zsr.Paged, so they work with zsr.Iter and
// zsr.Stream. Stats and records descriptors return one collection and are
// not paginated.
package octane
