package federation

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Resolver fans stub resolution out to the owning services. Each service
// tag maps to a client for that peer's entity endpoint.
type Resolver struct {
	peers map[string]*Client
}

// NewResolver constructs a Resolver over the given peer base URLs, keyed by
// service tag.
func NewResolver(peerURLs map[string]string) *Resolver {
	peers := make(map[string]*Client, len(peerURLs))
	for service, baseURL := range peerURLs {
		peers[service] = NewClient(baseURL)
	}
	return &Resolver{peers: peers}
}

// ResolveAll resolves a mixed batch of stubs, one peer round-trip per
// owning service, run concurrently. Results keep the input order; a missing
// entity stays null in its slot.
func (r *Resolver) ResolveAll(ctx context.Context, entityTypes []string, stubs []Stub) ([]json.RawMessage, error) {
	if len(entityTypes) != len(stubs) {
		return nil, fmt.Errorf("federation: %d types for %d stubs", len(entityTypes), len(stubs))
	}

	// Group representation indexes by owning service.
	byService := map[string][]int{}
	for i, stub := range stubs {
		byService[stub.Service] = append(byService[stub.Service], i)
	}

	results := make([]json.RawMessage, len(stubs))
	g, ctx := errgroup.WithContext(ctx)
	for service, indexes := range byService {
		client, ok := r.peers[service]
		if !ok {
			return nil, fmt.Errorf("federation: no peer configured for service %q", service)
		}
		g.Go(func() error {
			reps := make([]Representation, 0, len(indexes))
			for _, i := range indexes {
				reps = append(reps, Representation{Type: entityTypes[i], ID: stubs[i].ID})
			}
			entities, err := client.Resolve(ctx, reps)
			if err != nil {
				return err
			}
			for n, i := range indexes {
				results[i] = entities[n]
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
