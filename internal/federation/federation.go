// Package federation implements the cross-service entity discipline: a
// service that references an entity owned elsewhere only ever constructs an
// identifier-only stub, and a service that owns an entity type registers
// exactly one resolution function for it. The federation shell dispatches
// stub resolution to the owning service through the /entities endpoint.
package federation

import (
	"context"
	"errors"
	"fmt"
)

// Service tags for stub construction. Foreign identifiers are opaque; only
// the owning service interprets them.
const (
	ServiceUsers   = "users"
	ServiceLeagues = "leagues"
	ServiceTeams   = "teams"
	ServicePlayers = "players"
)

// ErrEntityNotFound reports an identifier the owning service no longer
// holds. It resolves to a null entity in the merged graph, never a
// request-level failure.
var ErrEntityNotFound = errors.New("entity not found")

// Stub is a forward reference to an entity owned by another service. It
// carries no data beyond the identifier and the owning-service tag and is
// never persisted.
type Stub struct {
	ID      string `json:"id" bson:"id"`
	Service string `json:"service" bson:"service"`
}

// ResolveFunc loads the full entity for an identifier, or ErrEntityNotFound.
type ResolveFunc func(ctx context.Context, id string) (any, error)

// Registry maps entity type tags to their resolution entry points. It is
// populated once at startup and read-only afterwards.
type Registry struct {
	resolvers map[string]ResolveFunc
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{resolvers: make(map[string]ResolveFunc)}
}

// Register installs the resolution entry point for an entity type. Each
// type has exactly one owner; a duplicate registration is a wiring bug.
func (r *Registry) Register(entityType string, fn ResolveFunc) {
	if _, exists := r.resolvers[entityType]; exists {
		panic(fmt.Sprintf("federation: duplicate resolver for entity type %q", entityType))
	}
	r.resolvers[entityType] = fn
}

// Resolve dispatches to the registered resolver. Unknown entity types
// resolve like missing entities so a stale peer cannot distinguish them.
func (r *Registry) Resolve(ctx context.Context, entityType, id string) (any, error) {
	fn, ok := r.resolvers[entityType]
	if !ok {
		return nil, ErrEntityNotFound
	}
	return fn(ctx, id)
}
