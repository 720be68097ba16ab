package cache

import (
	"context"

	"github.com/msto63/koala/foundation/koala"
	"github.com/msto63/koala/foundation/koala/codegen"
)

var _ koala.ArtifactCache = (*Artifacts)(nil)

// Artifacts is an in-memory artifact cache, optionally in front of a
// persistent one. Hits from the persistent cache are promoted into memory.
type Artifacts struct {
	memory *Cache[*codegen.Artifact]
	next   koala.ArtifactCache
}

// NewArtifacts creates the memory tier. next may be nil.
func NewArtifacts(cfg Config, next koala.ArtifactCache) *Artifacts {
	return &Artifacts{
		memory: New[*codegen.Artifact](cfg),
		next:   next,
	}
}

// Get checks memory first, then the next tier
func (a *Artifacts) Get(ctx context.Context, key string) (*codegen.Artifact, bool, error) {
	if artifact, ok := a.memory.Get(key); ok {
		return artifact, true, nil
	}
	if a.next == nil {
		return nil, false, nil
	}

	artifact, ok, err := a.next.Get(ctx, key)
	if err != nil || !ok {
		return nil, false, err
	}
	a.memory.Set(key, artifact)
	return artifact, true, nil
}

// Put stores in memory and in the next tier. A failure of the next tier is
// returned after the memory tier has been updated.
func (a *Artifacts) Put(ctx context.Context, key, compilationID string, artifact *codegen.Artifact) error {
	a.memory.Set(key, artifact)
	if a.next == nil {
		return nil
	}
	return a.next.Put(ctx, key, compilationID, artifact)
}

// Stats reports memory tier hits and misses
func (a *Artifacts) Stats() (hits, misses int64, hitRate float64) {
	return a.memory.Stats()
}
