package silo

import "github.com/kamstrup/intmap"

// cacheKind distinguishes an Unordered incremental scan from an Ordered
// binding to a statically declared Group.
type cacheKind int

const (
	cacheUnordered cacheKind = iota
	cacheOrdered
)

// queryCache holds one query's matched-archetype state for one Storage.
// Unordered caches grow monotonically as new archetypes are discovered;
// Ordered caches delegate to their bound Group, retrieving only the
// SubGroup window the query's filter exactly matched - so two queries
// bound to different prefixes of the same Group each read their own
// contiguous window of one shared, stably-ordered member list.
//
// The SubGroup itself is never cached across calls: earlier prefixes can
// gain members after this cache is constructed, which shifts every later
// prefix's offset within Members(). refresh re-derives the current window
// from groupComponents via Group.ExactMatch on every call, so it always
// reflects the group's live layout instead of a stale offset.
type queryCache struct {
	kind            cacheKind
	seen            int
	matched         []ArchetypeIndex
	group           *Group
	groupComponents []Component
}

func newUnorderedCache() *queryCache {
	return &queryCache{
		kind:    cacheUnordered,
		matched: make([]ArchetypeIndex, 0, Config.unorderedCachePrealloc),
	}
}

func newOrderedCache(g *Group, components []Component) *queryCache {
	return &queryCache{kind: cacheOrdered, group: g, groupComponents: components}
}

// refresh brings the cache up to date with storage's current archetype set
// and returns the matched archetype indices.
func (c *queryCache) refresh(storage Storage, f DynamicFilter, layoutIndex LayoutIndex) []ArchetypeIndex {
	if c.kind == cacheOrdered {
		c.group.bind(storage)
		sub, ok := c.group.ExactMatch(c.groupComponents)
		if !ok {
			return nil
		}
		members := c.group.Members()
		return members[sub.offset : sub.offset+sub.length]
	}
	c.matched, c.seen = layoutIndex.SearchFrom(f, c.seen, c.matched)
	return c.matched
}

// queryCacheRegistry partitions queryCache instances by WorldID, so a
// single Query value can be evaluated against more than one Storage without
// one world's cache state leaking into another's.
type queryCacheRegistry struct {
	byWorld *intmap.Map[uint32, *queryCache]
}

func newQueryCacheRegistry() *queryCacheRegistry {
	return &queryCacheRegistry{byWorld: intmap.New[uint32, *queryCache](8)}
}

func (r *queryCacheRegistry) get(world WorldID) (*queryCache, bool) {
	return r.byWorld.Get(uint32(world))
}

func (r *queryCacheRegistry) set(world WorldID, c *queryCache) {
	r.byWorld.Put(uint32(world), c)
}
