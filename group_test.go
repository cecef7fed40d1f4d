package silo

import (
	"testing"

	"github.com/TheBitDrifter/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupExactMatch(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()
	healthComp := FactoryNewComponent[Health]()

	g := newGroup(1, posComp, velComp)
	g.layers[0] = []ArchetypeIndex{1}
	g.layers[1] = []ArchetypeIndex{2, 3}
	g.members = []ArchetypeIndex{1, 2, 3}
	g.offsets[0], g.offsets[1] = 0, 1

	sub, ok := g.ExactMatch([]Component{velComp, posComp})
	assert.True(t, ok, "ExactMatch should be order-insensitive")
	assert.Equal(t, SubGroup{offset: 1, length: 2}, sub)

	sub, ok = g.ExactMatch([]Component{posComp})
	assert.True(t, ok, "ExactMatch must accept a leading prefix")
	assert.Equal(t, SubGroup{offset: 0, length: 1}, sub)

	_, ok = g.ExactMatch([]Component{posComp, velComp, healthComp})
	assert.False(t, ok, "ExactMatch must reject a superset of the declared components")

	_, ok = g.ExactMatch([]Component{velComp})
	assert.False(t, ok, "ExactMatch must reject a non-prefix subset")
}

func TestGroupBindOnlyExactPrefixMatches(t *testing.T) {
	schema := table.Factory.NewSchema()
	storage := Factory.NewStorage(schema)

	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()
	healthComp := FactoryNewComponent[Health]()

	// Create one archetype that exactly matches the {pos, vel} prefix, an
	// unrelated one, and a superset of {pos, vel}, to confirm bind picks up
	// only the exact prefix match.
	first, err := storage.NewOrExistingArchetype(posComp, velComp)
	require.NoError(t, err)
	_, err = storage.NewOrExistingArchetype(healthComp)
	require.NoError(t, err)
	second, err := storage.NewOrExistingArchetype(posComp, velComp, healthComp)
	require.NoError(t, err)

	g := storage.RegisterGroup(posComp, velComp)
	g.bind(storage)

	members := g.Members()
	require.Len(t, members, 1)
	firstIdx := first.(interface{ Index() ArchetypeIndex }).Index()
	assert.Equal(t, []ArchetypeIndex{firstIdx}, members)

	// The healthComp archetype is a superset of {pos, vel}, not an exact
	// prefix match, so it must never be bound.
	_ = second

	// Binding again with no new matching archetypes must not duplicate
	// entries.
	g.bind(storage)
	assert.Len(t, g.Members(), 1)
}

func TestGroupExactMatchPrefixesGetCompatibleSubRanges(t *testing.T) {
	schema := table.Factory.NewSchema()
	storage := Factory.NewStorage(schema)

	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()
	healthComp := FactoryNewComponent[Health]()

	onlyPos, err := storage.NewOrExistingArchetype(posComp)
	require.NoError(t, err)
	posVel, err := storage.NewOrExistingArchetype(posComp, velComp)
	require.NoError(t, err)
	posVelHealth, err := storage.NewOrExistingArchetype(posComp, velComp, healthComp)
	require.NoError(t, err)

	g := storage.RegisterGroup(posComp, velComp, healthComp)
	g.bind(storage)

	posSub, ok := g.ExactMatch([]Component{posComp})
	require.True(t, ok)
	posVelSub, ok := g.ExactMatch([]Component{posComp, velComp})
	require.True(t, ok)
	posVelHealthSub, ok := g.ExactMatch([]Component{posComp, velComp, healthComp})
	require.True(t, ok)

	// Every prefix's SubGroup is disjoint from the others.
	assert.Equal(t, posSub.offset+posSub.length, posVelSub.offset)
	assert.Equal(t, posVelSub.offset+posVelSub.length, posVelHealthSub.offset)

	members := g.Members()
	onlyPosIdx := onlyPos.(interface{ Index() ArchetypeIndex }).Index()
	posVelIdx := posVel.(interface{ Index() ArchetypeIndex }).Index()
	posVelHealthIdx := posVelHealth.(interface{ Index() ArchetypeIndex }).Index()

	// A query matching the shorter prefix {pos} always visits archetypes
	// ahead of a query matching the longer prefix {pos,vel} in the one
	// shared Members() list - the compatible-ordering property that lets
	// two related ordered queries fuse their iteration.
	assert.Equal(t, []ArchetypeIndex{onlyPosIdx}, members[posSub.offset:posSub.offset+posSub.length])
	assert.Equal(t, []ArchetypeIndex{posVelIdx}, members[posVelSub.offset:posVelSub.offset+posVelSub.length])
	assert.Equal(t, []ArchetypeIndex{posVelHealthIdx}, members[posVelHealthSub.offset:posVelHealthSub.offset+posVelHealthSub.length])
}

func TestStorageRegisterGroup(t *testing.T) {
	schema := table.Factory.NewSchema()
	storage := Factory.NewStorage(schema)
	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()

	g1 := storage.RegisterGroup(posComp)
	g2 := storage.RegisterGroup(velComp)

	assert.Equal(t, []*Group{g1, g2}, storage.Groups())
	assert.Equal(t, GroupID(1), g1.ID())
	assert.Equal(t, GroupID(2), g2.ID())
}
