package silo

import (
	"testing"

	"github.com/TheBitDrifter/table"
)

func TestFilterAndOrNotMatching(t *testing.T) {
	schema := table.Factory.NewSchema()
	storage := Factory.NewStorage(schema)

	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()
	healthComp := FactoryNewComponent[Health]()

	posArch, err := storage.NewOrExistingArchetype(posComp)
	if err != nil {
		t.Fatalf("NewOrExistingArchetype: %v", err)
	}
	posVelArch, err := storage.NewOrExistingArchetype(posComp, velComp)
	if err != nil {
		t.Fatalf("NewOrExistingArchetype: %v", err)
	}
	healthArch, err := storage.NewOrExistingArchetype(healthComp)
	if err != nil {
		t.Fatalf("NewOrExistingArchetype: %v", err)
	}

	and := Factory.NewQuery().And(posComp, velComp)
	if and.Matches(posArch, storage) {
		t.Errorf("And(pos, vel) matched an archetype missing velocity")
	}
	if !and.Matches(posVelArch, storage) {
		t.Errorf("And(pos, vel) failed to match an archetype with both components")
	}

	or := Factory.NewQuery().Or(velComp, healthComp)
	if or.Matches(posArch, storage) {
		t.Errorf("Or(vel, health) matched an archetype with neither")
	}
	if !or.Matches(posVelArch, storage) {
		t.Errorf("Or(vel, health) failed to match an archetype with velocity")
	}
	if !or.Matches(healthArch, storage) {
		t.Errorf("Or(vel, health) failed to match an archetype with health")
	}

	not := Factory.NewQuery().Not(velComp)
	if not.Matches(posVelArch, storage) {
		t.Errorf("Not(vel) matched an archetype that has velocity")
	}
	if !not.Matches(posArch, storage) {
		t.Errorf("Not(vel) failed to match an archetype without velocity")
	}
}

func TestFilterBuilderIsStateless(t *testing.T) {
	schema := table.Factory.NewSchema()
	storage := Factory.NewStorage(schema)

	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()

	posArch, err := storage.NewOrExistingArchetype(posComp)
	if err != nil {
		t.Fatalf("NewOrExistingArchetype: %v", err)
	}

	builder := Factory.NewQuery()
	and := builder.And(posComp, velComp)
	or := builder.Or(posComp)

	// Each call off the same builder must produce an independent filter -
	// the first call's components must not bleed into the second's.
	if and.Matches(posArch, storage) {
		t.Errorf("And(pos, vel) unexpectedly matched a pos-only archetype")
	}
	if !or.Matches(posArch, storage) {
		t.Errorf("Or(pos) failed to match a pos-only archetype")
	}
	if builder.Matches(posArch, storage) {
		t.Errorf("original builder should remain an empty, non-matching filter")
	}
}

func TestFilterCanMatchGroup(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()
	healthComp := FactoryNewComponent[Health]()

	and := Factory.NewQuery().And(posComp, velComp)
	components, ok := and.(interface {
		canMatchGroup() ([]Component, bool)
	}).canMatchGroup()
	if !ok {
		t.Fatalf("pure AND filter should report canMatchGroup=true")
	}
	if len(components) != 2 {
		t.Errorf("canMatchGroup returned %d components, want 2", len(components))
	}

	or := Factory.NewQuery().Or(posComp, healthComp)
	_, ok = or.(interface {
		canMatchGroup() ([]Component, bool)
	}).canMatchGroup()
	if ok {
		t.Errorf("an OR filter must not report canMatchGroup=true")
	}
}

func TestPassthroughFilterMatchesEverything(t *testing.T) {
	schema := table.Factory.NewSchema()
	storage := Factory.NewStorage(schema)
	posComp := FactoryNewComponent[Position]()

	arch, err := storage.NewOrExistingArchetype(posComp)
	if err != nil {
		t.Fatalf("NewOrExistingArchetype: %v", err)
	}

	p := Passthrough()
	if !p.Matches(arch, storage) {
		t.Errorf("Passthrough() must match every archetype")
	}
}
