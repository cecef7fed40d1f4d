/*
Package silo implements an archetype-based Entity-Component-System query
engine for games and simulations.

Entities with identical component sets are stored together in an archetype's
columnar table, keeping iteration cache-friendly. Queries describe which
components to read, write, or require/forbid, and are evaluated lazily
against a Storage's archetypes as they're created.

Core Concepts:

  - Entity: A unique identifier that represents a game object.
  - Component: A data container that defines entity attributes.
  - Archetype: A collection of entities sharing the same component types.
  - Filter: A composable predicate over an archetype's component layout.
  - Query: Binds a typed View to a Filter and an incremental archetype cache.

Basic Usage:

	// Create storage with schema
	schema := table.Factory.NewSchema()
	storage := silo.Factory.NewStorage(schema)

	// Define components
	position := silo.FactoryNewComponent[Position]()
	velocity := silo.FactoryNewComponent[Velocity]()

	// Create entities
	entities, _ := storage.NewEntities(100, position, velocity)

	// Query entities and process them
	f := silo.Factory.NewQuery().And(position, velocity)
	cursor := silo.Factory.NewCursor(f, storage)

	for cursor.Next() {
		pos := position.GetFromCursor(cursor)
		vel := velocity.GetFromCursor(cursor)
		pos.X += vel.X
		pos.Y += vel.Y
	}

Typed queries built with NewQuery1..NewQuery4 go further: they validate
read/write aliasing at construction, cache matched archetypes per Storage,
and drive IterChunks/ForEach or a work-stealing ParIterChunks over the
result.
*/
package silo
