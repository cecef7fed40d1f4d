package silo

// ComponentTypeID identifies a registered component type within a schema,
// stable for the lifetime of the Storage it was registered against. It
// backs the bit position a Component occupies in an archetype's layout
// mask.
type ComponentTypeID = uint32
