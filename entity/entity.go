// Package entity is a tagging convenience layer over cell payloads:
// it stores keyed component records inside a cell's data map and filters
// cells by component presence. It only touches payloads through the
// grid's copy-on-write operations, so attaching or detaching an entity
// produces a new grid generation like any other mutation.
package entity

import (
	"maps"
	"strconv"

	"github.com/google/uuid"

	"github.com/talgya/hexworld/grid"
	"github.com/talgya/hexworld/hex"
)

// Entity is a keyed record living in a cell payload: an identifier plus
// the components attached to it.
type Entity struct {
	ID         string
	Components map[string]any
}

// IDGenerator mints entity identifiers. Generators are caller-owned;
// nothing in this package holds shared mutable state.
type IDGenerator interface {
	Next() string
}

// UUIDs mints random uuid identifiers.
type UUIDs struct{}

func (UUIDs) Next() string {
	return uuid.NewString()
}

// Sequence mints prefix-numbered identifiers ("e1", "e2", ...). It is
// seedable and resettable, for deterministic tests and save-compatible
// numbering.
type Sequence struct {
	prefix string
	n      uint64
}

// NewSequence returns a sequence generator with the given prefix.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// Next returns the next identifier in the sequence.
func (s *Sequence) Next() string {
	s.n++
	return s.prefix + strconv.FormatUint(s.n, 10)
}

// Seed sets the counter so the next identifier is prefix + (n+1).
func (s *Sequence) Seed(n uint64) {
	s.n = n
}

// Reset restarts the sequence from the beginning.
func (s *Sequence) Reset() {
	s.n = 0
}

// Attach mints an identifier, stores the components as a record under it
// in the cell's payload, and returns the new grid along with the
// identifier. The empty identifier is returned when the cell does not
// exist (the grid comes back unchanged).
func Attach(g grid.Grid, gen IDGenerator, coord hex.Cube, components map[string]any) (grid.Grid, string) {
	if !g.Has(coord) {
		return g, ""
	}
	rec := maps.Clone(components)
	if rec == nil {
		rec = make(map[string]any, 1)
	}
	id := gen.Next()
	rec[grid.IDKey] = id
	return g.SetCellData(coord, rec), id
}

// Detach removes the entity with the given identifier from the cell's
// payload. No-op if the cell or the entity is absent.
func Detach(g grid.Grid, coord hex.Cube, id string) grid.Grid {
	return g.RemoveCellData(coord, id)
}

// At returns the entities stored in the cell at coord, in no particular
// order.
func At(g grid.Grid, coord hex.Cube) []Entity {
	c, ok := g.Cell(coord)
	if !ok {
		return nil
	}
	return fromData(c.Data)
}

// HasComponents reports whether the entity carries every listed
// component key.
func (e Entity) HasComponents(keys ...string) bool {
	for _, k := range keys {
		if _, ok := e.Components[k]; !ok {
			return false
		}
	}
	return true
}

// Each calls fn for every (cell, entity) pair across the grid.
func Each(g grid.Grid, fn func(c grid.Cell, e Entity)) {
	g.ForEach(func(c grid.Cell) {
		for _, e := range fromData(c.Data) {
			fn(c, e)
		}
	})
}

// Filter returns the coordinates of every cell holding at least one
// entity with all the listed component keys.
func Filter(g grid.Grid, keys ...string) []hex.Cube {
	return g.Filter(func(c grid.Cell) bool {
		for _, e := range fromData(c.Data) {
			if e.HasComponents(keys...) {
				return true
			}
		}
		return false
	})
}

// fromData extracts the keyed records out of a payload: entries whose
// value is a record carrying a matching identifier field.
func fromData(data map[string]any) []Entity {
	var result []Entity
	for key, v := range data {
		rec, ok := v.(map[string]any)
		if !ok {
			continue
		}
		if id, ok := rec[grid.IDKey].(string); !ok || id != key {
			continue
		}
		components := maps.Clone(rec)
		delete(components, grid.IDKey)
		result = append(result, Entity{ID: key, Components: components})
	}
	return result
}
