package grid

import (
	"log/slog"
	"maps"
	"reflect"

	"github.com/talgya/hexworld/hex"
)

// IDKey is the identifying field of an entity-like record. Records
// carrying it are stored in the cell payload under their own identifier;
// records without it fall back to a field-by-field merge.
const IDKey = "id"

// SetCellData merges one or more entity-like records into the payload of
// the cell at coord and returns the resulting grid. A record with a
// non-empty string IDKey field replaces any prior record stored under the
// same identifier. A record without one is shallow-merged directly into
// the payload; this legacy path is kept for compatibility and new callers
// should always supply an identifier.
//
// No-op if the cell does not exist or no records are supplied.
func (g Grid) SetCellData(coord hex.Cube, records ...map[string]any) Grid {
	cell, ok := g.cells[coord]
	if !ok {
		slog.Debug("SetCellData: no cell at coordinate", "coord", coord)
		return g
	}
	if len(records) == 0 {
		slog.Debug("SetCellData: no records supplied", "coord", coord)
		return g
	}

	data := maps.Clone(cell.Data)
	if data == nil {
		data = make(map[string]any, len(records))
	}
	for _, rec := range records {
		if id, ok := rec[IDKey].(string); ok && id != "" {
			data[id] = maps.Clone(rec)
		} else {
			maps.Copy(data, rec)
		}
	}
	cell.Data = data
	return g.Set(coord, cell)
}

// RemoveCellData removes entries from the payload of the cell at coord
// and returns the resulting grid. Each ref may be a string (removed by
// key), a record carrying an IDKey field (removed by that identifier), or
// any other value (entries with an equal value are removed). No-op if the
// cell does not exist or nothing matches.
func (g Grid) RemoveCellData(coord hex.Cube, refs ...any) Grid {
	cell, ok := g.cells[coord]
	if !ok || len(cell.Data) == 0 || len(refs) == 0 {
		return g
	}

	data := maps.Clone(cell.Data)
	removed := false
	for _, ref := range refs {
		switch v := ref.(type) {
		case string:
			if _, ok := data[v]; ok {
				delete(data, v)
				removed = true
			}
		case map[string]any:
			if id, ok := v[IDKey].(string); ok && id != "" {
				if _, ok := data[id]; ok {
					delete(data, id)
					removed = true
				}
				continue
			}
			removed = removeByValue(data, v) || removed
		default:
			removed = removeByValue(data, ref) || removed
		}
	}
	if !removed {
		return g
	}
	cell.Data = data
	return g.Set(coord, cell)
}

func removeByValue(data map[string]any, want any) bool {
	removed := false
	for k, v := range data {
		if reflect.DeepEqual(v, want) {
			delete(data, k)
			removed = true
		}
	}
	return removed
}
