// Package store implements the local record store: named collections of flat
// JSON records with auto-incremented integer ids, persisted whole through the
// storage substrate on every mutation.
//
// The store trusts its callers: it validates no entity names, no schema, and
// no referential integrity. Two processes sharing one substrate key can race
// (both read the same snapshot, both compute the same id, last write wins);
// that is a known limitation of the whole-collection rewrite, not something
// the store defends against.
package store

import (
	"encoding/json"
	"errors"

	"go-laundry-console/internal/storage"
)

// ErrNotFound is returned by the id and code lookups when no record matches.
var ErrNotFound = errors.New("record not found")

// Record is one flat entity record as stored.
type Record = map[string]any

type Store struct {
	substrate storage.Substrate
}

func New(substrate storage.Substrate) *Store {
	return &Store{substrate: substrate}
}

// GetAll returns the entity's collection in insertion order. An entity that
// was never written reads as an empty collection.
func (s *Store) GetAll(entity string) ([]Record, error) {
	payload, ok, err := s.substrate.Get(entity)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Record{}, nil
	}

	var records []Record
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

// GetByID scans the collection for a matching id.
func (s *Store) GetByID(entity string, id int64) (Record, error) {
	records, err := s.GetAll(entity)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if RecordID(rec) == id {
			return rec, nil
		}
	}
	return nil, ErrNotFound
}

// GetByCode scans the collection for a matching "code" field.
func (s *Store) GetByCode(entity, code string) (Record, error) {
	records, err := s.GetAll(entity)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if c, ok := rec["code"].(string); ok && c == code {
			return rec, nil
		}
	}
	return nil, ErrNotFound
}

// Create appends data to the collection under a fresh id: max of the current
// ids plus one, or 1 for an empty collection. Any id already present in data
// is overwritten by the assigned one.
func (s *Store) Create(entity string, data Record) (Record, error) {
	records, err := s.GetAll(entity)
	if err != nil {
		return nil, err
	}

	var maxID int64
	for _, rec := range records {
		if id := RecordID(rec); id > maxID {
			maxID = id
		}
	}

	rec := cloneRecord(data)
	rec["id"] = maxID + 1

	records = append(records, rec)
	if err := s.Write(entity, records); err != nil {
		return nil, err
	}
	return rec, nil
}

// Update shallow-merges patch over the record with the given id: patch fields
// win, everything else is preserved, all other records pass through
// untouched. Returns the updated record, or ErrNotFound without writing.
func (s *Store) Update(entity string, id int64, patch Record) (Record, error) {
	records, err := s.GetAll(entity)
	if err != nil {
		return nil, err
	}

	found := false
	for _, rec := range records {
		if RecordID(rec) != id {
			continue
		}
		for k, v := range patch {
			rec[k] = v
		}
		found = true
	}
	if !found {
		return nil, ErrNotFound
	}

	if err := s.Write(entity, records); err != nil {
		return nil, err
	}
	return s.GetByID(entity, id)
}

// Remove filters the record with the given id out of the collection and
// persists the remainder. Removing an absent id is not an error.
func (s *Store) Remove(entity string, id int64) error {
	records, err := s.GetAll(entity)
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, rec := range records {
		if RecordID(rec) != id {
			kept = append(kept, rec)
		}
	}
	return s.Write(entity, kept)
}

// Seed writes records under the entity key only if nothing was ever stored
// there. Reports whether the write happened.
func (s *Store) Seed(entity string, records []Record) (bool, error) {
	_, ok, err := s.substrate.Get(entity)
	if err != nil {
		return false, err
	}
	if ok {
		return false, nil
	}
	return true, s.Write(entity, records)
}

// Write replaces the entity's whole collection. Mutating operations and the
// seed tooling funnel through here.
func (s *Store) Write(entity string, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.substrate.Set(entity, string(payload))
}

// RecordID extracts the integer id of a record. JSON round-trips hand ids
// back as float64, freshly created records carry int64.
func RecordID(rec Record) int64 {
	switch v := rec["id"].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case json.Number:
		n, _ := v.Int64()
		return n
	default:
		return 0
	}
}

func cloneRecord(rec Record) Record {
	out := make(Record, len(rec)+1)
	for k, v := range rec {
		out[k] = v
	}
	return out
}
