package store

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sadopc/fotoagenda/internal/model"
)

// LoadShoots returns the full shoot collection, seeding example records on
// first use. Malformed stored data is logged and replaced by the seed set
// rather than failing the read.
func (s *Store) LoadShoots() ([]model.Shoot, error) {
	raw, ok, err := s.readCollection(shootsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		seed := seedShoots()
		if err := s.SaveShoots(seed); err != nil {
			return nil, err
		}
		return seed, nil
	}

	var shoots []model.Shoot
	if err := json.Unmarshal([]byte(raw), &shoots); err != nil {
		log.Error().Err(err).Str("key", shootsKey).Msg("corrupt shoot collection, reseeding")
		seed := seedShoots()
		if err := s.SaveShoots(seed); err != nil {
			return nil, err
		}
		return seed, nil
	}
	return shoots, nil
}

// SaveShoot upserts a single shoot by ID and rewrites the whole
// collection.
func (s *Store) SaveShoot(sh model.Shoot) error {
	shoots, err := s.LoadShoots()
	if err != nil {
		return err
	}
	found := false
	for i := range shoots {
		if shoots[i].ID == sh.ID {
			shoots[i] = sh
			found = true
			break
		}
	}
	if !found {
		shoots = append(shoots, sh)
	}
	return s.SaveShoots(shoots)
}

// SaveShoots replaces the entire stored collection in one write. The
// reminder scheduler uses this after flipping reminderSent flags so that a
// reload can never observe a partially-updated collection.
func (s *Store) SaveShoots(shoots []model.Shoot) error {
	if shoots == nil {
		shoots = []model.Shoot{}
	}
	data, err := json.Marshal(shoots)
	if err != nil {
		return fmt.Errorf("marshal shoots: %w", err)
	}
	return s.writeCollection(shootsKey, string(data))
}

func (s *Store) DeleteShoot(id string) error {
	shoots, err := s.LoadShoots()
	if err != nil {
		return err
	}
	kept := shoots[:0]
	for _, sh := range shoots {
		if sh.ID != id {
			kept = append(kept, sh)
		}
	}
	return s.SaveShoots(kept)
}
