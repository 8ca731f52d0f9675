package store

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sadopc/fotoagenda/internal/model"
)

// LoadClients returns the full client collection, seeding a default set on
// first use. Malformed stored data is logged and replaced by the seed set
// rather than failing the read.
func (s *Store) LoadClients() ([]model.Client, error) {
	raw, ok, err := s.readCollection(clientsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		seed := seedClients()
		if err := s.saveClients(seed); err != nil {
			return nil, err
		}
		return seed, nil
	}

	var clients []model.Client
	if err := json.Unmarshal([]byte(raw), &clients); err != nil {
		log.Error().Err(err).Str("key", clientsKey).Msg("corrupt client collection, reseeding")
		seed := seedClients()
		if err := s.saveClients(seed); err != nil {
			return nil, err
		}
		return seed, nil
	}
	return clients, nil
}

// SaveClient upserts a single client by ID and rewrites the whole
// collection.
func (s *Store) SaveClient(c model.Client) error {
	clients, err := s.LoadClients()
	if err != nil {
		return err
	}
	found := false
	for i := range clients {
		if clients[i].ID == c.ID {
			clients[i] = c
			found = true
			break
		}
	}
	if !found {
		clients = append(clients, c)
	}
	return s.saveClients(clients)
}

func (s *Store) DeleteClient(id string) error {
	clients, err := s.LoadClients()
	if err != nil {
		return err
	}
	kept := clients[:0]
	for _, c := range clients {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return s.saveClients(kept)
}

func (s *Store) saveClients(clients []model.Client) error {
	if clients == nil {
		clients = []model.Client{}
	}
	data, err := json.Marshal(clients)
	if err != nil {
		return fmt.Errorf("marshal clients: %w", err)
	}
	return s.writeCollection(clientsKey, string(data))
}
