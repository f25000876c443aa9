package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/bgdnrvsky/chyes/board"
)

// ErrNotFound is returned when a named position does not exist.
var ErrNotFound = errors.New("store: position not found")

const (
	positionPrefix = "position/"
	keyStats       = "stats"
)

// SavedPosition is a named board snapshot, persisted as FEN.
type SavedPosition struct {
	Name    string    `json:"name"`
	FEN     string    `json:"fen"`
	SavedAt time.Time `json:"saved_at"`
}

// Result describes one finished game.
type Result struct {
	Winner board.Color `json:"winner"`
	Draw   bool        `json:"draw"`
}

// GameStats accumulates results over time.
type GameStats struct {
	GamesPlayed int `json:"games_played"`
	WhiteWins   int `json:"white_wins"`
	BlackWins   int `json:"black_wins"`
	Draws       int `json:"draws"`
}

// Store wraps BadgerDB for persistent storage of positions and stats.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a store in the given directory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable badger's internal logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// OpenDefault opens the store in the platform data directory.
func OpenDefault() (*Store, error) {
	dir, err := DatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dir)
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePosition persists the board under the given name, overwriting any
// previous snapshot with that name.
func (s *Store) SavePosition(name string, b *board.Board) error {
	data, err := json.Marshal(SavedPosition{
		Name:    name,
		FEN:     b.FEN(),
		SavedAt: time.Now(),
	})
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(positionPrefix+name), data)
	})
}

// LoadPosition reads a named snapshot back into a fresh board. It returns
// ErrNotFound when no snapshot has that name.
func (s *Store) LoadPosition(name string) (*board.Board, error) {
	var saved SavedPosition

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(positionPrefix + name))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &saved)
		})
	})
	if err != nil {
		return nil, err
	}

	b := board.New()
	b.LoadFEN(saved.FEN)
	return b, nil
}

// ListPositions returns the names of all saved positions, sorted.
func (s *Store) ListPositions() ([]string, error) {
	var names []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(positionPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().Key()
			names = append(names, string(key[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(names)
	return names, nil
}

// DeletePosition removes a named snapshot. It returns ErrNotFound when no
// snapshot has that name.
func (s *Store) DeletePosition(name string) error {
	key := []byte(positionPrefix + name)

	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err == badger.ErrKeyNotFound {
			return ErrNotFound
		} else if err != nil {
			return err
		}
		return txn.Delete(key)
	})
}

// RecordResult folds one game result into the persisted statistics.
func (s *Store) RecordResult(r Result) error {
	stats, err := s.Stats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	switch {
	case r.Draw:
		stats.Draws++
	case r.Winner == board.White:
		stats.WhiteWins++
	default:
		stats.BlackWins++
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// Stats reads the accumulated statistics; a store with no recorded games
// yields zero stats.
func (s *Store) Stats() (*GameStats, error) {
	stats := &GameStats{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
