// Package prefs persists per-device preferences (catalog favorites and
// notification read-state) that the storefront keeps client-side. It is
// process-local key-value state scoped to a device id, deliberately not
// shared server state.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"sync"
)

type DevicePrefs struct {
	Favorites         []string `json:"favorites"`
	NotificationsRead []string `json:"notifications_read"`
}

type Store struct {
	mu  sync.Mutex
	dir string
}

var deviceIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

func NewStore(dataDir string) (*Store, error) {
	dir := filepath.Join(dataDir, "prefs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create prefs directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// ValidDeviceID guards against path traversal through the device header.
func ValidDeviceID(deviceID string) bool {
	return deviceIDPattern.MatchString(deviceID)
}

func (s *Store) path(deviceID string) string {
	return filepath.Join(s.dir, deviceID+".json")
}

func (s *Store) load(deviceID string) (*DevicePrefs, error) {
	data, err := os.ReadFile(s.path(deviceID))
	if os.IsNotExist(err) {
		return &DevicePrefs{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read prefs: %w", err)
	}

	var p DevicePrefs
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode prefs: %w", err)
	}
	return &p, nil
}

func (s *Store) save(deviceID string, p *DevicePrefs) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode prefs: %w", err)
	}
	if err := os.WriteFile(s.path(deviceID), data, 0o644); err != nil {
		return fmt.Errorf("failed to write prefs: %w", err)
	}
	return nil
}

func (s *Store) Get(deviceID string) (*DevicePrefs, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(deviceID)
}

func (s *Store) SetFavorites(deviceID string, favorites []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load(deviceID)
	if err != nil {
		return err
	}
	p.Favorites = dedupe(favorites)
	return s.save(deviceID, p)
}

// ToggleFavorite adds or removes a frame id and reports whether it is a
// favorite afterwards.
func (s *Store) ToggleFavorite(deviceID, frameID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load(deviceID)
	if err != nil {
		return false, err
	}

	for i, id := range p.Favorites {
		if id == frameID {
			p.Favorites = append(p.Favorites[:i], p.Favorites[i+1:]...)
			return false, s.save(deviceID, p)
		}
	}

	p.Favorites = append(p.Favorites, frameID)
	return true, s.save(deviceID, p)
}

func (s *Store) MarkNotificationsRead(deviceID string, notificationIDs []string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load(deviceID)
	if err != nil {
		return nil, err
	}

	p.NotificationsRead = dedupe(append(p.NotificationsRead, notificationIDs...))
	if err := s.save(deviceID, p); err != nil {
		return nil, err
	}
	return p.NotificationsRead, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
