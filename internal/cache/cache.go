package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/commitlens/commitlens/internal/errors"
)

type CachedResponse struct {
	Hash      string          `json:"hash"`
	Response  json.RawMessage `json:"response"`
	CreatedAt time.Time       `json:"created_at"`
}

// Cache stores JSON responses on disk, one file per hash. Entries older than
// ttl are treated as missing.
type Cache struct {
	cacheDir string
	ttl      time.Duration
}

// NewCache creates dir if needed and drops expired entries.
func NewCache(dir string, ttl time.Duration) (*Cache, error) {
	if dir == "" {
		return nil, fmt.Errorf("cache directory is empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating cache directory: %w", err)
	}

	cache := &Cache{
		cacheDir: dir,
		ttl:      ttl,
	}

	_ = cache.CleanExpired()

	return cache, nil
}

func (c *Cache) Dir() string {
	return c.cacheDir
}

// GenerateHash returns the hex SHA-256 of the parts joined by "|".
func (c *Cache) GenerateHash(parts ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(hash[:])
}

func (c *Cache) Get(hash string) (json.RawMessage, bool, error) {
	filePath := filepath.Join(c.cacheDir, hash+".json")

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("error reading cache: %w", err)
	}

	var cached CachedResponse
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, false, fmt.Errorf("error decoding cache entry: %w", err)
	}

	if time.Since(cached.CreatedAt) > c.ttl {
		_ = os.Remove(filePath)
		return nil, false, nil
	}

	return cached.Response, true, nil
}

func (c *Cache) Set(hash string, response interface{}) error {
	responseData, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("error encoding response: %w", err)
	}

	cached := CachedResponse{
		Hash:      hash,
		Response:  responseData,
		CreatedAt: time.Now(),
	}

	data, err := json.MarshalIndent(cached, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding cache entry: %w", err)
	}

	filePath := filepath.Join(c.cacheDir, hash+".json")
	if err := os.WriteFile(filePath, data, 0600); err != nil {
		return fmt.Errorf("error writing cache: %w", err)
	}

	return nil
}

// CleanExpired removes entries whose file is older than the ttl.
func (c *Cache) CleanExpired() error {
	entries, err := os.ReadDir(c.cacheDir)
	if err != nil {
		return fmt.Errorf("error reading cache directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if time.Since(info.ModTime()) > c.ttl {
			_ = os.Remove(filepath.Join(c.cacheDir, entry.Name()))
		}
	}

	return nil
}

// Clean removes the whole cache directory.
func (c *Cache) Clean() error {
	_, err := Purge(c.cacheDir)
	return err
}

// Purge removes dir with every entry in it and reports how many entries were
// dropped. A missing dir is not an error.
func Purge(dir string) (int, error) {
	if dir == "" {
		return 0, errors.ErrCache.WithContext("dir", dir)
	}
	entries, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return 0, errors.ErrCache.WithError(err).WithContext("dir", dir)
	}
	if err := os.RemoveAll(dir); err != nil {
		return 0, errors.ErrCache.WithError(fmt.Errorf("removing cache directory: %w", err)).
			WithContext("dir", dir).
			WithSuggestion("Check the permissions of the cache directory")
	}
	return len(entries), nil
}
