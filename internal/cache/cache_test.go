package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/commitlens/commitlens/internal/errors"
)

func setupTestCache(t *testing.T, ttl time.Duration) (*Cache, string) {
	tempDir := t.TempDir()

	c := &Cache{
		cacheDir: tempDir,
		ttl:      ttl,
	}

	return c, tempDir
}

func TestNewCache(t *testing.T) {
	// Arrange
	dir := filepath.Join(t.TempDir(), "nested", "cache")

	// Act
	c, err := NewCache(dir, 1*time.Hour)

	// Assert
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}
	if c.Dir() != dir {
		t.Errorf("Dir() = %s, want %s", c.Dir(), dir)
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Errorf("cache directory %s was not created", dir)
	}
}

func TestNewCache_EmptyDir(t *testing.T) {
	if _, err := NewCache("", time.Hour); err == nil {
		t.Error("NewCache() error = nil, want error for empty dir")
	}
}

func TestCache_GenerateHash(t *testing.T) {
	// Arrange
	c := &Cache{}

	// Act
	hash1 := c.GenerateHash("command", "llama3", "prompt")
	hash2 := c.GenerateHash("command", "llama3", "prompt")
	hash3 := c.GenerateHash("gemini", "llama3", "prompt")

	// Assert
	if hash1 != hash2 {
		t.Errorf("GenerateHash() returned different results for same content")
	}
	if hash1 == hash3 {
		t.Errorf("GenerateHash() returned same result for different content")
	}
	if len(hash1) != 64 {
		t.Errorf("GenerateHash() length = %d, want 64", len(hash1))
	}
}

func TestCache_SetAndGet(t *testing.T) {
	// Arrange
	c, _ := setupTestCache(t, 1*time.Hour)
	type testData struct {
		Message string `json:"message"`
	}
	data := testData{Message: "feat: add summaries"}
	hash := c.GenerateHash("commitlens-key")

	// Act
	if err := c.Set(hash, data); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	resp, found, err := c.Get(hash)

	// Assert
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !found {
		t.Fatal("Get() returned found = false, want true")
	}

	var got testData
	_ = json.Unmarshal(resp, &got)
	if got.Message != data.Message {
		t.Errorf("Get() data = %v, want %v", got.Message, data.Message)
	}
}

func TestCache_Get_NotFound(t *testing.T) {
	// Arrange
	c, _ := setupTestCache(t, 1*time.Hour)

	// Act
	_, found, err := c.Get("non-existent-hash")

	// Assert
	if err != nil {
		t.Errorf("Get() error = %v, want nil", err)
	}
	if found {
		t.Errorf("Get() found = true, want false")
	}
}

func TestCache_Get_Expired(t *testing.T) {
	// Arrange
	c, tempDir := setupTestCache(t, 10*time.Millisecond)
	hash := "expired-hash"
	_ = c.Set(hash, "some data")

	time.Sleep(20 * time.Millisecond)

	// Act
	_, found, err := c.Get(hash)

	// Assert
	if err != nil {
		t.Errorf("Get() error = %v, want nil", err)
	}
	if found {
		t.Errorf("Get() found = true, want false for expired cache")
	}

	filePath := filepath.Join(tempDir, hash+".json")
	if _, err := os.Stat(filePath); !os.IsNotExist(err) {
		t.Errorf("expired cache file was not deleted")
	}
}

func TestCache_CleanExpired(t *testing.T) {
	// Arrange
	c, tempDir := setupTestCache(t, 1*time.Hour)
	_ = c.Set("fresh", "data")

	oldHash := "old"
	_ = c.Set(oldHash, "data")
	oldFilePath := filepath.Join(tempDir, oldHash+".json")
	oldTime := time.Now().Add(-2 * time.Hour)
	_ = os.Chtimes(oldFilePath, oldTime, oldTime)

	// Act
	err := c.CleanExpired()

	// Assert
	if err != nil {
		t.Errorf("CleanExpired() error = %v", err)
	}
	if _, err := os.Stat(oldFilePath); !os.IsNotExist(err) {
		t.Errorf("old file was not cleaned up")
	}
	if _, err := os.Stat(filepath.Join(tempDir, "fresh.json")); os.IsNotExist(err) {
		t.Errorf("fresh file was incorrectly cleaned up")
	}
}

func TestCache_Clean(t *testing.T) {
	// Arrange
	c, tempDir := setupTestCache(t, 1*time.Hour)
	_ = c.Set("hash1", "data")
	_ = c.Set("hash2", "data")

	// Act
	err := c.Clean()

	// Assert
	if err != nil {
		t.Errorf("Clean() error = %v", err)
	}
	if _, err := os.Stat(tempDir); !os.IsNotExist(err) {
		t.Errorf("cache directory was not removed by Clean()")
	}
}

func TestPurge(t *testing.T) {
	t.Run("counts the removed entries", func(t *testing.T) {
		// Arrange
		c, tempDir := setupTestCache(t, time.Hour)
		_ = c.Set("hash1", "data")
		_ = c.Set("hash2", "data")
		if err := os.WriteFile(filepath.Join(tempDir, "notes.txt"), []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}

		// Act
		removed, err := Purge(tempDir)

		// Assert
		if err != nil {
			t.Fatalf("Purge() error = %v", err)
		}
		if removed != 2 {
			t.Errorf("Purge() removed = %d, want 2", removed)
		}
		if _, err := os.Stat(tempDir); !os.IsNotExist(err) {
			t.Errorf("cache directory was not removed by Purge()")
		}
	})

	t.Run("missing directory is not an error", func(t *testing.T) {
		removed, err := Purge(filepath.Join(t.TempDir(), "absent"))
		if err != nil || removed != 0 {
			t.Errorf("Purge() = %d, %v; want 0, nil", removed, err)
		}
	})

	t.Run("empty path is a cache error", func(t *testing.T) {
		_, err := Purge("")
		if !errors.ErrCache.Is(err) {
			t.Errorf("Purge(\"\") error = %v, want ErrCache", err)
		}
	})
}

func TestCache_Get_UnmarshalError(t *testing.T) {
	// Arrange
	c, tempDir := setupTestCache(t, 1*time.Hour)
	hash := "corrupt-hash"
	_ = os.WriteFile(filepath.Join(tempDir, hash+".json"), []byte("invalid json{"), 0644)

	// Act
	_, found, err := c.Get(hash)

	// Assert
	if err == nil {
		t.Error("Get() error = nil, want error for invalid JSON")
	}
	if found {
		t.Error("Get() found = true, want false for invalid JSON")
	}
}
