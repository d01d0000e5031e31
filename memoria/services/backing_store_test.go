package services

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sisoputnfrba/tp-memoria-virtual/memoria/models"
)

// buildBackingStore genera un backing store donde el byte k de la página p vale (p + k) mod 256.
func buildBackingStore() []byte {
	data := make([]byte, models.PageCount*models.PageSize)
	for page := 0; page < models.PageCount; page++ {
		for k := 0; k < models.PageSize; k++ {
			data[page*models.PageSize+k] = byte((page + k) % 256)
		}
	}
	return data
}

func newTestStore() *BackingStore {
	return NewBackingStore(bytes.NewReader(buildBackingStore()))
}

func expectedValue(page, offset int) int8 {
	return int8(byte((page + offset) % 256))
}

func TestBackingStore_ReadPage(t *testing.T) {
	store := newTestStore()

	page, err := store.ReadPage(78)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(page) != models.PageSize {
		t.Fatalf("Expected %d bytes, got %d", models.PageSize, len(page))
	}
	if page[18] != 96 {
		t.Errorf("Expected value 96 at offset 18, got %d", page[18])
	}
}

func TestBackingStore_SignedValues(t *testing.T) {
	store := newTestStore()

	page, err := store.ReadPage(200)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if page[0] != -56 {
		t.Errorf("Expected byte 200 to read as -56, got %d", page[0])
	}
}

func TestBackingStore_ShortRead(t *testing.T) {
	store := NewBackingStore(bytes.NewReader(make([]byte, models.PageSize+10)))

	if _, err := store.ReadPage(0); err != nil {
		t.Errorf("Expected page 0 to be readable, got: %v", err)
	}

	_, err := store.ReadPage(1)
	if !errors.Is(err, models.ErrBackingStoreRead) {
		t.Errorf("Expected ErrBackingStoreRead, got: %v", err)
	}
}

func TestBackingStore_PageOutOfRange(t *testing.T) {
	store := newTestStore()

	for _, page := range []int{-1, 256} {
		if _, err := store.ReadPage(page); !errors.Is(err, models.ErrBackingStoreRead) {
			t.Errorf("Expected ErrBackingStoreRead for page %d, got: %v", page, err)
		}
	}
}

func TestOpenBackingStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "BACKING_STORE.bin")
	if err := os.WriteFile(path, buildBackingStore(), 0644); err != nil {
		t.Fatalf("Failed to write backing store: %v", err)
	}

	store, err := OpenBackingStore(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	defer store.Close()

	page, err := store.ReadPage(255)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if page[255] != expectedValue(255, 255) {
		t.Errorf("Expected %d, got %d", expectedValue(255, 255), page[255])
	}

	if _, err := OpenBackingStore(filepath.Join(t.TempDir(), "missing.bin")); err == nil {
		t.Error("Expected error for missing backing store, got nil")
	}
}
