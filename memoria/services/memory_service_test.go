package services

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/sisoputnfrba/tp-memoria-virtual/memoria/models"
)

func TestMemoryService_ConcurrentTranslations(t *testing.T) {
	service := NewMemoryService(NewTranslator(testConfig(16, 16, true), newTestStore()))

	var wg sync.WaitGroup
	errs := make(chan error, 400)
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				address := ((worker*50 + i) * 131) % 65536
				page, offset := SplitAddress(address)
				result, err := service.Translate(address)
				if err != nil {
					errs <- err
					continue
				}
				if result.Value != expectedValue(page, offset) {
					errs <- errors.New("valor incorrecto")
				}
			}
		}(worker)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("Unexpected error: %v", err)
	}

	stats := service.Statistics()
	if stats.Translated != 400 {
		t.Errorf("Expected 400 translated, got %d", stats.Translated)
	}
	if len(service.ClockSnapshot().Frames) != 16 {
		t.Errorf("Expected 16 frames in snapshot")
	}
}

func TestMemoryService_InvalidAddressIsNotSticky(t *testing.T) {
	service := NewMemoryService(NewTranslator(models.DefaultConfig(), newTestStore()))

	if _, err := service.Translate(70000); !errors.Is(err, models.ErrInvalidAddress) {
		t.Fatalf("Expected ErrInvalidAddress, got: %v", err)
	}
	if _, err := service.Translate(19986); err != nil {
		t.Errorf("Expected service to keep working, got: %v", err)
	}
}

func TestMemoryService_FatalErrorIsSticky(t *testing.T) {
	store := NewBackingStore(bytes.NewReader(make([]byte, models.PageSize)))
	service := NewMemoryService(NewTranslator(models.DefaultConfig(), store))

	if _, err := service.Translate(256); !errors.Is(err, models.ErrBackingStoreRead) {
		t.Fatalf("Expected ErrBackingStoreRead, got: %v", err)
	}
	if _, err := service.Translate(0); !errors.Is(err, models.ErrBackingStoreRead) {
		t.Errorf("Expected the fatal error to be returned again, got: %v", err)
	}
}
