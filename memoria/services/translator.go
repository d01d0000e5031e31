package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/sisoputnfrba/tp-memoria-virtual/memoria/models"
)

// Translator coordina TLB, tabla de páginas, CLOCK, memoria física y backing store para traducir
// direcciones lógicas de a una por vez. No es seguro para uso concurrente.
type Translator struct {
	tlb       *TLB
	table     *PageTable
	clock     *ClockEngine
	memory    *PhysicalMemory
	store     PageReader
	nextFrame int

	invalidateTLB bool

	translated int
	tlbHits    int
}

func NewTranslator(cfg *models.Config, store PageReader) *Translator {
	return &Translator{
		tlb:           NewTLB(cfg.TlbEntries),
		table:         NewPageTable(),
		clock:         NewClockEngine(cfg.FrameCount),
		memory:        NewPhysicalMemory(cfg.FrameCount),
		store:         store,
		invalidateTLB: cfg.TlbInvalidateOnEvict,
	}
}

// SplitAddress descompone una dirección lógica de 16 bits en número de página y desplazamiento.
func SplitAddress(logicalAddress int) (int, int) {
	pageNumber := (logicalAddress >> 8) & 0xFF
	offset := logicalAddress & 0xFF
	return pageNumber, offset
}

// Translate resuelve una dirección lógica al byte que contiene. Salvo ErrInvalidAddress, los errores que
// retorna son fatales: dejan las estructuras en un estado del que no se puede seguir.
func (t *Translator) Translate(logicalAddress int) (models.TranslationResult, error) {
	if logicalAddress < 0 || logicalAddress > models.MaxLogicalAddress {
		return models.TranslationResult{}, fmt.Errorf("%w: %d", models.ErrInvalidAddress, logicalAddress)
	}

	pageNumber, offset := SplitAddress(logicalAddress)
	result := models.TranslationResult{LogicalAddress: logicalAddress}

	frame, hit := t.tlb.Lookup(pageNumber)
	if hit {
		t.tlbHits++
		result.TLBHit = true
		slog.Debug(fmt.Sprintf("TLB HIT - Pagina: %d", pageNumber), "frame", frame)
	} else {
		slog.Debug(fmt.Sprintf("TLB MISS - Página: %d", pageNumber))
		if !t.table.IsValid(pageNumber) {
			if err := t.handlePageFault(pageNumber); err != nil {
				return models.TranslationResult{}, err
			}
			result.PageFault = true
		}
		frame = t.table.Resolve(pageNumber)
		t.tlb.Insert(pageNumber, frame)
	}

	result.Value = t.memory.Read(frame, offset)
	result.PhysicalAddress = frame*models.PageSize + offset
	t.translated++
	return result, nil
}

func (t *Translator) handlePageFault(pageNumber int) error {
	page, err := t.store.ReadPage(pageNumber)
	if err != nil {
		slog.Error("Error leyendo página del backing store", "page", pageNumber, "error", err)
		return err
	}

	victim, evicted := t.clock.Insert(pageNumber)

	var frame int
	if t.nextFrame < t.memory.FrameCount() {
		// Mientras queden frames sin usar se asignan en orden y se ignora la víctima del CLOCK.
		frame = t.nextFrame
		t.nextFrame++
		slog.Debug("Page fault - frame libre asignado", "page", pageNumber, "frame", frame)
	} else {
		if !evicted {
			return fmt.Errorf("%w: página %d", models.ErrNoVictim, pageNumber)
		}
		frame = t.table.Resolve(victim)
		t.table.Invalidate(victim)
		if t.invalidateTLB {
			t.tlb.Invalidate(victim)
		}
		slog.Debug("Page fault - reemplazo", "page", pageNumber, "victim", victim, "frame", frame)
	}

	if clockFrame, ok := t.clock.FrameOf(pageNumber); !ok || clockFrame != frame {
		return fmt.Errorf("%w: página %d en frame %d, CLOCK la tiene en %d", models.ErrFrameMismatch, pageNumber, frame, clockFrame)
	}

	if err := t.memory.Load(frame, page); err != nil {
		return err
	}
	t.table.Bind(pageNumber, frame)
	return nil
}

// Statistics calcula los contadores acumulados. Sin direcciones traducidas las tasas valen 0.
func (t *Translator) Statistics() models.Statistics {
	stats := models.Statistics{
		Translated: t.translated,
		PageFaults: t.clock.PageFaultCount(),
		TLBHits:    t.tlbHits,
	}
	if t.translated > 0 {
		stats.PageFaultRate = float64(stats.PageFaults) / float64(t.translated)
		stats.TLBHitRate = float64(stats.TLBHits) / float64(t.translated)
	}
	return stats
}

func (t *Translator) ClockSnapshot() models.ClockSnapshot {
	return t.clock.Snapshot()
}

func (t *Translator) ClockState() string {
	return t.clock.DebugState()
}

func isInvalidAddress(err error) bool {
	return errors.Is(err, models.ErrInvalidAddress)
}
