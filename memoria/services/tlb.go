package services

import (
	"fmt"
	"log/slog"

	"github.com/sisoputnfrba/tp-memoria-virtual/memoria/models"
)

// TLB es una caché totalmente asociativa de página -> frame con reemplazo FIFO.
// Las entradas viven en un buffer circular de tamaño fijo y el cursor apunta a la próxima víctima.
type TLB struct {
	entries []models.TLBEntry
	cursor  int
}

func NewTLB(size int) *TLB {
	if size < 1 {
		size = models.TlbSize
	}
	slog.Debug(fmt.Sprintf("TLB inicializada. Entradas: %d, Algoritmo: FIFO", size))
	return &TLB{entries: make([]models.TLBEntry, size)}
}

// Lookup recorre todas las entradas y retorna el frame de la primera que coincida con la página.
func (t *TLB) Lookup(pageNumber int) (int, bool) {
	for i := range t.entries {
		if t.entries[i].Valid && t.entries[i].PageNumber == pageNumber {
			return t.entries[i].FrameNumber, true
		}
	}
	return 0, false
}

// Insert escribe en la posición del cursor sin importar qué tan reciente sea la entrada que pisa.
func (t *TLB) Insert(pageNumber int, frameNumber int) {
	victim := t.entries[t.cursor]
	if victim.Valid {
		slog.Debug(fmt.Sprintf("TLB reemplazo: Reemplazando entrada Página %d por Página %d", victim.PageNumber, pageNumber))
	}

	t.entries[t.cursor] = models.TLBEntry{
		PageNumber:  pageNumber,
		FrameNumber: frameNumber,
		Valid:       true,
	}
	t.cursor = (t.cursor + 1) % len(t.entries)
}

// Invalidate elimina las entradas de la página. No mueve el cursor.
func (t *TLB) Invalidate(pageNumber int) {
	for i := range t.entries {
		if t.entries[i].Valid && t.entries[i].PageNumber == pageNumber {
			t.entries[i].Valid = false
		}
	}
}

// Cursor retorna la posición que va a ocupar el próximo Insert.
func (t *TLB) Cursor() int {
	return t.cursor
}

// Len retorna la cantidad de entradas válidas.
func (t *TLB) Len() int {
	count := 0
	for _, entry := range t.entries {
		if entry.Valid {
			count++
		}
	}
	return count
}
