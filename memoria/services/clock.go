package services

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/sisoputnfrba/tp-memoria-virtual/memoria/models"
)

// ClockEngine decide qué frame recibe cada página que entra a memoria usando el algoritmo CLOCK
// (segunda oportunidad). El índice de cada slot es el número de frame físico.
type ClockEngine struct {
	slots      []models.ClockSlot
	hand       int
	pageFaults int
}

func NewClockEngine(capacity int) *ClockEngine {
	if capacity < 1 {
		capacity = models.FrameCount
	}
	slog.Debug(fmt.Sprintf("CLOCK inicializado. Frames: %d", capacity))
	return &ClockEngine{slots: make([]models.ClockSlot, capacity)}
}

// Insert registra el acceso a una página. Si ya estaba cargada solo le prende el bit de uso.
// Si no, cuenta un page fault y la ubica en el primer slot libre o sin bit de uso que encuentre la aguja,
// retornando la página desalojada si hubo una.
func (c *ClockEngine) Insert(pageNumber int) (int, bool) {
	if i, found := c.find(pageNumber); found {
		c.slots[i].Reference = true
		return 0, false
	}

	c.pageFaults++

	// Cada slot con bit de uso se limpia a lo sumo una vez antes de volver a pasar por él,
	// así que en dos vueltas siempre aparece una víctima.
	for range 2 * len(c.slots) {
		slot := &c.slots[c.hand]

		if !slot.Occupied {
			*slot = models.ClockSlot{Occupied: true, PageNumber: pageNumber, Reference: true}
			c.advanceHand()
			return 0, false
		}

		if !slot.Reference {
			victim := slot.PageNumber
			*slot = models.ClockSlot{Occupied: true, PageNumber: pageNumber, Reference: true}
			slog.Debug("CLOCK - Víctima seleccionada", "frame", c.hand, "victim", victim, "page", pageNumber)
			c.advanceHand()
			return victim, true
		}

		// Segunda oportunidad
		slot.Reference = false
		c.advanceHand()
	}

	// Inalcanzable con una capacidad positiva.
	panic("CLOCK: no se encontró víctima en dos vueltas")
}

// FrameOf retorna el slot (frame) que ocupa la página.
func (c *ClockEngine) FrameOf(pageNumber int) (int, bool) {
	return c.find(pageNumber)
}

func (c *ClockEngine) find(pageNumber int) (int, bool) {
	for i, slot := range c.slots {
		if slot.Occupied && slot.PageNumber == pageNumber {
			return i, true
		}
	}
	return -1, false
}

func (c *ClockEngine) advanceHand() {
	c.hand = (c.hand + 1) % len(c.slots)
}

func (c *ClockEngine) PageFaultCount() int {
	return c.pageFaults
}

func (c *ClockEngine) Capacity() int {
	return len(c.slots)
}

// Snapshot copia el estado actual para que nadie de afuera pueda modificar los slots.
func (c *ClockEngine) Snapshot() models.ClockSnapshot {
	frames := make([]models.ClockSlot, len(c.slots))
	copy(frames, c.slots)
	return models.ClockSnapshot{Hand: c.hand, Frames: frames}
}

// DebugState renderiza cada frame como [página|bit de uso], marcando con ← la posición de la aguja.
func (c *ClockEngine) DebugState() string {
	parts := make([]string, 0, len(c.slots))
	for i, slot := range c.slots {
		marker := " "
		if i == c.hand {
			marker = "←"
		}
		if !slot.Occupied {
			parts = append(parts, marker+"[   ]")
			continue
		}
		parts = append(parts, fmt.Sprintf("%s[%d|%d]", marker, slot.PageNumber, b2i(slot.Reference)))
	}
	return strings.Join(parts, " ")
}

// Bool to integer
func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
