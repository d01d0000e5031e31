package services

import (
	"fmt"

	"github.com/sisoputnfrba/tp-memoria-virtual/memoria/models"
)

type Frame [models.PageSize]int8

// PhysicalMemory es el arreglo fijo de frames de la memoria principal.
type PhysicalMemory struct {
	frames []Frame
}

func NewPhysicalMemory(frameCount int) *PhysicalMemory {
	return &PhysicalMemory{frames: make([]Frame, frameCount)}
}

// Load pisa el contenido del frame con los bytes de una página.
func (pm *PhysicalMemory) Load(frame int, page []int8) error {
	if frame < 0 || frame >= len(pm.frames) {
		return fmt.Errorf("frame %d fuera de rango (0-%d)", frame, len(pm.frames)-1)
	}
	if len(page) != models.PageSize {
		return fmt.Errorf("se esperaban %d bytes para el frame %d, se recibieron %d", models.PageSize, frame, len(page))
	}
	copy(pm.frames[frame][:], page)
	return nil
}

func (pm *PhysicalMemory) Read(frame int, offset int) int8 {
	return pm.frames[frame][offset]
}

func (pm *PhysicalMemory) FrameCount() int {
	return len(pm.frames)
}
