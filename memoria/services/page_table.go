package services

import (
	"fmt"

	"github.com/sisoputnfrba/tp-memoria-virtual/memoria/models"
)

// PageTable es una tabla de un solo nivel indexada por número de página (0-255).
type PageTable struct {
	entries [models.PageCount]models.PageEntry
}

func NewPageTable() *PageTable {
	return &PageTable{}
}

func (pt *PageTable) IsValid(pageNumber int) bool {
	return pt.entries[pageNumber].Presence
}

// Resolve retorna el frame de una página presente. Llamarlo sobre una entrada inválida es un error de
// programación del llamador, por eso entra en pánico.
func (pt *PageTable) Resolve(pageNumber int) int {
	entry := pt.entries[pageNumber]
	if !entry.Presence {
		panic(fmt.Sprintf("entrada de página %d no presente", pageNumber))
	}
	return entry.Frame
}

func (pt *PageTable) Bind(pageNumber int, frame int) {
	pt.entries[pageNumber] = models.PageEntry{
		Frame:    frame,
		Presence: true,
	}
}

func (pt *PageTable) Invalidate(pageNumber int) {
	pt.entries[pageNumber].Presence = false
}

// ValidCount cuenta las entradas presentes.
func (pt *PageTable) ValidCount() int {
	count := 0
	for _, entry := range pt.entries {
		if entry.Presence {
			count++
		}
	}
	return count
}

// Mappings retorna página -> frame de todas las entradas presentes.
func (pt *PageTable) Mappings() map[int]int {
	mappings := make(map[int]int)
	for page, entry := range pt.entries {
		if entry.Presence {
			mappings[page] = entry.Frame
		}
	}
	return mappings
}
