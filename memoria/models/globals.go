package models

import "errors"

const (
	PageSize   = 256 // bytes por página y por frame
	PageCount  = 256 // páginas direccionables con 8 bits
	FrameCount = 128
	TlbSize    = 16

	MaxLogicalAddress = PageSize*PageCount - 1
)

// InvalidAddress es el centinela que representa una línea de entrada que no se pudo parsear.
const InvalidAddress = -1

type TLBEntry struct {
	PageNumber  int
	FrameNumber int
	Valid       bool
}

type PageEntry struct {
	Frame    int
	Presence bool
}

// ClockSlot representa un frame visto por el algoritmo CLOCK.
type ClockSlot struct {
	Occupied   bool `json:"occupied"`
	PageNumber int  `json:"page"`
	Reference  bool `json:"reference"`
}

type ClockSnapshot struct {
	Hand   int         `json:"hand"`
	Frames []ClockSlot `json:"frames"`
}

type TranslationResult struct {
	LogicalAddress  int  `json:"logical_address"`
	PhysicalAddress int  `json:"physical_address"`
	Value           int8 `json:"value"`
	TLBHit          bool `json:"tlb_hit"`
	PageFault       bool `json:"page_fault"`
}

type Statistics struct {
	Translated    int     `json:"translated"`
	PageFaults    int     `json:"page_faults"`
	PageFaultRate float64 `json:"page_fault_rate"`
	TLBHits       int     `json:"tlb_hits"`
	TLBHitRate    float64 `json:"tlb_hit_rate"`
}

// DEFINICION DE ERRORES
var ErrBackingStoreRead = errors.New("backing store read failed")
var ErrNoVictim = errors.New("memory full but no page to evict")
var ErrFrameMismatch = errors.New("page table and clock disagree on frame")
var ErrInvalidAddress = errors.New("invalid logical address")
