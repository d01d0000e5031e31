package models

import "fmt"

type Config struct {
	FrameCount           int    `json:"frame_count"`
	TlbEntries           int    `json:"tlb_entries"`
	TlbInvalidateOnEvict bool   `json:"tlb_invalidate_on_evict"`
	ShowClock            string `json:"show_clock"`  // "auto", "always" o "never"
	ClockDelay           int    `json:"clock_delay"` // milisegundos entre cada snapshot del CLOCK
	LogLevel             string `json:"log_level"`
	LogPath              string `json:"log_path"`
	PortMemory           int    `json:"port_memory"`
}

var MemoryConfig *Config

const (
	ShowClockAuto   = "auto"
	ShowClockAlways = "always"
	ShowClockNever  = "never"
)

// DefaultConfig retorna la configuración con la que corre el simulador si no hay archivo de config.
func DefaultConfig() *Config {
	return &Config{
		FrameCount:           FrameCount,
		TlbEntries:           TlbSize,
		TlbInvalidateOnEvict: false,
		ShowClock:            ShowClockAuto,
		ClockDelay:           0,
		LogLevel:             "INFO",
		LogPath:              "./logs/memoria.log",
		PortMemory:           8002,
	}
}

// Validate verifica que los valores de la configuración sean usables por la memoria.
func (c *Config) Validate() error {
	if c.FrameCount < 1 || c.FrameCount > PageCount {
		return fmt.Errorf("frame_count debe estar entre 1 y %d, se recibió %d", PageCount, c.FrameCount)
	}
	if c.TlbEntries < 1 {
		return fmt.Errorf("tlb_entries debe ser positivo, se recibió %d", c.TlbEntries)
	}
	if c.ClockDelay < 0 {
		return fmt.Errorf("clock_delay no puede ser negativo, se recibió %d", c.ClockDelay)
	}
	switch c.ShowClock {
	case ShowClockAuto, ShowClockAlways, ShowClockNever:
	default:
		return fmt.Errorf("show_clock inválido: %q", c.ShowClock)
	}
	return nil
}
