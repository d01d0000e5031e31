package helpers

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/sisoputnfrba/tp-memoria-virtual/memoria/models"
	"github.com/sisoputnfrba/tp-memoria-virtual/memoria/services"
	"github.com/sisoputnfrba/tp-memoria-virtual/utils/config"
	"github.com/sisoputnfrba/tp-memoria-virtual/utils/log"
)

// LoadMemoryConfig arma la configuración partiendo de los valores por defecto, el archivo (si existe)
// y por último los pares clave valor recibidos por línea de comandos.
func LoadMemoryConfig(configPath string, overrides []string) (*models.Config, error) {
	memoryConfig := models.DefaultConfig()

	err := config.LoadConfig(configPath, memoryConfig)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if err := config.ApplyOverrides(memoryConfig, overrides); err != nil {
		return nil, err
	}

	if err := memoryConfig.Validate(); err != nil {
		return nil, err
	}
	return memoryConfig, nil
}

// InitMemory carga la configuración en models.MemoryConfig e inicializa el logger.
// Retorna el archivo de log para que el llamador lo cierre.
func InitMemory(configPath string, overrides []string) (*os.File, error) {
	memoryConfig, err := LoadMemoryConfig(configPath, overrides)
	if err != nil {
		return nil, fmt.Errorf("configuración inválida: %w", err)
	}
	models.MemoryConfig = memoryConfig

	logFile, err := log.InitLogger(memoryConfig.LogPath, memoryConfig.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("no se pudo inicializar el logger: %w", err)
	}

	slog.Debug("Configuración cargada", slog.Any("config", memoryConfig))
	return logFile, nil
}

// IsTerminal indica si el archivo es una terminal interactiva.
func IsTerminal(file *os.File) bool {
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// ShouldShowClock decide si después de cada traducción se imprime el estado del CLOCK.
func ShouldShowClock(showClock string, output *os.File) bool {
	switch showClock {
	case models.ShowClockAlways:
		return true
	case models.ShowClockNever:
		return false
	default:
		return IsTerminal(output)
	}
}

func PrintResult(w io.Writer, result models.TranslationResult) {
	fmt.Fprintf(w, "Virtual address: %d Physical address: %d Value: %d\n",
		result.LogicalAddress, result.PhysicalAddress, result.Value)
}

func PrintClockState(w io.Writer, state string) {
	fmt.Fprintf(w, "Memory: %s\n", state)
}

func PrintStatistics(w io.Writer, stats models.Statistics) {
	fmt.Fprintf(w, "Number of Translated Addresses = %d\n", stats.Translated)
	fmt.Fprintf(w, "Page Faults = %d\n", stats.PageFaults)
	fmt.Fprintf(w, "Page Fault Rate = %.3f\n", stats.PageFaultRate)
	fmt.Fprintf(w, "TLB Hits = %d\n", stats.TLBHits)
	fmt.Fprintf(w, "TLB Hit Rate = %.3f\n", stats.TLBHitRate)
}

type BatchOptions struct {
	ShowClock  bool
	ClockDelay time.Duration
}

// TranslateAll traduce las direcciones del stream a medida que las lee, escribe una línea por cada una
// y al final el resumen. Corta en el primer error fatal del translator o de lectura.
func TranslateAll(w io.Writer, translator *services.Translator, input io.Reader, options BatchOptions) error {
	skipped, err := services.ScanAddresses(input, func(address int) error {
		result, err := translator.Translate(address)
		if err != nil {
			return fmt.Errorf("error traduciendo la dirección %d: %w", address, err)
		}

		PrintResult(w, result)
		if options.ShowClock {
			PrintClockState(w, translator.ClockState())
			if options.ClockDelay > 0 {
				time.Sleep(options.ClockDelay)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if skipped > 0 {
		slog.Info(fmt.Sprintf("Se ignoraron %d líneas inválidas", skipped))
	}

	stats := translator.Statistics()
	slog.Info("Traducción finalizada", "translated", stats.Translated, "page_faults", stats.PageFaults, "tlb_hits", stats.TLBHits)
	PrintStatistics(w, stats)
	return nil
}
