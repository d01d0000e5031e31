package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	memoryHandler "github.com/sisoputnfrba/tp-memoria-virtual/memoria/handlers"
	"github.com/sisoputnfrba/tp-memoria-virtual/memoria/helpers"
	"github.com/sisoputnfrba/tp-memoria-virtual/memoria/models"
	"github.com/sisoputnfrba/tp-memoria-virtual/memoria/services"
	"github.com/sisoputnfrba/tp-memoria-virtual/utils/web/server"
)

const (
	//NO borrar el comentario de ConfigPath
	ConfigPath = "memoria/configs/memoria.json" //"./configs/memoria.json"
	ServeFlag  = "--serve"
	StdinPath  = "-"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "Uso: memoria <backing_store> <direcciones|-|--serve> [<clave> <valor> ...]")
		os.Exit(1)
	}
	backingStorePath := os.Args[1]
	addressesPath := os.Args[2]

	logFile, err := helpers.InitMemory(ConfigPath, os.Args[3:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logFile.Close()

	if err := run(backingStorePath, addressesPath); err != nil {
		slog.Error(err.Error())
		logFile.Close()
		os.Exit(1)
	}
}

func run(backingStorePath string, addressesPath string) error {
	store, err := services.OpenBackingStore(backingStorePath)
	if err != nil {
		return err
	}
	defer store.Close()

	translator := services.NewTranslator(models.MemoryConfig, store)
	slog.Info("Memoria lista", "frames", models.MemoryConfig.FrameCount, "tlb_entries", models.MemoryConfig.TlbEntries)

	if addressesPath == ServeFlag {
		service := services.NewMemoryService(translator)
		return server.InitServer(models.MemoryConfig.PortMemory, memoryHandler.NewRouter(service))
	}

	var input io.Reader = os.Stdin
	if addressesPath != StdinPath {
		file, err := os.Open(addressesPath)
		if err != nil {
			return fmt.Errorf("no se pudo abrir el archivo de direcciones %s: %w", addressesPath, err)
		}
		defer file.Close()
		input = file
	}

	options := helpers.BatchOptions{
		ShowClock:  helpers.ShouldShowClock(models.MemoryConfig.ShowClock, os.Stdout),
		ClockDelay: time.Duration(models.MemoryConfig.ClockDelay) * time.Millisecond,
	}
	return helpers.TranslateAll(os.Stdout, translator, input, options)
}
