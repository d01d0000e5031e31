package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// InitLogger permite loguear tanto en stderr como en archivo según el nivel que se le pase.
// Stdout queda libre para la salida del programa.
//
// Parámetros:
//   - logPath: la ubicación donde se va encontrar el archivo, si el directorio no existe se crea
//   - logLevel: nivel de logueo, este dato viene definido en el archivo de config.
//
// Ejemplo:
//
//	func main() {
//		logFile, err := log.InitLogger("./logs/memoria.log", "INFO")
//		if err != nil {
//			panic(err)
//		}
//		defer logFile.Close()
//	}
func InitLogger(logPath string, logLevel string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), os.ModePerm); err != nil {
		return nil, fmt.Errorf("no se pudo crear el directorio de logs: %w", err)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0666)
	if err != nil {
		return nil, err
	}

	SetupLogger(io.MultiWriter(os.Stderr, logFile), logLevel)
	return logFile, nil
}

// SetupLogger configura slog para escribir en writer con el nivel indicado.
func SetupLogger(writer io.Writer, logLevel string) {
	// Convertir el logLevel del config al tipo slog.Level.
	level, err := convertStringToLogLevel(logLevel)

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))

	// Escribimos en el log el warning que obtenemos por no setear el logLevel
	if err != nil {
		slog.Warn(err.Error())
	}

	slog.Debug("Se ha configurado correctamente el logger.")
}

// convertStringToLogLevel modifica dinámicamente el nivel de log que deseamos tener en el sistema.
func convertStringToLogLevel(levelStr string) (slog.Level, error) {
	switch levelStr {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("No existe %s, se coloca INFO por defecto. ", levelStr)
	}
}
