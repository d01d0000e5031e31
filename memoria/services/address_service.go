package services

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/sisoputnfrba/tp-memoria-virtual/memoria/models"
)

// ParseAddress convierte una línea de entrada en una dirección lógica. Si la línea no es un entero
// en el rango [0, 65535] retorna models.InvalidAddress.
func ParseAddress(line string) int {
	address, err := strconv.ParseInt(strings.TrimSpace(line), 10, 32)
	if err != nil || address < 0 || address > models.MaxLogicalAddress {
		return models.InvalidAddress
	}
	return int(address)
}

// ScanAddresses lee el stream línea por línea y llama a handle con cada dirección válida apenas la lee,
// sin esperar al final del stream. Las líneas inválidas (incluidas las que no entran en el buffer del
// lector) se saltean y se cuentan en skipped. Un error de handle corta la lectura y se retorna tal cual.
func ScanAddresses(reader io.Reader, handle func(address int) error) (skipped int, err error) {
	buffered := bufio.NewReader(reader)

	lineNumber := 0
	for {
		line, readErr := buffered.ReadSlice('\n')
		if readErr == bufio.ErrBufferFull {
			// Ninguna dirección válida ocupa tanto: se descarta el resto de la línea sin acumularla.
			lineNumber++
			skipped++
			slog.Debug("Línea ignorada por ser demasiado larga", "line", lineNumber)
			readErr = discardLine(buffered)
			if readErr == nil {
				continue
			}
		} else if len(line) > 0 {
			lineNumber++
			address := ParseAddress(string(line))
			if address == models.InvalidAddress {
				skipped++
				slog.Debug("Línea ignorada", "line", lineNumber, "text", strings.TrimSpace(string(line)))
			} else if err := handle(address); err != nil {
				return skipped, err
			}
		}

		if readErr == io.EOF {
			return skipped, nil
		}
		if readErr != nil {
			return skipped, fmt.Errorf("error leyendo direcciones después de la línea %d: %w", lineNumber, readErr)
		}
	}
}

// discardLine consume lo que queda de la línea actual, incluido el salto de línea.
func discardLine(reader *bufio.Reader) error {
	for {
		_, err := reader.ReadSlice('\n')
		if err != bufio.ErrBufferFull {
			return err
		}
	}
}
