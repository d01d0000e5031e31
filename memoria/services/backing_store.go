package services

import (
	"fmt"
	"io"
	"os"

	"github.com/sisoputnfrba/tp-memoria-virtual/memoria/models"
)

// PageReader es cualquier fuente de la que se pueda leer una página completa.
type PageReader interface {
	ReadPage(pageNumber int) ([]int8, error)
}

// BackingStore lee páginas de 256 bytes de un almacenamiento de acceso aleatorio.
type BackingStore struct {
	source io.ReaderAt
	closer io.Closer
}

func NewBackingStore(source io.ReaderAt) *BackingStore {
	return &BackingStore{source: source}
}

// OpenBackingStore abre el archivo del backing store en modo lectura.
func OpenBackingStore(path string) (*BackingStore, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("no se pudo abrir el backing store %s: %w", path, err)
	}
	return &BackingStore{source: file, closer: file}, nil
}

// ReadPage lee exactamente una página desde el offset pageNumber*256. Una lectura parcial es un error.
func (bs *BackingStore) ReadPage(pageNumber int) ([]int8, error) {
	if pageNumber < 0 || pageNumber >= models.PageCount {
		return nil, fmt.Errorf("%w: página %d fuera de rango", models.ErrBackingStoreRead, pageNumber)
	}

	buffer := make([]byte, models.PageSize)
	offset := int64(pageNumber) * models.PageSize
	section := io.NewSectionReader(bs.source, offset, models.PageSize)
	if _, err := io.ReadFull(section, buffer); err != nil {
		return nil, fmt.Errorf("%w: página %d en offset %d: %v", models.ErrBackingStoreRead, pageNumber, offset, err)
	}

	page := make([]int8, models.PageSize)
	for i, b := range buffer {
		page[i] = int8(b)
	}
	return page, nil
}

func (bs *BackingStore) Close() error {
	if bs.closer == nil {
		return nil
	}
	return bs.closer.Close()
}
