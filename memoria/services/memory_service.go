package services

import (
	"sync"

	"github.com/sisoputnfrba/tp-memoria-virtual/memoria/models"
)

// MemoryService serializa el acceso al Translator para poder atender pedidos HTTP concurrentes.
// El CLOCK y el cursor de la TLB dependen de un orden total de operaciones.
type MemoryService struct {
	memoryLock sync.Mutex
	translator *Translator
	failure    error
}

func NewMemoryService(translator *Translator) *MemoryService {
	return &MemoryService{translator: translator}
}

// Translate traduce una dirección. Después de un error fatal el servicio queda inutilizable y
// todos los pedidos siguientes devuelven ese mismo error.
func (s *MemoryService) Translate(logicalAddress int) (models.TranslationResult, error) {
	s.memoryLock.Lock()
	defer s.memoryLock.Unlock()

	if s.failure != nil {
		return models.TranslationResult{}, s.failure
	}

	result, err := s.translator.Translate(logicalAddress)
	if err != nil && !isInvalidAddress(err) {
		s.failure = err
	}
	return result, err
}

func (s *MemoryService) Statistics() models.Statistics {
	s.memoryLock.Lock()
	defer s.memoryLock.Unlock()

	return s.translator.Statistics()
}

func (s *MemoryService) ClockSnapshot() models.ClockSnapshot {
	s.memoryLock.Lock()
	defer s.memoryLock.Unlock()

	return s.translator.ClockSnapshot()
}
