package list

import (
	"fmt"
	"sync"
)

// List Definir la interfaz List
type List[T any] interface {
	Add(item T)               // Añadir un elemento al final de la lista
	Get(index int) (T, error) // Obtener un elemento a partir de un índice dado
	GetAll() []T              // Retorna una copia de todos los elementos de la lista
	Size() int                // Retornar el tamaño de la lista
}

// ArrayList implements List
type ArrayList[T any] struct {
	mu    sync.RWMutex
	items []T
}

// NewArrayList crea una lista vacía reservando lugar para capacity elementos.
func NewArrayList[T any](capacity int) *ArrayList[T] {
	return &ArrayList[T]{items: make([]T, 0, capacity)}
}

// Add inserta un elemento al final de la lista.
//
// Parámetros:
//   - item: Elemento a insertar.
//
// Ejemplo:
//
//	func main() {
//		addresses := &ArrayList[int]{}
//		addresses.Add(16916)
//		addresses.Add(62493)
//	}
func (list *ArrayList[T]) Add(item T) {
	list.mu.Lock() // Bloqueo exclusivo para evitar cambios simultáneos
	defer list.mu.Unlock()

	list.items = append(list.items, item)
}

// Get obtiene el elemento en la posición index. Si el índice no existe retorna el valor "cero" de T y un error.
func (list *ArrayList[T]) Get(index int) (T, error) {
	list.mu.RLock()
	defer list.mu.RUnlock()

	if index < 0 || index >= len(list.items) {
		var zero T
		return zero, fmt.Errorf("index %d out of range (size %d)", index, len(list.items))
	}
	return list.items[index], nil
}

// GetAll retorna una copia de los elementos, así quien la recorra no bloquea la lista.
//
// Ejemplo:
//
//	func main() {
//		addresses := &ArrayList[int]{}
//		addresses.Add(16916)
//		for _, address := range addresses.GetAll() {
//			fmt.Println(address)
//		}
//	}
func (list *ArrayList[T]) GetAll() []T {
	list.mu.RLock() //Bloqueo de solo lectura: permite otras lecturas concurrentes
	defer list.mu.RUnlock()

	items := make([]T, len(list.items))
	copy(items, list.items)
	return items
}

// Size retorna la cantidad de elementos de la lista.
func (list *ArrayList[T]) Size() int {
	list.mu.RLock()
	defer list.mu.RUnlock()

	return len(list.items)
}
