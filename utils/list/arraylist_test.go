package list

import (
	"testing"
)

func TestArrayList_Add(t *testing.T) {
	list := &ArrayList[int]{}

	list.Add(10)
	list.Add(20)

	if list.Size() != 2 {
		t.Errorf("Expected size 2, got %d", list.Size())
	}
}

func TestArrayList_Size(t *testing.T) {
	list := NewArrayList[int](4)

	if list.Size() != 0 {
		t.Errorf("Expected size 0, got %d", list.Size())
	}

	list.Add(10)

	if list.Size() != 1 {
		t.Errorf("Expected size 1, got %d", list.Size())
	}
}

func TestArrayList_Get(t *testing.T) {
	list := &ArrayList[int]{}
	list.Add(10)
	list.Add(20)

	value, err := list.Get(1)
	if err != nil || value != 20 {
		t.Errorf("Expected 20 at index 1, got %d (err: %v)", value, err)
	}

	_, err = list.Get(2)
	if err == nil {
		t.Error("Expected error for index out of range, got nil")
	}

	_, err = list.Get(-1)
	if err == nil {
		t.Error("Expected error for negative index, got nil")
	}
}

func TestArrayList_GetAll(t *testing.T) {
	list := &ArrayList[string]{}
	list.Add("a")
	list.Add("b")

	items := list.GetAll()
	if len(items) != 2 || items[0] != "a" || items[1] != "b" {
		t.Errorf("Expected [a b], got %v", items)
	}

	// Modificar la copia no tiene que afectar a la lista
	items[0] = "z"
	value, _ := list.Get(0)
	if value != "a" {
		t.Errorf("Expected list to keep 'a' at index 0, got %s", value)
	}
}
