package engine

import (
	"reflect"
	"sync"
)

// ResourceStore is a thread-safe container for app-wide resources
// Plugins install resources at build time; systems read them during updates
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates a new empty resource store
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or replaces a resource keyed by its static type T
// Pointer types are recommended so systems can mutate the resource in place
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources[reflect.TypeFor[T]()] = resource
}

// GetResource retrieves a resource of type T from the store
// Returns the zero value of T and false if not found
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	val, ok := rs.resources[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return val.(T), true
}

// MustGetResource retrieves a resource or panics if missing
// Use for resources a plugin installs before its systems run
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		panic("required resource not found: " + reflect.TypeFor[T]().String())
	}
	return res
}

// RemoveResource deletes the resource of type T, reporting whether it existed
func RemoveResource[T any](rs *ResourceStore) bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	t := reflect.TypeFor[T]()
	if _, ok := rs.resources[t]; !ok {
		return false
	}
	delete(rs.resources, t)
	return true
}

// Len returns the number of installed resources
func (rs *ResourceStore) Len() int {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return len(rs.resources)
}
