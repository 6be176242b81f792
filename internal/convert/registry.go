package convert

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	registry = make(map[string]Converter)
	byExt    = make(map[string]Converter)
	mu       sync.RWMutex
)

// Register adds a converter to the global registry. It panics on duplicate
// converter IDs or extension claims; registration happens in init functions
// and a collision is a programming error.
func Register(c Converter) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[c.ID()]; exists {
		panic(fmt.Sprintf("converter %s already registered", c.ID()))
	}
	for _, ext := range c.Extensions() {
		ext = strings.ToLower(ext)
		if prev, exists := byExt[ext]; exists {
			panic(fmt.Sprintf("extension %s already claimed by converter %s", ext, prev.ID()))
		}
		byExt[ext] = c
	}
	registry[c.ID()] = c
}

// List returns all registered converters sorted by ID.
func List() []Converter {
	mu.RLock()
	defer mu.RUnlock()
	var converters []Converter
	for _, c := range registry {
		converters = append(converters, c)
	}
	sort.Slice(converters, func(i, j int) bool {
		return converters[i].ID() < converters[j].ID()
	})
	return converters
}

// Lookup finds a converter by ID.
func Lookup(id string) (Converter, bool) {
	mu.RLock()
	defer mu.RUnlock()
	c, ok := registry[id]
	return c, ok
}

// ForExtension finds the converter claiming a file extension. The extension
// is matched case-insensitively and must include the leading dot.
func ForExtension(ext string) (Converter, bool) {
	mu.RLock()
	defer mu.RUnlock()
	c, ok := byExt[strings.ToLower(ext)]
	return c, ok
}

// Extensions returns every claimed extension, sorted.
func Extensions() []string {
	mu.RLock()
	defer mu.RUnlock()
	exts := make([]string, 0, len(byExt))
	for ext := range byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
