package export

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Factory creates an encoder instance. Factories are registered via
// Register and called by Lookup.
type Factory func() Encoder

type format struct {
	factory    Factory
	extensions []string
}

// Registry state, protected by registryMu.
var (
	registryMu sync.RWMutex
	formats    = make(map[string]format)
	extensions = make(map[string]string)
)

// Register makes an encoder available under name and claims the given
// file extensions (with leading dot, case-insensitive) for ForPath.
// Built-in formats register themselves from init:
//
//	func init() {
//	    export.Register("png", func() export.Encoder { return pngEncoder{} }, ".png")
//	}
//
// Register panics if factory is nil, if name is already registered, or if
// an extension is already claimed by another format.
func Register(name string, factory Factory, exts ...string) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("export: Register factory is nil")
	}
	if _, dup := formats[name]; dup {
		panic("export: Register called twice for " + name)
	}
	norm := make([]string, len(exts))
	for i, ext := range exts {
		ext = strings.ToLower(ext)
		if owner, dup := extensions[ext]; dup {
			panic("export: extension " + ext + " already registered by " + owner)
		}
		norm[i] = ext
	}
	for _, ext := range norm {
		extensions[ext] = name
	}
	formats[name] = format{factory: factory, extensions: norm}
}

// Unregister removes a format and its extensions. It is a no-op for
// unknown names.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	f, ok := formats[name]
	if !ok {
		return
	}
	for _, ext := range f.extensions {
		delete(extensions, ext)
	}
	delete(formats, name)
}

// Lookup returns a new encoder for the named format.
func Lookup(name string) (Encoder, error) {
	registryMu.RLock()
	f, ok := formats[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, name)
	}
	return f.factory(), nil
}

// ForPath returns the format registered for the extension of path.
func ForPath(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	registryMu.RLock()
	name, ok := extensions[ext]
	registryMu.RUnlock()

	if !ok {
		return "", fmt.Errorf("%w for file %q", ErrUnknownFormat, path)
	}
	return name, nil
}

// Formats returns the registered format names in sorted order.
func Formats() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a format with the given name exists.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := formats[name]
	return ok
}
