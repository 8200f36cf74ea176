// Package configloader provides a generic runtime registry for configuration
// instances in winechad. The CLI registers its loaded configuration sections
// here so that packages such as logging can read their own section without
// importing the config package.
//
// Typical usage:
//
//	configloader.RegisterConfig(&cfg.Logger)
//	logCfg := configloader.MustGetConfig[*logging.Config]()
package configloader

import (
	"fmt"
	"reflect"
	"sync"
)

var registry sync.Map // key = reflect.Type of the config type, value = registered config instance

func typeKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// RegisterConfig registers a config instance of type T for global access.
//
// It panics if a config of the same type is already registered.
func RegisterConfig[T any](cfg T) {
	t := typeKey[T]()
	if _, loaded := registry.LoadOrStore(t, cfg); loaded {
		panic(fmt.Sprintf("config already registered for type %v", t))
	}
}

// ReplaceConfig registers cfg for type T, overwriting any earlier instance.
// Used when defaults registered at init time are superseded by a loaded file.
func ReplaceConfig[T any](cfg T) {
	registry.Store(typeKey[T](), cfg)
}

// MustGetConfig retrieves the registered config instance of type T.
//
// It panics if no config of type T has been registered.
func MustGetConfig[T any]() T {
	t := typeKey[T]()
	if val, ok := registry.Load(t); ok {
		return val.(T)
	}
	panic(fmt.Sprintf("no config registered for type %v", t))
}

// TryGetConfig retrieves the registered config instance of type T.
//
// It returns (zero-value, false) if the config was not found.
func TryGetConfig[T any]() (T, bool) {
	if val, ok := registry.Load(typeKey[T]()); ok {
		return val.(T), true
	}
	var zero T
	return zero, false
}
