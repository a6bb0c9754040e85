// Package storage provides book storage implementations.
//
// Implementations:
//   - memory: mutex-guarded in-process store with auto-incrementing ids
package storage
