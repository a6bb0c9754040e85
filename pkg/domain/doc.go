// Package domain defines the book entity, its create and update shapes, and
// the error values shared by the store, validation and HTTP layers.
package domain
