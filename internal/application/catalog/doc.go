// Package catalog validates book payloads before they reach the store.
//
// The validator turns raw request bodies into typed values:
//   - create bodies become domain.NewBook
//   - update bodies become domain.BookUpdate
//
// Anything else yields a *domain.ValidationError with a client-facing
// message, or domain.ErrMalformedBody when the body is not JSON at all.
package catalog
