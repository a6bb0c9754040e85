package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestBookUpdate_Apply(t *testing.T) {
	tests := []struct {
		name   string
		update BookUpdate
		want   Book
	}{
		{
			name:   "empty_update_changes_nothing",
			update: BookUpdate{},
			want:   Book{ID: 1, Title: "Dune", Author: "Herbert", Year: 1965},
		},
		{
			name:   "year_only",
			update: BookUpdate{Year: intPtr(2024)},
			want:   Book{ID: 1, Title: "Dune", Author: "Herbert", Year: 2024},
		},
		{
			name:   "title_and_author",
			update: BookUpdate{Title: strPtr("Dune Messiah"), Author: strPtr("F. Herbert")},
			want:   Book{ID: 1, Title: "Dune Messiah", Author: "F. Herbert", Year: 1965},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Book{ID: 1, Title: "Dune", Author: "Herbert", Year: 1965}
			tt.update.Apply(&b)
			assert.Equal(t, tt.want, b)
		})
	}
}

func TestBookUpdate_IsEmpty(t *testing.T) {
	assert.True(t, BookUpdate{}.IsEmpty())
	assert.False(t, BookUpdate{Year: intPtr(1)}.IsEmpty())
}

func TestValidationError_Unwrapping(t *testing.T) {
	wrapped := fmt.Errorf("create book: %w", NewValidationError(MsgMissingFields))

	var ve *ValidationError
	assert.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, MsgMissingFields, ve.Message)
	assert.False(t, errors.As(ErrBookNotFound, &ve))
	assert.Equal(t, "create book: "+MsgMissingFields, wrapped.Error())
}
