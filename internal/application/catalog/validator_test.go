package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aescanero/bookshelf/pkg/domain"
)

func TestValidator_ValidateCreate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    domain.NewBook
		wantMsg string
	}{
		{
			name: "valid_payload",
			body: `{"title":"Dune","author":"Herbert","year":1965}`,
			want: domain.NewBook{Title: "Dune", Author: "Herbert", Year: 1965},
		},
		{
			name: "unknown_keys_are_ignored",
			body: `{"title":"Dune","author":"Herbert","year":1965,"isbn":"x"}`,
			want: domain.NewBook{Title: "Dune", Author: "Herbert", Year: 1965},
		},
		{
			name: "negative_year_is_an_integer",
			body: `{"title":"Iliad","author":"Homer","year":-750}`,
			want: domain.NewBook{Title: "Iliad", Author: "Homer", Year: -750},
		},
		{name: "only_title", body: `{"title":"X"}`, wantMsg: domain.MsgMissingFields},
		{name: "empty_object", body: `{}`, wantMsg: domain.MsgMissingFields},
		{name: "empty_body", body: ``, wantMsg: domain.MsgMissingFields},
		{name: "null_body", body: `null`, wantMsg: domain.MsgMissingFields},
		{name: "array_body", body: `["title","author","year"]`, wantMsg: domain.MsgMissingFields},
		{name: "year_as_string", body: `{"title":"T","author":"A","year":"not-a-number"}`, wantMsg: domain.MsgYearNotInteger},
		{name: "year_as_numeric_string", body: `{"title":"T","author":"A","year":"1965"}`, wantMsg: domain.MsgYearNotInteger},
		{name: "year_as_float", body: `{"title":"T","author":"A","year":1965.0}`, wantMsg: domain.MsgYearNotInteger},
		{name: "year_as_exponent", body: `{"title":"T","author":"A","year":1e3}`, wantMsg: domain.MsgYearNotInteger},
		{name: "year_as_bool", body: `{"title":"T","author":"A","year":true}`, wantMsg: domain.MsgYearNotInteger},
		{name: "year_null", body: `{"title":"T","author":"A","year":null}`, wantMsg: domain.MsgYearNotInteger},
		{name: "year_overflows_int", body: `{"title":"T","author":"A","year":100000000000000000000}`, wantMsg: domain.MsgYearOutOfRange},
		{name: "year_underflows_int", body: `{"title":"T","author":"A","year":-100000000000000000000}`, wantMsg: domain.MsgYearOutOfRange},
		{name: "title_not_string", body: `{"title":42,"author":"A","year":2000}`, wantMsg: domain.MsgFieldsNotString},
		{name: "author_null", body: `{"title":"T","author":null,"year":2000}`, wantMsg: domain.MsgFieldsNotString},
	}

	v := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.ValidateCreate([]byte(tt.body))
			if tt.wantMsg != "" {
				var ve *domain.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.wantMsg, ve.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidator_ValidateCreate_MalformedJSON(t *testing.T) {
	v := NewValidator()

	for _, body := range []string{`{"title":`, `not json`, `{"title":"a"} trailing`} {
		_, err := v.ValidateCreate([]byte(body))
		assert.ErrorIs(t, err, domain.ErrMalformedBody, body)
		var ve *domain.ValidationError
		assert.False(t, errors.As(err, &ve), body)
	}
}

func TestValidator_ValidateUpdate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantTitle  *string
		wantAuthor *string
		wantYear   *int
		wantMsg    string
	}{
		{
			name:     "year_only",
			body:     `{"year":2024}`,
			wantYear: intPtr(2024),
		},
		{
			name:      "title_and_year",
			body:      `{"title":"Updated Title","year":2024}`,
			wantTitle: strPtr("Updated Title"),
			wantYear:  intPtr(2024),
		},
		{
			name:       "author_only",
			body:       `{"author":"Someone"}`,
			wantAuthor: strPtr("Someone"),
		},
		{
			name: "unknown_keys_only_is_a_noop",
			body: `{"isbn":"123"}`,
		},
		{name: "empty_object", body: `{}`, wantMsg: domain.MsgNoData},
		{name: "empty_body", body: ``, wantMsg: domain.MsgNoData},
		{name: "whitespace_body", body: "  \n", wantMsg: domain.MsgNoData},
		{name: "null_body", body: `null`, wantMsg: domain.MsgNoData},
		{name: "year_float", body: `{"year":20.5}`, wantMsg: domain.MsgYearNotInteger},
		{name: "year_overflows_int", body: `{"year":100000000000000000000}`, wantMsg: domain.MsgYearOutOfRange},
		{name: "title_number", body: `{"title":7}`, wantMsg: domain.MsgFieldsNotString},
	}

	v := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.ValidateUpdate([]byte(tt.body))
			if tt.wantMsg != "" {
				var ve *domain.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.wantMsg, ve.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, got.Title)
			assert.Equal(t, tt.wantAuthor, got.Author)
			assert.Equal(t, tt.wantYear, got.Year)
		})
	}
}

func TestValidator_ValidateUpdate_MalformedJSON(t *testing.T) {
	_, err := NewValidator().ValidateUpdate([]byte(`{"year":`))
	assert.ErrorIs(t, err, domain.ErrMalformedBody)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
