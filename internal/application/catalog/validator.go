package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/aescanero/bookshelf/pkg/domain"
)

// payloadJSON keeps numbers as json.Number so integers and floats stay
// distinguishable
var payloadJSON = jsoniter.Config{
	EscapeHTML:             true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// Validator validates book payloads
type Validator struct{}

// NewValidator creates a new payload validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreate parses a create body. title, author and year are required,
// year must be an integer and title/author must be strings.
func (v *Validator) ValidateCreate(body []byte) (domain.NewBook, error) {
	fields, err := v.decodeObject(body)
	if err != nil {
		return domain.NewBook{}, err
	}
	if fields == nil {
		return domain.NewBook{}, domain.NewValidationError(domain.MsgMissingFields)
	}

	for _, key := range []string{"title", "author", "year"} {
		if _, ok := fields[key]; !ok {
			return domain.NewBook{}, domain.NewValidationError(domain.MsgMissingFields)
		}
	}

	year, err := parseYear(fields["year"])
	if err != nil {
		return domain.NewBook{}, err
	}

	title, titleOK := fields["title"].(string)
	author, authorOK := fields["author"].(string)
	if !titleOK || !authorOK {
		return domain.NewBook{}, domain.NewValidationError(domain.MsgFieldsNotString)
	}

	return domain.NewBook{Title: title, Author: author, Year: year}, nil
}

// ValidateUpdate parses an update body. The body must be a non-empty object;
// unknown keys are ignored.
func (v *Validator) ValidateUpdate(body []byte) (domain.BookUpdate, error) {
	fields, err := v.decodeObject(body)
	if err != nil {
		return domain.BookUpdate{}, err
	}
	if len(fields) == 0 {
		return domain.BookUpdate{}, domain.NewValidationError(domain.MsgNoData)
	}

	var update domain.BookUpdate

	if raw, ok := fields["year"]; ok {
		year, err := parseYear(raw)
		if err != nil {
			return domain.BookUpdate{}, err
		}
		update.Year = &year
	}

	for key, dst := range map[string]**string{"title": &update.Title, "author": &update.Author} {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		s, ok := raw.(string)
		if !ok {
			return domain.BookUpdate{}, domain.NewValidationError(domain.MsgFieldsNotString)
		}
		*dst = &s
	}

	return update, nil
}

// decodeObject returns nil fields for an empty body, null or a JSON value
// that is not an object
func (v *Validator) decodeObject(body []byte) (map[string]interface{}, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, nil
	}

	var value interface{}
	if err := payloadJSON.Unmarshal(body, &value); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedBody, err)
	}

	fields, ok := value.(map[string]interface{})
	if !ok {
		return nil, nil
	}
	return fields, nil
}

// parseYear accepts only JSON integer literals that fit in an int
func parseYear(v interface{}) (int, error) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, domain.NewValidationError(domain.MsgYearNotInteger)
	}
	i, err := strconv.Atoi(n.String())
	if errors.Is(err, strconv.ErrRange) {
		return 0, domain.NewValidationError(domain.MsgYearOutOfRange)
	}
	if err != nil {
		return 0, domain.NewValidationError(domain.MsgYearNotInteger)
	}
	return i, nil
}
