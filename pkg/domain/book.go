package domain

// Book is a single library record. ID is assigned by the store and never
// changes afterwards.
type Book struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
}

// NewBook holds the validated fields of a create request
type NewBook struct {
	Title  string
	Author string
	Year   int
}

// BookUpdate is a partial update. Nil fields are left untouched.
type BookUpdate struct {
	Title  *string
	Author *string
	Year   *int
}

// IsEmpty reports whether the update would change nothing
func (u BookUpdate) IsEmpty() bool {
	return u.Title == nil && u.Author == nil && u.Year == nil
}

// Apply merges the supplied fields into b
func (u BookUpdate) Apply(b *Book) {
	if u.Title != nil {
		b.Title = *u.Title
	}
	if u.Author != nil {
		b.Author = *u.Author
	}
	if u.Year != nil {
		b.Year = *u.Year
	}
}
