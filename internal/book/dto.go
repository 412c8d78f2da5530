package book

// DTO is the wire representation of a Book. Language is accepted
// case-insensitively on input and always serialized upper-case.
type DTO struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title" validate:"required"`
	ISBN      int64   `json:"isbn"`
	Publisher string  `json:"publisher"`
	Year      int     `json:"year"`
	Language  string  `json:"language"`
	AuthorIDs []int64 `json:"authorIds"`
}

// ToDTO converts a Book entity to its wire representation.
func ToDTO(b Book) DTO {
	ids := make([]int64, 0, len(b.AuthorIDs))
	ids = append(ids, b.AuthorIDs...)
	return DTO{
		ID:        b.ID,
		Title:     b.Title,
		ISBN:      b.ISBN,
		Publisher: b.Publisher,
		Year:      b.Year,
		Language:  string(b.Language),
		AuthorIDs: ids,
	}
}

// ToDTOs converts a slice of books, always yielding a non-nil slice so
// empty results serialize as [].
func ToDTOs(books []Book) []DTO {
	out := make([]DTO, 0, len(books))
	for _, b := range books {
		out = append(out, ToDTO(b))
	}
	return out
}

// FromDTO converts a wire payload to a Book entity. It fails when the
// language is not one of the recognized values.
func FromDTO(d DTO) (Book, error) {
	lang, err := ParseLanguage(d.Language)
	if err != nil {
		return Book{}, err
	}
	return Book{
		ID:        d.ID,
		Title:     d.Title,
		ISBN:      d.ISBN,
		Publisher: d.Publisher,
		Year:      d.Year,
		Language:  lang,
		AuthorIDs: d.AuthorIDs,
	}, nil
}
