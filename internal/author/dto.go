package author

// DTO is the wire representation of an Author.
type DTO struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName" validate:"required"`
}

// ToDTO converts an Author entity to its wire representation.
func ToDTO(a Author) DTO {
	return DTO{
		ID:       a.ID,
		FullName: a.FullName,
	}
}

// ToDTOs converts a slice of authors, always yielding a non-nil slice
// so empty results serialize as [].
func ToDTOs(authors []Author) []DTO {
	out := make([]DTO, 0, len(authors))
	for _, a := range authors {
		out = append(out, ToDTO(a))
	}
	return out
}

// FromDTO converts a wire payload to an Author entity.
func FromDTO(d DTO) Author {
	return Author{
		ID:       d.ID,
		FullName: d.FullName,
	}
}
