package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDTO_NormalizesLanguage(t *testing.T) {
	b, err := FromDTO(DTO{Title: "Emma", ISBN: 1234567890123, Year: 1815, Language: "english"})
	require.NoError(t, err)
	assert.Equal(t, LanguageEnglish, b.Language)

	b, err = FromDTO(DTO{Title: "Germinal", ISBN: 1234567890123, Year: 1885})
	require.NoError(t, err)
	assert.Equal(t, LanguageFrench, b.Language)

	_, err = FromDTO(DTO{Title: "Faust", Language: "german"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestToDTO_UpperCaseLanguageAndAuthorIDs(t *testing.T) {
	d := ToDTO(Book{
		ID:        3,
		Title:     "Emma",
		ISBN:      1234567890123,
		Publisher: "Penguin",
		Year:      1815,
		Language:  LanguageEnglish,
		AuthorIDs: []int64{1, 2},
	})

	assert.Equal(t, "ENGLISH", d.Language)
	assert.Equal(t, []int64{1, 2}, d.AuthorIDs)

	// Books without associations still serialize authorIds as [].
	assert.NotNil(t, ToDTO(Book{}).AuthorIDs)
}

func TestToDTOs_EmptyInputSerializesAsEmptyList(t *testing.T) {
	assert.NotNil(t, ToDTOs(nil))
	assert.Empty(t, ToDTOs(nil))
}
