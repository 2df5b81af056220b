package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Moiseysus/Itabot/internal/domain/entities"
)

var defaultColumns = Columns{Term: "italian_word", Translation: "translation"}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewVocabularyRepositoryCSV(t *testing.T) {
	path := writeFile(t, "words.csv", "italian_word,translation\n"+
		"gatto,cat\n"+
		"casa,\"house, home\"\n"+
		"\n"+
		"mangiare,to eat – to dine\n")

	repo, err := NewVocabularyRepository(path, defaultColumns)
	require.NoError(t, err)

	words, err := repo.All(context.Background())
	require.NoError(t, err)
	require.Len(t, words, 3)
	assert.Equal(t, 3, repo.Len())

	assert.Equal(t, "gatto", words[0].Term)
	assert.Equal(t, []string{"cat"}, words[0].Translations)
	assert.Equal(t, []string{"house", "home"}, words[1].Translations)
	assert.Equal(t, []string{"to eat", "to dine"}, words[2].Translations)

	assert.Equal(t, "house, home", words[1].RawTranslation)
}

func TestNewVocabularyRepositoryColumnOrderAndAliases(t *testing.T) {
	path := writeFile(t, "words.csv", "\ufefftranslation,note,word\ncat,pet,gatto\n")

	repo, err := NewVocabularyRepository(path, defaultColumns)
	require.NoError(t, err)

	words, err := repo.All(context.Background())
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "gatto", words[0].Term)
	assert.Equal(t, []string{"cat"}, words[0].Translations)
}

func TestNewVocabularyRepositoryMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing translation", content: "italian_word,translation\ngatto,\n"},
		{name: "missing term", content: "italian_word,translation\n,cat\n"},
		{name: "short row", content: "italian_word,translation\ngatto\n"},
		{name: "separators only", content: "italian_word,translation\ngatto, – \n"},
		{name: "missing header column", content: "italian_word,meaning\ngatto,cat\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "words.csv", tt.content)

			_, err := NewVocabularyRepository(path, defaultColumns)
			assert.ErrorIs(t, err, ErrMalformedRecord)
		})
	}
}

func TestNewVocabularyRepositoryMissingFile(t *testing.T) {
	_, err := NewVocabularyRepository(filepath.Join(t.TempDir(), "none.csv"), defaultColumns)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMalformedRecord)
}

func TestNewVocabularyRepositoryXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "italian_word"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "translation"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "cane"))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", "Dog"))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	repo, err := NewVocabularyRepository(path, defaultColumns)
	require.NoError(t, err)

	words, err := repo.All(context.Background())
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "cane", words[0].Term)
	assert.Equal(t, []string{"dog"}, words[0].Translations)
}

func TestVocabularyRandom(t *testing.T) {
	empty := NewVocabularyFromWords(nil)
	_, err := empty.Random(context.Background())
	assert.ErrorIs(t, err, ErrVocabularyEmpty)

	words := []entities.WordEntry{
		{Term: "gatto", Translations: []string{"cat"}},
		{Term: "cane", Translations: []string{"dog"}},
	}
	repo := NewVocabularyFromWords(words)

	seen := map[string]bool{}
	for j := 0; j < 200; j++ {
		w, err := repo.Random(context.Background())
		require.NoError(t, err)
		seen[w.Term] = true
	}
	assert.True(t, seen["gatto"])
	assert.True(t, seen["cane"])
}
