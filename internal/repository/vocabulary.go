package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"github.com/Moiseysus/Itabot/internal/domain/entities"
)

var (
	ErrMalformedRecord = errors.New("malformed vocabulary record")
	ErrVocabularyEmpty = errors.New("vocabulary is empty")
)

// termAliases are accepted in place of the configured term column header.
var termAliases = []string{"term", "word"}

// Columns names the header cells holding the term and its translation.
type Columns struct {
	Term        string
	Translation string
	Sheet       string // xlsx only, first sheet when empty
}

// VocabularyRepository is the read-only word list loaded at startup.
type VocabularyRepository struct {
	words []entities.WordEntry

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// NewVocabularyRepository loads a .csv or .xlsx vocabulary file.
func NewVocabularyRepository(path string, cols Columns) (*VocabularyRepository, error) {
	rows, err := readRows(path, cols.Sheet)
	if err != nil {
		return nil, err
	}

	words, err := parseRows(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary %s: %w", path, err)
	}

	return NewVocabularyFromWords(words), nil
}

// NewVocabularyFromWords wraps an already parsed word list.
func NewVocabularyFromWords(words []entities.WordEntry) *VocabularyRepository {
	return &VocabularyRepository{
		words: words,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// All returns the words in file order.
func (r *VocabularyRepository) All(_ context.Context) ([]entities.WordEntry, error) {
	return r.words, nil
}

// Random returns a uniformly chosen word.
func (r *VocabularyRepository) Random(_ context.Context) (entities.WordEntry, error) {
	if len(r.words) == 0 {
		return entities.WordEntry{}, ErrVocabularyEmpty
	}

	r.mu.Lock()
	idx := r.rng.Intn(len(r.words))
	r.mu.Unlock()

	return r.words[idx], nil
}

// Len returns the vocabulary size.
func (r *VocabularyRepository) Len() int {
	return len(r.words)
}

func readRows(path, sheet string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readXLSX(path, sheet)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open vocabulary: %w", err)
		}
		defer f.Close()
		return readCSV(f)
	}
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // short rows are reported as malformed records instead
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}

func readXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// parseRows treats the first row as a header and the rest as words.
func parseRows(rows [][]string, cols Columns) ([]entities.WordEntry, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	termIdx, trIdx, err := headerIndexes(rows[0], cols)
	if err != nil {
		return nil, err
	}

	words := make([]entities.WordEntry, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}

		line := i + 2 // 1-based and after the header
		if termIdx >= len(row) || trIdx >= len(row) {
			return nil, fmt.Errorf("row %d: %w: missing column", line, ErrMalformedRecord)
		}

		w, ok := entities.NewWordEntry(row[termIdx], row[trIdx])
		if !ok {
			return nil, fmt.Errorf("row %d: %w: empty term or translation", line, ErrMalformedRecord)
		}
		words = append(words, w)
	}

	return words, nil
}

func headerIndexes(header []string, cols Columns) (int, int, error) {
	termIdx, trIdx := -1, -1
	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(cell, "\ufeff")))
		switch {
		case name == strings.ToLower(cols.Term):
			termIdx = i
		case termIdx < 0 && lo.Contains(termAliases, name):
			termIdx = i
		case name == strings.ToLower(cols.Translation):
			trIdx = i
		}
	}

	if termIdx < 0 || trIdx < 0 {
		return 0, 0, fmt.Errorf("%w: header must contain %q and %q columns", ErrMalformedRecord, cols.Term, cols.Translation)
	}
	return termIdx, trIdx, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
