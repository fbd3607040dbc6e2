package storage

import (
	"errors"
	"fmt"
	"strings"

	"LawHub_LegalAssistant/internal/models"
)

// GeneralCategory is used for both country and category when none is given.
const GeneralCategory = "General"

var ErrIncompleteExample = errors.New("question and answer are required")

func (s *Store) AddTrainingExample(ex models.TrainingExample) (models.TrainingExample, error) {
	ex.Question = strings.TrimSpace(ex.Question)
	ex.Answer = strings.TrimSpace(ex.Answer)
	if ex.Question == "" || ex.Answer == "" {
		return models.TrainingExample{}, ErrIncompleteExample
	}
	ex.Country = orGeneral(ex.Country)
	ex.Category = orGeneral(ex.Category)
	ex.CreatedAt = s.now().UTC()

	res, err := s.db.Exec(
		"INSERT INTO training_examples(question, answer, country, category, created_at) VALUES(?, ?, ?, ?, ?)",
		ex.Question, ex.Answer, ex.Country, ex.Category, ex.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return models.TrainingExample{}, fmt.Errorf("AddTrainingExample(): %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.TrainingExample{}, fmt.Errorf("AddTrainingExample(): %w", err)
	}
	ex.ID = int(id)
	return ex, nil
}

func orGeneral(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return GeneralCategory
	}
	return v
}

// TrainingStats counts stored examples. An example is country-specific when
// its country is not General.
func (s *Store) TrainingStats() (models.TrainingStats, error) {
	stats := models.TrainingStats{Categories: []string{}, Countries: []string{}}

	row := s.db.QueryRow(
		"SELECT COUNT(*), COUNT(CASE WHEN country <> ? THEN 1 END) FROM training_examples",
		GeneralCategory,
	)
	if err := row.Scan(&stats.TotalExamples, &stats.CountrySpecific); err != nil {
		return models.TrainingStats{}, fmt.Errorf("TrainingStats(): %w", err)
	}

	var err error
	if stats.Categories, err = s.distinct("category"); err != nil {
		return models.TrainingStats{}, err
	}
	if stats.Countries, err = s.distinct("country"); err != nil {
		return models.TrainingStats{}, err
	}
	return stats, nil
}

// distinct lists the sorted distinct values of a training_examples column.
// column is always a constant from this file.
func (s *Store) distinct(column string) ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT " + column + " FROM training_examples ORDER BY " + column)
	if err != nil {
		return nil, fmt.Errorf("TrainingStats(): %w", err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("TrainingStats(): %w", err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
