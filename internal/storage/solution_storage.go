package storage

import (
	"encoding/json"
	"fmt"

	"LawHub_LegalAssistant/internal/models"
)

// SaveSolution stores a finished wizard outcome for userID. Answers and the
// solution are kept as JSON so catalog edits never rewrite history.
func (s *Store) SaveSolution(userID int, scenarioID string, answers []string, solution models.Solution) (models.SavedSolution, error) {
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return models.SavedSolution{}, fmt.Errorf("SaveSolution(): encode answers: %w", err)
	}
	solutionJSON, err := json.Marshal(solution)
	if err != nil {
		return models.SavedSolution{}, fmt.Errorf("SaveSolution(): encode solution: %w", err)
	}

	stmt, err := s.db.Prepare("INSERT INTO saved_solutions(user_id, scenario_id, answers, solution, created_at) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return models.SavedSolution{}, err
	}
	defer stmt.Close()

	createdAt := s.now().UTC()
	res, err := stmt.Exec(userID, scenarioID, string(answersJSON), string(solutionJSON), createdAt.Format(timeLayout))
	if err != nil {
		return models.SavedSolution{}, fmt.Errorf("SaveSolution(): %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.SavedSolution{}, fmt.Errorf("SaveSolution(): %w", err)
	}
	return models.SavedSolution{
		ID:         int(id),
		UserID:     userID,
		ScenarioID: scenarioID,
		Answers:    answers,
		Solution:   solution,
		CreatedAt:  createdAt,
	}, nil
}

// ListSolutions returns a user's saved solutions, newest first.
func (s *Store) ListSolutions(userID int) ([]models.SavedSolution, error) {
	query := `
		SELECT id, scenario_id, answers, solution, created_at
		FROM saved_solutions
		WHERE user_id = ?
		ORDER BY id DESC
	`
	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("ListSolutions(): %w", err)
	}
	defer rows.Close()

	saved := []models.SavedSolution{}
	for rows.Next() {
		r := models.SavedSolution{UserID: userID}
		var answersJSON, solutionJSON, createdStr string
		if err := rows.Scan(&r.ID, &r.ScenarioID, &answersJSON, &solutionJSON, &createdStr); err != nil {
			return nil, fmt.Errorf("ListSolutions(): %w", err)
		}
		if err := json.Unmarshal([]byte(answersJSON), &r.Answers); err != nil {
			return nil, fmt.Errorf("ListSolutions(): decode answers of %d: %w", r.ID, err)
		}
		if err := json.Unmarshal([]byte(solutionJSON), &r.Solution); err != nil {
			return nil, fmt.Errorf("ListSolutions(): decode solution of %d: %w", r.ID, err)
		}
		r.CreatedAt = parseTime(createdStr)
		saved = append(saved, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListSolutions(): %w", err)
	}
	return saved, nil
}
