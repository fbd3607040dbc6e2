package models

import "time"

// Solution is the static remediation record shown at the end of a wizard session.
type Solution struct {
	Title    string   `json:"title" yaml:"title"`
	Steps    []string `json:"steps" yaml:"steps"`
	Urgency  Urgency  `json:"urgency" yaml:"urgency"`
	Contacts []string `json:"contacts" yaml:"contacts"`
}

// SavedSolution is a wizard outcome a logged-in user chose to keep.
type SavedSolution struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	ScenarioID string    `json:"scenario_id"`
	Answers    []string  `json:"answers"`
	Solution   Solution  `json:"solution"`
	CreatedAt  time.Time `json:"created_at"`
}

// TrainingExample is a curated question/answer pair submitted for the assistant.
type TrainingExample struct {
	ID        int       `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Country   string    `json:"country"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// TrainingStats summarises stored training examples.
type TrainingStats struct {
	TotalExamples   int      `json:"total_examples"`
	CountrySpecific int      `json:"country_specific"`
	Categories      []string `json:"categories"`
	Countries       []string `json:"countries"`
}
