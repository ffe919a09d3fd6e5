package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PotentialJob is one career suggestion with its justification.
type PotentialJob struct {
	JobTitle string `json:"job_title"`
	Reason   string `json:"reason"`
}

// AnalysisResult is the validated outcome of one analysis call. It is only
// constructed after the response parser has enforced the schema (5 strengths,
// 3 jobs, 6 dimension scores in 1-10) and is read-only afterwards.
type AnalysisResult struct {
	Strengths          []string       `json:"strengths"`
	PotentialJobs      []PotentialJob `json:"potential_jobs"`
	QuantitativeScores map[string]int `json:"quantitative_scores"`
	RawResponse        string         `json:"raw_response"`
	ProcessingTime     float64        `json:"processing_time"`
}

type Analysis struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	NoteID         *uuid.UUID `gorm:"type:uuid" json:"note_id,omitempty"`
	InputText      string     `gorm:"type:text;not null" json:"input_text"`
	InputLength    int        `gorm:"not null" json:"input_length"`
	Strengths      string     `gorm:"type:jsonb;not null" json:"-"`
	PotentialJobs  string     `gorm:"type:jsonb;not null" json:"-"`
	Scores         string     `gorm:"type:jsonb;not null" json:"-"`
	RawResponse    string     `gorm:"type:text" json:"-"`
	ProcessingTime float64    `gorm:"not null" json:"processing_time"`
	Indexed        bool       `gorm:"not null;default:false" json:"-"`
	CreatedAt      time.Time  `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (Analysis) TableName() string {
	return "analyses"
}

// NewAnalysis builds the persistable record from a validated result.
func NewAnalysis(inputText string, noteID *uuid.UUID, result *AnalysisResult) (*Analysis, error) {
	strengths, err := json.Marshal(result.Strengths)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal strengths: %w", err)
	}

	jobs, err := json.Marshal(result.PotentialJobs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal potential jobs: %w", err)
	}

	scores, err := json.Marshal(result.QuantitativeScores)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scores: %w", err)
	}

	return &Analysis{
		ID:             uuid.New(),
		NoteID:         noteID,
		InputText:      inputText,
		InputLength:    len([]rune(inputText)),
		Strengths:      string(strengths),
		PotentialJobs:  string(jobs),
		Scores:         string(scores),
		RawResponse:    result.RawResponse,
		ProcessingTime: result.ProcessingTime,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}, nil
}

// Result reconstructs the validated result object from the stored record.
func (a *Analysis) Result() (*AnalysisResult, error) {
	var strengths []string
	if err := json.Unmarshal([]byte(a.Strengths), &strengths); err != nil {
		return nil, fmt.Errorf("failed to unmarshal strengths: %w", err)
	}

	var jobs []PotentialJob
	if err := json.Unmarshal([]byte(a.PotentialJobs), &jobs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal potential jobs: %w", err)
	}

	var scores map[string]int
	if err := json.Unmarshal([]byte(a.Scores), &scores); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scores: %w", err)
	}

	return &AnalysisResult{
		Strengths:          strengths,
		PotentialJobs:      jobs,
		QuantitativeScores: scores,
		RawResponse:        a.RawResponse,
		ProcessingTime:     a.ProcessingTime,
	}, nil
}
