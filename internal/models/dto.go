package models

type AnalyzeRequest struct {
	Text   string `json:"text"`
	NoteID string `json:"note_id"`
}

type AnalyzeResponse struct {
	ID             string          `json:"id"`
	Strengths      []string        `json:"strengths"`
	PotentialJobs  []PotentialJob  `json:"potential_jobs"`
	Scores         []ScoreEntry    `json:"quantitative_scores"`
	ProcessingTime float64         `json:"processing_time"`
	Statistics     *StatisticsData `json:"statistics,omitempty"`
}

// ScoreEntry keeps dimension order stable in responses, which a JSON object
// would not.
type ScoreEntry struct {
	Dimension string `json:"dimension"`
	Score     int    `json:"score"`
}

type NoteUploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	PageCount    int    `json:"page_count"`
	TextLength   int    `json:"text_length"`
}

type StatisticsData struct {
	Mean   float64 `json:"mean"`
	Max    float64 `json:"max"`
	Min    float64 `json:"min"`
	StdDev float64 `json:"std_dev"`
	Median float64 `json:"median"`
	Sum    float64 `json:"sum"`
	Range  float64 `json:"range"`
}

type StatisticsResponse struct {
	ID         string         `json:"id"`
	Statistics StatisticsData `json:"statistics"`
	Top        []ScoreEntry   `json:"top_strengths"`
	Bottom     []ScoreEntry   `json:"development_areas"`
}

type SimilarAnalysis struct {
	ID         string  `json:"id"`
	Score      float32 `json:"score"`
	InputText  string  `json:"input_text"`
	AnalyzedAt string  `json:"analyzed_at"`
}

type SimilarResponse struct {
	ID      string            `json:"id"`
	Similar []SimilarAnalysis `json:"similar"`
}
