package dto

import "time"

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type StudentDTO struct {
	NIM       string    `json:"nim"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type UserDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type StudentLoginResponse struct {
	Success bool       `json:"success"`
	Student StudentDTO `json:"student"`
	Token   string     `json:"token"`
}

type LecturerLoginResponse struct {
	Success bool    `json:"success"`
	User    UserDTO `json:"user"`
	Token   string  `json:"token"`
}

type LecturerRegisterResponse struct {
	Success bool    `json:"success"`
	User    UserDTO `json:"user"`
}

type RosterUploadResponse struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Message string `json:"message"`
}

type DatasetDTO struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	URL              string    `json:"url"`
	MetadataSummary  string    `json:"metadata_summary,omitempty"`
	ColumnsList      []string  `json:"columns_list,omitempty"`
	SampleData       string    `json:"sample_data,omitempty"`
	DataQualityNotes string    `json:"data_quality_notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type DatasetListResponse struct {
	Success  bool         `json:"success"`
	Datasets []DatasetDTO `json:"datasets"`
}

type DatasetCreateResponse struct {
	Success bool       `json:"success"`
	Dataset DatasetDTO `json:"dataset"`
}

// ScenarioDTO is the student-facing view of a generated scenario. It has
// no persona-instruction field at all, so the hidden Actor contract cannot
// leak through serialization.
type ScenarioDTO struct {
	ScenarioTitle   string   `json:"scenario_title"`
	DifficultyLevel string   `json:"difficulty_level"`
	StakeholderName string   `json:"stakeholder_name"`
	StakeholderRole string   `json:"stakeholder_role"`
	EmailBody       string   `json:"email_body"`
	KeyObjectives   []string `json:"key_objectives"`
}

type AssignmentDTO struct {
	ID         string      `json:"id"`
	StudentNIM string      `json:"student_nim"`
	Dataset    DatasetDTO  `json:"dataset"`
	Scenario   ScenarioDTO `json:"scenario"`
	CreatedAt  time.Time   `json:"created_at"`
}

type AssignmentResponse struct {
	Success    bool          `json:"success"`
	Assignment AssignmentDTO `json:"assignment"`
}

type ChatMessageDTO struct {
	ID           string    `json:"id"`
	AssignmentID string    `json:"assignment_id"`
	Sender       string    `json:"sender"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
}

type ChatHistoryResponse struct {
	Success  bool             `json:"success"`
	Messages []ChatMessageDTO `json:"messages"`
}

type ChatReplyResponse struct {
	Success   bool      `json:"success"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

type SubmissionDTO struct {
	ID             string    `json:"id"`
	AssignmentID   string    `json:"assignment_id"`
	LinkURL        string    `json:"link_url"`
	SubmissionType string    `json:"submission_type"`
	CreatedAt      time.Time `json:"created_at"`
}

type SubmissionListResponse struct {
	Success     bool            `json:"success"`
	Submissions []SubmissionDTO `json:"submissions"`
}

type SubmissionCreateResponse struct {
	Success    bool          `json:"success"`
	Submission SubmissionDTO `json:"submission"`
}

type GradeDTO struct {
	AssignmentID string    `json:"assignment_id"`
	Score        int       `json:"score"`
	Feedback     *string   `json:"feedback,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type GradeUpsertResponse struct {
	Success bool     `json:"success"`
	Grade   GradeDTO `json:"grade"`
}

// GradingAssignmentDTO is the lecturer's view of an assignment inside the
// grading roster; the scenario inside is the student-facing one.
type GradingAssignmentDTO struct {
	ID        string      `json:"id"`
	Dataset   DatasetDTO  `json:"dataset"`
	Scenario  ScenarioDTO `json:"scenario"`
	CreatedAt time.Time   `json:"created_at"`
}

type GradingEntryDTO struct {
	Student     StudentDTO            `json:"student"`
	Assignment  *GradingAssignmentDTO `json:"assignment"`
	Submissions []SubmissionDTO       `json:"submissions"`
	Grade       *GradeDTO             `json:"grade"`
}

type GradingListResponse struct {
	Success  bool              `json:"success"`
	Students []GradingEntryDTO `json:"students"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
	Total    int64             `json:"total"`
}

type GradingSearchResponse struct {
	Success  bool              `json:"success"`
	Students []GradingEntryDTO `json:"students"`
}
