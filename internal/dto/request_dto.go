package dto

import "encoding/json"

type StudentLoginDTO struct {
	NIM string `json:"nim" binding:"required"`
}

type LecturerLoginDTO struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LecturerRegisterDTO struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RosterStudentDTO struct {
	NIM  string `json:"nim" binding:"required"`
	Name string `json:"name" binding:"required"`
}

type RosterUploadDTO struct {
	Students []RosterStudentDTO `json:"students" binding:"required,dive"`
}

type DatasetCreateDTO struct {
	Name             string   `json:"name" binding:"required"`
	URL              string   `json:"url" binding:"required"`
	MetadataSummary  string   `json:"metadata_summary"`
	ColumnsList      []string `json:"columns_list"`
	SampleData       string   `json:"sample_data"`
	DataQualityNotes string   `json:"data_quality_notes"`
}

type RegenerateAssignmentDTO struct {
	StudentNIM string `json:"student_nim" binding:"required"`
}

type ChatMessageCreateDTO struct {
	Content string `json:"content" binding:"required"`
}

type SubmissionCreateDTO struct {
	AssignmentID   string `json:"assignment_id" binding:"required"`
	LinkURL        string `json:"link_url" binding:"required"`
	SubmissionType string `json:"submission_type" binding:"required,oneof=progress final"`
}

// GradeUpsertDTO binds score as json.Number so fractional scores fail
// validation instead of being truncated to an int.
type GradeUpsertDTO struct {
	AssignmentID string      `json:"assignment_id" binding:"required"`
	Score        json.Number `json:"score" binding:"required"`
	Feedback     *string     `json:"feedback"`
}
