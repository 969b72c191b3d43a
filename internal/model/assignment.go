package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Assignment is created lazily on a student's first access. The unique
// index on StudentNIM is what resolves two racing first-time provisioning
// calls: the second insert fails and the service re-reads the winner.
type Assignment struct {
	ID           string         `json:"id" gorm:"primaryKey;type:uuid"`
	StudentNIM   string         `json:"student_nim" gorm:"not null;uniqueIndex;size:50"`
	DatasetID    string         `json:"dataset_id" gorm:"not null;type:uuid"`
	Dataset      Dataset        `json:"dataset,omitempty" gorm:"foreignKey:DatasetID"`
	ScenarioJSON datatypes.JSON `json:"-" gorm:"type:jsonb;not null"`
	ChatMessages []ChatMessage  `json:"-" gorm:"foreignKey:AssignmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Submissions  []Submission   `json:"-" gorm:"foreignKey:AssignmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Grade        *Grade         `json:"-" gorm:"foreignKey:AssignmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt    time.Time      `json:"created_at"`
}

func (a *Assignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// Scenario decodes and shape-checks the stored scenario blob.
func (a *Assignment) Scenario() (*Scenario, error) {
	return DecodeScenario(a.ScenarioJSON)
}

// SetScenario serializes a scenario into the blob column.
func (a *Assignment) SetScenario(s *Scenario) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	a.ScenarioJSON = datatypes.JSON(raw)
	return nil
}
