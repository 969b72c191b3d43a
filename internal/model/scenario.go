package model

import (
	"encoding/json"
	"fmt"
)

// Difficulty tiers the Architect may assign.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// Scenario is the Architect stage's output, stored as a JSON document
// inside the Assignment row. PersonaSystemInstruction is the hidden
// contract that later drives the Actor stage; it must never be serialized
// into a student-facing response, which is why DTOs copy the other fields
// one by one instead of embedding the struct.
type Scenario struct {
	ScenarioTitle            string   `json:"scenario_title"`
	DifficultyLevel          string   `json:"difficulty_level"`
	StakeholderName          string   `json:"stakeholder_name"`
	StakeholderRole          string   `json:"stakeholder_role"`
	EmailBody                string   `json:"email_body"`
	KeyObjectives            []string `json:"key_objectives"`
	PersonaSystemInstruction string   `json:"persona_system_instruction"`
}

// Validate checks the document shape. It runs both on freshly generated
// scenarios and on blobs read back from the database, so stored content is
// never trusted blindly.
func (s *Scenario) Validate() error {
	switch {
	case s.ScenarioTitle == "":
		return fmt.Errorf("scenario missing scenario_title")
	case s.DifficultyLevel == "":
		return fmt.Errorf("scenario missing difficulty_level")
	case s.StakeholderName == "":
		return fmt.Errorf("scenario missing stakeholder_name")
	case s.StakeholderRole == "":
		return fmt.Errorf("scenario missing stakeholder_role")
	case s.EmailBody == "":
		return fmt.Errorf("scenario missing email_body")
	case len(s.KeyObjectives) == 0:
		return fmt.Errorf("scenario missing key_objectives")
	case s.PersonaSystemInstruction == "":
		return fmt.Errorf("scenario missing persona_system_instruction")
	}
	return nil
}

// DecodeScenario parses and shape-checks a stored scenario blob.
func DecodeScenario(raw []byte) (*Scenario, error) {
	var s Scenario
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode scenario blob: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
