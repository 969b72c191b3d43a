package service

import (
	"github.com/adnanfr/Binturong/internal/dto"
	"github.com/adnanfr/Binturong/internal/model"
	"github.com/jinzhu/copier"
)

func toDatasetDTO(m *model.Dataset) dto.DatasetDTO {
	var d dto.DatasetDTO
	copier.Copy(&d, m)
	// ColumnsList is a JSON blob on the model; copier cannot convert it.
	d.ColumnsList = m.Columns()
	return d
}

// toScenarioDTO copies fields one by one on purpose: the DTO has no
// persona-instruction field, and keeping the mapping explicit is what
// guarantees the hidden Actor contract never reaches a response body.
func toScenarioDTO(s *model.Scenario) dto.ScenarioDTO {
	return dto.ScenarioDTO{
		ScenarioTitle:   s.ScenarioTitle,
		DifficultyLevel: s.DifficultyLevel,
		StakeholderName: s.StakeholderName,
		StakeholderRole: s.StakeholderRole,
		EmailBody:       s.EmailBody,
		KeyObjectives:   s.KeyObjectives,
	}
}

func toStudentDTO(m *model.Student) dto.StudentDTO {
	var d dto.StudentDTO
	copier.Copy(&d, m)
	return d
}

func toUserDTO(m *model.User) dto.UserDTO {
	var d dto.UserDTO
	copier.Copy(&d, m)
	return d
}

func toChatMessageDTOs(msgs []model.ChatMessage) []dto.ChatMessageDTO {
	out := make([]dto.ChatMessageDTO, 0, len(msgs))
	for i := range msgs {
		var d dto.ChatMessageDTO
		copier.Copy(&d, &msgs[i])
		out = append(out, d)
	}
	return out
}

func toSubmissionDTOs(subs []model.Submission) []dto.SubmissionDTO {
	out := make([]dto.SubmissionDTO, 0, len(subs))
	for i := range subs {
		var d dto.SubmissionDTO
		copier.Copy(&d, &subs[i])
		out = append(out, d)
	}
	return out
}

func toGradeDTO(m *model.Grade) dto.GradeDTO {
	var d dto.GradeDTO
	copier.Copy(&d, m)
	return d
}
