package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

func SOAPNoteToResponse(note *entity.SOAPNote) *dto.SOAPNoteResponse {
	if note == nil {
		return nil
	}

	return &dto.SOAPNoteResponse{
		ID:               note.ID,
		PatientID:        note.PatientID,
		DoctorID:         note.DoctorID,
		Subjective:       note.Subjective,
		Objective:        note.Objective,
		Assessment:       note.Assessment,
		Plan:             note.Plan,
		ConsultationDate: note.ConsultationDate,
	}
}

func SOAPNotesToResponses(notes []entity.SOAPNote) []*dto.SOAPNoteResponse {
	responses := make([]*dto.SOAPNoteResponse, 0, len(notes))
	for i := range notes {
		responses = append(responses, SOAPNoteToResponse(&notes[i]))
	}
	return responses
}
