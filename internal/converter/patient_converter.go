package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	response := &dto.PatientResponse{
		ID:               patient.ID,
		PatientID:        patient.PatientID,
		Name:             patient.Name,
		Email:            patient.Email,
		Phone:            patient.Phone,
		DateOfBirth:      patient.DateOfBirth.Format("2006-01-02"),
		Gender:           patient.Gender,
		Address:          patient.Address,
		EmergencyContact: patient.EmergencyContact,
		MedicalHistory:   patient.MedicalHistory,
		Status:           string(patient.Status),
		AssignedDoctorID: patient.AssignedDoctorID,
		CreatedAt:        patient.CreatedAt,
		UpdatedAt:        patient.UpdatedAt,
	}

	if patient.AssignedDoctor != nil {
		response.AssignedDoctor = patient.AssignedDoctor.Name
	}

	return response
}

func PatientsToResponses(patients []entity.Patient) []*dto.PatientResponse {
	responses := make([]*dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, PatientToResponse(&patients[i]))
	}
	return responses
}
