package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		AppointmentDate: appointment.AppointmentDate,
		Status:          string(appointment.Status),
		Notes:           appointment.Notes,
		CreatedAt:       appointment.CreatedAt,
	}
}

func AppointmentsToResponses(appointments []entity.Appointment) []*dto.AppointmentResponse {
	responses := make([]*dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, AppointmentToResponse(&appointments[i]))
	}
	return responses
}
