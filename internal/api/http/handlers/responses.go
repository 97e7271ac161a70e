package handlers

import (
	"github.com/spec-kit/appointment-service/internal/api/dto"
	"github.com/spec-kit/appointment-service/internal/domain"
)

func fileResponse(file *domain.File, baseURL string) *dto.FileResponse {
	if file == nil {
		return nil
	}
	return &dto.FileResponse{
		ID:   file.ID,
		Path: file.Path,
		URL:  file.URL(baseURL),
	}
}

func userResponse(user *domain.User, baseURL string) dto.UserResponse {
	return dto.UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Provider: user.Provider,
		Avatar:   fileResponse(user.Avatar, baseURL),
	}
}

func appointmentResponse(appt *domain.Appointment, baseURL string) dto.AppointmentResponse {
	resp := dto.AppointmentResponse{
		ID:         appt.ID,
		Date:       appt.Date,
		CanceledAt: appt.CanceledAt,
	}
	if appt.Provider != nil {
		resp.Provider = &dto.ProviderSummary{
			ID:     appt.Provider.ID,
			Name:   appt.Provider.Name,
			Avatar: fileResponse(appt.Provider.Avatar, baseURL),
		}
	}
	return resp
}
