package handler

import (
	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/core/domain"
	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/core/ports"
)

// --- Domain → Response ---

func toAppointmentResponse(a *domain.Appointment) appointmentResponse {
	history := make([]statusHistoryItemResponse, 0, len(a.StatusHistory))
	for _, h := range a.StatusHistory {
		history = append(history, statusHistoryItemResponse{
			Status:    string(h.Status),
			Timestamp: h.Timestamp,
			ActorID:   h.ActorID,
			Notes:     h.Notes,
		})
	}

	return appointmentResponse{
		ID:              a.ID,
		OfficeID:        a.OfficeID,
		HostID:          a.HostID,
		CitizenID:       a.CitizenID,
		Purpose:         a.Purpose,
		AppointmentDate: a.AppointmentDate,
		TimeSlot:        a.TimeSlot,
		Status:          string(a.Status),
		IsActive:        a.IsActive,

		DecidedAt:      a.DecidedAt,
		DecidedBy:      a.DecidedBy,
		DecisionReason: a.DecisionReason,
		IssuedBy:       a.IssuedBy,

		CanceledAt:     a.CanceledAt,
		CanceledBy:     a.CanceledBy,
		CanceledReason: a.CanceledReason,

		NewAppointmentDate: a.NewAppointmentDate,

		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,

		StatusHistory: history,
	}
}

func toCitizenResponse(c *domain.Citizen) citizenResponse {
	return citizenResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}

func toDetailResponse(d *ports.AppointmentDetail) appointmentDetailResponse {
	return appointmentDetailResponse{
		appointmentResponse: toAppointmentResponse(&d.Appointment),
		Host: hostResponse{
			ID:       d.Host.ID,
			Username: d.Host.Username,
			Email:    d.Host.Email,
		},
		Citizen: citizenResponse{
			ID:        d.Citizen.ID,
			FirstName: d.Citizen.FirstName,
			LastName:  d.Citizen.LastName,
			Email:     d.Citizen.Email,
			Phone:     d.Citizen.Phone,
		},
	}
}

// --- Request → Service input ---

func toCreateInput(req createAppointmentRequest, caller ports.Caller) ports.CreateAppointmentInput {
	return ports.CreateAppointmentInput{
		Caller: caller,
		Citizen: ports.CitizenInput{
			FirstName: req.Citizen.FirstName,
			LastName:  req.Citizen.LastName,
			Email:     req.Citizen.Email,
			Phone:     req.Citizen.Phone,
		},
		OfficeID:        req.OfficeID,
		HostID:          req.HostID,
		Purpose:         req.Purpose,
		AppointmentDate: req.AppointmentDate,
		TimeSlot:        req.TimeSlot,
	}
}
