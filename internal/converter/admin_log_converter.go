package converter

import (
	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/entity"
)

// AdminLogToResponse converts an AdminLog entity to AdminLogResponse DTO
func AdminLogToResponse(log *entity.AdminLog) *dto.AdminLogResponse {
	if log == nil {
		return nil
	}

	return &dto.AdminLogResponse{
		ID:        log.ID,
		AdminID:   log.AdminID,
		AdminName: log.Admin.User.Name,
		Action:    log.Action,
		Details:   log.Details,
		Timestamp: log.Timestamp,
	}
}

// AdminLogsToResponses converts a slice of AdminLog entities to DTOs
func AdminLogsToResponses(logs []entity.AdminLog) []dto.AdminLogResponse {
	responses := make([]dto.AdminLogResponse, len(logs))
	for i, log := range logs {
		responses[i] = *AdminLogToResponse(&log)
	}
	return responses
}
