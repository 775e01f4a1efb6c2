package dto

import (
	"time"

	"github.com/google/uuid"
)

// Response DTOs

type AdminLogResponse struct {
	ID        uuid.UUID `json:"id"`
	AdminID   uuid.UUID `json:"admin_id"`
	AdminName string    `json:"admin_name,omitempty"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type AdminLogListResponse struct {
	Logs  []AdminLogResponse `json:"logs"`
	Total int                `json:"total"`
}
