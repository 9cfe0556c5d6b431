package domain

import "time"

type MaintenanceStatus string

const (
	MaintenanceStatusOpen       MaintenanceStatus = "OPEN"
	MaintenanceStatusInProgress MaintenanceStatus = "IN_PROGRESS"
	MaintenanceStatusResolved   MaintenanceStatus = "RESOLVED"
	// Closed is reserved for a future archive flow.
	MaintenanceStatusClosed MaintenanceStatus = "CLOSED"
)

type MaintenanceReport struct {
	ID          int32             `json:"id"`
	ToolID      int32             `json:"tool_id"`
	ReporterID  int32             `json:"reported_by_id"`
	AssigneeID  *int32            `json:"assigned_to_id,omitempty"`
	Description string            `json:"description"`
	Status      MaintenanceStatus `json:"status"`
	ResolvedOn  *time.Time        `json:"resolved_on,omitempty"`
	CreatedOn   time.Time         `json:"created_on"`
	UpdatedOn   time.Time         `json:"updated_on"`
}
