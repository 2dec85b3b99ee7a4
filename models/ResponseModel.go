package models

// ErrorResponse is the error envelope returned by every handler.
type ErrorResponse struct {
	Error string `json:"error" example:"name and equipmentType are required"`
}

// ProjectResponse wraps a single project payload.
type ProjectResponse struct {
	Success bool     `json:"success" example:"true"`
	Message string   `json:"message" example:"Project created successfully"`
	Data    *Project `json:"data"`
}

// ProjectSummaryResponse is the dashboard summary for one project.
type ProjectSummaryResponse struct {
	ProjectID   string       `json:"project_id"`
	Name        string       `json:"name"`
	Status      string       `json:"status" example:"In Progress"`
	Progress    int          `json:"progress" example:"33"`
	DateCreated string       `json:"dateCreated"`
	Counts      StatusCounts `json:"counts"`
}
