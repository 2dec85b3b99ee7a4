package handlers

import (
	"log"
	"net/http"
	"strings"

	"backend/models"
	"backend/services"
	"backend/storage"

	"github.com/gin-gonic/gin"
)

// ==================== PROJECT OPERATIONS ====================

// CreateProject creates a new inspection project
// @Summary Create project
// @Description Generate a checklist for the given equipment via the AI draft generator and create a project from it
// @Tags Projects
// @Accept json
// @Produce json
// @Param request body models.CreateProjectRequest true "Project creation request"
// @Success 201 {object} models.ProjectResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/project_create [post]
func CreateProject(store *storage.ProjectStore, generate services.ChecklistGenerator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Validation happens before the generator is ever invoked.
		if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.EquipmentType) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and equipmentType are required"})
			return
		}

		drafts, err := generate(c.Request.Context(), req.EquipmentType, req.Context)
		if err != nil {
			// Nothing was written to the store: creation is all-or-nothing.
			log.Printf("Checklist generation failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate checklist: " + err.Error()})
			return
		}

		project := store.CreateProject(req, drafts)
		c.JSON(http.StatusCreated, models.ProjectResponse{
			Success: true,
			Message: "Project created successfully",
			Data:    project,
		})
	}
}

// FetchAllProjects lists every project, newest first
// @Summary List projects
// @Tags Projects
// @Produce json
// @Success 200 {array} models.Project
// @Router /api/projects [get]
func FetchAllProjects(store *storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Projects())
	}
}

// FetchProject returns one project by id
// @Summary Fetch project
// @Tags Projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} models.Project
// @Failure 404 {object} models.ErrorResponse
// @Router /api/project_fetch/{id} [get]
func FetchProject(store *storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, ok := store.Project(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusOK, project)
	}
}

// GetProjectSummary returns the dashboard summary for one project
// @Summary Project summary
// @Description Per-status counts plus derived progress and status
// @Tags Projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} models.ProjectSummaryResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/project_summary/{id} [get]
func GetProjectSummary(store *storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, ok := store.Project(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusOK, models.ProjectSummaryResponse{
			ProjectID:   project.ID,
			Name:        project.Name,
			Status:      project.Status,
			Progress:    project.Progress,
			DateCreated: project.DateCreated,
			Counts:      models.CountItems(project),
		})
	}
}
