package handlers

import (
	"net/http"

	"backend/models"
	"backend/storage"

	"github.com/gin-gonic/gin"
)

// ==================== CHECKLIST MUTATION OPERATIONS ====================
//
// Addressing misses (stale project/section/item ids coming from the UI,
// e.g. a double-clicked delete) are no-ops inside the store. A missing
// project surfaces as 404; a missing section/item inside an existing
// project answers 200 with found=false so the client can just refetch.

func respondMutation(c *gin.Context, store *storage.ProjectStore, projectID string, found bool) {
	project, ok := store.Project(projectID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": found, "project": project})
}

// UpdateItemStatus sets the inspection outcome of one item
// @Summary Update item status
// @Description Set an item to PENDING, PASS, FAIL or NA and recompute project progress/status
// @Tags Checklist
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param section_id path string true "Section ID"
// @Param item_id path string true "Item ID"
// @Param request body models.UpdateItemStatusRequest true "New status"
// @Success 200 {object} object
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/item_status/{project_id}/{section_id}/{item_id} [put]
func UpdateItemStatus(store *storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.UpdateItemStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !models.ValidInspectionStatus(req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status must be one of PENDING, PASS, FAIL, NA"})
			return
		}
		found := store.SetItemStatus(c.Param("project_id"), c.Param("section_id"), c.Param("item_id"), req.Status)
		respondMutation(c, store, c.Param("project_id"), found)
	}
}

// UpdateItemField edits a single text or image field of one item
// @Summary Update item field
// @Description Replace one of description, standardCriteria, remark, referenceImage, photo. Does not touch progress.
// @Tags Checklist
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param section_id path string true "Section ID"
// @Param item_id path string true "Item ID"
// @Param request body models.UpdateItemFieldRequest true "Field and value"
// @Success 200 {object} object
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/item_field/{project_id}/{section_id}/{item_id} [put]
func UpdateItemField(store *storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.UpdateItemFieldRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !models.ValidItemField(req.Field) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid field: " + req.Field})
			return
		}
		found := store.SetItemField(c.Param("project_id"), c.Param("section_id"), c.Param("item_id"), req.Field, req.Value)
		respondMutation(c, store, c.Param("project_id"), found)
	}
}

// AddItem appends a new pending item to a section
// @Summary Add item
// @Tags Checklist
// @Produce json
// @Param project_id path string true "Project ID"
// @Param section_id path string true "Section ID"
// @Success 201 {object} models.ChecklistItem
// @Failure 404 {object} models.ErrorResponse
// @Router /api/item_create/{project_id}/{section_id} [post]
func AddItem(store *storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, found := store.AddItem(c.Param("project_id"), c.Param("section_id"))
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project or section not found"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// DeleteItem removes one item from a section
// @Summary Delete item
// @Description Destructive and irreversible; requires confirm=true
// @Tags Checklist
// @Produce json
// @Param project_id path string true "Project ID"
// @Param section_id path string true "Section ID"
// @Param item_id path string true "Item ID"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} object
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/item_delete/{project_id}/{section_id}/{item_id} [delete]
func DeleteItem(store *storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Deleting in-memory state cannot be undone, so the client has
		// to say it asked the user first.
		if c.Query("confirm") != "true" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "deletion requires confirm=true"})
			return
		}
		found := store.DeleteItem(c.Param("project_id"), c.Param("section_id"), c.Param("item_id"))
		respondMutation(c, store, c.Param("project_id"), found)
	}
}

// AddSection appends an empty section to a project
// @Summary Add section
// @Tags Checklist
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 201 {object} models.ChecklistSection
// @Failure 404 {object} models.ErrorResponse
// @Router /api/section_create/{project_id} [post]
func AddSection(store *storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		section, found := store.AddSection(c.Param("project_id"))
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusCreated, section)
	}
}

// DeleteSection removes a section and all its items
// @Summary Delete section
// @Description Destructive and irreversible; requires confirm=true
// @Tags Checklist
// @Produce json
// @Param project_id path string true "Project ID"
// @Param section_id path string true "Section ID"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} object
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/section_delete/{project_id}/{section_id} [delete]
func DeleteSection(store *storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query("confirm") != "true" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "deletion requires confirm=true"})
			return
		}
		found := store.DeleteSection(c.Param("project_id"), c.Param("section_id"))
		respondMutation(c, store, c.Param("project_id"), found)
	}
}

// RenameSection replaces a section title
// @Summary Rename section
// @Tags Checklist
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param section_id path string true "Section ID"
// @Param request body models.RenameSectionRequest true "New title"
// @Success 200 {object} object
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/section_rename/{project_id}/{section_id} [put]
func RenameSection(store *storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RenameSectionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		found := store.RenameSection(c.Param("project_id"), c.Param("section_id"), req.Title)
		respondMutation(c, store, c.Param("project_id"), found)
	}
}
