package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"backend/models"
	"backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ==================== CHECKLIST FILE EXPORTS ====================

// ExportChecklistCSV exports one project's checklist as CSV
// @Summary Export checklist as CSV
// @Tags Export
// @Produce text/csv
// @Param id path string true "Project ID"
// @Success 200 {file} file "CSV file"
// @Failure 404 {object} models.ErrorResponse
// @Router /api/export_csv/{id} [get]
func ExportChecklistCSV(store *storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, ok := store.Project(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}

		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", fmt.Sprintf("attachment;filename=%s_checklist.csv", exportFilename(project.Name)))

		writer := csv.NewWriter(c.Writer)
		defer writer.Flush()

		header := []string{"Section", "Description", "StandardCriteria", "Status", "Remark"}
		if err := writer.Write(header); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error writing CSV header"})
			return
		}

		for _, section := range project.Sections {
			for _, item := range section.Items {
				row := []string{section.Title, item.Description, item.StandardCriteria, string(item.Status), item.Remark}
				if err := writer.Write(row); err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Error writing CSV row"})
					return
				}
			}
		}
	}
}

// ExportChecklistExcel exports one project's checklist as a styled workbook
// @Summary Export checklist as Excel
// @Tags Export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Project ID"
// @Success 200 {file} file "Excel file"
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/export_excel/{id} [get]
func ExportChecklistExcel(store *storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, ok := store.Project(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}

		f := excelize.NewFile()
		defer f.Close()

		const sheet = "Checklist"
		f.SetSheetName("Sheet1", sheet)

		headerStyle, _ := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill: excelize.Fill{Type: "pattern", Color: []string{"2980B9"}, Pattern: 1},
		})
		failStyle, _ := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true, Color: "DC3545"},
		})

		// Project header block
		f.SetCellValue(sheet, "A1", project.Name)
		f.SetCellValue(sheet, "A2", fmt.Sprintf("Site: %s | Contractor: %s | Equipment: %s",
			project.SiteName, project.Contractor, project.EquipmentType))
		counts := models.CountItems(project)
		f.SetCellValue(sheet, "A3", fmt.Sprintf("Progress: %d%% | Pass: %d | Fail: %d | N/A: %d | Pending: %d",
			project.Progress, counts.Pass, counts.Fail, counts.NA, counts.Pending))

		headers := []string{"Section", "Description", "StandardCriteria", "Status", "Remark"}
		for i, header := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 5)
			f.SetCellValue(sheet, cell, header)
			f.SetCellStyle(sheet, cell, cell, headerStyle)
		}

		row := 6
		for _, section := range project.Sections {
			for _, item := range section.Items {
				values := []interface{}{section.Title, item.Description, item.StandardCriteria, string(item.Status), item.Remark}
				for i, value := range values {
					cell, _ := excelize.CoordinatesToCellName(i+1, row)
					f.SetCellValue(sheet, cell, value)
				}
				if item.Status == models.StatusFail {
					f.SetCellStyle(sheet, "A"+strconv.Itoa(row), "E"+strconv.Itoa(row), failStyle)
				}
				row++
			}
		}

		f.SetColWidth(sheet, "A", "A", 24)
		f.SetColWidth(sheet, "B", "C", 42)
		f.SetColWidth(sheet, "D", "E", 16)

		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment;filename=%s_checklist.xlsx", exportFilename(project.Name)))
		if err := f.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate Excel file"})
			return
		}
	}
}
