package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"backend/models"
	"backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Report layout constants (A4 portrait, 10mm margins).
const (
	reportLineHeight = 4.5
	reportPageBottom = 277.0
)

var reportColumnWidths = []float64{70, 50, 25, 45}

func statusLabel(s models.InspectionStatus) string {
	switch s {
	case models.StatusPass:
		return "Pass"
	case models.StatusFail:
		return "Fail (fix)"
	case models.StatusNA:
		return "N/A"
	default:
		return "Pending"
	}
}

// GenerateInspectionReport renders one project as a PDF report
// @Summary Generate inspection report PDF
// @Description Formatted report: header, QR code, Pass/Fail/N-A/Pending summary, one table per section with failed rows highlighted
// @Tags Reports
// @Param id path string true "Project ID"
// @Success 200 "PDF file"
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/report_pdf/{id} [get]
func GenerateInspectionReport(store *storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, ok := store.Project(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}

		titleCaser := cases.Title(language.Und)
		counts := models.CountItems(project)

		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.SetMargins(10, 10, 10)
		pdf.AliasNbPages("")
		pdf.SetFooterFunc(func() {
			pdf.SetY(-15)
			pdf.SetFont("Arial", "I", 8)
			pdf.SetTextColor(150, 150, 150)
			pdf.CellFormat(190, 6, fmt.Sprintf("Page %d of {nb} - TeleGuard Inspect System", pdf.PageNo()),
				"", 0, "R", false, 0, "")
			pdf.SetTextColor(0, 0, 0)
		})
		pdf.AddPage()

		// --- Header ---
		pdf.SetFont("Arial", "B", 16)
		pdf.Cell(190, 10, "Installation Inspection Report")
		pdf.Ln(12)

		pdf.SetFont("Arial", "", 10)
		pdf.Cell(95, 6, fmt.Sprintf("Project: %s", project.Name))
		pdf.Cell(95, 6, fmt.Sprintf("Printed: %s", time.Now().Format("02-Jan-2006 15:04")))
		pdf.Ln(6)
		pdf.Cell(95, 6, fmt.Sprintf("Site: %s", project.SiteName))
		pdf.Cell(95, 6, fmt.Sprintf("Status: %s", titleCaser.String(strings.ToLower(project.Status))))
		pdf.Ln(6)
		pdf.Cell(95, 6, fmt.Sprintf("Contractor: %s", project.Contractor))
		pdf.Cell(95, 6, fmt.Sprintf("Progress: %d%%", project.Progress))
		pdf.Ln(6)
		pdf.Cell(95, 6, fmt.Sprintf("Equipment Type: %s", project.EquipmentType))
		pdf.Cell(95, 6, fmt.Sprintf("Date Created: %s", project.DateCreated))
		pdf.Ln(8)

		// QR code of the project id in the top-right corner, so the
		// printed report links back to the in-app project.
		if png, err := qrcode.Encode(project.ID, qrcode.Medium, 256); err == nil {
			opts := gofpdf.ImageOptions{ImageType: "PNG"}
			pdf.RegisterImageOptionsReader("project-qr", opts, bytes.NewReader(png))
			pdf.ImageOptions("project-qr", 178, 8, 22, 22, false, opts, 0, "")
		}

		// --- Summary ---
		pdf.SetDrawColor(200, 200, 200)
		pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
		pdf.Ln(3)
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(190, 6, fmt.Sprintf("Summary: Pass (%d) | Fail (%d) | N/A (%d) | Pending (%d)",
			counts.Pass, counts.Fail, counts.NA, counts.Pending))
		pdf.Ln(6)
		if counts.Fail > 0 {
			pdf.SetTextColor(220, 53, 69)
			pdf.Cell(190, 6, fmt.Sprintf("* %d defect item(s) require rectification, see details below", counts.Fail))
			pdf.SetTextColor(0, 0, 0)
			pdf.Ln(6)
		}
		pdf.Ln(2)

		// --- Section tables ---
		for _, section := range project.Sections {
			if pdf.GetY() > reportPageBottom-20 {
				pdf.AddPage()
			}
			pdf.SetFont("Arial", "B", 10)
			pdf.SetFillColor(41, 128, 185)
			pdf.SetTextColor(255, 255, 255)
			headers := []string{section.Title, "Standard / Criteria", "Status", "Remark"}
			for i, header := range headers {
				pdf.CellFormat(reportColumnWidths[i], 7, header, "1", 0, "L", true, 0, "")
			}
			pdf.Ln(-1)
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFont("Arial", "", 9)

			for _, item := range section.Items {
				switch item.Status {
				case models.StatusFail:
					pdf.SetTextColor(220, 53, 69)
					pdf.SetFont("Arial", "B", 9)
				case models.StatusPass:
					pdf.SetTextColor(25, 135, 84)
				}
				reportRow(pdf, []string{
					item.Description,
					orDash(item.StandardCriteria),
					statusLabel(item.Status),
					orDash(item.Remark),
				})
				pdf.SetTextColor(0, 0, 0)
				pdf.SetFont("Arial", "", 9)
			}
			pdf.Ln(6)
		}

		c.Header("Content-Type", "application/pdf")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_Report.pdf", exportFilename(project.Name)))
		if err := pdf.Output(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
			return
		}
	}
}

// reportRow draws one table row with per-cell word wrap. Row height
// follows the tallest cell so borders stay aligned.
func reportRow(pdf *gofpdf.Fpdf, cells []string) {
	maxLines := 1
	for i, text := range cells {
		if lines := pdf.SplitText(text, reportColumnWidths[i]-2); len(lines) > maxLines {
			maxLines = len(lines)
		}
	}
	rowHeight := float64(maxLines)*reportLineHeight + 2

	if pdf.GetY()+rowHeight > reportPageBottom {
		pdf.AddPage()
	}

	x, y := pdf.GetXY()
	for i, text := range cells {
		pdf.Rect(x, y, reportColumnWidths[i], rowHeight, "D")
		pdf.SetXY(x+1, y+1)
		pdf.MultiCell(reportColumnWidths[i]-2, reportLineHeight, text, "", "L", false)
		x += reportColumnWidths[i]
	}
	pdf.SetY(y + rowHeight)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

var filenameReplacer = strings.NewReplacer("/", "_", "\\", "_", "\"", "", ";", "", " ", "_")

func exportFilename(name string) string {
	return filenameReplacer.Replace(name)
}
