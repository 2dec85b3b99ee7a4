package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"backend/models"
	"backend/services"
	"backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func draftFixture() []models.DraftSection {
	return []models.DraftSection{
		{Title: "Mechanical Installation", Items: []models.DraftItem{
			{Description: "Cabinet anchored to floor", Standard: "All anchor bolts torqued to spec"},
			{Description: "Cable entries sealed", Standard: "No visible gaps"},
		}},
		{Title: "Grounding / Bonding", Items: []models.DraftItem{
			{Description: "Ground bar bonded to main earth", Standard: "Resistance < 5 ohm"},
		}},
	}
}

func stubGenerator(drafts []models.DraftSection, err error) services.ChecklistGenerator {
	return func(ctx context.Context, equipmentType, siteContext string) ([]models.DraftSection, error) {
		return drafts, err
	}
}

// newTestRouter wires the same routes as main.go against a fresh store.
func newTestRouter(store *storage.ProjectStore, generate services.ChecklistGenerator) *gin.Engine {
	r := gin.New()
	r.POST("/api/project_create", CreateProject(store, generate))
	r.GET("/api/projects", FetchAllProjects(store))
	r.GET("/api/project_fetch/:id", FetchProject(store))
	r.GET("/api/project_summary/:id", GetProjectSummary(store))
	r.PUT("/api/item_status/:project_id/:section_id/:item_id", UpdateItemStatus(store))
	r.PUT("/api/item_field/:project_id/:section_id/:item_id", UpdateItemField(store))
	r.POST("/api/item_create/:project_id/:section_id", AddItem(store))
	r.DELETE("/api/item_delete/:project_id/:section_id/:item_id", DeleteItem(store))
	r.POST("/api/section_create/:project_id", AddSection(store))
	r.DELETE("/api/section_delete/:project_id/:section_id", DeleteSection(store))
	r.PUT("/api/section_rename/:project_id/:section_id", RenameSection(store))
	r.POST("/api/item_image/:project_id/:section_id/:item_id", AttachItemImage(store))
	r.GET("/api/report_pdf/:id", GenerateInspectionReport(store))
	r.GET("/api/export_csv/:id", ExportChecklistCSV(store))
	r.GET("/api/export_excel/:id", ExportChecklistExcel(store))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createTestProject(t *testing.T, r *gin.Engine) models.Project {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/project_create", models.CreateProjectRequest{
		Name:          "MUX Installation",
		Contractor:    "ACME Telecom",
		SiteName:      "North Substation",
		EquipmentType: "SDH Multiplexer",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp models.ProjectResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data)
	return *resp.Data
}

func TestCreateProjectEndpoint(t *testing.T) {
	store := storage.NewStore()
	r := newTestRouter(store, stubGenerator(draftFixture(), nil))

	project := createTestProject(t, r)
	assert.NotEmpty(t, project.ID)
	assert.Equal(t, models.ProjectStatusDraft, project.Status)
	assert.Equal(t, 0, project.Progress)
	require.Len(t, project.Sections, 2)
	assert.Equal(t, 1, store.Count())
}

func TestCreateProjectValidation(t *testing.T) {
	store := storage.NewStore()
	generatorCalled := false
	r := newTestRouter(store, func(ctx context.Context, equipmentType, siteContext string) ([]models.DraftSection, error) {
		generatorCalled = true
		return draftFixture(), nil
	})

	w := doJSON(t, r, http.MethodPost, "/api/project_create", models.CreateProjectRequest{
		Name:          "Test",
		EquipmentType: "",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "equipmentType")
	// validation fires before the generator is ever invoked
	assert.False(t, generatorCalled)
	assert.Equal(t, 0, store.Count())
}

func TestCreateProjectGenerationFailureIsAtomic(t *testing.T) {
	store := storage.NewStore()
	r := newTestRouter(store, stubGenerator(nil, errors.New("model returned an empty checklist")))

	w := doJSON(t, r, http.MethodPost, "/api/project_create", models.CreateProjectRequest{
		Name:          "Test",
		EquipmentType: "MUX",
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "empty checklist")
	assert.Equal(t, 0, store.Count())

	w = doJSON(t, r, http.MethodGet, "/api/projects", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestFetchProjectNotFound(t *testing.T) {
	r := newTestRouter(storage.NewStore(), stubGenerator(nil, nil))
	w := doJSON(t, r, http.MethodGet, "/api/project_fetch/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectsListNewestFirst(t *testing.T) {
	store := storage.NewStore()
	r := newTestRouter(store, stubGenerator(draftFixture(), nil))

	store.CreateProject(models.CreateProjectRequest{Name: "older", EquipmentType: "MUX"}, nil)
	store.CreateProject(models.CreateProjectRequest{Name: "newer", EquipmentType: "MUX"}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var projects []models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	require.Len(t, projects, 2)
	assert.Equal(t, "newer", projects[0].Name)
	assert.Equal(t, "older", projects[1].Name)
}

func TestProjectSummary(t *testing.T) {
	store := storage.NewStore()
	r := newTestRouter(store, stubGenerator(draftFixture(), nil))
	project := createTestProject(t, r)

	section := project.Sections[0]
	store.SetItemStatus(project.ID, section.ID, section.Items[0].ID, models.StatusFail)

	w := doJSON(t, r, http.MethodGet, "/api/project_summary/"+project.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary models.ProjectSummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, project.ID, summary.ProjectID)
	assert.Equal(t, models.ProjectStatusInProgress, summary.Status)
	assert.Equal(t, 33, summary.Progress)
	assert.Equal(t, 3, summary.Counts.Total)
	assert.Equal(t, 1, summary.Counts.Fail)
	assert.Equal(t, 2, summary.Counts.Pending)
}
