package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProject() *Project {
	return &Project{
		ID:     "p1",
		Name:   "Sample",
		Status: ProjectStatusDraft,
		Sections: []ChecklistSection{
			{ID: "s1", Title: "Power", Items: []ChecklistItem{
				{ID: "i1", Description: "Check voltage", Status: StatusPass},
				{ID: "i2", Description: "Check breaker", Status: StatusFail},
			}},
			{ID: "s2", Title: "Cabling", Items: []ChecklistItem{
				{ID: "i3", Description: "Check labels", Status: StatusNA},
				{ID: "i4", Description: "Check bend radius", Status: StatusPending},
			}},
		},
	}
}

func TestProgressOf(t *testing.T) {
	assert.Equal(t, 0, ProgressOf(0, 0))
	assert.Equal(t, 0, ProgressOf(3, 0))
	assert.Equal(t, 33, ProgressOf(3, 1))
	assert.Equal(t, 67, ProgressOf(3, 2))
	assert.Equal(t, 100, ProgressOf(3, 3))
	assert.Equal(t, 50, ProgressOf(2, 1))
	// 12.5 rounds to nearest, away from zero
	assert.Equal(t, 13, ProgressOf(8, 1))
	assert.Equal(t, 75, ProgressOf(4, 3))
}

func TestStatusFromProgress(t *testing.T) {
	assert.Equal(t, ProjectStatusCompleted, StatusFromProgress(100))
	assert.Equal(t, ProjectStatusInProgress, StatusFromProgress(99))
	assert.Equal(t, ProjectStatusInProgress, StatusFromProgress(0))
}

func TestCountItems(t *testing.T) {
	sc := CountItems(sampleProject())
	assert.Equal(t, 4, sc.Total)
	assert.Equal(t, 1, sc.Pass)
	assert.Equal(t, 1, sc.Fail)
	assert.Equal(t, 1, sc.NA)
	assert.Equal(t, 1, sc.Pending)
	assert.Equal(t, 3, sc.Completed())
}

func TestCountItemsEmptyProject(t *testing.T) {
	sc := CountItems(&Project{})
	assert.Equal(t, 0, sc.Total)
	assert.Equal(t, 0, sc.Completed())
}

func TestRecalculateProgressKeepsStatus(t *testing.T) {
	p := sampleProject()
	p.RecalculateProgress()
	assert.Equal(t, 75, p.Progress)
	// RecalculateProgress never touches Status
	assert.Equal(t, ProjectStatusDraft, p.Status)
}

func TestValidInspectionStatus(t *testing.T) {
	for _, s := range []InspectionStatus{StatusPending, StatusPass, StatusFail, StatusNA} {
		assert.True(t, ValidInspectionStatus(s))
	}
	assert.False(t, ValidInspectionStatus("pass"))
	assert.False(t, ValidInspectionStatus(""))
	assert.False(t, ValidInspectionStatus("DONE"))
}

func TestValidItemField(t *testing.T) {
	for _, f := range []string{FieldDescription, FieldStandardCriteria, FieldRemark, FieldReferenceImage, FieldPhoto} {
		assert.True(t, ValidItemField(f))
	}
	assert.False(t, ValidItemField("status"))
	assert.False(t, ValidItemField("id"))
}

func TestCloneIsDeep(t *testing.T) {
	p := sampleProject()
	cp := p.Clone()
	require.Equal(t, p, cp)

	cp.Sections[0].Items[0].Status = StatusNA
	cp.Sections[1].Title = "changed"
	assert.Equal(t, StatusPass, p.Sections[0].Items[0].Status)
	assert.Equal(t, "Cabling", p.Sections[1].Title)
}
