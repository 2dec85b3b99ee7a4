package storage

import (
	"sync"
	"time"

	"backend/models"
	"backend/utils"
)

// ProjectStore owns every project for the lifetime of the process.
// Nothing is persisted: state is memory-only and lost on restart.
//
// Handlers run on separate goroutines, so all access goes through a
// single mutex; mutations complete atomically, including the derived
// progress/status recomputation, so no reader ever observes a project
// with stale derived fields. Reads hand out deep copies.
type ProjectStore struct {
	mu       sync.Mutex
	projects []*models.Project
}

var store *ProjectStore

// InitStore creates the process-wide store.
func InitStore() *ProjectStore {
	store = NewStore()
	return store
}

func GetStore() *ProjectStore {
	return store
}

// NewStore returns an empty store. Tests use this directly instead of
// the process-wide instance.
func NewStore() *ProjectStore {
	return &ProjectStore{}
}

// CreateProject builds a project from the generated draft sections and
// prepends it to the collection. Newest-first ordering is a display
// contract for the dashboard, not incidental. Every entity gets a
// fresh id; every item starts PENDING with an empty remark and no
// images. Returns a snapshot of the new project.
func (s *ProjectStore) CreateProject(req models.CreateProjectRequest, drafts []models.DraftSection) *models.Project {
	sections := make([]models.ChecklistSection, 0, len(drafts))
	for _, draft := range drafts {
		section := models.ChecklistSection{
			ID:    utils.NewID(),
			Title: draft.Title,
			Items: make([]models.ChecklistItem, 0, len(draft.Items)),
		}
		for _, item := range draft.Items {
			section.Items = append(section.Items, models.ChecklistItem{
				ID:               utils.NewID(),
				Description:      item.Description,
				StandardCriteria: item.Standard,
				Status:           models.StatusPending,
				Remark:           "",
			})
		}
		sections = append(sections, section)
	}

	project := &models.Project{
		ID:            utils.NewID(),
		Name:          req.Name,
		Contractor:    req.Contractor,
		EquipmentType: req.EquipmentType,
		SiteName:      req.SiteName,
		DateCreated:   time.Now().Format("02/01/2006"),
		Status:        models.ProjectStatusDraft,
		Progress:      0,
		Sections:      sections,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append([]*models.Project{project}, s.projects...)
	return project.Clone()
}

// Projects returns a snapshot of every project, newest first.
func (s *ProjectStore) Projects() []*models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = p.Clone()
	}
	return out
}

// Project returns a snapshot of one project, or false if the id is
// unknown.
func (s *ProjectStore) Project(projectID string) (*models.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.find(projectID)
	if p == nil {
		return nil, false
	}
	return p.Clone(), true
}

// Count returns the number of projects in the store.
func (s *ProjectStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.projects)
}

// SetItemStatus replaces the status of one item and recomputes the
// project's progress and status before releasing the lock. This is
// the only code path that can change an item status, so the derived
// fields can never go stale. A missing project, section or item is a
// silent no-op (the UI may race ahead of the store); found reports
// whether the item was hit.
func (s *ProjectStore) SetItemStatus(projectID, sectionID, itemID string, status models.InspectionStatus) (found bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.find(projectID)
	if p == nil {
		return false
	}
	item := findItem(p, sectionID, itemID)
	if item == nil {
		return false
	}
	item.Status = status
	p.RecalculateProgress()
	p.Status = models.StatusFromProgress(p.Progress)
	return true
}

// SetItemField replaces exactly one editable field on the target item.
// Field updates never touch the derived progress/status. Unknown
// fields and missing addresses are no-ops.
func (s *ProjectStore) SetItemField(projectID, sectionID, itemID, field, value string) (found bool) {
	if !models.ValidItemField(field) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.find(projectID)
	if p == nil {
		return false
	}
	item := findItem(p, sectionID, itemID)
	if item == nil {
		return false
	}
	switch field {
	case models.FieldDescription:
		item.Description = value
	case models.FieldStandardCriteria:
		item.StandardCriteria = value
	case models.FieldRemark:
		item.Remark = value
	case models.FieldReferenceImage:
		item.ReferenceImage = value
	case models.FieldPhoto:
		item.Photo = value
	}
	return true
}

// AddItem appends a fresh PENDING item to the end of the section and
// recomputes progress (one more pending item dilutes the percentage —
// a Completed project drops back to In Progress here).
func (s *ProjectStore) AddItem(projectID, sectionID string) (models.ChecklistItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.find(projectID)
	if p == nil {
		return models.ChecklistItem{}, false
	}
	for i := range p.Sections {
		if p.Sections[i].ID != sectionID {
			continue
		}
		item := models.ChecklistItem{
			ID:          utils.NewID(),
			Description: models.DefaultItemDescription,
			Status:      models.StatusPending,
			Remark:      "",
		}
		p.Sections[i].Items = append(p.Sections[i].Items, item)
		s.recalculate(p)
		return item, true
	}
	return models.ChecklistItem{}, false
}

// DeleteItem removes exactly the targeted item, preserving the order
// of the survivors, and recomputes progress. Deleting the last item
// leaves an empty section, not a missing one.
func (s *ProjectStore) DeleteItem(projectID, sectionID, itemID string) (found bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.find(projectID)
	if p == nil {
		return false
	}
	for i := range p.Sections {
		if p.Sections[i].ID != sectionID {
			continue
		}
		items := p.Sections[i].Items
		for j := range items {
			if items[j].ID == itemID {
				p.Sections[i].Items = append(items[:j:j], items[j+1:]...)
				s.recalculate(p)
				return true
			}
		}
		return false
	}
	return false
}

// AddSection appends an empty section with a placeholder title.
func (s *ProjectStore) AddSection(projectID string) (models.ChecklistSection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.find(projectID)
	if p == nil {
		return models.ChecklistSection{}, false
	}
	section := models.ChecklistSection{
		ID:    utils.NewID(),
		Title: models.DefaultSectionTitle,
		Items: []models.ChecklistItem{},
	}
	p.Sections = append(p.Sections, section)
	return section, true
}

// DeleteSection removes the section and everything in it, then
// recomputes progress (fewer items can move the percentage).
func (s *ProjectStore) DeleteSection(projectID, sectionID string) (found bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.find(projectID)
	if p == nil {
		return false
	}
	for i := range p.Sections {
		if p.Sections[i].ID == sectionID {
			p.Sections = append(p.Sections[:i:i], p.Sections[i+1:]...)
			s.recalculate(p)
			return true
		}
	}
	return false
}

// RenameSection replaces the section title only.
func (s *ProjectStore) RenameSection(projectID, sectionID, title string) (found bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.find(projectID)
	if p == nil {
		return false
	}
	for i := range p.Sections {
		if p.Sections[i].ID == sectionID {
			p.Sections[i].Title = title
			return true
		}
	}
	return false
}

// recalculate refreshes the derived fields after a structural edit.
// A project that is still Draft (no status mutation yet) keeps its
// Draft status; once it has left Draft, status always reflects the
// latest progress, including regressing from Completed.
func (s *ProjectStore) recalculate(p *models.Project) {
	p.RecalculateProgress()
	if p.Status != models.ProjectStatusDraft {
		p.Status = models.StatusFromProgress(p.Progress)
	}
}

// find returns the owned project pointer, or nil. Callers must hold
// the mutex.
func (s *ProjectStore) find(projectID string) *models.Project {
	for _, p := range s.projects {
		if p.ID == projectID {
			return p
		}
	}
	return nil
}

func findItem(p *models.Project, sectionID, itemID string) *models.ChecklistItem {
	for i := range p.Sections {
		if p.Sections[i].ID != sectionID {
			continue
		}
		items := p.Sections[i].Items
		for j := range items {
			if items[j].ID == itemID {
				return &items[j]
			}
		}
		return nil
	}
	return nil
}
