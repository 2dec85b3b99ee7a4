package models

import "math"

// StatusCounts is the per-status tally used by the report exporter,
// the spreadsheet exports and the dashboard summary.
type StatusCounts struct {
	Total   int `json:"total" example:"12"`
	Pass    int `json:"pass" example:"7"`
	Fail    int `json:"fail" example:"1"`
	NA      int `json:"na" example:"2"`
	Pending int `json:"pending" example:"2"`
}

// Completed returns the number of items inspected so far (anything
// that is no longer PENDING counts, including FAIL and N/A).
func (sc StatusCounts) Completed() int {
	return sc.Pass + sc.Fail + sc.NA
}

// CountItems tallies every item across all sections of a project.
func CountItems(p *Project) StatusCounts {
	var sc StatusCounts
	for _, section := range p.Sections {
		for _, item := range section.Items {
			sc.Total++
			switch item.Status {
			case StatusPass:
				sc.Pass++
			case StatusFail:
				sc.Fail++
			case StatusNA:
				sc.NA++
			default:
				sc.Pending++
			}
		}
	}
	return sc
}

// ProgressOf computes the integer completion percentage, rounded to
// the nearest whole number. An empty checklist is 0%.
func ProgressOf(total, completed int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// StatusFromProgress derives the project status from its progress.
// Completed is never sticky: if progress later drops below 100 the
// project goes back to In Progress.
func StatusFromProgress(progress int) string {
	if progress == 100 {
		return ProjectStatusCompleted
	}
	return ProjectStatusInProgress
}

// RecalculateProgress recomputes the derived Progress field from the
// current item statuses. It leaves Status alone so that structural
// edits on a Draft project do not push it into In Progress; callers
// that perform a status mutation must re-derive Status themselves via
// StatusFromProgress.
func (p *Project) RecalculateProgress() {
	sc := CountItems(p)
	p.Progress = ProgressOf(sc.Total, sc.Completed())
}

// Clone returns a deep copy of the project. The store hands out only
// clones so callers can never mutate owned state behind its back.
func (p *Project) Clone() *Project {
	cp := *p
	cp.Sections = make([]ChecklistSection, len(p.Sections))
	for i, section := range p.Sections {
		cs := section
		cs.Items = make([]ChecklistItem, len(section.Items))
		copy(cs.Items, section.Items)
		cp.Sections[i] = cs
	}
	return &cp
}
