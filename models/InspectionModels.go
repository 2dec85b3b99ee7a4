package models

// InspectionStatus is the outcome of a single checklist item.
type InspectionStatus string

const (
	StatusPending InspectionStatus = "PENDING"
	StatusPass    InspectionStatus = "PASS"
	StatusFail    InspectionStatus = "FAIL"
	StatusNA      InspectionStatus = "NA"
)

// ValidInspectionStatus reports whether s is one of the four item statuses.
func ValidInspectionStatus(s InspectionStatus) bool {
	switch s {
	case StatusPending, StatusPass, StatusFail, StatusNA:
		return true
	}
	return false
}

// Project lifecycle statuses. A project stays Draft until the first
// item-status update, then tracks progress (Completed iff 100%).
const (
	ProjectStatusDraft      = "Draft"
	ProjectStatusInProgress = "In Progress"
	ProjectStatusCompleted  = "Completed"
)

// ChecklistItem is one inspectable condition. ReferenceImage holds the
// example/standard image set while authoring, Photo holds the field
// evidence captured during inspection; the two slots are independent.
// Images are stored inline as base64 data URIs.
type ChecklistItem struct {
	ID               string           `json:"id" example:"a1b2c3d4e5f6"`
	Description      string           `json:"description" example:"Check DC input voltage at terminal block"`
	StandardCriteria string           `json:"standardCriteria,omitempty" example:"Must be within -48VDC ± 10%"`
	ReferenceImage   string           `json:"referenceImage,omitempty"`
	Status           InspectionStatus `json:"status" example:"PENDING"`
	Remark           string           `json:"remark" example:""`
	Photo            string           `json:"photo,omitempty"`
}

// ChecklistSection groups related items. Item order is insertion order
// and is meaningful for display.
type ChecklistSection struct {
	ID    string          `json:"id" example:"f6e5d4c3b2a1"`
	Title string          `json:"title" example:"Grounding / Bonding"`
	Items []ChecklistItem `json:"items"`
}

// Project is one inspection engagement for a piece of equipment at a
// site. Progress is derived and never set directly.
type Project struct {
	ID            string             `json:"id" example:"0f1e2d3c4b5a"`
	Name          string             `json:"name" example:"MUX Installation - North Substation"`
	Contractor    string             `json:"contractor" example:"ACME Telecom Services"`
	EquipmentType string             `json:"equipmentType" example:"SDH Multiplexer"`
	SiteName      string             `json:"siteName" example:"North 500kV Substation"`
	DateCreated   string             `json:"dateCreated" example:"31/08/2026"`
	Status        string             `json:"status" example:"Draft"`
	Progress      int                `json:"progress" example:"0"`
	Sections      []ChecklistSection `json:"sections"`
}

// DraftItem and DraftSection mirror the checklist generator response
// schema: ordered sections of {description, standard} pairs.
type DraftItem struct {
	Description string `json:"description"`
	Standard    string `json:"standard"`
}

type DraftSection struct {
	Title string      `json:"title"`
	Items []DraftItem `json:"items"`
}

// CreateProjectRequest is the payload for the project creation flow.
// Name and EquipmentType are required; Context is free text handed to
// the checklist generator as-is.
type CreateProjectRequest struct {
	Name          string `json:"name" example:"MUX Installation - North Substation"`
	Contractor    string `json:"contractor" example:"ACME Telecom Services"`
	SiteName      string `json:"siteName" example:"North 500kV Substation"`
	EquipmentType string `json:"equipmentType" example:"SDH Multiplexer"`
	Context       string `json:"context" example:"Outdoor cabinet, -48VDC plant, fiber uplink to control room"`
}

type UpdateItemStatusRequest struct {
	Status InspectionStatus `json:"status" example:"PASS"`
}

// UpdateItemFieldRequest names one editable item field and its new
// value. Field must be one of the ItemField constants.
type UpdateItemFieldRequest struct {
	Field string `json:"field" example:"remark"`
	Value string `json:"value" example:"Loss measured at 0.3dB"`
}

type RenameSectionRequest struct {
	Title string `json:"title" example:"Fiber Optic / Cabling"`
}

// Editable item fields accepted by the field-update operation.
const (
	FieldDescription      = "description"
	FieldStandardCriteria = "standardCriteria"
	FieldRemark           = "remark"
	FieldReferenceImage   = "referenceImage"
	FieldPhoto            = "photo"
)

// ValidItemField reports whether field names an editable item field.
func ValidItemField(field string) bool {
	switch field {
	case FieldDescription, FieldStandardCriteria, FieldRemark, FieldReferenceImage, FieldPhoto:
		return true
	}
	return false
}

// Defaults for items and sections added by hand during edit mode.
const (
	DefaultItemDescription = "New inspection item"
	DefaultSectionTitle    = "New section"
)
