package models

// ============================================
// Vocabulary
// ============================================

// ModelNames are the record kinds advertised by GET /schema.
var ModelNames = []string{"inquiry", "project", "testimonial"}

const (
	NicheUIAnimation     = "UI Animation"
	NicheRealEstate      = "Real Estate"
	NicheCommercialReels = "Commercial Reels"
)

// Niches is the category vocabulary for projects and inquiry project types.
// It is advisory: values outside it are accepted.
var Niches = []string{NicheUIAnimation, NicheRealEstate, NicheCommercialReels}

// ============================================
// Common DTOs
// ============================================

type MessageResponse struct {
	Message string `json:"message"`
}

type SchemaResponse struct {
	Models []string `json:"models"`
}

// ErrorResponse carries either a message string or a list of ValidationIssue.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

// ValidationIssue is one field-level request validation failure.
type ValidationIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}
