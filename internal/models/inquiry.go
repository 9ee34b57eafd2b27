package models

// ============================================
// Inquiry DTOs
// ============================================

// CreateInquiryRequest is the contact-form payload accepted by POST /inquiries.
// Required strings are pointers so presence is checked, not length.
type CreateInquiryRequest struct {
	Name        *string     `json:"name" binding:"required"`
	Email       *string     `json:"email" binding:"required,email"`
	Company     *string     `json:"company,omitempty"`
	ProjectType *string     `json:"project_type" binding:"required"`
	Budget      *string     `json:"budget,omitempty"`
	Deadline    *string     `json:"deadline,omitempty"`
	Details     *string     `json:"details,omitempty"`
	Consent     ConsentFlag `json:"consent"`
}

// ConsentGiven applies the default: consent is assumed unless explicitly refused.
func (r *CreateInquiryRequest) ConsentGiven() bool {
	return !r.Consent.Set || r.Consent.Value
}

type InquiryCreatedResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

type InquiryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Company     *string `json:"company"`
	ProjectType string  `json:"project_type"`
	Budget      *string `json:"budget"`
	Deadline    *string `json:"deadline"`
	Details     *string `json:"details"`
	Consent     bool    `json:"consent"`
	CreatedAt   string  `json:"created_at,omitempty"`
	UpdatedAt   string  `json:"updated_at,omitempty"`
}
