package models

// ============================================
// Portfolio DTOs
// ============================================

type ProjectResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Niche        string   `json:"niche"`
	Description  string   `json:"description"`
	Tools        []string `json:"tools"`
	VideoURL     *string  `json:"video_url"`
	ThumbnailURL *string  `json:"thumbnail_url"`
	CreatedAt    string   `json:"created_at,omitempty"`
	UpdatedAt    string   `json:"updated_at,omitempty"`
}

type TestimonialResponse struct {
	ID         string  `json:"id"`
	Quote      string  `json:"quote"`
	ClientName *string `json:"client_name"`
	Role       *string `json:"role"`
	Region     *string `json:"region"`
	CreatedAt  string  `json:"created_at,omitempty"`
	UpdatedAt  string  `json:"updated_at,omitempty"`
}
