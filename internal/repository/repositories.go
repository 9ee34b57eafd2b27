package repository

type Repositories struct {
	InquiryRepo     InquiryRepository
	ProjectRepo     ProjectRepository
	TestimonialRepo TestimonialRepository
}

func NewRepositories(db *Database) *Repositories {
	return &Repositories{
		InquiryRepo:     NewInquiryRepository(db),
		ProjectRepo:     NewProjectRepository(db),
		TestimonialRepo: NewTestimonialRepository(db),
	}
}
