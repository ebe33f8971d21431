package models

type RegisterRequest struct {
	Username string   `json:"username" binding:"required,min=3,max=50"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	Role     UserRole `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateSubmissionRequest struct {
	SectionID uint   `json:"section_id" binding:"required"`
	PersonID  *uint  `json:"person_id"`
	Title     string `json:"title" binding:"required,min=1,max=255"`
	Body      string `json:"body" binding:"required"`
	Epigraph  string `json:"epigraph"`
	PhotoPath string `json:"photo_path"`
}

type CreateSuggestionRequest struct {
	FirstNameRu      string `json:"first_name_ru" binding:"required,min=1,max=100"`
	LastNameRu       string `json:"last_name_ru" binding:"required,min=1,max=100"`
	FirstNameEn      string `json:"first_name_en"`
	LastNameEn       string `json:"last_name_en"`
	Biography        string `json:"biography" binding:"required"`
	Rank             string `json:"rank"`
	Epigraph         string `json:"epigraph"`
	BirthDate        string `json:"birth_date"`
	DeathDate        string `json:"death_date"`
	BirthCountry     string `json:"birth_country"`
	DeathCountry     string `json:"death_country"`
	Gender           string `json:"gender"`
	PersonPhotoPath  string `json:"person_photo_path"`
	ArticlePhotoPath string `json:"article_photo_path"`
}

type ReviewAction string

const (
	ActionApprove         ReviewAction = "approve"
	ActionReject          ReviewAction = "reject"
	ActionRequestRevision ReviewAction = "request_revision"
)

type ReviewRequest struct {
	Action ReviewAction `json:"action" binding:"required"`
	Note   string       `json:"note"`
}

type ReviewResult struct {
	ID                uint   `json:"id"`
	OldStatus         string `json:"old_status"`
	NewStatus         string `json:"new_status"`
	PublishedRecordID *uint  `json:"published_record_id,omitempty"`
}

type SlugPreviewRequest struct {
	StructureID uint   `form:"structure_id" binding:"required"`
	Slug        string `form:"slug"`
}

// SlugPreview is advisory only: similar and suggested URLs are re-validated
// at publish time.
type SlugPreview struct {
	Slug       string   `json:"slug"`
	URL        string   `json:"url"`
	ExactMatch bool     `json:"exact_match"`
	Similar    []string `json:"similar"`
	Suggested  string   `json:"suggested,omitempty"`
}

type PublishRequest struct {
	StructureID uint   `json:"structure_id" binding:"required"`
	Slug        string `json:"slug"`
}

type PublishResult struct {
	SuggestionID uint   `json:"suggestion_id"`
	PersonID     uint   `json:"person_id"`
	URL          string `json:"url"`
	OldStatus    string `json:"old_status"`
	NewStatus    string `json:"new_status"`
}

type SubmissionListParams struct {
	Status    string `form:"status"`
	SectionID uint   `form:"section_id"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=10"`
}
