package services

import (
	"errors"
	"fmt"
	"time"

	"encyclo-cms/helper"
	"encyclo-cms/models"
	"encyclo-cms/repositories"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	ReputationSuggestionApprove = 5
	ReputationSuggestionReject  = -2
	ReputationPublishBonus      = 10
)

const (
	slugProbeLimit    = 20
	similarURLLimit   = 20
	epigraphMaxLength = 200
)

type PersonService interface {
	CreateSuggestion(req models.CreateSuggestionRequest, userID uint) (*models.PersonSuggestion, error)
	GetSuggestion(id, userID uint) (*models.PersonSuggestion, error)
	GetSuggestions(userID uint) ([]models.PersonSuggestion, error)
	GetPendingSuggestions() ([]models.PersonSuggestion, error)
	ReviewSuggestion(suggestionID, moderatorID uint, req models.ReviewRequest) (*models.ReviewResult, error)
	PreviewSlug(suggestionID uint, req models.SlugPreviewRequest) (*models.SlugPreview, error)
	Publish(suggestionID, adminID uint, req models.PublishRequest) (*models.PublishResult, error)
}

type personService struct {
	db             *gorm.DB
	suggestionRepo repositories.SuggestionRepository
	personRepo     repositories.PersonRepository
	sectionRepo    repositories.SectionRepository
	userRepo       repositories.UserRepository
	auditRepo      repositories.AuditRepository
	fileMover      FileMover
	logger         *logrus.Logger
}

func NewPersonService(
	db *gorm.DB,
	suggestionRepo repositories.SuggestionRepository,
	personRepo repositories.PersonRepository,
	sectionRepo repositories.SectionRepository,
	userRepo repositories.UserRepository,
	auditRepo repositories.AuditRepository,
	fileMover FileMover,
	logger *logrus.Logger,
) PersonService {
	return &personService{
		db:             db,
		suggestionRepo: suggestionRepo,
		personRepo:     personRepo,
		sectionRepo:    sectionRepo,
		userRepo:       userRepo,
		auditRepo:      auditRepo,
		fileMover:      fileMover,
		logger:         logger,
	}
}

func (s *personService) CreateSuggestion(req models.CreateSuggestionRequest, userID uint) (*models.PersonSuggestion, error) {
	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		return nil, models.ErrorValidation{Message: "invalid birth_date, expected YYYY-MM-DD"}
	}
	deathDate, err := parseDate(req.DeathDate)
	if err != nil {
		return nil, models.ErrorValidation{Message: "invalid death_date, expected YYYY-MM-DD"}
	}

	suggestion := &models.PersonSuggestion{
		UserID:           userID,
		FirstNameRu:      req.FirstNameRu,
		LastNameRu:       req.LastNameRu,
		FirstNameEn:      req.FirstNameEn,
		LastNameEn:       req.LastNameEn,
		Biography:        req.Biography,
		Rank:             req.Rank,
		Epigraph:         req.Epigraph,
		BirthDate:        birthDate,
		DeathDate:        deathDate,
		BirthCountry:     req.BirthCountry,
		DeathCountry:     req.DeathCountry,
		Gender:           req.Gender,
		PersonPhotoPath:  req.PersonPhotoPath,
		ArticlePhotoPath: req.ArticlePhotoPath,
		Status:           models.SuggestionPending,
	}
	if err := s.suggestionRepo.Create(suggestion); err != nil {
		return nil, models.ErrorInternalServer{Message: "failed to create suggestion", Cause: err}
	}

	return suggestion, nil
}

func (s *personService) GetSuggestion(id, userID uint) (*models.PersonSuggestion, error) {
	suggestion, err := s.suggestionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "suggestion not found"}
		}
		return nil, models.ErrorInternalServer{Message: "failed to load suggestion", Cause: err}
	}
	if suggestion.UserID != userID {
		return nil, models.ErrorNotFound{Message: "suggestion not found"}
	}
	return suggestion, nil
}

func (s *personService) GetSuggestions(userID uint) ([]models.PersonSuggestion, error) {
	return s.suggestionRepo.GetByUser(userID)
}

func (s *personService) GetPendingSuggestions() ([]models.PersonSuggestion, error) {
	return s.suggestionRepo.GetPending(100)
}

// ReviewSuggestion advances a pending suggestion to approved, rejected or
// revision_requested. It never creates production records: publishing is a
// separate admin step so a second, higher-trust actor signs off before the
// irreversible production write.
func (s *personService) ReviewSuggestion(suggestionID, moderatorID uint, req models.ReviewRequest) (*models.ReviewResult, error) {
	if err := validateReviewRequest(req); err != nil {
		return nil, err
	}

	suggestion, err := s.suggestionRepo.GetByID(suggestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "suggestion not found"}
		}
		return nil, models.ErrorInternalServer{Message: "failed to load suggestion", Cause: err}
	}
	if suggestion.Status != models.SuggestionPending {
		return nil, models.ErrorStatus{Message: "suggestion is not pending review"}
	}

	result := &models.ReviewResult{
		ID:        suggestion.ID,
		OldStatus: string(suggestion.Status),
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		suggestionRepo := s.suggestionRepo.WithTx(tx)
		userRepo := s.userRepo.WithTx(tx)
		auditRepo := s.auditRepo.WithTx(tx)

		now := time.Now()
		fields := map[string]interface{}{
			"moderator_id":   moderatorID,
			"moderator_note": req.Note,
			"updated_at":     now,
		}

		var action string
		var delta int

		switch req.Action {
		case models.ActionApprove:
			fields["status"] = models.SuggestionApproved
			result.NewStatus = string(models.SuggestionApproved)
			action = models.AuditActionApprove
			delta = ReputationSuggestionApprove
		case models.ActionReject:
			fields["status"] = models.SuggestionRejected
			result.NewStatus = string(models.SuggestionRejected)
			action = models.AuditActionReject
			delta = ReputationSuggestionReject
		case models.ActionRequestRevision:
			fields["status"] = models.SuggestionRevisionRequested
			result.NewStatus = string(models.SuggestionRevisionRequested)
			action = models.AuditActionRequestRevision
		}

		rows, err := suggestionRepo.ApplyReview(suggestion.ID, models.SuggestionPending, fields)
		if err != nil {
			return err
		}
		if rows == 0 {
			return models.ErrorStatus{Message: "suggestion is not pending review"}
		}

		if delta != 0 {
			if err := userRepo.AdjustReputation(suggestion.UserID, delta); err != nil {
				return err
			}
		}

		return auditRepo.Record(&models.AuditLog{
			ModeratorID: moderatorID,
			Action:      action,
			TargetType:  models.AuditTargetSuggestion,
			TargetID:    suggestion.ID,
			Note:        req.Note,
		})
	})

	if txErr != nil {
		var statusErr models.ErrorStatus
		if errors.As(txErr, &statusErr) {
			return nil, statusErr
		}
		return nil, models.ErrorInternalServer{Message: "review failed", Cause: txErr}
	}

	return result, nil
}

// PreviewSlug is the read-only conflict resolver: it reports near-duplicate
// production URLs, whether the candidate URL is taken, and a free numeric
// suffix alternative. Nothing is committed; the operator must explicitly
// choose the suggested slug and publish re-validates it.
func (s *personService) PreviewSlug(suggestionID uint, req models.SlugPreviewRequest) (*models.SlugPreview, error) {
	suggestion, err := s.suggestionRepo.GetByID(suggestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "suggestion not found"}
		}
		return nil, models.ErrorInternalServer{Message: "failed to load suggestion", Cause: err}
	}

	section, err := s.sectionRepo.GetByID(req.StructureID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "structure not found"}
		}
		return nil, models.ErrorInternalServer{Message: "failed to load structure", Cause: err}
	}

	slug := resolveSlug(suggestion, req.Slug)
	url := personURL(section, slug)

	preview := &models.SlugPreview{Slug: slug, URL: url}

	preview.Similar, err = s.personRepo.FindSimilarURLs(slug, similarURLLimit)
	if err != nil {
		return nil, models.ErrorInternalServer{Message: "failed to search similar urls", Cause: err}
	}

	preview.ExactMatch, err = s.personRepo.ExistsByURL(url)
	if err != nil {
		return nil, models.ErrorInternalServer{Message: "failed to check url", Cause: err}
	}

	if preview.ExactMatch {
		suggested, err := s.probeSuffix(section, slug)
		if err != nil {
			return nil, err
		}
		preview.Suggested = suggested
	}

	return preview, nil
}

// probeSuffix tries slug-2, slug-3, ... up to the bound and returns the
// first unused one, or empty if all are taken.
func (s *personService) probeSuffix(section *models.Section, slug string) (string, error) {
	for i := 2; i <= slugProbeLimit; i++ {
		candidate := fmt.Sprintf("%s-%d", slug, i)
		taken, err := s.personRepo.ExistsByURL(personURL(section, candidate))
		if err != nil {
			return "", models.ErrorInternalServer{Message: "failed to probe slug", Cause: err}
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", nil
}

// Publish turns an approved suggestion into production rows: person,
// biography, optional photo records, the suggestion flip, the reputation
// bonus and the audit entry, all in one transaction. The AlreadyPublished
// guard stops re-publishing the same suggestion; the pre-write URL check
// stops colliding with an unrelated person.
func (s *personService) Publish(suggestionID, adminID uint, req models.PublishRequest) (*models.PublishResult, error) {
	suggestion, err := s.suggestionRepo.GetByID(suggestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "suggestion not found"}
		}
		return nil, models.ErrorInternalServer{Message: "failed to load suggestion", Cause: err}
	}
	if suggestion.PersonID != nil {
		return nil, models.ErrorAlreadyPublished{Message: "suggestion has already been published"}
	}
	if suggestion.Status != models.SuggestionApproved {
		return nil, models.ErrorStatus{Message: "suggestion is not approved"}
	}

	section, err := s.sectionRepo.GetByID(req.StructureID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "structure not found"}
		}
		return nil, models.ErrorInternalServer{Message: "failed to load structure", Cause: err}
	}

	slug := resolveSlug(suggestion, req.Slug)
	url := personURL(section, slug)

	// Uniqueness gate before any write. On conflict the caller re-runs the
	// preview and picks a different slug.
	taken, err := s.personRepo.ExistsByURL(url)
	if err != nil {
		return nil, models.ErrorInternalServer{Message: "failed to check url", Cause: err}
	}
	if taken {
		return nil, models.ErrorDuplicateURL{URL: url}
	}

	var person *models.Person

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		suggestionRepo := s.suggestionRepo.WithTx(tx)
		personRepo := s.personRepo.WithTx(tx)
		userRepo := s.userRepo.WithTx(tx)
		auditRepo := s.auditRepo.WithTx(tx)

		person = &models.Person{
			FirstNameRu: suggestion.FirstNameRu,
			LastNameRu:  suggestion.LastNameRu,
			FirstNameEn: suggestion.FirstNameEn,
			LastNameEn:  suggestion.LastNameEn,
			URL:         url,
			Epigraph:    personEpigraph(suggestion),
			BirthDate:   suggestion.BirthDate,
			DeathDate:   suggestion.DeathDate,
			Country:     suggestion.BirthCountry,
			Gender:      suggestion.Gender,
			PhotoPath:   suggestion.PersonPhotoPath,
			Moderated:   true,
		}
		if err := personRepo.Create(person); err != nil {
			return err
		}

		// Photo moves are best-effort: the person row is kept either way.
		if suggestion.PersonPhotoPath != "" {
			if moved, err := s.fileMover.MoveToProduction(suggestion.PersonPhotoPath, person.ID); err != nil {
				s.logger.WithError(err).WithField("person_id", person.ID).
					Warn("person photo move failed, keeping staged reference")
			} else if err := personRepo.UpdatePhoto(person.ID, moved); err != nil {
				return err
			}
		}

		if suggestion.ArticlePhotoPath != "" {
			photoPath := suggestion.ArticlePhotoPath
			if moved, err := s.fileMover.MoveToProduction(suggestion.ArticlePhotoPath, person.ID); err != nil {
				s.logger.WithError(err).WithField("person_id", person.ID).
					Warn("article photo move failed, keeping staged reference")
			} else {
				photoPath = moved
			}
			if err := personRepo.CreatePhotoRecord(&models.PhotoRecord{
				PersonID: &person.ID,
				UserID:   suggestion.UserID,
				Title:    suggestion.LastNameRu + " " + suggestion.FirstNameRu,
				Path:     photoPath,
			}); err != nil {
				return err
			}
		}

		if err := personRepo.CreateBiography(&models.Biography{
			PersonID: &person.ID,
			UserID:   suggestion.UserID,
			Title:    suggestion.LastNameRu + " " + suggestion.FirstNameRu,
			Slug:     slug,
			Body:     helper.MarkupToHTML(suggestion.Biography),
			Epigraph: suggestion.Epigraph,
		}); err != nil {
			return err
		}

		rows, err := suggestionRepo.MarkPublished(suggestion.ID, person.ID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return models.ErrorStatus{Message: "suggestion is not approved"}
		}

		if err := userRepo.AdjustReputation(suggestion.UserID, ReputationPublishBonus); err != nil {
			return err
		}

		return auditRepo.Record(&models.AuditLog{
			ModeratorID: adminID,
			Action:      models.AuditActionPublish,
			TargetType:  models.AuditTargetSuggestion,
			TargetID:    suggestion.ID,
			Note:        fmt.Sprintf("person_id=%d url=%s", person.ID, url),
		})
	})

	if txErr != nil {
		var statusErr models.ErrorStatus
		if errors.As(txErr, &statusErr) {
			return nil, statusErr
		}
		return nil, models.ErrorInternalServer{Message: "publish failed", Cause: txErr}
	}

	s.logger.WithFields(logrus.Fields{
		"suggestion_id": suggestion.ID,
		"person_id":     person.ID,
		"url":           url,
		"admin_id":      adminID,
	}).Info("person suggestion published")

	return &models.PublishResult{
		SuggestionID: suggestion.ID,
		PersonID:     person.ID,
		URL:          url,
		OldStatus:    string(models.SuggestionApproved),
		NewStatus:    string(models.SuggestionPublished),
	}, nil
}

// resolveSlug prefers the operator-supplied slug, then the English name pair,
// then the transliterated Russian name, with a synthetic id-based fallback.
func resolveSlug(suggestion *models.PersonSuggestion, custom string) string {
	if custom != "" {
		return helper.SlugifyWithFallback(custom, suggestion.ID)
	}
	if suggestion.FirstNameEn != "" && suggestion.LastNameEn != "" {
		return helper.SlugifyWithFallback(
			suggestion.LastNameEn+" "+suggestion.FirstNameEn, suggestion.ID)
	}
	return helper.SlugifyWithFallback(
		suggestion.LastNameRu+" "+suggestion.FirstNameRu, suggestion.ID)
}

func personURL(section *models.Section, slug string) string {
	return section.Path + slug + "/"
}

// personEpigraph prefers the suggestion's rank and falls back to a truncated
// prefix of the biography.
func personEpigraph(suggestion *models.PersonSuggestion) string {
	if suggestion.Rank != "" {
		return suggestion.Rank
	}
	runes := []rune(suggestion.Biography)
	if len(runes) > epigraphMaxLength {
		return string(runes[:epigraphMaxLength])
	}
	return suggestion.Biography
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
