package services

import (
	"errors"
	"time"

	"encyclo-cms/models"
	"encyclo-cms/repositories"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ReviewService interface {
	CreateSubmission(req models.CreateSubmissionRequest, userID uint) (*models.Submission, error)
	SubmitSubmission(id, userID uint) error
	GetSubmission(id, userID uint) (*models.Submission, error)
	GetSubmissions(params models.SubmissionListParams, userID uint) ([]models.Submission, int64, error)
	GetPendingSubmissions() ([]models.Submission, error)
	Review(submissionID, moderatorID uint, req models.ReviewRequest) (*models.ReviewResult, error)
}

type reviewService struct {
	db             *gorm.DB
	submissionRepo repositories.SubmissionRepository
	sectionRepo    repositories.SectionRepository
	userRepo       repositories.UserRepository
	auditRepo      repositories.AuditRepository
	router         *SectionRouter
	logger         *logrus.Logger
}

func NewReviewService(
	db *gorm.DB,
	submissionRepo repositories.SubmissionRepository,
	sectionRepo repositories.SectionRepository,
	userRepo repositories.UserRepository,
	auditRepo repositories.AuditRepository,
	router *SectionRouter,
	logger *logrus.Logger,
) ReviewService {
	return &reviewService{
		db:             db,
		submissionRepo: submissionRepo,
		sectionRepo:    sectionRepo,
		userRepo:       userRepo,
		auditRepo:      auditRepo,
		router:         router,
		logger:         logger,
	}
}

func (s *reviewService) CreateSubmission(req models.CreateSubmissionRequest, userID uint) (*models.Submission, error) {
	section, err := s.sectionRepo.GetByID(req.SectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "section not found"}
		}
		return nil, models.ErrorInternalServer{Message: "failed to load section", Cause: err}
	}
	if !section.Active {
		return nil, models.ErrorValidation{Message: "section is not accepting submissions"}
	}

	submission := &models.Submission{
		UserID:    userID,
		SectionID: section.ID,
		PersonID:  req.PersonID,
		Title:     req.Title,
		Body:      req.Body,
		Epigraph:  req.Epigraph,
		PhotoPath: req.PhotoPath,
		Status:    models.SubmissionDraft,
	}
	if err := s.submissionRepo.Create(submission); err != nil {
		return nil, models.ErrorInternalServer{Message: "failed to create submission", Cause: err}
	}

	return s.submissionRepo.GetByID(submission.ID)
}

func (s *reviewService) SubmitSubmission(id, userID uint) error {
	rows, err := s.submissionRepo.Submit(id, userID)
	if err != nil {
		return models.ErrorInternalServer{Message: "failed to submit", Cause: err}
	}
	if rows == 0 {
		if _, err := s.submissionRepo.GetByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "submission not found"}
		}
		return models.ErrorStatus{Message: "submission is not a draft"}
	}
	return nil
}

func (s *reviewService) GetSubmission(id, userID uint) (*models.Submission, error) {
	submission, err := s.submissionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "submission not found"}
		}
		return nil, models.ErrorInternalServer{Message: "failed to load submission", Cause: err}
	}
	if submission.UserID != userID {
		return nil, models.ErrorNotFound{Message: "submission not found"}
	}
	return submission, nil
}

func (s *reviewService) GetSubmissions(params models.SubmissionListParams, userID uint) ([]models.Submission, int64, error) {
	return s.submissionRepo.GetList(params, userID)
}

func (s *reviewService) GetPendingSubmissions() ([]models.Submission, error) {
	return s.submissionRepo.GetPending(100)
}

// Review applies a moderation decision to a pending submission. The status
// transition, production insert, reputation change and audit entry commit in
// one transaction; the transition itself is a conditional update so a
// concurrent reviewer loses the race cleanly instead of double-applying the
// side effects.
func (s *reviewService) Review(submissionID, moderatorID uint, req models.ReviewRequest) (*models.ReviewResult, error) {
	if err := validateReviewRequest(req); err != nil {
		return nil, err
	}

	submission, err := s.submissionRepo.GetByID(submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "submission not found"}
		}
		return nil, models.ErrorInternalServer{Message: "failed to load submission", Cause: err}
	}
	if submission.Status != models.SubmissionPending {
		return nil, models.ErrorStatus{Message: "submission is not pending review"}
	}

	section := submission.Section
	if section == nil {
		section, err = s.sectionRepo.GetByID(submission.SectionID)
		if err != nil {
			return nil, models.ErrorInternalServer{Message: "failed to load section", Cause: err}
		}
	}

	result := &models.ReviewResult{
		ID:        submission.ID,
		OldStatus: string(submission.Status),
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		submissionRepo := s.submissionRepo.WithTx(tx)
		userRepo := s.userRepo.WithTx(tx)
		auditRepo := s.auditRepo.WithTx(tx)

		now := time.Now()
		fields := map[string]interface{}{
			"moderator_id":   moderatorID,
			"moderator_note": req.Note,
			"reviewed_at":    now,
			"updated_at":     now,
		}

		var action string
		var delta int

		switch req.Action {
		case models.ActionApprove:
			recordID, err := s.router.Route(tx, section, submission)
			if err != nil {
				return err
			}
			fields["status"] = models.SubmissionApproved
			fields["published_record_id"] = recordID
			result.NewStatus = string(models.SubmissionApproved)
			result.PublishedRecordID = recordID
			action = models.AuditActionApprove
			delta = s.router.ReputationDelta(section)

		case models.ActionReject:
			fields["status"] = models.SubmissionRejected
			result.NewStatus = string(models.SubmissionRejected)
			action = models.AuditActionReject
			delta = ReputationReject

		case models.ActionRequestRevision:
			fields["status"] = models.SubmissionRevisionRequested
			result.NewStatus = string(models.SubmissionRevisionRequested)
			action = models.AuditActionRequestRevision
		}

		rows, err := submissionRepo.ApplyReview(submission.ID, models.SubmissionPending, fields)
		if err != nil {
			return err
		}
		if rows == 0 {
			return models.ErrorStatus{Message: "submission is not pending review"}
		}

		if delta != 0 {
			if err := userRepo.AdjustReputation(submission.UserID, delta); err != nil {
				return err
			}
		}

		return auditRepo.Record(&models.AuditLog{
			ModeratorID: moderatorID,
			Action:      action,
			TargetType:  models.AuditTargetSubmission,
			TargetID:    submission.ID,
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

	s.logger.WithFields(logrus.Fields{
		"submission_id": submission.ID,
		"moderator_id":  moderatorID,
		"action":        string(req.Action),
	}).Info("submission reviewed")

	return result, nil
}

// validateReviewRequest runs before anything is read or written: an invalid
// action or a revision request without a note never reaches the database.
func validateReviewRequest(req models.ReviewRequest) error {
	switch req.Action {
	case models.ActionApprove, models.ActionReject:
		return nil
	case models.ActionRequestRevision:
		if req.Note == "" {
			return models.ErrorValidation{Message: "a note is required when requesting revision"}
		}
		return nil
	default:
		return models.ErrorValidation{Message: "unknown review action"}
	}
}
