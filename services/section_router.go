package services

import (
	"regexp"

	"encyclo-cms/helper"
	"encyclo-cms/models"
	"encyclo-cms/repositories"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Reputation awarded to the submitter on approval. Biography content scores
// higher than the generic sections.
const (
	ReputationBiographyApprove = 7
	ReputationGenericApprove   = 3
	ReputationReject           = -2
)

// genericTableRe allow-lists table names taken from the sections
// configuration. Nothing from request input ever reaches the SQL text.
var genericTableRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// SectionRouter maps a section to its production insert. Known sections get
// bespoke records; anything else goes through the generic insert driven by
// the section's configured table name.
type SectionRouter struct {
	personRepo repositories.PersonRepository
	logger     *logrus.Logger
}

func NewSectionRouter(personRepo repositories.PersonRepository, logger *logrus.Logger) *SectionRouter {
	return &SectionRouter{personRepo: personRepo, logger: logger}
}

// Route inserts the production record for an approved submission and returns
// the new record id. It runs inside the review transaction; errors from the
// bespoke inserts abort the review, the generic fallback does not (see
// the insertGeneric comment).
func (sr *SectionRouter) Route(tx *gorm.DB, section *models.Section, sub *models.Submission) (*uint, error) {
	switch section.Key {
	case models.SectionBiography:
		bio := &models.Biography{
			PersonID: sub.PersonID,
			UserID:   sub.UserID,
			Title:    sub.Title,
			Slug:     helper.Slugify(sub.Title),
			Body:     sub.Body,
			Epigraph: sub.Epigraph,
		}
		// Biographies cross the windows-1251 bridge; the repository owns
		// that edge, so the insert goes through it on every write path.
		if err := sr.personRepo.WithTx(tx).CreateBiography(bio); err != nil {
			return nil, err
		}
		return &bio.ID, nil

	case models.SectionNews:
		item := &models.NewsItem{UserID: sub.UserID, Title: sub.Title, Body: sub.Body}
		if err := tx.Create(item).Error; err != nil {
			return nil, err
		}
		return &item.ID, nil

	case models.SectionPhoto:
		photo := &models.PhotoRecord{
			PersonID: sub.PersonID,
			UserID:   sub.UserID,
			Title:    sub.Title,
			Path:     sub.PhotoPath,
		}
		if err := tx.Create(photo).Error; err != nil {
			return nil, err
		}
		return &photo.ID, nil

	case models.SectionForum:
		post := &models.ForumPost{
			UserID:   sub.UserID,
			PersonID: sub.PersonID,
			Title:    sub.Title,
			Body:     sub.Body,
		}
		if err := tx.Create(post).Error; err != nil {
			return nil, err
		}
		return &post.ID, nil

	case models.SectionSong:
		song := &models.Song{PersonID: sub.PersonID, UserID: sub.UserID, Title: sub.Title, Body: sub.Body}
		if err := tx.Create(song).Error; err != nil {
			return nil, err
		}
		return &song.ID, nil

	case models.SectionFact:
		fact := &models.Fact{PersonID: sub.PersonID, UserID: sub.UserID, Body: sub.Body}
		if err := tx.Create(fact).Error; err != nil {
			return nil, err
		}
		return &fact.ID, nil

	case models.SectionPoem:
		poem := &models.Poem{PersonID: sub.PersonID, UserID: sub.UserID, Title: sub.Title, Body: sub.Body}
		if err := tx.Create(poem).Error; err != nil {
			return nil, err
		}
		return &poem.ID, nil

	default:
		return sr.insertGeneric(tx, section, sub), nil
	}
}

// ReputationDelta returns the approval bonus for a section.
func (sr *SectionRouter) ReputationDelta(section *models.Section) int {
	if section.Key == models.SectionBiography {
		return ReputationBiographyApprove
	}
	return ReputationGenericApprove
}

// insertGeneric writes (user_id, title, body, created_at) into the section's
// configured table. A failed insert does not abort the review: the approval
// commits without a production id and the failure is logged. Section tables
// whose shape drifted from the configuration would otherwise block the whole
// moderation queue.
func (sr *SectionRouter) insertGeneric(tx *gorm.DB, section *models.Section, sub *models.Submission) *uint {
	if !genericTableRe.MatchString(section.TableName) {
		sr.logger.WithFields(logrus.Fields{
			"section": section.Key,
			"table":   section.TableName,
		}).Warn("generic section table name rejected by allow-list")
		return nil
	}

	// Savepoint so a failed insert does not poison the review transaction.
	tx.SavePoint("generic_insert")

	var id uint
	err := tx.Raw(
		"INSERT INTO "+section.TableName+" (user_id, title, body, created_at) VALUES (?, ?, ?, NOW()) RETURNING id",
		sub.UserID, sub.Title, sub.Body,
	).Scan(&id).Error
	if err != nil {
		tx.RollbackTo("generic_insert")
		sr.logger.WithFields(logrus.Fields{
			"section":       section.Key,
			"table":         section.TableName,
			"submission_id": sub.ID,
		}).WithError(err).Warn("generic production insert failed, approving without record id")
		return nil
	}

	return &id
}
