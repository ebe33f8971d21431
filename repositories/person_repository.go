package repositories

import (
	"encyclo-cms/helper"
	"encyclo-cms/models"

	"gorm.io/gorm"
)

type PersonRepository interface {
	WithTx(tx *gorm.DB) PersonRepository
	Create(person *models.Person) error
	GetByID(id uint) (*models.Person, error)
	ExistsByURL(url string) (bool, error)
	FindSimilarURLs(slug string, limit int) ([]string, error)
	UpdatePhoto(id uint, path string) error
	CreateBiography(bio *models.Biography) error
	CreatePhotoRecord(photo *models.PhotoRecord) error
}

type personRepository struct {
	db    *gorm.DB
	codec *helper.LegacyCodec
}

func NewPersonRepository(db *gorm.DB, codec *helper.LegacyCodec) PersonRepository {
	return &personRepository{db: db, codec: codec}
}

func (r *personRepository) WithTx(tx *gorm.DB) PersonRepository {
	return &personRepository{db: tx, codec: r.codec}
}

func (r *personRepository) Create(person *models.Person) error {
	r.encodePerson(person)
	err := r.db.Create(person).Error
	r.decodePerson(person)
	return err
}

func (r *personRepository) GetByID(id uint) (*models.Person, error) {
	var person models.Person
	err := r.db.First(&person, id).Error
	if err == nil {
		r.decodePerson(&person)
	}
	return &person, err
}

func (r *personRepository) ExistsByURL(url string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Person{}).Where("url = ?", url).Count(&count).Error
	return count > 0, err
}

// FindSimilarURLs surfaces near-duplicate production URLs for human review.
// The result set is bounded; ordering by URL keeps the output stable.
func (r *personRepository) FindSimilarURLs(slug string, limit int) ([]string, error) {
	var urls []string
	err := r.db.Model(&models.Person{}).
		Where("url LIKE ?", "%"+slug+"%").
		Order("url asc").
		Limit(limit).
		Pluck("url", &urls).Error
	return urls, err
}

func (r *personRepository) UpdatePhoto(id uint, path string) error {
	return r.db.Model(&models.Person{}).Where("id = ?", id).Update("photo_path", path).Error
}

func (r *personRepository) CreateBiography(bio *models.Biography) error {
	bio.Title = r.codec.Encode(bio.Title)
	bio.Body = r.codec.Encode(bio.Body)
	bio.Epigraph = r.codec.Encode(bio.Epigraph)
	err := r.db.Create(bio).Error
	bio.Title = r.codec.Decode(bio.Title)
	bio.Body = r.codec.Decode(bio.Body)
	bio.Epigraph = r.codec.Decode(bio.Epigraph)
	return err
}

func (r *personRepository) CreatePhotoRecord(photo *models.PhotoRecord) error {
	return r.db.Create(photo).Error
}

// The persons and biographies tables predate the UTF-8 migration; text
// crosses the windows-1251 bridge at this edge and nowhere else.
func (r *personRepository) encodePerson(p *models.Person) {
	p.FirstNameRu = r.codec.Encode(p.FirstNameRu)
	p.LastNameRu = r.codec.Encode(p.LastNameRu)
	p.Epigraph = r.codec.Encode(p.Epigraph)
}

func (r *personRepository) decodePerson(p *models.Person) {
	p.FirstNameRu = r.codec.Decode(p.FirstNameRu)
	p.LastNameRu = r.codec.Decode(p.LastNameRu)
	p.Epigraph = r.codec.Decode(p.Epigraph)
}
