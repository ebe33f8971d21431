package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"encyclo-cms/config"
	"encyclo-cms/handlers"
	"encyclo-cms/helper"
	"encyclo-cms/middleware"
	"encyclo-cms/models"
	"encyclo-cms/repositories"
	"encyclo-cms/services"
)

type IntegrationTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
	token  string
	userID uint
}

func TestIntegrationSuite(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5432 user=postgres password=postgres dbname=encyclo_test_db sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Skip("postgres not available: ", err)
	}
	sqlDB, err := db.DB()
	if err != nil || sqlDB.Ping() != nil {
		t.Skip("postgres not reachable")
	}

	suite.Run(t, &IntegrationTestSuite{db: db})
}

func (suite *IntegrationTestSuite) SetupSuite() {
	if err := RunSQLFile(suite.db, "../migration/init.sql"); err != nil {
		suite.T().Fatal("Failed to apply schema: ", err)
	}
	suite.setupRouter()
}

func (suite *IntegrationTestSuite) setupRouter() {
	gin.SetMode(gin.TestMode)

	logger := config.InitLogger()
	codec := helper.NewLegacyCodec(false)

	userRepo := repositories.NewUserRepository(suite.db)
	submissionRepo := repositories.NewSubmissionRepository(suite.db)
	suggestionRepo := repositories.NewSuggestionRepository(suite.db)
	personRepo := repositories.NewPersonRepository(suite.db, codec)
	sectionRepo := repositories.NewSectionRepository(suite.db)
	auditRepo := repositories.NewAuditRepository(suite.db)

	authService := services.NewAuthService(userRepo)
	sectionRouter := services.NewSectionRouter(personRepo, logger)
	fileMover := services.NewLocalFileMover(suite.T().TempDir())
	reviewService := services.NewReviewService(suite.db, submissionRepo, sectionRepo, userRepo, auditRepo, sectionRouter, logger)
	personService := services.NewPersonService(suite.db, suggestionRepo, personRepo, sectionRepo, userRepo, auditRepo, fileMover, logger)

	authHandler := handlers.NewAuthHandler(authService)
	submissionHandler := handlers.NewSubmissionHandler(reviewService)
	personHandler := handlers.NewPersonHandler(personService)
	auditHandler := handlers.NewAuditHandler(auditRepo)

	router := gin.New()

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", authHandler.GetProfile)

			submissions := protected.Group("/submissions")
			{
				submissions.POST("", submissionHandler.CreateSubmission)
				submissions.POST("/:id/submit", submissionHandler.SubmitSubmission)
				submissions.GET("", submissionHandler.GetSubmissions)
				submissions.GET("/:id", submissionHandler.GetSubmission)
			}

			suggestions := protected.Group("/suggestions")
			{
				suggestions.POST("", personHandler.CreateSuggestion)
				suggestions.GET("", personHandler.GetSuggestions)
				suggestions.GET("/:id", personHandler.GetSuggestion)
			}

			moderation := protected.Group("/moderation")
			moderation.Use(middleware.RequireRole(string(models.RoleModerator), string(models.RoleAdmin)))
			{
				moderation.GET("/submissions", submissionHandler.GetPendingSubmissions)
				moderation.PUT("/submissions/:id", submissionHandler.ReviewSubmission)
				moderation.GET("/suggestions", personHandler.GetPendingSuggestions)
				moderation.PUT("/suggestions/:id", personHandler.ReviewSuggestion)
			}

			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(string(models.RoleAdmin)))
			{
				admin.GET("/suggestions/:id/slug", personHandler.PreviewSlug)
				admin.POST("/suggestions/:id/publish", personHandler.PublishSuggestion)
				admin.GET("/audit", auditHandler.GetAuditLog)
			}
		}
	}

	suite.router = router
}

func (suite *IntegrationTestSuite) SetupTest() {
	tables := []string{
		"audit_log", "biographies", "photo_records", "news_items", "forum_posts",
		"songs", "facts", "poems", "misc_items", "persons",
		"person_suggestions", "submissions", "users",
	}
	for _, table := range tables {
		suite.db.Exec("TRUNCATE TABLE " + table + " RESTART IDENTITY CASCADE")
	}

	suite.registerAndLoginTestUser()
}

func (suite *IntegrationTestSuite) registerAndLoginTestUser() {
	registerPayload := models.RegisterRequest{
		Username: "testadmin",
		Email:    "admin@example.com",
		Password: "password123",
		Role:     models.RoleAdmin,
	}

	body, _ := json.Marshal(registerPayload)
	req := httptest.NewRequest("POST", "/api/v1/auth/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	type RegisterResponse struct {
		Code        int                 `json:"code"`
		CodeMessage string              `json:"code_message"`
		CodeType    string              `json:"code_type"`
		Data        models.AuthResponse `json:"data"`
	}

	var registerResponse RegisterResponse
	err := json.Unmarshal(w.Body.Bytes(), &registerResponse)
	suite.NoError(err)

	suite.token = registerResponse.Data.Token
	suite.userID = registerResponse.Data.User.ID
}

func (suite *IntegrationTestSuite) doJSON(method, url string, payload interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if payload != nil {
		body, _ := json.Marshal(payload)
		reqBody = bytes.NewBuffer(body)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, url, reqBody)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.token)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *IntegrationTestSuite) sectionID(key string) uint {
	var section models.Section
	suite.NoError(suite.db.Where("key = ?", key).First(&section).Error)
	return section.ID
}

func (suite *IntegrationTestSuite) createPendingSubmission(sectionKey, title string) models.Submission {
	w := suite.doJSON("POST", "/api/v1/submissions", models.CreateSubmissionRequest{
		SectionID: suite.sectionID(sectionKey),
		Title:     title,
		Body:      "Submission body text.",
	})
	suite.Equal(http.StatusCreated, w.Code)

	var submission models.Submission
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &submission))

	w = suite.doJSON("POST", fmt.Sprintf("/api/v1/submissions/%d/submit", submission.ID), nil)
	suite.Equal(http.StatusOK, w.Code)

	return submission
}

func (suite *IntegrationTestSuite) reputation() int {
	var user models.User
	suite.NoError(suite.db.First(&user, suite.userID).Error)
	return user.Reputation
}

func (suite *IntegrationTestSuite) TestApproveBiographySubmission() {
	submission := suite.createPendingSubmission("biography", "Моя История")

	w := suite.doJSON("PUT", fmt.Sprintf("/api/v1/moderation/submissions/%d", submission.ID),
		models.ReviewRequest{Action: models.ActionApprove, Note: "well sourced"})
	suite.Equal(http.StatusOK, w.Code)

	var result models.ReviewResult
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &result))
	suite.Equal("pending", result.OldStatus)
	suite.Equal("approved", result.NewStatus)
	suite.NotNil(result.PublishedRecordID)

	var bio models.Biography
	suite.NoError(suite.db.First(&bio, *result.PublishedRecordID).Error)
	suite.Equal("moya-istoriya", bio.Slug)
	suite.Equal("Моя История", bio.Title)

	suite.Equal(services.ReputationBiographyApprove, suite.reputation())

	var entries []models.AuditLog
	suite.NoError(suite.db.Find(&entries).Error)
	suite.Len(entries, 1)
	suite.Equal(models.AuditActionApprove, entries[0].Action)
	suite.Equal(models.AuditTargetSubmission, entries[0].TargetType)
}

func (suite *IntegrationTestSuite) TestReviewNonPendingSubmission() {
	submission := suite.createPendingSubmission("news", "Some News")

	w := suite.doJSON("PUT", fmt.Sprintf("/api/v1/moderation/submissions/%d", submission.ID),
		models.ReviewRequest{Action: models.ActionApprove})
	suite.Equal(http.StatusOK, w.Code)

	// Second review of the same item hits the status precondition.
	w = suite.doJSON("PUT", fmt.Sprintf("/api/v1/moderation/submissions/%d", submission.ID),
		models.ReviewRequest{Action: models.ActionReject})
	suite.Equal(http.StatusConflict, w.Code)

	var entries []models.AuditLog
	suite.NoError(suite.db.Find(&entries).Error)
	suite.Len(entries, 1)
}

func (suite *IntegrationTestSuite) TestRevisionRequiresNote() {
	submission := suite.createPendingSubmission("news", "Needs Work")

	w := suite.doJSON("PUT", fmt.Sprintf("/api/v1/moderation/submissions/%d", submission.ID),
		models.ReviewRequest{Action: models.ActionRequestRevision})
	suite.Equal(http.StatusBadRequest, w.Code)

	var count int64
	suite.db.Model(&models.AuditLog{}).Count(&count)
	suite.Equal(int64(0), count)

	var reloaded models.Submission
	suite.NoError(suite.db.First(&reloaded, submission.ID).Error)
	suite.Equal(models.SubmissionPending, reloaded.Status)
}

// A generic section whose configured table does not exist still approves:
// the production insert rolls back to its savepoint, the approval commits
// without a record id, and the audit entry is written.
func (suite *IntegrationTestSuite) TestApproveGenericSectionWithMissingTable() {
	suite.NoError(suite.db.Exec(
		"INSERT INTO sections (key, name, path, table_name) VALUES ('guestbook', 'Guestbook', '/guestbook/', 'guestbook_entries') ON CONFLICT (key) DO NOTHING",
	).Error)

	submission := suite.createPendingSubmission("guestbook", "Hello")

	w := suite.doJSON("PUT", fmt.Sprintf("/api/v1/moderation/submissions/%d", submission.ID),
		models.ReviewRequest{Action: models.ActionApprove})
	suite.Equal(http.StatusOK, w.Code)

	var result models.ReviewResult
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &result))
	suite.Equal("approved", result.NewStatus)
	suite.Nil(result.PublishedRecordID)

	var reloaded models.Submission
	suite.NoError(suite.db.First(&reloaded, submission.ID).Error)
	suite.Equal(models.SubmissionApproved, reloaded.Status)
	suite.Nil(reloaded.PublishedRecordID)

	suite.Equal(services.ReputationGenericApprove, suite.reputation())

	var entries []models.AuditLog
	suite.NoError(suite.db.Find(&entries).Error)
	suite.Len(entries, 1)
	suite.Equal(models.AuditActionApprove, entries[0].Action)
}

func (suite *IntegrationTestSuite) TestRejectFloorsReputation() {
	first := suite.createPendingSubmission("news", "First")
	second := suite.createPendingSubmission("news", "Second")

	for _, id := range []uint{first.ID, second.ID} {
		w := suite.doJSON("PUT", fmt.Sprintf("/api/v1/moderation/submissions/%d", id),
			models.ReviewRequest{Action: models.ActionReject, Note: "off topic"})
		suite.Equal(http.StatusOK, w.Code)
	}

	// Two rejections against a zero score stay floored at zero.
	suite.Equal(0, suite.reputation())
}

func (suite *IntegrationTestSuite) createApprovedSuggestion() models.PersonSuggestion {
	w := suite.doJSON("POST", "/api/v1/suggestions", models.CreateSuggestionRequest{
		FirstNameRu: "Иван",
		LastNameRu:  "Иванов",
		Biography:   "# Жизнь\n\nРодился в **1900** году.\n\n> Цитата",
		Rank:        "Композитор",
	})
	suite.Equal(http.StatusCreated, w.Code)

	var suggestion models.PersonSuggestion
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &suggestion))

	w = suite.doJSON("PUT", fmt.Sprintf("/api/v1/moderation/suggestions/%d", suggestion.ID),
		models.ReviewRequest{Action: models.ActionApprove})
	suite.Equal(http.StatusOK, w.Code)

	return suggestion
}

func (suite *IntegrationTestSuite) TestPublishSuggestionWithCustomSlug() {
	suggestion := suite.createApprovedSuggestion()

	w := suite.doJSON("POST", fmt.Sprintf("/api/v1/admin/suggestions/%d/publish", suggestion.ID),
		models.PublishRequest{StructureID: suite.sectionID("biography"), Slug: "custom-name"})
	suite.Equal(http.StatusOK, w.Code)

	var result models.PublishResult
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &result))
	suite.Equal("published", result.NewStatus)
	suite.True(strings.HasSuffix(result.URL, "/custom-name/"))

	var person models.Person
	suite.NoError(suite.db.First(&person, result.PersonID).Error)
	suite.Equal(result.URL, person.URL)
	suite.True(person.Moderated)
	suite.Equal("Композитор", person.Epigraph)

	var reloaded models.PersonSuggestion
	suite.NoError(suite.db.First(&reloaded, suggestion.ID).Error)
	suite.Equal(models.SuggestionPublished, reloaded.Status)
	suite.NotNil(reloaded.PersonID)

	var bio models.Biography
	suite.NoError(suite.db.Where("person_id = ?", person.ID).First(&bio).Error)
	suite.Contains(bio.Body, "<h1>")
	suite.Contains(bio.Body, "<strong>1900</strong>")
	suite.Contains(bio.Body, "<blockquote>")

	// Approve bonus plus publish bonus.
	suite.Equal(services.ReputationSuggestionApprove+services.ReputationPublishBonus, suite.reputation())

	// Publishing twice creates exactly one person.
	w = suite.doJSON("POST", fmt.Sprintf("/api/v1/admin/suggestions/%d/publish", suggestion.ID),
		models.PublishRequest{StructureID: suite.sectionID("biography"), Slug: "custom-name"})
	suite.Equal(http.StatusConflict, w.Code)

	var personCount int64
	suite.db.Model(&models.Person{}).Count(&personCount)
	suite.Equal(int64(1), personCount)
}

func (suite *IntegrationTestSuite) TestSlugPreviewReportsConflict() {
	suggestion := suite.createApprovedSuggestion()
	structureID := suite.sectionID("biography")

	w := suite.doJSON("POST", fmt.Sprintf("/api/v1/admin/suggestions/%d/publish", suggestion.ID),
		models.PublishRequest{StructureID: structureID})
	suite.Equal(http.StatusOK, w.Code)

	// A second suggestion with the same name previews to a conflict.
	second := suite.createApprovedSuggestion()
	w = suite.doJSON("GET",
		fmt.Sprintf("/api/v1/admin/suggestions/%d/slug?structure_id=%d", second.ID, structureID), nil)
	suite.Equal(http.StatusOK, w.Code)

	var preview models.SlugPreview
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &preview))
	suite.Equal("ivanov-ivan", preview.Slug)
	suite.True(preview.ExactMatch)
	suite.Equal("ivanov-ivan-2", preview.Suggested)

	// Publishing the second suggestion without picking a new slug fails
	// before any write.
	w = suite.doJSON("POST", fmt.Sprintf("/api/v1/admin/suggestions/%d/publish", second.ID),
		models.PublishRequest{StructureID: structureID})
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.doJSON("POST", fmt.Sprintf("/api/v1/admin/suggestions/%d/publish", second.ID),
		models.PublishRequest{StructureID: structureID, Slug: preview.Suggested})
	suite.Equal(http.StatusOK, w.Code)
}

func RunSQLFile(db *gorm.DB, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	for _, stmt := range strings.Split(string(content), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
