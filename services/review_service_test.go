package services

import (
	"testing"

	"encyclo-cms/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateReviewRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     models.ReviewRequest
		wantErr bool
	}{
		{"approve without note", models.ReviewRequest{Action: models.ActionApprove}, false},
		{"approve with note", models.ReviewRequest{Action: models.ActionApprove, Note: "good"}, false},
		{"reject without note", models.ReviewRequest{Action: models.ActionReject}, false},
		{"revision with note", models.ReviewRequest{Action: models.ActionRequestRevision, Note: "fix the dates"}, false},
		{"revision without note", models.ReviewRequest{Action: models.ActionRequestRevision}, true},
		{"unknown action", models.ReviewRequest{Action: "publish"}, true},
		{"empty action", models.ReviewRequest{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateReviewRequest(tt.req)
			if tt.wantErr {
				assert.IsType(t, models.ErrorValidation{}, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Validation runs before any repository access, so an invalid request must
// fail even on a service with no wired dependencies.
func TestReviewValidatesBeforeAnyRead(t *testing.T) {
	s := &reviewService{}

	_, err := s.Review(1, 2, models.ReviewRequest{Action: models.ActionRequestRevision})
	assert.IsType(t, models.ErrorValidation{}, err)

	_, err = s.Review(1, 2, models.ReviewRequest{Action: "delete"})
	assert.IsType(t, models.ErrorValidation{}, err)
}
