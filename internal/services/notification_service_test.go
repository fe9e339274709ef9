// internal/services/notification_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bsfdc/film-portal-backend/internal/config"
	"github.com/bsfdc/film-portal-backend/internal/models"
)

func TestRegistrationReviewedEmailRenders(t *testing.T) {
	svc := NewNotificationService(nil, &config.Config{})

	tmpl := svc.getEmailTemplate("registration_reviewed")
	body, err := svc.renderTemplate(tmpl.Body, map[string]interface{}{
		"ApplicantName": "Asha Kumari",
		"Kind":          "artist",
		"Status":        "approved",
		"Remarks":       "Empanelled for folk performances",
	})

	assert.NoError(t, err)
	assert.Contains(t, body, "Asha Kumari")
	assert.Contains(t, body, "approved")
	assert.Contains(t, body, "Empanelled for folk performances")
}

func TestRegistrationKindOf(t *testing.T) {
	assert.Equal(t, "artist", registrationKindOf(&models.ArtistProfile{}))
	assert.Equal(t, "producer", registrationKindOf(&models.ProducerProfile{}))
	assert.Equal(t, "vendor", registrationKindOf(&models.VendorProfile{}))
	assert.Equal(t, "registration", registrationKindOf(nil))
}

func TestRegistrationUserIDOf(t *testing.T) {
	artist := &models.ArtistProfile{}
	artist.UserID = uuid.MustParse("2c9f9f6e-95d7-4f2f-9a36-8a3f3a6a9d01")

	assert.Equal(t, artist.UserID, registrationUserIDOf(artist))
	assert.Equal(t, uuid.Nil, registrationUserIDOf(nil))
}
