// internal/services/notification_service.go
package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/bsfdc/film-portal-backend/internal/config"
	"github.com/bsfdc/film-portal-backend/internal/models"
)

// NotificationService sends lifecycle emails to applicants. Sends are
// fire-and-forget: a failed mail never fails the workflow action that
// triggered it.
type NotificationService struct {
	db     *gorm.DB
	config *config.Config
}

type EmailTemplate struct {
	Subject string
	Body    string
}

func NewNotificationService(db *gorm.DB, config *config.Config) *NotificationService {
	return &NotificationService{
		db:     db,
		config: config,
	}
}

// SendNOCForwardedNotification tells the applicant which districts and
// departments their application went to.
func (s *NotificationService) SendNOCForwardedNotification(application *models.NOCApplication) {
	districts := make([]string, 0, len(application.ForwardedDistricts))
	for _, d := range application.ForwardedDistricts {
		districts = append(districts, d.Name)
	}
	departments := make([]string, 0, len(application.ForwardedDepartments))
	for _, d := range application.ForwardedDepartments {
		departments = append(departments, d.Name)
	}

	data := map[string]interface{}{
		"ApplicantName": application.Applicant.Name,
		"ApplicationNo": application.ApplicationNo,
		"ProjectTitle":  application.ProjectTitle,
		"Districts":     strings.Join(districts, ", "),
		"Departments":   strings.Join(departments, ", "),
		"StatusURL":     fmt.Sprintf("%s/noc/applications/%s", s.config.Frontend.BaseURL, application.ID),
	}

	tmpl := s.getEmailTemplate("noc_forwarded")
	subject := "NOC Application Forwarded - " + application.ApplicationNo
	s.deliver(application.Applicant.Email, subject, tmpl.Body, data)
}

// SendNOCDecisionNotification tells the applicant the district's decision.
func (s *NotificationService) SendNOCDecisionNotification(application *models.NOCApplication) {
	data := map[string]interface{}{
		"ApplicantName": application.Applicant.Name,
		"ApplicationNo": application.ApplicationNo,
		"ProjectTitle":  application.ProjectTitle,
		"Remarks":       application.DistrictRemarks,
		"StatusURL":     fmt.Sprintf("%s/noc/applications/%s", s.config.Frontend.BaseURL, application.ID),
	}

	templateType := "noc_approved"
	subject := "NOC Application Approved - " + application.ApplicationNo
	if application.Status == models.NOCStatusRejected {
		templateType = "noc_rejected"
		subject = "NOC Application Rejected - " + application.ApplicationNo
	}

	tmpl := s.getEmailTemplate(templateType)
	s.deliver(application.Applicant.Email, subject, tmpl.Body, data)
}

// SendRegistrationReviewedNotification tells an applicant the outcome of
// their artist, producer or vendor registration.
func (s *NotificationService) SendRegistrationReviewedNotification(user *models.User, kind string, status models.RegistrationStatus, remarks string) {
	data := map[string]interface{}{
		"ApplicantName": user.Name,
		"Kind":          kind,
		"Status":        string(status),
		"Remarks":       remarks,
	}

	tmpl := s.getEmailTemplate("registration_reviewed")
	subject := fmt.Sprintf("Registration %s - Bihar Film Cell", strings.Title(string(status)))
	s.deliver(user.Email, subject, tmpl.Body, data)
}

func (s *NotificationService) deliver(to, subject, templateStr string, data interface{}) {
	body, err := s.renderTemplate(templateStr, data)
	if err != nil {
		logrus.WithError(err).Error("Failed to render notification email")
		return
	}

	if err := s.sendEmail(to, subject, body); err != nil {
		logrus.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
		}).WithError(err).Error("Failed to send notification email")
	}
}

func (s *NotificationService) sendEmail(to, subject, body string) error {
	if s.config.Email.SMTPHost == "" {
		logrus.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
		}).Info("SMTP not configured, skipping email")
		return nil
	}

	auth := smtp.PlainAuth("", s.config.Email.SMTPUsername, s.config.Email.SMTPPassword, s.config.Email.SMTPHost)

	msg := []byte(fmt.Sprintf("To: %s\r\nSubject: %s\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s", to, subject, body))

	addr := fmt.Sprintf("%s:%s", s.config.Email.SMTPHost, s.config.Email.SMTPPort)
	return smtp.SendMail(addr, auth, s.config.Email.FromEmail, []string{to}, msg)
}

func (s *NotificationService) renderTemplate(templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New("email").Parse(templateStr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (s *NotificationService) getEmailTemplate(templateType string) EmailTemplate {
	templates := map[string]EmailTemplate{
		"noc_forwarded": {
			Subject: "NOC Application Forwarded",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>Application Forwarded</h2>
	<p>Dear {{.ApplicantName}},</p>
	<p>Your NOC application <b>{{.ApplicationNo}}</b> for "{{.ProjectTitle}}" has been reviewed and forwarded for district clearance.</p>
	{{if .Districts}}<p>Districts: {{.Districts}}</p>{{end}}
	{{if .Departments}}<p>Departments: {{.Departments}}</p>{{end}}
	<a href="{{.StatusURL}}">Track Application</a>
	<p>Regards,<br>Bihar Film Cell</p>
</body>
</html>`,
		},
		"noc_approved": {
			Subject: "NOC Application Approved",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>Application Approved</h2>
	<p>Dear {{.ApplicantName}},</p>
	<p>Your NOC application <b>{{.ApplicationNo}}</b> for "{{.ProjectTitle}}" has been approved.</p>
	{{if .Remarks}}<p>Remarks: {{.Remarks}}</p>{{end}}
	<a href="{{.StatusURL}}">View Certificate</a>
	<p>Regards,<br>Bihar Film Cell</p>
</body>
</html>`,
		},
		"noc_rejected": {
			Subject: "NOC Application Rejected",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>Application Rejected</h2>
	<p>Dear {{.ApplicantName}},</p>
	<p>Your NOC application <b>{{.ApplicationNo}}</b> for "{{.ProjectTitle}}" has been rejected.</p>
	{{if .Remarks}}<p>Remarks: {{.Remarks}}</p>{{end}}
	<a href="{{.StatusURL}}">View Details</a>
	<p>Regards,<br>Bihar Film Cell</p>
</body>
</html>`,
		},
		"registration_reviewed": {
			Subject: "Registration Reviewed",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<p>Dear {{.ApplicantName}},</p>
	<p>Your {{.Kind}} registration has been {{.Status}}.</p>
	{{if .Remarks}}<p>Remarks: {{.Remarks}}</p>{{end}}
	<p>Regards,<br>Bihar Film Cell</p>
</body>
</html>`,
		},
	}

	if tmpl, exists := templates[templateType]; exists {
		return tmpl
	}

	return EmailTemplate{
		Subject: "Notification",
		Body:    "<p>{{.Message}}</p>",
	}
}
