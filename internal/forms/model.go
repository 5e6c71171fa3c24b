package forms

import (
	"strings"
	"time"
)

// ContactMessage is a contact-form submission.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateContactRequest is the POST /api/contact body.
type CreateContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate returns field problems; empty means valid.
func (r *CreateContactRequest) Validate() []string {
	var problems []string
	if strings.TrimSpace(r.Name) == "" {
		problems = append(problems, "name is required")
	}
	if !validEmail(r.Email) {
		problems = append(problems, "a valid email is required")
	}
	if strings.TrimSpace(r.Subject) == "" {
		problems = append(problems, "subject is required")
	}
	if strings.TrimSpace(r.Message) == "" {
		problems = append(problems, "message is required")
	}
	return problems
}

// EmailSignup is a newsletter subscription. Emails are unique; repeat
// signups are acknowledged rather than rejected.
type EmailSignup struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateSignupRequest is the POST /api/email-signup body.
type CreateSignupRequest struct {
	Email string `json:"email"`
}

func (r *CreateSignupRequest) Validate() []string {
	if !validEmail(r.Email) {
		return []string{"a valid email is required"}
	}
	return nil
}

// ClientIntake is the longer new-client questionnaire.
type ClientIntake struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	BusinessType    string    `json:"businessType"`
	CurrentTools    string    `json:"currentTools"`
	MainStruggles   string    `json:"mainStruggles"`
	ProjectTimeline string    `json:"projectTimeline"`
	Budget          string    `json:"budget"`
	AdditionalInfo  string    `json:"additionalInfo"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CreateIntakeRequest is the POST /api/client-intake body.
type CreateIntakeRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	BusinessType    string `json:"businessType"`
	CurrentTools    string `json:"currentTools"`
	MainStruggles   string `json:"mainStruggles"`
	ProjectTimeline string `json:"projectTimeline"`
	Budget          string `json:"budget"`
	AdditionalInfo  string `json:"additionalInfo"`
}

func (r *CreateIntakeRequest) Validate() []string {
	var problems []string
	if strings.TrimSpace(r.Name) == "" {
		problems = append(problems, "name is required")
	}
	if !validEmail(r.Email) {
		problems = append(problems, "a valid email is required")
	}
	if strings.TrimSpace(r.BusinessType) == "" {
		problems = append(problems, "businessType is required")
	}
	if strings.TrimSpace(r.MainStruggles) == "" {
		problems = append(problems, "mainStruggles is required")
	}
	return problems
}

// validEmail is a cheap shape check, not RFC validation; the form is the
// first line of defense, not the last.
func validEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	return at > 0 && strings.Contains(email[at+1:], ".")
}
