package validate

import "github.com/salvodev/portfolio-backend/models"

// CreateContactFormInput is the validated input shape of submitContactForm
type CreateContactFormInput struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Subject string `json:"subject" validate:"required,min=1,max=200"`
	Message string `json:"message" validate:"required,min=10,max=2000"`
}

func (in CreateContactFormInput) Validate() error {
	return Struct(in)
}

// Model builds the row to insert; replied always starts false
func (in CreateContactFormInput) Model() *models.ContactForm {
	return &models.ContactForm{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
		Replied: false,
	}
}
