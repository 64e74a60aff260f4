package dto

// ContactRequest is the contact form payload.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=300"`
	Message string `json:"message" validate:"required,max=5000"`
}

// ContactResponse confirms receipt.
type ContactResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
