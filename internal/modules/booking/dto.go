package booking

import "time"

// FormInput is the value record read from the booking form on each submit
// attempt. It carries raw field values; Validate decides what they mean.
type FormInput struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Date        string // calendar date, "2006-01-02"
	ServiceType string
	Message     string

	// Honeypot holds whatever ended up in the hidden spam-trap field.
	// Legitimate visitors never see the field, so any value means a bot.
	Honeypot string
}

// FromValues builds a FormInput from form-control values keyed by element
// id. The honeypot field id varies between page versions, so it is passed
// in rather than hardcoded.
func FromValues(values map[string]string, honeypotField string) FormInput {
	return FormInput{
		FirstName:   values["firstName"],
		LastName:    values["lastName"],
		Email:       values["email"],
		Phone:       values["phone"],
		Date:        values["date"],
		ServiceType: values["serviceType"],
		Message:     values["message"],
		Honeypot:    values[honeypotField],
	}
}

// Inquiry is the payload a real transport would carry. The simulated
// dispatcher only logs it, but the shape is what an endpoint would receive.
type Inquiry struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"` // E.164 when parseable
	Date        string    `json:"date"`
	ServiceType string    `json:"service_type"`
	Message     string    `json:"message,omitempty"`
	ReceivedAt  time.Time `json:"received_at"`
}
