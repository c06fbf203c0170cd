package booking

import (
	"regexp"
	"strings"
	"time"
)

// Reason identifies the first rule a submission violated.
type Reason string

const (
	ReasonSpam         Reason = "spam"
	ReasonMissingField Reason = "missing_field"
	ReasonBadEmail     Reason = "bad_email"
	ReasonBadPhone     Reason = "bad_phone"
	ReasonPastDate     Reason = "past_date"
)

// Result is the accept/reject decision for one submit attempt. Only the
// first violated rule is reported, never a list.
type Result struct {
	Valid  bool
	Reason Reason
	Field  string // set for ReasonMissingField
}

var (
	// local@domain.tld shape: no whitespace, no second @ on either side.
	emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Characters a strictly-validated phone may contain.
	phoneCharset = regexp.MustCompile(`^[0-9+\-() ]*$`)

	nonDigits = regexp.MustCompile(`\D`)
)

const minPhoneDigits = 10

// Validator applies the booking-form rules in a fixed order, stopping at
// the first failure. It is pure: no surface writes, no timers.
type Validator struct {
	strictPhone bool
	now         func() time.Time
}

// NewValidator creates a validator. strictPhone additionally rejects phone
// values containing characters outside digits, "+", "-", "(", ")" and
// space before counting digits.
func NewValidator(strictPhone bool) *Validator {
	return &Validator{strictPhone: strictPhone, now: time.Now}
}

// requiredFields in reporting order.
var requiredFields = []struct {
	name  string
	value func(FormInput) string
}{
	{"firstName", func(in FormInput) string { return in.FirstName }},
	{"lastName", func(in FormInput) string { return in.LastName }},
	{"email", func(in FormInput) string { return in.Email }},
	{"phone", func(in FormInput) string { return in.Phone }},
	{"date", func(in FormInput) string { return in.Date }},
	{"serviceType", func(in FormInput) string { return in.ServiceType }},
}

// Validate checks honeypot, required fields, email shape, phone shape and
// date in that order. Message is optional and never checked.
func (v *Validator) Validate(in FormInput) Result {
	if strings.TrimSpace(in.Honeypot) != "" {
		return Result{Reason: ReasonSpam}
	}

	for _, f := range requiredFields {
		if strings.TrimSpace(f.value(in)) == "" {
			return Result{Reason: ReasonMissingField, Field: f.name}
		}
	}

	if !emailShape.MatchString(strings.TrimSpace(in.Email)) {
		return Result{Reason: ReasonBadEmail}
	}

	phone := strings.TrimSpace(in.Phone)
	if v.strictPhone && !phoneCharset.MatchString(phone) {
		return Result{Reason: ReasonBadPhone}
	}
	if len(nonDigits.ReplaceAllString(phone, "")) < minPhoneDigits {
		return Result{Reason: ReasonBadPhone}
	}

	if v.dateInPast(strings.TrimSpace(in.Date)) {
		return Result{Reason: ReasonPastDate}
	}

	return Result{Valid: true}
}

// dateInPast reports whether the value is before today's local midnight.
// Today counts as valid; an unparseable value is rejected the same way.
func (v *Validator) dateInPast(value string) bool {
	parsed, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return true
	}
	now := v.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	return parsed.Before(today)
}
