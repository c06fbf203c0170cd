package booking

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"
	"go.uber.org/zap"
)

// NewInquiry builds the outbound payload from a validated submission. The
// phone is normalized to E.164 when it parses for the given region; the raw
// trimmed value is kept otherwise so nothing the visitor typed is lost.
func NewInquiry(in FormInput, region string) Inquiry {
	return Inquiry{
		ID:          uuid.NewString(),
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		Email:       strings.TrimSpace(in.Email),
		Phone:       normalizePhone(in.Phone, region),
		Date:        strings.TrimSpace(in.Date),
		ServiceType: strings.TrimSpace(in.ServiceType),
		Message:     strings.TrimSpace(in.Message),
		ReceivedAt:  time.Now(),
	}
}

func normalizePhone(raw, region string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return trimmed
	}
	number, err := phonenumbers.Parse(trimmed, region)
	if err != nil {
		return trimmed
	}
	if !phonenumbers.IsValidNumber(number) {
		return trimmed
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}

// LogDispatcher is the simulated submission target: it records the inquiry
// and succeeds. A real implementation would POST somewhere and would need a
// failure branch with retry policy; the page never defined one.
type LogDispatcher struct {
	log *zap.Logger
}

func NewLogDispatcher(log *zap.Logger) *LogDispatcher {
	return &LogDispatcher{log: log}
}

func (d *LogDispatcher) Dispatch(_ context.Context, inq Inquiry) error {
	d.log.Info("booking inquiry received",
		zap.String("inquiry_id", inq.ID),
		zap.String("name", inq.FirstName+" "+inq.LastName),
		zap.String("email", inq.Email),
		zap.String("phone", inq.Phone),
		zap.String("date", inq.Date),
		zap.String("service_type", inq.ServiceType),
	)
	return nil
}
