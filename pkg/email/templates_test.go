package email

import (
	"strings"
	"testing"
	"time"
)

func sampleData() AppointmentEmailData {
	return AppointmentEmailData{
		PatientFirstName: "Wanjiru",
		Email:            "wanjiru@example.com",
		AppointmentID:    "APT2026080012",
		DoctorName:       "Dr. Achieng Odhiambo",
		ServiceName:      "Acne Consultation",
		StartTime:        time.Date(2026, 8, 14, 10, 30, 0, 0, time.UTC),
		DurationMin:      30,
		Location:         "Argwings Kodhek Rd, Nairobi",
		ClinicName:       "DermaCare",
		ClinicPhone:      "+254 20 123 4567",
	}
}

func TestBuildAppointmentConfirmationEmail(t *testing.T) {
	m := BuildAppointmentConfirmationEmail(sampleData())

	if len(m.To) != 1 || m.To[0] != "wanjiru@example.com" {
		t.Fatalf("To = %v", m.To)
	}
	if !strings.Contains(m.Subject, "APT2026080012") {
		t.Errorf("subject missing appointment id: %q", m.Subject)
	}
	for _, want := range []string{"Wanjiru", "Dr. Achieng Odhiambo", "Acne Consultation", "30 minutes", "Argwings Kodhek Rd, Nairobi"} {
		if !strings.Contains(m.TextBody, want) {
			t.Errorf("text body missing %q", want)
		}
		if !strings.Contains(m.HTMLBody, want) {
			t.Errorf("html body missing %q", want)
		}
	}
}

func TestBuildAppointmentConfirmationEmailVirtual(t *testing.T) {
	data := sampleData()
	data.MeetingLink = "https://meet.example.com/abc"

	m := BuildAppointmentConfirmationEmail(data)

	if !strings.Contains(m.TextBody, "https://meet.example.com/abc") {
		t.Error("meeting link not in body")
	}
	if strings.Contains(m.TextBody, "Argwings Kodhek") {
		t.Error("physical address should be replaced by the meeting link")
	}
}

func TestBuildAppointmentEmailFallbacks(t *testing.T) {
	m := BuildAppointmentConfirmationEmail(AppointmentEmailData{Email: "x@example.com"})

	if !strings.Contains(m.TextBody, "Hi there,") {
		t.Error("missing first-name fallback")
	}
	if !strings.Contains(m.TextBody, "DermaCare Clinic") {
		t.Error("missing clinic-name fallback")
	}
}

func TestBuildAppointmentCancellationEmailReason(t *testing.T) {
	m := BuildAppointmentCancellationEmail(sampleData(), "doctor unavailable")
	if !strings.Contains(m.TextBody, "Reason: doctor unavailable") {
		t.Error("reason not in body")
	}

	m = BuildAppointmentCancellationEmail(sampleData(), "")
	if strings.Contains(m.TextBody, "Reason:") {
		t.Error("empty reason should omit the reason line")
	}
}

func TestBuildContactResponseEmail(t *testing.T) {
	m := BuildContactResponseEmail("a@example.com", "Amina", "Pricing question", "Our consultations start at KES 2,500.", "DermaCare")

	if m.Subject != "Re: Pricing question" {
		t.Errorf("Subject = %q", m.Subject)
	}
	if !strings.Contains(m.TextBody, "Hi Amina,") {
		t.Error("greeting missing")
	}
	if !strings.Contains(m.TextBody, "KES 2,500") {
		t.Error("response text missing")
	}
}

func TestBuildNewsletterEmailUnsubscribe(t *testing.T) {
	m := BuildNewsletterEmail("s@example.com", "August skin tips", "<p>Wear sunscreen.</p>", "Wear sunscreen.", "https://clinic.example.com/unsubscribe")

	if !strings.Contains(m.TextBody, "https://clinic.example.com/unsubscribe") {
		t.Error("unsubscribe URL missing from text body")
	}
	if !strings.Contains(m.HTMLBody, `href="https://clinic.example.com/unsubscribe"`) {
		t.Error("unsubscribe link missing from html body")
	}
	if got := m.Headers["List-Unsubscribe"]; got != "<https://clinic.example.com/unsubscribe>" {
		t.Errorf("List-Unsubscribe = %q", got)
	}
}
