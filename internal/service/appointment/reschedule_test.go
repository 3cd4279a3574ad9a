package appointment

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/muchiri-dev/dermacare_backend/internal/repo"
	entappt "github.com/muchiri-dev/dermacare_backend/internal/repo/appointment"
)

func TestRescheduleBookingCarriesVisitOver(t *testing.T) {
	serviceID := uuid.New()
	complaint := "recurring eczema flare"
	cost := int64(350000)

	appt := &repo.Appointment{
		ID:                uuid.New(),
		PatientID:         uuid.New(),
		DoctorID:          uuid.New(),
		ServiceID:         &serviceID,
		AppointmentTypeID: uuid.New(),
		StartTime:         date(2026, time.September, 1, 10, 0),
		DurationMin:       45,
		ConsultationType:  entappt.ConsultationTypeVirtual,
		ChiefComplaint:    &complaint,
		IsFollowUp:        true,
		EstimatedCost:     &cost,
	}
	req := RescheduleRequest{
		NewStartTime:    date(2026, time.September, 3, 14, 0),
		RescheduledByID: uuid.New(),
	}

	got := rescheduleBooking(appt, req)

	if got.PatientID != appt.PatientID || got.DoctorID != appt.DoctorID {
		t.Error("replacement must keep the original patient and doctor")
	}
	if !got.StartTime.Equal(req.NewStartTime) {
		t.Errorf("StartTime = %v, want %v", got.StartTime, req.NewStartTime)
	}
	if got.DurationMin != 45 {
		t.Errorf("DurationMin = %d, want 45", got.DurationMin)
	}
	if got.PreviousID == nil || *got.PreviousID != appt.ID {
		t.Error("replacement must link back to the original appointment")
	}
	if got.BookedByID == nil || *got.BookedByID != req.RescheduledByID {
		t.Error("replacement must be booked by the rescheduling user")
	}
	if got.ConsultationType == nil || *got.ConsultationType != string(entappt.ConsultationTypeVirtual) {
		t.Error("replacement must keep the consultation type")
	}
	if got.ChiefComplaint != appt.ChiefComplaint {
		t.Error("replacement must carry the chief complaint")
	}
	if !got.IsFollowUp {
		t.Error("replacement must keep the follow-up flag")
	}
	if got.EstimatedCost == nil || *got.EstimatedCost != cost {
		t.Error("replacement must keep the estimated cost")
	}
}
