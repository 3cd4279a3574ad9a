package app

import (
	"testing"
	"time"

	"github.com/muchiri-dev/dermacare_backend/internal/repo"
)

func TestNotificationPrefsDefaults(t *testing.T) {
	prefs := notificationPrefsFrom(nil)

	if !prefs.confirmations {
		t.Error("confirmations should default to on")
	}
	if !prefs.reminders {
		t.Error("reminders should default to on")
	}
	if prefs.reminderLead != 24*time.Hour {
		t.Errorf("reminderLead = %v, want 24h", prefs.reminderLead)
	}
}

func TestNotificationPrefsFromSettings(t *testing.T) {
	settings := &repo.ClinicSettings{
		SendAppointmentConfirmations: false,
		SendAppointmentReminders:     false,
		ReminderHoursBefore:          48,
	}

	prefs := notificationPrefsFrom(settings)

	if prefs.confirmations {
		t.Error("confirmations should be off when disabled in settings")
	}
	if prefs.reminders {
		t.Error("reminders should be off when disabled in settings")
	}
	if prefs.reminderLead != 48*time.Hour {
		t.Errorf("reminderLead = %v, want 48h", prefs.reminderLead)
	}
}

func TestNotificationPrefsZeroLeadFallsBack(t *testing.T) {
	settings := &repo.ClinicSettings{
		SendAppointmentConfirmations: true,
		SendAppointmentReminders:     true,
	}

	prefs := notificationPrefsFrom(settings)

	if prefs.reminderLead != 24*time.Hour {
		t.Errorf("reminderLead = %v, want 24h fallback", prefs.reminderLead)
	}
}
