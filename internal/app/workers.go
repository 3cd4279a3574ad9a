package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/muchiri-dev/dermacare_backend/config"
	"github.com/muchiri-dev/dermacare_backend/internal/repo"
	entappt "github.com/muchiri-dev/dermacare_backend/internal/repo/appointment"
	entsettings "github.com/muchiri-dev/dermacare_backend/internal/repo/clinicsettings"
	entnews "github.com/muchiri-dev/dermacare_backend/internal/repo/newsletter"
	entcampaign "github.com/muchiri-dev/dermacare_backend/internal/repo/newslettercampaign"
	entsub "github.com/muchiri-dev/dermacare_backend/internal/repo/newslettersubscriber"
	"github.com/muchiri-dev/dermacare_backend/pkg/email"
	smspkg "github.com/muchiri-dev/dermacare_backend/pkg/sms"
)

// WorkerModule registers all background event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc     fx.Lifecycle
	NC     *nats.Conn
	DB     *repo.Client
	Cfg    *config.Config
	Mailer *email.Client
	SMS    *smspkg.Client
}

func RegisterWorkers(p WorkerParams) {
	reminderStop := make(chan struct{})

	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startAppointmentWorker(p.NC, p.DB, p.Cfg, p.Mailer, p.SMS)
			startNewsletterWorker(p.NC, p.DB, p.Cfg, p.Mailer)
			go runReminderLoop(p.DB, p.Cfg, p.Mailer, reminderStop)
			go runScheduleLoop(p.DB, p.NC, reminderStop)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(reminderStop)
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

func tailUUID(msg *nats.Msg) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
	if err != nil {
		return uuid.UUID{}, false
	}
	return id, true
}

// notificationPrefs is the slice of ClinicSettings the workers act on.
type notificationPrefs struct {
	confirmations bool
	reminders     bool
	reminderLead  time.Duration
}

// notificationPrefsFrom reads the notification toggles from a settings row.
// A nil row (clinic not yet initialized) keeps notifications on with a
// one-day reminder lead, matching the schema defaults.
func notificationPrefsFrom(settings *repo.ClinicSettings) notificationPrefs {
	prefs := notificationPrefs{
		confirmations: true,
		reminders:     true,
		reminderLead:  24 * time.Hour,
	}
	if settings == nil {
		return prefs
	}
	prefs.confirmations = settings.SendAppointmentConfirmations
	prefs.reminders = settings.SendAppointmentReminders
	if settings.ReminderHoursBefore > 0 {
		prefs.reminderLead = time.Duration(settings.ReminderHoursBefore) * time.Hour
	}
	return prefs
}

func loadNotificationPrefs(ctx context.Context, db *repo.Client) notificationPrefs {
	settings, err := db.ClinicSettings.Query().
		Order(entsettings.ByCreatedAt()).
		First(ctx)
	if err != nil {
		return notificationPrefsFrom(nil)
	}
	return notificationPrefsFrom(settings)
}

// ---------------------------------------------------------------------------
// appointment_worker
// ---------------------------------------------------------------------------

func startAppointmentWorker(nc *nats.Conn, db *repo.Client, cfg *config.Config, mailer *email.Client, smsCli *smspkg.Client) {
	_, err := nc.Subscribe("dermacare.appointment.booked.*", func(msg *nats.Msg) {
		apptID, valid := tailUUID(msg)
		if !valid {
			return
		}
		ctx := context.Background()

		if !loadNotificationPrefs(ctx, db).confirmations {
			return
		}

		appt, data, err := loadAppointmentEmailData(ctx, db, apptID)
		if err != nil {
			slog.Warn("appointment_worker: load appointment failed", "id", apptID, "err", err)
			return
		}

		if data.Email != "" {
			if err := mailer.Send(ctx, email.BuildAppointmentConfirmationEmail(data)); err != nil {
				slog.Warn("appointment_worker: confirmation email failed", "appointment_id", appt.AppointmentID, "err", err)
			}
		}

		sendAppointmentSMS(ctx, cfg, smsCli, appt, data)
	})
	if err != nil {
		slog.Error("appointment_worker: subscribe appointment.booked failed", "err", err)
	}

	_, err = nc.Subscribe("dermacare.appointment.cancelled.*", func(msg *nats.Msg) {
		apptID, valid := tailUUID(msg)
		if !valid {
			return
		}
		ctx := context.Background()

		appt, data, err := loadAppointmentEmailData(ctx, db, apptID)
		if err != nil {
			slog.Warn("appointment_worker: load appointment failed", "id", apptID, "err", err)
			return
		}
		if data.Email == "" {
			return
		}

		reason := ""
		if appt.CancellationReason != nil {
			reason = *appt.CancellationReason
		}
		if err := mailer.Send(ctx, email.BuildAppointmentCancellationEmail(data, reason)); err != nil {
			slog.Warn("appointment_worker: cancellation email failed", "appointment_id", appt.AppointmentID, "err", err)
		}
	})
	if err != nil {
		slog.Error("appointment_worker: subscribe appointment.cancelled failed", "err", err)
	}

	slog.Info("appointment_worker: started")
}

func loadAppointmentEmailData(ctx context.Context, db *repo.Client, apptID uuid.UUID) (*repo.Appointment, email.AppointmentEmailData, error) {
	appt, err := db.Appointment.Query().
		Where(entappt.ID(apptID)).
		WithPatient(func(q *repo.PatientQuery) { q.WithUser() }).
		WithDoctor(func(q *repo.DoctorQuery) { q.WithUser() }).
		WithService().
		Only(ctx)
	if err != nil {
		return nil, email.AppointmentEmailData{}, err
	}

	data := email.AppointmentEmailData{
		AppointmentID: appt.AppointmentID,
		StartTime:     appt.StartTime,
		DurationMin:   appt.DurationMin,
	}
	if appt.MeetingLink != nil {
		data.MeetingLink = *appt.MeetingLink
	}
	if p := appt.Edges.Patient; p != nil && p.Edges.User != nil {
		if p.Edges.User.FirstName != nil {
			data.PatientFirstName = *p.Edges.User.FirstName
		}
		data.Email = p.Edges.User.Email
	}
	if d := appt.Edges.Doctor; d != nil && d.Edges.User != nil {
		firstName, lastName := "", ""
		if d.Edges.User.FirstName != nil {
			firstName = *d.Edges.User.FirstName
		}
		if d.Edges.User.LastName != nil {
			lastName = *d.Edges.User.LastName
		}
		data.DoctorName = strings.TrimSpace(d.Title + " " + firstName + " " + lastName)
	}
	if svc := appt.Edges.Service; svc != nil {
		data.ServiceName = svc.Name
	}

	// Clinic identity comes from settings, best effort.
	settings, err := db.ClinicSettings.Query().
		Order(entsettings.ByCreatedAt()).
		First(ctx)
	if err == nil {
		data.ClinicName = settings.ClinicName
		data.ClinicPhone = settings.Phone
		data.Location = settings.AddressLine1 + ", " + settings.City
	}

	return appt, data, nil
}

func sendAppointmentSMS(ctx context.Context, cfg *config.Config, smsCli *smspkg.Client, appt *repo.Appointment, data email.AppointmentEmailData) {
	if smsCli == nil || !smsCli.IsEnabled() {
		return
	}
	p := appt.Edges.Patient
	if p == nil || p.Edges.User == nil || p.Edges.User.Phone == nil || *p.Edges.User.Phone == "" {
		return
	}

	err := smsCli.SendTemplated(ctx, *p.Edges.User.Phone, cfg.SMS.SMSIR.TemplateID, map[string]string{
		"date": appt.StartTime.Format("2006-01-02"),
		"time": appt.StartTime.Format("15:04"),
	})
	if err != nil {
		slog.Warn("appointment_worker: confirmation SMS failed", "appointment_id", appt.AppointmentID, "err", err)
	}
}

// ---------------------------------------------------------------------------
// newsletter_worker
// ---------------------------------------------------------------------------

func startNewsletterWorker(nc *nats.Conn, db *repo.Client, cfg *config.Config, mailer *email.Client) {
	_, err := nc.Subscribe("dermacare.newsletter.dispatch.*", func(msg *nats.Msg) {
		campaignID, valid := tailUUID(msg)
		if !valid {
			return
		}
		ctx := context.Background()

		campaign, err := db.NewsletterCampaign.Query().
			Where(entcampaign.ID(campaignID)).
			WithNewsletter().
			Only(ctx)
		if err != nil {
			slog.Warn("newsletter_worker: campaign not found", "id", campaignID, "err", err)
			return
		}
		n := campaign.Edges.Newsletter
		if n == nil {
			slog.Warn("newsletter_worker: campaign has no newsletter", "id", campaignID)
			return
		}

		subscribers, err := db.NewsletterSubscriber.Query().
			Where(entsub.IsActive(true)).
			All(ctx)
		if err != nil {
			slog.Warn("newsletter_worker: list subscribers failed", "err", err)
			return
		}

		sent := 0
		for _, sub := range subscribers {
			unsubURL := cfg.Clinic.UnsubscribeURL + "?token=" + sub.UnsubscribeToken
			m := email.BuildNewsletterEmail(sub.Email, n.Subject, n.ContentHTML, n.ContentText, unsubURL)
			if err := mailer.Send(ctx, m); err != nil {
				slog.Warn("newsletter_worker: send failed", "email", sub.Email, "err", err)
				continue
			}
			sent++
		}

		now := time.Now().UTC()
		_, err = db.NewsletterCampaign.UpdateOne(campaign).
			SetSentCount(sent).
			SetCompletedAt(now).
			Save(ctx)
		if err != nil {
			slog.Warn("newsletter_worker: close campaign failed", "id", campaignID, "err", err)
		}

		_, err = db.Newsletter.UpdateOneID(n.ID).
			SetStatus(entnews.StatusSent).
			SetSentAt(now).
			Save(ctx)
		if err != nil {
			slog.Warn("newsletter_worker: mark newsletter sent failed", "id", n.ID, "err", err)
		}

		slog.Info("newsletter_worker: campaign delivered", "campaign_id", campaignID, "sent", sent, "subscribers", len(subscribers))
	})
	if err != nil {
		slog.Error("newsletter_worker: subscribe newsletter.dispatch failed", "err", err)
	}

	slog.Info("newsletter_worker: started")
}

// runScheduleLoop fires campaigns for newsletters whose scheduled time has
// passed. scheduled_at is cleared before publishing so a slow dispatch cannot
// be picked up twice.
func runScheduleLoop(db *repo.Client, nc *nats.Conn, stop <-chan struct{}) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}

		ctx := context.Background()
		due, err := db.Newsletter.Query().
			Where(
				entnews.StatusEQ(entnews.StatusScheduled),
				entnews.ScheduledAtNotNil(),
				entnews.ScheduledAtLTE(time.Now().UTC()),
			).
			All(ctx)
		if err != nil {
			slog.Warn("schedule_worker: query due newsletters failed", "err", err)
			continue
		}

		for _, n := range due {
			_, err := db.Newsletter.UpdateOne(n).
				ClearScheduledAt().
				Save(ctx)
			if err != nil {
				slog.Warn("schedule_worker: claim newsletter failed", "id", n.ID, "err", err)
				continue
			}

			campaign, err := db.NewsletterCampaign.Create().
				SetNewsletterID(n.ID).
				SetStartedAt(time.Now().UTC()).
				Save(ctx)
			if err != nil {
				slog.Warn("schedule_worker: create campaign failed", "id", n.ID, "err", err)
				continue
			}

			if nc != nil {
				subject := "dermacare.newsletter.dispatch." + campaign.ID.String()
				_ = nc.Publish(subject, []byte(campaign.ID.String()))
			}
			slog.Info("schedule_worker: scheduled newsletter dispatched", "newsletter_id", n.ID, "campaign_id", campaign.ID)
		}
	}
}

// ---------------------------------------------------------------------------
// reminder_worker
// ---------------------------------------------------------------------------

// runReminderLoop emails patients whose appointment starts within the lead
// window from ClinicSettings (reminder_hours_before). Each appointment is
// reminded at most once, and the loop is a no-op while
// send_appointment_reminders is off.
func runReminderLoop(db *repo.Client, cfg *config.Config, mailer *email.Client, stop <-chan struct{}) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}

		ctx := context.Background()
		now := time.Now().UTC()

		prefs := loadNotificationPrefs(ctx, db)
		if !prefs.reminders {
			continue
		}

		due, err := db.Appointment.Query().
			Where(
				entappt.StatusIn(entappt.StatusScheduled, entappt.StatusConfirmed),
				entappt.ReminderSent(false),
				entappt.StartTimeGT(now),
				entappt.StartTimeLTE(now.Add(prefs.reminderLead)),
			).
			All(ctx)
		if err != nil {
			slog.Warn("reminder_worker: query due appointments failed", "err", err)
			continue
		}

		for _, a := range due {
			_, data, err := loadAppointmentEmailData(ctx, db, a.ID)
			if err != nil {
				slog.Warn("reminder_worker: load appointment failed", "id", a.ID, "err", err)
				continue
			}
			if data.Email == "" {
				continue
			}

			if err := mailer.Send(ctx, email.BuildAppointmentReminderEmail(data)); err != nil {
				slog.Warn("reminder_worker: reminder email failed", "appointment_id", a.AppointmentID, "err", err)
				continue
			}

			_, err = db.Appointment.UpdateOne(a).
				SetReminderSent(true).
				SetReminderSentAt(time.Now().UTC()).
				Save(ctx)
			if err != nil {
				slog.Warn("reminder_worker: mark reminded failed", "appointment_id", a.AppointmentID, "err", err)
			}
		}
	}
}
