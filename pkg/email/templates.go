package email

import (
	"fmt"
	"time"
)

// AppointmentEmailData contains the data needed for appointment email templates.
type AppointmentEmailData struct {
	PatientFirstName string
	Email            string
	AppointmentID    string
	DoctorName       string
	ServiceName      string
	StartTime        time.Time
	DurationMin      int
	Location         string
	MeetingLink      string
	ClinicName       string
	ClinicPhone      string
}

func (d AppointmentEmailData) clinicName() string {
	if d.ClinicName == "" {
		return "DermaCare Clinic"
	}
	return d.ClinicName
}

func (d AppointmentEmailData) firstName() string {
	if d.PatientFirstName == "" {
		return "there"
	}
	return d.PatientFirstName
}

func (d AppointmentEmailData) when() string {
	return d.StartTime.Format("Monday, 2 January 2006 at 15:04")
}

// BuildAppointmentConfirmationEmail creates a confirmation email sent after booking.
func BuildAppointmentConfirmationEmail(data AppointmentEmailData) Message {
	subject := fmt.Sprintf("Your appointment %s is confirmed", data.AppointmentID)

	locationLine := data.Location
	if data.MeetingLink != "" {
		locationLine = "Video consultation: " + data.MeetingLink
	}

	textBody := fmt.Sprintf(`Hi %s,

Your appointment at %s is confirmed.

Appointment: %s
Doctor: %s
Service: %s
When: %s (%d minutes)
Where: %s

If you need to cancel or reschedule, please do so at least 24 hours before
your appointment time, or call us at %s.

Thanks,
The %s Team`,
		data.firstName(), data.clinicName(), data.AppointmentID, data.DoctorName,
		data.ServiceName, data.when(), data.DurationMin, locationLine,
		data.ClinicPhone, data.clinicName())

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Your appointment at %s is confirmed.</p>
    <table style="width: 100%%; border-collapse: collapse; margin: 20px 0; background-color: #f3f4f6; border-radius: 6px;">
        <tr><td style="padding: 8px 15px; color: #6b7280;">Appointment</td><td style="padding: 8px 15px; font-weight: bold;">%s</td></tr>
        <tr><td style="padding: 8px 15px; color: #6b7280;">Doctor</td><td style="padding: 8px 15px;">%s</td></tr>
        <tr><td style="padding: 8px 15px; color: #6b7280;">Service</td><td style="padding: 8px 15px;">%s</td></tr>
        <tr><td style="padding: 8px 15px; color: #6b7280;">When</td><td style="padding: 8px 15px;">%s (%d minutes)</td></tr>
        <tr><td style="padding: 8px 15px; color: #6b7280;">Where</td><td style="padding: 8px 15px;">%s</td></tr>
    </table>
    <p style="color: #6b7280; font-size: 14px;">If you need to cancel or reschedule, please do so at least 24 hours before your appointment time, or call us at %s.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		data.firstName(), data.clinicName(), data.AppointmentID, data.DoctorName,
		data.ServiceName, data.when(), data.DurationMin, locationLine,
		data.ClinicPhone, data.clinicName())

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildAppointmentReminderEmail creates a reminder email sent before the visit.
func BuildAppointmentReminderEmail(data AppointmentEmailData) Message {
	subject := fmt.Sprintf("Reminder: your appointment on %s", data.StartTime.Format("2 Jan 15:04"))

	textBody := fmt.Sprintf(`Hi %s,

This is a reminder of your upcoming appointment at %s.

Appointment: %s
Doctor: %s
When: %s

Please arrive 10 minutes early. If you can no longer make it, cancel or
reschedule as soon as possible so the slot can be offered to another patient.

Thanks,
The %s Team`,
		data.firstName(), data.clinicName(), data.AppointmentID,
		data.DoctorName, data.when(), data.clinicName())

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>This is a reminder of your upcoming appointment at %s.</p>
    <p style="background-color: #f3f4f6; padding: 15px; border-radius: 6px;">
        <strong>%s</strong> with %s<br>%s
    </p>
    <p>Please arrive 10 minutes early. If you can no longer make it, cancel or reschedule as soon as possible so the slot can be offered to another patient.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		data.firstName(), data.clinicName(), data.AppointmentID,
		data.DoctorName, data.when(), data.clinicName())

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildAppointmentCancellationEmail creates the notice sent when a booking is cancelled.
func BuildAppointmentCancellationEmail(data AppointmentEmailData, reason string) Message {
	subject := fmt.Sprintf("Your appointment %s has been cancelled", data.AppointmentID)

	reasonLine := ""
	if reason != "" {
		reasonLine = "\nReason: " + reason + "\n"
	}

	textBody := fmt.Sprintf(`Hi %s,

Your appointment %s with %s on %s has been cancelled.
%s
You can book a new appointment any time, or call us at %s.

Thanks,
The %s Team`,
		data.firstName(), data.AppointmentID, data.DoctorName, data.when(),
		reasonLine, data.ClinicPhone, data.clinicName())

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
	}
}

// BuildContactResponseEmail wraps a staff response to a contact-form message.
func BuildContactResponseEmail(toEmail, name, subject, response, clinicName string) Message {
	if clinicName == "" {
		clinicName = "DermaCare Clinic"
	}
	if name == "" {
		name = "there"
	}

	textBody := fmt.Sprintf(`Hi %s,

%s

Thanks,
The %s Team`, name, response, clinicName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p style="white-space: pre-line;">%s</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`, name, response, clinicName)

	return Message{
		To:       []string{toEmail},
		Subject:  "Re: " + subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildPasswordResetOTPEmail creates a password-reset code email.
func BuildPasswordResetOTPEmail(toEmail, code string, expiryMinutes int) Message {
	subject := "Your password reset code"

	textBody := fmt.Sprintf(`Hi,

You requested to reset your DermaCare account password.

Reset code: %s

This code is valid for %d minutes. If you didn't request this, please
ignore this email.

The DermaCare Team`, code, expiryMinutes)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi,</h2>
    <p>You requested to reset your DermaCare account password.</p>
    <p style="text-align: center; margin: 30px 0; background-color: #f3f4f6; padding: 20px; border-radius: 6px;">
        <span style="font-size: 12px; color: #6b7280;">Reset Code:</span><br>
        <span style="font-size: 36px; font-weight: bold; font-family: monospace; color: #000; letter-spacing: 4px;">%s</span>
    </p>
    <p style="color: #ef4444; font-size: 14px; text-align: center;">This code is valid for %d minutes.</p>
    <p>If you didn't request this, please ignore this email.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px; border-top: 1px solid #e5e7eb; padding-top: 20px;">The DermaCare Team</p>
</body>
</html>`, code, expiryMinutes)

	return Message{
		To:       []string{toEmail},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildNewsletterEmail wraps newsletter content with an unsubscribe footer.
func BuildNewsletterEmail(toEmail, subject, contentHTML, contentText, unsubscribeURL string) Message {
	textBody := fmt.Sprintf(`%s

--
To unsubscribe, visit: %s`, contentText, unsubscribeURL)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    %s
    <p style="color: #9ca3af; font-size: 12px; margin-top: 40px; border-top: 1px solid #e5e7eb; padding-top: 15px;">
        You are receiving this because you subscribed to our newsletter.
        <a href="%s" style="color: #6b7280;">Unsubscribe</a>
    </p>
</body>
</html>`, contentHTML, unsubscribeURL)

	return Message{
		To:       []string{toEmail},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
		Headers: map[string]string{
			"List-Unsubscribe": "<" + unsubscribeURL + ">",
		},
	}
}
