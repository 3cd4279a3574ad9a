// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "appointment_id", Type: field.TypeString, Unique: true, Size: 20},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "duration_min", Type: field.TypeInt},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"scheduled", "confirmed", "checked_in", "in_progress", "completed", "cancelled", "no_show", "rescheduled"}, Default: "scheduled"},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "normal", "high", "urgent"}, Default: "normal"},
		{Name: "consultation_type", Type: field.TypeEnum, Enums: []string{"in_person", "virtual", "phone"}, Default: "in_person"},
		{Name: "chief_complaint", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "symptoms", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_follow_up", Type: field.TypeBool, Default: false},
		{Name: "booked_by_id", Type: field.TypeUUID, Nullable: true},
		{Name: "booking_source", Type: field.TypeEnum, Enums: []string{"online", "phone", "walk_in", "staff", "referral"}, Default: "online"},
		{Name: "is_confirmed", Type: field.TypeBool, Default: false},
		{Name: "confirmed_at", Type: field.TypeTime, Nullable: true},
		{Name: "reminder_sent", Type: field.TypeBool, Default: false},
		{Name: "reminder_sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "checked_in_at", Type: field.TypeTime, Nullable: true},
		{Name: "checked_in_by_id", Type: field.TypeUUID, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "actual_duration_min", Type: field.TypeInt, Nullable: true},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "cancelled_by_id", Type: field.TypeUUID, Nullable: true},
		{Name: "cancellation_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "meeting_link", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "meeting_id", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "meeting_password", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "estimated_cost", Type: field.TypeInt64, Nullable: true},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "service_id", Type: field.TypeUUID, Nullable: true},
		{Name: "appointment_type_id", Type: field.TypeUUID},
		{Name: "previous_appointment_id", Type: field.TypeUUID, Nullable: true},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "appointments_patients_patient",
				Columns:    []*schema.Column{AppointmentsColumns[32]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "appointments_doctors_doctor",
				Columns:    []*schema.Column{AppointmentsColumns[33]},
				RefColumns: []*schema.Column{DoctorsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "appointments_services_service",
				Columns:    []*schema.Column{AppointmentsColumns[34]},
				RefColumns: []*schema.Column{ServicesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "appointments_appointment_types_appointment_type",
				Columns:    []*schema.Column{AppointmentsColumns[35]},
				RefColumns: []*schema.Column{AppointmentTypesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "appointments_appointments_follow_ups",
				Columns:    []*schema.Column{AppointmentsColumns[36]},
				RefColumns: []*schema.Column{AppointmentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_doctor_id_start_time",
				Unique:  true,
				Columns: []*schema.Column{AppointmentsColumns[33], AppointmentsColumns[4]},
			},
			{
				Name:    "appointment_appointment_id",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3]},
			},
			{
				Name:    "appointment_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[32], AppointmentsColumns[7]},
			},
			{
				Name:    "appointment_doctor_id_status_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[33], AppointmentsColumns[7], AppointmentsColumns[4]},
			},
			{
				Name:    "appointment_status_reminder_sent_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[7], AppointmentsColumns[18], AppointmentsColumns[4]},
			},
		},
	}
	// AppointmentNotesColumns holds the columns for the "appointment_notes" table.
	AppointmentNotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "note_type", Type: field.TypeEnum, Enums: []string{"general", "medical", "billing", "follow_up", "reminder"}, Default: "general"},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "is_private", Type: field.TypeBool, Default: false},
		{Name: "created_by_id", Type: field.TypeUUID},
		{Name: "appointment_id", Type: field.TypeUUID},
	}
	// AppointmentNotesTable holds the schema information for the "appointment_notes" table.
	AppointmentNotesTable = &schema.Table{
		Name:       "appointment_notes",
		Columns:    AppointmentNotesColumns,
		PrimaryKey: []*schema.Column{AppointmentNotesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "appointment_notes_appointments_appointment_notes",
				Columns:    []*schema.Column{AppointmentNotesColumns[6]},
				RefColumns: []*schema.Column{AppointmentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "appointmentnote_appointment_id",
				Unique:  false,
				Columns: []*schema.Column{AppointmentNotesColumns[6]},
			},
		},
	}
	// AppointmentReschedulesColumns holds the columns for the "appointment_reschedules" table.
	AppointmentReschedulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "old_start_time", Type: field.TypeTime},
		{Name: "new_start_time", Type: field.TypeTime},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "rescheduled_by_id", Type: field.TypeUUID},
		{Name: "appointment_id", Type: field.TypeUUID},
	}
	// AppointmentReschedulesTable holds the schema information for the "appointment_reschedules" table.
	AppointmentReschedulesTable = &schema.Table{
		Name:       "appointment_reschedules",
		Columns:    AppointmentReschedulesColumns,
		PrimaryKey: []*schema.Column{AppointmentReschedulesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "appointment_reschedules_appointments_reschedules",
				Columns:    []*schema.Column{AppointmentReschedulesColumns[6]},
				RefColumns: []*schema.Column{AppointmentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "appointmentreschedule_appointment_id",
				Unique:  false,
				Columns: []*schema.Column{AppointmentReschedulesColumns[6]},
			},
		},
	}
	// AppointmentTypesColumns holds the columns for the "appointment_types" table.
	AppointmentTypesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "duration_min", Type: field.TypeInt},
		{Name: "color", Type: field.TypeString, Size: 7, Default: "#3498db"},
		{Name: "is_consultation", Type: field.TypeBool, Default: true},
		{Name: "requires_preparation", Type: field.TypeBool, Default: false},
		{Name: "preparation_instructions", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// AppointmentTypesTable holds the schema information for the "appointment_types" table.
	AppointmentTypesTable = &schema.Table{
		Name:       "appointment_types",
		Columns:    AppointmentTypesColumns,
		PrimaryKey: []*schema.Column{AppointmentTypesColumns[0]},
	}
	// BusinessHoursColumns holds the columns for the "business_hours" table.
	BusinessHoursColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "day_of_week", Type: field.TypeInt8},
		{Name: "is_open", Type: field.TypeBool, Default: true},
		{Name: "opening_time", Type: field.TypeString, Nullable: true, Size: 5},
		{Name: "closing_time", Type: field.TypeString, Nullable: true, Size: 5},
		{Name: "lunch_break", Type: field.TypeBool, Default: false},
		{Name: "lunch_start", Type: field.TypeString, Nullable: true, Size: 5},
		{Name: "lunch_end", Type: field.TypeString, Nullable: true, Size: 5},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 200},
		{Name: "settings_id", Type: field.TypeUUID},
	}
	// BusinessHoursTable holds the schema information for the "business_hours" table.
	BusinessHoursTable = &schema.Table{
		Name:       "business_hours",
		Columns:    BusinessHoursColumns,
		PrimaryKey: []*schema.Column{BusinessHoursColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "business_hours_clinic_settings_business_hours",
				Columns:    []*schema.Column{BusinessHoursColumns[9]},
				RefColumns: []*schema.Column{ClinicSettingsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "businesshours_settings_id_day_of_week",
				Unique:  true,
				Columns: []*schema.Column{BusinessHoursColumns[9], BusinessHoursColumns[1]},
			},
		},
	}
	// ClinicSettingsColumns holds the columns for the "clinic_settings" table.
	ClinicSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "clinic_name", Type: field.TypeString, Size: 200, Default: "DermaCare Clinic"},
		{Name: "tagline", Type: field.TypeString, Nullable: true, Size: 300},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "logo_key", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "favicon_key", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "phone", Type: field.TypeString, Size: 20},
		{Name: "email", Type: field.TypeString, Size: 255},
		{Name: "website", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "address_line_1", Type: field.TypeString, Size: 200},
		{Name: "address_line_2", Type: field.TypeString, Nullable: true, Size: 200},
		{Name: "city", Type: field.TypeString, Size: 100},
		{Name: "state", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "postal_code", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "country", Type: field.TypeString, Size: 100, Default: "Kenya"},
		{Name: "facebook_url", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "twitter_url", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "instagram_url", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "linkedin_url", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "youtube_url", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "timezone", Type: field.TypeString, Size: 50, Default: "Africa/Nairobi"},
		{Name: "appointment_buffer_min", Type: field.TypeInt, Default: 15},
		{Name: "max_advance_booking_days", Type: field.TypeInt, Default: 60},
		{Name: "min_advance_booking_hours", Type: field.TypeInt, Default: 24},
		{Name: "cancellation_deadline_hours", Type: field.TypeInt, Default: 24},
		{Name: "send_appointment_confirmations", Type: field.TypeBool, Default: true},
		{Name: "send_appointment_reminders", Type: field.TypeBool, Default: true},
		{Name: "reminder_hours_before", Type: field.TypeInt, Default: 24},
		{Name: "send_follow_up_reminders", Type: field.TypeBool, Default: true},
		{Name: "currency", Type: field.TypeString, Size: 3, Default: "KES"},
		{Name: "tax_rate_percent", Type: field.TypeInt, Default: 0},
		{Name: "emergency_phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "emergency_email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "maintenance_mode", Type: field.TypeBool, Default: false},
		{Name: "maintenance_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// ClinicSettingsTable holds the schema information for the "clinic_settings" table.
	ClinicSettingsTable = &schema.Table{
		Name:       "clinic_settings",
		Columns:    ClinicSettingsColumns,
		PrimaryKey: []*schema.Column{ClinicSettingsColumns[0]},
	}
	// ContactMessagesColumns holds the columns for the "contact_messages" table.
	ContactMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 200},
		{Name: "email", Type: field.TypeString, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "subject", Type: field.TypeString, Size: 200},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"new", "read", "responded", "closed"}, Default: "new"},
		{Name: "assigned_to_id", Type: field.TypeUUID, Nullable: true},
	}
	// ContactMessagesTable holds the schema information for the "contact_messages" table.
	ContactMessagesTable = &schema.Table{
		Name:       "contact_messages",
		Columns:    ContactMessagesColumns,
		PrimaryKey: []*schema.Column{ContactMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "contact_messages_users_assigned_to",
				Columns:    []*schema.Column{ContactMessagesColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contactmessage_status",
				Unique:  false,
				Columns: []*schema.Column{ContactMessagesColumns[8]},
			},
		},
	}
	// ContactResponsesColumns holds the columns for the "contact_responses" table.
	ContactResponsesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "response", Type: field.TypeString, Size: 2147483647},
		{Name: "responded_by_id", Type: field.TypeUUID, Nullable: true},
		{Name: "is_sent", Type: field.TypeBool, Default: false},
		{Name: "sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "contact_message_id", Type: field.TypeUUID},
	}
	// ContactResponsesTable holds the schema information for the "contact_responses" table.
	ContactResponsesTable = &schema.Table{
		Name:       "contact_responses",
		Columns:    ContactResponsesColumns,
		PrimaryKey: []*schema.Column{ContactResponsesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "contact_responses_contact_messages_responses",
				Columns:    []*schema.Column{ContactResponsesColumns[6]},
				RefColumns: []*schema.Column{ContactMessagesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contactresponse_contact_message_id",
				Unique:  false,
				Columns: []*schema.Column{ContactResponsesColumns[6]},
			},
		},
	}
	// DoctorsColumns holds the columns for the "doctors" table.
	DoctorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Size: 50, Default: "Dr."},
		{Name: "license_number", Type: field.TypeString, Unique: true, Size: 50},
		{Name: "years_of_experience", Type: field.TypeInt},
		{Name: "biography", Type: field.TypeString, Size: 2147483647},
		{Name: "education", Type: field.TypeString, Size: 2147483647},
		{Name: "certifications", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "consultation_fee", Type: field.TypeInt64},
		{Name: "is_available", Type: field.TypeBool, Default: true},
		{Name: "profile_image_key", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "twitter_url", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "linkedin_url", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "facebook_url", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "hospital_affiliations", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "research_interests", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "publications", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// DoctorsTable holds the schema information for the "doctors" table.
	DoctorsTable = &schema.Table{
		Name:       "doctors",
		Columns:    DoctorsColumns,
		PrimaryKey: []*schema.Column{DoctorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "doctors_users_user",
				Columns:    []*schema.Column{DoctorsColumns[18]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "doctor_user_id",
				Unique:  false,
				Columns: []*schema.Column{DoctorsColumns[18]},
			},
			{
				Name:    "doctor_is_available",
				Unique:  false,
				Columns: []*schema.Column{DoctorsColumns[10]},
			},
		},
	}
	// DoctorAvailabilitiesColumns holds the columns for the "doctor_availabilities" table.
	DoctorAvailabilitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "day_of_week", Type: field.TypeInt8},
		{Name: "start_time", Type: field.TypeString, Size: 5},
		{Name: "end_time", Type: field.TypeString, Size: 5},
		{Name: "is_available", Type: field.TypeBool, Default: true},
		{Name: "max_patients", Type: field.TypeInt, Default: 20},
		{Name: "doctor_id", Type: field.TypeUUID},
	}
	// DoctorAvailabilitiesTable holds the schema information for the "doctor_availabilities" table.
	DoctorAvailabilitiesTable = &schema.Table{
		Name:       "doctor_availabilities",
		Columns:    DoctorAvailabilitiesColumns,
		PrimaryKey: []*schema.Column{DoctorAvailabilitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "doctor_availabilities_doctors_availability",
				Columns:    []*schema.Column{DoctorAvailabilitiesColumns[7]},
				RefColumns: []*schema.Column{DoctorsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "doctoravailability_doctor_id_day_of_week_start_time",
				Unique:  true,
				Columns: []*schema.Column{DoctorAvailabilitiesColumns[7], DoctorAvailabilitiesColumns[2], DoctorAvailabilitiesColumns[3]},
			},
			{
				Name:    "doctoravailability_doctor_id",
				Unique:  false,
				Columns: []*schema.Column{DoctorAvailabilitiesColumns[7]},
			},
		},
	}
	// DoctorLeavesColumns holds the columns for the "doctor_leaves" table.
	DoctorLeavesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "leave_type", Type: field.TypeEnum, Enums: []string{"vacation", "sick", "conference", "emergency", "other"}},
		{Name: "start_date", Type: field.TypeTime},
		{Name: "end_date", Type: field.TypeTime},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_approved", Type: field.TypeBool, Default: false},
		{Name: "doctor_id", Type: field.TypeUUID},
	}
	// DoctorLeavesTable holds the schema information for the "doctor_leaves" table.
	DoctorLeavesTable = &schema.Table{
		Name:       "doctor_leaves",
		Columns:    DoctorLeavesColumns,
		PrimaryKey: []*schema.Column{DoctorLeavesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "doctor_leaves_doctors_leaves",
				Columns:    []*schema.Column{DoctorLeavesColumns[7]},
				RefColumns: []*schema.Column{DoctorsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "doctorleave_doctor_id_start_date",
				Unique:  false,
				Columns: []*schema.Column{DoctorLeavesColumns[7], DoctorLeavesColumns[3]},
			},
		},
	}
	// EmailTemplatesColumns holds the columns for the "email_templates" table.
	EmailTemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 200},
		{Name: "template_type", Type: field.TypeEnum, Enums: []string{"appointment_confirmation", "appointment_reminder", "appointment_cancellation", "appointment_rescheduled", "welcome_new_patient", "follow_up_reminder", "birthday_wishes", "newsletter", "lab_results_ready", "payment_receipt", "custom"}},
		{Name: "subject", Type: field.TypeString, Size: 200},
		{Name: "body_html", Type: field.TypeString, Size: 2147483647},
		{Name: "body_text", Type: field.TypeString, Size: 2147483647},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "variables_help", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// EmailTemplatesTable holds the schema information for the "email_templates" table.
	EmailTemplatesTable = &schema.Table{
		Name:       "email_templates",
		Columns:    EmailTemplatesColumns,
		PrimaryKey: []*schema.Column{EmailTemplatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "emailtemplate_template_type",
				Unique:  true,
				Columns: []*schema.Column{EmailTemplatesColumns[4]},
			},
		},
	}
	// HolidaysColumns holds the columns for the "holidays" table.
	HolidaysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 200},
		{Name: "date", Type: field.TypeTime},
		{Name: "is_recurring", Type: field.TypeBool, Default: false},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "affects_appointments", Type: field.TypeBool, Default: true},
	}
	// HolidaysTable holds the schema information for the "holidays" table.
	HolidaysTable = &schema.Table{
		Name:       "holidays",
		Columns:    HolidaysColumns,
		PrimaryKey: []*schema.Column{HolidaysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "holiday_date",
				Unique:  false,
				Columns: []*schema.Column{HolidaysColumns[3]},
			},
		},
	}
	// MedicalHistoriesColumns holds the columns for the "medical_histories" table.
	MedicalHistoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "condition_type", Type: field.TypeEnum, Enums: []string{"skin", "allergy", "surgery", "medication", "family_history", "other"}},
		{Name: "condition_name", Type: field.TypeString, Size: 200},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "date_diagnosed", Type: field.TypeTime, Nullable: true},
		{Name: "is_current", Type: field.TypeBool, Default: true},
		{Name: "severity", Type: field.TypeEnum, Nullable: true, Enums: []string{"mild", "moderate", "severe"}},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// MedicalHistoriesTable holds the schema information for the "medical_histories" table.
	MedicalHistoriesTable = &schema.Table{
		Name:       "medical_histories",
		Columns:    MedicalHistoriesColumns,
		PrimaryKey: []*schema.Column{MedicalHistoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "medical_histories_patients_medical_history",
				Columns:    []*schema.Column{MedicalHistoriesColumns[10]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "medicalhistory_patient_id",
				Unique:  false,
				Columns: []*schema.Column{MedicalHistoriesColumns[10]},
			},
			{
				Name:    "medicalhistory_patient_id_condition_type",
				Unique:  false,
				Columns: []*schema.Column{MedicalHistoriesColumns[10], MedicalHistoriesColumns[3]},
			},
		},
	}
	// NewslettersColumns holds the columns for the "newsletters" table.
	NewslettersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Size: 200},
		{Name: "subject", Type: field.TypeString, Size: 200},
		{Name: "content_html", Type: field.TypeString, Size: 2147483647},
		{Name: "content_text", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "scheduled", "sent", "cancelled"}, Default: "draft"},
		{Name: "scheduled_at", Type: field.TypeTime, Nullable: true},
		{Name: "sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_by_id", Type: field.TypeUUID, Nullable: true},
	}
	// NewslettersTable holds the schema information for the "newsletters" table.
	NewslettersTable = &schema.Table{
		Name:       "newsletters",
		Columns:    NewslettersColumns,
		PrimaryKey: []*schema.Column{NewslettersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "newsletter_status",
				Unique:  false,
				Columns: []*schema.Column{NewslettersColumns[7]},
			},
		},
	}
	// NewsletterCampaignsColumns holds the columns for the "newsletter_campaigns" table.
	NewsletterCampaignsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "sent_count", Type: field.TypeInt, Default: 0},
		{Name: "open_count", Type: field.TypeInt, Default: 0},
		{Name: "click_count", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "newsletter_id", Type: field.TypeUUID},
	}
	// NewsletterCampaignsTable holds the schema information for the "newsletter_campaigns" table.
	NewsletterCampaignsTable = &schema.Table{
		Name:       "newsletter_campaigns",
		Columns:    NewsletterCampaignsColumns,
		PrimaryKey: []*schema.Column{NewsletterCampaignsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "newsletter_campaigns_newsletters_campaigns",
				Columns:    []*schema.Column{NewsletterCampaignsColumns[7]},
				RefColumns: []*schema.Column{NewslettersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// NewsletterSubscribersColumns holds the columns for the "newsletter_subscribers" table.
	NewsletterSubscribersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "first_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "last_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "unsubscribe_token", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "subscribed_at", Type: field.TypeTime},
		{Name: "unsubscribed_at", Type: field.TypeTime, Nullable: true},
	}
	// NewsletterSubscribersTable holds the schema information for the "newsletter_subscribers" table.
	NewsletterSubscribersTable = &schema.Table{
		Name:       "newsletter_subscribers",
		Columns:    NewsletterSubscribersColumns,
		PrimaryKey: []*schema.Column{NewsletterSubscribersColumns[0]},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeString, Unique: true, Size: 20},
		{Name: "middle_name", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "preferred_name", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "occupation", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "blood_type", Type: field.TypeEnum, Enums: []string{"a_pos", "a_neg", "b_pos", "b_neg", "ab_pos", "ab_neg", "o_pos", "o_neg", "unknown"}, Default: "unknown"},
		{Name: "skin_type", Type: field.TypeEnum, Nullable: true, Enums: []string{"I", "II", "III", "IV", "V", "VI"}},
		{Name: "height_cm", Type: field.TypeFloat64, Nullable: true},
		{Name: "weight_kg", Type: field.TypeFloat64, Nullable: true},
		{Name: "preferred_contact_method", Type: field.TypeEnum, Enums: []string{"email", "sms", "call"}, Default: "email"},
		{Name: "preferred_language", Type: field.TypeString, Size: 50, Default: "English"},
		{Name: "insurance_provider", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "insurance_number", Type: field.TypeString, Nullable: true, Size: 200},
		{Name: "insurance_valid_until", Type: field.TypeTime, Nullable: true},
		{Name: "referral_source", Type: field.TypeEnum, Nullable: true, Enums: []string{"doctor", "friend", "online", "social_media", "advertisement", "other"}},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "referred_by_id", Type: field.TypeUUID, Nullable: true},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patients_users_user",
				Columns:    []*schema.Column{PatientsColumns[18]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "patients_patients_referrals",
				Columns:    []*schema.Column{PatientsColumns[19]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patient_patient_id",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[3]},
			},
			{
				Name:    "patient_user_id",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[18]},
			},
			{
				Name:    "patient_is_active",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[17]},
			},
		},
	}
	// PatientDocumentsColumns holds the columns for the "patient_documents" table.
	PatientDocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_type", Type: field.TypeEnum, Enums: []string{"id_card", "insurance", "medical_report", "prescription", "lab_result", "consent_form", "other"}},
		{Name: "title", Type: field.TypeString, Size: 200},
		{Name: "file_key", Type: field.TypeString, Size: 500},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_sensitive", Type: field.TypeBool, Default: true},
		{Name: "expiry_date", Type: field.TypeTime, Nullable: true},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "uploaded_by_id", Type: field.TypeUUID},
	}
	// PatientDocumentsTable holds the schema information for the "patient_documents" table.
	PatientDocumentsTable = &schema.Table{
		Name:       "patient_documents",
		Columns:    PatientDocumentsColumns,
		PrimaryKey: []*schema.Column{PatientDocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patient_documents_patients_documents",
				Columns:    []*schema.Column{PatientDocumentsColumns[8]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "patient_documents_users_uploaded_by",
				Columns:    []*schema.Column{PatientDocumentsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patientdocument_patient_id",
				Unique:  false,
				Columns: []*schema.Column{PatientDocumentsColumns[8]},
			},
			{
				Name:    "patientdocument_patient_id_document_type",
				Unique:  false,
				Columns: []*schema.Column{PatientDocumentsColumns[8], PatientDocumentsColumns[2]},
			},
		},
	}
	// SmsTemplatesColumns holds the columns for the "sms_templates" table.
	SmsTemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 200},
		{Name: "template_type", Type: field.TypeEnum, Enums: []string{"appointment_confirmation", "appointment_reminder", "appointment_cancellation", "appointment_rescheduled", "welcome_new_patient", "follow_up_reminder", "birthday_wishes", "newsletter", "lab_results_ready", "payment_receipt", "custom"}},
		{Name: "body", Type: field.TypeString, Size: 480},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "variables_help", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// SmsTemplatesTable holds the schema information for the "sms_templates" table.
	SmsTemplatesTable = &schema.Table{
		Name:       "sms_templates",
		Columns:    SmsTemplatesColumns,
		PrimaryKey: []*schema.Column{SmsTemplatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "smstemplate_template_type",
				Unique:  true,
				Columns: []*schema.Column{SmsTemplatesColumns[4]},
			},
		},
	}
	// ServicesColumns holds the columns for the "services" table.
	ServicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 200},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 200},
		{Name: "short_description", Type: field.TypeString, Size: 300},
		{Name: "detailed_description", Type: field.TypeString, Size: 2147483647},
		{Name: "price", Type: field.TypeInt64},
		{Name: "duration_min", Type: field.TypeInt},
		{Name: "preparation_instructions", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "post_treatment_care", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "contraindications", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_consultation_required", Type: field.TypeBool, Default: true},
		{Name: "requires_referral", Type: field.TypeBool, Default: false},
		{Name: "min_age", Type: field.TypeInt, Nullable: true},
		{Name: "max_age", Type: field.TypeInt, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "is_featured", Type: field.TypeBool, Default: false},
		{Name: "available_online", Type: field.TypeBool, Default: false},
		{Name: "meta_description", Type: field.TypeString, Nullable: true, Size: 160},
		{Name: "image_key", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "category_id", Type: field.TypeUUID},
	}
	// ServicesTable holds the schema information for the "services" table.
	ServicesTable = &schema.Table{
		Name:       "services",
		Columns:    ServicesColumns,
		PrimaryKey: []*schema.Column{ServicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "services_service_categories_services",
				Columns:    []*schema.Column{ServicesColumns[21]},
				RefColumns: []*schema.Column{ServiceCategoriesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "service_category_id",
				Unique:  false,
				Columns: []*schema.Column{ServicesColumns[21]},
			},
			{
				Name:    "service_is_active_is_featured",
				Unique:  false,
				Columns: []*schema.Column{ServicesColumns[16], ServicesColumns[17]},
			},
			{
				Name:    "service_slug",
				Unique:  false,
				Columns: []*schema.Column{ServicesColumns[4]},
			},
		},
	}
	// ServiceCategoriesColumns holds the columns for the "service_categories" table.
	ServiceCategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "icon", Type: field.TypeString, Size: 50},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "display_order", Type: field.TypeInt, Default: 0},
	}
	// ServiceCategoriesTable holds the schema information for the "service_categories" table.
	ServiceCategoriesTable = &schema.Table{
		Name:       "service_categories",
		Columns:    ServiceCategoriesColumns,
		PrimaryKey: []*schema.Column{ServiceCategoriesColumns[0]},
	}
	// ServiceDoctorSpecialtiesColumns holds the columns for the "service_doctor_specialties" table.
	ServiceDoctorSpecialtiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "proficiency_level", Type: field.TypeEnum, Enums: []string{"basic", "intermediate", "advanced", "expert"}, Default: "basic"},
		{Name: "is_preferred_provider", Type: field.TypeBool, Default: false},
		{Name: "service_id", Type: field.TypeUUID},
		{Name: "doctor_id", Type: field.TypeUUID},
	}
	// ServiceDoctorSpecialtiesTable holds the schema information for the "service_doctor_specialties" table.
	ServiceDoctorSpecialtiesTable = &schema.Table{
		Name:       "service_doctor_specialties",
		Columns:    ServiceDoctorSpecialtiesColumns,
		PrimaryKey: []*schema.Column{ServiceDoctorSpecialtiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "service_doctor_specialties_services_service",
				Columns:    []*schema.Column{ServiceDoctorSpecialtiesColumns[4]},
				RefColumns: []*schema.Column{ServicesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "service_doctor_specialties_doctors_doctor",
				Columns:    []*schema.Column{ServiceDoctorSpecialtiesColumns[5]},
				RefColumns: []*schema.Column{DoctorsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "servicedoctorspecialty_service_id_doctor_id",
				Unique:  true,
				Columns: []*schema.Column{ServiceDoctorSpecialtiesColumns[4], ServiceDoctorSpecialtiesColumns[5]},
			},
			{
				Name:    "servicedoctorspecialty_doctor_id",
				Unique:  false,
				Columns: []*schema.Column{ServiceDoctorSpecialtiesColumns[5]},
			},
		},
	}
	// ServicePackagesColumns holds the columns for the "service_packages" table.
	ServicePackagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 200},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 200},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "original_price", Type: field.TypeInt64},
		{Name: "package_price", Type: field.TypeInt64},
		{Name: "validity_days", Type: field.TypeInt, Default: 30},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "image_key", Type: field.TypeString, Nullable: true, Size: 500},
	}
	// ServicePackagesTable holds the schema information for the "service_packages" table.
	ServicePackagesTable = &schema.Table{
		Name:       "service_packages",
		Columns:    ServicePackagesColumns,
		PrimaryKey: []*schema.Column{ServicePackagesColumns[0]},
	}
	// SpecializationsColumns holds the columns for the "specializations" table.
	SpecializationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// SpecializationsTable holds the schema information for the "specializations" table.
	SpecializationsTable = &schema.Table{
		Name:       "specializations",
		Columns:    SpecializationsColumns,
		PrimaryKey: []*schema.Column{SpecializationsColumns[0]},
	}
	// TestimonialsColumns holds the columns for the "testimonials" table.
	TestimonialsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "rating", Type: field.TypeInt, Default: 5},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected"}, Default: "pending"},
		{Name: "image_key", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "submitted_at", Type: field.TypeTime},
		{Name: "approved_at", Type: field.TypeTime, Nullable: true},
		{Name: "approved_by_id", Type: field.TypeUUID, Nullable: true},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "service_id", Type: field.TypeUUID, Nullable: true},
		{Name: "doctor_id", Type: field.TypeUUID, Nullable: true},
	}
	// TestimonialsTable holds the schema information for the "testimonials" table.
	TestimonialsTable = &schema.Table{
		Name:       "testimonials",
		Columns:    TestimonialsColumns,
		PrimaryKey: []*schema.Column{TestimonialsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "testimonials_patients_patient",
				Columns:    []*schema.Column{TestimonialsColumns[10]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "testimonials_services_service",
				Columns:    []*schema.Column{TestimonialsColumns[11]},
				RefColumns: []*schema.Column{ServicesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "testimonials_doctors_doctor",
				Columns:    []*schema.Column{TestimonialsColumns[12]},
				RefColumns: []*schema.Column{DoctorsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "testimonial_status",
				Unique:  false,
				Columns: []*schema.Column{TestimonialsColumns[5]},
			},
			{
				Name:    "testimonial_doctor_id_status",
				Unique:  false,
				Columns: []*schema.Column{TestimonialsColumns[12], TestimonialsColumns[5]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_type", Type: field.TypeEnum, Enums: []string{"patient", "doctor", "admin", "staff"}, Default: "patient"},
		{Name: "first_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "last_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "date_of_birth", Type: field.TypeTime, Nullable: true},
		{Name: "profile_picture_key", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[7]},
			},
			{
				Name:    "user_user_type",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[4]},
			},
		},
	}
	// UserProfilesColumns holds the columns for the "user_profiles" table.
	UserProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "gender", Type: field.TypeEnum, Nullable: true, Enums: []string{"male", "female", "other", "undisclosed"}},
		{Name: "address", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "city", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "emergency_contact_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "emergency_contact_phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "emergency_contact_relationship", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "medical_conditions", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "allergies", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "medications", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
	}
	// UserProfilesTable holds the schema information for the "user_profiles" table.
	UserProfilesTable = &schema.Table{
		Name:       "user_profiles",
		Columns:    UserProfilesColumns,
		PrimaryKey: []*schema.Column{UserProfilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_profiles_users_profile",
				Columns:    []*schema.Column{UserProfilesColumns[12]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// UserSessionsColumns holds the columns for the "user_sessions" table.
	UserSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true, Size: 36},
		{Name: "refresh_token_hash", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true, Size: 45},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// UserSessionsTable holds the schema information for the "user_sessions" table.
	UserSessionsTable = &schema.Table{
		Name:       "user_sessions",
		Columns:    UserSessionsColumns,
		PrimaryKey: []*schema.Column{UserSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_sessions_users_user",
				Columns:    []*schema.Column{UserSessionsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usersession_session_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[3]},
			},
			{
				Name:    "usersession_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[10]},
			},
		},
	}
	// WaitingListsColumns holds the columns for the "waiting_lists" table.
	WaitingListsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "preferred_date", Type: field.TypeTime, Nullable: true},
		{Name: "preferred_time", Type: field.TypeString, Nullable: true, Size: 5},
		{Name: "earliest_date", Type: field.TypeTime},
		{Name: "latest_date", Type: field.TypeTime},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "notified", Type: field.TypeBool, Default: false},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "service_id", Type: field.TypeUUID, Nullable: true},
	}
	// WaitingListsTable holds the schema information for the "waiting_lists" table.
	WaitingListsTable = &schema.Table{
		Name:       "waiting_lists",
		Columns:    WaitingListsColumns,
		PrimaryKey: []*schema.Column{WaitingListsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "waiting_lists_patients_patient",
				Columns:    []*schema.Column{WaitingListsColumns[9]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "waiting_lists_doctors_doctor",
				Columns:    []*schema.Column{WaitingListsColumns[10]},
				RefColumns: []*schema.Column{DoctorsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "waiting_lists_services_service",
				Columns:    []*schema.Column{WaitingListsColumns[11]},
				RefColumns: []*schema.Column{ServicesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "waitinglist_doctor_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{WaitingListsColumns[10], WaitingListsColumns[7]},
			},
			{
				Name:    "waitinglist_patient_id",
				Unique:  false,
				Columns: []*schema.Column{WaitingListsColumns[9]},
			},
		},
	}
	// DoctorSpecializationsColumns holds the columns for the "doctor_specializations" table.
	DoctorSpecializationsColumns = []*schema.Column{
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "specialization_id", Type: field.TypeUUID},
	}
	// DoctorSpecializationsTable holds the schema information for the "doctor_specializations" table.
	DoctorSpecializationsTable = &schema.Table{
		Name:       "doctor_specializations",
		Columns:    DoctorSpecializationsColumns,
		PrimaryKey: []*schema.Column{DoctorSpecializationsColumns[0], DoctorSpecializationsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "doctor_specializations_doctor_id",
				Columns:    []*schema.Column{DoctorSpecializationsColumns[0]},
				RefColumns: []*schema.Column{DoctorsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "doctor_specializations_specialization_id",
				Columns:    []*schema.Column{DoctorSpecializationsColumns[1]},
				RefColumns: []*schema.Column{SpecializationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// NewsletterCampaignSubscribersColumns holds the columns for the "newsletter_campaign_subscribers" table.
	NewsletterCampaignSubscribersColumns = []*schema.Column{
		{Name: "newsletter_campaign_id", Type: field.TypeUUID},
		{Name: "newsletter_subscriber_id", Type: field.TypeUUID},
	}
	// NewsletterCampaignSubscribersTable holds the schema information for the "newsletter_campaign_subscribers" table.
	NewsletterCampaignSubscribersTable = &schema.Table{
		Name:       "newsletter_campaign_subscribers",
		Columns:    NewsletterCampaignSubscribersColumns,
		PrimaryKey: []*schema.Column{NewsletterCampaignSubscribersColumns[0], NewsletterCampaignSubscribersColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "newsletter_campaign_subscribers_newsletter_campaign_id",
				Columns:    []*schema.Column{NewsletterCampaignSubscribersColumns[0]},
				RefColumns: []*schema.Column{NewsletterCampaignsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "newsletter_campaign_subscribers_newsletter_subscriber_id",
				Columns:    []*schema.Column{NewsletterCampaignSubscribersColumns[1]},
				RefColumns: []*schema.Column{NewsletterSubscribersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// ServicePackageServicesColumns holds the columns for the "service_package_services" table.
	ServicePackageServicesColumns = []*schema.Column{
		{Name: "service_package_id", Type: field.TypeUUID},
		{Name: "service_id", Type: field.TypeUUID},
	}
	// ServicePackageServicesTable holds the schema information for the "service_package_services" table.
	ServicePackageServicesTable = &schema.Table{
		Name:       "service_package_services",
		Columns:    ServicePackageServicesColumns,
		PrimaryKey: []*schema.Column{ServicePackageServicesColumns[0], ServicePackageServicesColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "service_package_services_service_package_id",
				Columns:    []*schema.Column{ServicePackageServicesColumns[0]},
				RefColumns: []*schema.Column{ServicePackagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "service_package_services_service_id",
				Columns:    []*schema.Column{ServicePackageServicesColumns[1]},
				RefColumns: []*schema.Column{ServicesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		AppointmentNotesTable,
		AppointmentReschedulesTable,
		AppointmentTypesTable,
		BusinessHoursTable,
		ClinicSettingsTable,
		ContactMessagesTable,
		ContactResponsesTable,
		DoctorsTable,
		DoctorAvailabilitiesTable,
		DoctorLeavesTable,
		EmailTemplatesTable,
		HolidaysTable,
		MedicalHistoriesTable,
		NewslettersTable,
		NewsletterCampaignsTable,
		NewsletterSubscribersTable,
		PatientsTable,
		PatientDocumentsTable,
		SmsTemplatesTable,
		ServicesTable,
		ServiceCategoriesTable,
		ServiceDoctorSpecialtiesTable,
		ServicePackagesTable,
		SpecializationsTable,
		TestimonialsTable,
		UsersTable,
		UserProfilesTable,
		UserSessionsTable,
		WaitingListsTable,
		DoctorSpecializationsTable,
		NewsletterCampaignSubscribersTable,
		ServicePackageServicesTable,
	}
)

func init() {
	AppointmentsTable.ForeignKeys[0].RefTable = PatientsTable
	AppointmentsTable.ForeignKeys[1].RefTable = DoctorsTable
	AppointmentsTable.ForeignKeys[2].RefTable = ServicesTable
	AppointmentsTable.ForeignKeys[3].RefTable = AppointmentTypesTable
	AppointmentsTable.ForeignKeys[4].RefTable = AppointmentsTable
	AppointmentNotesTable.ForeignKeys[0].RefTable = AppointmentsTable
	AppointmentReschedulesTable.ForeignKeys[0].RefTable = AppointmentsTable
	BusinessHoursTable.ForeignKeys[0].RefTable = ClinicSettingsTable
	ContactMessagesTable.ForeignKeys[0].RefTable = UsersTable
	ContactResponsesTable.ForeignKeys[0].RefTable = ContactMessagesTable
	DoctorsTable.ForeignKeys[0].RefTable = UsersTable
	DoctorAvailabilitiesTable.ForeignKeys[0].RefTable = DoctorsTable
	DoctorLeavesTable.ForeignKeys[0].RefTable = DoctorsTable
	MedicalHistoriesTable.ForeignKeys[0].RefTable = PatientsTable
	NewsletterCampaignsTable.ForeignKeys[0].RefTable = NewslettersTable
	PatientsTable.ForeignKeys[0].RefTable = UsersTable
	PatientsTable.ForeignKeys[1].RefTable = PatientsTable
	PatientDocumentsTable.ForeignKeys[0].RefTable = PatientsTable
	PatientDocumentsTable.ForeignKeys[1].RefTable = UsersTable
	ServicesTable.ForeignKeys[0].RefTable = ServiceCategoriesTable
	ServiceDoctorSpecialtiesTable.ForeignKeys[0].RefTable = ServicesTable
	ServiceDoctorSpecialtiesTable.ForeignKeys[1].RefTable = DoctorsTable
	TestimonialsTable.ForeignKeys[0].RefTable = PatientsTable
	TestimonialsTable.ForeignKeys[1].RefTable = ServicesTable
	TestimonialsTable.ForeignKeys[2].RefTable = DoctorsTable
	UserProfilesTable.ForeignKeys[0].RefTable = UsersTable
	UserSessionsTable.ForeignKeys[0].RefTable = UsersTable
	WaitingListsTable.ForeignKeys[0].RefTable = PatientsTable
	WaitingListsTable.ForeignKeys[1].RefTable = DoctorsTable
	WaitingListsTable.ForeignKeys[2].RefTable = ServicesTable
	DoctorSpecializationsTable.ForeignKeys[0].RefTable = DoctorsTable
	DoctorSpecializationsTable.ForeignKeys[1].RefTable = SpecializationsTable
	NewsletterCampaignSubscribersTable.ForeignKeys[0].RefTable = NewsletterCampaignsTable
	NewsletterCampaignSubscribersTable.ForeignKeys[1].RefTable = NewsletterSubscribersTable
	ServicePackageServicesTable.ForeignKeys[0].RefTable = ServicePackagesTable
	ServicePackageServicesTable.ForeignKeys[1].RefTable = ServicesTable
}
