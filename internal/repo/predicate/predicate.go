// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// AppointmentNote is the predicate function for appointmentnote builders.
type AppointmentNote func(*sql.Selector)

// AppointmentReschedule is the predicate function for appointmentreschedule builders.
type AppointmentReschedule func(*sql.Selector)

// AppointmentType is the predicate function for appointmenttype builders.
type AppointmentType func(*sql.Selector)

// BusinessHours is the predicate function for businesshours builders.
type BusinessHours func(*sql.Selector)

// ClinicSettings is the predicate function for clinicsettings builders.
type ClinicSettings func(*sql.Selector)

// ContactMessage is the predicate function for contactmessage builders.
type ContactMessage func(*sql.Selector)

// ContactResponse is the predicate function for contactresponse builders.
type ContactResponse func(*sql.Selector)

// Doctor is the predicate function for doctor builders.
type Doctor func(*sql.Selector)

// DoctorAvailability is the predicate function for doctoravailability builders.
type DoctorAvailability func(*sql.Selector)

// DoctorLeave is the predicate function for doctorleave builders.
type DoctorLeave func(*sql.Selector)

// EmailTemplate is the predicate function for emailtemplate builders.
type EmailTemplate func(*sql.Selector)

// Holiday is the predicate function for holiday builders.
type Holiday func(*sql.Selector)

// MedicalHistory is the predicate function for medicalhistory builders.
type MedicalHistory func(*sql.Selector)

// Newsletter is the predicate function for newsletter builders.
type Newsletter func(*sql.Selector)

// NewsletterCampaign is the predicate function for newslettercampaign builders.
type NewsletterCampaign func(*sql.Selector)

// NewsletterSubscriber is the predicate function for newslettersubscriber builders.
type NewsletterSubscriber func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// PatientDocument is the predicate function for patientdocument builders.
type PatientDocument func(*sql.Selector)

// SMSTemplate is the predicate function for smstemplate builders.
type SMSTemplate func(*sql.Selector)

// Service is the predicate function for service builders.
type Service func(*sql.Selector)

// ServiceCategory is the predicate function for servicecategory builders.
type ServiceCategory func(*sql.Selector)

// ServiceDoctorSpecialty is the predicate function for servicedoctorspecialty builders.
type ServiceDoctorSpecialty func(*sql.Selector)

// ServicePackage is the predicate function for servicepackage builders.
type ServicePackage func(*sql.Selector)

// Specialization is the predicate function for specialization builders.
type Specialization func(*sql.Selector)

// Testimonial is the predicate function for testimonial builders.
type Testimonial func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserProfile is the predicate function for userprofile builders.
type UserProfile func(*sql.Selector)

// UserSession is the predicate function for usersession builders.
type UserSession func(*sql.Selector)

// WaitingList is the predicate function for waitinglist builders.
type WaitingList func(*sql.Selector)
