// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"sync"

	"entgo.io/ent/dialect"
)

// Tx is a transactional client that is created by calling Client.Tx().
type Tx struct {
	config
	// Appointment is the client for interacting with the Appointment builders.
	Appointment *AppointmentClient
	// AppointmentNote is the client for interacting with the AppointmentNote builders.
	AppointmentNote *AppointmentNoteClient
	// AppointmentReschedule is the client for interacting with the AppointmentReschedule builders.
	AppointmentReschedule *AppointmentRescheduleClient
	// AppointmentType is the client for interacting with the AppointmentType builders.
	AppointmentType *AppointmentTypeClient
	// BusinessHours is the client for interacting with the BusinessHours builders.
	BusinessHours *BusinessHoursClient
	// ClinicSettings is the client for interacting with the ClinicSettings builders.
	ClinicSettings *ClinicSettingsClient
	// ContactMessage is the client for interacting with the ContactMessage builders.
	ContactMessage *ContactMessageClient
	// ContactResponse is the client for interacting with the ContactResponse builders.
	ContactResponse *ContactResponseClient
	// Doctor is the client for interacting with the Doctor builders.
	Doctor *DoctorClient
	// DoctorAvailability is the client for interacting with the DoctorAvailability builders.
	DoctorAvailability *DoctorAvailabilityClient
	// DoctorLeave is the client for interacting with the DoctorLeave builders.
	DoctorLeave *DoctorLeaveClient
	// EmailTemplate is the client for interacting with the EmailTemplate builders.
	EmailTemplate *EmailTemplateClient
	// Holiday is the client for interacting with the Holiday builders.
	Holiday *HolidayClient
	// MedicalHistory is the client for interacting with the MedicalHistory builders.
	MedicalHistory *MedicalHistoryClient
	// Newsletter is the client for interacting with the Newsletter builders.
	Newsletter *NewsletterClient
	// NewsletterCampaign is the client for interacting with the NewsletterCampaign builders.
	NewsletterCampaign *NewsletterCampaignClient
	// NewsletterSubscriber is the client for interacting with the NewsletterSubscriber builders.
	NewsletterSubscriber *NewsletterSubscriberClient
	// Patient is the client for interacting with the Patient builders.
	Patient *PatientClient
	// PatientDocument is the client for interacting with the PatientDocument builders.
	PatientDocument *PatientDocumentClient
	// SMSTemplate is the client for interacting with the SMSTemplate builders.
	SMSTemplate *SMSTemplateClient
	// Service is the client for interacting with the Service builders.
	Service *ServiceClient
	// ServiceCategory is the client for interacting with the ServiceCategory builders.
	ServiceCategory *ServiceCategoryClient
	// ServiceDoctorSpecialty is the client for interacting with the ServiceDoctorSpecialty builders.
	ServiceDoctorSpecialty *ServiceDoctorSpecialtyClient
	// ServicePackage is the client for interacting with the ServicePackage builders.
	ServicePackage *ServicePackageClient
	// Specialization is the client for interacting with the Specialization builders.
	Specialization *SpecializationClient
	// Testimonial is the client for interacting with the Testimonial builders.
	Testimonial *TestimonialClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// UserProfile is the client for interacting with the UserProfile builders.
	UserProfile *UserProfileClient
	// UserSession is the client for interacting with the UserSession builders.
	UserSession *UserSessionClient
	// WaitingList is the client for interacting with the WaitingList builders.
	WaitingList *WaitingListClient

	// lazily loaded.
	client     *Client
	clientOnce sync.Once
	// ctx lives for the life of the transaction. It is
	// the same context used by the underlying connection.
	ctx context.Context
}

type (
	// Committer is the interface that wraps the Commit method.
	Committer interface {
		Commit(context.Context, *Tx) error
	}

	// The CommitFunc type is an adapter to allow the use of ordinary
	// function as a Committer. If f is a function with the appropriate
	// signature, CommitFunc(f) is a Committer that calls f.
	CommitFunc func(context.Context, *Tx) error

	// CommitHook defines the "commit middleware". A function that gets a Committer
	// and returns a Committer. For example:
	//
	//	hook := func(next ent.Committer) ent.Committer {
	//		return ent.CommitFunc(func(ctx context.Context, tx *ent.Tx) error {
	//			// Do some stuff before.
	//			if err := next.Commit(ctx, tx); err != nil {
	//				return err
	//			}
	//			// Do some stuff after.
	//			return nil
	//		})
	//	}
	//
	CommitHook func(Committer) Committer
)

// Commit calls f(ctx, m).
func (f CommitFunc) Commit(ctx context.Context, tx *Tx) error {
	return f(ctx, tx)
}

// Commit commits the transaction.
func (tx *Tx) Commit() error {
	txDriver := tx.config.driver.(*txDriver)
	var fn Committer = CommitFunc(func(context.Context, *Tx) error {
		return txDriver.tx.Commit()
	})
	txDriver.mu.Lock()
	hooks := append([]CommitHook(nil), txDriver.onCommit...)
	txDriver.mu.Unlock()
	for i := len(hooks) - 1; i >= 0; i-- {
		fn = hooks[i](fn)
	}
	return fn.Commit(tx.ctx, tx)
}

// OnCommit adds a hook to call on commit.
func (tx *Tx) OnCommit(f CommitHook) {
	txDriver := tx.config.driver.(*txDriver)
	txDriver.mu.Lock()
	txDriver.onCommit = append(txDriver.onCommit, f)
	txDriver.mu.Unlock()
}

type (
	// Rollbacker is the interface that wraps the Rollback method.
	Rollbacker interface {
		Rollback(context.Context, *Tx) error
	}

	// The RollbackFunc type is an adapter to allow the use of ordinary
	// function as a Rollbacker. If f is a function with the appropriate
	// signature, RollbackFunc(f) is a Rollbacker that calls f.
	RollbackFunc func(context.Context, *Tx) error

	// RollbackHook defines the "rollback middleware". A function that gets a Rollbacker
	// and returns a Rollbacker. For example:
	//
	//	hook := func(next ent.Rollbacker) ent.Rollbacker {
	//		return ent.RollbackFunc(func(ctx context.Context, tx *ent.Tx) error {
	//			// Do some stuff before.
	//			if err := next.Rollback(ctx, tx); err != nil {
	//				return err
	//			}
	//			// Do some stuff after.
	//			return nil
	//		})
	//	}
	//
	RollbackHook func(Rollbacker) Rollbacker
)

// Rollback calls f(ctx, m).
func (f RollbackFunc) Rollback(ctx context.Context, tx *Tx) error {
	return f(ctx, tx)
}

// Rollback rollbacks the transaction.
func (tx *Tx) Rollback() error {
	txDriver := tx.config.driver.(*txDriver)
	var fn Rollbacker = RollbackFunc(func(context.Context, *Tx) error {
		return txDriver.tx.Rollback()
	})
	txDriver.mu.Lock()
	hooks := append([]RollbackHook(nil), txDriver.onRollback...)
	txDriver.mu.Unlock()
	for i := len(hooks) - 1; i >= 0; i-- {
		fn = hooks[i](fn)
	}
	return fn.Rollback(tx.ctx, tx)
}

// OnRollback adds a hook to call on rollback.
func (tx *Tx) OnRollback(f RollbackHook) {
	txDriver := tx.config.driver.(*txDriver)
	txDriver.mu.Lock()
	txDriver.onRollback = append(txDriver.onRollback, f)
	txDriver.mu.Unlock()
}

// Client returns a Client that binds to current transaction.
func (tx *Tx) Client() *Client {
	tx.clientOnce.Do(func() {
		tx.client = &Client{config: tx.config}
		tx.client.init()
	})
	return tx.client
}

func (tx *Tx) init() {
	tx.Appointment = NewAppointmentClient(tx.config)
	tx.AppointmentNote = NewAppointmentNoteClient(tx.config)
	tx.AppointmentReschedule = NewAppointmentRescheduleClient(tx.config)
	tx.AppointmentType = NewAppointmentTypeClient(tx.config)
	tx.BusinessHours = NewBusinessHoursClient(tx.config)
	tx.ClinicSettings = NewClinicSettingsClient(tx.config)
	tx.ContactMessage = NewContactMessageClient(tx.config)
	tx.ContactResponse = NewContactResponseClient(tx.config)
	tx.Doctor = NewDoctorClient(tx.config)
	tx.DoctorAvailability = NewDoctorAvailabilityClient(tx.config)
	tx.DoctorLeave = NewDoctorLeaveClient(tx.config)
	tx.EmailTemplate = NewEmailTemplateClient(tx.config)
	tx.Holiday = NewHolidayClient(tx.config)
	tx.MedicalHistory = NewMedicalHistoryClient(tx.config)
	tx.Newsletter = NewNewsletterClient(tx.config)
	tx.NewsletterCampaign = NewNewsletterCampaignClient(tx.config)
	tx.NewsletterSubscriber = NewNewsletterSubscriberClient(tx.config)
	tx.Patient = NewPatientClient(tx.config)
	tx.PatientDocument = NewPatientDocumentClient(tx.config)
	tx.SMSTemplate = NewSMSTemplateClient(tx.config)
	tx.Service = NewServiceClient(tx.config)
	tx.ServiceCategory = NewServiceCategoryClient(tx.config)
	tx.ServiceDoctorSpecialty = NewServiceDoctorSpecialtyClient(tx.config)
	tx.ServicePackage = NewServicePackageClient(tx.config)
	tx.Specialization = NewSpecializationClient(tx.config)
	tx.Testimonial = NewTestimonialClient(tx.config)
	tx.User = NewUserClient(tx.config)
	tx.UserProfile = NewUserProfileClient(tx.config)
	tx.UserSession = NewUserSessionClient(tx.config)
	tx.WaitingList = NewWaitingListClient(tx.config)
}

// txDriver wraps the given dialect.Tx with a nop dialect.Driver implementation.
// The idea is to support transactions without adding any extra code to the builders.
// When a builder calls to driver.Tx(), it gets the same dialect.Tx instance.
// Commit and Rollback are nop for the internal builders and the user must call one
// of them in order to commit or rollback the transaction.
//
// If a closed transaction is embedded in one of the generated entities, and the entity
// applies a query, for example: Appointment.QueryXXX(), the query will be executed
// through the driver which created this transaction.
//
// Note that txDriver is not goroutine safe.
type txDriver struct {
	// the driver we started the transaction from.
	drv dialect.Driver
	// tx is the underlying transaction.
	tx dialect.Tx
	// completion hooks.
	mu         sync.Mutex
	onCommit   []CommitHook
	onRollback []RollbackHook
}

// newTx creates a new transactional driver.
func newTx(ctx context.Context, drv dialect.Driver) (*txDriver, error) {
	tx, err := drv.Tx(ctx)
	if err != nil {
		return nil, err
	}
	return &txDriver{tx: tx, drv: drv}, nil
}

// Tx returns the transaction wrapper (txDriver) to avoid Commit or Rollback calls
// from the internal builders. Should be called only by the internal builders.
func (tx *txDriver) Tx(context.Context) (dialect.Tx, error) { return tx, nil }

// Dialect returns the dialect of the driver we started the transaction from.
func (tx *txDriver) Dialect() string { return tx.drv.Dialect() }

// Close is a nop close.
func (*txDriver) Close() error { return nil }

// Commit is a nop commit for the internal builders.
// User must call `Tx.Commit` in order to commit the transaction.
func (*txDriver) Commit() error { return nil }

// Rollback is a nop rollback for the internal builders.
// User must call `Tx.Rollback` in order to rollback the transaction.
func (*txDriver) Rollback() error { return nil }

// Exec calls tx.Exec.
func (tx *txDriver) Exec(ctx context.Context, query string, args, v any) error {
	return tx.tx.Exec(ctx, query, args, v)
}

// Query calls tx.Query.
func (tx *txDriver) Query(ctx context.Context, query string, args, v any) error {
	return tx.tx.Query(ctx, query, args, v)
}

var _ dialect.Driver = (*txDriver)(nil)
