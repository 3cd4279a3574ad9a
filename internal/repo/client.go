// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointment"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointmentnote"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointmentreschedule"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/appointmenttype"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/businesshours"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/clinicsettings"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/contactmessage"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/contactresponse"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctor"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctoravailability"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctorleave"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/emailtemplate"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/holiday"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/medicalhistory"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/newsletter"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/newslettercampaign"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/newslettersubscriber"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/patient"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/patientdocument"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/service"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/servicecategory"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/servicedoctorspecialty"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/servicepackage"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/smstemplate"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/specialization"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/testimonial"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/user"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/userprofile"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/usersession"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/waitinglist"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
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
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Appointment = NewAppointmentClient(c.config)
	c.AppointmentNote = NewAppointmentNoteClient(c.config)
	c.AppointmentReschedule = NewAppointmentRescheduleClient(c.config)
	c.AppointmentType = NewAppointmentTypeClient(c.config)
	c.BusinessHours = NewBusinessHoursClient(c.config)
	c.ClinicSettings = NewClinicSettingsClient(c.config)
	c.ContactMessage = NewContactMessageClient(c.config)
	c.ContactResponse = NewContactResponseClient(c.config)
	c.Doctor = NewDoctorClient(c.config)
	c.DoctorAvailability = NewDoctorAvailabilityClient(c.config)
	c.DoctorLeave = NewDoctorLeaveClient(c.config)
	c.EmailTemplate = NewEmailTemplateClient(c.config)
	c.Holiday = NewHolidayClient(c.config)
	c.MedicalHistory = NewMedicalHistoryClient(c.config)
	c.Newsletter = NewNewsletterClient(c.config)
	c.NewsletterCampaign = NewNewsletterCampaignClient(c.config)
	c.NewsletterSubscriber = NewNewsletterSubscriberClient(c.config)
	c.Patient = NewPatientClient(c.config)
	c.PatientDocument = NewPatientDocumentClient(c.config)
	c.SMSTemplate = NewSMSTemplateClient(c.config)
	c.Service = NewServiceClient(c.config)
	c.ServiceCategory = NewServiceCategoryClient(c.config)
	c.ServiceDoctorSpecialty = NewServiceDoctorSpecialtyClient(c.config)
	c.ServicePackage = NewServicePackageClient(c.config)
	c.Specialization = NewSpecializationClient(c.config)
	c.Testimonial = NewTestimonialClient(c.config)
	c.User = NewUserClient(c.config)
	c.UserProfile = NewUserProfileClient(c.config)
	c.UserSession = NewUserSessionClient(c.config)
	c.WaitingList = NewWaitingListClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                    ctx,
		config:                 cfg,
		Appointment:            NewAppointmentClient(cfg),
		AppointmentNote:        NewAppointmentNoteClient(cfg),
		AppointmentReschedule:  NewAppointmentRescheduleClient(cfg),
		AppointmentType:        NewAppointmentTypeClient(cfg),
		BusinessHours:          NewBusinessHoursClient(cfg),
		ClinicSettings:         NewClinicSettingsClient(cfg),
		ContactMessage:         NewContactMessageClient(cfg),
		ContactResponse:        NewContactResponseClient(cfg),
		Doctor:                 NewDoctorClient(cfg),
		DoctorAvailability:     NewDoctorAvailabilityClient(cfg),
		DoctorLeave:            NewDoctorLeaveClient(cfg),
		EmailTemplate:          NewEmailTemplateClient(cfg),
		Holiday:                NewHolidayClient(cfg),
		MedicalHistory:         NewMedicalHistoryClient(cfg),
		Newsletter:             NewNewsletterClient(cfg),
		NewsletterCampaign:     NewNewsletterCampaignClient(cfg),
		NewsletterSubscriber:   NewNewsletterSubscriberClient(cfg),
		Patient:                NewPatientClient(cfg),
		PatientDocument:        NewPatientDocumentClient(cfg),
		SMSTemplate:            NewSMSTemplateClient(cfg),
		Service:                NewServiceClient(cfg),
		ServiceCategory:        NewServiceCategoryClient(cfg),
		ServiceDoctorSpecialty: NewServiceDoctorSpecialtyClient(cfg),
		ServicePackage:         NewServicePackageClient(cfg),
		Specialization:         NewSpecializationClient(cfg),
		Testimonial:            NewTestimonialClient(cfg),
		User:                   NewUserClient(cfg),
		UserProfile:            NewUserProfileClient(cfg),
		UserSession:            NewUserSessionClient(cfg),
		WaitingList:            NewWaitingListClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                    ctx,
		config:                 cfg,
		Appointment:            NewAppointmentClient(cfg),
		AppointmentNote:        NewAppointmentNoteClient(cfg),
		AppointmentReschedule:  NewAppointmentRescheduleClient(cfg),
		AppointmentType:        NewAppointmentTypeClient(cfg),
		BusinessHours:          NewBusinessHoursClient(cfg),
		ClinicSettings:         NewClinicSettingsClient(cfg),
		ContactMessage:         NewContactMessageClient(cfg),
		ContactResponse:        NewContactResponseClient(cfg),
		Doctor:                 NewDoctorClient(cfg),
		DoctorAvailability:     NewDoctorAvailabilityClient(cfg),
		DoctorLeave:            NewDoctorLeaveClient(cfg),
		EmailTemplate:          NewEmailTemplateClient(cfg),
		Holiday:                NewHolidayClient(cfg),
		MedicalHistory:         NewMedicalHistoryClient(cfg),
		Newsletter:             NewNewsletterClient(cfg),
		NewsletterCampaign:     NewNewsletterCampaignClient(cfg),
		NewsletterSubscriber:   NewNewsletterSubscriberClient(cfg),
		Patient:                NewPatientClient(cfg),
		PatientDocument:        NewPatientDocumentClient(cfg),
		SMSTemplate:            NewSMSTemplateClient(cfg),
		Service:                NewServiceClient(cfg),
		ServiceCategory:        NewServiceCategoryClient(cfg),
		ServiceDoctorSpecialty: NewServiceDoctorSpecialtyClient(cfg),
		ServicePackage:         NewServicePackageClient(cfg),
		Specialization:         NewSpecializationClient(cfg),
		Testimonial:            NewTestimonialClient(cfg),
		User:                   NewUserClient(cfg),
		UserProfile:            NewUserProfileClient(cfg),
		UserSession:            NewUserSessionClient(cfg),
		WaitingList:            NewWaitingListClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Appointment.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Appointment, c.AppointmentNote, c.AppointmentReschedule, c.AppointmentType,
		c.BusinessHours, c.ClinicSettings, c.ContactMessage, c.ContactResponse,
		c.Doctor, c.DoctorAvailability, c.DoctorLeave, c.EmailTemplate, c.Holiday,
		c.MedicalHistory, c.Newsletter, c.NewsletterCampaign, c.NewsletterSubscriber,
		c.Patient, c.PatientDocument, c.SMSTemplate, c.Service, c.ServiceCategory,
		c.ServiceDoctorSpecialty, c.ServicePackage, c.Specialization, c.Testimonial,
		c.User, c.UserProfile, c.UserSession, c.WaitingList,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Appointment, c.AppointmentNote, c.AppointmentReschedule, c.AppointmentType,
		c.BusinessHours, c.ClinicSettings, c.ContactMessage, c.ContactResponse,
		c.Doctor, c.DoctorAvailability, c.DoctorLeave, c.EmailTemplate, c.Holiday,
		c.MedicalHistory, c.Newsletter, c.NewsletterCampaign, c.NewsletterSubscriber,
		c.Patient, c.PatientDocument, c.SMSTemplate, c.Service, c.ServiceCategory,
		c.ServiceDoctorSpecialty, c.ServicePackage, c.Specialization, c.Testimonial,
		c.User, c.UserProfile, c.UserSession, c.WaitingList,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AppointmentMutation:
		return c.Appointment.mutate(ctx, m)
	case *AppointmentNoteMutation:
		return c.AppointmentNote.mutate(ctx, m)
	case *AppointmentRescheduleMutation:
		return c.AppointmentReschedule.mutate(ctx, m)
	case *AppointmentTypeMutation:
		return c.AppointmentType.mutate(ctx, m)
	case *BusinessHoursMutation:
		return c.BusinessHours.mutate(ctx, m)
	case *ClinicSettingsMutation:
		return c.ClinicSettings.mutate(ctx, m)
	case *ContactMessageMutation:
		return c.ContactMessage.mutate(ctx, m)
	case *ContactResponseMutation:
		return c.ContactResponse.mutate(ctx, m)
	case *DoctorMutation:
		return c.Doctor.mutate(ctx, m)
	case *DoctorAvailabilityMutation:
		return c.DoctorAvailability.mutate(ctx, m)
	case *DoctorLeaveMutation:
		return c.DoctorLeave.mutate(ctx, m)
	case *EmailTemplateMutation:
		return c.EmailTemplate.mutate(ctx, m)
	case *HolidayMutation:
		return c.Holiday.mutate(ctx, m)
	case *MedicalHistoryMutation:
		return c.MedicalHistory.mutate(ctx, m)
	case *NewsletterMutation:
		return c.Newsletter.mutate(ctx, m)
	case *NewsletterCampaignMutation:
		return c.NewsletterCampaign.mutate(ctx, m)
	case *NewsletterSubscriberMutation:
		return c.NewsletterSubscriber.mutate(ctx, m)
	case *PatientMutation:
		return c.Patient.mutate(ctx, m)
	case *PatientDocumentMutation:
		return c.PatientDocument.mutate(ctx, m)
	case *SMSTemplateMutation:
		return c.SMSTemplate.mutate(ctx, m)
	case *ServiceMutation:
		return c.Service.mutate(ctx, m)
	case *ServiceCategoryMutation:
		return c.ServiceCategory.mutate(ctx, m)
	case *ServiceDoctorSpecialtyMutation:
		return c.ServiceDoctorSpecialty.mutate(ctx, m)
	case *ServicePackageMutation:
		return c.ServicePackage.mutate(ctx, m)
	case *SpecializationMutation:
		return c.Specialization.mutate(ctx, m)
	case *TestimonialMutation:
		return c.Testimonial.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *UserProfileMutation:
		return c.UserProfile.mutate(ctx, m)
	case *UserSessionMutation:
		return c.UserSession.mutate(ctx, m)
	case *WaitingListMutation:
		return c.WaitingList.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// AppointmentClient is a client for the Appointment schema.
type AppointmentClient struct {
	config
}

// NewAppointmentClient returns a client for the Appointment from the given config.
func NewAppointmentClient(c config) *AppointmentClient {
	return &AppointmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `appointment.Hooks(f(g(h())))`.
func (c *AppointmentClient) Use(hooks ...Hook) {
	c.hooks.Appointment = append(c.hooks.Appointment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `appointment.Intercept(f(g(h())))`.
func (c *AppointmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Appointment = append(c.inters.Appointment, interceptors...)
}

// Create returns a builder for creating a Appointment entity.
func (c *AppointmentClient) Create() *AppointmentCreate {
	mutation := newAppointmentMutation(c.config, OpCreate)
	return &AppointmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Appointment entities.
func (c *AppointmentClient) CreateBulk(builders ...*AppointmentCreate) *AppointmentCreateBulk {
	return &AppointmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AppointmentClient) MapCreateBulk(slice any, setFunc func(*AppointmentCreate, int)) *AppointmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AppointmentCreateBulk{err: fmt.Errorf("calling to AppointmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AppointmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AppointmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Appointment.
func (c *AppointmentClient) Update() *AppointmentUpdate {
	mutation := newAppointmentMutation(c.config, OpUpdate)
	return &AppointmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AppointmentClient) UpdateOne(_m *Appointment) *AppointmentUpdateOne {
	mutation := newAppointmentMutation(c.config, OpUpdateOne, withAppointment(_m))
	return &AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AppointmentClient) UpdateOneID(id uuid.UUID) *AppointmentUpdateOne {
	mutation := newAppointmentMutation(c.config, OpUpdateOne, withAppointmentID(id))
	return &AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Appointment.
func (c *AppointmentClient) Delete() *AppointmentDelete {
	mutation := newAppointmentMutation(c.config, OpDelete)
	return &AppointmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AppointmentClient) DeleteOne(_m *Appointment) *AppointmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AppointmentClient) DeleteOneID(id uuid.UUID) *AppointmentDeleteOne {
	builder := c.Delete().Where(appointment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AppointmentDeleteOne{builder}
}

// Query returns a query builder for Appointment.
func (c *AppointmentClient) Query() *AppointmentQuery {
	return &AppointmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAppointment},
		inters: c.Interceptors(),
	}
}

// Get returns a Appointment entity by its id.
func (c *AppointmentClient) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return c.Query().Where(appointment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AppointmentClient) GetX(ctx context.Context, id uuid.UUID) *Appointment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatient queries the patient edge of a Appointment.
func (c *AppointmentClient) QueryPatient(_m *Appointment) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(appointment.Table, appointment.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, appointment.PatientTable, appointment.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDoctor queries the doctor edge of a Appointment.
func (c *AppointmentClient) QueryDoctor(_m *Appointment) *DoctorQuery {
	query := (&DoctorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(appointment.Table, appointment.FieldID, id),
			sqlgraph.To(doctor.Table, doctor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, appointment.DoctorTable, appointment.DoctorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryService queries the service edge of a Appointment.
func (c *AppointmentClient) QueryService(_m *Appointment) *ServiceQuery {
	query := (&ServiceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(appointment.Table, appointment.FieldID, id),
			sqlgraph.To(service.Table, service.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, appointment.ServiceTable, appointment.ServiceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAppointmentType queries the appointment_type edge of a Appointment.
func (c *AppointmentClient) QueryAppointmentType(_m *Appointment) *AppointmentTypeQuery {
	query := (&AppointmentTypeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(appointment.Table, appointment.FieldID, id),
			sqlgraph.To(appointmenttype.Table, appointmenttype.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, appointment.AppointmentTypeTable, appointment.AppointmentTypeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPreviousAppointment queries the previous_appointment edge of a Appointment.
func (c *AppointmentClient) QueryPreviousAppointment(_m *Appointment) *AppointmentQuery {
	query := (&AppointmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(appointment.Table, appointment.FieldID, id),
			sqlgraph.To(appointment.Table, appointment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, appointment.PreviousAppointmentTable, appointment.PreviousAppointmentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFollowUps queries the follow_ups edge of a Appointment.
func (c *AppointmentClient) QueryFollowUps(_m *Appointment) *AppointmentQuery {
	query := (&AppointmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(appointment.Table, appointment.FieldID, id),
			sqlgraph.To(appointment.Table, appointment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, appointment.FollowUpsTable, appointment.FollowUpsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReschedules queries the reschedules edge of a Appointment.
func (c *AppointmentClient) QueryReschedules(_m *Appointment) *AppointmentRescheduleQuery {
	query := (&AppointmentRescheduleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(appointment.Table, appointment.FieldID, id),
			sqlgraph.To(appointmentreschedule.Table, appointmentreschedule.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, appointment.ReschedulesTable, appointment.ReschedulesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAppointmentNotes queries the appointment_notes edge of a Appointment.
func (c *AppointmentClient) QueryAppointmentNotes(_m *Appointment) *AppointmentNoteQuery {
	query := (&AppointmentNoteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(appointment.Table, appointment.FieldID, id),
			sqlgraph.To(appointmentnote.Table, appointmentnote.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, appointment.AppointmentNotesTable, appointment.AppointmentNotesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AppointmentClient) Hooks() []Hook {
	return c.hooks.Appointment
}

// Interceptors returns the client interceptors.
func (c *AppointmentClient) Interceptors() []Interceptor {
	return c.inters.Appointment
}

func (c *AppointmentClient) mutate(ctx context.Context, m *AppointmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AppointmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AppointmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AppointmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Appointment mutation op: %q", m.Op())
	}
}

// AppointmentNoteClient is a client for the AppointmentNote schema.
type AppointmentNoteClient struct {
	config
}

// NewAppointmentNoteClient returns a client for the AppointmentNote from the given config.
func NewAppointmentNoteClient(c config) *AppointmentNoteClient {
	return &AppointmentNoteClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `appointmentnote.Hooks(f(g(h())))`.
func (c *AppointmentNoteClient) Use(hooks ...Hook) {
	c.hooks.AppointmentNote = append(c.hooks.AppointmentNote, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `appointmentnote.Intercept(f(g(h())))`.
func (c *AppointmentNoteClient) Intercept(interceptors ...Interceptor) {
	c.inters.AppointmentNote = append(c.inters.AppointmentNote, interceptors...)
}

// Create returns a builder for creating a AppointmentNote entity.
func (c *AppointmentNoteClient) Create() *AppointmentNoteCreate {
	mutation := newAppointmentNoteMutation(c.config, OpCreate)
	return &AppointmentNoteCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AppointmentNote entities.
func (c *AppointmentNoteClient) CreateBulk(builders ...*AppointmentNoteCreate) *AppointmentNoteCreateBulk {
	return &AppointmentNoteCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AppointmentNoteClient) MapCreateBulk(slice any, setFunc func(*AppointmentNoteCreate, int)) *AppointmentNoteCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AppointmentNoteCreateBulk{err: fmt.Errorf("calling to AppointmentNoteClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AppointmentNoteCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AppointmentNoteCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AppointmentNote.
func (c *AppointmentNoteClient) Update() *AppointmentNoteUpdate {
	mutation := newAppointmentNoteMutation(c.config, OpUpdate)
	return &AppointmentNoteUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AppointmentNoteClient) UpdateOne(_m *AppointmentNote) *AppointmentNoteUpdateOne {
	mutation := newAppointmentNoteMutation(c.config, OpUpdateOne, withAppointmentNote(_m))
	return &AppointmentNoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AppointmentNoteClient) UpdateOneID(id uuid.UUID) *AppointmentNoteUpdateOne {
	mutation := newAppointmentNoteMutation(c.config, OpUpdateOne, withAppointmentNoteID(id))
	return &AppointmentNoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AppointmentNote.
func (c *AppointmentNoteClient) Delete() *AppointmentNoteDelete {
	mutation := newAppointmentNoteMutation(c.config, OpDelete)
	return &AppointmentNoteDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AppointmentNoteClient) DeleteOne(_m *AppointmentNote) *AppointmentNoteDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AppointmentNoteClient) DeleteOneID(id uuid.UUID) *AppointmentNoteDeleteOne {
	builder := c.Delete().Where(appointmentnote.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AppointmentNoteDeleteOne{builder}
}

// Query returns a query builder for AppointmentNote.
func (c *AppointmentNoteClient) Query() *AppointmentNoteQuery {
	return &AppointmentNoteQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAppointmentNote},
		inters: c.Interceptors(),
	}
}

// Get returns a AppointmentNote entity by its id.
func (c *AppointmentNoteClient) Get(ctx context.Context, id uuid.UUID) (*AppointmentNote, error) {
	return c.Query().Where(appointmentnote.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AppointmentNoteClient) GetX(ctx context.Context, id uuid.UUID) *AppointmentNote {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAppointment queries the appointment edge of a AppointmentNote.
func (c *AppointmentNoteClient) QueryAppointment(_m *AppointmentNote) *AppointmentQuery {
	query := (&AppointmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(appointmentnote.Table, appointmentnote.FieldID, id),
			sqlgraph.To(appointment.Table, appointment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, appointmentnote.AppointmentTable, appointmentnote.AppointmentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AppointmentNoteClient) Hooks() []Hook {
	return c.hooks.AppointmentNote
}

// Interceptors returns the client interceptors.
func (c *AppointmentNoteClient) Interceptors() []Interceptor {
	return c.inters.AppointmentNote
}

func (c *AppointmentNoteClient) mutate(ctx context.Context, m *AppointmentNoteMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AppointmentNoteCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AppointmentNoteUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AppointmentNoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AppointmentNoteDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown AppointmentNote mutation op: %q", m.Op())
	}
}

// AppointmentRescheduleClient is a client for the AppointmentReschedule schema.
type AppointmentRescheduleClient struct {
	config
}

// NewAppointmentRescheduleClient returns a client for the AppointmentReschedule from the given config.
func NewAppointmentRescheduleClient(c config) *AppointmentRescheduleClient {
	return &AppointmentRescheduleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `appointmentreschedule.Hooks(f(g(h())))`.
func (c *AppointmentRescheduleClient) Use(hooks ...Hook) {
	c.hooks.AppointmentReschedule = append(c.hooks.AppointmentReschedule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `appointmentreschedule.Intercept(f(g(h())))`.
func (c *AppointmentRescheduleClient) Intercept(interceptors ...Interceptor) {
	c.inters.AppointmentReschedule = append(c.inters.AppointmentReschedule, interceptors...)
}

// Create returns a builder for creating a AppointmentReschedule entity.
func (c *AppointmentRescheduleClient) Create() *AppointmentRescheduleCreate {
	mutation := newAppointmentRescheduleMutation(c.config, OpCreate)
	return &AppointmentRescheduleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AppointmentReschedule entities.
func (c *AppointmentRescheduleClient) CreateBulk(builders ...*AppointmentRescheduleCreate) *AppointmentRescheduleCreateBulk {
	return &AppointmentRescheduleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AppointmentRescheduleClient) MapCreateBulk(slice any, setFunc func(*AppointmentRescheduleCreate, int)) *AppointmentRescheduleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AppointmentRescheduleCreateBulk{err: fmt.Errorf("calling to AppointmentRescheduleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AppointmentRescheduleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AppointmentRescheduleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AppointmentReschedule.
func (c *AppointmentRescheduleClient) Update() *AppointmentRescheduleUpdate {
	mutation := newAppointmentRescheduleMutation(c.config, OpUpdate)
	return &AppointmentRescheduleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AppointmentRescheduleClient) UpdateOne(_m *AppointmentReschedule) *AppointmentRescheduleUpdateOne {
	mutation := newAppointmentRescheduleMutation(c.config, OpUpdateOne, withAppointmentReschedule(_m))
	return &AppointmentRescheduleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AppointmentRescheduleClient) UpdateOneID(id uuid.UUID) *AppointmentRescheduleUpdateOne {
	mutation := newAppointmentRescheduleMutation(c.config, OpUpdateOne, withAppointmentRescheduleID(id))
	return &AppointmentRescheduleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AppointmentReschedule.
func (c *AppointmentRescheduleClient) Delete() *AppointmentRescheduleDelete {
	mutation := newAppointmentRescheduleMutation(c.config, OpDelete)
	return &AppointmentRescheduleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AppointmentRescheduleClient) DeleteOne(_m *AppointmentReschedule) *AppointmentRescheduleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AppointmentRescheduleClient) DeleteOneID(id uuid.UUID) *AppointmentRescheduleDeleteOne {
	builder := c.Delete().Where(appointmentreschedule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AppointmentRescheduleDeleteOne{builder}
}

// Query returns a query builder for AppointmentReschedule.
func (c *AppointmentRescheduleClient) Query() *AppointmentRescheduleQuery {
	return &AppointmentRescheduleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAppointmentReschedule},
		inters: c.Interceptors(),
	}
}

// Get returns a AppointmentReschedule entity by its id.
func (c *AppointmentRescheduleClient) Get(ctx context.Context, id uuid.UUID) (*AppointmentReschedule, error) {
	return c.Query().Where(appointmentreschedule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AppointmentRescheduleClient) GetX(ctx context.Context, id uuid.UUID) *AppointmentReschedule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAppointment queries the appointment edge of a AppointmentReschedule.
func (c *AppointmentRescheduleClient) QueryAppointment(_m *AppointmentReschedule) *AppointmentQuery {
	query := (&AppointmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(appointmentreschedule.Table, appointmentreschedule.FieldID, id),
			sqlgraph.To(appointment.Table, appointment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, appointmentreschedule.AppointmentTable, appointmentreschedule.AppointmentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AppointmentRescheduleClient) Hooks() []Hook {
	return c.hooks.AppointmentReschedule
}

// Interceptors returns the client interceptors.
func (c *AppointmentRescheduleClient) Interceptors() []Interceptor {
	return c.inters.AppointmentReschedule
}

func (c *AppointmentRescheduleClient) mutate(ctx context.Context, m *AppointmentRescheduleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AppointmentRescheduleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AppointmentRescheduleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AppointmentRescheduleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AppointmentRescheduleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown AppointmentReschedule mutation op: %q", m.Op())
	}
}

// AppointmentTypeClient is a client for the AppointmentType schema.
type AppointmentTypeClient struct {
	config
}

// NewAppointmentTypeClient returns a client for the AppointmentType from the given config.
func NewAppointmentTypeClient(c config) *AppointmentTypeClient {
	return &AppointmentTypeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `appointmenttype.Hooks(f(g(h())))`.
func (c *AppointmentTypeClient) Use(hooks ...Hook) {
	c.hooks.AppointmentType = append(c.hooks.AppointmentType, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `appointmenttype.Intercept(f(g(h())))`.
func (c *AppointmentTypeClient) Intercept(interceptors ...Interceptor) {
	c.inters.AppointmentType = append(c.inters.AppointmentType, interceptors...)
}

// Create returns a builder for creating a AppointmentType entity.
func (c *AppointmentTypeClient) Create() *AppointmentTypeCreate {
	mutation := newAppointmentTypeMutation(c.config, OpCreate)
	return &AppointmentTypeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AppointmentType entities.
func (c *AppointmentTypeClient) CreateBulk(builders ...*AppointmentTypeCreate) *AppointmentTypeCreateBulk {
	return &AppointmentTypeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AppointmentTypeClient) MapCreateBulk(slice any, setFunc func(*AppointmentTypeCreate, int)) *AppointmentTypeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AppointmentTypeCreateBulk{err: fmt.Errorf("calling to AppointmentTypeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AppointmentTypeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AppointmentTypeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AppointmentType.
func (c *AppointmentTypeClient) Update() *AppointmentTypeUpdate {
	mutation := newAppointmentTypeMutation(c.config, OpUpdate)
	return &AppointmentTypeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AppointmentTypeClient) UpdateOne(_m *AppointmentType) *AppointmentTypeUpdateOne {
	mutation := newAppointmentTypeMutation(c.config, OpUpdateOne, withAppointmentType(_m))
	return &AppointmentTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AppointmentTypeClient) UpdateOneID(id uuid.UUID) *AppointmentTypeUpdateOne {
	mutation := newAppointmentTypeMutation(c.config, OpUpdateOne, withAppointmentTypeID(id))
	return &AppointmentTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AppointmentType.
func (c *AppointmentTypeClient) Delete() *AppointmentTypeDelete {
	mutation := newAppointmentTypeMutation(c.config, OpDelete)
	return &AppointmentTypeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AppointmentTypeClient) DeleteOne(_m *AppointmentType) *AppointmentTypeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AppointmentTypeClient) DeleteOneID(id uuid.UUID) *AppointmentTypeDeleteOne {
	builder := c.Delete().Where(appointmenttype.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AppointmentTypeDeleteOne{builder}
}

// Query returns a query builder for AppointmentType.
func (c *AppointmentTypeClient) Query() *AppointmentTypeQuery {
	return &AppointmentTypeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAppointmentType},
		inters: c.Interceptors(),
	}
}

// Get returns a AppointmentType entity by its id.
func (c *AppointmentTypeClient) Get(ctx context.Context, id uuid.UUID) (*AppointmentType, error) {
	return c.Query().Where(appointmenttype.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AppointmentTypeClient) GetX(ctx context.Context, id uuid.UUID) *AppointmentType {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AppointmentTypeClient) Hooks() []Hook {
	return c.hooks.AppointmentType
}

// Interceptors returns the client interceptors.
func (c *AppointmentTypeClient) Interceptors() []Interceptor {
	return c.inters.AppointmentType
}

func (c *AppointmentTypeClient) mutate(ctx context.Context, m *AppointmentTypeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AppointmentTypeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AppointmentTypeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AppointmentTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AppointmentTypeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown AppointmentType mutation op: %q", m.Op())
	}
}

// BusinessHoursClient is a client for the BusinessHours schema.
type BusinessHoursClient struct {
	config
}

// NewBusinessHoursClient returns a client for the BusinessHours from the given config.
func NewBusinessHoursClient(c config) *BusinessHoursClient {
	return &BusinessHoursClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `businesshours.Hooks(f(g(h())))`.
func (c *BusinessHoursClient) Use(hooks ...Hook) {
	c.hooks.BusinessHours = append(c.hooks.BusinessHours, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `businesshours.Intercept(f(g(h())))`.
func (c *BusinessHoursClient) Intercept(interceptors ...Interceptor) {
	c.inters.BusinessHours = append(c.inters.BusinessHours, interceptors...)
}

// Create returns a builder for creating a BusinessHours entity.
func (c *BusinessHoursClient) Create() *BusinessHoursCreate {
	mutation := newBusinessHoursMutation(c.config, OpCreate)
	return &BusinessHoursCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BusinessHours entities.
func (c *BusinessHoursClient) CreateBulk(builders ...*BusinessHoursCreate) *BusinessHoursCreateBulk {
	return &BusinessHoursCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BusinessHoursClient) MapCreateBulk(slice any, setFunc func(*BusinessHoursCreate, int)) *BusinessHoursCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BusinessHoursCreateBulk{err: fmt.Errorf("calling to BusinessHoursClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BusinessHoursCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BusinessHoursCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BusinessHours.
func (c *BusinessHoursClient) Update() *BusinessHoursUpdate {
	mutation := newBusinessHoursMutation(c.config, OpUpdate)
	return &BusinessHoursUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BusinessHoursClient) UpdateOne(_m *BusinessHours) *BusinessHoursUpdateOne {
	mutation := newBusinessHoursMutation(c.config, OpUpdateOne, withBusinessHours(_m))
	return &BusinessHoursUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BusinessHoursClient) UpdateOneID(id uuid.UUID) *BusinessHoursUpdateOne {
	mutation := newBusinessHoursMutation(c.config, OpUpdateOne, withBusinessHoursID(id))
	return &BusinessHoursUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BusinessHours.
func (c *BusinessHoursClient) Delete() *BusinessHoursDelete {
	mutation := newBusinessHoursMutation(c.config, OpDelete)
	return &BusinessHoursDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BusinessHoursClient) DeleteOne(_m *BusinessHours) *BusinessHoursDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BusinessHoursClient) DeleteOneID(id uuid.UUID) *BusinessHoursDeleteOne {
	builder := c.Delete().Where(businesshours.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BusinessHoursDeleteOne{builder}
}

// Query returns a query builder for BusinessHours.
func (c *BusinessHoursClient) Query() *BusinessHoursQuery {
	return &BusinessHoursQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBusinessHours},
		inters: c.Interceptors(),
	}
}

// Get returns a BusinessHours entity by its id.
func (c *BusinessHoursClient) Get(ctx context.Context, id uuid.UUID) (*BusinessHours, error) {
	return c.Query().Where(businesshours.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BusinessHoursClient) GetX(ctx context.Context, id uuid.UUID) *BusinessHours {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySettings queries the settings edge of a BusinessHours.
func (c *BusinessHoursClient) QuerySettings(_m *BusinessHours) *ClinicSettingsQuery {
	query := (&ClinicSettingsClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(businesshours.Table, businesshours.FieldID, id),
			sqlgraph.To(clinicsettings.Table, clinicsettings.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, businesshours.SettingsTable, businesshours.SettingsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BusinessHoursClient) Hooks() []Hook {
	return c.hooks.BusinessHours
}

// Interceptors returns the client interceptors.
func (c *BusinessHoursClient) Interceptors() []Interceptor {
	return c.inters.BusinessHours
}

func (c *BusinessHoursClient) mutate(ctx context.Context, m *BusinessHoursMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BusinessHoursCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BusinessHoursUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BusinessHoursUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BusinessHoursDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown BusinessHours mutation op: %q", m.Op())
	}
}

// ClinicSettingsClient is a client for the ClinicSettings schema.
type ClinicSettingsClient struct {
	config
}

// NewClinicSettingsClient returns a client for the ClinicSettings from the given config.
func NewClinicSettingsClient(c config) *ClinicSettingsClient {
	return &ClinicSettingsClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `clinicsettings.Hooks(f(g(h())))`.
func (c *ClinicSettingsClient) Use(hooks ...Hook) {
	c.hooks.ClinicSettings = append(c.hooks.ClinicSettings, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `clinicsettings.Intercept(f(g(h())))`.
func (c *ClinicSettingsClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClinicSettings = append(c.inters.ClinicSettings, interceptors...)
}

// Create returns a builder for creating a ClinicSettings entity.
func (c *ClinicSettingsClient) Create() *ClinicSettingsCreate {
	mutation := newClinicSettingsMutation(c.config, OpCreate)
	return &ClinicSettingsCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClinicSettings entities.
func (c *ClinicSettingsClient) CreateBulk(builders ...*ClinicSettingsCreate) *ClinicSettingsCreateBulk {
	return &ClinicSettingsCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClinicSettingsClient) MapCreateBulk(slice any, setFunc func(*ClinicSettingsCreate, int)) *ClinicSettingsCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClinicSettingsCreateBulk{err: fmt.Errorf("calling to ClinicSettingsClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClinicSettingsCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClinicSettingsCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClinicSettings.
func (c *ClinicSettingsClient) Update() *ClinicSettingsUpdate {
	mutation := newClinicSettingsMutation(c.config, OpUpdate)
	return &ClinicSettingsUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClinicSettingsClient) UpdateOne(_m *ClinicSettings) *ClinicSettingsUpdateOne {
	mutation := newClinicSettingsMutation(c.config, OpUpdateOne, withClinicSettings(_m))
	return &ClinicSettingsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClinicSettingsClient) UpdateOneID(id uuid.UUID) *ClinicSettingsUpdateOne {
	mutation := newClinicSettingsMutation(c.config, OpUpdateOne, withClinicSettingsID(id))
	return &ClinicSettingsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClinicSettings.
func (c *ClinicSettingsClient) Delete() *ClinicSettingsDelete {
	mutation := newClinicSettingsMutation(c.config, OpDelete)
	return &ClinicSettingsDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClinicSettingsClient) DeleteOne(_m *ClinicSettings) *ClinicSettingsDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClinicSettingsClient) DeleteOneID(id uuid.UUID) *ClinicSettingsDeleteOne {
	builder := c.Delete().Where(clinicsettings.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClinicSettingsDeleteOne{builder}
}

// Query returns a query builder for ClinicSettings.
func (c *ClinicSettingsClient) Query() *ClinicSettingsQuery {
	return &ClinicSettingsQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClinicSettings},
		inters: c.Interceptors(),
	}
}

// Get returns a ClinicSettings entity by its id.
func (c *ClinicSettingsClient) Get(ctx context.Context, id uuid.UUID) (*ClinicSettings, error) {
	return c.Query().Where(clinicsettings.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClinicSettingsClient) GetX(ctx context.Context, id uuid.UUID) *ClinicSettings {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBusinessHours queries the business_hours edge of a ClinicSettings.
func (c *ClinicSettingsClient) QueryBusinessHours(_m *ClinicSettings) *BusinessHoursQuery {
	query := (&BusinessHoursClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clinicsettings.Table, clinicsettings.FieldID, id),
			sqlgraph.To(businesshours.Table, businesshours.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, clinicsettings.BusinessHoursTable, clinicsettings.BusinessHoursColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ClinicSettingsClient) Hooks() []Hook {
	return c.hooks.ClinicSettings
}

// Interceptors returns the client interceptors.
func (c *ClinicSettingsClient) Interceptors() []Interceptor {
	return c.inters.ClinicSettings
}

func (c *ClinicSettingsClient) mutate(ctx context.Context, m *ClinicSettingsMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClinicSettingsCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClinicSettingsUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClinicSettingsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClinicSettingsDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown ClinicSettings mutation op: %q", m.Op())
	}
}

// ContactMessageClient is a client for the ContactMessage schema.
type ContactMessageClient struct {
	config
}

// NewContactMessageClient returns a client for the ContactMessage from the given config.
func NewContactMessageClient(c config) *ContactMessageClient {
	return &ContactMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contactmessage.Hooks(f(g(h())))`.
func (c *ContactMessageClient) Use(hooks ...Hook) {
	c.hooks.ContactMessage = append(c.hooks.ContactMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contactmessage.Intercept(f(g(h())))`.
func (c *ContactMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContactMessage = append(c.inters.ContactMessage, interceptors...)
}

// Create returns a builder for creating a ContactMessage entity.
func (c *ContactMessageClient) Create() *ContactMessageCreate {
	mutation := newContactMessageMutation(c.config, OpCreate)
	return &ContactMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContactMessage entities.
func (c *ContactMessageClient) CreateBulk(builders ...*ContactMessageCreate) *ContactMessageCreateBulk {
	return &ContactMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContactMessageClient) MapCreateBulk(slice any, setFunc func(*ContactMessageCreate, int)) *ContactMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContactMessageCreateBulk{err: fmt.Errorf("calling to ContactMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContactMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContactMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContactMessage.
func (c *ContactMessageClient) Update() *ContactMessageUpdate {
	mutation := newContactMessageMutation(c.config, OpUpdate)
	return &ContactMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContactMessageClient) UpdateOne(_m *ContactMessage) *ContactMessageUpdateOne {
	mutation := newContactMessageMutation(c.config, OpUpdateOne, withContactMessage(_m))
	return &ContactMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContactMessageClient) UpdateOneID(id uuid.UUID) *ContactMessageUpdateOne {
	mutation := newContactMessageMutation(c.config, OpUpdateOne, withContactMessageID(id))
	return &ContactMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContactMessage.
func (c *ContactMessageClient) Delete() *ContactMessageDelete {
	mutation := newContactMessageMutation(c.config, OpDelete)
	return &ContactMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContactMessageClient) DeleteOne(_m *ContactMessage) *ContactMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContactMessageClient) DeleteOneID(id uuid.UUID) *ContactMessageDeleteOne {
	builder := c.Delete().Where(contactmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContactMessageDeleteOne{builder}
}

// Query returns a query builder for ContactMessage.
func (c *ContactMessageClient) Query() *ContactMessageQuery {
	return &ContactMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContactMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a ContactMessage entity by its id.
func (c *ContactMessageClient) Get(ctx context.Context, id uuid.UUID) (*ContactMessage, error) {
	return c.Query().Where(contactmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContactMessageClient) GetX(ctx context.Context, id uuid.UUID) *ContactMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAssignedTo queries the assigned_to edge of a ContactMessage.
func (c *ContactMessageClient) QueryAssignedTo(_m *ContactMessage) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contactmessage.Table, contactmessage.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, contactmessage.AssignedToTable, contactmessage.AssignedToColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryResponses queries the responses edge of a ContactMessage.
func (c *ContactMessageClient) QueryResponses(_m *ContactMessage) *ContactResponseQuery {
	query := (&ContactResponseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contactmessage.Table, contactmessage.FieldID, id),
			sqlgraph.To(contactresponse.Table, contactresponse.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, contactmessage.ResponsesTable, contactmessage.ResponsesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ContactMessageClient) Hooks() []Hook {
	return c.hooks.ContactMessage
}

// Interceptors returns the client interceptors.
func (c *ContactMessageClient) Interceptors() []Interceptor {
	return c.inters.ContactMessage
}

func (c *ContactMessageClient) mutate(ctx context.Context, m *ContactMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContactMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContactMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContactMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContactMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown ContactMessage mutation op: %q", m.Op())
	}
}

// ContactResponseClient is a client for the ContactResponse schema.
type ContactResponseClient struct {
	config
}

// NewContactResponseClient returns a client for the ContactResponse from the given config.
func NewContactResponseClient(c config) *ContactResponseClient {
	return &ContactResponseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contactresponse.Hooks(f(g(h())))`.
func (c *ContactResponseClient) Use(hooks ...Hook) {
	c.hooks.ContactResponse = append(c.hooks.ContactResponse, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contactresponse.Intercept(f(g(h())))`.
func (c *ContactResponseClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContactResponse = append(c.inters.ContactResponse, interceptors...)
}

// Create returns a builder for creating a ContactResponse entity.
func (c *ContactResponseClient) Create() *ContactResponseCreate {
	mutation := newContactResponseMutation(c.config, OpCreate)
	return &ContactResponseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContactResponse entities.
func (c *ContactResponseClient) CreateBulk(builders ...*ContactResponseCreate) *ContactResponseCreateBulk {
	return &ContactResponseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContactResponseClient) MapCreateBulk(slice any, setFunc func(*ContactResponseCreate, int)) *ContactResponseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContactResponseCreateBulk{err: fmt.Errorf("calling to ContactResponseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContactResponseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContactResponseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContactResponse.
func (c *ContactResponseClient) Update() *ContactResponseUpdate {
	mutation := newContactResponseMutation(c.config, OpUpdate)
	return &ContactResponseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContactResponseClient) UpdateOne(_m *ContactResponse) *ContactResponseUpdateOne {
	mutation := newContactResponseMutation(c.config, OpUpdateOne, withContactResponse(_m))
	return &ContactResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContactResponseClient) UpdateOneID(id uuid.UUID) *ContactResponseUpdateOne {
	mutation := newContactResponseMutation(c.config, OpUpdateOne, withContactResponseID(id))
	return &ContactResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContactResponse.
func (c *ContactResponseClient) Delete() *ContactResponseDelete {
	mutation := newContactResponseMutation(c.config, OpDelete)
	return &ContactResponseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContactResponseClient) DeleteOne(_m *ContactResponse) *ContactResponseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContactResponseClient) DeleteOneID(id uuid.UUID) *ContactResponseDeleteOne {
	builder := c.Delete().Where(contactresponse.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContactResponseDeleteOne{builder}
}

// Query returns a query builder for ContactResponse.
func (c *ContactResponseClient) Query() *ContactResponseQuery {
	return &ContactResponseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContactResponse},
		inters: c.Interceptors(),
	}
}

// Get returns a ContactResponse entity by its id.
func (c *ContactResponseClient) Get(ctx context.Context, id uuid.UUID) (*ContactResponse, error) {
	return c.Query().Where(contactresponse.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContactResponseClient) GetX(ctx context.Context, id uuid.UUID) *ContactResponse {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryContactMessage queries the contact_message edge of a ContactResponse.
func (c *ContactResponseClient) QueryContactMessage(_m *ContactResponse) *ContactMessageQuery {
	query := (&ContactMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contactresponse.Table, contactresponse.FieldID, id),
			sqlgraph.To(contactmessage.Table, contactmessage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, contactresponse.ContactMessageTable, contactresponse.ContactMessageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ContactResponseClient) Hooks() []Hook {
	return c.hooks.ContactResponse
}

// Interceptors returns the client interceptors.
func (c *ContactResponseClient) Interceptors() []Interceptor {
	return c.inters.ContactResponse
}

func (c *ContactResponseClient) mutate(ctx context.Context, m *ContactResponseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContactResponseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContactResponseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContactResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContactResponseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown ContactResponse mutation op: %q", m.Op())
	}
}

// DoctorClient is a client for the Doctor schema.
type DoctorClient struct {
	config
}

// NewDoctorClient returns a client for the Doctor from the given config.
func NewDoctorClient(c config) *DoctorClient {
	return &DoctorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `doctor.Hooks(f(g(h())))`.
func (c *DoctorClient) Use(hooks ...Hook) {
	c.hooks.Doctor = append(c.hooks.Doctor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `doctor.Intercept(f(g(h())))`.
func (c *DoctorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Doctor = append(c.inters.Doctor, interceptors...)
}

// Create returns a builder for creating a Doctor entity.
func (c *DoctorClient) Create() *DoctorCreate {
	mutation := newDoctorMutation(c.config, OpCreate)
	return &DoctorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Doctor entities.
func (c *DoctorClient) CreateBulk(builders ...*DoctorCreate) *DoctorCreateBulk {
	return &DoctorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DoctorClient) MapCreateBulk(slice any, setFunc func(*DoctorCreate, int)) *DoctorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DoctorCreateBulk{err: fmt.Errorf("calling to DoctorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DoctorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DoctorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Doctor.
func (c *DoctorClient) Update() *DoctorUpdate {
	mutation := newDoctorMutation(c.config, OpUpdate)
	return &DoctorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DoctorClient) UpdateOne(_m *Doctor) *DoctorUpdateOne {
	mutation := newDoctorMutation(c.config, OpUpdateOne, withDoctor(_m))
	return &DoctorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DoctorClient) UpdateOneID(id uuid.UUID) *DoctorUpdateOne {
	mutation := newDoctorMutation(c.config, OpUpdateOne, withDoctorID(id))
	return &DoctorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Doctor.
func (c *DoctorClient) Delete() *DoctorDelete {
	mutation := newDoctorMutation(c.config, OpDelete)
	return &DoctorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DoctorClient) DeleteOne(_m *Doctor) *DoctorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DoctorClient) DeleteOneID(id uuid.UUID) *DoctorDeleteOne {
	builder := c.Delete().Where(doctor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DoctorDeleteOne{builder}
}

// Query returns a query builder for Doctor.
func (c *DoctorClient) Query() *DoctorQuery {
	return &DoctorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDoctor},
		inters: c.Interceptors(),
	}
}

// Get returns a Doctor entity by its id.
func (c *DoctorClient) Get(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return c.Query().Where(doctor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DoctorClient) GetX(ctx context.Context, id uuid.UUID) *Doctor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Doctor.
func (c *DoctorClient) QueryUser(_m *Doctor) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(doctor.Table, doctor.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, doctor.UserTable, doctor.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySpecializations queries the specializations edge of a Doctor.
func (c *DoctorClient) QuerySpecializations(_m *Doctor) *SpecializationQuery {
	query := (&SpecializationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(doctor.Table, doctor.FieldID, id),
			sqlgraph.To(specialization.Table, specialization.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, doctor.SpecializationsTable, doctor.SpecializationsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAvailability queries the availability edge of a Doctor.
func (c *DoctorClient) QueryAvailability(_m *Doctor) *DoctorAvailabilityQuery {
	query := (&DoctorAvailabilityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(doctor.Table, doctor.FieldID, id),
			sqlgraph.To(doctoravailability.Table, doctoravailability.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, doctor.AvailabilityTable, doctor.AvailabilityColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLeaves queries the leaves edge of a Doctor.
func (c *DoctorClient) QueryLeaves(_m *Doctor) *DoctorLeaveQuery {
	query := (&DoctorLeaveClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(doctor.Table, doctor.FieldID, id),
			sqlgraph.To(doctorleave.Table, doctorleave.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, doctor.LeavesTable, doctor.LeavesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DoctorClient) Hooks() []Hook {
	return c.hooks.Doctor
}

// Interceptors returns the client interceptors.
func (c *DoctorClient) Interceptors() []Interceptor {
	return c.inters.Doctor
}

func (c *DoctorClient) mutate(ctx context.Context, m *DoctorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DoctorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DoctorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DoctorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DoctorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Doctor mutation op: %q", m.Op())
	}
}

// DoctorAvailabilityClient is a client for the DoctorAvailability schema.
type DoctorAvailabilityClient struct {
	config
}

// NewDoctorAvailabilityClient returns a client for the DoctorAvailability from the given config.
func NewDoctorAvailabilityClient(c config) *DoctorAvailabilityClient {
	return &DoctorAvailabilityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `doctoravailability.Hooks(f(g(h())))`.
func (c *DoctorAvailabilityClient) Use(hooks ...Hook) {
	c.hooks.DoctorAvailability = append(c.hooks.DoctorAvailability, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `doctoravailability.Intercept(f(g(h())))`.
func (c *DoctorAvailabilityClient) Intercept(interceptors ...Interceptor) {
	c.inters.DoctorAvailability = append(c.inters.DoctorAvailability, interceptors...)
}

// Create returns a builder for creating a DoctorAvailability entity.
func (c *DoctorAvailabilityClient) Create() *DoctorAvailabilityCreate {
	mutation := newDoctorAvailabilityMutation(c.config, OpCreate)
	return &DoctorAvailabilityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DoctorAvailability entities.
func (c *DoctorAvailabilityClient) CreateBulk(builders ...*DoctorAvailabilityCreate) *DoctorAvailabilityCreateBulk {
	return &DoctorAvailabilityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DoctorAvailabilityClient) MapCreateBulk(slice any, setFunc func(*DoctorAvailabilityCreate, int)) *DoctorAvailabilityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DoctorAvailabilityCreateBulk{err: fmt.Errorf("calling to DoctorAvailabilityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DoctorAvailabilityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DoctorAvailabilityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DoctorAvailability.
func (c *DoctorAvailabilityClient) Update() *DoctorAvailabilityUpdate {
	mutation := newDoctorAvailabilityMutation(c.config, OpUpdate)
	return &DoctorAvailabilityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DoctorAvailabilityClient) UpdateOne(_m *DoctorAvailability) *DoctorAvailabilityUpdateOne {
	mutation := newDoctorAvailabilityMutation(c.config, OpUpdateOne, withDoctorAvailability(_m))
	return &DoctorAvailabilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DoctorAvailabilityClient) UpdateOneID(id uuid.UUID) *DoctorAvailabilityUpdateOne {
	mutation := newDoctorAvailabilityMutation(c.config, OpUpdateOne, withDoctorAvailabilityID(id))
	return &DoctorAvailabilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DoctorAvailability.
func (c *DoctorAvailabilityClient) Delete() *DoctorAvailabilityDelete {
	mutation := newDoctorAvailabilityMutation(c.config, OpDelete)
	return &DoctorAvailabilityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DoctorAvailabilityClient) DeleteOne(_m *DoctorAvailability) *DoctorAvailabilityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DoctorAvailabilityClient) DeleteOneID(id uuid.UUID) *DoctorAvailabilityDeleteOne {
	builder := c.Delete().Where(doctoravailability.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DoctorAvailabilityDeleteOne{builder}
}

// Query returns a query builder for DoctorAvailability.
func (c *DoctorAvailabilityClient) Query() *DoctorAvailabilityQuery {
	return &DoctorAvailabilityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDoctorAvailability},
		inters: c.Interceptors(),
	}
}

// Get returns a DoctorAvailability entity by its id.
func (c *DoctorAvailabilityClient) Get(ctx context.Context, id uuid.UUID) (*DoctorAvailability, error) {
	return c.Query().Where(doctoravailability.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DoctorAvailabilityClient) GetX(ctx context.Context, id uuid.UUID) *DoctorAvailability {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDoctor queries the doctor edge of a DoctorAvailability.
func (c *DoctorAvailabilityClient) QueryDoctor(_m *DoctorAvailability) *DoctorQuery {
	query := (&DoctorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(doctoravailability.Table, doctoravailability.FieldID, id),
			sqlgraph.To(doctor.Table, doctor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, doctoravailability.DoctorTable, doctoravailability.DoctorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DoctorAvailabilityClient) Hooks() []Hook {
	return c.hooks.DoctorAvailability
}

// Interceptors returns the client interceptors.
func (c *DoctorAvailabilityClient) Interceptors() []Interceptor {
	return c.inters.DoctorAvailability
}

func (c *DoctorAvailabilityClient) mutate(ctx context.Context, m *DoctorAvailabilityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DoctorAvailabilityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DoctorAvailabilityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DoctorAvailabilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DoctorAvailabilityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown DoctorAvailability mutation op: %q", m.Op())
	}
}

// DoctorLeaveClient is a client for the DoctorLeave schema.
type DoctorLeaveClient struct {
	config
}

// NewDoctorLeaveClient returns a client for the DoctorLeave from the given config.
func NewDoctorLeaveClient(c config) *DoctorLeaveClient {
	return &DoctorLeaveClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `doctorleave.Hooks(f(g(h())))`.
func (c *DoctorLeaveClient) Use(hooks ...Hook) {
	c.hooks.DoctorLeave = append(c.hooks.DoctorLeave, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `doctorleave.Intercept(f(g(h())))`.
func (c *DoctorLeaveClient) Intercept(interceptors ...Interceptor) {
	c.inters.DoctorLeave = append(c.inters.DoctorLeave, interceptors...)
}

// Create returns a builder for creating a DoctorLeave entity.
func (c *DoctorLeaveClient) Create() *DoctorLeaveCreate {
	mutation := newDoctorLeaveMutation(c.config, OpCreate)
	return &DoctorLeaveCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DoctorLeave entities.
func (c *DoctorLeaveClient) CreateBulk(builders ...*DoctorLeaveCreate) *DoctorLeaveCreateBulk {
	return &DoctorLeaveCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DoctorLeaveClient) MapCreateBulk(slice any, setFunc func(*DoctorLeaveCreate, int)) *DoctorLeaveCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DoctorLeaveCreateBulk{err: fmt.Errorf("calling to DoctorLeaveClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DoctorLeaveCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DoctorLeaveCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DoctorLeave.
func (c *DoctorLeaveClient) Update() *DoctorLeaveUpdate {
	mutation := newDoctorLeaveMutation(c.config, OpUpdate)
	return &DoctorLeaveUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DoctorLeaveClient) UpdateOne(_m *DoctorLeave) *DoctorLeaveUpdateOne {
	mutation := newDoctorLeaveMutation(c.config, OpUpdateOne, withDoctorLeave(_m))
	return &DoctorLeaveUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DoctorLeaveClient) UpdateOneID(id uuid.UUID) *DoctorLeaveUpdateOne {
	mutation := newDoctorLeaveMutation(c.config, OpUpdateOne, withDoctorLeaveID(id))
	return &DoctorLeaveUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DoctorLeave.
func (c *DoctorLeaveClient) Delete() *DoctorLeaveDelete {
	mutation := newDoctorLeaveMutation(c.config, OpDelete)
	return &DoctorLeaveDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DoctorLeaveClient) DeleteOne(_m *DoctorLeave) *DoctorLeaveDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DoctorLeaveClient) DeleteOneID(id uuid.UUID) *DoctorLeaveDeleteOne {
	builder := c.Delete().Where(doctorleave.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DoctorLeaveDeleteOne{builder}
}

// Query returns a query builder for DoctorLeave.
func (c *DoctorLeaveClient) Query() *DoctorLeaveQuery {
	return &DoctorLeaveQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDoctorLeave},
		inters: c.Interceptors(),
	}
}

// Get returns a DoctorLeave entity by its id.
func (c *DoctorLeaveClient) Get(ctx context.Context, id uuid.UUID) (*DoctorLeave, error) {
	return c.Query().Where(doctorleave.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DoctorLeaveClient) GetX(ctx context.Context, id uuid.UUID) *DoctorLeave {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDoctor queries the doctor edge of a DoctorLeave.
func (c *DoctorLeaveClient) QueryDoctor(_m *DoctorLeave) *DoctorQuery {
	query := (&DoctorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(doctorleave.Table, doctorleave.FieldID, id),
			sqlgraph.To(doctor.Table, doctor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, doctorleave.DoctorTable, doctorleave.DoctorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DoctorLeaveClient) Hooks() []Hook {
	return c.hooks.DoctorLeave
}

// Interceptors returns the client interceptors.
func (c *DoctorLeaveClient) Interceptors() []Interceptor {
	return c.inters.DoctorLeave
}

func (c *DoctorLeaveClient) mutate(ctx context.Context, m *DoctorLeaveMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DoctorLeaveCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DoctorLeaveUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DoctorLeaveUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DoctorLeaveDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown DoctorLeave mutation op: %q", m.Op())
	}
}

// EmailTemplateClient is a client for the EmailTemplate schema.
type EmailTemplateClient struct {
	config
}

// NewEmailTemplateClient returns a client for the EmailTemplate from the given config.
func NewEmailTemplateClient(c config) *EmailTemplateClient {
	return &EmailTemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `emailtemplate.Hooks(f(g(h())))`.
func (c *EmailTemplateClient) Use(hooks ...Hook) {
	c.hooks.EmailTemplate = append(c.hooks.EmailTemplate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `emailtemplate.Intercept(f(g(h())))`.
func (c *EmailTemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.EmailTemplate = append(c.inters.EmailTemplate, interceptors...)
}

// Create returns a builder for creating a EmailTemplate entity.
func (c *EmailTemplateClient) Create() *EmailTemplateCreate {
	mutation := newEmailTemplateMutation(c.config, OpCreate)
	return &EmailTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EmailTemplate entities.
func (c *EmailTemplateClient) CreateBulk(builders ...*EmailTemplateCreate) *EmailTemplateCreateBulk {
	return &EmailTemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EmailTemplateClient) MapCreateBulk(slice any, setFunc func(*EmailTemplateCreate, int)) *EmailTemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EmailTemplateCreateBulk{err: fmt.Errorf("calling to EmailTemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EmailTemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EmailTemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EmailTemplate.
func (c *EmailTemplateClient) Update() *EmailTemplateUpdate {
	mutation := newEmailTemplateMutation(c.config, OpUpdate)
	return &EmailTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EmailTemplateClient) UpdateOne(_m *EmailTemplate) *EmailTemplateUpdateOne {
	mutation := newEmailTemplateMutation(c.config, OpUpdateOne, withEmailTemplate(_m))
	return &EmailTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EmailTemplateClient) UpdateOneID(id uuid.UUID) *EmailTemplateUpdateOne {
	mutation := newEmailTemplateMutation(c.config, OpUpdateOne, withEmailTemplateID(id))
	return &EmailTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EmailTemplate.
func (c *EmailTemplateClient) Delete() *EmailTemplateDelete {
	mutation := newEmailTemplateMutation(c.config, OpDelete)
	return &EmailTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EmailTemplateClient) DeleteOne(_m *EmailTemplate) *EmailTemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EmailTemplateClient) DeleteOneID(id uuid.UUID) *EmailTemplateDeleteOne {
	builder := c.Delete().Where(emailtemplate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EmailTemplateDeleteOne{builder}
}

// Query returns a query builder for EmailTemplate.
func (c *EmailTemplateClient) Query() *EmailTemplateQuery {
	return &EmailTemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEmailTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a EmailTemplate entity by its id.
func (c *EmailTemplateClient) Get(ctx context.Context, id uuid.UUID) (*EmailTemplate, error) {
	return c.Query().Where(emailtemplate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EmailTemplateClient) GetX(ctx context.Context, id uuid.UUID) *EmailTemplate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EmailTemplateClient) Hooks() []Hook {
	return c.hooks.EmailTemplate
}

// Interceptors returns the client interceptors.
func (c *EmailTemplateClient) Interceptors() []Interceptor {
	return c.inters.EmailTemplate
}

func (c *EmailTemplateClient) mutate(ctx context.Context, m *EmailTemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EmailTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EmailTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EmailTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EmailTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown EmailTemplate mutation op: %q", m.Op())
	}
}

// HolidayClient is a client for the Holiday schema.
type HolidayClient struct {
	config
}

// NewHolidayClient returns a client for the Holiday from the given config.
func NewHolidayClient(c config) *HolidayClient {
	return &HolidayClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `holiday.Hooks(f(g(h())))`.
func (c *HolidayClient) Use(hooks ...Hook) {
	c.hooks.Holiday = append(c.hooks.Holiday, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `holiday.Intercept(f(g(h())))`.
func (c *HolidayClient) Intercept(interceptors ...Interceptor) {
	c.inters.Holiday = append(c.inters.Holiday, interceptors...)
}

// Create returns a builder for creating a Holiday entity.
func (c *HolidayClient) Create() *HolidayCreate {
	mutation := newHolidayMutation(c.config, OpCreate)
	return &HolidayCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Holiday entities.
func (c *HolidayClient) CreateBulk(builders ...*HolidayCreate) *HolidayCreateBulk {
	return &HolidayCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HolidayClient) MapCreateBulk(slice any, setFunc func(*HolidayCreate, int)) *HolidayCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HolidayCreateBulk{err: fmt.Errorf("calling to HolidayClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HolidayCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HolidayCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Holiday.
func (c *HolidayClient) Update() *HolidayUpdate {
	mutation := newHolidayMutation(c.config, OpUpdate)
	return &HolidayUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HolidayClient) UpdateOne(_m *Holiday) *HolidayUpdateOne {
	mutation := newHolidayMutation(c.config, OpUpdateOne, withHoliday(_m))
	return &HolidayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HolidayClient) UpdateOneID(id uuid.UUID) *HolidayUpdateOne {
	mutation := newHolidayMutation(c.config, OpUpdateOne, withHolidayID(id))
	return &HolidayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Holiday.
func (c *HolidayClient) Delete() *HolidayDelete {
	mutation := newHolidayMutation(c.config, OpDelete)
	return &HolidayDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HolidayClient) DeleteOne(_m *Holiday) *HolidayDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HolidayClient) DeleteOneID(id uuid.UUID) *HolidayDeleteOne {
	builder := c.Delete().Where(holiday.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HolidayDeleteOne{builder}
}

// Query returns a query builder for Holiday.
func (c *HolidayClient) Query() *HolidayQuery {
	return &HolidayQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHoliday},
		inters: c.Interceptors(),
	}
}

// Get returns a Holiday entity by its id.
func (c *HolidayClient) Get(ctx context.Context, id uuid.UUID) (*Holiday, error) {
	return c.Query().Where(holiday.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HolidayClient) GetX(ctx context.Context, id uuid.UUID) *Holiday {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *HolidayClient) Hooks() []Hook {
	return c.hooks.Holiday
}

// Interceptors returns the client interceptors.
func (c *HolidayClient) Interceptors() []Interceptor {
	return c.inters.Holiday
}

func (c *HolidayClient) mutate(ctx context.Context, m *HolidayMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HolidayCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HolidayUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HolidayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HolidayDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Holiday mutation op: %q", m.Op())
	}
}

// MedicalHistoryClient is a client for the MedicalHistory schema.
type MedicalHistoryClient struct {
	config
}

// NewMedicalHistoryClient returns a client for the MedicalHistory from the given config.
func NewMedicalHistoryClient(c config) *MedicalHistoryClient {
	return &MedicalHistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `medicalhistory.Hooks(f(g(h())))`.
func (c *MedicalHistoryClient) Use(hooks ...Hook) {
	c.hooks.MedicalHistory = append(c.hooks.MedicalHistory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `medicalhistory.Intercept(f(g(h())))`.
func (c *MedicalHistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.MedicalHistory = append(c.inters.MedicalHistory, interceptors...)
}

// Create returns a builder for creating a MedicalHistory entity.
func (c *MedicalHistoryClient) Create() *MedicalHistoryCreate {
	mutation := newMedicalHistoryMutation(c.config, OpCreate)
	return &MedicalHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MedicalHistory entities.
func (c *MedicalHistoryClient) CreateBulk(builders ...*MedicalHistoryCreate) *MedicalHistoryCreateBulk {
	return &MedicalHistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MedicalHistoryClient) MapCreateBulk(slice any, setFunc func(*MedicalHistoryCreate, int)) *MedicalHistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MedicalHistoryCreateBulk{err: fmt.Errorf("calling to MedicalHistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MedicalHistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MedicalHistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MedicalHistory.
func (c *MedicalHistoryClient) Update() *MedicalHistoryUpdate {
	mutation := newMedicalHistoryMutation(c.config, OpUpdate)
	return &MedicalHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MedicalHistoryClient) UpdateOne(_m *MedicalHistory) *MedicalHistoryUpdateOne {
	mutation := newMedicalHistoryMutation(c.config, OpUpdateOne, withMedicalHistory(_m))
	return &MedicalHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MedicalHistoryClient) UpdateOneID(id uuid.UUID) *MedicalHistoryUpdateOne {
	mutation := newMedicalHistoryMutation(c.config, OpUpdateOne, withMedicalHistoryID(id))
	return &MedicalHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MedicalHistory.
func (c *MedicalHistoryClient) Delete() *MedicalHistoryDelete {
	mutation := newMedicalHistoryMutation(c.config, OpDelete)
	return &MedicalHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MedicalHistoryClient) DeleteOne(_m *MedicalHistory) *MedicalHistoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MedicalHistoryClient) DeleteOneID(id uuid.UUID) *MedicalHistoryDeleteOne {
	builder := c.Delete().Where(medicalhistory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MedicalHistoryDeleteOne{builder}
}

// Query returns a query builder for MedicalHistory.
func (c *MedicalHistoryClient) Query() *MedicalHistoryQuery {
	return &MedicalHistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMedicalHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a MedicalHistory entity by its id.
func (c *MedicalHistoryClient) Get(ctx context.Context, id uuid.UUID) (*MedicalHistory, error) {
	return c.Query().Where(medicalhistory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MedicalHistoryClient) GetX(ctx context.Context, id uuid.UUID) *MedicalHistory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatient queries the patient edge of a MedicalHistory.
func (c *MedicalHistoryClient) QueryPatient(_m *MedicalHistory) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(medicalhistory.Table, medicalhistory.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, medicalhistory.PatientTable, medicalhistory.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MedicalHistoryClient) Hooks() []Hook {
	return c.hooks.MedicalHistory
}

// Interceptors returns the client interceptors.
func (c *MedicalHistoryClient) Interceptors() []Interceptor {
	return c.inters.MedicalHistory
}

func (c *MedicalHistoryClient) mutate(ctx context.Context, m *MedicalHistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MedicalHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MedicalHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MedicalHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MedicalHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown MedicalHistory mutation op: %q", m.Op())
	}
}

// NewsletterClient is a client for the Newsletter schema.
type NewsletterClient struct {
	config
}

// NewNewsletterClient returns a client for the Newsletter from the given config.
func NewNewsletterClient(c config) *NewsletterClient {
	return &NewsletterClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `newsletter.Hooks(f(g(h())))`.
func (c *NewsletterClient) Use(hooks ...Hook) {
	c.hooks.Newsletter = append(c.hooks.Newsletter, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `newsletter.Intercept(f(g(h())))`.
func (c *NewsletterClient) Intercept(interceptors ...Interceptor) {
	c.inters.Newsletter = append(c.inters.Newsletter, interceptors...)
}

// Create returns a builder for creating a Newsletter entity.
func (c *NewsletterClient) Create() *NewsletterCreate {
	mutation := newNewsletterMutation(c.config, OpCreate)
	return &NewsletterCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Newsletter entities.
func (c *NewsletterClient) CreateBulk(builders ...*NewsletterCreate) *NewsletterCreateBulk {
	return &NewsletterCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NewsletterClient) MapCreateBulk(slice any, setFunc func(*NewsletterCreate, int)) *NewsletterCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NewsletterCreateBulk{err: fmt.Errorf("calling to NewsletterClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NewsletterCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NewsletterCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Newsletter.
func (c *NewsletterClient) Update() *NewsletterUpdate {
	mutation := newNewsletterMutation(c.config, OpUpdate)
	return &NewsletterUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NewsletterClient) UpdateOne(_m *Newsletter) *NewsletterUpdateOne {
	mutation := newNewsletterMutation(c.config, OpUpdateOne, withNewsletter(_m))
	return &NewsletterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NewsletterClient) UpdateOneID(id uuid.UUID) *NewsletterUpdateOne {
	mutation := newNewsletterMutation(c.config, OpUpdateOne, withNewsletterID(id))
	return &NewsletterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Newsletter.
func (c *NewsletterClient) Delete() *NewsletterDelete {
	mutation := newNewsletterMutation(c.config, OpDelete)
	return &NewsletterDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NewsletterClient) DeleteOne(_m *Newsletter) *NewsletterDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NewsletterClient) DeleteOneID(id uuid.UUID) *NewsletterDeleteOne {
	builder := c.Delete().Where(newsletter.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NewsletterDeleteOne{builder}
}

// Query returns a query builder for Newsletter.
func (c *NewsletterClient) Query() *NewsletterQuery {
	return &NewsletterQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNewsletter},
		inters: c.Interceptors(),
	}
}

// Get returns a Newsletter entity by its id.
func (c *NewsletterClient) Get(ctx context.Context, id uuid.UUID) (*Newsletter, error) {
	return c.Query().Where(newsletter.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NewsletterClient) GetX(ctx context.Context, id uuid.UUID) *Newsletter {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCampaigns queries the campaigns edge of a Newsletter.
func (c *NewsletterClient) QueryCampaigns(_m *Newsletter) *NewsletterCampaignQuery {
	query := (&NewsletterCampaignClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(newsletter.Table, newsletter.FieldID, id),
			sqlgraph.To(newslettercampaign.Table, newslettercampaign.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, newsletter.CampaignsTable, newsletter.CampaignsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *NewsletterClient) Hooks() []Hook {
	return c.hooks.Newsletter
}

// Interceptors returns the client interceptors.
func (c *NewsletterClient) Interceptors() []Interceptor {
	return c.inters.Newsletter
}

func (c *NewsletterClient) mutate(ctx context.Context, m *NewsletterMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NewsletterCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NewsletterUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NewsletterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NewsletterDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Newsletter mutation op: %q", m.Op())
	}
}

// NewsletterCampaignClient is a client for the NewsletterCampaign schema.
type NewsletterCampaignClient struct {
	config
}

// NewNewsletterCampaignClient returns a client for the NewsletterCampaign from the given config.
func NewNewsletterCampaignClient(c config) *NewsletterCampaignClient {
	return &NewsletterCampaignClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `newslettercampaign.Hooks(f(g(h())))`.
func (c *NewsletterCampaignClient) Use(hooks ...Hook) {
	c.hooks.NewsletterCampaign = append(c.hooks.NewsletterCampaign, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `newslettercampaign.Intercept(f(g(h())))`.
func (c *NewsletterCampaignClient) Intercept(interceptors ...Interceptor) {
	c.inters.NewsletterCampaign = append(c.inters.NewsletterCampaign, interceptors...)
}

// Create returns a builder for creating a NewsletterCampaign entity.
func (c *NewsletterCampaignClient) Create() *NewsletterCampaignCreate {
	mutation := newNewsletterCampaignMutation(c.config, OpCreate)
	return &NewsletterCampaignCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NewsletterCampaign entities.
func (c *NewsletterCampaignClient) CreateBulk(builders ...*NewsletterCampaignCreate) *NewsletterCampaignCreateBulk {
	return &NewsletterCampaignCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NewsletterCampaignClient) MapCreateBulk(slice any, setFunc func(*NewsletterCampaignCreate, int)) *NewsletterCampaignCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NewsletterCampaignCreateBulk{err: fmt.Errorf("calling to NewsletterCampaignClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NewsletterCampaignCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NewsletterCampaignCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NewsletterCampaign.
func (c *NewsletterCampaignClient) Update() *NewsletterCampaignUpdate {
	mutation := newNewsletterCampaignMutation(c.config, OpUpdate)
	return &NewsletterCampaignUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NewsletterCampaignClient) UpdateOne(_m *NewsletterCampaign) *NewsletterCampaignUpdateOne {
	mutation := newNewsletterCampaignMutation(c.config, OpUpdateOne, withNewsletterCampaign(_m))
	return &NewsletterCampaignUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NewsletterCampaignClient) UpdateOneID(id uuid.UUID) *NewsletterCampaignUpdateOne {
	mutation := newNewsletterCampaignMutation(c.config, OpUpdateOne, withNewsletterCampaignID(id))
	return &NewsletterCampaignUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NewsletterCampaign.
func (c *NewsletterCampaignClient) Delete() *NewsletterCampaignDelete {
	mutation := newNewsletterCampaignMutation(c.config, OpDelete)
	return &NewsletterCampaignDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NewsletterCampaignClient) DeleteOne(_m *NewsletterCampaign) *NewsletterCampaignDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NewsletterCampaignClient) DeleteOneID(id uuid.UUID) *NewsletterCampaignDeleteOne {
	builder := c.Delete().Where(newslettercampaign.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NewsletterCampaignDeleteOne{builder}
}

// Query returns a query builder for NewsletterCampaign.
func (c *NewsletterCampaignClient) Query() *NewsletterCampaignQuery {
	return &NewsletterCampaignQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNewsletterCampaign},
		inters: c.Interceptors(),
	}
}

// Get returns a NewsletterCampaign entity by its id.
func (c *NewsletterCampaignClient) Get(ctx context.Context, id uuid.UUID) (*NewsletterCampaign, error) {
	return c.Query().Where(newslettercampaign.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NewsletterCampaignClient) GetX(ctx context.Context, id uuid.UUID) *NewsletterCampaign {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryNewsletter queries the newsletter edge of a NewsletterCampaign.
func (c *NewsletterCampaignClient) QueryNewsletter(_m *NewsletterCampaign) *NewsletterQuery {
	query := (&NewsletterClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(newslettercampaign.Table, newslettercampaign.FieldID, id),
			sqlgraph.To(newsletter.Table, newsletter.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, newslettercampaign.NewsletterTable, newslettercampaign.NewsletterColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySubscribers queries the subscribers edge of a NewsletterCampaign.
func (c *NewsletterCampaignClient) QuerySubscribers(_m *NewsletterCampaign) *NewsletterSubscriberQuery {
	query := (&NewsletterSubscriberClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(newslettercampaign.Table, newslettercampaign.FieldID, id),
			sqlgraph.To(newslettersubscriber.Table, newslettersubscriber.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, newslettercampaign.SubscribersTable, newslettercampaign.SubscribersPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *NewsletterCampaignClient) Hooks() []Hook {
	return c.hooks.NewsletterCampaign
}

// Interceptors returns the client interceptors.
func (c *NewsletterCampaignClient) Interceptors() []Interceptor {
	return c.inters.NewsletterCampaign
}

func (c *NewsletterCampaignClient) mutate(ctx context.Context, m *NewsletterCampaignMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NewsletterCampaignCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NewsletterCampaignUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NewsletterCampaignUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NewsletterCampaignDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown NewsletterCampaign mutation op: %q", m.Op())
	}
}

// NewsletterSubscriberClient is a client for the NewsletterSubscriber schema.
type NewsletterSubscriberClient struct {
	config
}

// NewNewsletterSubscriberClient returns a client for the NewsletterSubscriber from the given config.
func NewNewsletterSubscriberClient(c config) *NewsletterSubscriberClient {
	return &NewsletterSubscriberClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `newslettersubscriber.Hooks(f(g(h())))`.
func (c *NewsletterSubscriberClient) Use(hooks ...Hook) {
	c.hooks.NewsletterSubscriber = append(c.hooks.NewsletterSubscriber, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `newslettersubscriber.Intercept(f(g(h())))`.
func (c *NewsletterSubscriberClient) Intercept(interceptors ...Interceptor) {
	c.inters.NewsletterSubscriber = append(c.inters.NewsletterSubscriber, interceptors...)
}

// Create returns a builder for creating a NewsletterSubscriber entity.
func (c *NewsletterSubscriberClient) Create() *NewsletterSubscriberCreate {
	mutation := newNewsletterSubscriberMutation(c.config, OpCreate)
	return &NewsletterSubscriberCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NewsletterSubscriber entities.
func (c *NewsletterSubscriberClient) CreateBulk(builders ...*NewsletterSubscriberCreate) *NewsletterSubscriberCreateBulk {
	return &NewsletterSubscriberCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NewsletterSubscriberClient) MapCreateBulk(slice any, setFunc func(*NewsletterSubscriberCreate, int)) *NewsletterSubscriberCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NewsletterSubscriberCreateBulk{err: fmt.Errorf("calling to NewsletterSubscriberClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NewsletterSubscriberCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NewsletterSubscriberCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NewsletterSubscriber.
func (c *NewsletterSubscriberClient) Update() *NewsletterSubscriberUpdate {
	mutation := newNewsletterSubscriberMutation(c.config, OpUpdate)
	return &NewsletterSubscriberUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NewsletterSubscriberClient) UpdateOne(_m *NewsletterSubscriber) *NewsletterSubscriberUpdateOne {
	mutation := newNewsletterSubscriberMutation(c.config, OpUpdateOne, withNewsletterSubscriber(_m))
	return &NewsletterSubscriberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NewsletterSubscriberClient) UpdateOneID(id uuid.UUID) *NewsletterSubscriberUpdateOne {
	mutation := newNewsletterSubscriberMutation(c.config, OpUpdateOne, withNewsletterSubscriberID(id))
	return &NewsletterSubscriberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NewsletterSubscriber.
func (c *NewsletterSubscriberClient) Delete() *NewsletterSubscriberDelete {
	mutation := newNewsletterSubscriberMutation(c.config, OpDelete)
	return &NewsletterSubscriberDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NewsletterSubscriberClient) DeleteOne(_m *NewsletterSubscriber) *NewsletterSubscriberDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NewsletterSubscriberClient) DeleteOneID(id uuid.UUID) *NewsletterSubscriberDeleteOne {
	builder := c.Delete().Where(newslettersubscriber.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NewsletterSubscriberDeleteOne{builder}
}

// Query returns a query builder for NewsletterSubscriber.
func (c *NewsletterSubscriberClient) Query() *NewsletterSubscriberQuery {
	return &NewsletterSubscriberQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNewsletterSubscriber},
		inters: c.Interceptors(),
	}
}

// Get returns a NewsletterSubscriber entity by its id.
func (c *NewsletterSubscriberClient) Get(ctx context.Context, id uuid.UUID) (*NewsletterSubscriber, error) {
	return c.Query().Where(newslettersubscriber.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NewsletterSubscriberClient) GetX(ctx context.Context, id uuid.UUID) *NewsletterSubscriber {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCampaigns queries the campaigns edge of a NewsletterSubscriber.
func (c *NewsletterSubscriberClient) QueryCampaigns(_m *NewsletterSubscriber) *NewsletterCampaignQuery {
	query := (&NewsletterCampaignClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(newslettersubscriber.Table, newslettersubscriber.FieldID, id),
			sqlgraph.To(newslettercampaign.Table, newslettercampaign.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, newslettersubscriber.CampaignsTable, newslettersubscriber.CampaignsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *NewsletterSubscriberClient) Hooks() []Hook {
	return c.hooks.NewsletterSubscriber
}

// Interceptors returns the client interceptors.
func (c *NewsletterSubscriberClient) Interceptors() []Interceptor {
	return c.inters.NewsletterSubscriber
}

func (c *NewsletterSubscriberClient) mutate(ctx context.Context, m *NewsletterSubscriberMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NewsletterSubscriberCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NewsletterSubscriberUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NewsletterSubscriberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NewsletterSubscriberDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown NewsletterSubscriber mutation op: %q", m.Op())
	}
}

// PatientClient is a client for the Patient schema.
type PatientClient struct {
	config
}

// NewPatientClient returns a client for the Patient from the given config.
func NewPatientClient(c config) *PatientClient {
	return &PatientClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patient.Hooks(f(g(h())))`.
func (c *PatientClient) Use(hooks ...Hook) {
	c.hooks.Patient = append(c.hooks.Patient, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patient.Intercept(f(g(h())))`.
func (c *PatientClient) Intercept(interceptors ...Interceptor) {
	c.inters.Patient = append(c.inters.Patient, interceptors...)
}

// Create returns a builder for creating a Patient entity.
func (c *PatientClient) Create() *PatientCreate {
	mutation := newPatientMutation(c.config, OpCreate)
	return &PatientCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Patient entities.
func (c *PatientClient) CreateBulk(builders ...*PatientCreate) *PatientCreateBulk {
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatientClient) MapCreateBulk(slice any, setFunc func(*PatientCreate, int)) *PatientCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatientCreateBulk{err: fmt.Errorf("calling to PatientClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatientCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Patient.
func (c *PatientClient) Update() *PatientUpdate {
	mutation := newPatientMutation(c.config, OpUpdate)
	return &PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatientClient) UpdateOne(_m *Patient) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatient(_m))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatientClient) UpdateOneID(id uuid.UUID) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatientID(id))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Patient.
func (c *PatientClient) Delete() *PatientDelete {
	mutation := newPatientMutation(c.config, OpDelete)
	return &PatientDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatientClient) DeleteOne(_m *Patient) *PatientDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatientClient) DeleteOneID(id uuid.UUID) *PatientDeleteOne {
	builder := c.Delete().Where(patient.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatientDeleteOne{builder}
}

// Query returns a query builder for Patient.
func (c *PatientClient) Query() *PatientQuery {
	return &PatientQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatient},
		inters: c.Interceptors(),
	}
}

// Get returns a Patient entity by its id.
func (c *PatientClient) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return c.Query().Where(patient.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatientClient) GetX(ctx context.Context, id uuid.UUID) *Patient {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Patient.
func (c *PatientClient) QueryUser(_m *Patient) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, patient.UserTable, patient.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReferredBy queries the referred_by edge of a Patient.
func (c *PatientClient) QueryReferredBy(_m *Patient) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, patient.ReferredByTable, patient.ReferredByColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReferrals queries the referrals edge of a Patient.
func (c *PatientClient) QueryReferrals(_m *Patient) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, patient.ReferralsTable, patient.ReferralsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMedicalHistory queries the medical_history edge of a Patient.
func (c *PatientClient) QueryMedicalHistory(_m *Patient) *MedicalHistoryQuery {
	query := (&MedicalHistoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(medicalhistory.Table, medicalhistory.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, patient.MedicalHistoryTable, patient.MedicalHistoryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDocuments queries the documents edge of a Patient.
func (c *PatientClient) QueryDocuments(_m *Patient) *PatientDocumentQuery {
	query := (&PatientDocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(patientdocument.Table, patientdocument.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, patient.DocumentsTable, patient.DocumentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PatientClient) Hooks() []Hook {
	return c.hooks.Patient
}

// Interceptors returns the client interceptors.
func (c *PatientClient) Interceptors() []Interceptor {
	return c.inters.Patient
}

func (c *PatientClient) mutate(ctx context.Context, m *PatientMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatientCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatientDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Patient mutation op: %q", m.Op())
	}
}

// PatientDocumentClient is a client for the PatientDocument schema.
type PatientDocumentClient struct {
	config
}

// NewPatientDocumentClient returns a client for the PatientDocument from the given config.
func NewPatientDocumentClient(c config) *PatientDocumentClient {
	return &PatientDocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patientdocument.Hooks(f(g(h())))`.
func (c *PatientDocumentClient) Use(hooks ...Hook) {
	c.hooks.PatientDocument = append(c.hooks.PatientDocument, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patientdocument.Intercept(f(g(h())))`.
func (c *PatientDocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.PatientDocument = append(c.inters.PatientDocument, interceptors...)
}

// Create returns a builder for creating a PatientDocument entity.
func (c *PatientDocumentClient) Create() *PatientDocumentCreate {
	mutation := newPatientDocumentMutation(c.config, OpCreate)
	return &PatientDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PatientDocument entities.
func (c *PatientDocumentClient) CreateBulk(builders ...*PatientDocumentCreate) *PatientDocumentCreateBulk {
	return &PatientDocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatientDocumentClient) MapCreateBulk(slice any, setFunc func(*PatientDocumentCreate, int)) *PatientDocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatientDocumentCreateBulk{err: fmt.Errorf("calling to PatientDocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatientDocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatientDocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PatientDocument.
func (c *PatientDocumentClient) Update() *PatientDocumentUpdate {
	mutation := newPatientDocumentMutation(c.config, OpUpdate)
	return &PatientDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatientDocumentClient) UpdateOne(_m *PatientDocument) *PatientDocumentUpdateOne {
	mutation := newPatientDocumentMutation(c.config, OpUpdateOne, withPatientDocument(_m))
	return &PatientDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatientDocumentClient) UpdateOneID(id uuid.UUID) *PatientDocumentUpdateOne {
	mutation := newPatientDocumentMutation(c.config, OpUpdateOne, withPatientDocumentID(id))
	return &PatientDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PatientDocument.
func (c *PatientDocumentClient) Delete() *PatientDocumentDelete {
	mutation := newPatientDocumentMutation(c.config, OpDelete)
	return &PatientDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatientDocumentClient) DeleteOne(_m *PatientDocument) *PatientDocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatientDocumentClient) DeleteOneID(id uuid.UUID) *PatientDocumentDeleteOne {
	builder := c.Delete().Where(patientdocument.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatientDocumentDeleteOne{builder}
}

// Query returns a query builder for PatientDocument.
func (c *PatientDocumentClient) Query() *PatientDocumentQuery {
	return &PatientDocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatientDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a PatientDocument entity by its id.
func (c *PatientDocumentClient) Get(ctx context.Context, id uuid.UUID) (*PatientDocument, error) {
	return c.Query().Where(patientdocument.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatientDocumentClient) GetX(ctx context.Context, id uuid.UUID) *PatientDocument {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatient queries the patient edge of a PatientDocument.
func (c *PatientDocumentClient) QueryPatient(_m *PatientDocument) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patientdocument.Table, patientdocument.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, patientdocument.PatientTable, patientdocument.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUploadedBy queries the uploaded_by edge of a PatientDocument.
func (c *PatientDocumentClient) QueryUploadedBy(_m *PatientDocument) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patientdocument.Table, patientdocument.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, patientdocument.UploadedByTable, patientdocument.UploadedByColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PatientDocumentClient) Hooks() []Hook {
	return c.hooks.PatientDocument
}

// Interceptors returns the client interceptors.
func (c *PatientDocumentClient) Interceptors() []Interceptor {
	return c.inters.PatientDocument
}

func (c *PatientDocumentClient) mutate(ctx context.Context, m *PatientDocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatientDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatientDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatientDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatientDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown PatientDocument mutation op: %q", m.Op())
	}
}

// SMSTemplateClient is a client for the SMSTemplate schema.
type SMSTemplateClient struct {
	config
}

// NewSMSTemplateClient returns a client for the SMSTemplate from the given config.
func NewSMSTemplateClient(c config) *SMSTemplateClient {
	return &SMSTemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `smstemplate.Hooks(f(g(h())))`.
func (c *SMSTemplateClient) Use(hooks ...Hook) {
	c.hooks.SMSTemplate = append(c.hooks.SMSTemplate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `smstemplate.Intercept(f(g(h())))`.
func (c *SMSTemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.SMSTemplate = append(c.inters.SMSTemplate, interceptors...)
}

// Create returns a builder for creating a SMSTemplate entity.
func (c *SMSTemplateClient) Create() *SMSTemplateCreate {
	mutation := newSMSTemplateMutation(c.config, OpCreate)
	return &SMSTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SMSTemplate entities.
func (c *SMSTemplateClient) CreateBulk(builders ...*SMSTemplateCreate) *SMSTemplateCreateBulk {
	return &SMSTemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SMSTemplateClient) MapCreateBulk(slice any, setFunc func(*SMSTemplateCreate, int)) *SMSTemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SMSTemplateCreateBulk{err: fmt.Errorf("calling to SMSTemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SMSTemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SMSTemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SMSTemplate.
func (c *SMSTemplateClient) Update() *SMSTemplateUpdate {
	mutation := newSMSTemplateMutation(c.config, OpUpdate)
	return &SMSTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SMSTemplateClient) UpdateOne(_m *SMSTemplate) *SMSTemplateUpdateOne {
	mutation := newSMSTemplateMutation(c.config, OpUpdateOne, withSMSTemplate(_m))
	return &SMSTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SMSTemplateClient) UpdateOneID(id uuid.UUID) *SMSTemplateUpdateOne {
	mutation := newSMSTemplateMutation(c.config, OpUpdateOne, withSMSTemplateID(id))
	return &SMSTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SMSTemplate.
func (c *SMSTemplateClient) Delete() *SMSTemplateDelete {
	mutation := newSMSTemplateMutation(c.config, OpDelete)
	return &SMSTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SMSTemplateClient) DeleteOne(_m *SMSTemplate) *SMSTemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SMSTemplateClient) DeleteOneID(id uuid.UUID) *SMSTemplateDeleteOne {
	builder := c.Delete().Where(smstemplate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SMSTemplateDeleteOne{builder}
}

// Query returns a query builder for SMSTemplate.
func (c *SMSTemplateClient) Query() *SMSTemplateQuery {
	return &SMSTemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSMSTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a SMSTemplate entity by its id.
func (c *SMSTemplateClient) Get(ctx context.Context, id uuid.UUID) (*SMSTemplate, error) {
	return c.Query().Where(smstemplate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SMSTemplateClient) GetX(ctx context.Context, id uuid.UUID) *SMSTemplate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SMSTemplateClient) Hooks() []Hook {
	return c.hooks.SMSTemplate
}

// Interceptors returns the client interceptors.
func (c *SMSTemplateClient) Interceptors() []Interceptor {
	return c.inters.SMSTemplate
}

func (c *SMSTemplateClient) mutate(ctx context.Context, m *SMSTemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SMSTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SMSTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SMSTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SMSTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown SMSTemplate mutation op: %q", m.Op())
	}
}

// ServiceClient is a client for the Service schema.
type ServiceClient struct {
	config
}

// NewServiceClient returns a client for the Service from the given config.
func NewServiceClient(c config) *ServiceClient {
	return &ServiceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `service.Hooks(f(g(h())))`.
func (c *ServiceClient) Use(hooks ...Hook) {
	c.hooks.Service = append(c.hooks.Service, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `service.Intercept(f(g(h())))`.
func (c *ServiceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Service = append(c.inters.Service, interceptors...)
}

// Create returns a builder for creating a Service entity.
func (c *ServiceClient) Create() *ServiceCreate {
	mutation := newServiceMutation(c.config, OpCreate)
	return &ServiceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Service entities.
func (c *ServiceClient) CreateBulk(builders ...*ServiceCreate) *ServiceCreateBulk {
	return &ServiceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ServiceClient) MapCreateBulk(slice any, setFunc func(*ServiceCreate, int)) *ServiceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ServiceCreateBulk{err: fmt.Errorf("calling to ServiceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ServiceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ServiceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Service.
func (c *ServiceClient) Update() *ServiceUpdate {
	mutation := newServiceMutation(c.config, OpUpdate)
	return &ServiceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ServiceClient) UpdateOne(_m *Service) *ServiceUpdateOne {
	mutation := newServiceMutation(c.config, OpUpdateOne, withService(_m))
	return &ServiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ServiceClient) UpdateOneID(id uuid.UUID) *ServiceUpdateOne {
	mutation := newServiceMutation(c.config, OpUpdateOne, withServiceID(id))
	return &ServiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Service.
func (c *ServiceClient) Delete() *ServiceDelete {
	mutation := newServiceMutation(c.config, OpDelete)
	return &ServiceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ServiceClient) DeleteOne(_m *Service) *ServiceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ServiceClient) DeleteOneID(id uuid.UUID) *ServiceDeleteOne {
	builder := c.Delete().Where(service.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ServiceDeleteOne{builder}
}

// Query returns a query builder for Service.
func (c *ServiceClient) Query() *ServiceQuery {
	return &ServiceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeService},
		inters: c.Interceptors(),
	}
}

// Get returns a Service entity by its id.
func (c *ServiceClient) Get(ctx context.Context, id uuid.UUID) (*Service, error) {
	return c.Query().Where(service.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ServiceClient) GetX(ctx context.Context, id uuid.UUID) *Service {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCategory queries the category edge of a Service.
func (c *ServiceClient) QueryCategory(_m *Service) *ServiceCategoryQuery {
	query := (&ServiceCategoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(service.Table, service.FieldID, id),
			sqlgraph.To(servicecategory.Table, servicecategory.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, service.CategoryTable, service.CategoryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPackages queries the packages edge of a Service.
func (c *ServiceClient) QueryPackages(_m *Service) *ServicePackageQuery {
	query := (&ServicePackageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(service.Table, service.FieldID, id),
			sqlgraph.To(servicepackage.Table, servicepackage.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, service.PackagesTable, service.PackagesPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ServiceClient) Hooks() []Hook {
	return c.hooks.Service
}

// Interceptors returns the client interceptors.
func (c *ServiceClient) Interceptors() []Interceptor {
	return c.inters.Service
}

func (c *ServiceClient) mutate(ctx context.Context, m *ServiceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ServiceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ServiceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ServiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ServiceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Service mutation op: %q", m.Op())
	}
}

// ServiceCategoryClient is a client for the ServiceCategory schema.
type ServiceCategoryClient struct {
	config
}

// NewServiceCategoryClient returns a client for the ServiceCategory from the given config.
func NewServiceCategoryClient(c config) *ServiceCategoryClient {
	return &ServiceCategoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `servicecategory.Hooks(f(g(h())))`.
func (c *ServiceCategoryClient) Use(hooks ...Hook) {
	c.hooks.ServiceCategory = append(c.hooks.ServiceCategory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `servicecategory.Intercept(f(g(h())))`.
func (c *ServiceCategoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ServiceCategory = append(c.inters.ServiceCategory, interceptors...)
}

// Create returns a builder for creating a ServiceCategory entity.
func (c *ServiceCategoryClient) Create() *ServiceCategoryCreate {
	mutation := newServiceCategoryMutation(c.config, OpCreate)
	return &ServiceCategoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ServiceCategory entities.
func (c *ServiceCategoryClient) CreateBulk(builders ...*ServiceCategoryCreate) *ServiceCategoryCreateBulk {
	return &ServiceCategoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ServiceCategoryClient) MapCreateBulk(slice any, setFunc func(*ServiceCategoryCreate, int)) *ServiceCategoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ServiceCategoryCreateBulk{err: fmt.Errorf("calling to ServiceCategoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ServiceCategoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ServiceCategoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ServiceCategory.
func (c *ServiceCategoryClient) Update() *ServiceCategoryUpdate {
	mutation := newServiceCategoryMutation(c.config, OpUpdate)
	return &ServiceCategoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ServiceCategoryClient) UpdateOne(_m *ServiceCategory) *ServiceCategoryUpdateOne {
	mutation := newServiceCategoryMutation(c.config, OpUpdateOne, withServiceCategory(_m))
	return &ServiceCategoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ServiceCategoryClient) UpdateOneID(id uuid.UUID) *ServiceCategoryUpdateOne {
	mutation := newServiceCategoryMutation(c.config, OpUpdateOne, withServiceCategoryID(id))
	return &ServiceCategoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ServiceCategory.
func (c *ServiceCategoryClient) Delete() *ServiceCategoryDelete {
	mutation := newServiceCategoryMutation(c.config, OpDelete)
	return &ServiceCategoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ServiceCategoryClient) DeleteOne(_m *ServiceCategory) *ServiceCategoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ServiceCategoryClient) DeleteOneID(id uuid.UUID) *ServiceCategoryDeleteOne {
	builder := c.Delete().Where(servicecategory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ServiceCategoryDeleteOne{builder}
}

// Query returns a query builder for ServiceCategory.
func (c *ServiceCategoryClient) Query() *ServiceCategoryQuery {
	return &ServiceCategoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeServiceCategory},
		inters: c.Interceptors(),
	}
}

// Get returns a ServiceCategory entity by its id.
func (c *ServiceCategoryClient) Get(ctx context.Context, id uuid.UUID) (*ServiceCategory, error) {
	return c.Query().Where(servicecategory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ServiceCategoryClient) GetX(ctx context.Context, id uuid.UUID) *ServiceCategory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryServices queries the services edge of a ServiceCategory.
func (c *ServiceCategoryClient) QueryServices(_m *ServiceCategory) *ServiceQuery {
	query := (&ServiceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(servicecategory.Table, servicecategory.FieldID, id),
			sqlgraph.To(service.Table, service.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, servicecategory.ServicesTable, servicecategory.ServicesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ServiceCategoryClient) Hooks() []Hook {
	return c.hooks.ServiceCategory
}

// Interceptors returns the client interceptors.
func (c *ServiceCategoryClient) Interceptors() []Interceptor {
	return c.inters.ServiceCategory
}

func (c *ServiceCategoryClient) mutate(ctx context.Context, m *ServiceCategoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ServiceCategoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ServiceCategoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ServiceCategoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ServiceCategoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown ServiceCategory mutation op: %q", m.Op())
	}
}

// ServiceDoctorSpecialtyClient is a client for the ServiceDoctorSpecialty schema.
type ServiceDoctorSpecialtyClient struct {
	config
}

// NewServiceDoctorSpecialtyClient returns a client for the ServiceDoctorSpecialty from the given config.
func NewServiceDoctorSpecialtyClient(c config) *ServiceDoctorSpecialtyClient {
	return &ServiceDoctorSpecialtyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `servicedoctorspecialty.Hooks(f(g(h())))`.
func (c *ServiceDoctorSpecialtyClient) Use(hooks ...Hook) {
	c.hooks.ServiceDoctorSpecialty = append(c.hooks.ServiceDoctorSpecialty, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `servicedoctorspecialty.Intercept(f(g(h())))`.
func (c *ServiceDoctorSpecialtyClient) Intercept(interceptors ...Interceptor) {
	c.inters.ServiceDoctorSpecialty = append(c.inters.ServiceDoctorSpecialty, interceptors...)
}

// Create returns a builder for creating a ServiceDoctorSpecialty entity.
func (c *ServiceDoctorSpecialtyClient) Create() *ServiceDoctorSpecialtyCreate {
	mutation := newServiceDoctorSpecialtyMutation(c.config, OpCreate)
	return &ServiceDoctorSpecialtyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ServiceDoctorSpecialty entities.
func (c *ServiceDoctorSpecialtyClient) CreateBulk(builders ...*ServiceDoctorSpecialtyCreate) *ServiceDoctorSpecialtyCreateBulk {
	return &ServiceDoctorSpecialtyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ServiceDoctorSpecialtyClient) MapCreateBulk(slice any, setFunc func(*ServiceDoctorSpecialtyCreate, int)) *ServiceDoctorSpecialtyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ServiceDoctorSpecialtyCreateBulk{err: fmt.Errorf("calling to ServiceDoctorSpecialtyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ServiceDoctorSpecialtyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ServiceDoctorSpecialtyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ServiceDoctorSpecialty.
func (c *ServiceDoctorSpecialtyClient) Update() *ServiceDoctorSpecialtyUpdate {
	mutation := newServiceDoctorSpecialtyMutation(c.config, OpUpdate)
	return &ServiceDoctorSpecialtyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ServiceDoctorSpecialtyClient) UpdateOne(_m *ServiceDoctorSpecialty) *ServiceDoctorSpecialtyUpdateOne {
	mutation := newServiceDoctorSpecialtyMutation(c.config, OpUpdateOne, withServiceDoctorSpecialty(_m))
	return &ServiceDoctorSpecialtyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ServiceDoctorSpecialtyClient) UpdateOneID(id uuid.UUID) *ServiceDoctorSpecialtyUpdateOne {
	mutation := newServiceDoctorSpecialtyMutation(c.config, OpUpdateOne, withServiceDoctorSpecialtyID(id))
	return &ServiceDoctorSpecialtyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ServiceDoctorSpecialty.
func (c *ServiceDoctorSpecialtyClient) Delete() *ServiceDoctorSpecialtyDelete {
	mutation := newServiceDoctorSpecialtyMutation(c.config, OpDelete)
	return &ServiceDoctorSpecialtyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ServiceDoctorSpecialtyClient) DeleteOne(_m *ServiceDoctorSpecialty) *ServiceDoctorSpecialtyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ServiceDoctorSpecialtyClient) DeleteOneID(id uuid.UUID) *ServiceDoctorSpecialtyDeleteOne {
	builder := c.Delete().Where(servicedoctorspecialty.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ServiceDoctorSpecialtyDeleteOne{builder}
}

// Query returns a query builder for ServiceDoctorSpecialty.
func (c *ServiceDoctorSpecialtyClient) Query() *ServiceDoctorSpecialtyQuery {
	return &ServiceDoctorSpecialtyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeServiceDoctorSpecialty},
		inters: c.Interceptors(),
	}
}

// Get returns a ServiceDoctorSpecialty entity by its id.
func (c *ServiceDoctorSpecialtyClient) Get(ctx context.Context, id uuid.UUID) (*ServiceDoctorSpecialty, error) {
	return c.Query().Where(servicedoctorspecialty.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ServiceDoctorSpecialtyClient) GetX(ctx context.Context, id uuid.UUID) *ServiceDoctorSpecialty {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryService queries the service edge of a ServiceDoctorSpecialty.
func (c *ServiceDoctorSpecialtyClient) QueryService(_m *ServiceDoctorSpecialty) *ServiceQuery {
	query := (&ServiceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(servicedoctorspecialty.Table, servicedoctorspecialty.FieldID, id),
			sqlgraph.To(service.Table, service.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, servicedoctorspecialty.ServiceTable, servicedoctorspecialty.ServiceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDoctor queries the doctor edge of a ServiceDoctorSpecialty.
func (c *ServiceDoctorSpecialtyClient) QueryDoctor(_m *ServiceDoctorSpecialty) *DoctorQuery {
	query := (&DoctorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(servicedoctorspecialty.Table, servicedoctorspecialty.FieldID, id),
			sqlgraph.To(doctor.Table, doctor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, servicedoctorspecialty.DoctorTable, servicedoctorspecialty.DoctorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ServiceDoctorSpecialtyClient) Hooks() []Hook {
	return c.hooks.ServiceDoctorSpecialty
}

// Interceptors returns the client interceptors.
func (c *ServiceDoctorSpecialtyClient) Interceptors() []Interceptor {
	return c.inters.ServiceDoctorSpecialty
}

func (c *ServiceDoctorSpecialtyClient) mutate(ctx context.Context, m *ServiceDoctorSpecialtyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ServiceDoctorSpecialtyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ServiceDoctorSpecialtyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ServiceDoctorSpecialtyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ServiceDoctorSpecialtyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown ServiceDoctorSpecialty mutation op: %q", m.Op())
	}
}

// ServicePackageClient is a client for the ServicePackage schema.
type ServicePackageClient struct {
	config
}

// NewServicePackageClient returns a client for the ServicePackage from the given config.
func NewServicePackageClient(c config) *ServicePackageClient {
	return &ServicePackageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `servicepackage.Hooks(f(g(h())))`.
func (c *ServicePackageClient) Use(hooks ...Hook) {
	c.hooks.ServicePackage = append(c.hooks.ServicePackage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `servicepackage.Intercept(f(g(h())))`.
func (c *ServicePackageClient) Intercept(interceptors ...Interceptor) {
	c.inters.ServicePackage = append(c.inters.ServicePackage, interceptors...)
}

// Create returns a builder for creating a ServicePackage entity.
func (c *ServicePackageClient) Create() *ServicePackageCreate {
	mutation := newServicePackageMutation(c.config, OpCreate)
	return &ServicePackageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ServicePackage entities.
func (c *ServicePackageClient) CreateBulk(builders ...*ServicePackageCreate) *ServicePackageCreateBulk {
	return &ServicePackageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ServicePackageClient) MapCreateBulk(slice any, setFunc func(*ServicePackageCreate, int)) *ServicePackageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ServicePackageCreateBulk{err: fmt.Errorf("calling to ServicePackageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ServicePackageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ServicePackageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ServicePackage.
func (c *ServicePackageClient) Update() *ServicePackageUpdate {
	mutation := newServicePackageMutation(c.config, OpUpdate)
	return &ServicePackageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ServicePackageClient) UpdateOne(_m *ServicePackage) *ServicePackageUpdateOne {
	mutation := newServicePackageMutation(c.config, OpUpdateOne, withServicePackage(_m))
	return &ServicePackageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ServicePackageClient) UpdateOneID(id uuid.UUID) *ServicePackageUpdateOne {
	mutation := newServicePackageMutation(c.config, OpUpdateOne, withServicePackageID(id))
	return &ServicePackageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ServicePackage.
func (c *ServicePackageClient) Delete() *ServicePackageDelete {
	mutation := newServicePackageMutation(c.config, OpDelete)
	return &ServicePackageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ServicePackageClient) DeleteOne(_m *ServicePackage) *ServicePackageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ServicePackageClient) DeleteOneID(id uuid.UUID) *ServicePackageDeleteOne {
	builder := c.Delete().Where(servicepackage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ServicePackageDeleteOne{builder}
}

// Query returns a query builder for ServicePackage.
func (c *ServicePackageClient) Query() *ServicePackageQuery {
	return &ServicePackageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeServicePackage},
		inters: c.Interceptors(),
	}
}

// Get returns a ServicePackage entity by its id.
func (c *ServicePackageClient) Get(ctx context.Context, id uuid.UUID) (*ServicePackage, error) {
	return c.Query().Where(servicepackage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ServicePackageClient) GetX(ctx context.Context, id uuid.UUID) *ServicePackage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryServices queries the services edge of a ServicePackage.
func (c *ServicePackageClient) QueryServices(_m *ServicePackage) *ServiceQuery {
	query := (&ServiceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(servicepackage.Table, servicepackage.FieldID, id),
			sqlgraph.To(service.Table, service.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, servicepackage.ServicesTable, servicepackage.ServicesPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ServicePackageClient) Hooks() []Hook {
	return c.hooks.ServicePackage
}

// Interceptors returns the client interceptors.
func (c *ServicePackageClient) Interceptors() []Interceptor {
	return c.inters.ServicePackage
}

func (c *ServicePackageClient) mutate(ctx context.Context, m *ServicePackageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ServicePackageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ServicePackageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ServicePackageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ServicePackageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown ServicePackage mutation op: %q", m.Op())
	}
}

// SpecializationClient is a client for the Specialization schema.
type SpecializationClient struct {
	config
}

// NewSpecializationClient returns a client for the Specialization from the given config.
func NewSpecializationClient(c config) *SpecializationClient {
	return &SpecializationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `specialization.Hooks(f(g(h())))`.
func (c *SpecializationClient) Use(hooks ...Hook) {
	c.hooks.Specialization = append(c.hooks.Specialization, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `specialization.Intercept(f(g(h())))`.
func (c *SpecializationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Specialization = append(c.inters.Specialization, interceptors...)
}

// Create returns a builder for creating a Specialization entity.
func (c *SpecializationClient) Create() *SpecializationCreate {
	mutation := newSpecializationMutation(c.config, OpCreate)
	return &SpecializationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Specialization entities.
func (c *SpecializationClient) CreateBulk(builders ...*SpecializationCreate) *SpecializationCreateBulk {
	return &SpecializationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SpecializationClient) MapCreateBulk(slice any, setFunc func(*SpecializationCreate, int)) *SpecializationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SpecializationCreateBulk{err: fmt.Errorf("calling to SpecializationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SpecializationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SpecializationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Specialization.
func (c *SpecializationClient) Update() *SpecializationUpdate {
	mutation := newSpecializationMutation(c.config, OpUpdate)
	return &SpecializationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SpecializationClient) UpdateOne(_m *Specialization) *SpecializationUpdateOne {
	mutation := newSpecializationMutation(c.config, OpUpdateOne, withSpecialization(_m))
	return &SpecializationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SpecializationClient) UpdateOneID(id uuid.UUID) *SpecializationUpdateOne {
	mutation := newSpecializationMutation(c.config, OpUpdateOne, withSpecializationID(id))
	return &SpecializationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Specialization.
func (c *SpecializationClient) Delete() *SpecializationDelete {
	mutation := newSpecializationMutation(c.config, OpDelete)
	return &SpecializationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SpecializationClient) DeleteOne(_m *Specialization) *SpecializationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SpecializationClient) DeleteOneID(id uuid.UUID) *SpecializationDeleteOne {
	builder := c.Delete().Where(specialization.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SpecializationDeleteOne{builder}
}

// Query returns a query builder for Specialization.
func (c *SpecializationClient) Query() *SpecializationQuery {
	return &SpecializationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSpecialization},
		inters: c.Interceptors(),
	}
}

// Get returns a Specialization entity by its id.
func (c *SpecializationClient) Get(ctx context.Context, id uuid.UUID) (*Specialization, error) {
	return c.Query().Where(specialization.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SpecializationClient) GetX(ctx context.Context, id uuid.UUID) *Specialization {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDoctors queries the doctors edge of a Specialization.
func (c *SpecializationClient) QueryDoctors(_m *Specialization) *DoctorQuery {
	query := (&DoctorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(specialization.Table, specialization.FieldID, id),
			sqlgraph.To(doctor.Table, doctor.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, specialization.DoctorsTable, specialization.DoctorsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SpecializationClient) Hooks() []Hook {
	return c.hooks.Specialization
}

// Interceptors returns the client interceptors.
func (c *SpecializationClient) Interceptors() []Interceptor {
	return c.inters.Specialization
}

func (c *SpecializationClient) mutate(ctx context.Context, m *SpecializationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SpecializationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SpecializationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SpecializationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SpecializationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Specialization mutation op: %q", m.Op())
	}
}

// TestimonialClient is a client for the Testimonial schema.
type TestimonialClient struct {
	config
}

// NewTestimonialClient returns a client for the Testimonial from the given config.
func NewTestimonialClient(c config) *TestimonialClient {
	return &TestimonialClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `testimonial.Hooks(f(g(h())))`.
func (c *TestimonialClient) Use(hooks ...Hook) {
	c.hooks.Testimonial = append(c.hooks.Testimonial, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `testimonial.Intercept(f(g(h())))`.
func (c *TestimonialClient) Intercept(interceptors ...Interceptor) {
	c.inters.Testimonial = append(c.inters.Testimonial, interceptors...)
}

// Create returns a builder for creating a Testimonial entity.
func (c *TestimonialClient) Create() *TestimonialCreate {
	mutation := newTestimonialMutation(c.config, OpCreate)
	return &TestimonialCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Testimonial entities.
func (c *TestimonialClient) CreateBulk(builders ...*TestimonialCreate) *TestimonialCreateBulk {
	return &TestimonialCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TestimonialClient) MapCreateBulk(slice any, setFunc func(*TestimonialCreate, int)) *TestimonialCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TestimonialCreateBulk{err: fmt.Errorf("calling to TestimonialClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TestimonialCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TestimonialCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Testimonial.
func (c *TestimonialClient) Update() *TestimonialUpdate {
	mutation := newTestimonialMutation(c.config, OpUpdate)
	return &TestimonialUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TestimonialClient) UpdateOne(_m *Testimonial) *TestimonialUpdateOne {
	mutation := newTestimonialMutation(c.config, OpUpdateOne, withTestimonial(_m))
	return &TestimonialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TestimonialClient) UpdateOneID(id uuid.UUID) *TestimonialUpdateOne {
	mutation := newTestimonialMutation(c.config, OpUpdateOne, withTestimonialID(id))
	return &TestimonialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Testimonial.
func (c *TestimonialClient) Delete() *TestimonialDelete {
	mutation := newTestimonialMutation(c.config, OpDelete)
	return &TestimonialDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TestimonialClient) DeleteOne(_m *Testimonial) *TestimonialDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TestimonialClient) DeleteOneID(id uuid.UUID) *TestimonialDeleteOne {
	builder := c.Delete().Where(testimonial.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TestimonialDeleteOne{builder}
}

// Query returns a query builder for Testimonial.
func (c *TestimonialClient) Query() *TestimonialQuery {
	return &TestimonialQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTestimonial},
		inters: c.Interceptors(),
	}
}

// Get returns a Testimonial entity by its id.
func (c *TestimonialClient) Get(ctx context.Context, id uuid.UUID) (*Testimonial, error) {
	return c.Query().Where(testimonial.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TestimonialClient) GetX(ctx context.Context, id uuid.UUID) *Testimonial {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatient queries the patient edge of a Testimonial.
func (c *TestimonialClient) QueryPatient(_m *Testimonial) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(testimonial.Table, testimonial.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, testimonial.PatientTable, testimonial.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryService queries the service edge of a Testimonial.
func (c *TestimonialClient) QueryService(_m *Testimonial) *ServiceQuery {
	query := (&ServiceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(testimonial.Table, testimonial.FieldID, id),
			sqlgraph.To(service.Table, service.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, testimonial.ServiceTable, testimonial.ServiceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDoctor queries the doctor edge of a Testimonial.
func (c *TestimonialClient) QueryDoctor(_m *Testimonial) *DoctorQuery {
	query := (&DoctorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(testimonial.Table, testimonial.FieldID, id),
			sqlgraph.To(doctor.Table, doctor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, testimonial.DoctorTable, testimonial.DoctorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TestimonialClient) Hooks() []Hook {
	return c.hooks.Testimonial
}

// Interceptors returns the client interceptors.
func (c *TestimonialClient) Interceptors() []Interceptor {
	return c.inters.Testimonial
}

func (c *TestimonialClient) mutate(ctx context.Context, m *TestimonialMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TestimonialCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TestimonialUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TestimonialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TestimonialDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Testimonial mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProfile queries the profile edge of a User.
func (c *UserClient) QueryProfile(_m *User) *UserProfileQuery {
	query := (&UserProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(userprofile.Table, userprofile.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, user.ProfileTable, user.ProfileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown User mutation op: %q", m.Op())
	}
}

// UserProfileClient is a client for the UserProfile schema.
type UserProfileClient struct {
	config
}

// NewUserProfileClient returns a client for the UserProfile from the given config.
func NewUserProfileClient(c config) *UserProfileClient {
	return &UserProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userprofile.Hooks(f(g(h())))`.
func (c *UserProfileClient) Use(hooks ...Hook) {
	c.hooks.UserProfile = append(c.hooks.UserProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userprofile.Intercept(f(g(h())))`.
func (c *UserProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserProfile = append(c.inters.UserProfile, interceptors...)
}

// Create returns a builder for creating a UserProfile entity.
func (c *UserProfileClient) Create() *UserProfileCreate {
	mutation := newUserProfileMutation(c.config, OpCreate)
	return &UserProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserProfile entities.
func (c *UserProfileClient) CreateBulk(builders ...*UserProfileCreate) *UserProfileCreateBulk {
	return &UserProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserProfileClient) MapCreateBulk(slice any, setFunc func(*UserProfileCreate, int)) *UserProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserProfileCreateBulk{err: fmt.Errorf("calling to UserProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserProfile.
func (c *UserProfileClient) Update() *UserProfileUpdate {
	mutation := newUserProfileMutation(c.config, OpUpdate)
	return &UserProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserProfileClient) UpdateOne(_m *UserProfile) *UserProfileUpdateOne {
	mutation := newUserProfileMutation(c.config, OpUpdateOne, withUserProfile(_m))
	return &UserProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserProfileClient) UpdateOneID(id uuid.UUID) *UserProfileUpdateOne {
	mutation := newUserProfileMutation(c.config, OpUpdateOne, withUserProfileID(id))
	return &UserProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserProfile.
func (c *UserProfileClient) Delete() *UserProfileDelete {
	mutation := newUserProfileMutation(c.config, OpDelete)
	return &UserProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserProfileClient) DeleteOne(_m *UserProfile) *UserProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserProfileClient) DeleteOneID(id uuid.UUID) *UserProfileDeleteOne {
	builder := c.Delete().Where(userprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserProfileDeleteOne{builder}
}

// Query returns a query builder for UserProfile.
func (c *UserProfileClient) Query() *UserProfileQuery {
	return &UserProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a UserProfile entity by its id.
func (c *UserProfileClient) Get(ctx context.Context, id uuid.UUID) (*UserProfile, error) {
	return c.Query().Where(userprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserProfileClient) GetX(ctx context.Context, id uuid.UUID) *UserProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a UserProfile.
func (c *UserProfileClient) QueryUser(_m *UserProfile) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(userprofile.Table, userprofile.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, userprofile.UserTable, userprofile.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserProfileClient) Hooks() []Hook {
	return c.hooks.UserProfile
}

// Interceptors returns the client interceptors.
func (c *UserProfileClient) Interceptors() []Interceptor {
	return c.inters.UserProfile
}

func (c *UserProfileClient) mutate(ctx context.Context, m *UserProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown UserProfile mutation op: %q", m.Op())
	}
}

// UserSessionClient is a client for the UserSession schema.
type UserSessionClient struct {
	config
}

// NewUserSessionClient returns a client for the UserSession from the given config.
func NewUserSessionClient(c config) *UserSessionClient {
	return &UserSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usersession.Hooks(f(g(h())))`.
func (c *UserSessionClient) Use(hooks ...Hook) {
	c.hooks.UserSession = append(c.hooks.UserSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usersession.Intercept(f(g(h())))`.
func (c *UserSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserSession = append(c.inters.UserSession, interceptors...)
}

// Create returns a builder for creating a UserSession entity.
func (c *UserSessionClient) Create() *UserSessionCreate {
	mutation := newUserSessionMutation(c.config, OpCreate)
	return &UserSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserSession entities.
func (c *UserSessionClient) CreateBulk(builders ...*UserSessionCreate) *UserSessionCreateBulk {
	return &UserSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserSessionClient) MapCreateBulk(slice any, setFunc func(*UserSessionCreate, int)) *UserSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserSessionCreateBulk{err: fmt.Errorf("calling to UserSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserSession.
func (c *UserSessionClient) Update() *UserSessionUpdate {
	mutation := newUserSessionMutation(c.config, OpUpdate)
	return &UserSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserSessionClient) UpdateOne(_m *UserSession) *UserSessionUpdateOne {
	mutation := newUserSessionMutation(c.config, OpUpdateOne, withUserSession(_m))
	return &UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserSessionClient) UpdateOneID(id uuid.UUID) *UserSessionUpdateOne {
	mutation := newUserSessionMutation(c.config, OpUpdateOne, withUserSessionID(id))
	return &UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserSession.
func (c *UserSessionClient) Delete() *UserSessionDelete {
	mutation := newUserSessionMutation(c.config, OpDelete)
	return &UserSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserSessionClient) DeleteOne(_m *UserSession) *UserSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserSessionClient) DeleteOneID(id uuid.UUID) *UserSessionDeleteOne {
	builder := c.Delete().Where(usersession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserSessionDeleteOne{builder}
}

// Query returns a query builder for UserSession.
func (c *UserSessionClient) Query() *UserSessionQuery {
	return &UserSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserSession},
		inters: c.Interceptors(),
	}
}

// Get returns a UserSession entity by its id.
func (c *UserSessionClient) Get(ctx context.Context, id uuid.UUID) (*UserSession, error) {
	return c.Query().Where(usersession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserSessionClient) GetX(ctx context.Context, id uuid.UUID) *UserSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a UserSession.
func (c *UserSessionClient) QueryUser(_m *UserSession) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usersession.Table, usersession.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, usersession.UserTable, usersession.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserSessionClient) Hooks() []Hook {
	return c.hooks.UserSession
}

// Interceptors returns the client interceptors.
func (c *UserSessionClient) Interceptors() []Interceptor {
	return c.inters.UserSession
}

func (c *UserSessionClient) mutate(ctx context.Context, m *UserSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown UserSession mutation op: %q", m.Op())
	}
}

// WaitingListClient is a client for the WaitingList schema.
type WaitingListClient struct {
	config
}

// NewWaitingListClient returns a client for the WaitingList from the given config.
func NewWaitingListClient(c config) *WaitingListClient {
	return &WaitingListClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `waitinglist.Hooks(f(g(h())))`.
func (c *WaitingListClient) Use(hooks ...Hook) {
	c.hooks.WaitingList = append(c.hooks.WaitingList, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `waitinglist.Intercept(f(g(h())))`.
func (c *WaitingListClient) Intercept(interceptors ...Interceptor) {
	c.inters.WaitingList = append(c.inters.WaitingList, interceptors...)
}

// Create returns a builder for creating a WaitingList entity.
func (c *WaitingListClient) Create() *WaitingListCreate {
	mutation := newWaitingListMutation(c.config, OpCreate)
	return &WaitingListCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WaitingList entities.
func (c *WaitingListClient) CreateBulk(builders ...*WaitingListCreate) *WaitingListCreateBulk {
	return &WaitingListCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WaitingListClient) MapCreateBulk(slice any, setFunc func(*WaitingListCreate, int)) *WaitingListCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WaitingListCreateBulk{err: fmt.Errorf("calling to WaitingListClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WaitingListCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WaitingListCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WaitingList.
func (c *WaitingListClient) Update() *WaitingListUpdate {
	mutation := newWaitingListMutation(c.config, OpUpdate)
	return &WaitingListUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WaitingListClient) UpdateOne(_m *WaitingList) *WaitingListUpdateOne {
	mutation := newWaitingListMutation(c.config, OpUpdateOne, withWaitingList(_m))
	return &WaitingListUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WaitingListClient) UpdateOneID(id uuid.UUID) *WaitingListUpdateOne {
	mutation := newWaitingListMutation(c.config, OpUpdateOne, withWaitingListID(id))
	return &WaitingListUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WaitingList.
func (c *WaitingListClient) Delete() *WaitingListDelete {
	mutation := newWaitingListMutation(c.config, OpDelete)
	return &WaitingListDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WaitingListClient) DeleteOne(_m *WaitingList) *WaitingListDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WaitingListClient) DeleteOneID(id uuid.UUID) *WaitingListDeleteOne {
	builder := c.Delete().Where(waitinglist.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WaitingListDeleteOne{builder}
}

// Query returns a query builder for WaitingList.
func (c *WaitingListClient) Query() *WaitingListQuery {
	return &WaitingListQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWaitingList},
		inters: c.Interceptors(),
	}
}

// Get returns a WaitingList entity by its id.
func (c *WaitingListClient) Get(ctx context.Context, id uuid.UUID) (*WaitingList, error) {
	return c.Query().Where(waitinglist.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WaitingListClient) GetX(ctx context.Context, id uuid.UUID) *WaitingList {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatient queries the patient edge of a WaitingList.
func (c *WaitingListClient) QueryPatient(_m *WaitingList) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(waitinglist.Table, waitinglist.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, waitinglist.PatientTable, waitinglist.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDoctor queries the doctor edge of a WaitingList.
func (c *WaitingListClient) QueryDoctor(_m *WaitingList) *DoctorQuery {
	query := (&DoctorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(waitinglist.Table, waitinglist.FieldID, id),
			sqlgraph.To(doctor.Table, doctor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, waitinglist.DoctorTable, waitinglist.DoctorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryService queries the service edge of a WaitingList.
func (c *WaitingListClient) QueryService(_m *WaitingList) *ServiceQuery {
	query := (&ServiceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(waitinglist.Table, waitinglist.FieldID, id),
			sqlgraph.To(service.Table, service.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, waitinglist.ServiceTable, waitinglist.ServiceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WaitingListClient) Hooks() []Hook {
	return c.hooks.WaitingList
}

// Interceptors returns the client interceptors.
func (c *WaitingListClient) Interceptors() []Interceptor {
	return c.inters.WaitingList
}

func (c *WaitingListClient) mutate(ctx context.Context, m *WaitingListMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WaitingListCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WaitingListUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WaitingListUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WaitingListDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown WaitingList mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Appointment, AppointmentNote, AppointmentReschedule, AppointmentType,
		BusinessHours, ClinicSettings, ContactMessage, ContactResponse, Doctor,
		DoctorAvailability, DoctorLeave, EmailTemplate, Holiday, MedicalHistory,
		Newsletter, NewsletterCampaign, NewsletterSubscriber, Patient, PatientDocument,
		SMSTemplate, Service, ServiceCategory, ServiceDoctorSpecialty, ServicePackage,
		Specialization, Testimonial, User, UserProfile, UserSession,
		WaitingList []ent.Hook
	}
	inters struct {
		Appointment, AppointmentNote, AppointmentReschedule, AppointmentType,
		BusinessHours, ClinicSettings, ContactMessage, ContactResponse, Doctor,
		DoctorAvailability, DoctorLeave, EmailTemplate, Holiday, MedicalHistory,
		Newsletter, NewsletterCampaign, NewsletterSubscriber, Patient, PatientDocument,
		SMSTemplate, Service, ServiceCategory, ServiceDoctorSpecialty, ServicePackage,
		Specialization, Testimonial, User, UserProfile, UserSession,
		WaitingList []ent.Interceptor
	}
)
