package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/muchiri-dev/dermacare_backend/config"
	"github.com/muchiri-dev/dermacare_backend/internal/api/http/handler"
	"github.com/muchiri-dev/dermacare_backend/internal/api/http/middleware"
	"github.com/muchiri-dev/dermacare_backend/internal/repo"
	"github.com/muchiri-dev/dermacare_backend/internal/service/appointment"
	"github.com/muchiri-dev/dermacare_backend/internal/service/auth"
	"github.com/muchiri-dev/dermacare_backend/internal/service/catalog"
	"github.com/muchiri-dev/dermacare_backend/internal/service/clinicconfig"
	"github.com/muchiri-dev/dermacare_backend/internal/service/contact"
	"github.com/muchiri-dev/dermacare_backend/internal/service/doctor"
	"github.com/muchiri-dev/dermacare_backend/internal/service/newsletter"
	"github.com/muchiri-dev/dermacare_backend/internal/service/patient"
	"github.com/muchiri-dev/dermacare_backend/internal/service/testimonial"
	"github.com/muchiri-dev/dermacare_backend/internal/service/user"
	"github.com/muchiri-dev/dermacare_backend/pkg/authorize"
	pasetotoken "github.com/muchiri-dev/dermacare_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg            *config.Config
	Redis          *redis.Client
	Auth           authorize.IAuthorization
	DB             *repo.Client
	AuthSvc        auth.Service
	UserSvc        user.Service
	PatientSvc     patient.Service
	DoctorSvc      doctor.Service
	AppointmentSvc appointment.Service
	CatalogSvc     catalog.Service
	ClinicSvc      clinicconfig.Service
	ContactSvc     contact.Service
	NewsletterSvc  newsletter.Service
	TestimonialSvc testimonial.Service
	PasetoMgr      *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	publicForm := middleware.NewPublicFormLimiter(r.p.Redis)

	// Permission helper
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc)
	doctorH := handler.NewDoctorHandler(r.p.DoctorSvc)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc)
	catalogH := handler.NewCatalogHandler(r.p.CatalogSvc)
	clinicH := handler.NewClinicHandler(r.p.ClinicSvc)
	contactH := handler.NewContactHandler(r.p.ContactSvc, r.p.Cfg.Clinic.Name)
	newsletterH := handler.NewNewsletterHandler(r.p.NewsletterSvc)
	testimonialH := handler.NewTestimonialHandler(r.p.TestimonialSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerUserRoutes(api, userH, authRequired)
	r.registerPatientRoutes(api, patientH, authRequired, requirePerm)
	r.registerDoctorRoutes(api, doctorH, authRequired, requirePerm)
	r.registerAppointmentRoutes(api, appointmentH, authRequired, requirePerm)
	r.registerCatalogRoutes(api, catalogH, authRequired, requirePerm)
	r.registerClinicRoutes(api, clinicH, authRequired, requirePerm)
	r.registerContactRoutes(api, contactH, authRequired, publicForm, requirePerm)
	r.registerNewsletterRoutes(api, newsletterH, authRequired, publicForm, requirePerm)
	r.registerTestimonialRoutes(api, testimonialH, authRequired, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
