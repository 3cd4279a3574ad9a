package app

import (
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/muchiri-dev/dermacare_backend/config"
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
	"github.com/muchiri-dev/dermacare_backend/pkg/email"
	pasetotoken "github.com/muchiri-dev/dermacare_backend/pkg/paseto"
	s3pkg "github.com/muchiri-dev/dermacare_backend/pkg/s3"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvideUserService,
		ProvidePatientService,
		ProvideDoctorService,
		ProvideAppointmentService,
		ProvideCatalogService,
		ProvideClinicConfigService,
		ProvideContactService,
		ProvideNewsletterService,
		ProvideTestimonialService,
		ProvidePasetoManager,
	),
)

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	mailer *email.Client,
	paseto *pasetotoken.Manager,
	authz authorize.IAuthorization,
	patients patient.Service,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, mailer, paseto, authz, patients, cfg)
}

func ProvideUserService(db *repo.Client, files *s3pkg.Client) user.Service {
	return user.New(db, files)
}

func ProvidePatientService(db *repo.Client, files *s3pkg.Client, cfg *config.Config) (patient.Service, error) {
	return patient.New(db, files, cfg)
}

func ProvideDoctorService(db *repo.Client) doctor.Service {
	return doctor.New(db)
}

func ProvideAppointmentService(db *repo.Client, nc *nats.Conn) appointment.Service {
	return appointment.New(db, nc)
}

func ProvideCatalogService(db *repo.Client) catalog.Service {
	return catalog.New(db)
}

func ProvideClinicConfigService(db *repo.Client) clinicconfig.Service {
	return clinicconfig.New(db)
}

func ProvideContactService(db *repo.Client, mailer *email.Client) contact.Service {
	return contact.New(db, mailer)
}

func ProvideNewsletterService(db *repo.Client, nc *nats.Conn) newsletter.Service {
	return newsletter.New(db, nc)
}

func ProvideTestimonialService(db *repo.Client) testimonial.Service {
	return testimonial.New(db)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
