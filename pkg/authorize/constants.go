package authorize

import (
	"fmt"
	"regexp"
)

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power actions
	ActionManage  Action = "manage"  // CRUD + list
	ActionExecute Action = "execute" // run, trigger, send, etc.

	// Lifecycle actions
	ActionApprove Action = "approve"
	ActionCancel  Action = "cancel"
	ActionClose   Action = "close"

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {}, ActionExecute: {},
	ActionApprove: {}, ActionCancel: {}, ActionClose: {},
	ActionGrant: {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / auth
	ResourceUser        Resource = "user"
	ResourceAuthSession Resource = "auth_session"
	ResourceOTP         Resource = "otp"

	// Clinical records
	ResourcePatient         Resource = "patient"
	ResourcePatientDocument Resource = "patient_document"
	ResourceMedicalHistory  Resource = "medical_history"

	// Practitioners
	ResourceDoctor         Resource = "doctor"
	ResourceDoctorSchedule Resource = "doctor_schedule"
	ResourceDoctorLeave    Resource = "doctor_leave"

	// Scheduling
	ResourceAppointment     Resource = "appointment"
	ResourceAppointmentNote Resource = "appointment_note"
	ResourceWaitingList     Resource = "waiting_list"

	// Catalog
	ResourceService        Resource = "service"
	ResourceServicePackage Resource = "service_package"

	// Clinic configuration
	ResourceClinicSettings Resource = "clinic_settings"
	ResourceBusinessHours  Resource = "business_hours"
	ResourceHoliday        Resource = "holiday"
	ResourceTemplate       Resource = "template"

	// Communication / marketing
	ResourceContactMessage Resource = "contact_message"
	ResourceNewsletter     Resource = "newsletter"
	ResourceSubscriber     Resource = "subscriber"
	ResourceTestimonial    Resource = "testimonial"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceAudit  Resource = "audit"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceUser: {}, ResourceAuthSession: {}, ResourceOTP: {},
	ResourcePatient: {}, ResourcePatientDocument: {}, ResourceMedicalHistory: {},
	ResourceDoctor: {}, ResourceDoctorSchedule: {}, ResourceDoctorLeave: {},
	ResourceAppointment: {}, ResourceAppointmentNote: {}, ResourceWaitingList: {},
	ResourceService: {}, ResourceServicePackage: {},
	ResourceClinicSettings: {}, ResourceBusinessHours: {}, ResourceHoliday: {}, ResourceTemplate: {},
	ResourceContactMessage: {}, ResourceNewsletter: {}, ResourceSubscriber: {}, ResourceTestimonial: {},
	ResourceSystem: {}, ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	// Platform role (domain = sys)
	RoleSysSuperAdmin Role = "role:sys:superadmin"

	// Clinic roles (domain = clinic)
	RoleClinicAdmin   Role = "role:clinic:admin"
	RoleClinicStaff   Role = "role:clinic:staff"
	RoleClinicDoctor  Role = "role:clinic:doctor"
	RoleClinicPatient Role = "role:clinic:patient"

	// Private user scope (domain = user:<uuid>)
	RoleUserSelf Role = "role:user:self"
)

var KnownRoles = map[Role]struct{}{
	RoleSysSuperAdmin: {},
	RoleClinicAdmin:   {},
	RoleClinicStaff:   {},
	RoleClinicDoctor:  {},
	RoleClinicPatient: {},
	RoleUserSelf:      {},
}

// User type strings (stored in DB users.user_type column)
const (
	UserTypePatient = "patient"
	UserTypeDoctor  = "doctor"
	UserTypeAdmin   = "admin"
	UserTypeStaff   = "staff"
)

// UserTypeToRBACRole maps DB user_type values to Casbin roles
var UserTypeToRBACRole = map[string]Role{
	UserTypePatient: RoleClinicPatient,
	UserTypeDoctor:  RoleClinicDoctor,
	UserTypeAdmin:   RoleClinicAdmin,
	UserTypeStaff:   RoleClinicStaff,
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys Domain = "sys"

	// DomainClinic is the single shared clinic scope. The system runs one
	// clinic, so unlike multi-tenant setups the domain carries no UUID.
	DomainClinic Domain = "clinic"
)

// Domain prefixes (for exact domains we generate per entity)
const (
	DomainPrefixUser Domain = "user:"
)

const (
	WildcardDomain Domain = "*"
)

var (
	reUUID = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)
)

// UserDomain builds the user's private domain.
func UserDomain(userID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixUser, userID))
}

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	if d == DomainSys || d == DomainClinic || d == WildcardDomain {
		return true
	}

	s := string(d)
	if len(s) > len(DomainPrefixUser) && s[:len(DomainPrefixUser)] == string(DomainPrefixUser) {
		return reUUID.MatchString(s[len(DomainPrefixUser):])
	}
	return false
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PolicySubject is the p.sub in Casbin: either a role (preferred) or a user/service id.
type PolicySubject string

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id or service_id).
type GroupSubject string

// Grouping rows: g, user_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
