package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// SuperAdmin: god mode
		{RoleSysSuperAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},
	}

	// Clinic-level policies (domain: clinic)
	clinicPolicies := []PermissionPolicy{
		// ClinicAdmin: full control within the clinic
		{RoleClinicAdmin, DomainClinic, ResourceUser, ActionManage, EffectAllow},
		{RoleClinicAdmin, DomainClinic, ResourcePatient, ActionManage, EffectAllow},
		{RoleClinicAdmin, DomainClinic, ResourcePatientDocument, ActionManage, EffectAllow},
		{RoleClinicAdmin, DomainClinic, ResourceMedicalHistory, ActionManage, EffectAllow},
		{RoleClinicAdmin, DomainClinic, ResourceDoctor, ActionManage, EffectAllow},
		{RoleClinicAdmin, DomainClinic, ResourceDoctorSchedule, ActionManage, EffectAllow},
		{RoleClinicAdmin, DomainClinic, ResourceDoctorLeave, ActionManage, EffectAllow},
		{RoleClinicAdmin, DomainClinic, ResourceDoctorLeave, ActionApprove, EffectAllow},
		{RoleClinicAdmin, DomainClinic, ResourceAppointment, ActionManage, EffectAllow},
		{RoleClinicAdmin, DomainClinic, ResourceAppointmentNote, ActionManage, EffectAllow},
		{RoleClinicAdmin, DomainClinic, ResourceWaitingList, ActionManage, EffectAllow},
		{RoleClinicAdmin, DomainClinic, ResourceService, ActionManage, EffectAllow},
		{RoleClinicAdmin, DomainClinic, ResourceServicePackage, ActionManage, EffectAllow},
		{RoleClinicAdmin, DomainClinic, ResourceClinicSettings, ActionManage, EffectAllow},
		{RoleClinicAdmin, DomainClinic, ResourceBusinessHours, ActionManage, EffectAllow},
		{RoleClinicAdmin, DomainClinic, ResourceHoliday, ActionManage, EffectAllow},
		{RoleClinicAdmin, DomainClinic, ResourceTemplate, ActionManage, EffectAllow},
		{RoleClinicAdmin, DomainClinic, ResourceContactMessage, ActionManage, EffectAllow},
		{RoleClinicAdmin, DomainClinic, ResourceNewsletter, ActionManage, EffectAllow},
		{RoleClinicAdmin, DomainClinic, ResourceNewsletter, ActionExecute, EffectAllow},
		{RoleClinicAdmin, DomainClinic, ResourceSubscriber, ActionManage, EffectAllow},
		{RoleClinicAdmin, DomainClinic, ResourceTestimonial, ActionManage, EffectAllow},
		{RoleClinicAdmin, DomainClinic, ResourceTestimonial, ActionApprove, EffectAllow},
		{RoleClinicAdmin, DomainClinic, ResourceAudit, ActionRead, EffectAllow},
		{RoleClinicAdmin, DomainClinic, ResourceRBAC, ActionGrant, EffectAllow},
		{RoleClinicAdmin, DomainClinic, ResourceRBAC, ActionRevoke, EffectAllow},

		// ClinicStaff: front-desk work, no settings or RBAC
		{RoleClinicStaff, DomainClinic, ResourcePatient, ActionManage, EffectAllow},
		{RoleClinicStaff, DomainClinic, ResourcePatientDocument, ActionManage, EffectAllow},
		{RoleClinicStaff, DomainClinic, ResourceAppointment, ActionManage, EffectAllow},
		{RoleClinicStaff, DomainClinic, ResourceWaitingList, ActionManage, EffectAllow},
		{RoleClinicStaff, DomainClinic, ResourceDoctor, ActionRead, EffectAllow},
		{RoleClinicStaff, DomainClinic, ResourceDoctor, ActionList, EffectAllow},
		{RoleClinicStaff, DomainClinic, ResourceDoctorSchedule, ActionRead, EffectAllow},
		{RoleClinicStaff, DomainClinic, ResourceService, ActionRead, EffectAllow},
		{RoleClinicStaff, DomainClinic, ResourceService, ActionList, EffectAllow},
		{RoleClinicStaff, DomainClinic, ResourceContactMessage, ActionManage, EffectAllow},
		{RoleClinicStaff, DomainClinic, ResourceTestimonial, ActionRead, EffectAllow},
		{RoleClinicStaff, DomainClinic, ResourceTestimonial, ActionList, EffectAllow},

		// ClinicDoctor: own schedule and clinical records
		{RoleClinicDoctor, DomainClinic, ResourcePatient, ActionRead, EffectAllow},
		{RoleClinicDoctor, DomainClinic, ResourcePatient, ActionList, EffectAllow},
		{RoleClinicDoctor, DomainClinic, ResourceMedicalHistory, ActionManage, EffectAllow},
		{RoleClinicDoctor, DomainClinic, ResourcePatientDocument, ActionRead, EffectAllow},
		{RoleClinicDoctor, DomainClinic, ResourcePatientDocument, ActionCreate, EffectAllow},
		{RoleClinicDoctor, DomainClinic, ResourceAppointment, ActionRead, EffectAllow},
		{RoleClinicDoctor, DomainClinic, ResourceAppointment, ActionList, EffectAllow},
		{RoleClinicDoctor, DomainClinic, ResourceAppointment, ActionUpdate, EffectAllow},
		{RoleClinicDoctor, DomainClinic, ResourceAppointmentNote, ActionManage, EffectAllow},
		{RoleClinicDoctor, DomainClinic, ResourceDoctorSchedule, ActionManage, EffectAllow},
		{RoleClinicDoctor, DomainClinic, ResourceDoctorLeave, ActionCreate, EffectAllow},
		{RoleClinicDoctor, DomainClinic, ResourceDoctorLeave, ActionRead, EffectAllow},

		// ClinicPatient: book and manage own visits
		{RoleClinicPatient, DomainClinic, ResourceAppointment, ActionCreate, EffectAllow},
		{RoleClinicPatient, DomainClinic, ResourceAppointment, ActionRead, EffectAllow},
		{RoleClinicPatient, DomainClinic, ResourceAppointment, ActionCancel, EffectAllow},
		{RoleClinicPatient, DomainClinic, ResourceWaitingList, ActionCreate, EffectAllow},
		{RoleClinicPatient, DomainClinic, ResourceDoctor, ActionRead, EffectAllow},
		{RoleClinicPatient, DomainClinic, ResourceDoctor, ActionList, EffectAllow},
		{RoleClinicPatient, DomainClinic, ResourceService, ActionRead, EffectAllow},
		{RoleClinicPatient, DomainClinic, ResourceService, ActionList, EffectAllow},
		{RoleClinicPatient, DomainClinic, ResourceTestimonial, ActionCreate, EffectAllow},
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		// UserSelf: full control over own resources
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceAuthSession, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceOTP, ActionManage, EffectAllow},
	}

	allPolicies := append(append(sysPolicies, clinicPolicies...), userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID string) error {
	domain := UserDomain(userID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignClinicRoleForUserType assigns the clinic role matching the user's
// user_type column. Call this when creating or promoting a user.
func AssignClinicRoleForUserType(ctx context.Context, auth IAuthorization, userID, userType string) error {
	role, ok := UserTypeToRBACRole[userType]
	if !ok {
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, DomainClinic)
	return err
}

// RemoveClinicRole removes a clinic role from a user.
func RemoveClinicRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	subject := GroupSubject(userID)
	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, DomainClinic)
	return err
}

// GetClinicRoles returns all clinic roles a user holds.
func GetClinicRoles(ctx context.Context, auth IAuthorization, userID string) ([]Role, error) {
	subject := GroupSubject(userID)
	return auth.GetRolesForUserInDomain(ctx, subject, DomainClinic)
}

// AssignSystemRole assigns a system-level role to a user.
// Note: RoleSysSuperAdmin should be assigned manually/carefully.
func AssignSystemRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	switch role {
	case RoleSysSuperAdmin:
		// superadmin is valid but should be assigned with caution
	default:
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}

// RemoveSystemRole removes a system-level role from a user.
func RemoveSystemRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	subject := GroupSubject(userID)
	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}
