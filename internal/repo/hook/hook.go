// Code generated by ent, DO NOT EDIT.

package hook

import (
	"context"
	"fmt"

	"github.com/muchiri-dev/dermacare_backend/internal/repo"
)

// The AppointmentFunc type is an adapter to allow the use of ordinary
// function as Appointment mutator.
type AppointmentFunc func(context.Context, *repo.AppointmentMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f AppointmentFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.AppointmentMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.AppointmentMutation", m)
}

// The AppointmentNoteFunc type is an adapter to allow the use of ordinary
// function as AppointmentNote mutator.
type AppointmentNoteFunc func(context.Context, *repo.AppointmentNoteMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f AppointmentNoteFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.AppointmentNoteMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.AppointmentNoteMutation", m)
}

// The AppointmentRescheduleFunc type is an adapter to allow the use of ordinary
// function as AppointmentReschedule mutator.
type AppointmentRescheduleFunc func(context.Context, *repo.AppointmentRescheduleMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f AppointmentRescheduleFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.AppointmentRescheduleMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.AppointmentRescheduleMutation", m)
}

// The AppointmentTypeFunc type is an adapter to allow the use of ordinary
// function as AppointmentType mutator.
type AppointmentTypeFunc func(context.Context, *repo.AppointmentTypeMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f AppointmentTypeFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.AppointmentTypeMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.AppointmentTypeMutation", m)
}

// The BusinessHoursFunc type is an adapter to allow the use of ordinary
// function as BusinessHours mutator.
type BusinessHoursFunc func(context.Context, *repo.BusinessHoursMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f BusinessHoursFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.BusinessHoursMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.BusinessHoursMutation", m)
}

// The ClinicSettingsFunc type is an adapter to allow the use of ordinary
// function as ClinicSettings mutator.
type ClinicSettingsFunc func(context.Context, *repo.ClinicSettingsMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f ClinicSettingsFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.ClinicSettingsMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.ClinicSettingsMutation", m)
}

// The ContactMessageFunc type is an adapter to allow the use of ordinary
// function as ContactMessage mutator.
type ContactMessageFunc func(context.Context, *repo.ContactMessageMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f ContactMessageFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.ContactMessageMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.ContactMessageMutation", m)
}

// The ContactResponseFunc type is an adapter to allow the use of ordinary
// function as ContactResponse mutator.
type ContactResponseFunc func(context.Context, *repo.ContactResponseMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f ContactResponseFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.ContactResponseMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.ContactResponseMutation", m)
}

// The DoctorFunc type is an adapter to allow the use of ordinary
// function as Doctor mutator.
type DoctorFunc func(context.Context, *repo.DoctorMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f DoctorFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.DoctorMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.DoctorMutation", m)
}

// The DoctorAvailabilityFunc type is an adapter to allow the use of ordinary
// function as DoctorAvailability mutator.
type DoctorAvailabilityFunc func(context.Context, *repo.DoctorAvailabilityMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f DoctorAvailabilityFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.DoctorAvailabilityMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.DoctorAvailabilityMutation", m)
}

// The DoctorLeaveFunc type is an adapter to allow the use of ordinary
// function as DoctorLeave mutator.
type DoctorLeaveFunc func(context.Context, *repo.DoctorLeaveMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f DoctorLeaveFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.DoctorLeaveMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.DoctorLeaveMutation", m)
}

// The EmailTemplateFunc type is an adapter to allow the use of ordinary
// function as EmailTemplate mutator.
type EmailTemplateFunc func(context.Context, *repo.EmailTemplateMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f EmailTemplateFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.EmailTemplateMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.EmailTemplateMutation", m)
}

// The HolidayFunc type is an adapter to allow the use of ordinary
// function as Holiday mutator.
type HolidayFunc func(context.Context, *repo.HolidayMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f HolidayFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.HolidayMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.HolidayMutation", m)
}

// The MedicalHistoryFunc type is an adapter to allow the use of ordinary
// function as MedicalHistory mutator.
type MedicalHistoryFunc func(context.Context, *repo.MedicalHistoryMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f MedicalHistoryFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.MedicalHistoryMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.MedicalHistoryMutation", m)
}

// The NewsletterFunc type is an adapter to allow the use of ordinary
// function as Newsletter mutator.
type NewsletterFunc func(context.Context, *repo.NewsletterMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f NewsletterFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.NewsletterMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.NewsletterMutation", m)
}

// The NewsletterCampaignFunc type is an adapter to allow the use of ordinary
// function as NewsletterCampaign mutator.
type NewsletterCampaignFunc func(context.Context, *repo.NewsletterCampaignMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f NewsletterCampaignFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.NewsletterCampaignMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.NewsletterCampaignMutation", m)
}

// The NewsletterSubscriberFunc type is an adapter to allow the use of ordinary
// function as NewsletterSubscriber mutator.
type NewsletterSubscriberFunc func(context.Context, *repo.NewsletterSubscriberMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f NewsletterSubscriberFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.NewsletterSubscriberMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.NewsletterSubscriberMutation", m)
}

// The PatientFunc type is an adapter to allow the use of ordinary
// function as Patient mutator.
type PatientFunc func(context.Context, *repo.PatientMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f PatientFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.PatientMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.PatientMutation", m)
}

// The PatientDocumentFunc type is an adapter to allow the use of ordinary
// function as PatientDocument mutator.
type PatientDocumentFunc func(context.Context, *repo.PatientDocumentMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f PatientDocumentFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.PatientDocumentMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.PatientDocumentMutation", m)
}

// The SMSTemplateFunc type is an adapter to allow the use of ordinary
// function as SMSTemplate mutator.
type SMSTemplateFunc func(context.Context, *repo.SMSTemplateMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f SMSTemplateFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.SMSTemplateMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.SMSTemplateMutation", m)
}

// The ServiceFunc type is an adapter to allow the use of ordinary
// function as Service mutator.
type ServiceFunc func(context.Context, *repo.ServiceMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f ServiceFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.ServiceMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.ServiceMutation", m)
}

// The ServiceCategoryFunc type is an adapter to allow the use of ordinary
// function as ServiceCategory mutator.
type ServiceCategoryFunc func(context.Context, *repo.ServiceCategoryMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f ServiceCategoryFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.ServiceCategoryMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.ServiceCategoryMutation", m)
}

// The ServiceDoctorSpecialtyFunc type is an adapter to allow the use of ordinary
// function as ServiceDoctorSpecialty mutator.
type ServiceDoctorSpecialtyFunc func(context.Context, *repo.ServiceDoctorSpecialtyMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f ServiceDoctorSpecialtyFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.ServiceDoctorSpecialtyMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.ServiceDoctorSpecialtyMutation", m)
}

// The ServicePackageFunc type is an adapter to allow the use of ordinary
// function as ServicePackage mutator.
type ServicePackageFunc func(context.Context, *repo.ServicePackageMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f ServicePackageFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.ServicePackageMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.ServicePackageMutation", m)
}

// The SpecializationFunc type is an adapter to allow the use of ordinary
// function as Specialization mutator.
type SpecializationFunc func(context.Context, *repo.SpecializationMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f SpecializationFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.SpecializationMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.SpecializationMutation", m)
}

// The TestimonialFunc type is an adapter to allow the use of ordinary
// function as Testimonial mutator.
type TestimonialFunc func(context.Context, *repo.TestimonialMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f TestimonialFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.TestimonialMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.TestimonialMutation", m)
}

// The UserFunc type is an adapter to allow the use of ordinary
// function as User mutator.
type UserFunc func(context.Context, *repo.UserMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f UserFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.UserMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.UserMutation", m)
}

// The UserProfileFunc type is an adapter to allow the use of ordinary
// function as UserProfile mutator.
type UserProfileFunc func(context.Context, *repo.UserProfileMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f UserProfileFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.UserProfileMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.UserProfileMutation", m)
}

// The UserSessionFunc type is an adapter to allow the use of ordinary
// function as UserSession mutator.
type UserSessionFunc func(context.Context, *repo.UserSessionMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f UserSessionFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.UserSessionMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.UserSessionMutation", m)
}

// The WaitingListFunc type is an adapter to allow the use of ordinary
// function as WaitingList mutator.
type WaitingListFunc func(context.Context, *repo.WaitingListMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f WaitingListFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.WaitingListMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.WaitingListMutation", m)
}

// Condition is a hook condition function.
type Condition func(context.Context, repo.Mutation) bool

// And groups conditions with the AND operator.
func And(first, second Condition, rest ...Condition) Condition {
	return func(ctx context.Context, m repo.Mutation) bool {
		if !first(ctx, m) || !second(ctx, m) {
			return false
		}
		for _, cond := range rest {
			if !cond(ctx, m) {
				return false
			}
		}
		return true
	}
}

// Or groups conditions with the OR operator.
func Or(first, second Condition, rest ...Condition) Condition {
	return func(ctx context.Context, m repo.Mutation) bool {
		if first(ctx, m) || second(ctx, m) {
			return true
		}
		for _, cond := range rest {
			if cond(ctx, m) {
				return true
			}
		}
		return false
	}
}

// Not negates a given condition.
func Not(cond Condition) Condition {
	return func(ctx context.Context, m repo.Mutation) bool {
		return !cond(ctx, m)
	}
}

// HasOp is a condition testing mutation operation.
func HasOp(op repo.Op) Condition {
	return func(_ context.Context, m repo.Mutation) bool {
		return m.Op().Is(op)
	}
}

// HasAddedFields is a condition validating `.AddedField` on fields.
func HasAddedFields(field string, fields ...string) Condition {
	return func(_ context.Context, m repo.Mutation) bool {
		if _, exists := m.AddedField(field); !exists {
			return false
		}
		for _, field := range fields {
			if _, exists := m.AddedField(field); !exists {
				return false
			}
		}
		return true
	}
}

// HasClearedFields is a condition validating `.FieldCleared` on fields.
func HasClearedFields(field string, fields ...string) Condition {
	return func(_ context.Context, m repo.Mutation) bool {
		if exists := m.FieldCleared(field); !exists {
			return false
		}
		for _, field := range fields {
			if exists := m.FieldCleared(field); !exists {
				return false
			}
		}
		return true
	}
}

// HasFields is a condition validating `.Field` on fields.
func HasFields(field string, fields ...string) Condition {
	return func(_ context.Context, m repo.Mutation) bool {
		if _, exists := m.Field(field); !exists {
			return false
		}
		for _, field := range fields {
			if _, exists := m.Field(field); !exists {
				return false
			}
		}
		return true
	}
}

// If executes the given hook under condition.
//
//	hook.If(ComputeAverage, And(HasFields(...), HasAddedFields(...)))
func If(hk repo.Hook, cond Condition) repo.Hook {
	return func(next repo.Mutator) repo.Mutator {
		return repo.MutateFunc(func(ctx context.Context, m repo.Mutation) (repo.Value, error) {
			if cond(ctx, m) {
				return hk(next).Mutate(ctx, m)
			}
			return next.Mutate(ctx, m)
		})
	}
}

// On executes the given hook only for the given operation.
//
//	hook.On(Log, repo.Delete|repo.Create)
func On(hk repo.Hook, op repo.Op) repo.Hook {
	return If(hk, HasOp(op))
}

// Unless skips the given hook only for the given operation.
//
//	hook.Unless(Log, repo.Update|repo.UpdateOne)
func Unless(hk repo.Hook, op repo.Op) repo.Hook {
	return If(hk, Not(HasOp(op)))
}

// FixedError is a hook returning a fixed error.
func FixedError(err error) repo.Hook {
	return func(repo.Mutator) repo.Mutator {
		return repo.MutateFunc(func(context.Context, repo.Mutation) (repo.Value, error) {
			return nil, err
		})
	}
}

// Reject returns a hook that rejects all operations that match op.
//
//	func (T) Hooks() []repo.Hook {
//		return []repo.Hook{
//			Reject(repo.Delete|repo.Update),
//		}
//	}
func Reject(op repo.Op) repo.Hook {
	hk := FixedError(fmt.Errorf("%s operation is not allowed", op))
	return On(hk, op)
}

// Chain acts as a list of hooks and is effectively immutable.
// Once created, it will always hold the same set of hooks in the same order.
type Chain struct {
	hooks []repo.Hook
}

// NewChain creates a new chain of hooks.
func NewChain(hooks ...repo.Hook) Chain {
	return Chain{append([]repo.Hook(nil), hooks...)}
}

// Hook chains the list of hooks and returns the final hook.
func (c Chain) Hook() repo.Hook {
	return func(mutator repo.Mutator) repo.Mutator {
		for i := len(c.hooks) - 1; i >= 0; i-- {
			mutator = c.hooks[i](mutator)
		}
		return mutator
	}
}

// Append extends a chain, adding the specified hook
// as the last ones in the mutation flow.
func (c Chain) Append(hooks ...repo.Hook) Chain {
	newHooks := make([]repo.Hook, 0, len(c.hooks)+len(hooks))
	newHooks = append(newHooks, c.hooks...)
	newHooks = append(newHooks, hooks...)
	return Chain{newHooks}
}

// Extend extends a chain, adding the specified chain
// as the last ones in the mutation flow.
func (c Chain) Extend(chain Chain) Chain {
	return c.Append(chain.hooks...)
}
