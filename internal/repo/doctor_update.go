// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctor"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctoravailability"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctorleave"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/specialization"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/user"
)

// DoctorUpdate is the builder for updating Doctor entities.
type DoctorUpdate struct {
	config
	hooks    []Hook
	mutation *DoctorMutation
}

// Where appends a list predicates to the DoctorUpdate builder.
func (_u *DoctorUpdate) Where(ps ...predicate.Doctor) *DoctorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorUpdate) SetUpdatedAt(v time.Time) *DoctorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DoctorUpdate) SetUserID(v uuid.UUID) *DoctorUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableUserID(v *uuid.UUID) *DoctorUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DoctorUpdate) SetTitle(v string) *DoctorUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableTitle(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetLicenseNumber sets the "license_number" field.
func (_u *DoctorUpdate) SetLicenseNumber(v string) *DoctorUpdate {
	_u.mutation.SetLicenseNumber(v)
	return _u
}

// SetNillableLicenseNumber sets the "license_number" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableLicenseNumber(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetLicenseNumber(*v)
	}
	return _u
}

// SetYearsOfExperience sets the "years_of_experience" field.
func (_u *DoctorUpdate) SetYearsOfExperience(v int) *DoctorUpdate {
	_u.mutation.ResetYearsOfExperience()
	_u.mutation.SetYearsOfExperience(v)
	return _u
}

// SetNillableYearsOfExperience sets the "years_of_experience" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableYearsOfExperience(v *int) *DoctorUpdate {
	if v != nil {
		_u.SetYearsOfExperience(*v)
	}
	return _u
}

// AddYearsOfExperience adds value to the "years_of_experience" field.
func (_u *DoctorUpdate) AddYearsOfExperience(v int) *DoctorUpdate {
	_u.mutation.AddYearsOfExperience(v)
	return _u
}

// SetBiography sets the "biography" field.
func (_u *DoctorUpdate) SetBiography(v string) *DoctorUpdate {
	_u.mutation.SetBiography(v)
	return _u
}

// SetNillableBiography sets the "biography" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableBiography(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetBiography(*v)
	}
	return _u
}

// SetEducation sets the "education" field.
func (_u *DoctorUpdate) SetEducation(v string) *DoctorUpdate {
	_u.mutation.SetEducation(v)
	return _u
}

// SetNillableEducation sets the "education" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableEducation(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetEducation(*v)
	}
	return _u
}

// SetCertifications sets the "certifications" field.
func (_u *DoctorUpdate) SetCertifications(v string) *DoctorUpdate {
	_u.mutation.SetCertifications(v)
	return _u
}

// SetNillableCertifications sets the "certifications" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableCertifications(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetCertifications(*v)
	}
	return _u
}

// ClearCertifications clears the value of the "certifications" field.
func (_u *DoctorUpdate) ClearCertifications() *DoctorUpdate {
	_u.mutation.ClearCertifications()
	return _u
}

// SetConsultationFee sets the "consultation_fee" field.
func (_u *DoctorUpdate) SetConsultationFee(v int64) *DoctorUpdate {
	_u.mutation.ResetConsultationFee()
	_u.mutation.SetConsultationFee(v)
	return _u
}

// SetNillableConsultationFee sets the "consultation_fee" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableConsultationFee(v *int64) *DoctorUpdate {
	if v != nil {
		_u.SetConsultationFee(*v)
	}
	return _u
}

// AddConsultationFee adds value to the "consultation_fee" field.
func (_u *DoctorUpdate) AddConsultationFee(v int64) *DoctorUpdate {
	_u.mutation.AddConsultationFee(v)
	return _u
}

// SetIsAvailable sets the "is_available" field.
func (_u *DoctorUpdate) SetIsAvailable(v bool) *DoctorUpdate {
	_u.mutation.SetIsAvailable(v)
	return _u
}

// SetNillableIsAvailable sets the "is_available" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableIsAvailable(v *bool) *DoctorUpdate {
	if v != nil {
		_u.SetIsAvailable(*v)
	}
	return _u
}

// SetProfileImageKey sets the "profile_image_key" field.
func (_u *DoctorUpdate) SetProfileImageKey(v string) *DoctorUpdate {
	_u.mutation.SetProfileImageKey(v)
	return _u
}

// SetNillableProfileImageKey sets the "profile_image_key" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableProfileImageKey(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetProfileImageKey(*v)
	}
	return _u
}

// ClearProfileImageKey clears the value of the "profile_image_key" field.
func (_u *DoctorUpdate) ClearProfileImageKey() *DoctorUpdate {
	_u.mutation.ClearProfileImageKey()
	return _u
}

// SetTwitterURL sets the "twitter_url" field.
func (_u *DoctorUpdate) SetTwitterURL(v string) *DoctorUpdate {
	_u.mutation.SetTwitterURL(v)
	return _u
}

// SetNillableTwitterURL sets the "twitter_url" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableTwitterURL(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetTwitterURL(*v)
	}
	return _u
}

// ClearTwitterURL clears the value of the "twitter_url" field.
func (_u *DoctorUpdate) ClearTwitterURL() *DoctorUpdate {
	_u.mutation.ClearTwitterURL()
	return _u
}

// SetLinkedinURL sets the "linkedin_url" field.
func (_u *DoctorUpdate) SetLinkedinURL(v string) *DoctorUpdate {
	_u.mutation.SetLinkedinURL(v)
	return _u
}

// SetNillableLinkedinURL sets the "linkedin_url" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableLinkedinURL(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetLinkedinURL(*v)
	}
	return _u
}

// ClearLinkedinURL clears the value of the "linkedin_url" field.
func (_u *DoctorUpdate) ClearLinkedinURL() *DoctorUpdate {
	_u.mutation.ClearLinkedinURL()
	return _u
}

// SetFacebookURL sets the "facebook_url" field.
func (_u *DoctorUpdate) SetFacebookURL(v string) *DoctorUpdate {
	_u.mutation.SetFacebookURL(v)
	return _u
}

// SetNillableFacebookURL sets the "facebook_url" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableFacebookURL(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetFacebookURL(*v)
	}
	return _u
}

// ClearFacebookURL clears the value of the "facebook_url" field.
func (_u *DoctorUpdate) ClearFacebookURL() *DoctorUpdate {
	_u.mutation.ClearFacebookURL()
	return _u
}

// SetHospitalAffiliations sets the "hospital_affiliations" field.
func (_u *DoctorUpdate) SetHospitalAffiliations(v string) *DoctorUpdate {
	_u.mutation.SetHospitalAffiliations(v)
	return _u
}

// SetNillableHospitalAffiliations sets the "hospital_affiliations" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableHospitalAffiliations(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetHospitalAffiliations(*v)
	}
	return _u
}

// ClearHospitalAffiliations clears the value of the "hospital_affiliations" field.
func (_u *DoctorUpdate) ClearHospitalAffiliations() *DoctorUpdate {
	_u.mutation.ClearHospitalAffiliations()
	return _u
}

// SetResearchInterests sets the "research_interests" field.
func (_u *DoctorUpdate) SetResearchInterests(v string) *DoctorUpdate {
	_u.mutation.SetResearchInterests(v)
	return _u
}

// SetNillableResearchInterests sets the "research_interests" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableResearchInterests(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetResearchInterests(*v)
	}
	return _u
}

// ClearResearchInterests clears the value of the "research_interests" field.
func (_u *DoctorUpdate) ClearResearchInterests() *DoctorUpdate {
	_u.mutation.ClearResearchInterests()
	return _u
}

// SetPublications sets the "publications" field.
func (_u *DoctorUpdate) SetPublications(v string) *DoctorUpdate {
	_u.mutation.SetPublications(v)
	return _u
}

// SetNillablePublications sets the "publications" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillablePublications(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetPublications(*v)
	}
	return _u
}

// ClearPublications clears the value of the "publications" field.
func (_u *DoctorUpdate) ClearPublications() *DoctorUpdate {
	_u.mutation.ClearPublications()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *DoctorUpdate) SetUser(v *User) *DoctorUpdate {
	return _u.SetUserID(v.ID)
}

// AddSpecializationIDs adds the "specializations" edge to the Specialization entity by IDs.
func (_u *DoctorUpdate) AddSpecializationIDs(ids ...uuid.UUID) *DoctorUpdate {
	_u.mutation.AddSpecializationIDs(ids...)
	return _u
}

// AddSpecializations adds the "specializations" edges to the Specialization entity.
func (_u *DoctorUpdate) AddSpecializations(v ...*Specialization) *DoctorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSpecializationIDs(ids...)
}

// AddAvailabilityIDs adds the "availability" edge to the DoctorAvailability entity by IDs.
func (_u *DoctorUpdate) AddAvailabilityIDs(ids ...uuid.UUID) *DoctorUpdate {
	_u.mutation.AddAvailabilityIDs(ids...)
	return _u
}

// AddAvailability adds the "availability" edges to the DoctorAvailability entity.
func (_u *DoctorUpdate) AddAvailability(v ...*DoctorAvailability) *DoctorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAvailabilityIDs(ids...)
}

// AddLeafeIDs adds the "leaves" edge to the DoctorLeave entity by IDs.
func (_u *DoctorUpdate) AddLeafeIDs(ids ...uuid.UUID) *DoctorUpdate {
	_u.mutation.AddLeafeIDs(ids...)
	return _u
}

// AddLeaves adds the "leaves" edges to the DoctorLeave entity.
func (_u *DoctorUpdate) AddLeaves(v ...*DoctorLeave) *DoctorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLeafeIDs(ids...)
}

// Mutation returns the DoctorMutation object of the builder.
func (_u *DoctorUpdate) Mutation() *DoctorMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *DoctorUpdate) ClearUser() *DoctorUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearSpecializations clears all "specializations" edges to the Specialization entity.
func (_u *DoctorUpdate) ClearSpecializations() *DoctorUpdate {
	_u.mutation.ClearSpecializations()
	return _u
}

// RemoveSpecializationIDs removes the "specializations" edge to Specialization entities by IDs.
func (_u *DoctorUpdate) RemoveSpecializationIDs(ids ...uuid.UUID) *DoctorUpdate {
	_u.mutation.RemoveSpecializationIDs(ids...)
	return _u
}

// RemoveSpecializations removes "specializations" edges to Specialization entities.
func (_u *DoctorUpdate) RemoveSpecializations(v ...*Specialization) *DoctorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSpecializationIDs(ids...)
}

// ClearAvailability clears all "availability" edges to the DoctorAvailability entity.
func (_u *DoctorUpdate) ClearAvailability() *DoctorUpdate {
	_u.mutation.ClearAvailability()
	return _u
}

// RemoveAvailabilityIDs removes the "availability" edge to DoctorAvailability entities by IDs.
func (_u *DoctorUpdate) RemoveAvailabilityIDs(ids ...uuid.UUID) *DoctorUpdate {
	_u.mutation.RemoveAvailabilityIDs(ids...)
	return _u
}

// RemoveAvailability removes "availability" edges to DoctorAvailability entities.
func (_u *DoctorUpdate) RemoveAvailability(v ...*DoctorAvailability) *DoctorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAvailabilityIDs(ids...)
}

// ClearLeaves clears all "leaves" edges to the DoctorLeave entity.
func (_u *DoctorUpdate) ClearLeaves() *DoctorUpdate {
	_u.mutation.ClearLeaves()
	return _u
}

// RemoveLeafeIDs removes the "leaves" edge to DoctorLeave entities by IDs.
func (_u *DoctorUpdate) RemoveLeafeIDs(ids ...uuid.UUID) *DoctorUpdate {
	_u.mutation.RemoveLeafeIDs(ids...)
	return _u
}

// RemoveLeaves removes "leaves" edges to DoctorLeave entities.
func (_u *DoctorUpdate) RemoveLeaves(v ...*DoctorLeave) *DoctorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLeafeIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DoctorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DoctorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := doctor.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Doctor.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LicenseNumber(); ok {
		if err := doctor.LicenseNumberValidator(v); err != nil {
			return &ValidationError{Name: "license_number", err: fmt.Errorf(`repo: validator failed for field "Doctor.license_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.YearsOfExperience(); ok {
		if err := doctor.YearsOfExperienceValidator(v); err != nil {
			return &ValidationError{Name: "years_of_experience", err: fmt.Errorf(`repo: validator failed for field "Doctor.years_of_experience": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConsultationFee(); ok {
		if err := doctor.ConsultationFeeValidator(v); err != nil {
			return &ValidationError{Name: "consultation_fee", err: fmt.Errorf(`repo: validator failed for field "Doctor.consultation_fee": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProfileImageKey(); ok {
		if err := doctor.ProfileImageKeyValidator(v); err != nil {
			return &ValidationError{Name: "profile_image_key", err: fmt.Errorf(`repo: validator failed for field "Doctor.profile_image_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TwitterURL(); ok {
		if err := doctor.TwitterURLValidator(v); err != nil {
			return &ValidationError{Name: "twitter_url", err: fmt.Errorf(`repo: validator failed for field "Doctor.twitter_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LinkedinURL(); ok {
		if err := doctor.LinkedinURLValidator(v); err != nil {
			return &ValidationError{Name: "linkedin_url", err: fmt.Errorf(`repo: validator failed for field "Doctor.linkedin_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FacebookURL(); ok {
		if err := doctor.FacebookURLValidator(v); err != nil {
			return &ValidationError{Name: "facebook_url", err: fmt.Errorf(`repo: validator failed for field "Doctor.facebook_url": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Doctor.user"`)
	}
	return nil
}

func (_u *DoctorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctor.Table, doctor.Columns, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(doctor.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.LicenseNumber(); ok {
		_spec.SetField(doctor.FieldLicenseNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.YearsOfExperience(); ok {
		_spec.SetField(doctor.FieldYearsOfExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearsOfExperience(); ok {
		_spec.AddField(doctor.FieldYearsOfExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Biography(); ok {
		_spec.SetField(doctor.FieldBiography, field.TypeString, value)
	}
	if value, ok := _u.mutation.Education(); ok {
		_spec.SetField(doctor.FieldEducation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Certifications(); ok {
		_spec.SetField(doctor.FieldCertifications, field.TypeString, value)
	}
	if _u.mutation.CertificationsCleared() {
		_spec.ClearField(doctor.FieldCertifications, field.TypeString)
	}
	if value, ok := _u.mutation.ConsultationFee(); ok {
		_spec.SetField(doctor.FieldConsultationFee, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedConsultationFee(); ok {
		_spec.AddField(doctor.FieldConsultationFee, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.IsAvailable(); ok {
		_spec.SetField(doctor.FieldIsAvailable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ProfileImageKey(); ok {
		_spec.SetField(doctor.FieldProfileImageKey, field.TypeString, value)
	}
	if _u.mutation.ProfileImageKeyCleared() {
		_spec.ClearField(doctor.FieldProfileImageKey, field.TypeString)
	}
	if value, ok := _u.mutation.TwitterURL(); ok {
		_spec.SetField(doctor.FieldTwitterURL, field.TypeString, value)
	}
	if _u.mutation.TwitterURLCleared() {
		_spec.ClearField(doctor.FieldTwitterURL, field.TypeString)
	}
	if value, ok := _u.mutation.LinkedinURL(); ok {
		_spec.SetField(doctor.FieldLinkedinURL, field.TypeString, value)
	}
	if _u.mutation.LinkedinURLCleared() {
		_spec.ClearField(doctor.FieldLinkedinURL, field.TypeString)
	}
	if value, ok := _u.mutation.FacebookURL(); ok {
		_spec.SetField(doctor.FieldFacebookURL, field.TypeString, value)
	}
	if _u.mutation.FacebookURLCleared() {
		_spec.ClearField(doctor.FieldFacebookURL, field.TypeString)
	}
	if value, ok := _u.mutation.HospitalAffiliations(); ok {
		_spec.SetField(doctor.FieldHospitalAffiliations, field.TypeString, value)
	}
	if _u.mutation.HospitalAffiliationsCleared() {
		_spec.ClearField(doctor.FieldHospitalAffiliations, field.TypeString)
	}
	if value, ok := _u.mutation.ResearchInterests(); ok {
		_spec.SetField(doctor.FieldResearchInterests, field.TypeString, value)
	}
	if _u.mutation.ResearchInterestsCleared() {
		_spec.ClearField(doctor.FieldResearchInterests, field.TypeString)
	}
	if value, ok := _u.mutation.Publications(); ok {
		_spec.SetField(doctor.FieldPublications, field.TypeString, value)
	}
	if _u.mutation.PublicationsCleared() {
		_spec.ClearField(doctor.FieldPublications, field.TypeString)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   doctor.UserTable,
			Columns: []string{doctor.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   doctor.UserTable,
			Columns: []string{doctor.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SpecializationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   doctor.SpecializationsTable,
			Columns: doctor.SpecializationsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(specialization.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSpecializationsIDs(); len(nodes) > 0 && !_u.mutation.SpecializationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   doctor.SpecializationsTable,
			Columns: doctor.SpecializationsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(specialization.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SpecializationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   doctor.SpecializationsTable,
			Columns: doctor.SpecializationsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(specialization.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AvailabilityCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.AvailabilityTable,
			Columns: []string{doctor.AvailabilityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctoravailability.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAvailabilityIDs(); len(nodes) > 0 && !_u.mutation.AvailabilityCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.AvailabilityTable,
			Columns: []string{doctor.AvailabilityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctoravailability.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AvailabilityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.AvailabilityTable,
			Columns: []string{doctor.AvailabilityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctoravailability.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LeavesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.LeavesTable,
			Columns: []string{doctor.LeavesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctorleave.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLeavesIDs(); len(nodes) > 0 && !_u.mutation.LeavesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.LeavesTable,
			Columns: []string{doctor.LeavesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctorleave.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeavesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.LeavesTable,
			Columns: []string{doctor.LeavesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctorleave.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DoctorUpdateOne is the builder for updating a single Doctor entity.
type DoctorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DoctorMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorUpdateOne) SetUpdatedAt(v time.Time) *DoctorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DoctorUpdateOne) SetUserID(v uuid.UUID) *DoctorUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableUserID(v *uuid.UUID) *DoctorUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DoctorUpdateOne) SetTitle(v string) *DoctorUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableTitle(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetLicenseNumber sets the "license_number" field.
func (_u *DoctorUpdateOne) SetLicenseNumber(v string) *DoctorUpdateOne {
	_u.mutation.SetLicenseNumber(v)
	return _u
}

// SetNillableLicenseNumber sets the "license_number" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableLicenseNumber(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetLicenseNumber(*v)
	}
	return _u
}

// SetYearsOfExperience sets the "years_of_experience" field.
func (_u *DoctorUpdateOne) SetYearsOfExperience(v int) *DoctorUpdateOne {
	_u.mutation.ResetYearsOfExperience()
	_u.mutation.SetYearsOfExperience(v)
	return _u
}

// SetNillableYearsOfExperience sets the "years_of_experience" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableYearsOfExperience(v *int) *DoctorUpdateOne {
	if v != nil {
		_u.SetYearsOfExperience(*v)
	}
	return _u
}

// AddYearsOfExperience adds value to the "years_of_experience" field.
func (_u *DoctorUpdateOne) AddYearsOfExperience(v int) *DoctorUpdateOne {
	_u.mutation.AddYearsOfExperience(v)
	return _u
}

// SetBiography sets the "biography" field.
func (_u *DoctorUpdateOne) SetBiography(v string) *DoctorUpdateOne {
	_u.mutation.SetBiography(v)
	return _u
}

// SetNillableBiography sets the "biography" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableBiography(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetBiography(*v)
	}
	return _u
}

// SetEducation sets the "education" field.
func (_u *DoctorUpdateOne) SetEducation(v string) *DoctorUpdateOne {
	_u.mutation.SetEducation(v)
	return _u
}

// SetNillableEducation sets the "education" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableEducation(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetEducation(*v)
	}
	return _u
}

// SetCertifications sets the "certifications" field.
func (_u *DoctorUpdateOne) SetCertifications(v string) *DoctorUpdateOne {
	_u.mutation.SetCertifications(v)
	return _u
}

// SetNillableCertifications sets the "certifications" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableCertifications(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetCertifications(*v)
	}
	return _u
}

// ClearCertifications clears the value of the "certifications" field.
func (_u *DoctorUpdateOne) ClearCertifications() *DoctorUpdateOne {
	_u.mutation.ClearCertifications()
	return _u
}

// SetConsultationFee sets the "consultation_fee" field.
func (_u *DoctorUpdateOne) SetConsultationFee(v int64) *DoctorUpdateOne {
	_u.mutation.ResetConsultationFee()
	_u.mutation.SetConsultationFee(v)
	return _u
}

// SetNillableConsultationFee sets the "consultation_fee" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableConsultationFee(v *int64) *DoctorUpdateOne {
	if v != nil {
		_u.SetConsultationFee(*v)
	}
	return _u
}

// AddConsultationFee adds value to the "consultation_fee" field.
func (_u *DoctorUpdateOne) AddConsultationFee(v int64) *DoctorUpdateOne {
	_u.mutation.AddConsultationFee(v)
	return _u
}

// SetIsAvailable sets the "is_available" field.
func (_u *DoctorUpdateOne) SetIsAvailable(v bool) *DoctorUpdateOne {
	_u.mutation.SetIsAvailable(v)
	return _u
}

// SetNillableIsAvailable sets the "is_available" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableIsAvailable(v *bool) *DoctorUpdateOne {
	if v != nil {
		_u.SetIsAvailable(*v)
	}
	return _u
}

// SetProfileImageKey sets the "profile_image_key" field.
func (_u *DoctorUpdateOne) SetProfileImageKey(v string) *DoctorUpdateOne {
	_u.mutation.SetProfileImageKey(v)
	return _u
}

// SetNillableProfileImageKey sets the "profile_image_key" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableProfileImageKey(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetProfileImageKey(*v)
	}
	return _u
}

// ClearProfileImageKey clears the value of the "profile_image_key" field.
func (_u *DoctorUpdateOne) ClearProfileImageKey() *DoctorUpdateOne {
	_u.mutation.ClearProfileImageKey()
	return _u
}

// SetTwitterURL sets the "twitter_url" field.
func (_u *DoctorUpdateOne) SetTwitterURL(v string) *DoctorUpdateOne {
	_u.mutation.SetTwitterURL(v)
	return _u
}

// SetNillableTwitterURL sets the "twitter_url" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableTwitterURL(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetTwitterURL(*v)
	}
	return _u
}

// ClearTwitterURL clears the value of the "twitter_url" field.
func (_u *DoctorUpdateOne) ClearTwitterURL() *DoctorUpdateOne {
	_u.mutation.ClearTwitterURL()
	return _u
}

// SetLinkedinURL sets the "linkedin_url" field.
func (_u *DoctorUpdateOne) SetLinkedinURL(v string) *DoctorUpdateOne {
	_u.mutation.SetLinkedinURL(v)
	return _u
}

// SetNillableLinkedinURL sets the "linkedin_url" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableLinkedinURL(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetLinkedinURL(*v)
	}
	return _u
}

// ClearLinkedinURL clears the value of the "linkedin_url" field.
func (_u *DoctorUpdateOne) ClearLinkedinURL() *DoctorUpdateOne {
	_u.mutation.ClearLinkedinURL()
	return _u
}

// SetFacebookURL sets the "facebook_url" field.
func (_u *DoctorUpdateOne) SetFacebookURL(v string) *DoctorUpdateOne {
	_u.mutation.SetFacebookURL(v)
	return _u
}

// SetNillableFacebookURL sets the "facebook_url" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableFacebookURL(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetFacebookURL(*v)
	}
	return _u
}

// ClearFacebookURL clears the value of the "facebook_url" field.
func (_u *DoctorUpdateOne) ClearFacebookURL() *DoctorUpdateOne {
	_u.mutation.ClearFacebookURL()
	return _u
}

// SetHospitalAffiliations sets the "hospital_affiliations" field.
func (_u *DoctorUpdateOne) SetHospitalAffiliations(v string) *DoctorUpdateOne {
	_u.mutation.SetHospitalAffiliations(v)
	return _u
}

// SetNillableHospitalAffiliations sets the "hospital_affiliations" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableHospitalAffiliations(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetHospitalAffiliations(*v)
	}
	return _u
}

// ClearHospitalAffiliations clears the value of the "hospital_affiliations" field.
func (_u *DoctorUpdateOne) ClearHospitalAffiliations() *DoctorUpdateOne {
	_u.mutation.ClearHospitalAffiliations()
	return _u
}

// SetResearchInterests sets the "research_interests" field.
func (_u *DoctorUpdateOne) SetResearchInterests(v string) *DoctorUpdateOne {
	_u.mutation.SetResearchInterests(v)
	return _u
}

// SetNillableResearchInterests sets the "research_interests" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableResearchInterests(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetResearchInterests(*v)
	}
	return _u
}

// ClearResearchInterests clears the value of the "research_interests" field.
func (_u *DoctorUpdateOne) ClearResearchInterests() *DoctorUpdateOne {
	_u.mutation.ClearResearchInterests()
	return _u
}

// SetPublications sets the "publications" field.
func (_u *DoctorUpdateOne) SetPublications(v string) *DoctorUpdateOne {
	_u.mutation.SetPublications(v)
	return _u
}

// SetNillablePublications sets the "publications" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillablePublications(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetPublications(*v)
	}
	return _u
}

// ClearPublications clears the value of the "publications" field.
func (_u *DoctorUpdateOne) ClearPublications() *DoctorUpdateOne {
	_u.mutation.ClearPublications()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *DoctorUpdateOne) SetUser(v *User) *DoctorUpdateOne {
	return _u.SetUserID(v.ID)
}

// AddSpecializationIDs adds the "specializations" edge to the Specialization entity by IDs.
func (_u *DoctorUpdateOne) AddSpecializationIDs(ids ...uuid.UUID) *DoctorUpdateOne {
	_u.mutation.AddSpecializationIDs(ids...)
	return _u
}

// AddSpecializations adds the "specializations" edges to the Specialization entity.
func (_u *DoctorUpdateOne) AddSpecializations(v ...*Specialization) *DoctorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSpecializationIDs(ids...)
}

// AddAvailabilityIDs adds the "availability" edge to the DoctorAvailability entity by IDs.
func (_u *DoctorUpdateOne) AddAvailabilityIDs(ids ...uuid.UUID) *DoctorUpdateOne {
	_u.mutation.AddAvailabilityIDs(ids...)
	return _u
}

// AddAvailability adds the "availability" edges to the DoctorAvailability entity.
func (_u *DoctorUpdateOne) AddAvailability(v ...*DoctorAvailability) *DoctorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAvailabilityIDs(ids...)
}

// AddLeafeIDs adds the "leaves" edge to the DoctorLeave entity by IDs.
func (_u *DoctorUpdateOne) AddLeafeIDs(ids ...uuid.UUID) *DoctorUpdateOne {
	_u.mutation.AddLeafeIDs(ids...)
	return _u
}

// AddLeaves adds the "leaves" edges to the DoctorLeave entity.
func (_u *DoctorUpdateOne) AddLeaves(v ...*DoctorLeave) *DoctorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLeafeIDs(ids...)
}

// Mutation returns the DoctorMutation object of the builder.
func (_u *DoctorUpdateOne) Mutation() *DoctorMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *DoctorUpdateOne) ClearUser() *DoctorUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearSpecializations clears all "specializations" edges to the Specialization entity.
func (_u *DoctorUpdateOne) ClearSpecializations() *DoctorUpdateOne {
	_u.mutation.ClearSpecializations()
	return _u
}

// RemoveSpecializationIDs removes the "specializations" edge to Specialization entities by IDs.
func (_u *DoctorUpdateOne) RemoveSpecializationIDs(ids ...uuid.UUID) *DoctorUpdateOne {
	_u.mutation.RemoveSpecializationIDs(ids...)
	return _u
}

// RemoveSpecializations removes "specializations" edges to Specialization entities.
func (_u *DoctorUpdateOne) RemoveSpecializations(v ...*Specialization) *DoctorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSpecializationIDs(ids...)
}

// ClearAvailability clears all "availability" edges to the DoctorAvailability entity.
func (_u *DoctorUpdateOne) ClearAvailability() *DoctorUpdateOne {
	_u.mutation.ClearAvailability()
	return _u
}

// RemoveAvailabilityIDs removes the "availability" edge to DoctorAvailability entities by IDs.
func (_u *DoctorUpdateOne) RemoveAvailabilityIDs(ids ...uuid.UUID) *DoctorUpdateOne {
	_u.mutation.RemoveAvailabilityIDs(ids...)
	return _u
}

// RemoveAvailability removes "availability" edges to DoctorAvailability entities.
func (_u *DoctorUpdateOne) RemoveAvailability(v ...*DoctorAvailability) *DoctorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAvailabilityIDs(ids...)
}

// ClearLeaves clears all "leaves" edges to the DoctorLeave entity.
func (_u *DoctorUpdateOne) ClearLeaves() *DoctorUpdateOne {
	_u.mutation.ClearLeaves()
	return _u
}

// RemoveLeafeIDs removes the "leaves" edge to DoctorLeave entities by IDs.
func (_u *DoctorUpdateOne) RemoveLeafeIDs(ids ...uuid.UUID) *DoctorUpdateOne {
	_u.mutation.RemoveLeafeIDs(ids...)
	return _u
}

// RemoveLeaves removes "leaves" edges to DoctorLeave entities.
func (_u *DoctorUpdateOne) RemoveLeaves(v ...*DoctorLeave) *DoctorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLeafeIDs(ids...)
}

// Where appends a list predicates to the DoctorUpdate builder.
func (_u *DoctorUpdateOne) Where(ps ...predicate.Doctor) *DoctorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DoctorUpdateOne) Select(field string, fields ...string) *DoctorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Doctor entity.
func (_u *DoctorUpdateOne) Save(ctx context.Context) (*Doctor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorUpdateOne) SaveX(ctx context.Context) *Doctor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DoctorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := doctor.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Doctor.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LicenseNumber(); ok {
		if err := doctor.LicenseNumberValidator(v); err != nil {
			return &ValidationError{Name: "license_number", err: fmt.Errorf(`repo: validator failed for field "Doctor.license_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.YearsOfExperience(); ok {
		if err := doctor.YearsOfExperienceValidator(v); err != nil {
			return &ValidationError{Name: "years_of_experience", err: fmt.Errorf(`repo: validator failed for field "Doctor.years_of_experience": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConsultationFee(); ok {
		if err := doctor.ConsultationFeeValidator(v); err != nil {
			return &ValidationError{Name: "consultation_fee", err: fmt.Errorf(`repo: validator failed for field "Doctor.consultation_fee": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProfileImageKey(); ok {
		if err := doctor.ProfileImageKeyValidator(v); err != nil {
			return &ValidationError{Name: "profile_image_key", err: fmt.Errorf(`repo: validator failed for field "Doctor.profile_image_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TwitterURL(); ok {
		if err := doctor.TwitterURLValidator(v); err != nil {
			return &ValidationError{Name: "twitter_url", err: fmt.Errorf(`repo: validator failed for field "Doctor.twitter_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LinkedinURL(); ok {
		if err := doctor.LinkedinURLValidator(v); err != nil {
			return &ValidationError{Name: "linkedin_url", err: fmt.Errorf(`repo: validator failed for field "Doctor.linkedin_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FacebookURL(); ok {
		if err := doctor.FacebookURLValidator(v); err != nil {
			return &ValidationError{Name: "facebook_url", err: fmt.Errorf(`repo: validator failed for field "Doctor.facebook_url": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Doctor.user"`)
	}
	return nil
}

func (_u *DoctorUpdateOne) sqlSave(ctx context.Context) (_node *Doctor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctor.Table, doctor.Columns, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Doctor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, doctor.FieldID)
		for _, f := range fields {
			if !doctor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != doctor.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(doctor.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.LicenseNumber(); ok {
		_spec.SetField(doctor.FieldLicenseNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.YearsOfExperience(); ok {
		_spec.SetField(doctor.FieldYearsOfExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearsOfExperience(); ok {
		_spec.AddField(doctor.FieldYearsOfExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Biography(); ok {
		_spec.SetField(doctor.FieldBiography, field.TypeString, value)
	}
	if value, ok := _u.mutation.Education(); ok {
		_spec.SetField(doctor.FieldEducation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Certifications(); ok {
		_spec.SetField(doctor.FieldCertifications, field.TypeString, value)
	}
	if _u.mutation.CertificationsCleared() {
		_spec.ClearField(doctor.FieldCertifications, field.TypeString)
	}
	if value, ok := _u.mutation.ConsultationFee(); ok {
		_spec.SetField(doctor.FieldConsultationFee, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedConsultationFee(); ok {
		_spec.AddField(doctor.FieldConsultationFee, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.IsAvailable(); ok {
		_spec.SetField(doctor.FieldIsAvailable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ProfileImageKey(); ok {
		_spec.SetField(doctor.FieldProfileImageKey, field.TypeString, value)
	}
	if _u.mutation.ProfileImageKeyCleared() {
		_spec.ClearField(doctor.FieldProfileImageKey, field.TypeString)
	}
	if value, ok := _u.mutation.TwitterURL(); ok {
		_spec.SetField(doctor.FieldTwitterURL, field.TypeString, value)
	}
	if _u.mutation.TwitterURLCleared() {
		_spec.ClearField(doctor.FieldTwitterURL, field.TypeString)
	}
	if value, ok := _u.mutation.LinkedinURL(); ok {
		_spec.SetField(doctor.FieldLinkedinURL, field.TypeString, value)
	}
	if _u.mutation.LinkedinURLCleared() {
		_spec.ClearField(doctor.FieldLinkedinURL, field.TypeString)
	}
	if value, ok := _u.mutation.FacebookURL(); ok {
		_spec.SetField(doctor.FieldFacebookURL, field.TypeString, value)
	}
	if _u.mutation.FacebookURLCleared() {
		_spec.ClearField(doctor.FieldFacebookURL, field.TypeString)
	}
	if value, ok := _u.mutation.HospitalAffiliations(); ok {
		_spec.SetField(doctor.FieldHospitalAffiliations, field.TypeString, value)
	}
	if _u.mutation.HospitalAffiliationsCleared() {
		_spec.ClearField(doctor.FieldHospitalAffiliations, field.TypeString)
	}
	if value, ok := _u.mutation.ResearchInterests(); ok {
		_spec.SetField(doctor.FieldResearchInterests, field.TypeString, value)
	}
	if _u.mutation.ResearchInterestsCleared() {
		_spec.ClearField(doctor.FieldResearchInterests, field.TypeString)
	}
	if value, ok := _u.mutation.Publications(); ok {
		_spec.SetField(doctor.FieldPublications, field.TypeString, value)
	}
	if _u.mutation.PublicationsCleared() {
		_spec.ClearField(doctor.FieldPublications, field.TypeString)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   doctor.UserTable,
			Columns: []string{doctor.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   doctor.UserTable,
			Columns: []string{doctor.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SpecializationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   doctor.SpecializationsTable,
			Columns: doctor.SpecializationsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(specialization.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSpecializationsIDs(); len(nodes) > 0 && !_u.mutation.SpecializationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   doctor.SpecializationsTable,
			Columns: doctor.SpecializationsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(specialization.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SpecializationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   doctor.SpecializationsTable,
			Columns: doctor.SpecializationsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(specialization.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AvailabilityCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.AvailabilityTable,
			Columns: []string{doctor.AvailabilityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctoravailability.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAvailabilityIDs(); len(nodes) > 0 && !_u.mutation.AvailabilityCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.AvailabilityTable,
			Columns: []string{doctor.AvailabilityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctoravailability.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AvailabilityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.AvailabilityTable,
			Columns: []string{doctor.AvailabilityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctoravailability.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LeavesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.LeavesTable,
			Columns: []string{doctor.LeavesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctorleave.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLeavesIDs(); len(nodes) > 0 && !_u.mutation.LeavesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.LeavesTable,
			Columns: []string{doctor.LeavesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctorleave.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeavesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.LeavesTable,
			Columns: []string{doctor.LeavesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctorleave.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Doctor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
