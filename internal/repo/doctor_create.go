// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctor"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctoravailability"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctorleave"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/specialization"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/user"
)

// DoctorCreate is the builder for creating a Doctor entity.
type DoctorCreate struct {
	config
	mutation *DoctorMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *DoctorCreate) SetCreatedAt(v time.Time) *DoctorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableCreatedAt(v *time.Time) *DoctorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DoctorCreate) SetUpdatedAt(v time.Time) *DoctorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableUpdatedAt(v *time.Time) *DoctorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *DoctorCreate) SetUserID(v uuid.UUID) *DoctorCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *DoctorCreate) SetTitle(v string) *DoctorCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableTitle(v *string) *DoctorCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetLicenseNumber sets the "license_number" field.
func (_c *DoctorCreate) SetLicenseNumber(v string) *DoctorCreate {
	_c.mutation.SetLicenseNumber(v)
	return _c
}

// SetYearsOfExperience sets the "years_of_experience" field.
func (_c *DoctorCreate) SetYearsOfExperience(v int) *DoctorCreate {
	_c.mutation.SetYearsOfExperience(v)
	return _c
}

// SetBiography sets the "biography" field.
func (_c *DoctorCreate) SetBiography(v string) *DoctorCreate {
	_c.mutation.SetBiography(v)
	return _c
}

// SetEducation sets the "education" field.
func (_c *DoctorCreate) SetEducation(v string) *DoctorCreate {
	_c.mutation.SetEducation(v)
	return _c
}

// SetCertifications sets the "certifications" field.
func (_c *DoctorCreate) SetCertifications(v string) *DoctorCreate {
	_c.mutation.SetCertifications(v)
	return _c
}

// SetNillableCertifications sets the "certifications" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableCertifications(v *string) *DoctorCreate {
	if v != nil {
		_c.SetCertifications(*v)
	}
	return _c
}

// SetConsultationFee sets the "consultation_fee" field.
func (_c *DoctorCreate) SetConsultationFee(v int64) *DoctorCreate {
	_c.mutation.SetConsultationFee(v)
	return _c
}

// SetIsAvailable sets the "is_available" field.
func (_c *DoctorCreate) SetIsAvailable(v bool) *DoctorCreate {
	_c.mutation.SetIsAvailable(v)
	return _c
}

// SetNillableIsAvailable sets the "is_available" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableIsAvailable(v *bool) *DoctorCreate {
	if v != nil {
		_c.SetIsAvailable(*v)
	}
	return _c
}

// SetProfileImageKey sets the "profile_image_key" field.
func (_c *DoctorCreate) SetProfileImageKey(v string) *DoctorCreate {
	_c.mutation.SetProfileImageKey(v)
	return _c
}

// SetNillableProfileImageKey sets the "profile_image_key" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableProfileImageKey(v *string) *DoctorCreate {
	if v != nil {
		_c.SetProfileImageKey(*v)
	}
	return _c
}

// SetTwitterURL sets the "twitter_url" field.
func (_c *DoctorCreate) SetTwitterURL(v string) *DoctorCreate {
	_c.mutation.SetTwitterURL(v)
	return _c
}

// SetNillableTwitterURL sets the "twitter_url" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableTwitterURL(v *string) *DoctorCreate {
	if v != nil {
		_c.SetTwitterURL(*v)
	}
	return _c
}

// SetLinkedinURL sets the "linkedin_url" field.
func (_c *DoctorCreate) SetLinkedinURL(v string) *DoctorCreate {
	_c.mutation.SetLinkedinURL(v)
	return _c
}

// SetNillableLinkedinURL sets the "linkedin_url" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableLinkedinURL(v *string) *DoctorCreate {
	if v != nil {
		_c.SetLinkedinURL(*v)
	}
	return _c
}

// SetFacebookURL sets the "facebook_url" field.
func (_c *DoctorCreate) SetFacebookURL(v string) *DoctorCreate {
	_c.mutation.SetFacebookURL(v)
	return _c
}

// SetNillableFacebookURL sets the "facebook_url" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableFacebookURL(v *string) *DoctorCreate {
	if v != nil {
		_c.SetFacebookURL(*v)
	}
	return _c
}

// SetHospitalAffiliations sets the "hospital_affiliations" field.
func (_c *DoctorCreate) SetHospitalAffiliations(v string) *DoctorCreate {
	_c.mutation.SetHospitalAffiliations(v)
	return _c
}

// SetNillableHospitalAffiliations sets the "hospital_affiliations" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableHospitalAffiliations(v *string) *DoctorCreate {
	if v != nil {
		_c.SetHospitalAffiliations(*v)
	}
	return _c
}

// SetResearchInterests sets the "research_interests" field.
func (_c *DoctorCreate) SetResearchInterests(v string) *DoctorCreate {
	_c.mutation.SetResearchInterests(v)
	return _c
}

// SetNillableResearchInterests sets the "research_interests" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableResearchInterests(v *string) *DoctorCreate {
	if v != nil {
		_c.SetResearchInterests(*v)
	}
	return _c
}

// SetPublications sets the "publications" field.
func (_c *DoctorCreate) SetPublications(v string) *DoctorCreate {
	_c.mutation.SetPublications(v)
	return _c
}

// SetNillablePublications sets the "publications" field if the given value is not nil.
func (_c *DoctorCreate) SetNillablePublications(v *string) *DoctorCreate {
	if v != nil {
		_c.SetPublications(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DoctorCreate) SetID(v uuid.UUID) *DoctorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableID(v *uuid.UUID) *DoctorCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *DoctorCreate) SetUser(v *User) *DoctorCreate {
	return _c.SetUserID(v.ID)
}

// AddSpecializationIDs adds the "specializations" edge to the Specialization entity by IDs.
func (_c *DoctorCreate) AddSpecializationIDs(ids ...uuid.UUID) *DoctorCreate {
	_c.mutation.AddSpecializationIDs(ids...)
	return _c
}

// AddSpecializations adds the "specializations" edges to the Specialization entity.
func (_c *DoctorCreate) AddSpecializations(v ...*Specialization) *DoctorCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSpecializationIDs(ids...)
}

// AddAvailabilityIDs adds the "availability" edge to the DoctorAvailability entity by IDs.
func (_c *DoctorCreate) AddAvailabilityIDs(ids ...uuid.UUID) *DoctorCreate {
	_c.mutation.AddAvailabilityIDs(ids...)
	return _c
}

// AddAvailability adds the "availability" edges to the DoctorAvailability entity.
func (_c *DoctorCreate) AddAvailability(v ...*DoctorAvailability) *DoctorCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAvailabilityIDs(ids...)
}

// AddLeafeIDs adds the "leaves" edge to the DoctorLeave entity by IDs.
func (_c *DoctorCreate) AddLeafeIDs(ids ...uuid.UUID) *DoctorCreate {
	_c.mutation.AddLeafeIDs(ids...)
	return _c
}

// AddLeaves adds the "leaves" edges to the DoctorLeave entity.
func (_c *DoctorCreate) AddLeaves(v ...*DoctorLeave) *DoctorCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLeafeIDs(ids...)
}

// Mutation returns the DoctorMutation object of the builder.
func (_c *DoctorCreate) Mutation() *DoctorMutation {
	return _c.mutation
}

// Save creates the Doctor in the database.
func (_c *DoctorCreate) Save(ctx context.Context) (*Doctor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DoctorCreate) SaveX(ctx context.Context) *Doctor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DoctorCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := doctor.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := doctor.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Title(); !ok {
		v := doctor.DefaultTitle
		_c.mutation.SetTitle(v)
	}
	if _, ok := _c.mutation.IsAvailable(); !ok {
		v := doctor.DefaultIsAvailable
		_c.mutation.SetIsAvailable(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := doctor.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DoctorCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Doctor.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Doctor.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "Doctor.user_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "Doctor.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := doctor.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Doctor.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LicenseNumber(); !ok {
		return &ValidationError{Name: "license_number", err: errors.New(`repo: missing required field "Doctor.license_number"`)}
	}
	if v, ok := _c.mutation.LicenseNumber(); ok {
		if err := doctor.LicenseNumberValidator(v); err != nil {
			return &ValidationError{Name: "license_number", err: fmt.Errorf(`repo: validator failed for field "Doctor.license_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.YearsOfExperience(); !ok {
		return &ValidationError{Name: "years_of_experience", err: errors.New(`repo: missing required field "Doctor.years_of_experience"`)}
	}
	if v, ok := _c.mutation.YearsOfExperience(); ok {
		if err := doctor.YearsOfExperienceValidator(v); err != nil {
			return &ValidationError{Name: "years_of_experience", err: fmt.Errorf(`repo: validator failed for field "Doctor.years_of_experience": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Biography(); !ok {
		return &ValidationError{Name: "biography", err: errors.New(`repo: missing required field "Doctor.biography"`)}
	}
	if _, ok := _c.mutation.Education(); !ok {
		return &ValidationError{Name: "education", err: errors.New(`repo: missing required field "Doctor.education"`)}
	}
	if _, ok := _c.mutation.ConsultationFee(); !ok {
		return &ValidationError{Name: "consultation_fee", err: errors.New(`repo: missing required field "Doctor.consultation_fee"`)}
	}
	if v, ok := _c.mutation.ConsultationFee(); ok {
		if err := doctor.ConsultationFeeValidator(v); err != nil {
			return &ValidationError{Name: "consultation_fee", err: fmt.Errorf(`repo: validator failed for field "Doctor.consultation_fee": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsAvailable(); !ok {
		return &ValidationError{Name: "is_available", err: errors.New(`repo: missing required field "Doctor.is_available"`)}
	}
	if v, ok := _c.mutation.ProfileImageKey(); ok {
		if err := doctor.ProfileImageKeyValidator(v); err != nil {
			return &ValidationError{Name: "profile_image_key", err: fmt.Errorf(`repo: validator failed for field "Doctor.profile_image_key": %w`, err)}
		}
	}
	if v, ok := _c.mutation.TwitterURL(); ok {
		if err := doctor.TwitterURLValidator(v); err != nil {
			return &ValidationError{Name: "twitter_url", err: fmt.Errorf(`repo: validator failed for field "Doctor.twitter_url": %w`, err)}
		}
	}
	if v, ok := _c.mutation.LinkedinURL(); ok {
		if err := doctor.LinkedinURLValidator(v); err != nil {
			return &ValidationError{Name: "linkedin_url", err: fmt.Errorf(`repo: validator failed for field "Doctor.linkedin_url": %w`, err)}
		}
	}
	if v, ok := _c.mutation.FacebookURL(); ok {
		if err := doctor.FacebookURLValidator(v); err != nil {
			return &ValidationError{Name: "facebook_url", err: fmt.Errorf(`repo: validator failed for field "Doctor.facebook_url": %w`, err)}
		}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`repo: missing required edge "Doctor.user"`)}
	}
	return nil
}

func (_c *DoctorCreate) sqlSave(ctx context.Context) (*Doctor, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DoctorCreate) createSpec() (*Doctor, *sqlgraph.CreateSpec) {
	var (
		_node = &Doctor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(doctor.Table, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(doctor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(doctor.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.LicenseNumber(); ok {
		_spec.SetField(doctor.FieldLicenseNumber, field.TypeString, value)
		_node.LicenseNumber = value
	}
	if value, ok := _c.mutation.YearsOfExperience(); ok {
		_spec.SetField(doctor.FieldYearsOfExperience, field.TypeInt, value)
		_node.YearsOfExperience = value
	}
	if value, ok := _c.mutation.Biography(); ok {
		_spec.SetField(doctor.FieldBiography, field.TypeString, value)
		_node.Biography = value
	}
	if value, ok := _c.mutation.Education(); ok {
		_spec.SetField(doctor.FieldEducation, field.TypeString, value)
		_node.Education = value
	}
	if value, ok := _c.mutation.Certifications(); ok {
		_spec.SetField(doctor.FieldCertifications, field.TypeString, value)
		_node.Certifications = &value
	}
	if value, ok := _c.mutation.ConsultationFee(); ok {
		_spec.SetField(doctor.FieldConsultationFee, field.TypeInt64, value)
		_node.ConsultationFee = value
	}
	if value, ok := _c.mutation.IsAvailable(); ok {
		_spec.SetField(doctor.FieldIsAvailable, field.TypeBool, value)
		_node.IsAvailable = value
	}
	if value, ok := _c.mutation.ProfileImageKey(); ok {
		_spec.SetField(doctor.FieldProfileImageKey, field.TypeString, value)
		_node.ProfileImageKey = &value
	}
	if value, ok := _c.mutation.TwitterURL(); ok {
		_spec.SetField(doctor.FieldTwitterURL, field.TypeString, value)
		_node.TwitterURL = &value
	}
	if value, ok := _c.mutation.LinkedinURL(); ok {
		_spec.SetField(doctor.FieldLinkedinURL, field.TypeString, value)
		_node.LinkedinURL = &value
	}
	if value, ok := _c.mutation.FacebookURL(); ok {
		_spec.SetField(doctor.FieldFacebookURL, field.TypeString, value)
		_node.FacebookURL = &value
	}
	if value, ok := _c.mutation.HospitalAffiliations(); ok {
		_spec.SetField(doctor.FieldHospitalAffiliations, field.TypeString, value)
		_node.HospitalAffiliations = &value
	}
	if value, ok := _c.mutation.ResearchInterests(); ok {
		_spec.SetField(doctor.FieldResearchInterests, field.TypeString, value)
		_node.ResearchInterests = &value
	}
	if value, ok := _c.mutation.Publications(); ok {
		_spec.SetField(doctor.FieldPublications, field.TypeString, value)
		_node.Publications = &value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SpecializationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AvailabilityIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LeavesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DoctorCreateBulk is the builder for creating many Doctor entities in bulk.
type DoctorCreateBulk struct {
	config
	err      error
	builders []*DoctorCreate
}

// Save creates the Doctor entities in the database.
func (_c *DoctorCreateBulk) Save(ctx context.Context) ([]*Doctor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Doctor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DoctorMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DoctorCreateBulk) SaveX(ctx context.Context) []*Doctor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
