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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/medicalhistory"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/patient"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/patientdocument"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/user"
)

// PatientCreate is the builder for creating a Patient entity.
type PatientCreate struct {
	config
	mutation *PatientMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatientCreate) SetCreatedAt(v time.Time) *PatientCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableCreatedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PatientCreate) SetUpdatedAt(v time.Time) *PatientCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableUpdatedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PatientCreate) SetUserID(v uuid.UUID) *PatientCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *PatientCreate) SetPatientID(v string) *PatientCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetMiddleName sets the "middle_name" field.
func (_c *PatientCreate) SetMiddleName(v string) *PatientCreate {
	_c.mutation.SetMiddleName(v)
	return _c
}

// SetNillableMiddleName sets the "middle_name" field if the given value is not nil.
func (_c *PatientCreate) SetNillableMiddleName(v *string) *PatientCreate {
	if v != nil {
		_c.SetMiddleName(*v)
	}
	return _c
}

// SetPreferredName sets the "preferred_name" field.
func (_c *PatientCreate) SetPreferredName(v string) *PatientCreate {
	_c.mutation.SetPreferredName(v)
	return _c
}

// SetNillablePreferredName sets the "preferred_name" field if the given value is not nil.
func (_c *PatientCreate) SetNillablePreferredName(v *string) *PatientCreate {
	if v != nil {
		_c.SetPreferredName(*v)
	}
	return _c
}

// SetOccupation sets the "occupation" field.
func (_c *PatientCreate) SetOccupation(v string) *PatientCreate {
	_c.mutation.SetOccupation(v)
	return _c
}

// SetNillableOccupation sets the "occupation" field if the given value is not nil.
func (_c *PatientCreate) SetNillableOccupation(v *string) *PatientCreate {
	if v != nil {
		_c.SetOccupation(*v)
	}
	return _c
}

// SetBloodType sets the "blood_type" field.
func (_c *PatientCreate) SetBloodType(v patient.BloodType) *PatientCreate {
	_c.mutation.SetBloodType(v)
	return _c
}

// SetNillableBloodType sets the "blood_type" field if the given value is not nil.
func (_c *PatientCreate) SetNillableBloodType(v *patient.BloodType) *PatientCreate {
	if v != nil {
		_c.SetBloodType(*v)
	}
	return _c
}

// SetSkinType sets the "skin_type" field.
func (_c *PatientCreate) SetSkinType(v patient.SkinType) *PatientCreate {
	_c.mutation.SetSkinType(v)
	return _c
}

// SetNillableSkinType sets the "skin_type" field if the given value is not nil.
func (_c *PatientCreate) SetNillableSkinType(v *patient.SkinType) *PatientCreate {
	if v != nil {
		_c.SetSkinType(*v)
	}
	return _c
}

// SetHeightCm sets the "height_cm" field.
func (_c *PatientCreate) SetHeightCm(v float64) *PatientCreate {
	_c.mutation.SetHeightCm(v)
	return _c
}

// SetNillableHeightCm sets the "height_cm" field if the given value is not nil.
func (_c *PatientCreate) SetNillableHeightCm(v *float64) *PatientCreate {
	if v != nil {
		_c.SetHeightCm(*v)
	}
	return _c
}

// SetWeightKg sets the "weight_kg" field.
func (_c *PatientCreate) SetWeightKg(v float64) *PatientCreate {
	_c.mutation.SetWeightKg(v)
	return _c
}

// SetNillableWeightKg sets the "weight_kg" field if the given value is not nil.
func (_c *PatientCreate) SetNillableWeightKg(v *float64) *PatientCreate {
	if v != nil {
		_c.SetWeightKg(*v)
	}
	return _c
}

// SetPreferredContactMethod sets the "preferred_contact_method" field.
func (_c *PatientCreate) SetPreferredContactMethod(v patient.PreferredContactMethod) *PatientCreate {
	_c.mutation.SetPreferredContactMethod(v)
	return _c
}

// SetNillablePreferredContactMethod sets the "preferred_contact_method" field if the given value is not nil.
func (_c *PatientCreate) SetNillablePreferredContactMethod(v *patient.PreferredContactMethod) *PatientCreate {
	if v != nil {
		_c.SetPreferredContactMethod(*v)
	}
	return _c
}

// SetPreferredLanguage sets the "preferred_language" field.
func (_c *PatientCreate) SetPreferredLanguage(v string) *PatientCreate {
	_c.mutation.SetPreferredLanguage(v)
	return _c
}

// SetNillablePreferredLanguage sets the "preferred_language" field if the given value is not nil.
func (_c *PatientCreate) SetNillablePreferredLanguage(v *string) *PatientCreate {
	if v != nil {
		_c.SetPreferredLanguage(*v)
	}
	return _c
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (_c *PatientCreate) SetInsuranceProvider(v string) *PatientCreate {
	_c.mutation.SetInsuranceProvider(v)
	return _c
}

// SetNillableInsuranceProvider sets the "insurance_provider" field if the given value is not nil.
func (_c *PatientCreate) SetNillableInsuranceProvider(v *string) *PatientCreate {
	if v != nil {
		_c.SetInsuranceProvider(*v)
	}
	return _c
}

// SetInsuranceNumber sets the "insurance_number" field.
func (_c *PatientCreate) SetInsuranceNumber(v string) *PatientCreate {
	_c.mutation.SetInsuranceNumber(v)
	return _c
}

// SetNillableInsuranceNumber sets the "insurance_number" field if the given value is not nil.
func (_c *PatientCreate) SetNillableInsuranceNumber(v *string) *PatientCreate {
	if v != nil {
		_c.SetInsuranceNumber(*v)
	}
	return _c
}

// SetInsuranceValidUntil sets the "insurance_valid_until" field.
func (_c *PatientCreate) SetInsuranceValidUntil(v time.Time) *PatientCreate {
	_c.mutation.SetInsuranceValidUntil(v)
	return _c
}

// SetNillableInsuranceValidUntil sets the "insurance_valid_until" field if the given value is not nil.
func (_c *PatientCreate) SetNillableInsuranceValidUntil(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetInsuranceValidUntil(*v)
	}
	return _c
}

// SetReferredByID sets the "referred_by_id" field.
func (_c *PatientCreate) SetReferredByID(v uuid.UUID) *PatientCreate {
	_c.mutation.SetReferredByID(v)
	return _c
}

// SetNillableReferredByID sets the "referred_by_id" field if the given value is not nil.
func (_c *PatientCreate) SetNillableReferredByID(v *uuid.UUID) *PatientCreate {
	if v != nil {
		_c.SetReferredByID(*v)
	}
	return _c
}

// SetReferralSource sets the "referral_source" field.
func (_c *PatientCreate) SetReferralSource(v patient.ReferralSource) *PatientCreate {
	_c.mutation.SetReferralSource(v)
	return _c
}

// SetNillableReferralSource sets the "referral_source" field if the given value is not nil.
func (_c *PatientCreate) SetNillableReferralSource(v *patient.ReferralSource) *PatientCreate {
	if v != nil {
		_c.SetReferralSource(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *PatientCreate) SetIsActive(v bool) *PatientCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *PatientCreate) SetNillableIsActive(v *bool) *PatientCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatientCreate) SetID(v uuid.UUID) *PatientCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PatientCreate) SetNillableID(v *uuid.UUID) *PatientCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *PatientCreate) SetUser(v *User) *PatientCreate {
	return _c.SetUserID(v.ID)
}

// SetReferredBy sets the "referred_by" edge to the Patient entity.
func (_c *PatientCreate) SetReferredBy(v *Patient) *PatientCreate {
	return _c.SetReferredByID(v.ID)
}

// AddReferralIDs adds the "referrals" edge to the Patient entity by IDs.
func (_c *PatientCreate) AddReferralIDs(ids ...uuid.UUID) *PatientCreate {
	_c.mutation.AddReferralIDs(ids...)
	return _c
}

// AddReferrals adds the "referrals" edges to the Patient entity.
func (_c *PatientCreate) AddReferrals(v ...*Patient) *PatientCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReferralIDs(ids...)
}

// AddMedicalHistoryIDs adds the "medical_history" edge to the MedicalHistory entity by IDs.
func (_c *PatientCreate) AddMedicalHistoryIDs(ids ...uuid.UUID) *PatientCreate {
	_c.mutation.AddMedicalHistoryIDs(ids...)
	return _c
}

// AddMedicalHistory adds the "medical_history" edges to the MedicalHistory entity.
func (_c *PatientCreate) AddMedicalHistory(v ...*MedicalHistory) *PatientCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMedicalHistoryIDs(ids...)
}

// AddDocumentIDs adds the "documents" edge to the PatientDocument entity by IDs.
func (_c *PatientCreate) AddDocumentIDs(ids ...uuid.UUID) *PatientCreate {
	_c.mutation.AddDocumentIDs(ids...)
	return _c
}

// AddDocuments adds the "documents" edges to the PatientDocument entity.
func (_c *PatientCreate) AddDocuments(v ...*PatientDocument) *PatientCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentIDs(ids...)
}

// Mutation returns the PatientMutation object of the builder.
func (_c *PatientCreate) Mutation() *PatientMutation {
	return _c.mutation
}

// Save creates the Patient in the database.
func (_c *PatientCreate) Save(ctx context.Context) (*Patient, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatientCreate) SaveX(ctx context.Context) *Patient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatientCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := patient.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := patient.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.BloodType(); !ok {
		v := patient.DefaultBloodType
		_c.mutation.SetBloodType(v)
	}
	if _, ok := _c.mutation.PreferredContactMethod(); !ok {
		v := patient.DefaultPreferredContactMethod
		_c.mutation.SetPreferredContactMethod(v)
	}
	if _, ok := _c.mutation.PreferredLanguage(); !ok {
		v := patient.DefaultPreferredLanguage
		_c.mutation.SetPreferredLanguage(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := patient.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := patient.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatientCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Patient.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Patient.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "Patient.user_id"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Patient.patient_id"`)}
	}
	if v, ok := _c.mutation.PatientID(); ok {
		if err := patient.PatientIDValidator(v); err != nil {
			return &ValidationError{Name: "patient_id", err: fmt.Errorf(`repo: validator failed for field "Patient.patient_id": %w`, err)}
		}
	}
	if v, ok := _c.mutation.MiddleName(); ok {
		if err := patient.MiddleNameValidator(v); err != nil {
			return &ValidationError{Name: "middle_name", err: fmt.Errorf(`repo: validator failed for field "Patient.middle_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PreferredName(); ok {
		if err := patient.PreferredNameValidator(v); err != nil {
			return &ValidationError{Name: "preferred_name", err: fmt.Errorf(`repo: validator failed for field "Patient.preferred_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Occupation(); ok {
		if err := patient.OccupationValidator(v); err != nil {
			return &ValidationError{Name: "occupation", err: fmt.Errorf(`repo: validator failed for field "Patient.occupation": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BloodType(); !ok {
		return &ValidationError{Name: "blood_type", err: errors.New(`repo: missing required field "Patient.blood_type"`)}
	}
	if v, ok := _c.mutation.BloodType(); ok {
		if err := patient.BloodTypeValidator(v); err != nil {
			return &ValidationError{Name: "blood_type", err: fmt.Errorf(`repo: validator failed for field "Patient.blood_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SkinType(); ok {
		if err := patient.SkinTypeValidator(v); err != nil {
			return &ValidationError{Name: "skin_type", err: fmt.Errorf(`repo: validator failed for field "Patient.skin_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PreferredContactMethod(); !ok {
		return &ValidationError{Name: "preferred_contact_method", err: errors.New(`repo: missing required field "Patient.preferred_contact_method"`)}
	}
	if v, ok := _c.mutation.PreferredContactMethod(); ok {
		if err := patient.PreferredContactMethodValidator(v); err != nil {
			return &ValidationError{Name: "preferred_contact_method", err: fmt.Errorf(`repo: validator failed for field "Patient.preferred_contact_method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PreferredLanguage(); !ok {
		return &ValidationError{Name: "preferred_language", err: errors.New(`repo: missing required field "Patient.preferred_language"`)}
	}
	if v, ok := _c.mutation.PreferredLanguage(); ok {
		if err := patient.PreferredLanguageValidator(v); err != nil {
			return &ValidationError{Name: "preferred_language", err: fmt.Errorf(`repo: validator failed for field "Patient.preferred_language": %w`, err)}
		}
	}
	if v, ok := _c.mutation.InsuranceProvider(); ok {
		if err := patient.InsuranceProviderValidator(v); err != nil {
			return &ValidationError{Name: "insurance_provider", err: fmt.Errorf(`repo: validator failed for field "Patient.insurance_provider": %w`, err)}
		}
	}
	if v, ok := _c.mutation.InsuranceNumber(); ok {
		if err := patient.InsuranceNumberValidator(v); err != nil {
			return &ValidationError{Name: "insurance_number", err: fmt.Errorf(`repo: validator failed for field "Patient.insurance_number": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ReferralSource(); ok {
		if err := patient.ReferralSourceValidator(v); err != nil {
			return &ValidationError{Name: "referral_source", err: fmt.Errorf(`repo: validator failed for field "Patient.referral_source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "Patient.is_active"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`repo: missing required edge "Patient.user"`)}
	}
	return nil
}

func (_c *PatientCreate) sqlSave(ctx context.Context) (*Patient, error) {
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

func (_c *PatientCreate) createSpec() (*Patient, *sqlgraph.CreateSpec) {
	var (
		_node = &Patient{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patient.Table, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(patient.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(patient.FieldPatientID, field.TypeString, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.MiddleName(); ok {
		_spec.SetField(patient.FieldMiddleName, field.TypeString, value)
		_node.MiddleName = &value
	}
	if value, ok := _c.mutation.PreferredName(); ok {
		_spec.SetField(patient.FieldPreferredName, field.TypeString, value)
		_node.PreferredName = &value
	}
	if value, ok := _c.mutation.Occupation(); ok {
		_spec.SetField(patient.FieldOccupation, field.TypeString, value)
		_node.Occupation = &value
	}
	if value, ok := _c.mutation.BloodType(); ok {
		_spec.SetField(patient.FieldBloodType, field.TypeEnum, value)
		_node.BloodType = value
	}
	if value, ok := _c.mutation.SkinType(); ok {
		_spec.SetField(patient.FieldSkinType, field.TypeEnum, value)
		_node.SkinType = &value
	}
	if value, ok := _c.mutation.HeightCm(); ok {
		_spec.SetField(patient.FieldHeightCm, field.TypeFloat64, value)
		_node.HeightCm = &value
	}
	if value, ok := _c.mutation.WeightKg(); ok {
		_spec.SetField(patient.FieldWeightKg, field.TypeFloat64, value)
		_node.WeightKg = &value
	}
	if value, ok := _c.mutation.PreferredContactMethod(); ok {
		_spec.SetField(patient.FieldPreferredContactMethod, field.TypeEnum, value)
		_node.PreferredContactMethod = value
	}
	if value, ok := _c.mutation.PreferredLanguage(); ok {
		_spec.SetField(patient.FieldPreferredLanguage, field.TypeString, value)
		_node.PreferredLanguage = value
	}
	if value, ok := _c.mutation.InsuranceProvider(); ok {
		_spec.SetField(patient.FieldInsuranceProvider, field.TypeString, value)
		_node.InsuranceProvider = &value
	}
	if value, ok := _c.mutation.InsuranceNumber(); ok {
		_spec.SetField(patient.FieldInsuranceNumber, field.TypeString, value)
		_node.InsuranceNumber = &value
	}
	if value, ok := _c.mutation.InsuranceValidUntil(); ok {
		_spec.SetField(patient.FieldInsuranceValidUntil, field.TypeTime, value)
		_node.InsuranceValidUntil = &value
	}
	if value, ok := _c.mutation.ReferralSource(); ok {
		_spec.SetField(patient.FieldReferralSource, field.TypeEnum, value)
		_node.ReferralSource = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(patient.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   patient.UserTable,
			Columns: []string{patient.UserColumn},
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
	if nodes := _c.mutation.ReferredByIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patient.ReferredByTable,
			Columns: []string{patient.ReferredByColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ReferredByID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReferralsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.ReferralsTable,
			Columns: []string{patient.ReferralsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MedicalHistoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.MedicalHistoryTable,
			Columns: []string{patient.MedicalHistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(medicalhistory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.DocumentsTable,
			Columns: []string{patient.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientdocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PatientCreateBulk is the builder for creating many Patient entities in bulk.
type PatientCreateBulk struct {
	config
	err      error
	builders []*PatientCreate
}

// Save creates the Patient entities in the database.
func (_c *PatientCreateBulk) Save(ctx context.Context) ([]*Patient, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Patient, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatientMutation)
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
func (_c *PatientCreateBulk) SaveX(ctx context.Context) []*Patient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
