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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/medicalhistory"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/patient"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/patientdocument"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/user"
)

// PatientUpdate is the builder for updating Patient entities.
type PatientUpdate struct {
	config
	hooks    []Hook
	mutation *PatientMutation
}

// Where appends a list predicates to the PatientUpdate builder.
func (_u *PatientUpdate) Where(ps ...predicate.Patient) *PatientUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientUpdate) SetUpdatedAt(v time.Time) *PatientUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PatientUpdate) SetUserID(v uuid.UUID) *PatientUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableUserID(v *uuid.UUID) *PatientUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetMiddleName sets the "middle_name" field.
func (_u *PatientUpdate) SetMiddleName(v string) *PatientUpdate {
	_u.mutation.SetMiddleName(v)
	return _u
}

// SetNillableMiddleName sets the "middle_name" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableMiddleName(v *string) *PatientUpdate {
	if v != nil {
		_u.SetMiddleName(*v)
	}
	return _u
}

// ClearMiddleName clears the value of the "middle_name" field.
func (_u *PatientUpdate) ClearMiddleName() *PatientUpdate {
	_u.mutation.ClearMiddleName()
	return _u
}

// SetPreferredName sets the "preferred_name" field.
func (_u *PatientUpdate) SetPreferredName(v string) *PatientUpdate {
	_u.mutation.SetPreferredName(v)
	return _u
}

// SetNillablePreferredName sets the "preferred_name" field if the given value is not nil.
func (_u *PatientUpdate) SetNillablePreferredName(v *string) *PatientUpdate {
	if v != nil {
		_u.SetPreferredName(*v)
	}
	return _u
}

// ClearPreferredName clears the value of the "preferred_name" field.
func (_u *PatientUpdate) ClearPreferredName() *PatientUpdate {
	_u.mutation.ClearPreferredName()
	return _u
}

// SetOccupation sets the "occupation" field.
func (_u *PatientUpdate) SetOccupation(v string) *PatientUpdate {
	_u.mutation.SetOccupation(v)
	return _u
}

// SetNillableOccupation sets the "occupation" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableOccupation(v *string) *PatientUpdate {
	if v != nil {
		_u.SetOccupation(*v)
	}
	return _u
}

// ClearOccupation clears the value of the "occupation" field.
func (_u *PatientUpdate) ClearOccupation() *PatientUpdate {
	_u.mutation.ClearOccupation()
	return _u
}

// SetBloodType sets the "blood_type" field.
func (_u *PatientUpdate) SetBloodType(v patient.BloodType) *PatientUpdate {
	_u.mutation.SetBloodType(v)
	return _u
}

// SetNillableBloodType sets the "blood_type" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableBloodType(v *patient.BloodType) *PatientUpdate {
	if v != nil {
		_u.SetBloodType(*v)
	}
	return _u
}

// SetSkinType sets the "skin_type" field.
func (_u *PatientUpdate) SetSkinType(v patient.SkinType) *PatientUpdate {
	_u.mutation.SetSkinType(v)
	return _u
}

// SetNillableSkinType sets the "skin_type" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableSkinType(v *patient.SkinType) *PatientUpdate {
	if v != nil {
		_u.SetSkinType(*v)
	}
	return _u
}

// ClearSkinType clears the value of the "skin_type" field.
func (_u *PatientUpdate) ClearSkinType() *PatientUpdate {
	_u.mutation.ClearSkinType()
	return _u
}

// SetHeightCm sets the "height_cm" field.
func (_u *PatientUpdate) SetHeightCm(v float64) *PatientUpdate {
	_u.mutation.ResetHeightCm()
	_u.mutation.SetHeightCm(v)
	return _u
}

// SetNillableHeightCm sets the "height_cm" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableHeightCm(v *float64) *PatientUpdate {
	if v != nil {
		_u.SetHeightCm(*v)
	}
	return _u
}

// AddHeightCm adds value to the "height_cm" field.
func (_u *PatientUpdate) AddHeightCm(v float64) *PatientUpdate {
	_u.mutation.AddHeightCm(v)
	return _u
}

// ClearHeightCm clears the value of the "height_cm" field.
func (_u *PatientUpdate) ClearHeightCm() *PatientUpdate {
	_u.mutation.ClearHeightCm()
	return _u
}

// SetWeightKg sets the "weight_kg" field.
func (_u *PatientUpdate) SetWeightKg(v float64) *PatientUpdate {
	_u.mutation.ResetWeightKg()
	_u.mutation.SetWeightKg(v)
	return _u
}

// SetNillableWeightKg sets the "weight_kg" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableWeightKg(v *float64) *PatientUpdate {
	if v != nil {
		_u.SetWeightKg(*v)
	}
	return _u
}

// AddWeightKg adds value to the "weight_kg" field.
func (_u *PatientUpdate) AddWeightKg(v float64) *PatientUpdate {
	_u.mutation.AddWeightKg(v)
	return _u
}

// ClearWeightKg clears the value of the "weight_kg" field.
func (_u *PatientUpdate) ClearWeightKg() *PatientUpdate {
	_u.mutation.ClearWeightKg()
	return _u
}

// SetPreferredContactMethod sets the "preferred_contact_method" field.
func (_u *PatientUpdate) SetPreferredContactMethod(v patient.PreferredContactMethod) *PatientUpdate {
	_u.mutation.SetPreferredContactMethod(v)
	return _u
}

// SetNillablePreferredContactMethod sets the "preferred_contact_method" field if the given value is not nil.
func (_u *PatientUpdate) SetNillablePreferredContactMethod(v *patient.PreferredContactMethod) *PatientUpdate {
	if v != nil {
		_u.SetPreferredContactMethod(*v)
	}
	return _u
}

// SetPreferredLanguage sets the "preferred_language" field.
func (_u *PatientUpdate) SetPreferredLanguage(v string) *PatientUpdate {
	_u.mutation.SetPreferredLanguage(v)
	return _u
}

// SetNillablePreferredLanguage sets the "preferred_language" field if the given value is not nil.
func (_u *PatientUpdate) SetNillablePreferredLanguage(v *string) *PatientUpdate {
	if v != nil {
		_u.SetPreferredLanguage(*v)
	}
	return _u
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (_u *PatientUpdate) SetInsuranceProvider(v string) *PatientUpdate {
	_u.mutation.SetInsuranceProvider(v)
	return _u
}

// SetNillableInsuranceProvider sets the "insurance_provider" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableInsuranceProvider(v *string) *PatientUpdate {
	if v != nil {
		_u.SetInsuranceProvider(*v)
	}
	return _u
}

// ClearInsuranceProvider clears the value of the "insurance_provider" field.
func (_u *PatientUpdate) ClearInsuranceProvider() *PatientUpdate {
	_u.mutation.ClearInsuranceProvider()
	return _u
}

// SetInsuranceNumber sets the "insurance_number" field.
func (_u *PatientUpdate) SetInsuranceNumber(v string) *PatientUpdate {
	_u.mutation.SetInsuranceNumber(v)
	return _u
}

// SetNillableInsuranceNumber sets the "insurance_number" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableInsuranceNumber(v *string) *PatientUpdate {
	if v != nil {
		_u.SetInsuranceNumber(*v)
	}
	return _u
}

// ClearInsuranceNumber clears the value of the "insurance_number" field.
func (_u *PatientUpdate) ClearInsuranceNumber() *PatientUpdate {
	_u.mutation.ClearInsuranceNumber()
	return _u
}

// SetInsuranceValidUntil sets the "insurance_valid_until" field.
func (_u *PatientUpdate) SetInsuranceValidUntil(v time.Time) *PatientUpdate {
	_u.mutation.SetInsuranceValidUntil(v)
	return _u
}

// SetNillableInsuranceValidUntil sets the "insurance_valid_until" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableInsuranceValidUntil(v *time.Time) *PatientUpdate {
	if v != nil {
		_u.SetInsuranceValidUntil(*v)
	}
	return _u
}

// ClearInsuranceValidUntil clears the value of the "insurance_valid_until" field.
func (_u *PatientUpdate) ClearInsuranceValidUntil() *PatientUpdate {
	_u.mutation.ClearInsuranceValidUntil()
	return _u
}

// SetReferredByID sets the "referred_by_id" field.
func (_u *PatientUpdate) SetReferredByID(v uuid.UUID) *PatientUpdate {
	_u.mutation.SetReferredByID(v)
	return _u
}

// SetNillableReferredByID sets the "referred_by_id" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableReferredByID(v *uuid.UUID) *PatientUpdate {
	if v != nil {
		_u.SetReferredByID(*v)
	}
	return _u
}

// ClearReferredByID clears the value of the "referred_by_id" field.
func (_u *PatientUpdate) ClearReferredByID() *PatientUpdate {
	_u.mutation.ClearReferredByID()
	return _u
}

// SetReferralSource sets the "referral_source" field.
func (_u *PatientUpdate) SetReferralSource(v patient.ReferralSource) *PatientUpdate {
	_u.mutation.SetReferralSource(v)
	return _u
}

// SetNillableReferralSource sets the "referral_source" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableReferralSource(v *patient.ReferralSource) *PatientUpdate {
	if v != nil {
		_u.SetReferralSource(*v)
	}
	return _u
}

// ClearReferralSource clears the value of the "referral_source" field.
func (_u *PatientUpdate) ClearReferralSource() *PatientUpdate {
	_u.mutation.ClearReferralSource()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PatientUpdate) SetIsActive(v bool) *PatientUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableIsActive(v *bool) *PatientUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *PatientUpdate) SetUser(v *User) *PatientUpdate {
	return _u.SetUserID(v.ID)
}

// SetReferredBy sets the "referred_by" edge to the Patient entity.
func (_u *PatientUpdate) SetReferredBy(v *Patient) *PatientUpdate {
	return _u.SetReferredByID(v.ID)
}

// AddReferralIDs adds the "referrals" edge to the Patient entity by IDs.
func (_u *PatientUpdate) AddReferralIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.AddReferralIDs(ids...)
	return _u
}

// AddReferrals adds the "referrals" edges to the Patient entity.
func (_u *PatientUpdate) AddReferrals(v ...*Patient) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReferralIDs(ids...)
}

// AddMedicalHistoryIDs adds the "medical_history" edge to the MedicalHistory entity by IDs.
func (_u *PatientUpdate) AddMedicalHistoryIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.AddMedicalHistoryIDs(ids...)
	return _u
}

// AddMedicalHistory adds the "medical_history" edges to the MedicalHistory entity.
func (_u *PatientUpdate) AddMedicalHistory(v ...*MedicalHistory) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMedicalHistoryIDs(ids...)
}

// AddDocumentIDs adds the "documents" edge to the PatientDocument entity by IDs.
func (_u *PatientUpdate) AddDocumentIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the PatientDocument entity.
func (_u *PatientUpdate) AddDocuments(v ...*PatientDocument) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the PatientMutation object of the builder.
func (_u *PatientUpdate) Mutation() *PatientMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *PatientUpdate) ClearUser() *PatientUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearReferredBy clears the "referred_by" edge to the Patient entity.
func (_u *PatientUpdate) ClearReferredBy() *PatientUpdate {
	_u.mutation.ClearReferredBy()
	return _u
}

// ClearReferrals clears all "referrals" edges to the Patient entity.
func (_u *PatientUpdate) ClearReferrals() *PatientUpdate {
	_u.mutation.ClearReferrals()
	return _u
}

// RemoveReferralIDs removes the "referrals" edge to Patient entities by IDs.
func (_u *PatientUpdate) RemoveReferralIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.RemoveReferralIDs(ids...)
	return _u
}

// RemoveReferrals removes "referrals" edges to Patient entities.
func (_u *PatientUpdate) RemoveReferrals(v ...*Patient) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReferralIDs(ids...)
}

// ClearMedicalHistory clears all "medical_history" edges to the MedicalHistory entity.
func (_u *PatientUpdate) ClearMedicalHistory() *PatientUpdate {
	_u.mutation.ClearMedicalHistory()
	return _u
}

// RemoveMedicalHistoryIDs removes the "medical_history" edge to MedicalHistory entities by IDs.
func (_u *PatientUpdate) RemoveMedicalHistoryIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.RemoveMedicalHistoryIDs(ids...)
	return _u
}

// RemoveMedicalHistory removes "medical_history" edges to MedicalHistory entities.
func (_u *PatientUpdate) RemoveMedicalHistory(v ...*MedicalHistory) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMedicalHistoryIDs(ids...)
}

// ClearDocuments clears all "documents" edges to the PatientDocument entity.
func (_u *PatientUpdate) ClearDocuments() *PatientUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to PatientDocument entities by IDs.
func (_u *PatientUpdate) RemoveDocumentIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to PatientDocument entities.
func (_u *PatientUpdate) RemoveDocuments(v ...*PatientDocument) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatientUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatientUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientUpdate) check() error {
	if v, ok := _u.mutation.MiddleName(); ok {
		if err := patient.MiddleNameValidator(v); err != nil {
			return &ValidationError{Name: "middle_name", err: fmt.Errorf(`repo: validator failed for field "Patient.middle_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PreferredName(); ok {
		if err := patient.PreferredNameValidator(v); err != nil {
			return &ValidationError{Name: "preferred_name", err: fmt.Errorf(`repo: validator failed for field "Patient.preferred_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Occupation(); ok {
		if err := patient.OccupationValidator(v); err != nil {
			return &ValidationError{Name: "occupation", err: fmt.Errorf(`repo: validator failed for field "Patient.occupation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BloodType(); ok {
		if err := patient.BloodTypeValidator(v); err != nil {
			return &ValidationError{Name: "blood_type", err: fmt.Errorf(`repo: validator failed for field "Patient.blood_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkinType(); ok {
		if err := patient.SkinTypeValidator(v); err != nil {
			return &ValidationError{Name: "skin_type", err: fmt.Errorf(`repo: validator failed for field "Patient.skin_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PreferredContactMethod(); ok {
		if err := patient.PreferredContactMethodValidator(v); err != nil {
			return &ValidationError{Name: "preferred_contact_method", err: fmt.Errorf(`repo: validator failed for field "Patient.preferred_contact_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PreferredLanguage(); ok {
		if err := patient.PreferredLanguageValidator(v); err != nil {
			return &ValidationError{Name: "preferred_language", err: fmt.Errorf(`repo: validator failed for field "Patient.preferred_language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InsuranceProvider(); ok {
		if err := patient.InsuranceProviderValidator(v); err != nil {
			return &ValidationError{Name: "insurance_provider", err: fmt.Errorf(`repo: validator failed for field "Patient.insurance_provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InsuranceNumber(); ok {
		if err := patient.InsuranceNumberValidator(v); err != nil {
			return &ValidationError{Name: "insurance_number", err: fmt.Errorf(`repo: validator failed for field "Patient.insurance_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReferralSource(); ok {
		if err := patient.ReferralSourceValidator(v); err != nil {
			return &ValidationError{Name: "referral_source", err: fmt.Errorf(`repo: validator failed for field "Patient.referral_source": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Patient.user"`)
	}
	return nil
}

func (_u *PatientUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patient.Table, patient.Columns, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.MiddleName(); ok {
		_spec.SetField(patient.FieldMiddleName, field.TypeString, value)
	}
	if _u.mutation.MiddleNameCleared() {
		_spec.ClearField(patient.FieldMiddleName, field.TypeString)
	}
	if value, ok := _u.mutation.PreferredName(); ok {
		_spec.SetField(patient.FieldPreferredName, field.TypeString, value)
	}
	if _u.mutation.PreferredNameCleared() {
		_spec.ClearField(patient.FieldPreferredName, field.TypeString)
	}
	if value, ok := _u.mutation.Occupation(); ok {
		_spec.SetField(patient.FieldOccupation, field.TypeString, value)
	}
	if _u.mutation.OccupationCleared() {
		_spec.ClearField(patient.FieldOccupation, field.TypeString)
	}
	if value, ok := _u.mutation.BloodType(); ok {
		_spec.SetField(patient.FieldBloodType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SkinType(); ok {
		_spec.SetField(patient.FieldSkinType, field.TypeEnum, value)
	}
	if _u.mutation.SkinTypeCleared() {
		_spec.ClearField(patient.FieldSkinType, field.TypeEnum)
	}
	if value, ok := _u.mutation.HeightCm(); ok {
		_spec.SetField(patient.FieldHeightCm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHeightCm(); ok {
		_spec.AddField(patient.FieldHeightCm, field.TypeFloat64, value)
	}
	if _u.mutation.HeightCmCleared() {
		_spec.ClearField(patient.FieldHeightCm, field.TypeFloat64)
	}
	if value, ok := _u.mutation.WeightKg(); ok {
		_spec.SetField(patient.FieldWeightKg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeightKg(); ok {
		_spec.AddField(patient.FieldWeightKg, field.TypeFloat64, value)
	}
	if _u.mutation.WeightKgCleared() {
		_spec.ClearField(patient.FieldWeightKg, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PreferredContactMethod(); ok {
		_spec.SetField(patient.FieldPreferredContactMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PreferredLanguage(); ok {
		_spec.SetField(patient.FieldPreferredLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.InsuranceProvider(); ok {
		_spec.SetField(patient.FieldInsuranceProvider, field.TypeString, value)
	}
	if _u.mutation.InsuranceProviderCleared() {
		_spec.ClearField(patient.FieldInsuranceProvider, field.TypeString)
	}
	if value, ok := _u.mutation.InsuranceNumber(); ok {
		_spec.SetField(patient.FieldInsuranceNumber, field.TypeString, value)
	}
	if _u.mutation.InsuranceNumberCleared() {
		_spec.ClearField(patient.FieldInsuranceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.InsuranceValidUntil(); ok {
		_spec.SetField(patient.FieldInsuranceValidUntil, field.TypeTime, value)
	}
	if _u.mutation.InsuranceValidUntilCleared() {
		_spec.ClearField(patient.FieldInsuranceValidUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.ReferralSource(); ok {
		_spec.SetField(patient.FieldReferralSource, field.TypeEnum, value)
	}
	if _u.mutation.ReferralSourceCleared() {
		_spec.ClearField(patient.FieldReferralSource, field.TypeEnum)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(patient.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReferredByCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReferredByIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReferralsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReferralsIDs(); len(nodes) > 0 && !_u.mutation.ReferralsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReferralsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MedicalHistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMedicalHistoryIDs(); len(nodes) > 0 && !_u.mutation.MedicalHistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MedicalHistoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatientUpdateOne is the builder for updating a single Patient entity.
type PatientUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatientMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientUpdateOne) SetUpdatedAt(v time.Time) *PatientUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PatientUpdateOne) SetUserID(v uuid.UUID) *PatientUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableUserID(v *uuid.UUID) *PatientUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetMiddleName sets the "middle_name" field.
func (_u *PatientUpdateOne) SetMiddleName(v string) *PatientUpdateOne {
	_u.mutation.SetMiddleName(v)
	return _u
}

// SetNillableMiddleName sets the "middle_name" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableMiddleName(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetMiddleName(*v)
	}
	return _u
}

// ClearMiddleName clears the value of the "middle_name" field.
func (_u *PatientUpdateOne) ClearMiddleName() *PatientUpdateOne {
	_u.mutation.ClearMiddleName()
	return _u
}

// SetPreferredName sets the "preferred_name" field.
func (_u *PatientUpdateOne) SetPreferredName(v string) *PatientUpdateOne {
	_u.mutation.SetPreferredName(v)
	return _u
}

// SetNillablePreferredName sets the "preferred_name" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillablePreferredName(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetPreferredName(*v)
	}
	return _u
}

// ClearPreferredName clears the value of the "preferred_name" field.
func (_u *PatientUpdateOne) ClearPreferredName() *PatientUpdateOne {
	_u.mutation.ClearPreferredName()
	return _u
}

// SetOccupation sets the "occupation" field.
func (_u *PatientUpdateOne) SetOccupation(v string) *PatientUpdateOne {
	_u.mutation.SetOccupation(v)
	return _u
}

// SetNillableOccupation sets the "occupation" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableOccupation(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetOccupation(*v)
	}
	return _u
}

// ClearOccupation clears the value of the "occupation" field.
func (_u *PatientUpdateOne) ClearOccupation() *PatientUpdateOne {
	_u.mutation.ClearOccupation()
	return _u
}

// SetBloodType sets the "blood_type" field.
func (_u *PatientUpdateOne) SetBloodType(v patient.BloodType) *PatientUpdateOne {
	_u.mutation.SetBloodType(v)
	return _u
}

// SetNillableBloodType sets the "blood_type" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableBloodType(v *patient.BloodType) *PatientUpdateOne {
	if v != nil {
		_u.SetBloodType(*v)
	}
	return _u
}

// SetSkinType sets the "skin_type" field.
func (_u *PatientUpdateOne) SetSkinType(v patient.SkinType) *PatientUpdateOne {
	_u.mutation.SetSkinType(v)
	return _u
}

// SetNillableSkinType sets the "skin_type" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableSkinType(v *patient.SkinType) *PatientUpdateOne {
	if v != nil {
		_u.SetSkinType(*v)
	}
	return _u
}

// ClearSkinType clears the value of the "skin_type" field.
func (_u *PatientUpdateOne) ClearSkinType() *PatientUpdateOne {
	_u.mutation.ClearSkinType()
	return _u
}

// SetHeightCm sets the "height_cm" field.
func (_u *PatientUpdateOne) SetHeightCm(v float64) *PatientUpdateOne {
	_u.mutation.ResetHeightCm()
	_u.mutation.SetHeightCm(v)
	return _u
}

// SetNillableHeightCm sets the "height_cm" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableHeightCm(v *float64) *PatientUpdateOne {
	if v != nil {
		_u.SetHeightCm(*v)
	}
	return _u
}

// AddHeightCm adds value to the "height_cm" field.
func (_u *PatientUpdateOne) AddHeightCm(v float64) *PatientUpdateOne {
	_u.mutation.AddHeightCm(v)
	return _u
}

// ClearHeightCm clears the value of the "height_cm" field.
func (_u *PatientUpdateOne) ClearHeightCm() *PatientUpdateOne {
	_u.mutation.ClearHeightCm()
	return _u
}

// SetWeightKg sets the "weight_kg" field.
func (_u *PatientUpdateOne) SetWeightKg(v float64) *PatientUpdateOne {
	_u.mutation.ResetWeightKg()
	_u.mutation.SetWeightKg(v)
	return _u
}

// SetNillableWeightKg sets the "weight_kg" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableWeightKg(v *float64) *PatientUpdateOne {
	if v != nil {
		_u.SetWeightKg(*v)
	}
	return _u
}

// AddWeightKg adds value to the "weight_kg" field.
func (_u *PatientUpdateOne) AddWeightKg(v float64) *PatientUpdateOne {
	_u.mutation.AddWeightKg(v)
	return _u
}

// ClearWeightKg clears the value of the "weight_kg" field.
func (_u *PatientUpdateOne) ClearWeightKg() *PatientUpdateOne {
	_u.mutation.ClearWeightKg()
	return _u
}

// SetPreferredContactMethod sets the "preferred_contact_method" field.
func (_u *PatientUpdateOne) SetPreferredContactMethod(v patient.PreferredContactMethod) *PatientUpdateOne {
	_u.mutation.SetPreferredContactMethod(v)
	return _u
}

// SetNillablePreferredContactMethod sets the "preferred_contact_method" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillablePreferredContactMethod(v *patient.PreferredContactMethod) *PatientUpdateOne {
	if v != nil {
		_u.SetPreferredContactMethod(*v)
	}
	return _u
}

// SetPreferredLanguage sets the "preferred_language" field.
func (_u *PatientUpdateOne) SetPreferredLanguage(v string) *PatientUpdateOne {
	_u.mutation.SetPreferredLanguage(v)
	return _u
}

// SetNillablePreferredLanguage sets the "preferred_language" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillablePreferredLanguage(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetPreferredLanguage(*v)
	}
	return _u
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (_u *PatientUpdateOne) SetInsuranceProvider(v string) *PatientUpdateOne {
	_u.mutation.SetInsuranceProvider(v)
	return _u
}

// SetNillableInsuranceProvider sets the "insurance_provider" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableInsuranceProvider(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetInsuranceProvider(*v)
	}
	return _u
}

// ClearInsuranceProvider clears the value of the "insurance_provider" field.
func (_u *PatientUpdateOne) ClearInsuranceProvider() *PatientUpdateOne {
	_u.mutation.ClearInsuranceProvider()
	return _u
}

// SetInsuranceNumber sets the "insurance_number" field.
func (_u *PatientUpdateOne) SetInsuranceNumber(v string) *PatientUpdateOne {
	_u.mutation.SetInsuranceNumber(v)
	return _u
}

// SetNillableInsuranceNumber sets the "insurance_number" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableInsuranceNumber(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetInsuranceNumber(*v)
	}
	return _u
}

// ClearInsuranceNumber clears the value of the "insurance_number" field.
func (_u *PatientUpdateOne) ClearInsuranceNumber() *PatientUpdateOne {
	_u.mutation.ClearInsuranceNumber()
	return _u
}

// SetInsuranceValidUntil sets the "insurance_valid_until" field.
func (_u *PatientUpdateOne) SetInsuranceValidUntil(v time.Time) *PatientUpdateOne {
	_u.mutation.SetInsuranceValidUntil(v)
	return _u
}

// SetNillableInsuranceValidUntil sets the "insurance_valid_until" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableInsuranceValidUntil(v *time.Time) *PatientUpdateOne {
	if v != nil {
		_u.SetInsuranceValidUntil(*v)
	}
	return _u
}

// ClearInsuranceValidUntil clears the value of the "insurance_valid_until" field.
func (_u *PatientUpdateOne) ClearInsuranceValidUntil() *PatientUpdateOne {
	_u.mutation.ClearInsuranceValidUntil()
	return _u
}

// SetReferredByID sets the "referred_by_id" field.
func (_u *PatientUpdateOne) SetReferredByID(v uuid.UUID) *PatientUpdateOne {
	_u.mutation.SetReferredByID(v)
	return _u
}

// SetNillableReferredByID sets the "referred_by_id" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableReferredByID(v *uuid.UUID) *PatientUpdateOne {
	if v != nil {
		_u.SetReferredByID(*v)
	}
	return _u
}

// ClearReferredByID clears the value of the "referred_by_id" field.
func (_u *PatientUpdateOne) ClearReferredByID() *PatientUpdateOne {
	_u.mutation.ClearReferredByID()
	return _u
}

// SetReferralSource sets the "referral_source" field.
func (_u *PatientUpdateOne) SetReferralSource(v patient.ReferralSource) *PatientUpdateOne {
	_u.mutation.SetReferralSource(v)
	return _u
}

// SetNillableReferralSource sets the "referral_source" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableReferralSource(v *patient.ReferralSource) *PatientUpdateOne {
	if v != nil {
		_u.SetReferralSource(*v)
	}
	return _u
}

// ClearReferralSource clears the value of the "referral_source" field.
func (_u *PatientUpdateOne) ClearReferralSource() *PatientUpdateOne {
	_u.mutation.ClearReferralSource()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PatientUpdateOne) SetIsActive(v bool) *PatientUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableIsActive(v *bool) *PatientUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *PatientUpdateOne) SetUser(v *User) *PatientUpdateOne {
	return _u.SetUserID(v.ID)
}

// SetReferredBy sets the "referred_by" edge to the Patient entity.
func (_u *PatientUpdateOne) SetReferredBy(v *Patient) *PatientUpdateOne {
	return _u.SetReferredByID(v.ID)
}

// AddReferralIDs adds the "referrals" edge to the Patient entity by IDs.
func (_u *PatientUpdateOne) AddReferralIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.AddReferralIDs(ids...)
	return _u
}

// AddReferrals adds the "referrals" edges to the Patient entity.
func (_u *PatientUpdateOne) AddReferrals(v ...*Patient) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReferralIDs(ids...)
}

// AddMedicalHistoryIDs adds the "medical_history" edge to the MedicalHistory entity by IDs.
func (_u *PatientUpdateOne) AddMedicalHistoryIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.AddMedicalHistoryIDs(ids...)
	return _u
}

// AddMedicalHistory adds the "medical_history" edges to the MedicalHistory entity.
func (_u *PatientUpdateOne) AddMedicalHistory(v ...*MedicalHistory) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMedicalHistoryIDs(ids...)
}

// AddDocumentIDs adds the "documents" edge to the PatientDocument entity by IDs.
func (_u *PatientUpdateOne) AddDocumentIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the PatientDocument entity.
func (_u *PatientUpdateOne) AddDocuments(v ...*PatientDocument) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the PatientMutation object of the builder.
func (_u *PatientUpdateOne) Mutation() *PatientMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *PatientUpdateOne) ClearUser() *PatientUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearReferredBy clears the "referred_by" edge to the Patient entity.
func (_u *PatientUpdateOne) ClearReferredBy() *PatientUpdateOne {
	_u.mutation.ClearReferredBy()
	return _u
}

// ClearReferrals clears all "referrals" edges to the Patient entity.
func (_u *PatientUpdateOne) ClearReferrals() *PatientUpdateOne {
	_u.mutation.ClearReferrals()
	return _u
}

// RemoveReferralIDs removes the "referrals" edge to Patient entities by IDs.
func (_u *PatientUpdateOne) RemoveReferralIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.RemoveReferralIDs(ids...)
	return _u
}

// RemoveReferrals removes "referrals" edges to Patient entities.
func (_u *PatientUpdateOne) RemoveReferrals(v ...*Patient) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReferralIDs(ids...)
}

// ClearMedicalHistory clears all "medical_history" edges to the MedicalHistory entity.
func (_u *PatientUpdateOne) ClearMedicalHistory() *PatientUpdateOne {
	_u.mutation.ClearMedicalHistory()
	return _u
}

// RemoveMedicalHistoryIDs removes the "medical_history" edge to MedicalHistory entities by IDs.
func (_u *PatientUpdateOne) RemoveMedicalHistoryIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.RemoveMedicalHistoryIDs(ids...)
	return _u
}

// RemoveMedicalHistory removes "medical_history" edges to MedicalHistory entities.
func (_u *PatientUpdateOne) RemoveMedicalHistory(v ...*MedicalHistory) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMedicalHistoryIDs(ids...)
}

// ClearDocuments clears all "documents" edges to the PatientDocument entity.
func (_u *PatientUpdateOne) ClearDocuments() *PatientUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to PatientDocument entities by IDs.
func (_u *PatientUpdateOne) RemoveDocumentIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to PatientDocument entities.
func (_u *PatientUpdateOne) RemoveDocuments(v ...*PatientDocument) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Where appends a list predicates to the PatientUpdate builder.
func (_u *PatientUpdateOne) Where(ps ...predicate.Patient) *PatientUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatientUpdateOne) Select(field string, fields ...string) *PatientUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Patient entity.
func (_u *PatientUpdateOne) Save(ctx context.Context) (*Patient, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientUpdateOne) SaveX(ctx context.Context) *Patient {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatientUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientUpdateOne) check() error {
	if v, ok := _u.mutation.MiddleName(); ok {
		if err := patient.MiddleNameValidator(v); err != nil {
			return &ValidationError{Name: "middle_name", err: fmt.Errorf(`repo: validator failed for field "Patient.middle_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PreferredName(); ok {
		if err := patient.PreferredNameValidator(v); err != nil {
			return &ValidationError{Name: "preferred_name", err: fmt.Errorf(`repo: validator failed for field "Patient.preferred_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Occupation(); ok {
		if err := patient.OccupationValidator(v); err != nil {
			return &ValidationError{Name: "occupation", err: fmt.Errorf(`repo: validator failed for field "Patient.occupation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BloodType(); ok {
		if err := patient.BloodTypeValidator(v); err != nil {
			return &ValidationError{Name: "blood_type", err: fmt.Errorf(`repo: validator failed for field "Patient.blood_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkinType(); ok {
		if err := patient.SkinTypeValidator(v); err != nil {
			return &ValidationError{Name: "skin_type", err: fmt.Errorf(`repo: validator failed for field "Patient.skin_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PreferredContactMethod(); ok {
		if err := patient.PreferredContactMethodValidator(v); err != nil {
			return &ValidationError{Name: "preferred_contact_method", err: fmt.Errorf(`repo: validator failed for field "Patient.preferred_contact_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PreferredLanguage(); ok {
		if err := patient.PreferredLanguageValidator(v); err != nil {
			return &ValidationError{Name: "preferred_language", err: fmt.Errorf(`repo: validator failed for field "Patient.preferred_language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InsuranceProvider(); ok {
		if err := patient.InsuranceProviderValidator(v); err != nil {
			return &ValidationError{Name: "insurance_provider", err: fmt.Errorf(`repo: validator failed for field "Patient.insurance_provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InsuranceNumber(); ok {
		if err := patient.InsuranceNumberValidator(v); err != nil {
			return &ValidationError{Name: "insurance_number", err: fmt.Errorf(`repo: validator failed for field "Patient.insurance_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReferralSource(); ok {
		if err := patient.ReferralSourceValidator(v); err != nil {
			return &ValidationError{Name: "referral_source", err: fmt.Errorf(`repo: validator failed for field "Patient.referral_source": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Patient.user"`)
	}
	return nil
}

func (_u *PatientUpdateOne) sqlSave(ctx context.Context) (_node *Patient, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patient.Table, patient.Columns, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Patient.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patient.FieldID)
		for _, f := range fields {
			if !patient.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != patient.FieldID {
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
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.MiddleName(); ok {
		_spec.SetField(patient.FieldMiddleName, field.TypeString, value)
	}
	if _u.mutation.MiddleNameCleared() {
		_spec.ClearField(patient.FieldMiddleName, field.TypeString)
	}
	if value, ok := _u.mutation.PreferredName(); ok {
		_spec.SetField(patient.FieldPreferredName, field.TypeString, value)
	}
	if _u.mutation.PreferredNameCleared() {
		_spec.ClearField(patient.FieldPreferredName, field.TypeString)
	}
	if value, ok := _u.mutation.Occupation(); ok {
		_spec.SetField(patient.FieldOccupation, field.TypeString, value)
	}
	if _u.mutation.OccupationCleared() {
		_spec.ClearField(patient.FieldOccupation, field.TypeString)
	}
	if value, ok := _u.mutation.BloodType(); ok {
		_spec.SetField(patient.FieldBloodType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SkinType(); ok {
		_spec.SetField(patient.FieldSkinType, field.TypeEnum, value)
	}
	if _u.mutation.SkinTypeCleared() {
		_spec.ClearField(patient.FieldSkinType, field.TypeEnum)
	}
	if value, ok := _u.mutation.HeightCm(); ok {
		_spec.SetField(patient.FieldHeightCm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHeightCm(); ok {
		_spec.AddField(patient.FieldHeightCm, field.TypeFloat64, value)
	}
	if _u.mutation.HeightCmCleared() {
		_spec.ClearField(patient.FieldHeightCm, field.TypeFloat64)
	}
	if value, ok := _u.mutation.WeightKg(); ok {
		_spec.SetField(patient.FieldWeightKg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeightKg(); ok {
		_spec.AddField(patient.FieldWeightKg, field.TypeFloat64, value)
	}
	if _u.mutation.WeightKgCleared() {
		_spec.ClearField(patient.FieldWeightKg, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PreferredContactMethod(); ok {
		_spec.SetField(patient.FieldPreferredContactMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PreferredLanguage(); ok {
		_spec.SetField(patient.FieldPreferredLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.InsuranceProvider(); ok {
		_spec.SetField(patient.FieldInsuranceProvider, field.TypeString, value)
	}
	if _u.mutation.InsuranceProviderCleared() {
		_spec.ClearField(patient.FieldInsuranceProvider, field.TypeString)
	}
	if value, ok := _u.mutation.InsuranceNumber(); ok {
		_spec.SetField(patient.FieldInsuranceNumber, field.TypeString, value)
	}
	if _u.mutation.InsuranceNumberCleared() {
		_spec.ClearField(patient.FieldInsuranceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.InsuranceValidUntil(); ok {
		_spec.SetField(patient.FieldInsuranceValidUntil, field.TypeTime, value)
	}
	if _u.mutation.InsuranceValidUntilCleared() {
		_spec.ClearField(patient.FieldInsuranceValidUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.ReferralSource(); ok {
		_spec.SetField(patient.FieldReferralSource, field.TypeEnum, value)
	}
	if _u.mutation.ReferralSourceCleared() {
		_spec.ClearField(patient.FieldReferralSource, field.TypeEnum)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(patient.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReferredByCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReferredByIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReferralsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReferralsIDs(); len(nodes) > 0 && !_u.mutation.ReferralsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReferralsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MedicalHistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMedicalHistoryIDs(); len(nodes) > 0 && !_u.mutation.MedicalHistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MedicalHistoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Patient{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
