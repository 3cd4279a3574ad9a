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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/user"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/userprofile"
)

// UserProfileUpdate is the builder for updating UserProfile entities.
type UserProfileUpdate struct {
	config
	hooks    []Hook
	mutation *UserProfileMutation
}

// Where appends a list predicates to the UserProfileUpdate builder.
func (_u *UserProfileUpdate) Where(ps ...predicate.UserProfile) *UserProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserProfileUpdate) SetUpdatedAt(v time.Time) *UserProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UserProfileUpdate) SetUserID(v uuid.UUID) *UserProfileUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableUserID(v *uuid.UUID) *UserProfileUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetGender sets the "gender" field.
func (_u *UserProfileUpdate) SetGender(v userprofile.Gender) *UserProfileUpdate {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableGender(v *userprofile.Gender) *UserProfileUpdate {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// ClearGender clears the value of the "gender" field.
func (_u *UserProfileUpdate) ClearGender() *UserProfileUpdate {
	_u.mutation.ClearGender()
	return _u
}

// SetAddress sets the "address" field.
func (_u *UserProfileUpdate) SetAddress(v string) *UserProfileUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableAddress(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *UserProfileUpdate) ClearAddress() *UserProfileUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetCity sets the "city" field.
func (_u *UserProfileUpdate) SetCity(v string) *UserProfileUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableCity(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *UserProfileUpdate) ClearCity() *UserProfileUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetEmergencyContactName sets the "emergency_contact_name" field.
func (_u *UserProfileUpdate) SetEmergencyContactName(v string) *UserProfileUpdate {
	_u.mutation.SetEmergencyContactName(v)
	return _u
}

// SetNillableEmergencyContactName sets the "emergency_contact_name" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableEmergencyContactName(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetEmergencyContactName(*v)
	}
	return _u
}

// ClearEmergencyContactName clears the value of the "emergency_contact_name" field.
func (_u *UserProfileUpdate) ClearEmergencyContactName() *UserProfileUpdate {
	_u.mutation.ClearEmergencyContactName()
	return _u
}

// SetEmergencyContactPhone sets the "emergency_contact_phone" field.
func (_u *UserProfileUpdate) SetEmergencyContactPhone(v string) *UserProfileUpdate {
	_u.mutation.SetEmergencyContactPhone(v)
	return _u
}

// SetNillableEmergencyContactPhone sets the "emergency_contact_phone" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableEmergencyContactPhone(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetEmergencyContactPhone(*v)
	}
	return _u
}

// ClearEmergencyContactPhone clears the value of the "emergency_contact_phone" field.
func (_u *UserProfileUpdate) ClearEmergencyContactPhone() *UserProfileUpdate {
	_u.mutation.ClearEmergencyContactPhone()
	return _u
}

// SetEmergencyContactRelationship sets the "emergency_contact_relationship" field.
func (_u *UserProfileUpdate) SetEmergencyContactRelationship(v string) *UserProfileUpdate {
	_u.mutation.SetEmergencyContactRelationship(v)
	return _u
}

// SetNillableEmergencyContactRelationship sets the "emergency_contact_relationship" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableEmergencyContactRelationship(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetEmergencyContactRelationship(*v)
	}
	return _u
}

// ClearEmergencyContactRelationship clears the value of the "emergency_contact_relationship" field.
func (_u *UserProfileUpdate) ClearEmergencyContactRelationship() *UserProfileUpdate {
	_u.mutation.ClearEmergencyContactRelationship()
	return _u
}

// SetMedicalConditions sets the "medical_conditions" field.
func (_u *UserProfileUpdate) SetMedicalConditions(v string) *UserProfileUpdate {
	_u.mutation.SetMedicalConditions(v)
	return _u
}

// SetNillableMedicalConditions sets the "medical_conditions" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableMedicalConditions(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetMedicalConditions(*v)
	}
	return _u
}

// ClearMedicalConditions clears the value of the "medical_conditions" field.
func (_u *UserProfileUpdate) ClearMedicalConditions() *UserProfileUpdate {
	_u.mutation.ClearMedicalConditions()
	return _u
}

// SetAllergies sets the "allergies" field.
func (_u *UserProfileUpdate) SetAllergies(v string) *UserProfileUpdate {
	_u.mutation.SetAllergies(v)
	return _u
}

// SetNillableAllergies sets the "allergies" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableAllergies(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetAllergies(*v)
	}
	return _u
}

// ClearAllergies clears the value of the "allergies" field.
func (_u *UserProfileUpdate) ClearAllergies() *UserProfileUpdate {
	_u.mutation.ClearAllergies()
	return _u
}

// SetMedications sets the "medications" field.
func (_u *UserProfileUpdate) SetMedications(v string) *UserProfileUpdate {
	_u.mutation.SetMedications(v)
	return _u
}

// SetNillableMedications sets the "medications" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableMedications(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetMedications(*v)
	}
	return _u
}

// ClearMedications clears the value of the "medications" field.
func (_u *UserProfileUpdate) ClearMedications() *UserProfileUpdate {
	_u.mutation.ClearMedications()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *UserProfileUpdate) SetUser(v *User) *UserProfileUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the UserProfileMutation object of the builder.
func (_u *UserProfileUpdate) Mutation() *UserProfileMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *UserProfileUpdate) ClearUser() *UserProfileUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserProfileUpdate) check() error {
	if v, ok := _u.mutation.Gender(); ok {
		if err := userprofile.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`repo: validator failed for field "UserProfile.gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := userprofile.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`repo: validator failed for field "UserProfile.city": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmergencyContactName(); ok {
		if err := userprofile.EmergencyContactNameValidator(v); err != nil {
			return &ValidationError{Name: "emergency_contact_name", err: fmt.Errorf(`repo: validator failed for field "UserProfile.emergency_contact_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmergencyContactPhone(); ok {
		if err := userprofile.EmergencyContactPhoneValidator(v); err != nil {
			return &ValidationError{Name: "emergency_contact_phone", err: fmt.Errorf(`repo: validator failed for field "UserProfile.emergency_contact_phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmergencyContactRelationship(); ok {
		if err := userprofile.EmergencyContactRelationshipValidator(v); err != nil {
			return &ValidationError{Name: "emergency_contact_relationship", err: fmt.Errorf(`repo: validator failed for field "UserProfile.emergency_contact_relationship": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "UserProfile.user"`)
	}
	return nil
}

func (_u *UserProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userprofile.Table, userprofile.Columns, sqlgraph.NewFieldSpec(userprofile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(userprofile.FieldGender, field.TypeEnum, value)
	}
	if _u.mutation.GenderCleared() {
		_spec.ClearField(userprofile.FieldGender, field.TypeEnum)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(userprofile.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(userprofile.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(userprofile.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(userprofile.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.EmergencyContactName(); ok {
		_spec.SetField(userprofile.FieldEmergencyContactName, field.TypeString, value)
	}
	if _u.mutation.EmergencyContactNameCleared() {
		_spec.ClearField(userprofile.FieldEmergencyContactName, field.TypeString)
	}
	if value, ok := _u.mutation.EmergencyContactPhone(); ok {
		_spec.SetField(userprofile.FieldEmergencyContactPhone, field.TypeString, value)
	}
	if _u.mutation.EmergencyContactPhoneCleared() {
		_spec.ClearField(userprofile.FieldEmergencyContactPhone, field.TypeString)
	}
	if value, ok := _u.mutation.EmergencyContactRelationship(); ok {
		_spec.SetField(userprofile.FieldEmergencyContactRelationship, field.TypeString, value)
	}
	if _u.mutation.EmergencyContactRelationshipCleared() {
		_spec.ClearField(userprofile.FieldEmergencyContactRelationship, field.TypeString)
	}
	if value, ok := _u.mutation.MedicalConditions(); ok {
		_spec.SetField(userprofile.FieldMedicalConditions, field.TypeString, value)
	}
	if _u.mutation.MedicalConditionsCleared() {
		_spec.ClearField(userprofile.FieldMedicalConditions, field.TypeString)
	}
	if value, ok := _u.mutation.Allergies(); ok {
		_spec.SetField(userprofile.FieldAllergies, field.TypeString, value)
	}
	if _u.mutation.AllergiesCleared() {
		_spec.ClearField(userprofile.FieldAllergies, field.TypeString)
	}
	if value, ok := _u.mutation.Medications(); ok {
		_spec.SetField(userprofile.FieldMedications, field.TypeString, value)
	}
	if _u.mutation.MedicationsCleared() {
		_spec.ClearField(userprofile.FieldMedications, field.TypeString)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   userprofile.UserTable,
			Columns: []string{userprofile.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   userprofile.UserTable,
			Columns: []string{userprofile.UserColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserProfileUpdateOne is the builder for updating a single UserProfile entity.
type UserProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserProfileMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserProfileUpdateOne) SetUpdatedAt(v time.Time) *UserProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UserProfileUpdateOne) SetUserID(v uuid.UUID) *UserProfileUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableUserID(v *uuid.UUID) *UserProfileUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetGender sets the "gender" field.
func (_u *UserProfileUpdateOne) SetGender(v userprofile.Gender) *UserProfileUpdateOne {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableGender(v *userprofile.Gender) *UserProfileUpdateOne {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// ClearGender clears the value of the "gender" field.
func (_u *UserProfileUpdateOne) ClearGender() *UserProfileUpdateOne {
	_u.mutation.ClearGender()
	return _u
}

// SetAddress sets the "address" field.
func (_u *UserProfileUpdateOne) SetAddress(v string) *UserProfileUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableAddress(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *UserProfileUpdateOne) ClearAddress() *UserProfileUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetCity sets the "city" field.
func (_u *UserProfileUpdateOne) SetCity(v string) *UserProfileUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableCity(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *UserProfileUpdateOne) ClearCity() *UserProfileUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetEmergencyContactName sets the "emergency_contact_name" field.
func (_u *UserProfileUpdateOne) SetEmergencyContactName(v string) *UserProfileUpdateOne {
	_u.mutation.SetEmergencyContactName(v)
	return _u
}

// SetNillableEmergencyContactName sets the "emergency_contact_name" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableEmergencyContactName(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetEmergencyContactName(*v)
	}
	return _u
}

// ClearEmergencyContactName clears the value of the "emergency_contact_name" field.
func (_u *UserProfileUpdateOne) ClearEmergencyContactName() *UserProfileUpdateOne {
	_u.mutation.ClearEmergencyContactName()
	return _u
}

// SetEmergencyContactPhone sets the "emergency_contact_phone" field.
func (_u *UserProfileUpdateOne) SetEmergencyContactPhone(v string) *UserProfileUpdateOne {
	_u.mutation.SetEmergencyContactPhone(v)
	return _u
}

// SetNillableEmergencyContactPhone sets the "emergency_contact_phone" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableEmergencyContactPhone(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetEmergencyContactPhone(*v)
	}
	return _u
}

// ClearEmergencyContactPhone clears the value of the "emergency_contact_phone" field.
func (_u *UserProfileUpdateOne) ClearEmergencyContactPhone() *UserProfileUpdateOne {
	_u.mutation.ClearEmergencyContactPhone()
	return _u
}

// SetEmergencyContactRelationship sets the "emergency_contact_relationship" field.
func (_u *UserProfileUpdateOne) SetEmergencyContactRelationship(v string) *UserProfileUpdateOne {
	_u.mutation.SetEmergencyContactRelationship(v)
	return _u
}

// SetNillableEmergencyContactRelationship sets the "emergency_contact_relationship" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableEmergencyContactRelationship(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetEmergencyContactRelationship(*v)
	}
	return _u
}

// ClearEmergencyContactRelationship clears the value of the "emergency_contact_relationship" field.
func (_u *UserProfileUpdateOne) ClearEmergencyContactRelationship() *UserProfileUpdateOne {
	_u.mutation.ClearEmergencyContactRelationship()
	return _u
}

// SetMedicalConditions sets the "medical_conditions" field.
func (_u *UserProfileUpdateOne) SetMedicalConditions(v string) *UserProfileUpdateOne {
	_u.mutation.SetMedicalConditions(v)
	return _u
}

// SetNillableMedicalConditions sets the "medical_conditions" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableMedicalConditions(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetMedicalConditions(*v)
	}
	return _u
}

// ClearMedicalConditions clears the value of the "medical_conditions" field.
func (_u *UserProfileUpdateOne) ClearMedicalConditions() *UserProfileUpdateOne {
	_u.mutation.ClearMedicalConditions()
	return _u
}

// SetAllergies sets the "allergies" field.
func (_u *UserProfileUpdateOne) SetAllergies(v string) *UserProfileUpdateOne {
	_u.mutation.SetAllergies(v)
	return _u
}

// SetNillableAllergies sets the "allergies" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableAllergies(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetAllergies(*v)
	}
	return _u
}

// ClearAllergies clears the value of the "allergies" field.
func (_u *UserProfileUpdateOne) ClearAllergies() *UserProfileUpdateOne {
	_u.mutation.ClearAllergies()
	return _u
}

// SetMedications sets the "medications" field.
func (_u *UserProfileUpdateOne) SetMedications(v string) *UserProfileUpdateOne {
	_u.mutation.SetMedications(v)
	return _u
}

// SetNillableMedications sets the "medications" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableMedications(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetMedications(*v)
	}
	return _u
}

// ClearMedications clears the value of the "medications" field.
func (_u *UserProfileUpdateOne) ClearMedications() *UserProfileUpdateOne {
	_u.mutation.ClearMedications()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *UserProfileUpdateOne) SetUser(v *User) *UserProfileUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the UserProfileMutation object of the builder.
func (_u *UserProfileUpdateOne) Mutation() *UserProfileMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *UserProfileUpdateOne) ClearUser() *UserProfileUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the UserProfileUpdate builder.
func (_u *UserProfileUpdateOne) Where(ps ...predicate.UserProfile) *UserProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserProfileUpdateOne) Select(field string, fields ...string) *UserProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserProfile entity.
func (_u *UserProfileUpdateOne) Save(ctx context.Context) (*UserProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserProfileUpdateOne) SaveX(ctx context.Context) *UserProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserProfileUpdateOne) check() error {
	if v, ok := _u.mutation.Gender(); ok {
		if err := userprofile.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`repo: validator failed for field "UserProfile.gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := userprofile.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`repo: validator failed for field "UserProfile.city": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmergencyContactName(); ok {
		if err := userprofile.EmergencyContactNameValidator(v); err != nil {
			return &ValidationError{Name: "emergency_contact_name", err: fmt.Errorf(`repo: validator failed for field "UserProfile.emergency_contact_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmergencyContactPhone(); ok {
		if err := userprofile.EmergencyContactPhoneValidator(v); err != nil {
			return &ValidationError{Name: "emergency_contact_phone", err: fmt.Errorf(`repo: validator failed for field "UserProfile.emergency_contact_phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmergencyContactRelationship(); ok {
		if err := userprofile.EmergencyContactRelationshipValidator(v); err != nil {
			return &ValidationError{Name: "emergency_contact_relationship", err: fmt.Errorf(`repo: validator failed for field "UserProfile.emergency_contact_relationship": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "UserProfile.user"`)
	}
	return nil
}

func (_u *UserProfileUpdateOne) sqlSave(ctx context.Context) (_node *UserProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userprofile.Table, userprofile.Columns, sqlgraph.NewFieldSpec(userprofile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "UserProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userprofile.FieldID)
		for _, f := range fields {
			if !userprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != userprofile.FieldID {
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
		_spec.SetField(userprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(userprofile.FieldGender, field.TypeEnum, value)
	}
	if _u.mutation.GenderCleared() {
		_spec.ClearField(userprofile.FieldGender, field.TypeEnum)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(userprofile.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(userprofile.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(userprofile.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(userprofile.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.EmergencyContactName(); ok {
		_spec.SetField(userprofile.FieldEmergencyContactName, field.TypeString, value)
	}
	if _u.mutation.EmergencyContactNameCleared() {
		_spec.ClearField(userprofile.FieldEmergencyContactName, field.TypeString)
	}
	if value, ok := _u.mutation.EmergencyContactPhone(); ok {
		_spec.SetField(userprofile.FieldEmergencyContactPhone, field.TypeString, value)
	}
	if _u.mutation.EmergencyContactPhoneCleared() {
		_spec.ClearField(userprofile.FieldEmergencyContactPhone, field.TypeString)
	}
	if value, ok := _u.mutation.EmergencyContactRelationship(); ok {
		_spec.SetField(userprofile.FieldEmergencyContactRelationship, field.TypeString, value)
	}
	if _u.mutation.EmergencyContactRelationshipCleared() {
		_spec.ClearField(userprofile.FieldEmergencyContactRelationship, field.TypeString)
	}
	if value, ok := _u.mutation.MedicalConditions(); ok {
		_spec.SetField(userprofile.FieldMedicalConditions, field.TypeString, value)
	}
	if _u.mutation.MedicalConditionsCleared() {
		_spec.ClearField(userprofile.FieldMedicalConditions, field.TypeString)
	}
	if value, ok := _u.mutation.Allergies(); ok {
		_spec.SetField(userprofile.FieldAllergies, field.TypeString, value)
	}
	if _u.mutation.AllergiesCleared() {
		_spec.ClearField(userprofile.FieldAllergies, field.TypeString)
	}
	if value, ok := _u.mutation.Medications(); ok {
		_spec.SetField(userprofile.FieldMedications, field.TypeString, value)
	}
	if _u.mutation.MedicationsCleared() {
		_spec.ClearField(userprofile.FieldMedications, field.TypeString)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   userprofile.UserTable,
			Columns: []string{userprofile.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   userprofile.UserTable,
			Columns: []string{userprofile.UserColumn},
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
	_node = &UserProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
