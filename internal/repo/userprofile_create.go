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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/user"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/userprofile"
)

// UserProfileCreate is the builder for creating a UserProfile entity.
type UserProfileCreate struct {
	config
	mutation *UserProfileMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserProfileCreate) SetCreatedAt(v time.Time) *UserProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableCreatedAt(v *time.Time) *UserProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UserProfileCreate) SetUpdatedAt(v time.Time) *UserProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableUpdatedAt(v *time.Time) *UserProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *UserProfileCreate) SetUserID(v uuid.UUID) *UserProfileCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetGender sets the "gender" field.
func (_c *UserProfileCreate) SetGender(v userprofile.Gender) *UserProfileCreate {
	_c.mutation.SetGender(v)
	return _c
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableGender(v *userprofile.Gender) *UserProfileCreate {
	if v != nil {
		_c.SetGender(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *UserProfileCreate) SetAddress(v string) *UserProfileCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableAddress(v *string) *UserProfileCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *UserProfileCreate) SetCity(v string) *UserProfileCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableCity(v *string) *UserProfileCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetEmergencyContactName sets the "emergency_contact_name" field.
func (_c *UserProfileCreate) SetEmergencyContactName(v string) *UserProfileCreate {
	_c.mutation.SetEmergencyContactName(v)
	return _c
}

// SetNillableEmergencyContactName sets the "emergency_contact_name" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableEmergencyContactName(v *string) *UserProfileCreate {
	if v != nil {
		_c.SetEmergencyContactName(*v)
	}
	return _c
}

// SetEmergencyContactPhone sets the "emergency_contact_phone" field.
func (_c *UserProfileCreate) SetEmergencyContactPhone(v string) *UserProfileCreate {
	_c.mutation.SetEmergencyContactPhone(v)
	return _c
}

// SetNillableEmergencyContactPhone sets the "emergency_contact_phone" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableEmergencyContactPhone(v *string) *UserProfileCreate {
	if v != nil {
		_c.SetEmergencyContactPhone(*v)
	}
	return _c
}

// SetEmergencyContactRelationship sets the "emergency_contact_relationship" field.
func (_c *UserProfileCreate) SetEmergencyContactRelationship(v string) *UserProfileCreate {
	_c.mutation.SetEmergencyContactRelationship(v)
	return _c
}

// SetNillableEmergencyContactRelationship sets the "emergency_contact_relationship" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableEmergencyContactRelationship(v *string) *UserProfileCreate {
	if v != nil {
		_c.SetEmergencyContactRelationship(*v)
	}
	return _c
}

// SetMedicalConditions sets the "medical_conditions" field.
func (_c *UserProfileCreate) SetMedicalConditions(v string) *UserProfileCreate {
	_c.mutation.SetMedicalConditions(v)
	return _c
}

// SetNillableMedicalConditions sets the "medical_conditions" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableMedicalConditions(v *string) *UserProfileCreate {
	if v != nil {
		_c.SetMedicalConditions(*v)
	}
	return _c
}

// SetAllergies sets the "allergies" field.
func (_c *UserProfileCreate) SetAllergies(v string) *UserProfileCreate {
	_c.mutation.SetAllergies(v)
	return _c
}

// SetNillableAllergies sets the "allergies" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableAllergies(v *string) *UserProfileCreate {
	if v != nil {
		_c.SetAllergies(*v)
	}
	return _c
}

// SetMedications sets the "medications" field.
func (_c *UserProfileCreate) SetMedications(v string) *UserProfileCreate {
	_c.mutation.SetMedications(v)
	return _c
}

// SetNillableMedications sets the "medications" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableMedications(v *string) *UserProfileCreate {
	if v != nil {
		_c.SetMedications(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserProfileCreate) SetID(v uuid.UUID) *UserProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableID(v *uuid.UUID) *UserProfileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *UserProfileCreate) SetUser(v *User) *UserProfileCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the UserProfileMutation object of the builder.
func (_c *UserProfileCreate) Mutation() *UserProfileMutation {
	return _c.mutation
}

// Save creates the UserProfile in the database.
func (_c *UserProfileCreate) Save(ctx context.Context) (*UserProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserProfileCreate) SaveX(ctx context.Context) *UserProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserProfileCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := userprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := userprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := userprofile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserProfileCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "UserProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "UserProfile.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "UserProfile.user_id"`)}
	}
	if v, ok := _c.mutation.Gender(); ok {
		if err := userprofile.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`repo: validator failed for field "UserProfile.gender": %w`, err)}
		}
	}
	if v, ok := _c.mutation.City(); ok {
		if err := userprofile.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`repo: validator failed for field "UserProfile.city": %w`, err)}
		}
	}
	if v, ok := _c.mutation.EmergencyContactName(); ok {
		if err := userprofile.EmergencyContactNameValidator(v); err != nil {
			return &ValidationError{Name: "emergency_contact_name", err: fmt.Errorf(`repo: validator failed for field "UserProfile.emergency_contact_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.EmergencyContactPhone(); ok {
		if err := userprofile.EmergencyContactPhoneValidator(v); err != nil {
			return &ValidationError{Name: "emergency_contact_phone", err: fmt.Errorf(`repo: validator failed for field "UserProfile.emergency_contact_phone": %w`, err)}
		}
	}
	if v, ok := _c.mutation.EmergencyContactRelationship(); ok {
		if err := userprofile.EmergencyContactRelationshipValidator(v); err != nil {
			return &ValidationError{Name: "emergency_contact_relationship", err: fmt.Errorf(`repo: validator failed for field "UserProfile.emergency_contact_relationship": %w`, err)}
		}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`repo: missing required edge "UserProfile.user"`)}
	}
	return nil
}

func (_c *UserProfileCreate) sqlSave(ctx context.Context) (*UserProfile, error) {
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

func (_c *UserProfileCreate) createSpec() (*UserProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &UserProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userprofile.Table, sqlgraph.NewFieldSpec(userprofile.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(userprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(userprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Gender(); ok {
		_spec.SetField(userprofile.FieldGender, field.TypeEnum, value)
		_node.Gender = &value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(userprofile.FieldAddress, field.TypeString, value)
		_node.Address = &value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(userprofile.FieldCity, field.TypeString, value)
		_node.City = &value
	}
	if value, ok := _c.mutation.EmergencyContactName(); ok {
		_spec.SetField(userprofile.FieldEmergencyContactName, field.TypeString, value)
		_node.EmergencyContactName = &value
	}
	if value, ok := _c.mutation.EmergencyContactPhone(); ok {
		_spec.SetField(userprofile.FieldEmergencyContactPhone, field.TypeString, value)
		_node.EmergencyContactPhone = &value
	}
	if value, ok := _c.mutation.EmergencyContactRelationship(); ok {
		_spec.SetField(userprofile.FieldEmergencyContactRelationship, field.TypeString, value)
		_node.EmergencyContactRelationship = &value
	}
	if value, ok := _c.mutation.MedicalConditions(); ok {
		_spec.SetField(userprofile.FieldMedicalConditions, field.TypeString, value)
		_node.MedicalConditions = &value
	}
	if value, ok := _c.mutation.Allergies(); ok {
		_spec.SetField(userprofile.FieldAllergies, field.TypeString, value)
		_node.Allergies = &value
	}
	if value, ok := _c.mutation.Medications(); ok {
		_spec.SetField(userprofile.FieldMedications, field.TypeString, value)
		_node.Medications = &value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// UserProfileCreateBulk is the builder for creating many UserProfile entities in bulk.
type UserProfileCreateBulk struct {
	config
	err      error
	builders []*UserProfileCreate
}

// Save creates the UserProfile entities in the database.
func (_c *UserProfileCreateBulk) Save(ctx context.Context) ([]*UserProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserProfileMutation)
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
func (_c *UserProfileCreateBulk) SaveX(ctx context.Context) []*UserProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
