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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/service"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/servicedoctorspecialty"
)

// ServiceDoctorSpecialtyCreate is the builder for creating a ServiceDoctorSpecialty entity.
type ServiceDoctorSpecialtyCreate struct {
	config
	mutation *ServiceDoctorSpecialtyMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ServiceDoctorSpecialtyCreate) SetCreatedAt(v time.Time) *ServiceDoctorSpecialtyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ServiceDoctorSpecialtyCreate) SetNillableCreatedAt(v *time.Time) *ServiceDoctorSpecialtyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetServiceID sets the "service_id" field.
func (_c *ServiceDoctorSpecialtyCreate) SetServiceID(v uuid.UUID) *ServiceDoctorSpecialtyCreate {
	_c.mutation.SetServiceID(v)
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *ServiceDoctorSpecialtyCreate) SetDoctorID(v uuid.UUID) *ServiceDoctorSpecialtyCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetProficiencyLevel sets the "proficiency_level" field.
func (_c *ServiceDoctorSpecialtyCreate) SetProficiencyLevel(v servicedoctorspecialty.ProficiencyLevel) *ServiceDoctorSpecialtyCreate {
	_c.mutation.SetProficiencyLevel(v)
	return _c
}

// SetNillableProficiencyLevel sets the "proficiency_level" field if the given value is not nil.
func (_c *ServiceDoctorSpecialtyCreate) SetNillableProficiencyLevel(v *servicedoctorspecialty.ProficiencyLevel) *ServiceDoctorSpecialtyCreate {
	if v != nil {
		_c.SetProficiencyLevel(*v)
	}
	return _c
}

// SetIsPreferredProvider sets the "is_preferred_provider" field.
func (_c *ServiceDoctorSpecialtyCreate) SetIsPreferredProvider(v bool) *ServiceDoctorSpecialtyCreate {
	_c.mutation.SetIsPreferredProvider(v)
	return _c
}

// SetNillableIsPreferredProvider sets the "is_preferred_provider" field if the given value is not nil.
func (_c *ServiceDoctorSpecialtyCreate) SetNillableIsPreferredProvider(v *bool) *ServiceDoctorSpecialtyCreate {
	if v != nil {
		_c.SetIsPreferredProvider(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ServiceDoctorSpecialtyCreate) SetID(v uuid.UUID) *ServiceDoctorSpecialtyCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ServiceDoctorSpecialtyCreate) SetNillableID(v *uuid.UUID) *ServiceDoctorSpecialtyCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetService sets the "service" edge to the Service entity.
func (_c *ServiceDoctorSpecialtyCreate) SetService(v *Service) *ServiceDoctorSpecialtyCreate {
	return _c.SetServiceID(v.ID)
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_c *ServiceDoctorSpecialtyCreate) SetDoctor(v *Doctor) *ServiceDoctorSpecialtyCreate {
	return _c.SetDoctorID(v.ID)
}

// Mutation returns the ServiceDoctorSpecialtyMutation object of the builder.
func (_c *ServiceDoctorSpecialtyCreate) Mutation() *ServiceDoctorSpecialtyMutation {
	return _c.mutation
}

// Save creates the ServiceDoctorSpecialty in the database.
func (_c *ServiceDoctorSpecialtyCreate) Save(ctx context.Context) (*ServiceDoctorSpecialty, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ServiceDoctorSpecialtyCreate) SaveX(ctx context.Context) *ServiceDoctorSpecialty {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceDoctorSpecialtyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceDoctorSpecialtyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ServiceDoctorSpecialtyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := servicedoctorspecialty.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ProficiencyLevel(); !ok {
		v := servicedoctorspecialty.DefaultProficiencyLevel
		_c.mutation.SetProficiencyLevel(v)
	}
	if _, ok := _c.mutation.IsPreferredProvider(); !ok {
		v := servicedoctorspecialty.DefaultIsPreferredProvider
		_c.mutation.SetIsPreferredProvider(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := servicedoctorspecialty.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ServiceDoctorSpecialtyCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ServiceDoctorSpecialty.created_at"`)}
	}
	if _, ok := _c.mutation.ServiceID(); !ok {
		return &ValidationError{Name: "service_id", err: errors.New(`repo: missing required field "ServiceDoctorSpecialty.service_id"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "ServiceDoctorSpecialty.doctor_id"`)}
	}
	if _, ok := _c.mutation.ProficiencyLevel(); !ok {
		return &ValidationError{Name: "proficiency_level", err: errors.New(`repo: missing required field "ServiceDoctorSpecialty.proficiency_level"`)}
	}
	if v, ok := _c.mutation.ProficiencyLevel(); ok {
		if err := servicedoctorspecialty.ProficiencyLevelValidator(v); err != nil {
			return &ValidationError{Name: "proficiency_level", err: fmt.Errorf(`repo: validator failed for field "ServiceDoctorSpecialty.proficiency_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsPreferredProvider(); !ok {
		return &ValidationError{Name: "is_preferred_provider", err: errors.New(`repo: missing required field "ServiceDoctorSpecialty.is_preferred_provider"`)}
	}
	if len(_c.mutation.ServiceIDs()) == 0 {
		return &ValidationError{Name: "service", err: errors.New(`repo: missing required edge "ServiceDoctorSpecialty.service"`)}
	}
	if len(_c.mutation.DoctorIDs()) == 0 {
		return &ValidationError{Name: "doctor", err: errors.New(`repo: missing required edge "ServiceDoctorSpecialty.doctor"`)}
	}
	return nil
}

func (_c *ServiceDoctorSpecialtyCreate) sqlSave(ctx context.Context) (*ServiceDoctorSpecialty, error) {
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

func (_c *ServiceDoctorSpecialtyCreate) createSpec() (*ServiceDoctorSpecialty, *sqlgraph.CreateSpec) {
	var (
		_node = &ServiceDoctorSpecialty{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(servicedoctorspecialty.Table, sqlgraph.NewFieldSpec(servicedoctorspecialty.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(servicedoctorspecialty.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ProficiencyLevel(); ok {
		_spec.SetField(servicedoctorspecialty.FieldProficiencyLevel, field.TypeEnum, value)
		_node.ProficiencyLevel = value
	}
	if value, ok := _c.mutation.IsPreferredProvider(); ok {
		_spec.SetField(servicedoctorspecialty.FieldIsPreferredProvider, field.TypeBool, value)
		_node.IsPreferredProvider = value
	}
	if nodes := _c.mutation.ServiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   servicedoctorspecialty.ServiceTable,
			Columns: []string{servicedoctorspecialty.ServiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(service.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ServiceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DoctorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   servicedoctorspecialty.DoctorTable,
			Columns: []string{servicedoctorspecialty.DoctorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DoctorID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ServiceDoctorSpecialtyCreateBulk is the builder for creating many ServiceDoctorSpecialty entities in bulk.
type ServiceDoctorSpecialtyCreateBulk struct {
	config
	err      error
	builders []*ServiceDoctorSpecialtyCreate
}

// Save creates the ServiceDoctorSpecialty entities in the database.
func (_c *ServiceDoctorSpecialtyCreateBulk) Save(ctx context.Context) ([]*ServiceDoctorSpecialty, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ServiceDoctorSpecialty, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ServiceDoctorSpecialtyMutation)
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
func (_c *ServiceDoctorSpecialtyCreateBulk) SaveX(ctx context.Context) []*ServiceDoctorSpecialty {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceDoctorSpecialtyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceDoctorSpecialtyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
