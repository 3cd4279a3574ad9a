// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctor"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/service"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/servicedoctorspecialty"
)

// ServiceDoctorSpecialtyUpdate is the builder for updating ServiceDoctorSpecialty entities.
type ServiceDoctorSpecialtyUpdate struct {
	config
	hooks    []Hook
	mutation *ServiceDoctorSpecialtyMutation
}

// Where appends a list predicates to the ServiceDoctorSpecialtyUpdate builder.
func (_u *ServiceDoctorSpecialtyUpdate) Where(ps ...predicate.ServiceDoctorSpecialty) *ServiceDoctorSpecialtyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetServiceID sets the "service_id" field.
func (_u *ServiceDoctorSpecialtyUpdate) SetServiceID(v uuid.UUID) *ServiceDoctorSpecialtyUpdate {
	_u.mutation.SetServiceID(v)
	return _u
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (_u *ServiceDoctorSpecialtyUpdate) SetNillableServiceID(v *uuid.UUID) *ServiceDoctorSpecialtyUpdate {
	if v != nil {
		_u.SetServiceID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *ServiceDoctorSpecialtyUpdate) SetDoctorID(v uuid.UUID) *ServiceDoctorSpecialtyUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *ServiceDoctorSpecialtyUpdate) SetNillableDoctorID(v *uuid.UUID) *ServiceDoctorSpecialtyUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetProficiencyLevel sets the "proficiency_level" field.
func (_u *ServiceDoctorSpecialtyUpdate) SetProficiencyLevel(v servicedoctorspecialty.ProficiencyLevel) *ServiceDoctorSpecialtyUpdate {
	_u.mutation.SetProficiencyLevel(v)
	return _u
}

// SetNillableProficiencyLevel sets the "proficiency_level" field if the given value is not nil.
func (_u *ServiceDoctorSpecialtyUpdate) SetNillableProficiencyLevel(v *servicedoctorspecialty.ProficiencyLevel) *ServiceDoctorSpecialtyUpdate {
	if v != nil {
		_u.SetProficiencyLevel(*v)
	}
	return _u
}

// SetIsPreferredProvider sets the "is_preferred_provider" field.
func (_u *ServiceDoctorSpecialtyUpdate) SetIsPreferredProvider(v bool) *ServiceDoctorSpecialtyUpdate {
	_u.mutation.SetIsPreferredProvider(v)
	return _u
}

// SetNillableIsPreferredProvider sets the "is_preferred_provider" field if the given value is not nil.
func (_u *ServiceDoctorSpecialtyUpdate) SetNillableIsPreferredProvider(v *bool) *ServiceDoctorSpecialtyUpdate {
	if v != nil {
		_u.SetIsPreferredProvider(*v)
	}
	return _u
}

// SetService sets the "service" edge to the Service entity.
func (_u *ServiceDoctorSpecialtyUpdate) SetService(v *Service) *ServiceDoctorSpecialtyUpdate {
	return _u.SetServiceID(v.ID)
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_u *ServiceDoctorSpecialtyUpdate) SetDoctor(v *Doctor) *ServiceDoctorSpecialtyUpdate {
	return _u.SetDoctorID(v.ID)
}

// Mutation returns the ServiceDoctorSpecialtyMutation object of the builder.
func (_u *ServiceDoctorSpecialtyUpdate) Mutation() *ServiceDoctorSpecialtyMutation {
	return _u.mutation
}

// ClearService clears the "service" edge to the Service entity.
func (_u *ServiceDoctorSpecialtyUpdate) ClearService() *ServiceDoctorSpecialtyUpdate {
	_u.mutation.ClearService()
	return _u
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (_u *ServiceDoctorSpecialtyUpdate) ClearDoctor() *ServiceDoctorSpecialtyUpdate {
	_u.mutation.ClearDoctor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ServiceDoctorSpecialtyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServiceDoctorSpecialtyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ServiceDoctorSpecialtyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServiceDoctorSpecialtyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServiceDoctorSpecialtyUpdate) check() error {
	if v, ok := _u.mutation.ProficiencyLevel(); ok {
		if err := servicedoctorspecialty.ProficiencyLevelValidator(v); err != nil {
			return &ValidationError{Name: "proficiency_level", err: fmt.Errorf(`repo: validator failed for field "ServiceDoctorSpecialty.proficiency_level": %w`, err)}
		}
	}
	if _u.mutation.ServiceCleared() && len(_u.mutation.ServiceIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ServiceDoctorSpecialty.service"`)
	}
	if _u.mutation.DoctorCleared() && len(_u.mutation.DoctorIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ServiceDoctorSpecialty.doctor"`)
	}
	return nil
}

func (_u *ServiceDoctorSpecialtyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(servicedoctorspecialty.Table, servicedoctorspecialty.Columns, sqlgraph.NewFieldSpec(servicedoctorspecialty.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProficiencyLevel(); ok {
		_spec.SetField(servicedoctorspecialty.FieldProficiencyLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsPreferredProvider(); ok {
		_spec.SetField(servicedoctorspecialty.FieldIsPreferredProvider, field.TypeBool, value)
	}
	if _u.mutation.ServiceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServiceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DoctorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DoctorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{servicedoctorspecialty.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ServiceDoctorSpecialtyUpdateOne is the builder for updating a single ServiceDoctorSpecialty entity.
type ServiceDoctorSpecialtyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ServiceDoctorSpecialtyMutation
}

// SetServiceID sets the "service_id" field.
func (_u *ServiceDoctorSpecialtyUpdateOne) SetServiceID(v uuid.UUID) *ServiceDoctorSpecialtyUpdateOne {
	_u.mutation.SetServiceID(v)
	return _u
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (_u *ServiceDoctorSpecialtyUpdateOne) SetNillableServiceID(v *uuid.UUID) *ServiceDoctorSpecialtyUpdateOne {
	if v != nil {
		_u.SetServiceID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *ServiceDoctorSpecialtyUpdateOne) SetDoctorID(v uuid.UUID) *ServiceDoctorSpecialtyUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *ServiceDoctorSpecialtyUpdateOne) SetNillableDoctorID(v *uuid.UUID) *ServiceDoctorSpecialtyUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetProficiencyLevel sets the "proficiency_level" field.
func (_u *ServiceDoctorSpecialtyUpdateOne) SetProficiencyLevel(v servicedoctorspecialty.ProficiencyLevel) *ServiceDoctorSpecialtyUpdateOne {
	_u.mutation.SetProficiencyLevel(v)
	return _u
}

// SetNillableProficiencyLevel sets the "proficiency_level" field if the given value is not nil.
func (_u *ServiceDoctorSpecialtyUpdateOne) SetNillableProficiencyLevel(v *servicedoctorspecialty.ProficiencyLevel) *ServiceDoctorSpecialtyUpdateOne {
	if v != nil {
		_u.SetProficiencyLevel(*v)
	}
	return _u
}

// SetIsPreferredProvider sets the "is_preferred_provider" field.
func (_u *ServiceDoctorSpecialtyUpdateOne) SetIsPreferredProvider(v bool) *ServiceDoctorSpecialtyUpdateOne {
	_u.mutation.SetIsPreferredProvider(v)
	return _u
}

// SetNillableIsPreferredProvider sets the "is_preferred_provider" field if the given value is not nil.
func (_u *ServiceDoctorSpecialtyUpdateOne) SetNillableIsPreferredProvider(v *bool) *ServiceDoctorSpecialtyUpdateOne {
	if v != nil {
		_u.SetIsPreferredProvider(*v)
	}
	return _u
}

// SetService sets the "service" edge to the Service entity.
func (_u *ServiceDoctorSpecialtyUpdateOne) SetService(v *Service) *ServiceDoctorSpecialtyUpdateOne {
	return _u.SetServiceID(v.ID)
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_u *ServiceDoctorSpecialtyUpdateOne) SetDoctor(v *Doctor) *ServiceDoctorSpecialtyUpdateOne {
	return _u.SetDoctorID(v.ID)
}

// Mutation returns the ServiceDoctorSpecialtyMutation object of the builder.
func (_u *ServiceDoctorSpecialtyUpdateOne) Mutation() *ServiceDoctorSpecialtyMutation {
	return _u.mutation
}

// ClearService clears the "service" edge to the Service entity.
func (_u *ServiceDoctorSpecialtyUpdateOne) ClearService() *ServiceDoctorSpecialtyUpdateOne {
	_u.mutation.ClearService()
	return _u
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (_u *ServiceDoctorSpecialtyUpdateOne) ClearDoctor() *ServiceDoctorSpecialtyUpdateOne {
	_u.mutation.ClearDoctor()
	return _u
}

// Where appends a list predicates to the ServiceDoctorSpecialtyUpdate builder.
func (_u *ServiceDoctorSpecialtyUpdateOne) Where(ps ...predicate.ServiceDoctorSpecialty) *ServiceDoctorSpecialtyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ServiceDoctorSpecialtyUpdateOne) Select(field string, fields ...string) *ServiceDoctorSpecialtyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ServiceDoctorSpecialty entity.
func (_u *ServiceDoctorSpecialtyUpdateOne) Save(ctx context.Context) (*ServiceDoctorSpecialty, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServiceDoctorSpecialtyUpdateOne) SaveX(ctx context.Context) *ServiceDoctorSpecialty {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ServiceDoctorSpecialtyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServiceDoctorSpecialtyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServiceDoctorSpecialtyUpdateOne) check() error {
	if v, ok := _u.mutation.ProficiencyLevel(); ok {
		if err := servicedoctorspecialty.ProficiencyLevelValidator(v); err != nil {
			return &ValidationError{Name: "proficiency_level", err: fmt.Errorf(`repo: validator failed for field "ServiceDoctorSpecialty.proficiency_level": %w`, err)}
		}
	}
	if _u.mutation.ServiceCleared() && len(_u.mutation.ServiceIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ServiceDoctorSpecialty.service"`)
	}
	if _u.mutation.DoctorCleared() && len(_u.mutation.DoctorIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ServiceDoctorSpecialty.doctor"`)
	}
	return nil
}

func (_u *ServiceDoctorSpecialtyUpdateOne) sqlSave(ctx context.Context) (_node *ServiceDoctorSpecialty, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(servicedoctorspecialty.Table, servicedoctorspecialty.Columns, sqlgraph.NewFieldSpec(servicedoctorspecialty.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ServiceDoctorSpecialty.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, servicedoctorspecialty.FieldID)
		for _, f := range fields {
			if !servicedoctorspecialty.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != servicedoctorspecialty.FieldID {
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
	if value, ok := _u.mutation.ProficiencyLevel(); ok {
		_spec.SetField(servicedoctorspecialty.FieldProficiencyLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsPreferredProvider(); ok {
		_spec.SetField(servicedoctorspecialty.FieldIsPreferredProvider, field.TypeBool, value)
	}
	if _u.mutation.ServiceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServiceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DoctorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DoctorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ServiceDoctorSpecialty{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{servicedoctorspecialty.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
