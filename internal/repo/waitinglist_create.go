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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/patient"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/service"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/waitinglist"
)

// WaitingListCreate is the builder for creating a WaitingList entity.
type WaitingListCreate struct {
	config
	mutation *WaitingListMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *WaitingListCreate) SetCreatedAt(v time.Time) *WaitingListCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WaitingListCreate) SetNillableCreatedAt(v *time.Time) *WaitingListCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *WaitingListCreate) SetPatientID(v uuid.UUID) *WaitingListCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *WaitingListCreate) SetDoctorID(v uuid.UUID) *WaitingListCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetServiceID sets the "service_id" field.
func (_c *WaitingListCreate) SetServiceID(v uuid.UUID) *WaitingListCreate {
	_c.mutation.SetServiceID(v)
	return _c
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (_c *WaitingListCreate) SetNillableServiceID(v *uuid.UUID) *WaitingListCreate {
	if v != nil {
		_c.SetServiceID(*v)
	}
	return _c
}

// SetPreferredDate sets the "preferred_date" field.
func (_c *WaitingListCreate) SetPreferredDate(v time.Time) *WaitingListCreate {
	_c.mutation.SetPreferredDate(v)
	return _c
}

// SetNillablePreferredDate sets the "preferred_date" field if the given value is not nil.
func (_c *WaitingListCreate) SetNillablePreferredDate(v *time.Time) *WaitingListCreate {
	if v != nil {
		_c.SetPreferredDate(*v)
	}
	return _c
}

// SetPreferredTime sets the "preferred_time" field.
func (_c *WaitingListCreate) SetPreferredTime(v string) *WaitingListCreate {
	_c.mutation.SetPreferredTime(v)
	return _c
}

// SetNillablePreferredTime sets the "preferred_time" field if the given value is not nil.
func (_c *WaitingListCreate) SetNillablePreferredTime(v *string) *WaitingListCreate {
	if v != nil {
		_c.SetPreferredTime(*v)
	}
	return _c
}

// SetEarliestDate sets the "earliest_date" field.
func (_c *WaitingListCreate) SetEarliestDate(v time.Time) *WaitingListCreate {
	_c.mutation.SetEarliestDate(v)
	return _c
}

// SetLatestDate sets the "latest_date" field.
func (_c *WaitingListCreate) SetLatestDate(v time.Time) *WaitingListCreate {
	_c.mutation.SetLatestDate(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *WaitingListCreate) SetNotes(v string) *WaitingListCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *WaitingListCreate) SetNillableNotes(v *string) *WaitingListCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *WaitingListCreate) SetIsActive(v bool) *WaitingListCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *WaitingListCreate) SetNillableIsActive(v *bool) *WaitingListCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetNotified sets the "notified" field.
func (_c *WaitingListCreate) SetNotified(v bool) *WaitingListCreate {
	_c.mutation.SetNotified(v)
	return _c
}

// SetNillableNotified sets the "notified" field if the given value is not nil.
func (_c *WaitingListCreate) SetNillableNotified(v *bool) *WaitingListCreate {
	if v != nil {
		_c.SetNotified(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WaitingListCreate) SetID(v uuid.UUID) *WaitingListCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *WaitingListCreate) SetNillableID(v *uuid.UUID) *WaitingListCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *WaitingListCreate) SetPatient(v *Patient) *WaitingListCreate {
	return _c.SetPatientID(v.ID)
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_c *WaitingListCreate) SetDoctor(v *Doctor) *WaitingListCreate {
	return _c.SetDoctorID(v.ID)
}

// SetService sets the "service" edge to the Service entity.
func (_c *WaitingListCreate) SetService(v *Service) *WaitingListCreate {
	return _c.SetServiceID(v.ID)
}

// Mutation returns the WaitingListMutation object of the builder.
func (_c *WaitingListCreate) Mutation() *WaitingListMutation {
	return _c.mutation
}

// Save creates the WaitingList in the database.
func (_c *WaitingListCreate) Save(ctx context.Context) (*WaitingList, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WaitingListCreate) SaveX(ctx context.Context) *WaitingList {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WaitingListCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WaitingListCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WaitingListCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := waitinglist.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := waitinglist.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.Notified(); !ok {
		v := waitinglist.DefaultNotified
		_c.mutation.SetNotified(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := waitinglist.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WaitingListCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "WaitingList.created_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "WaitingList.patient_id"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "WaitingList.doctor_id"`)}
	}
	if v, ok := _c.mutation.PreferredTime(); ok {
		if err := waitinglist.PreferredTimeValidator(v); err != nil {
			return &ValidationError{Name: "preferred_time", err: fmt.Errorf(`repo: validator failed for field "WaitingList.preferred_time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EarliestDate(); !ok {
		return &ValidationError{Name: "earliest_date", err: errors.New(`repo: missing required field "WaitingList.earliest_date"`)}
	}
	if _, ok := _c.mutation.LatestDate(); !ok {
		return &ValidationError{Name: "latest_date", err: errors.New(`repo: missing required field "WaitingList.latest_date"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "WaitingList.is_active"`)}
	}
	if _, ok := _c.mutation.Notified(); !ok {
		return &ValidationError{Name: "notified", err: errors.New(`repo: missing required field "WaitingList.notified"`)}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "WaitingList.patient"`)}
	}
	if len(_c.mutation.DoctorIDs()) == 0 {
		return &ValidationError{Name: "doctor", err: errors.New(`repo: missing required edge "WaitingList.doctor"`)}
	}
	return nil
}

func (_c *WaitingListCreate) sqlSave(ctx context.Context) (*WaitingList, error) {
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

func (_c *WaitingListCreate) createSpec() (*WaitingList, *sqlgraph.CreateSpec) {
	var (
		_node = &WaitingList{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(waitinglist.Table, sqlgraph.NewFieldSpec(waitinglist.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(waitinglist.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.PreferredDate(); ok {
		_spec.SetField(waitinglist.FieldPreferredDate, field.TypeTime, value)
		_node.PreferredDate = &value
	}
	if value, ok := _c.mutation.PreferredTime(); ok {
		_spec.SetField(waitinglist.FieldPreferredTime, field.TypeString, value)
		_node.PreferredTime = &value
	}
	if value, ok := _c.mutation.EarliestDate(); ok {
		_spec.SetField(waitinglist.FieldEarliestDate, field.TypeTime, value)
		_node.EarliestDate = value
	}
	if value, ok := _c.mutation.LatestDate(); ok {
		_spec.SetField(waitinglist.FieldLatestDate, field.TypeTime, value)
		_node.LatestDate = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(waitinglist.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(waitinglist.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.Notified(); ok {
		_spec.SetField(waitinglist.FieldNotified, field.TypeBool, value)
		_node.Notified = value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   waitinglist.PatientTable,
			Columns: []string{waitinglist.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DoctorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   waitinglist.DoctorTable,
			Columns: []string{waitinglist.DoctorColumn},
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
	if nodes := _c.mutation.ServiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   waitinglist.ServiceTable,
			Columns: []string{waitinglist.ServiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(service.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ServiceID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WaitingListCreateBulk is the builder for creating many WaitingList entities in bulk.
type WaitingListCreateBulk struct {
	config
	err      error
	builders []*WaitingListCreate
}

// Save creates the WaitingList entities in the database.
func (_c *WaitingListCreateBulk) Save(ctx context.Context) ([]*WaitingList, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WaitingList, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WaitingListMutation)
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
func (_c *WaitingListCreateBulk) SaveX(ctx context.Context) []*WaitingList {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WaitingListCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WaitingListCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
