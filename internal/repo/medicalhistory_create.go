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
)

// MedicalHistoryCreate is the builder for creating a MedicalHistory entity.
type MedicalHistoryCreate struct {
	config
	mutation *MedicalHistoryMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *MedicalHistoryCreate) SetCreatedAt(v time.Time) *MedicalHistoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MedicalHistoryCreate) SetNillableCreatedAt(v *time.Time) *MedicalHistoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MedicalHistoryCreate) SetUpdatedAt(v time.Time) *MedicalHistoryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MedicalHistoryCreate) SetNillableUpdatedAt(v *time.Time) *MedicalHistoryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *MedicalHistoryCreate) SetPatientID(v uuid.UUID) *MedicalHistoryCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetConditionType sets the "condition_type" field.
func (_c *MedicalHistoryCreate) SetConditionType(v medicalhistory.ConditionType) *MedicalHistoryCreate {
	_c.mutation.SetConditionType(v)
	return _c
}

// SetConditionName sets the "condition_name" field.
func (_c *MedicalHistoryCreate) SetConditionName(v string) *MedicalHistoryCreate {
	_c.mutation.SetConditionName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *MedicalHistoryCreate) SetDescription(v string) *MedicalHistoryCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *MedicalHistoryCreate) SetNillableDescription(v *string) *MedicalHistoryCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetDateDiagnosed sets the "date_diagnosed" field.
func (_c *MedicalHistoryCreate) SetDateDiagnosed(v time.Time) *MedicalHistoryCreate {
	_c.mutation.SetDateDiagnosed(v)
	return _c
}

// SetNillableDateDiagnosed sets the "date_diagnosed" field if the given value is not nil.
func (_c *MedicalHistoryCreate) SetNillableDateDiagnosed(v *time.Time) *MedicalHistoryCreate {
	if v != nil {
		_c.SetDateDiagnosed(*v)
	}
	return _c
}

// SetIsCurrent sets the "is_current" field.
func (_c *MedicalHistoryCreate) SetIsCurrent(v bool) *MedicalHistoryCreate {
	_c.mutation.SetIsCurrent(v)
	return _c
}

// SetNillableIsCurrent sets the "is_current" field if the given value is not nil.
func (_c *MedicalHistoryCreate) SetNillableIsCurrent(v *bool) *MedicalHistoryCreate {
	if v != nil {
		_c.SetIsCurrent(*v)
	}
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *MedicalHistoryCreate) SetSeverity(v medicalhistory.Severity) *MedicalHistoryCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_c *MedicalHistoryCreate) SetNillableSeverity(v *medicalhistory.Severity) *MedicalHistoryCreate {
	if v != nil {
		_c.SetSeverity(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *MedicalHistoryCreate) SetNotes(v string) *MedicalHistoryCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *MedicalHistoryCreate) SetNillableNotes(v *string) *MedicalHistoryCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MedicalHistoryCreate) SetID(v uuid.UUID) *MedicalHistoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MedicalHistoryCreate) SetNillableID(v *uuid.UUID) *MedicalHistoryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *MedicalHistoryCreate) SetPatient(v *Patient) *MedicalHistoryCreate {
	return _c.SetPatientID(v.ID)
}

// Mutation returns the MedicalHistoryMutation object of the builder.
func (_c *MedicalHistoryCreate) Mutation() *MedicalHistoryMutation {
	return _c.mutation
}

// Save creates the MedicalHistory in the database.
func (_c *MedicalHistoryCreate) Save(ctx context.Context) (*MedicalHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MedicalHistoryCreate) SaveX(ctx context.Context) *MedicalHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicalHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicalHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MedicalHistoryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := medicalhistory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := medicalhistory.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsCurrent(); !ok {
		v := medicalhistory.DefaultIsCurrent
		_c.mutation.SetIsCurrent(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := medicalhistory.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MedicalHistoryCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "MedicalHistory.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "MedicalHistory.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "MedicalHistory.patient_id"`)}
	}
	if _, ok := _c.mutation.ConditionType(); !ok {
		return &ValidationError{Name: "condition_type", err: errors.New(`repo: missing required field "MedicalHistory.condition_type"`)}
	}
	if v, ok := _c.mutation.ConditionType(); ok {
		if err := medicalhistory.ConditionTypeValidator(v); err != nil {
			return &ValidationError{Name: "condition_type", err: fmt.Errorf(`repo: validator failed for field "MedicalHistory.condition_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConditionName(); !ok {
		return &ValidationError{Name: "condition_name", err: errors.New(`repo: missing required field "MedicalHistory.condition_name"`)}
	}
	if v, ok := _c.mutation.ConditionName(); ok {
		if err := medicalhistory.ConditionNameValidator(v); err != nil {
			return &ValidationError{Name: "condition_name", err: fmt.Errorf(`repo: validator failed for field "MedicalHistory.condition_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsCurrent(); !ok {
		return &ValidationError{Name: "is_current", err: errors.New(`repo: missing required field "MedicalHistory.is_current"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := medicalhistory.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`repo: validator failed for field "MedicalHistory.severity": %w`, err)}
		}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "MedicalHistory.patient"`)}
	}
	return nil
}

func (_c *MedicalHistoryCreate) sqlSave(ctx context.Context) (*MedicalHistory, error) {
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

func (_c *MedicalHistoryCreate) createSpec() (*MedicalHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &MedicalHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(medicalhistory.Table, sqlgraph.NewFieldSpec(medicalhistory.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(medicalhistory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(medicalhistory.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ConditionType(); ok {
		_spec.SetField(medicalhistory.FieldConditionType, field.TypeEnum, value)
		_node.ConditionType = value
	}
	if value, ok := _c.mutation.ConditionName(); ok {
		_spec.SetField(medicalhistory.FieldConditionName, field.TypeString, value)
		_node.ConditionName = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(medicalhistory.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.DateDiagnosed(); ok {
		_spec.SetField(medicalhistory.FieldDateDiagnosed, field.TypeTime, value)
		_node.DateDiagnosed = &value
	}
	if value, ok := _c.mutation.IsCurrent(); ok {
		_spec.SetField(medicalhistory.FieldIsCurrent, field.TypeBool, value)
		_node.IsCurrent = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(medicalhistory.FieldSeverity, field.TypeEnum, value)
		_node.Severity = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(medicalhistory.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   medicalhistory.PatientTable,
			Columns: []string{medicalhistory.PatientColumn},
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
	return _node, _spec
}

// MedicalHistoryCreateBulk is the builder for creating many MedicalHistory entities in bulk.
type MedicalHistoryCreateBulk struct {
	config
	err      error
	builders []*MedicalHistoryCreate
}

// Save creates the MedicalHistory entities in the database.
func (_c *MedicalHistoryCreateBulk) Save(ctx context.Context) ([]*MedicalHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MedicalHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MedicalHistoryMutation)
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
func (_c *MedicalHistoryCreateBulk) SaveX(ctx context.Context) []*MedicalHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicalHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicalHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
