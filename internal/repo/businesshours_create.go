// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/businesshours"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/clinicsettings"
)

// BusinessHoursCreate is the builder for creating a BusinessHours entity.
type BusinessHoursCreate struct {
	config
	mutation *BusinessHoursMutation
	hooks    []Hook
}

// SetSettingsID sets the "settings_id" field.
func (_c *BusinessHoursCreate) SetSettingsID(v uuid.UUID) *BusinessHoursCreate {
	_c.mutation.SetSettingsID(v)
	return _c
}

// SetDayOfWeek sets the "day_of_week" field.
func (_c *BusinessHoursCreate) SetDayOfWeek(v int8) *BusinessHoursCreate {
	_c.mutation.SetDayOfWeek(v)
	return _c
}

// SetIsOpen sets the "is_open" field.
func (_c *BusinessHoursCreate) SetIsOpen(v bool) *BusinessHoursCreate {
	_c.mutation.SetIsOpen(v)
	return _c
}

// SetNillableIsOpen sets the "is_open" field if the given value is not nil.
func (_c *BusinessHoursCreate) SetNillableIsOpen(v *bool) *BusinessHoursCreate {
	if v != nil {
		_c.SetIsOpen(*v)
	}
	return _c
}

// SetOpeningTime sets the "opening_time" field.
func (_c *BusinessHoursCreate) SetOpeningTime(v string) *BusinessHoursCreate {
	_c.mutation.SetOpeningTime(v)
	return _c
}

// SetNillableOpeningTime sets the "opening_time" field if the given value is not nil.
func (_c *BusinessHoursCreate) SetNillableOpeningTime(v *string) *BusinessHoursCreate {
	if v != nil {
		_c.SetOpeningTime(*v)
	}
	return _c
}

// SetClosingTime sets the "closing_time" field.
func (_c *BusinessHoursCreate) SetClosingTime(v string) *BusinessHoursCreate {
	_c.mutation.SetClosingTime(v)
	return _c
}

// SetNillableClosingTime sets the "closing_time" field if the given value is not nil.
func (_c *BusinessHoursCreate) SetNillableClosingTime(v *string) *BusinessHoursCreate {
	if v != nil {
		_c.SetClosingTime(*v)
	}
	return _c
}

// SetLunchBreak sets the "lunch_break" field.
func (_c *BusinessHoursCreate) SetLunchBreak(v bool) *BusinessHoursCreate {
	_c.mutation.SetLunchBreak(v)
	return _c
}

// SetNillableLunchBreak sets the "lunch_break" field if the given value is not nil.
func (_c *BusinessHoursCreate) SetNillableLunchBreak(v *bool) *BusinessHoursCreate {
	if v != nil {
		_c.SetLunchBreak(*v)
	}
	return _c
}

// SetLunchStart sets the "lunch_start" field.
func (_c *BusinessHoursCreate) SetLunchStart(v string) *BusinessHoursCreate {
	_c.mutation.SetLunchStart(v)
	return _c
}

// SetNillableLunchStart sets the "lunch_start" field if the given value is not nil.
func (_c *BusinessHoursCreate) SetNillableLunchStart(v *string) *BusinessHoursCreate {
	if v != nil {
		_c.SetLunchStart(*v)
	}
	return _c
}

// SetLunchEnd sets the "lunch_end" field.
func (_c *BusinessHoursCreate) SetLunchEnd(v string) *BusinessHoursCreate {
	_c.mutation.SetLunchEnd(v)
	return _c
}

// SetNillableLunchEnd sets the "lunch_end" field if the given value is not nil.
func (_c *BusinessHoursCreate) SetNillableLunchEnd(v *string) *BusinessHoursCreate {
	if v != nil {
		_c.SetLunchEnd(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *BusinessHoursCreate) SetNotes(v string) *BusinessHoursCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *BusinessHoursCreate) SetNillableNotes(v *string) *BusinessHoursCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BusinessHoursCreate) SetID(v uuid.UUID) *BusinessHoursCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BusinessHoursCreate) SetNillableID(v *uuid.UUID) *BusinessHoursCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSettings sets the "settings" edge to the ClinicSettings entity.
func (_c *BusinessHoursCreate) SetSettings(v *ClinicSettings) *BusinessHoursCreate {
	return _c.SetSettingsID(v.ID)
}

// Mutation returns the BusinessHoursMutation object of the builder.
func (_c *BusinessHoursCreate) Mutation() *BusinessHoursMutation {
	return _c.mutation
}

// Save creates the BusinessHours in the database.
func (_c *BusinessHoursCreate) Save(ctx context.Context) (*BusinessHours, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BusinessHoursCreate) SaveX(ctx context.Context) *BusinessHours {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusinessHoursCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusinessHoursCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BusinessHoursCreate) defaults() {
	if _, ok := _c.mutation.IsOpen(); !ok {
		v := businesshours.DefaultIsOpen
		_c.mutation.SetIsOpen(v)
	}
	if _, ok := _c.mutation.LunchBreak(); !ok {
		v := businesshours.DefaultLunchBreak
		_c.mutation.SetLunchBreak(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := businesshours.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BusinessHoursCreate) check() error {
	if _, ok := _c.mutation.SettingsID(); !ok {
		return &ValidationError{Name: "settings_id", err: errors.New(`repo: missing required field "BusinessHours.settings_id"`)}
	}
	if _, ok := _c.mutation.DayOfWeek(); !ok {
		return &ValidationError{Name: "day_of_week", err: errors.New(`repo: missing required field "BusinessHours.day_of_week"`)}
	}
	if v, ok := _c.mutation.DayOfWeek(); ok {
		if err := businesshours.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`repo: validator failed for field "BusinessHours.day_of_week": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsOpen(); !ok {
		return &ValidationError{Name: "is_open", err: errors.New(`repo: missing required field "BusinessHours.is_open"`)}
	}
	if v, ok := _c.mutation.OpeningTime(); ok {
		if err := businesshours.OpeningTimeValidator(v); err != nil {
			return &ValidationError{Name: "opening_time", err: fmt.Errorf(`repo: validator failed for field "BusinessHours.opening_time": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ClosingTime(); ok {
		if err := businesshours.ClosingTimeValidator(v); err != nil {
			return &ValidationError{Name: "closing_time", err: fmt.Errorf(`repo: validator failed for field "BusinessHours.closing_time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LunchBreak(); !ok {
		return &ValidationError{Name: "lunch_break", err: errors.New(`repo: missing required field "BusinessHours.lunch_break"`)}
	}
	if v, ok := _c.mutation.LunchStart(); ok {
		if err := businesshours.LunchStartValidator(v); err != nil {
			return &ValidationError{Name: "lunch_start", err: fmt.Errorf(`repo: validator failed for field "BusinessHours.lunch_start": %w`, err)}
		}
	}
	if v, ok := _c.mutation.LunchEnd(); ok {
		if err := businesshours.LunchEndValidator(v); err != nil {
			return &ValidationError{Name: "lunch_end", err: fmt.Errorf(`repo: validator failed for field "BusinessHours.lunch_end": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Notes(); ok {
		if err := businesshours.NotesValidator(v); err != nil {
			return &ValidationError{Name: "notes", err: fmt.Errorf(`repo: validator failed for field "BusinessHours.notes": %w`, err)}
		}
	}
	if len(_c.mutation.SettingsIDs()) == 0 {
		return &ValidationError{Name: "settings", err: errors.New(`repo: missing required edge "BusinessHours.settings"`)}
	}
	return nil
}

func (_c *BusinessHoursCreate) sqlSave(ctx context.Context) (*BusinessHours, error) {
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

func (_c *BusinessHoursCreate) createSpec() (*BusinessHours, *sqlgraph.CreateSpec) {
	var (
		_node = &BusinessHours{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(businesshours.Table, sqlgraph.NewFieldSpec(businesshours.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DayOfWeek(); ok {
		_spec.SetField(businesshours.FieldDayOfWeek, field.TypeInt8, value)
		_node.DayOfWeek = value
	}
	if value, ok := _c.mutation.IsOpen(); ok {
		_spec.SetField(businesshours.FieldIsOpen, field.TypeBool, value)
		_node.IsOpen = value
	}
	if value, ok := _c.mutation.OpeningTime(); ok {
		_spec.SetField(businesshours.FieldOpeningTime, field.TypeString, value)
		_node.OpeningTime = &value
	}
	if value, ok := _c.mutation.ClosingTime(); ok {
		_spec.SetField(businesshours.FieldClosingTime, field.TypeString, value)
		_node.ClosingTime = &value
	}
	if value, ok := _c.mutation.LunchBreak(); ok {
		_spec.SetField(businesshours.FieldLunchBreak, field.TypeBool, value)
		_node.LunchBreak = value
	}
	if value, ok := _c.mutation.LunchStart(); ok {
		_spec.SetField(businesshours.FieldLunchStart, field.TypeString, value)
		_node.LunchStart = &value
	}
	if value, ok := _c.mutation.LunchEnd(); ok {
		_spec.SetField(businesshours.FieldLunchEnd, field.TypeString, value)
		_node.LunchEnd = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(businesshours.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if nodes := _c.mutation.SettingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   businesshours.SettingsTable,
			Columns: []string{businesshours.SettingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinicsettings.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SettingsID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BusinessHoursCreateBulk is the builder for creating many BusinessHours entities in bulk.
type BusinessHoursCreateBulk struct {
	config
	err      error
	builders []*BusinessHoursCreate
}

// Save creates the BusinessHours entities in the database.
func (_c *BusinessHoursCreateBulk) Save(ctx context.Context) ([]*BusinessHours, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BusinessHours, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BusinessHoursMutation)
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
func (_c *BusinessHoursCreateBulk) SaveX(ctx context.Context) []*BusinessHours {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusinessHoursCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusinessHoursCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
