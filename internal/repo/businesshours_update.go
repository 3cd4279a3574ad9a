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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/businesshours"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/clinicsettings"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// BusinessHoursUpdate is the builder for updating BusinessHours entities.
type BusinessHoursUpdate struct {
	config
	hooks    []Hook
	mutation *BusinessHoursMutation
}

// Where appends a list predicates to the BusinessHoursUpdate builder.
func (_u *BusinessHoursUpdate) Where(ps ...predicate.BusinessHours) *BusinessHoursUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSettingsID sets the "settings_id" field.
func (_u *BusinessHoursUpdate) SetSettingsID(v uuid.UUID) *BusinessHoursUpdate {
	_u.mutation.SetSettingsID(v)
	return _u
}

// SetNillableSettingsID sets the "settings_id" field if the given value is not nil.
func (_u *BusinessHoursUpdate) SetNillableSettingsID(v *uuid.UUID) *BusinessHoursUpdate {
	if v != nil {
		_u.SetSettingsID(*v)
	}
	return _u
}

// SetDayOfWeek sets the "day_of_week" field.
func (_u *BusinessHoursUpdate) SetDayOfWeek(v int8) *BusinessHoursUpdate {
	_u.mutation.ResetDayOfWeek()
	_u.mutation.SetDayOfWeek(v)
	return _u
}

// SetNillableDayOfWeek sets the "day_of_week" field if the given value is not nil.
func (_u *BusinessHoursUpdate) SetNillableDayOfWeek(v *int8) *BusinessHoursUpdate {
	if v != nil {
		_u.SetDayOfWeek(*v)
	}
	return _u
}

// AddDayOfWeek adds value to the "day_of_week" field.
func (_u *BusinessHoursUpdate) AddDayOfWeek(v int8) *BusinessHoursUpdate {
	_u.mutation.AddDayOfWeek(v)
	return _u
}

// SetIsOpen sets the "is_open" field.
func (_u *BusinessHoursUpdate) SetIsOpen(v bool) *BusinessHoursUpdate {
	_u.mutation.SetIsOpen(v)
	return _u
}

// SetNillableIsOpen sets the "is_open" field if the given value is not nil.
func (_u *BusinessHoursUpdate) SetNillableIsOpen(v *bool) *BusinessHoursUpdate {
	if v != nil {
		_u.SetIsOpen(*v)
	}
	return _u
}

// SetOpeningTime sets the "opening_time" field.
func (_u *BusinessHoursUpdate) SetOpeningTime(v string) *BusinessHoursUpdate {
	_u.mutation.SetOpeningTime(v)
	return _u
}

// SetNillableOpeningTime sets the "opening_time" field if the given value is not nil.
func (_u *BusinessHoursUpdate) SetNillableOpeningTime(v *string) *BusinessHoursUpdate {
	if v != nil {
		_u.SetOpeningTime(*v)
	}
	return _u
}

// ClearOpeningTime clears the value of the "opening_time" field.
func (_u *BusinessHoursUpdate) ClearOpeningTime() *BusinessHoursUpdate {
	_u.mutation.ClearOpeningTime()
	return _u
}

// SetClosingTime sets the "closing_time" field.
func (_u *BusinessHoursUpdate) SetClosingTime(v string) *BusinessHoursUpdate {
	_u.mutation.SetClosingTime(v)
	return _u
}

// SetNillableClosingTime sets the "closing_time" field if the given value is not nil.
func (_u *BusinessHoursUpdate) SetNillableClosingTime(v *string) *BusinessHoursUpdate {
	if v != nil {
		_u.SetClosingTime(*v)
	}
	return _u
}

// ClearClosingTime clears the value of the "closing_time" field.
func (_u *BusinessHoursUpdate) ClearClosingTime() *BusinessHoursUpdate {
	_u.mutation.ClearClosingTime()
	return _u
}

// SetLunchBreak sets the "lunch_break" field.
func (_u *BusinessHoursUpdate) SetLunchBreak(v bool) *BusinessHoursUpdate {
	_u.mutation.SetLunchBreak(v)
	return _u
}

// SetNillableLunchBreak sets the "lunch_break" field if the given value is not nil.
func (_u *BusinessHoursUpdate) SetNillableLunchBreak(v *bool) *BusinessHoursUpdate {
	if v != nil {
		_u.SetLunchBreak(*v)
	}
	return _u
}

// SetLunchStart sets the "lunch_start" field.
func (_u *BusinessHoursUpdate) SetLunchStart(v string) *BusinessHoursUpdate {
	_u.mutation.SetLunchStart(v)
	return _u
}

// SetNillableLunchStart sets the "lunch_start" field if the given value is not nil.
func (_u *BusinessHoursUpdate) SetNillableLunchStart(v *string) *BusinessHoursUpdate {
	if v != nil {
		_u.SetLunchStart(*v)
	}
	return _u
}

// ClearLunchStart clears the value of the "lunch_start" field.
func (_u *BusinessHoursUpdate) ClearLunchStart() *BusinessHoursUpdate {
	_u.mutation.ClearLunchStart()
	return _u
}

// SetLunchEnd sets the "lunch_end" field.
func (_u *BusinessHoursUpdate) SetLunchEnd(v string) *BusinessHoursUpdate {
	_u.mutation.SetLunchEnd(v)
	return _u
}

// SetNillableLunchEnd sets the "lunch_end" field if the given value is not nil.
func (_u *BusinessHoursUpdate) SetNillableLunchEnd(v *string) *BusinessHoursUpdate {
	if v != nil {
		_u.SetLunchEnd(*v)
	}
	return _u
}

// ClearLunchEnd clears the value of the "lunch_end" field.
func (_u *BusinessHoursUpdate) ClearLunchEnd() *BusinessHoursUpdate {
	_u.mutation.ClearLunchEnd()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *BusinessHoursUpdate) SetNotes(v string) *BusinessHoursUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *BusinessHoursUpdate) SetNillableNotes(v *string) *BusinessHoursUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *BusinessHoursUpdate) ClearNotes() *BusinessHoursUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetSettings sets the "settings" edge to the ClinicSettings entity.
func (_u *BusinessHoursUpdate) SetSettings(v *ClinicSettings) *BusinessHoursUpdate {
	return _u.SetSettingsID(v.ID)
}

// Mutation returns the BusinessHoursMutation object of the builder.
func (_u *BusinessHoursUpdate) Mutation() *BusinessHoursMutation {
	return _u.mutation
}

// ClearSettings clears the "settings" edge to the ClinicSettings entity.
func (_u *BusinessHoursUpdate) ClearSettings() *BusinessHoursUpdate {
	_u.mutation.ClearSettings()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BusinessHoursUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusinessHoursUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BusinessHoursUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusinessHoursUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusinessHoursUpdate) check() error {
	if v, ok := _u.mutation.DayOfWeek(); ok {
		if err := businesshours.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`repo: validator failed for field "BusinessHours.day_of_week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OpeningTime(); ok {
		if err := businesshours.OpeningTimeValidator(v); err != nil {
			return &ValidationError{Name: "opening_time", err: fmt.Errorf(`repo: validator failed for field "BusinessHours.opening_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClosingTime(); ok {
		if err := businesshours.ClosingTimeValidator(v); err != nil {
			return &ValidationError{Name: "closing_time", err: fmt.Errorf(`repo: validator failed for field "BusinessHours.closing_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LunchStart(); ok {
		if err := businesshours.LunchStartValidator(v); err != nil {
			return &ValidationError{Name: "lunch_start", err: fmt.Errorf(`repo: validator failed for field "BusinessHours.lunch_start": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LunchEnd(); ok {
		if err := businesshours.LunchEndValidator(v); err != nil {
			return &ValidationError{Name: "lunch_end", err: fmt.Errorf(`repo: validator failed for field "BusinessHours.lunch_end": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Notes(); ok {
		if err := businesshours.NotesValidator(v); err != nil {
			return &ValidationError{Name: "notes", err: fmt.Errorf(`repo: validator failed for field "BusinessHours.notes": %w`, err)}
		}
	}
	if _u.mutation.SettingsCleared() && len(_u.mutation.SettingsIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "BusinessHours.settings"`)
	}
	return nil
}

func (_u *BusinessHoursUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(businesshours.Table, businesshours.Columns, sqlgraph.NewFieldSpec(businesshours.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DayOfWeek(); ok {
		_spec.SetField(businesshours.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedDayOfWeek(); ok {
		_spec.AddField(businesshours.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.IsOpen(); ok {
		_spec.SetField(businesshours.FieldIsOpen, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OpeningTime(); ok {
		_spec.SetField(businesshours.FieldOpeningTime, field.TypeString, value)
	}
	if _u.mutation.OpeningTimeCleared() {
		_spec.ClearField(businesshours.FieldOpeningTime, field.TypeString)
	}
	if value, ok := _u.mutation.ClosingTime(); ok {
		_spec.SetField(businesshours.FieldClosingTime, field.TypeString, value)
	}
	if _u.mutation.ClosingTimeCleared() {
		_spec.ClearField(businesshours.FieldClosingTime, field.TypeString)
	}
	if value, ok := _u.mutation.LunchBreak(); ok {
		_spec.SetField(businesshours.FieldLunchBreak, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LunchStart(); ok {
		_spec.SetField(businesshours.FieldLunchStart, field.TypeString, value)
	}
	if _u.mutation.LunchStartCleared() {
		_spec.ClearField(businesshours.FieldLunchStart, field.TypeString)
	}
	if value, ok := _u.mutation.LunchEnd(); ok {
		_spec.SetField(businesshours.FieldLunchEnd, field.TypeString, value)
	}
	if _u.mutation.LunchEndCleared() {
		_spec.ClearField(businesshours.FieldLunchEnd, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(businesshours.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(businesshours.FieldNotes, field.TypeString)
	}
	if _u.mutation.SettingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SettingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{businesshours.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BusinessHoursUpdateOne is the builder for updating a single BusinessHours entity.
type BusinessHoursUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BusinessHoursMutation
}

// SetSettingsID sets the "settings_id" field.
func (_u *BusinessHoursUpdateOne) SetSettingsID(v uuid.UUID) *BusinessHoursUpdateOne {
	_u.mutation.SetSettingsID(v)
	return _u
}

// SetNillableSettingsID sets the "settings_id" field if the given value is not nil.
func (_u *BusinessHoursUpdateOne) SetNillableSettingsID(v *uuid.UUID) *BusinessHoursUpdateOne {
	if v != nil {
		_u.SetSettingsID(*v)
	}
	return _u
}

// SetDayOfWeek sets the "day_of_week" field.
func (_u *BusinessHoursUpdateOne) SetDayOfWeek(v int8) *BusinessHoursUpdateOne {
	_u.mutation.ResetDayOfWeek()
	_u.mutation.SetDayOfWeek(v)
	return _u
}

// SetNillableDayOfWeek sets the "day_of_week" field if the given value is not nil.
func (_u *BusinessHoursUpdateOne) SetNillableDayOfWeek(v *int8) *BusinessHoursUpdateOne {
	if v != nil {
		_u.SetDayOfWeek(*v)
	}
	return _u
}

// AddDayOfWeek adds value to the "day_of_week" field.
func (_u *BusinessHoursUpdateOne) AddDayOfWeek(v int8) *BusinessHoursUpdateOne {
	_u.mutation.AddDayOfWeek(v)
	return _u
}

// SetIsOpen sets the "is_open" field.
func (_u *BusinessHoursUpdateOne) SetIsOpen(v bool) *BusinessHoursUpdateOne {
	_u.mutation.SetIsOpen(v)
	return _u
}

// SetNillableIsOpen sets the "is_open" field if the given value is not nil.
func (_u *BusinessHoursUpdateOne) SetNillableIsOpen(v *bool) *BusinessHoursUpdateOne {
	if v != nil {
		_u.SetIsOpen(*v)
	}
	return _u
}

// SetOpeningTime sets the "opening_time" field.
func (_u *BusinessHoursUpdateOne) SetOpeningTime(v string) *BusinessHoursUpdateOne {
	_u.mutation.SetOpeningTime(v)
	return _u
}

// SetNillableOpeningTime sets the "opening_time" field if the given value is not nil.
func (_u *BusinessHoursUpdateOne) SetNillableOpeningTime(v *string) *BusinessHoursUpdateOne {
	if v != nil {
		_u.SetOpeningTime(*v)
	}
	return _u
}

// ClearOpeningTime clears the value of the "opening_time" field.
func (_u *BusinessHoursUpdateOne) ClearOpeningTime() *BusinessHoursUpdateOne {
	_u.mutation.ClearOpeningTime()
	return _u
}

// SetClosingTime sets the "closing_time" field.
func (_u *BusinessHoursUpdateOne) SetClosingTime(v string) *BusinessHoursUpdateOne {
	_u.mutation.SetClosingTime(v)
	return _u
}

// SetNillableClosingTime sets the "closing_time" field if the given value is not nil.
func (_u *BusinessHoursUpdateOne) SetNillableClosingTime(v *string) *BusinessHoursUpdateOne {
	if v != nil {
		_u.SetClosingTime(*v)
	}
	return _u
}

// ClearClosingTime clears the value of the "closing_time" field.
func (_u *BusinessHoursUpdateOne) ClearClosingTime() *BusinessHoursUpdateOne {
	_u.mutation.ClearClosingTime()
	return _u
}

// SetLunchBreak sets the "lunch_break" field.
func (_u *BusinessHoursUpdateOne) SetLunchBreak(v bool) *BusinessHoursUpdateOne {
	_u.mutation.SetLunchBreak(v)
	return _u
}

// SetNillableLunchBreak sets the "lunch_break" field if the given value is not nil.
func (_u *BusinessHoursUpdateOne) SetNillableLunchBreak(v *bool) *BusinessHoursUpdateOne {
	if v != nil {
		_u.SetLunchBreak(*v)
	}
	return _u
}

// SetLunchStart sets the "lunch_start" field.
func (_u *BusinessHoursUpdateOne) SetLunchStart(v string) *BusinessHoursUpdateOne {
	_u.mutation.SetLunchStart(v)
	return _u
}

// SetNillableLunchStart sets the "lunch_start" field if the given value is not nil.
func (_u *BusinessHoursUpdateOne) SetNillableLunchStart(v *string) *BusinessHoursUpdateOne {
	if v != nil {
		_u.SetLunchStart(*v)
	}
	return _u
}

// ClearLunchStart clears the value of the "lunch_start" field.
func (_u *BusinessHoursUpdateOne) ClearLunchStart() *BusinessHoursUpdateOne {
	_u.mutation.ClearLunchStart()
	return _u
}

// SetLunchEnd sets the "lunch_end" field.
func (_u *BusinessHoursUpdateOne) SetLunchEnd(v string) *BusinessHoursUpdateOne {
	_u.mutation.SetLunchEnd(v)
	return _u
}

// SetNillableLunchEnd sets the "lunch_end" field if the given value is not nil.
func (_u *BusinessHoursUpdateOne) SetNillableLunchEnd(v *string) *BusinessHoursUpdateOne {
	if v != nil {
		_u.SetLunchEnd(*v)
	}
	return _u
}

// ClearLunchEnd clears the value of the "lunch_end" field.
func (_u *BusinessHoursUpdateOne) ClearLunchEnd() *BusinessHoursUpdateOne {
	_u.mutation.ClearLunchEnd()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *BusinessHoursUpdateOne) SetNotes(v string) *BusinessHoursUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *BusinessHoursUpdateOne) SetNillableNotes(v *string) *BusinessHoursUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *BusinessHoursUpdateOne) ClearNotes() *BusinessHoursUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetSettings sets the "settings" edge to the ClinicSettings entity.
func (_u *BusinessHoursUpdateOne) SetSettings(v *ClinicSettings) *BusinessHoursUpdateOne {
	return _u.SetSettingsID(v.ID)
}

// Mutation returns the BusinessHoursMutation object of the builder.
func (_u *BusinessHoursUpdateOne) Mutation() *BusinessHoursMutation {
	return _u.mutation
}

// ClearSettings clears the "settings" edge to the ClinicSettings entity.
func (_u *BusinessHoursUpdateOne) ClearSettings() *BusinessHoursUpdateOne {
	_u.mutation.ClearSettings()
	return _u
}

// Where appends a list predicates to the BusinessHoursUpdate builder.
func (_u *BusinessHoursUpdateOne) Where(ps ...predicate.BusinessHours) *BusinessHoursUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BusinessHoursUpdateOne) Select(field string, fields ...string) *BusinessHoursUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BusinessHours entity.
func (_u *BusinessHoursUpdateOne) Save(ctx context.Context) (*BusinessHours, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusinessHoursUpdateOne) SaveX(ctx context.Context) *BusinessHours {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BusinessHoursUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusinessHoursUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusinessHoursUpdateOne) check() error {
	if v, ok := _u.mutation.DayOfWeek(); ok {
		if err := businesshours.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`repo: validator failed for field "BusinessHours.day_of_week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OpeningTime(); ok {
		if err := businesshours.OpeningTimeValidator(v); err != nil {
			return &ValidationError{Name: "opening_time", err: fmt.Errorf(`repo: validator failed for field "BusinessHours.opening_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClosingTime(); ok {
		if err := businesshours.ClosingTimeValidator(v); err != nil {
			return &ValidationError{Name: "closing_time", err: fmt.Errorf(`repo: validator failed for field "BusinessHours.closing_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LunchStart(); ok {
		if err := businesshours.LunchStartValidator(v); err != nil {
			return &ValidationError{Name: "lunch_start", err: fmt.Errorf(`repo: validator failed for field "BusinessHours.lunch_start": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LunchEnd(); ok {
		if err := businesshours.LunchEndValidator(v); err != nil {
			return &ValidationError{Name: "lunch_end", err: fmt.Errorf(`repo: validator failed for field "BusinessHours.lunch_end": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Notes(); ok {
		if err := businesshours.NotesValidator(v); err != nil {
			return &ValidationError{Name: "notes", err: fmt.Errorf(`repo: validator failed for field "BusinessHours.notes": %w`, err)}
		}
	}
	if _u.mutation.SettingsCleared() && len(_u.mutation.SettingsIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "BusinessHours.settings"`)
	}
	return nil
}

func (_u *BusinessHoursUpdateOne) sqlSave(ctx context.Context) (_node *BusinessHours, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(businesshours.Table, businesshours.Columns, sqlgraph.NewFieldSpec(businesshours.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "BusinessHours.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, businesshours.FieldID)
		for _, f := range fields {
			if !businesshours.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != businesshours.FieldID {
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
	if value, ok := _u.mutation.DayOfWeek(); ok {
		_spec.SetField(businesshours.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedDayOfWeek(); ok {
		_spec.AddField(businesshours.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.IsOpen(); ok {
		_spec.SetField(businesshours.FieldIsOpen, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OpeningTime(); ok {
		_spec.SetField(businesshours.FieldOpeningTime, field.TypeString, value)
	}
	if _u.mutation.OpeningTimeCleared() {
		_spec.ClearField(businesshours.FieldOpeningTime, field.TypeString)
	}
	if value, ok := _u.mutation.ClosingTime(); ok {
		_spec.SetField(businesshours.FieldClosingTime, field.TypeString, value)
	}
	if _u.mutation.ClosingTimeCleared() {
		_spec.ClearField(businesshours.FieldClosingTime, field.TypeString)
	}
	if value, ok := _u.mutation.LunchBreak(); ok {
		_spec.SetField(businesshours.FieldLunchBreak, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LunchStart(); ok {
		_spec.SetField(businesshours.FieldLunchStart, field.TypeString, value)
	}
	if _u.mutation.LunchStartCleared() {
		_spec.ClearField(businesshours.FieldLunchStart, field.TypeString)
	}
	if value, ok := _u.mutation.LunchEnd(); ok {
		_spec.SetField(businesshours.FieldLunchEnd, field.TypeString, value)
	}
	if _u.mutation.LunchEndCleared() {
		_spec.ClearField(businesshours.FieldLunchEnd, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(businesshours.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(businesshours.FieldNotes, field.TypeString)
	}
	if _u.mutation.SettingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SettingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BusinessHours{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{businesshours.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
