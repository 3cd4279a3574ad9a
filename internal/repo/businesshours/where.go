// Code generated by ent, DO NOT EDIT.

package businesshours

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldLTE(FieldID, id))
}

// SettingsID applies equality check predicate on the "settings_id" field. It's identical to SettingsIDEQ.
func SettingsID(v uuid.UUID) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldEQ(FieldSettingsID, v))
}

// DayOfWeek applies equality check predicate on the "day_of_week" field. It's identical to DayOfWeekEQ.
func DayOfWeek(v int8) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldEQ(FieldDayOfWeek, v))
}

// IsOpen applies equality check predicate on the "is_open" field. It's identical to IsOpenEQ.
func IsOpen(v bool) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldEQ(FieldIsOpen, v))
}

// OpeningTime applies equality check predicate on the "opening_time" field. It's identical to OpeningTimeEQ.
func OpeningTime(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldEQ(FieldOpeningTime, v))
}

// ClosingTime applies equality check predicate on the "closing_time" field. It's identical to ClosingTimeEQ.
func ClosingTime(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldEQ(FieldClosingTime, v))
}

// LunchBreak applies equality check predicate on the "lunch_break" field. It's identical to LunchBreakEQ.
func LunchBreak(v bool) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldEQ(FieldLunchBreak, v))
}

// LunchStart applies equality check predicate on the "lunch_start" field. It's identical to LunchStartEQ.
func LunchStart(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldEQ(FieldLunchStart, v))
}

// LunchEnd applies equality check predicate on the "lunch_end" field. It's identical to LunchEndEQ.
func LunchEnd(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldEQ(FieldLunchEnd, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldEQ(FieldNotes, v))
}

// SettingsIDEQ applies the EQ predicate on the "settings_id" field.
func SettingsIDEQ(v uuid.UUID) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldEQ(FieldSettingsID, v))
}

// SettingsIDNEQ applies the NEQ predicate on the "settings_id" field.
func SettingsIDNEQ(v uuid.UUID) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldNEQ(FieldSettingsID, v))
}

// SettingsIDIn applies the In predicate on the "settings_id" field.
func SettingsIDIn(vs ...uuid.UUID) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldIn(FieldSettingsID, vs...))
}

// SettingsIDNotIn applies the NotIn predicate on the "settings_id" field.
func SettingsIDNotIn(vs ...uuid.UUID) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldNotIn(FieldSettingsID, vs...))
}

// DayOfWeekEQ applies the EQ predicate on the "day_of_week" field.
func DayOfWeekEQ(v int8) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldEQ(FieldDayOfWeek, v))
}

// DayOfWeekNEQ applies the NEQ predicate on the "day_of_week" field.
func DayOfWeekNEQ(v int8) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldNEQ(FieldDayOfWeek, v))
}

// DayOfWeekIn applies the In predicate on the "day_of_week" field.
func DayOfWeekIn(vs ...int8) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldIn(FieldDayOfWeek, vs...))
}

// DayOfWeekNotIn applies the NotIn predicate on the "day_of_week" field.
func DayOfWeekNotIn(vs ...int8) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldNotIn(FieldDayOfWeek, vs...))
}

// DayOfWeekGT applies the GT predicate on the "day_of_week" field.
func DayOfWeekGT(v int8) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldGT(FieldDayOfWeek, v))
}

// DayOfWeekGTE applies the GTE predicate on the "day_of_week" field.
func DayOfWeekGTE(v int8) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldGTE(FieldDayOfWeek, v))
}

// DayOfWeekLT applies the LT predicate on the "day_of_week" field.
func DayOfWeekLT(v int8) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldLT(FieldDayOfWeek, v))
}

// DayOfWeekLTE applies the LTE predicate on the "day_of_week" field.
func DayOfWeekLTE(v int8) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldLTE(FieldDayOfWeek, v))
}

// IsOpenEQ applies the EQ predicate on the "is_open" field.
func IsOpenEQ(v bool) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldEQ(FieldIsOpen, v))
}

// IsOpenNEQ applies the NEQ predicate on the "is_open" field.
func IsOpenNEQ(v bool) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldNEQ(FieldIsOpen, v))
}

// OpeningTimeEQ applies the EQ predicate on the "opening_time" field.
func OpeningTimeEQ(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldEQ(FieldOpeningTime, v))
}

// OpeningTimeNEQ applies the NEQ predicate on the "opening_time" field.
func OpeningTimeNEQ(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldNEQ(FieldOpeningTime, v))
}

// OpeningTimeIn applies the In predicate on the "opening_time" field.
func OpeningTimeIn(vs ...string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldIn(FieldOpeningTime, vs...))
}

// OpeningTimeNotIn applies the NotIn predicate on the "opening_time" field.
func OpeningTimeNotIn(vs ...string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldNotIn(FieldOpeningTime, vs...))
}

// OpeningTimeGT applies the GT predicate on the "opening_time" field.
func OpeningTimeGT(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldGT(FieldOpeningTime, v))
}

// OpeningTimeGTE applies the GTE predicate on the "opening_time" field.
func OpeningTimeGTE(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldGTE(FieldOpeningTime, v))
}

// OpeningTimeLT applies the LT predicate on the "opening_time" field.
func OpeningTimeLT(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldLT(FieldOpeningTime, v))
}

// OpeningTimeLTE applies the LTE predicate on the "opening_time" field.
func OpeningTimeLTE(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldLTE(FieldOpeningTime, v))
}

// OpeningTimeContains applies the Contains predicate on the "opening_time" field.
func OpeningTimeContains(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldContains(FieldOpeningTime, v))
}

// OpeningTimeHasPrefix applies the HasPrefix predicate on the "opening_time" field.
func OpeningTimeHasPrefix(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldHasPrefix(FieldOpeningTime, v))
}

// OpeningTimeHasSuffix applies the HasSuffix predicate on the "opening_time" field.
func OpeningTimeHasSuffix(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldHasSuffix(FieldOpeningTime, v))
}

// OpeningTimeIsNil applies the IsNil predicate on the "opening_time" field.
func OpeningTimeIsNil() predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldIsNull(FieldOpeningTime))
}

// OpeningTimeNotNil applies the NotNil predicate on the "opening_time" field.
func OpeningTimeNotNil() predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldNotNull(FieldOpeningTime))
}

// OpeningTimeEqualFold applies the EqualFold predicate on the "opening_time" field.
func OpeningTimeEqualFold(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldEqualFold(FieldOpeningTime, v))
}

// OpeningTimeContainsFold applies the ContainsFold predicate on the "opening_time" field.
func OpeningTimeContainsFold(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldContainsFold(FieldOpeningTime, v))
}

// ClosingTimeEQ applies the EQ predicate on the "closing_time" field.
func ClosingTimeEQ(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldEQ(FieldClosingTime, v))
}

// ClosingTimeNEQ applies the NEQ predicate on the "closing_time" field.
func ClosingTimeNEQ(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldNEQ(FieldClosingTime, v))
}

// ClosingTimeIn applies the In predicate on the "closing_time" field.
func ClosingTimeIn(vs ...string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldIn(FieldClosingTime, vs...))
}

// ClosingTimeNotIn applies the NotIn predicate on the "closing_time" field.
func ClosingTimeNotIn(vs ...string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldNotIn(FieldClosingTime, vs...))
}

// ClosingTimeGT applies the GT predicate on the "closing_time" field.
func ClosingTimeGT(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldGT(FieldClosingTime, v))
}

// ClosingTimeGTE applies the GTE predicate on the "closing_time" field.
func ClosingTimeGTE(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldGTE(FieldClosingTime, v))
}

// ClosingTimeLT applies the LT predicate on the "closing_time" field.
func ClosingTimeLT(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldLT(FieldClosingTime, v))
}

// ClosingTimeLTE applies the LTE predicate on the "closing_time" field.
func ClosingTimeLTE(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldLTE(FieldClosingTime, v))
}

// ClosingTimeContains applies the Contains predicate on the "closing_time" field.
func ClosingTimeContains(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldContains(FieldClosingTime, v))
}

// ClosingTimeHasPrefix applies the HasPrefix predicate on the "closing_time" field.
func ClosingTimeHasPrefix(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldHasPrefix(FieldClosingTime, v))
}

// ClosingTimeHasSuffix applies the HasSuffix predicate on the "closing_time" field.
func ClosingTimeHasSuffix(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldHasSuffix(FieldClosingTime, v))
}

// ClosingTimeIsNil applies the IsNil predicate on the "closing_time" field.
func ClosingTimeIsNil() predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldIsNull(FieldClosingTime))
}

// ClosingTimeNotNil applies the NotNil predicate on the "closing_time" field.
func ClosingTimeNotNil() predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldNotNull(FieldClosingTime))
}

// ClosingTimeEqualFold applies the EqualFold predicate on the "closing_time" field.
func ClosingTimeEqualFold(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldEqualFold(FieldClosingTime, v))
}

// ClosingTimeContainsFold applies the ContainsFold predicate on the "closing_time" field.
func ClosingTimeContainsFold(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldContainsFold(FieldClosingTime, v))
}

// LunchBreakEQ applies the EQ predicate on the "lunch_break" field.
func LunchBreakEQ(v bool) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldEQ(FieldLunchBreak, v))
}

// LunchBreakNEQ applies the NEQ predicate on the "lunch_break" field.
func LunchBreakNEQ(v bool) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldNEQ(FieldLunchBreak, v))
}

// LunchStartEQ applies the EQ predicate on the "lunch_start" field.
func LunchStartEQ(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldEQ(FieldLunchStart, v))
}

// LunchStartNEQ applies the NEQ predicate on the "lunch_start" field.
func LunchStartNEQ(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldNEQ(FieldLunchStart, v))
}

// LunchStartIn applies the In predicate on the "lunch_start" field.
func LunchStartIn(vs ...string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldIn(FieldLunchStart, vs...))
}

// LunchStartNotIn applies the NotIn predicate on the "lunch_start" field.
func LunchStartNotIn(vs ...string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldNotIn(FieldLunchStart, vs...))
}

// LunchStartGT applies the GT predicate on the "lunch_start" field.
func LunchStartGT(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldGT(FieldLunchStart, v))
}

// LunchStartGTE applies the GTE predicate on the "lunch_start" field.
func LunchStartGTE(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldGTE(FieldLunchStart, v))
}

// LunchStartLT applies the LT predicate on the "lunch_start" field.
func LunchStartLT(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldLT(FieldLunchStart, v))
}

// LunchStartLTE applies the LTE predicate on the "lunch_start" field.
func LunchStartLTE(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldLTE(FieldLunchStart, v))
}

// LunchStartContains applies the Contains predicate on the "lunch_start" field.
func LunchStartContains(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldContains(FieldLunchStart, v))
}

// LunchStartHasPrefix applies the HasPrefix predicate on the "lunch_start" field.
func LunchStartHasPrefix(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldHasPrefix(FieldLunchStart, v))
}

// LunchStartHasSuffix applies the HasSuffix predicate on the "lunch_start" field.
func LunchStartHasSuffix(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldHasSuffix(FieldLunchStart, v))
}

// LunchStartIsNil applies the IsNil predicate on the "lunch_start" field.
func LunchStartIsNil() predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldIsNull(FieldLunchStart))
}

// LunchStartNotNil applies the NotNil predicate on the "lunch_start" field.
func LunchStartNotNil() predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldNotNull(FieldLunchStart))
}

// LunchStartEqualFold applies the EqualFold predicate on the "lunch_start" field.
func LunchStartEqualFold(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldEqualFold(FieldLunchStart, v))
}

// LunchStartContainsFold applies the ContainsFold predicate on the "lunch_start" field.
func LunchStartContainsFold(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldContainsFold(FieldLunchStart, v))
}

// LunchEndEQ applies the EQ predicate on the "lunch_end" field.
func LunchEndEQ(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldEQ(FieldLunchEnd, v))
}

// LunchEndNEQ applies the NEQ predicate on the "lunch_end" field.
func LunchEndNEQ(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldNEQ(FieldLunchEnd, v))
}

// LunchEndIn applies the In predicate on the "lunch_end" field.
func LunchEndIn(vs ...string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldIn(FieldLunchEnd, vs...))
}

// LunchEndNotIn applies the NotIn predicate on the "lunch_end" field.
func LunchEndNotIn(vs ...string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldNotIn(FieldLunchEnd, vs...))
}

// LunchEndGT applies the GT predicate on the "lunch_end" field.
func LunchEndGT(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldGT(FieldLunchEnd, v))
}

// LunchEndGTE applies the GTE predicate on the "lunch_end" field.
func LunchEndGTE(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldGTE(FieldLunchEnd, v))
}

// LunchEndLT applies the LT predicate on the "lunch_end" field.
func LunchEndLT(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldLT(FieldLunchEnd, v))
}

// LunchEndLTE applies the LTE predicate on the "lunch_end" field.
func LunchEndLTE(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldLTE(FieldLunchEnd, v))
}

// LunchEndContains applies the Contains predicate on the "lunch_end" field.
func LunchEndContains(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldContains(FieldLunchEnd, v))
}

// LunchEndHasPrefix applies the HasPrefix predicate on the "lunch_end" field.
func LunchEndHasPrefix(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldHasPrefix(FieldLunchEnd, v))
}

// LunchEndHasSuffix applies the HasSuffix predicate on the "lunch_end" field.
func LunchEndHasSuffix(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldHasSuffix(FieldLunchEnd, v))
}

// LunchEndIsNil applies the IsNil predicate on the "lunch_end" field.
func LunchEndIsNil() predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldIsNull(FieldLunchEnd))
}

// LunchEndNotNil applies the NotNil predicate on the "lunch_end" field.
func LunchEndNotNil() predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldNotNull(FieldLunchEnd))
}

// LunchEndEqualFold applies the EqualFold predicate on the "lunch_end" field.
func LunchEndEqualFold(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldEqualFold(FieldLunchEnd, v))
}

// LunchEndContainsFold applies the ContainsFold predicate on the "lunch_end" field.
func LunchEndContainsFold(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldContainsFold(FieldLunchEnd, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.BusinessHours {
	return predicate.BusinessHours(sql.FieldContainsFold(FieldNotes, v))
}

// HasSettings applies the HasEdge predicate on the "settings" edge.
func HasSettings() predicate.BusinessHours {
	return predicate.BusinessHours(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SettingsTable, SettingsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSettingsWith applies the HasEdge predicate on the "settings" edge with a given conditions (other predicates).
func HasSettingsWith(preds ...predicate.ClinicSettings) predicate.BusinessHours {
	return predicate.BusinessHours(func(s *sql.Selector) {
		step := newSettingsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BusinessHours) predicate.BusinessHours {
	return predicate.BusinessHours(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BusinessHours) predicate.BusinessHours {
	return predicate.BusinessHours(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BusinessHours) predicate.BusinessHours {
	return predicate.BusinessHours(sql.NotPredicates(p))
}
