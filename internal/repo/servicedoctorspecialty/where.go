// Code generated by ent, DO NOT EDIT.

package servicedoctorspecialty

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldEQ(FieldCreatedAt, v))
}

// ServiceID applies equality check predicate on the "service_id" field. It's identical to ServiceIDEQ.
func ServiceID(v uuid.UUID) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldEQ(FieldServiceID, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldEQ(FieldDoctorID, v))
}

// IsPreferredProvider applies equality check predicate on the "is_preferred_provider" field. It's identical to IsPreferredProviderEQ.
func IsPreferredProvider(v bool) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldEQ(FieldIsPreferredProvider, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldLTE(FieldCreatedAt, v))
}

// ServiceIDEQ applies the EQ predicate on the "service_id" field.
func ServiceIDEQ(v uuid.UUID) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldEQ(FieldServiceID, v))
}

// ServiceIDNEQ applies the NEQ predicate on the "service_id" field.
func ServiceIDNEQ(v uuid.UUID) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldNEQ(FieldServiceID, v))
}

// ServiceIDIn applies the In predicate on the "service_id" field.
func ServiceIDIn(vs ...uuid.UUID) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldIn(FieldServiceID, vs...))
}

// ServiceIDNotIn applies the NotIn predicate on the "service_id" field.
func ServiceIDNotIn(vs ...uuid.UUID) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldNotIn(FieldServiceID, vs...))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldNotIn(FieldDoctorID, vs...))
}

// ProficiencyLevelEQ applies the EQ predicate on the "proficiency_level" field.
func ProficiencyLevelEQ(v ProficiencyLevel) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldEQ(FieldProficiencyLevel, v))
}

// ProficiencyLevelNEQ applies the NEQ predicate on the "proficiency_level" field.
func ProficiencyLevelNEQ(v ProficiencyLevel) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldNEQ(FieldProficiencyLevel, v))
}

// ProficiencyLevelIn applies the In predicate on the "proficiency_level" field.
func ProficiencyLevelIn(vs ...ProficiencyLevel) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldIn(FieldProficiencyLevel, vs...))
}

// ProficiencyLevelNotIn applies the NotIn predicate on the "proficiency_level" field.
func ProficiencyLevelNotIn(vs ...ProficiencyLevel) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldNotIn(FieldProficiencyLevel, vs...))
}

// IsPreferredProviderEQ applies the EQ predicate on the "is_preferred_provider" field.
func IsPreferredProviderEQ(v bool) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldEQ(FieldIsPreferredProvider, v))
}

// IsPreferredProviderNEQ applies the NEQ predicate on the "is_preferred_provider" field.
func IsPreferredProviderNEQ(v bool) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.FieldNEQ(FieldIsPreferredProvider, v))
}

// HasService applies the HasEdge predicate on the "service" edge.
func HasService() predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, ServiceTable, ServiceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasServiceWith applies the HasEdge predicate on the "service" edge with a given conditions (other predicates).
func HasServiceWith(preds ...predicate.Service) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(func(s *sql.Selector) {
		step := newServiceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDoctor applies the HasEdge predicate on the "doctor" edge.
func HasDoctor() predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, DoctorTable, DoctorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDoctorWith applies the HasEdge predicate on the "doctor" edge with a given conditions (other predicates).
func HasDoctorWith(preds ...predicate.Doctor) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(func(s *sql.Selector) {
		step := newDoctorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ServiceDoctorSpecialty) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ServiceDoctorSpecialty) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ServiceDoctorSpecialty) predicate.ServiceDoctorSpecialty {
	return predicate.ServiceDoctorSpecialty(sql.NotPredicates(p))
}
