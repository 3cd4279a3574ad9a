// Code generated by ent, DO NOT EDIT.

package smstemplate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldEQ(FieldName, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldEQ(FieldBody, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldEQ(FieldIsActive, v))
}

// VariablesHelp applies equality check predicate on the "variables_help" field. It's identical to VariablesHelpEQ.
func VariablesHelp(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldEQ(FieldVariablesHelp, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldContainsFold(FieldName, v))
}

// TemplateTypeEQ applies the EQ predicate on the "template_type" field.
func TemplateTypeEQ(v TemplateType) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldEQ(FieldTemplateType, v))
}

// TemplateTypeNEQ applies the NEQ predicate on the "template_type" field.
func TemplateTypeNEQ(v TemplateType) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldNEQ(FieldTemplateType, v))
}

// TemplateTypeIn applies the In predicate on the "template_type" field.
func TemplateTypeIn(vs ...TemplateType) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldIn(FieldTemplateType, vs...))
}

// TemplateTypeNotIn applies the NotIn predicate on the "template_type" field.
func TemplateTypeNotIn(vs ...TemplateType) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldNotIn(FieldTemplateType, vs...))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldContainsFold(FieldBody, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldNEQ(FieldIsActive, v))
}

// VariablesHelpEQ applies the EQ predicate on the "variables_help" field.
func VariablesHelpEQ(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldEQ(FieldVariablesHelp, v))
}

// VariablesHelpNEQ applies the NEQ predicate on the "variables_help" field.
func VariablesHelpNEQ(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldNEQ(FieldVariablesHelp, v))
}

// VariablesHelpIn applies the In predicate on the "variables_help" field.
func VariablesHelpIn(vs ...string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldIn(FieldVariablesHelp, vs...))
}

// VariablesHelpNotIn applies the NotIn predicate on the "variables_help" field.
func VariablesHelpNotIn(vs ...string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldNotIn(FieldVariablesHelp, vs...))
}

// VariablesHelpGT applies the GT predicate on the "variables_help" field.
func VariablesHelpGT(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldGT(FieldVariablesHelp, v))
}

// VariablesHelpGTE applies the GTE predicate on the "variables_help" field.
func VariablesHelpGTE(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldGTE(FieldVariablesHelp, v))
}

// VariablesHelpLT applies the LT predicate on the "variables_help" field.
func VariablesHelpLT(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldLT(FieldVariablesHelp, v))
}

// VariablesHelpLTE applies the LTE predicate on the "variables_help" field.
func VariablesHelpLTE(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldLTE(FieldVariablesHelp, v))
}

// VariablesHelpContains applies the Contains predicate on the "variables_help" field.
func VariablesHelpContains(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldContains(FieldVariablesHelp, v))
}

// VariablesHelpHasPrefix applies the HasPrefix predicate on the "variables_help" field.
func VariablesHelpHasPrefix(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldHasPrefix(FieldVariablesHelp, v))
}

// VariablesHelpHasSuffix applies the HasSuffix predicate on the "variables_help" field.
func VariablesHelpHasSuffix(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldHasSuffix(FieldVariablesHelp, v))
}

// VariablesHelpIsNil applies the IsNil predicate on the "variables_help" field.
func VariablesHelpIsNil() predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldIsNull(FieldVariablesHelp))
}

// VariablesHelpNotNil applies the NotNil predicate on the "variables_help" field.
func VariablesHelpNotNil() predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldNotNull(FieldVariablesHelp))
}

// VariablesHelpEqualFold applies the EqualFold predicate on the "variables_help" field.
func VariablesHelpEqualFold(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldEqualFold(FieldVariablesHelp, v))
}

// VariablesHelpContainsFold applies the ContainsFold predicate on the "variables_help" field.
func VariablesHelpContainsFold(v string) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.FieldContainsFold(FieldVariablesHelp, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SMSTemplate) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SMSTemplate) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SMSTemplate) predicate.SMSTemplate {
	return predicate.SMSTemplate(sql.NotPredicates(p))
}
