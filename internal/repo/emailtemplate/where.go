// Code generated by ent, DO NOT EDIT.

package emailtemplate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldEQ(FieldName, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldEQ(FieldSubject, v))
}

// BodyHTML applies equality check predicate on the "body_html" field. It's identical to BodyHTMLEQ.
func BodyHTML(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldEQ(FieldBodyHTML, v))
}

// BodyText applies equality check predicate on the "body_text" field. It's identical to BodyTextEQ.
func BodyText(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldEQ(FieldBodyText, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldEQ(FieldIsActive, v))
}

// VariablesHelp applies equality check predicate on the "variables_help" field. It's identical to VariablesHelpEQ.
func VariablesHelp(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldEQ(FieldVariablesHelp, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldContainsFold(FieldName, v))
}

// TemplateTypeEQ applies the EQ predicate on the "template_type" field.
func TemplateTypeEQ(v TemplateType) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldEQ(FieldTemplateType, v))
}

// TemplateTypeNEQ applies the NEQ predicate on the "template_type" field.
func TemplateTypeNEQ(v TemplateType) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldNEQ(FieldTemplateType, v))
}

// TemplateTypeIn applies the In predicate on the "template_type" field.
func TemplateTypeIn(vs ...TemplateType) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldIn(FieldTemplateType, vs...))
}

// TemplateTypeNotIn applies the NotIn predicate on the "template_type" field.
func TemplateTypeNotIn(vs ...TemplateType) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldNotIn(FieldTemplateType, vs...))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldContainsFold(FieldSubject, v))
}

// BodyHTMLEQ applies the EQ predicate on the "body_html" field.
func BodyHTMLEQ(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldEQ(FieldBodyHTML, v))
}

// BodyHTMLNEQ applies the NEQ predicate on the "body_html" field.
func BodyHTMLNEQ(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldNEQ(FieldBodyHTML, v))
}

// BodyHTMLIn applies the In predicate on the "body_html" field.
func BodyHTMLIn(vs ...string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldIn(FieldBodyHTML, vs...))
}

// BodyHTMLNotIn applies the NotIn predicate on the "body_html" field.
func BodyHTMLNotIn(vs ...string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldNotIn(FieldBodyHTML, vs...))
}

// BodyHTMLGT applies the GT predicate on the "body_html" field.
func BodyHTMLGT(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldGT(FieldBodyHTML, v))
}

// BodyHTMLGTE applies the GTE predicate on the "body_html" field.
func BodyHTMLGTE(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldGTE(FieldBodyHTML, v))
}

// BodyHTMLLT applies the LT predicate on the "body_html" field.
func BodyHTMLLT(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldLT(FieldBodyHTML, v))
}

// BodyHTMLLTE applies the LTE predicate on the "body_html" field.
func BodyHTMLLTE(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldLTE(FieldBodyHTML, v))
}

// BodyHTMLContains applies the Contains predicate on the "body_html" field.
func BodyHTMLContains(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldContains(FieldBodyHTML, v))
}

// BodyHTMLHasPrefix applies the HasPrefix predicate on the "body_html" field.
func BodyHTMLHasPrefix(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldHasPrefix(FieldBodyHTML, v))
}

// BodyHTMLHasSuffix applies the HasSuffix predicate on the "body_html" field.
func BodyHTMLHasSuffix(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldHasSuffix(FieldBodyHTML, v))
}

// BodyHTMLEqualFold applies the EqualFold predicate on the "body_html" field.
func BodyHTMLEqualFold(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldEqualFold(FieldBodyHTML, v))
}

// BodyHTMLContainsFold applies the ContainsFold predicate on the "body_html" field.
func BodyHTMLContainsFold(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldContainsFold(FieldBodyHTML, v))
}

// BodyTextEQ applies the EQ predicate on the "body_text" field.
func BodyTextEQ(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldEQ(FieldBodyText, v))
}

// BodyTextNEQ applies the NEQ predicate on the "body_text" field.
func BodyTextNEQ(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldNEQ(FieldBodyText, v))
}

// BodyTextIn applies the In predicate on the "body_text" field.
func BodyTextIn(vs ...string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldIn(FieldBodyText, vs...))
}

// BodyTextNotIn applies the NotIn predicate on the "body_text" field.
func BodyTextNotIn(vs ...string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldNotIn(FieldBodyText, vs...))
}

// BodyTextGT applies the GT predicate on the "body_text" field.
func BodyTextGT(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldGT(FieldBodyText, v))
}

// BodyTextGTE applies the GTE predicate on the "body_text" field.
func BodyTextGTE(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldGTE(FieldBodyText, v))
}

// BodyTextLT applies the LT predicate on the "body_text" field.
func BodyTextLT(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldLT(FieldBodyText, v))
}

// BodyTextLTE applies the LTE predicate on the "body_text" field.
func BodyTextLTE(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldLTE(FieldBodyText, v))
}

// BodyTextContains applies the Contains predicate on the "body_text" field.
func BodyTextContains(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldContains(FieldBodyText, v))
}

// BodyTextHasPrefix applies the HasPrefix predicate on the "body_text" field.
func BodyTextHasPrefix(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldHasPrefix(FieldBodyText, v))
}

// BodyTextHasSuffix applies the HasSuffix predicate on the "body_text" field.
func BodyTextHasSuffix(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldHasSuffix(FieldBodyText, v))
}

// BodyTextEqualFold applies the EqualFold predicate on the "body_text" field.
func BodyTextEqualFold(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldEqualFold(FieldBodyText, v))
}

// BodyTextContainsFold applies the ContainsFold predicate on the "body_text" field.
func BodyTextContainsFold(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldContainsFold(FieldBodyText, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldNEQ(FieldIsActive, v))
}

// VariablesHelpEQ applies the EQ predicate on the "variables_help" field.
func VariablesHelpEQ(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldEQ(FieldVariablesHelp, v))
}

// VariablesHelpNEQ applies the NEQ predicate on the "variables_help" field.
func VariablesHelpNEQ(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldNEQ(FieldVariablesHelp, v))
}

// VariablesHelpIn applies the In predicate on the "variables_help" field.
func VariablesHelpIn(vs ...string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldIn(FieldVariablesHelp, vs...))
}

// VariablesHelpNotIn applies the NotIn predicate on the "variables_help" field.
func VariablesHelpNotIn(vs ...string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldNotIn(FieldVariablesHelp, vs...))
}

// VariablesHelpGT applies the GT predicate on the "variables_help" field.
func VariablesHelpGT(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldGT(FieldVariablesHelp, v))
}

// VariablesHelpGTE applies the GTE predicate on the "variables_help" field.
func VariablesHelpGTE(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldGTE(FieldVariablesHelp, v))
}

// VariablesHelpLT applies the LT predicate on the "variables_help" field.
func VariablesHelpLT(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldLT(FieldVariablesHelp, v))
}

// VariablesHelpLTE applies the LTE predicate on the "variables_help" field.
func VariablesHelpLTE(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldLTE(FieldVariablesHelp, v))
}

// VariablesHelpContains applies the Contains predicate on the "variables_help" field.
func VariablesHelpContains(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldContains(FieldVariablesHelp, v))
}

// VariablesHelpHasPrefix applies the HasPrefix predicate on the "variables_help" field.
func VariablesHelpHasPrefix(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldHasPrefix(FieldVariablesHelp, v))
}

// VariablesHelpHasSuffix applies the HasSuffix predicate on the "variables_help" field.
func VariablesHelpHasSuffix(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldHasSuffix(FieldVariablesHelp, v))
}

// VariablesHelpIsNil applies the IsNil predicate on the "variables_help" field.
func VariablesHelpIsNil() predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldIsNull(FieldVariablesHelp))
}

// VariablesHelpNotNil applies the NotNil predicate on the "variables_help" field.
func VariablesHelpNotNil() predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldNotNull(FieldVariablesHelp))
}

// VariablesHelpEqualFold applies the EqualFold predicate on the "variables_help" field.
func VariablesHelpEqualFold(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldEqualFold(FieldVariablesHelp, v))
}

// VariablesHelpContainsFold applies the ContainsFold predicate on the "variables_help" field.
func VariablesHelpContainsFold(v string) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.FieldContainsFold(FieldVariablesHelp, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EmailTemplate) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EmailTemplate) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EmailTemplate) predicate.EmailTemplate {
	return predicate.EmailTemplate(sql.NotPredicates(p))
}
