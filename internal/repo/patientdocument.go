// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/patient"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/patientdocument"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/user"
)

// PatientDocument is the model entity for the PatientDocument schema.
type PatientDocument struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → patients.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// DocumentType holds the value of the "document_type" field.
	DocumentType patientdocument.DocumentType `json:"document_type,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// S3 object key
	FileKey string `json:"file_key,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// FK → users.id
	UploadedByID uuid.UUID `json:"uploaded_by_id,omitempty"`
	// Sensitive documents are only served via short-lived presigned URLs
	IsSensitive bool `json:"is_sensitive,omitempty"`
	// ExpiryDate holds the value of the "expiry_date" field.
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PatientDocumentQuery when eager-loading is set.
	Edges        PatientDocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PatientDocumentEdges holds the relations/edges for other nodes in the graph.
type PatientDocumentEdges struct {
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// UploadedBy holds the value of the uploaded_by edge.
	UploadedBy *User `json:"uploaded_by,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatientDocumentEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// UploadedByOrErr returns the UploadedBy value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatientDocumentEdges) UploadedByOrErr() (*User, error) {
	if e.UploadedBy != nil {
		return e.UploadedBy, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "uploaded_by"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PatientDocument) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case patientdocument.FieldIsSensitive:
			values[i] = new(sql.NullBool)
		case patientdocument.FieldDocumentType, patientdocument.FieldTitle, patientdocument.FieldFileKey, patientdocument.FieldDescription:
			values[i] = new(sql.NullString)
		case patientdocument.FieldCreatedAt, patientdocument.FieldExpiryDate:
			values[i] = new(sql.NullTime)
		case patientdocument.FieldID, patientdocument.FieldPatientID, patientdocument.FieldUploadedByID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PatientDocument fields.
func (_m *PatientDocument) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case patientdocument.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case patientdocument.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case patientdocument.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case patientdocument.FieldDocumentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_type", values[i])
			} else if value.Valid {
				_m.DocumentType = patientdocument.DocumentType(value.String)
			}
		case patientdocument.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case patientdocument.FieldFileKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_key", values[i])
			} else if value.Valid {
				_m.FileKey = value.String
			}
		case patientdocument.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case patientdocument.FieldUploadedByID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_by_id", values[i])
			} else if value != nil {
				_m.UploadedByID = *value
			}
		case patientdocument.FieldIsSensitive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_sensitive", values[i])
			} else if value.Valid {
				_m.IsSensitive = value.Bool
			}
		case patientdocument.FieldExpiryDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expiry_date", values[i])
			} else if value.Valid {
				_m.ExpiryDate = new(time.Time)
				*_m.ExpiryDate = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PatientDocument.
// This includes values selected through modifiers, order, etc.
func (_m *PatientDocument) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the PatientDocument entity.
func (_m *PatientDocument) QueryPatient() *PatientQuery {
	return NewPatientDocumentClient(_m.config).QueryPatient(_m)
}

// QueryUploadedBy queries the "uploaded_by" edge of the PatientDocument entity.
func (_m *PatientDocument) QueryUploadedBy() *UserQuery {
	return NewPatientDocumentClient(_m.config).QueryUploadedBy(_m)
}

// Update returns a builder for updating this PatientDocument.
// Note that you need to call PatientDocument.Unwrap() before calling this method if this PatientDocument
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PatientDocument) Update() *PatientDocumentUpdateOne {
	return NewPatientDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PatientDocument entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PatientDocument) Unwrap() *PatientDocument {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: PatientDocument is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PatientDocument) String() string {
	var builder strings.Builder
	builder.WriteString("PatientDocument(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("document_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentType))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("file_key=")
	builder.WriteString(_m.FileKey)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("uploaded_by_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UploadedByID))
	builder.WriteString(", ")
	builder.WriteString("is_sensitive=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsSensitive))
	builder.WriteString(", ")
	if v := _m.ExpiryDate; v != nil {
		builder.WriteString("expiry_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// PatientDocuments is a parsable slice of PatientDocument.
type PatientDocuments []*PatientDocument
