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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/user"
)

// Patient is the model entity for the Patient schema.
type Patient struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Human-readable id, PAT<year><seq:04d>, assigned once at create
	PatientID string `json:"patient_id,omitempty"`
	// MiddleName holds the value of the "middle_name" field.
	MiddleName *string `json:"middle_name,omitempty"`
	// PreferredName holds the value of the "preferred_name" field.
	PreferredName *string `json:"preferred_name,omitempty"`
	// Occupation holds the value of the "occupation" field.
	Occupation *string `json:"occupation,omitempty"`
	// BloodType holds the value of the "blood_type" field.
	BloodType patient.BloodType `json:"blood_type,omitempty"`
	// Fitzpatrick skin phototype
	SkinType *patient.SkinType `json:"skin_type,omitempty"`
	// HeightCm holds the value of the "height_cm" field.
	HeightCm *float64 `json:"height_cm,omitempty"`
	// WeightKg holds the value of the "weight_kg" field.
	WeightKg *float64 `json:"weight_kg,omitempty"`
	// PreferredContactMethod holds the value of the "preferred_contact_method" field.
	PreferredContactMethod patient.PreferredContactMethod `json:"preferred_contact_method,omitempty"`
	// PreferredLanguage holds the value of the "preferred_language" field.
	PreferredLanguage string `json:"preferred_language,omitempty"`
	// InsuranceProvider holds the value of the "insurance_provider" field.
	InsuranceProvider *string `json:"insurance_provider,omitempty"`
	// AES-256-GCM encrypted at rest (pkg/crypto)
	InsuranceNumber *string `json:"-"`
	// InsuranceValidUntil holds the value of the "insurance_valid_until" field.
	InsuranceValidUntil *time.Time `json:"insurance_valid_until,omitempty"`
	// Self-FK → patients.id
	ReferredByID *uuid.UUID `json:"referred_by_id,omitempty"`
	// ReferralSource holds the value of the "referral_source" field.
	ReferralSource *patient.ReferralSource `json:"referral_source,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PatientQuery when eager-loading is set.
	Edges        PatientEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PatientEdges holds the relations/edges for other nodes in the graph.
type PatientEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// ReferredBy holds the value of the referred_by edge.
	ReferredBy *Patient `json:"referred_by,omitempty"`
	// Referrals holds the value of the referrals edge.
	Referrals []*Patient `json:"referrals,omitempty"`
	// MedicalHistory holds the value of the medical_history edge.
	MedicalHistory []*MedicalHistory `json:"medical_history,omitempty"`
	// Documents holds the value of the documents edge.
	Documents []*PatientDocument `json:"documents,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatientEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// ReferredByOrErr returns the ReferredBy value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatientEdges) ReferredByOrErr() (*Patient, error) {
	if e.ReferredBy != nil {
		return e.ReferredBy, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "referred_by"}
}

// ReferralsOrErr returns the Referrals value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) ReferralsOrErr() ([]*Patient, error) {
	if e.loadedTypes[2] {
		return e.Referrals, nil
	}
	return nil, &NotLoadedError{edge: "referrals"}
}

// MedicalHistoryOrErr returns the MedicalHistory value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) MedicalHistoryOrErr() ([]*MedicalHistory, error) {
	if e.loadedTypes[3] {
		return e.MedicalHistory, nil
	}
	return nil, &NotLoadedError{edge: "medical_history"}
}

// DocumentsOrErr returns the Documents value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) DocumentsOrErr() ([]*PatientDocument, error) {
	if e.loadedTypes[4] {
		return e.Documents, nil
	}
	return nil, &NotLoadedError{edge: "documents"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Patient) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case patient.FieldReferredByID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case patient.FieldIsActive:
			values[i] = new(sql.NullBool)
		case patient.FieldHeightCm, patient.FieldWeightKg:
			values[i] = new(sql.NullFloat64)
		case patient.FieldPatientID, patient.FieldMiddleName, patient.FieldPreferredName, patient.FieldOccupation, patient.FieldBloodType, patient.FieldSkinType, patient.FieldPreferredContactMethod, patient.FieldPreferredLanguage, patient.FieldInsuranceProvider, patient.FieldInsuranceNumber, patient.FieldReferralSource:
			values[i] = new(sql.NullString)
		case patient.FieldCreatedAt, patient.FieldUpdatedAt, patient.FieldInsuranceValidUntil:
			values[i] = new(sql.NullTime)
		case patient.FieldID, patient.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Patient fields.
func (_m *Patient) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case patient.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case patient.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case patient.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case patient.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case patient.FieldPatientID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value.Valid {
				_m.PatientID = value.String
			}
		case patient.FieldMiddleName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field middle_name", values[i])
			} else if value.Valid {
				_m.MiddleName = new(string)
				*_m.MiddleName = value.String
			}
		case patient.FieldPreferredName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preferred_name", values[i])
			} else if value.Valid {
				_m.PreferredName = new(string)
				*_m.PreferredName = value.String
			}
		case patient.FieldOccupation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field occupation", values[i])
			} else if value.Valid {
				_m.Occupation = new(string)
				*_m.Occupation = value.String
			}
		case patient.FieldBloodType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blood_type", values[i])
			} else if value.Valid {
				_m.BloodType = patient.BloodType(value.String)
			}
		case patient.FieldSkinType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skin_type", values[i])
			} else if value.Valid {
				_m.SkinType = new(patient.SkinType)
				*_m.SkinType = patient.SkinType(value.String)
			}
		case patient.FieldHeightCm:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field height_cm", values[i])
			} else if value.Valid {
				_m.HeightCm = new(float64)
				*_m.HeightCm = value.Float64
			}
		case patient.FieldWeightKg:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field weight_kg", values[i])
			} else if value.Valid {
				_m.WeightKg = new(float64)
				*_m.WeightKg = value.Float64
			}
		case patient.FieldPreferredContactMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preferred_contact_method", values[i])
			} else if value.Valid {
				_m.PreferredContactMethod = patient.PreferredContactMethod(value.String)
			}
		case patient.FieldPreferredLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preferred_language", values[i])
			} else if value.Valid {
				_m.PreferredLanguage = value.String
			}
		case patient.FieldInsuranceProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field insurance_provider", values[i])
			} else if value.Valid {
				_m.InsuranceProvider = new(string)
				*_m.InsuranceProvider = value.String
			}
		case patient.FieldInsuranceNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field insurance_number", values[i])
			} else if value.Valid {
				_m.InsuranceNumber = new(string)
				*_m.InsuranceNumber = value.String
			}
		case patient.FieldInsuranceValidUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field insurance_valid_until", values[i])
			} else if value.Valid {
				_m.InsuranceValidUntil = new(time.Time)
				*_m.InsuranceValidUntil = value.Time
			}
		case patient.FieldReferredByID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field referred_by_id", values[i])
			} else if value.Valid {
				_m.ReferredByID = new(uuid.UUID)
				*_m.ReferredByID = *value.S.(*uuid.UUID)
			}
		case patient.FieldReferralSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field referral_source", values[i])
			} else if value.Valid {
				_m.ReferralSource = new(patient.ReferralSource)
				*_m.ReferralSource = patient.ReferralSource(value.String)
			}
		case patient.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Patient.
// This includes values selected through modifiers, order, etc.
func (_m *Patient) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Patient entity.
func (_m *Patient) QueryUser() *UserQuery {
	return NewPatientClient(_m.config).QueryUser(_m)
}

// QueryReferredBy queries the "referred_by" edge of the Patient entity.
func (_m *Patient) QueryReferredBy() *PatientQuery {
	return NewPatientClient(_m.config).QueryReferredBy(_m)
}

// QueryReferrals queries the "referrals" edge of the Patient entity.
func (_m *Patient) QueryReferrals() *PatientQuery {
	return NewPatientClient(_m.config).QueryReferrals(_m)
}

// QueryMedicalHistory queries the "medical_history" edge of the Patient entity.
func (_m *Patient) QueryMedicalHistory() *MedicalHistoryQuery {
	return NewPatientClient(_m.config).QueryMedicalHistory(_m)
}

// QueryDocuments queries the "documents" edge of the Patient entity.
func (_m *Patient) QueryDocuments() *PatientDocumentQuery {
	return NewPatientClient(_m.config).QueryDocuments(_m)
}

// Update returns a builder for updating this Patient.
// Note that you need to call Patient.Unwrap() before calling this method if this Patient
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Patient) Update() *PatientUpdateOne {
	return NewPatientClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Patient entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Patient) Unwrap() *Patient {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Patient is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Patient) String() string {
	var builder strings.Builder
	builder.WriteString("Patient(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(_m.PatientID)
	builder.WriteString(", ")
	if v := _m.MiddleName; v != nil {
		builder.WriteString("middle_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PreferredName; v != nil {
		builder.WriteString("preferred_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Occupation; v != nil {
		builder.WriteString("occupation=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("blood_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.BloodType))
	builder.WriteString(", ")
	if v := _m.SkinType; v != nil {
		builder.WriteString("skin_type=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.HeightCm; v != nil {
		builder.WriteString("height_cm=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.WeightKg; v != nil {
		builder.WriteString("weight_kg=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("preferred_contact_method=")
	builder.WriteString(fmt.Sprintf("%v", _m.PreferredContactMethod))
	builder.WriteString(", ")
	builder.WriteString("preferred_language=")
	builder.WriteString(_m.PreferredLanguage)
	builder.WriteString(", ")
	if v := _m.InsuranceProvider; v != nil {
		builder.WriteString("insurance_provider=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("insurance_number=<sensitive>")
	builder.WriteString(", ")
	if v := _m.InsuranceValidUntil; v != nil {
		builder.WriteString("insurance_valid_until=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ReferredByID; v != nil {
		builder.WriteString("referred_by_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ReferralSource; v != nil {
		builder.WriteString("referral_source=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteByte(')')
	return builder.String()
}

// Patients is a parsable slice of Patient.
type Patients []*Patient
