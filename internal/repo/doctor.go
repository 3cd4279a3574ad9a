// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctor"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/user"
)

// Doctor is the model entity for the Doctor schema.
type Doctor struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// LicenseNumber holds the value of the "license_number" field.
	LicenseNumber string `json:"license_number,omitempty"`
	// YearsOfExperience holds the value of the "years_of_experience" field.
	YearsOfExperience int `json:"years_of_experience,omitempty"`
	// Biography holds the value of the "biography" field.
	Biography string `json:"biography,omitempty"`
	// Educational background
	Education string `json:"education,omitempty"`
	// Certifications holds the value of the "certifications" field.
	Certifications *string `json:"certifications,omitempty"`
	// Consultation fee in KES cents
	ConsultationFee int64 `json:"consultation_fee,omitempty"`
	// IsAvailable holds the value of the "is_available" field.
	IsAvailable bool `json:"is_available,omitempty"`
	// S3 key for the profile image
	ProfileImageKey *string `json:"profile_image_key,omitempty"`
	// TwitterURL holds the value of the "twitter_url" field.
	TwitterURL *string `json:"twitter_url,omitempty"`
	// LinkedinURL holds the value of the "linkedin_url" field.
	LinkedinURL *string `json:"linkedin_url,omitempty"`
	// FacebookURL holds the value of the "facebook_url" field.
	FacebookURL *string `json:"facebook_url,omitempty"`
	// HospitalAffiliations holds the value of the "hospital_affiliations" field.
	HospitalAffiliations *string `json:"hospital_affiliations,omitempty"`
	// ResearchInterests holds the value of the "research_interests" field.
	ResearchInterests *string `json:"research_interests,omitempty"`
	// Publications holds the value of the "publications" field.
	Publications *string `json:"publications,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DoctorQuery when eager-loading is set.
	Edges        DoctorEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DoctorEdges holds the relations/edges for other nodes in the graph.
type DoctorEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Specializations holds the value of the specializations edge.
	Specializations []*Specialization `json:"specializations,omitempty"`
	// Availability holds the value of the availability edge.
	Availability []*DoctorAvailability `json:"availability,omitempty"`
	// Leaves holds the value of the leaves edge.
	Leaves []*DoctorLeave `json:"leaves,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DoctorEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// SpecializationsOrErr returns the Specializations value or an error if the edge
// was not loaded in eager-loading.
func (e DoctorEdges) SpecializationsOrErr() ([]*Specialization, error) {
	if e.loadedTypes[1] {
		return e.Specializations, nil
	}
	return nil, &NotLoadedError{edge: "specializations"}
}

// AvailabilityOrErr returns the Availability value or an error if the edge
// was not loaded in eager-loading.
func (e DoctorEdges) AvailabilityOrErr() ([]*DoctorAvailability, error) {
	if e.loadedTypes[2] {
		return e.Availability, nil
	}
	return nil, &NotLoadedError{edge: "availability"}
}

// LeavesOrErr returns the Leaves value or an error if the edge
// was not loaded in eager-loading.
func (e DoctorEdges) LeavesOrErr() ([]*DoctorLeave, error) {
	if e.loadedTypes[3] {
		return e.Leaves, nil
	}
	return nil, &NotLoadedError{edge: "leaves"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Doctor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case doctor.FieldIsAvailable:
			values[i] = new(sql.NullBool)
		case doctor.FieldYearsOfExperience, doctor.FieldConsultationFee:
			values[i] = new(sql.NullInt64)
		case doctor.FieldTitle, doctor.FieldLicenseNumber, doctor.FieldBiography, doctor.FieldEducation, doctor.FieldCertifications, doctor.FieldProfileImageKey, doctor.FieldTwitterURL, doctor.FieldLinkedinURL, doctor.FieldFacebookURL, doctor.FieldHospitalAffiliations, doctor.FieldResearchInterests, doctor.FieldPublications:
			values[i] = new(sql.NullString)
		case doctor.FieldCreatedAt, doctor.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case doctor.FieldID, doctor.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Doctor fields.
func (_m *Doctor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case doctor.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case doctor.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case doctor.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case doctor.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case doctor.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case doctor.FieldLicenseNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field license_number", values[i])
			} else if value.Valid {
				_m.LicenseNumber = value.String
			}
		case doctor.FieldYearsOfExperience:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field years_of_experience", values[i])
			} else if value.Valid {
				_m.YearsOfExperience = int(value.Int64)
			}
		case doctor.FieldBiography:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field biography", values[i])
			} else if value.Valid {
				_m.Biography = value.String
			}
		case doctor.FieldEducation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field education", values[i])
			} else if value.Valid {
				_m.Education = value.String
			}
		case doctor.FieldCertifications:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field certifications", values[i])
			} else if value.Valid {
				_m.Certifications = new(string)
				*_m.Certifications = value.String
			}
		case doctor.FieldConsultationFee:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consultation_fee", values[i])
			} else if value.Valid {
				_m.ConsultationFee = value.Int64
			}
		case doctor.FieldIsAvailable:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_available", values[i])
			} else if value.Valid {
				_m.IsAvailable = value.Bool
			}
		case doctor.FieldProfileImageKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field profile_image_key", values[i])
			} else if value.Valid {
				_m.ProfileImageKey = new(string)
				*_m.ProfileImageKey = value.String
			}
		case doctor.FieldTwitterURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field twitter_url", values[i])
			} else if value.Valid {
				_m.TwitterURL = new(string)
				*_m.TwitterURL = value.String
			}
		case doctor.FieldLinkedinURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field linkedin_url", values[i])
			} else if value.Valid {
				_m.LinkedinURL = new(string)
				*_m.LinkedinURL = value.String
			}
		case doctor.FieldFacebookURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field facebook_url", values[i])
			} else if value.Valid {
				_m.FacebookURL = new(string)
				*_m.FacebookURL = value.String
			}
		case doctor.FieldHospitalAffiliations:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hospital_affiliations", values[i])
			} else if value.Valid {
				_m.HospitalAffiliations = new(string)
				*_m.HospitalAffiliations = value.String
			}
		case doctor.FieldResearchInterests:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field research_interests", values[i])
			} else if value.Valid {
				_m.ResearchInterests = new(string)
				*_m.ResearchInterests = value.String
			}
		case doctor.FieldPublications:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field publications", values[i])
			} else if value.Valid {
				_m.Publications = new(string)
				*_m.Publications = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Doctor.
// This includes values selected through modifiers, order, etc.
func (_m *Doctor) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Doctor entity.
func (_m *Doctor) QueryUser() *UserQuery {
	return NewDoctorClient(_m.config).QueryUser(_m)
}

// QuerySpecializations queries the "specializations" edge of the Doctor entity.
func (_m *Doctor) QuerySpecializations() *SpecializationQuery {
	return NewDoctorClient(_m.config).QuerySpecializations(_m)
}

// QueryAvailability queries the "availability" edge of the Doctor entity.
func (_m *Doctor) QueryAvailability() *DoctorAvailabilityQuery {
	return NewDoctorClient(_m.config).QueryAvailability(_m)
}

// QueryLeaves queries the "leaves" edge of the Doctor entity.
func (_m *Doctor) QueryLeaves() *DoctorLeaveQuery {
	return NewDoctorClient(_m.config).QueryLeaves(_m)
}

// Update returns a builder for updating this Doctor.
// Note that you need to call Doctor.Unwrap() before calling this method if this Doctor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Doctor) Update() *DoctorUpdateOne {
	return NewDoctorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Doctor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Doctor) Unwrap() *Doctor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Doctor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Doctor) String() string {
	var builder strings.Builder
	builder.WriteString("Doctor(")
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
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("license_number=")
	builder.WriteString(_m.LicenseNumber)
	builder.WriteString(", ")
	builder.WriteString("years_of_experience=")
	builder.WriteString(fmt.Sprintf("%v", _m.YearsOfExperience))
	builder.WriteString(", ")
	builder.WriteString("biography=")
	builder.WriteString(_m.Biography)
	builder.WriteString(", ")
	builder.WriteString("education=")
	builder.WriteString(_m.Education)
	builder.WriteString(", ")
	if v := _m.Certifications; v != nil {
		builder.WriteString("certifications=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("consultation_fee=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsultationFee))
	builder.WriteString(", ")
	builder.WriteString("is_available=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsAvailable))
	builder.WriteString(", ")
	if v := _m.ProfileImageKey; v != nil {
		builder.WriteString("profile_image_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TwitterURL; v != nil {
		builder.WriteString("twitter_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LinkedinURL; v != nil {
		builder.WriteString("linkedin_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FacebookURL; v != nil {
		builder.WriteString("facebook_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.HospitalAffiliations; v != nil {
		builder.WriteString("hospital_affiliations=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ResearchInterests; v != nil {
		builder.WriteString("research_interests=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Publications; v != nil {
		builder.WriteString("publications=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Doctors is a parsable slice of Doctor.
type Doctors []*Doctor
