package entity

import "time"

// RegistrationStatus tracks the review state of a registration.
type RegistrationStatus string

const (
	RegistrationPending   RegistrationStatus = "pending"
	RegistrationValidated RegistrationStatus = "validated"
	RegistrationRejected  RegistrationStatus = "rejected"
)

var RegistrationStatuses = []RegistrationStatus{RegistrationPending, RegistrationValidated, RegistrationRejected}

// Registration is a member's enrolment in one schedule.
type Registration struct {
	ID                     int64              `bson:"_id" json:"id"`
	UserID                 int64              `bson:"user_id" json:"userId"`
	ScheduleID             int64              `bson:"schedule_id" json:"scheduleId"`
	Status                 RegistrationStatus `bson:"status" json:"status"`
	MedicalCertificateFile *string            `bson:"medical_certificate_file,omitempty" json:"medicalCertificateFile"`
	Notes                  *string            `bson:"notes,omitempty" json:"notes"`
	Experience             *string            `bson:"experience,omitempty" json:"experience"`
	Newsletter             bool               `bson:"newsletter" json:"newsletter"`
	CreatedAt              time.Time          `bson:"created_at" json:"createdAt"`
}
