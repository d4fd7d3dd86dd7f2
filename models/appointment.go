package models

import "time"

// AppointmentStatus enumerates the lifecycle states of an appointment.
type AppointmentStatus string

const (
	StatusPending     AppointmentStatus = "PENDING"
	StatusConfirmed   AppointmentStatus = "CONFIRMED"
	StatusCancelled   AppointmentStatus = "CANCELLED"
	StatusRescheduled AppointmentStatus = "RESCHEDULED"
	StatusCompleted   AppointmentStatus = "COMPLETED"
	StatusMissed      AppointmentStatus = "MISSED"
)

// IsValid reports whether s is a recognized status value.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusRescheduled, StatusCompleted, StatusMissed:
		return true
	}
	return false
}

// Appointment is a booked visit. Date is a calendar date ("2006-01-02") and
// TimeSlot is "HH:MM" 24-hour, doctor-local; all time arithmetic is naive
// local time with no offset carried.
type Appointment struct {
	ID           string            `bson:"id" json:"id"`
	PatientID    string            `bson:"patientId" json:"patientId"`
	DoctorID     string            `bson:"doctorId" json:"doctorId"`
	Date         string            `bson:"date" json:"date"`
	TimeSlot     string            `bson:"timeSlot" json:"timeSlot"`
	Duration     int               `bson:"duration" json:"duration"` // minutes
	Status       AppointmentStatus `bson:"status" json:"status"`
	Reason       string            `bson:"reason,omitempty" json:"reason,omitempty"`
	Symptoms     string            `bson:"symptoms,omitempty" json:"symptoms,omitempty"`
	CancelReason string            `bson:"cancelReason,omitempty" json:"cancelReason,omitempty"`

	// Reminder audit flags; owned by the reminder sweeps.
	Reminder24hSent bool `bson:"reminder24hSent" json:"reminder24hSent"`
	Reminder1hSent  bool `bson:"reminder1hSent" json:"reminder1hSent"`
	FollowUpSent    bool `bson:"followUpSent" json:"followUpSent"`

	// Derived fields maintained by the repository: StartAt combines Date and
	// TimeSlot for window queries; HoldsSlot backs the partial unique index
	// that serializes concurrent bookings (true unless status is CANCELLED).
	StartAt   time.Time `bson:"startAt" json:"-"`
	HoldsSlot bool      `bson:"holdsSlot" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// StartsAt combines Date and TimeSlot into a local time.Time.
func (a *Appointment) StartsAt() (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", a.Date+" "+a.TimeSlot, time.Local)
}

// AppointmentUpdate carries the mutable fields of an appointment update
// request; nil fields are left untouched.
type AppointmentUpdate struct {
	Status       *AppointmentStatus `json:"status,omitempty"`
	Date         *string            `json:"date,omitempty"`
	TimeSlot     *string            `json:"timeSlot,omitempty"`
	CancelReason *string            `json:"cancelReason,omitempty"`
}

// CreateAppointmentRequest is the booking payload.
type CreateAppointmentRequest struct {
	PatientID string `json:"patientId"`
	DoctorID  string `json:"doctorId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	TimeSlot  string `json:"timeSlot" binding:"required"`
	Duration  int    `json:"duration"`
	Reason    string `json:"reason"`
	Symptoms  string `json:"symptoms"`
}

// DefaultSlotMinutes is the booking granularity used by the slot generator
// and the default appointment duration.
const DefaultSlotMinutes = 30
