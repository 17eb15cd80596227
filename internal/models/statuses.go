package models

type UserRole string

const (
	UserRoleDonor        UserRole = "donor"
	UserRolePatient      UserRole = "patient"
	UserRoleVeterinary   UserRole = "veterinary"
	UserRoleOrganisation UserRole = "organisation"
	UserRoleAdmin        UserRole = "admin"
)

func IsValidUserRole(role UserRole) bool {
	switch role {
	case UserRoleDonor, UserRolePatient, UserRoleVeterinary, UserRoleOrganisation, UserRoleAdmin:
		return true
	}
	return false
}

type UserStatus string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

// Urgency is the categorical priority of a blood request.
type Urgency string

const (
	UrgencyImmediate   Urgency = "immediate"
	UrgencyWithin24Hrs Urgency = "within_24_hours"
	UrgencyWithin3Days Urgency = "within_3_days"
)

const urgencyUnknownRank = 99

// Rank maps urgency to a sortable priority. Lower sorts first;
// unrecognised values sink to the bottom.
func (u Urgency) Rank() int {
	switch u {
	case UrgencyImmediate:
		return 0
	case UrgencyWithin24Hrs:
		return 1
	case UrgencyWithin3Days:
		return 2
	}
	return urgencyUnknownRank
}

// IsUrgent reports whether a request with this urgency belongs on the
// urgent-only feed (immediate or within 24 hours).
func (u Urgency) IsUrgent() bool {
	return u == UrgencyImmediate || u == UrgencyWithin24Hrs
}

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusFulfilled RequestStatus = "fulfilled"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// IsTerminal reports whether a request can no longer change state.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusFulfilled || s == RequestStatusCancelled
}

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// appointmentOrder encodes the forward-only lifecycle. Completed and
// cancelled are terminal; there is no re-opening.
var appointmentOrder = map[AppointmentStatus]int{
	AppointmentStatusPending:   0,
	AppointmentStatusConfirmed: 1,
	AppointmentStatusCompleted: 2,
	AppointmentStatusCancelled: 2,
}

// CanTransitionTo reports whether an appointment may move from s to next.
// Transitions only go forward: pending -> confirmed -> completed, with
// cancellation allowed from any non-terminal state.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	cur, ok := appointmentOrder[s]
	nxt, ok2 := appointmentOrder[next]
	if !ok || !ok2 || s == next {
		return false
	}
	if s == AppointmentStatusCompleted || s == AppointmentStatusCancelled {
		return false
	}
	return nxt > cur
}

type NotificationType string

const (
	NotificationTypeMatch       NotificationType = "match"
	NotificationTypeAppointment NotificationType = "appointment"
	NotificationTypeSystem      NotificationType = "system"
)

// DEA (Dog Erythrocyte Antigen) blood groups supported by the platform.
const (
	BloodGroupDEA11Pos  = "DEA 1.1+"
	BloodGroupDEA12Pos  = "DEA 1.2+"
	BloodGroupDEA3      = "DEA 3"
	BloodGroupDEA4      = "DEA 4"
	BloodGroupDEA5      = "DEA 5"
	BloodGroupDEA7      = "DEA 7"
	BloodGroupUniversal = "Universal"
)

// BloodGroups lists every accepted donor blood-group code.
var BloodGroups = []string{
	BloodGroupDEA11Pos,
	BloodGroupDEA12Pos,
	BloodGroupDEA3,
	BloodGroupDEA4,
	BloodGroupDEA5,
	BloodGroupDEA7,
	BloodGroupUniversal,
}

func IsValidBloodGroup(group string) bool {
	for _, g := range BloodGroups {
		if g == group {
			return true
		}
	}
	return false
}

const HealthStatusHealthy = "healthy"
