package constant

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

type AppointmentChannel string

const (
	AppointmentChannelGoogle     AppointmentChannel = "google"
	AppointmentChannelPresencial AppointmentChannel = "presencial"
)

const (
	DefaultAppointmentDuration = 60
	AppointmentDateLayout      = "2006-01-02"
)
