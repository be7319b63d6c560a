package entities

// Attendee is one row of the attendance roster supplied with a request.
// Attendance is a free-text status such as "Present Through Video" or "absent".
type Attendee struct {
	Name       string `json:"Name" validate:"required"`
	Attendance string `json:"Attendance" validate:"required"`
}
