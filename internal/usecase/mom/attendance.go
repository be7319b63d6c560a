package mom

import (
	"fmt"
	"strings"

	"github.com/johnquangdev/mom-generator/internal/domain/entities"
)

const unknownMode = "N/A"

// PresentAttendee is an attendee marked present, with how they attended
type PresentAttendee struct {
	Name string
	Mode string
}

// Attendance is a roster partitioned into present and absent groups
type Attendance struct {
	Present []PresentAttendee
	Absent  []string
}

// ClassifyAttendance partitions the roster. A label starting with "present"
// (any case) is present, a label equal to "absent" (any case) is absent.
// Any other label is left out of both groups.
func ClassifyAttendance(attendees []entities.Attendee) Attendance {
	var out Attendance
	for _, a := range attendees {
		label := strings.ToLower(a.Attendance)
		switch {
		case strings.HasPrefix(label, "present"):
			out.Present = append(out.Present, PresentAttendee{Name: a.Name, Mode: attendanceMode(a.Attendance)})
		case label == "absent":
			out.Absent = append(out.Absent, a.Name)
		}
	}
	return out
}

// attendanceMode reads "Present Through Video" as "Video" and
// "Present in room" as "room".
func attendanceMode(label string) string {
	if _, after, found := strings.Cut(label, "Through "); found {
		mode, _, _ := strings.Cut(after, "Through ")
		if mode != "" {
			return mode
		}
	}
	if tokens := strings.Split(label, " "); len(tokens) > 2 && tokens[2] != "" {
		return tokens[2]
	}
	return unknownMode
}

// PresentLines renders "- Name (mode)" lines, "" for an empty group
func (a Attendance) PresentLines() string {
	lines := make([]string, 0, len(a.Present))
	for _, p := range a.Present {
		lines = append(lines, fmt.Sprintf("- %s (%s)", p.Name, p.Mode))
	}
	return strings.Join(lines, "\n")
}

// AbsentLines renders "- Name" lines, "" for an empty group
func (a Attendance) AbsentLines() string {
	lines := make([]string, 0, len(a.Absent))
	for _, name := range a.Absent {
		lines = append(lines, "- "+name)
	}
	return strings.Join(lines, "\n")
}
