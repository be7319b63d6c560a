package entities

// MinuteType selects the prompt template used to write the minutes
type MinuteType string

const (
	MinuteTypeNarrativeSummary   MinuteType = "narrativeSummary"
	MinuteTypeBulletPoints       MinuteType = "bulletPoints"
	MinuteTypeNarrativeAndBullet MinuteType = "narrativeAndBullet"
)

// DefaultMinuteType is used when a request omits or misspells the type
const DefaultMinuteType = MinuteTypeNarrativeAndBullet

// IsValid reports whether t is one of the known minute types
func (t MinuteType) IsValid() bool {
	switch t {
	case MinuteTypeNarrativeSummary, MinuteTypeBulletPoints, MinuteTypeNarrativeAndBullet:
		return true
	}
	return false
}

// ParseMinuteType maps s to a known type, falling back to DefaultMinuteType
func ParseMinuteType(s string) MinuteType {
	t := MinuteType(s)
	if t.IsValid() {
		return t
	}
	return DefaultMinuteType
}
