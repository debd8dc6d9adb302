package domain

// Track classifies which side of the pair a participant logs against.
type Track string

const (
	TrackLeft  Track = "LEFT"
	TrackRight Track = "RIGHT"
)

func (t Track) String() string { return string(t) }

func (t Track) IsValid() bool {
	switch t {
	case TrackLeft, TrackRight:
		return true
	}
	return false
}

// ActivityType represents the kind of reaction attached to an entry.
type ActivityType string

const (
	ActivityReaction ActivityType = "reaction"
	ActivityComment  ActivityType = "comment"
	ActivityReply    ActivityType = "reply"
)

func (t ActivityType) String() string { return string(t) }

func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityReaction, ActivityComment, ActivityReply:
		return true
	}
	return false
}
