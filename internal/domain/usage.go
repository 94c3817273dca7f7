package domain

// UsageRecorder counts business events. Implementations must be safe for concurrent use.
type UsageRecorder interface {
	EventCreated()
	ResponseSubmitted()
	InvitationsSent(n int)
}

// NopUsageRecorder discards every observation.
type NopUsageRecorder struct{}

func (NopUsageRecorder) EventCreated()       {}
func (NopUsageRecorder) ResponseSubmitted()  {}
func (NopUsageRecorder) InvitationsSent(int) {}
