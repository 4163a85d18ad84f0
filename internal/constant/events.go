package constant

// Event type codes published on the NATS bus.
const (
	EventUserRegistered = "USER_REGISTERED"
	EventUserDeleted    = "USER_DELETED"
	EventMoodLogged     = "MOOD_LOGGED"
	EventDiaryCreated   = "DIARY_CREATED"
)
