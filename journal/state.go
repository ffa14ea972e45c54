package journal

type SessionState string

const (
	SessionStateOff       = SessionState("off")
	SessionStateRecording = SessionState("recording")
)
