package cmd

type Config struct {
	HTTPPort              string
	TrackerBaseURL        string
	SessionIdleTTLMinutes int
	CleanupSchedule       string
}
