package interfaces

// IMetricsRecorder receives business events for monitoring.
type IMetricsRecorder interface {
	SessionStarted()
	EstimateSaved(documentType string, totalPrice int64)
	PrintPublished()
}
