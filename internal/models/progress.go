package models

// SyncStatus описывает текущую фазу цикла синхронизации.
type SyncStatus string

const (
	SyncStatusIdle       SyncStatus = "idle"
	SyncStatusFetching   SyncStatus = "fetching"
	SyncStatusProcessing SyncStatus = "processing"
	SyncStatusComputing  SyncStatus = "computing"
	SyncStatusComplete   SyncStatus = "complete"
	SyncStatusError      SyncStatus = "error"
)

// IsTerminal reports whether no further transitions happen within the cycle.
func (s SyncStatus) IsTerminal() bool {
	return s == SyncStatusComplete || s == SyncStatusError
}

// SyncProgress is reported to listeners while a sync cycle runs.
type SyncProgress struct {
	Status    SyncStatus `json:"status"`
	Message   string     `json:"message"`
	Completed int        `json:"completed"`
	Total     int        `json:"total"`
}

// Percent returns the progress as a percentage (0-100).
func (p SyncProgress) Percent() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Completed) / float64(p.Total) * 100
}
