package entity

// PatientCounts holds clinic-wide patient totals broken down by visit status.
// All four numbers come from a single query so they describe one snapshot.
type PatientCounts struct {
	Total      int64 `json:"total_patients"`
	Registered int64 `json:"registered_patients"`
	Consulting int64 `json:"consulting_patients"`
	Completed  int64 `json:"completed_patients"`
}

// DoctorCounts holds per-doctor totals over that doctor's assignments.
type DoctorCounts struct {
	Assigned   int64 `json:"assigned_patients"`
	Consulting int64 `json:"consulting_patients"`
}
