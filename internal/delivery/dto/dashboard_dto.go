package dto

// DashboardStatsResponse carries the aggregate counts for the caller's
// scope. Global fields are set for super admin and front desk; doctors get
// counts over their own assignments only.
type DashboardStatsResponse struct {
	TotalPatients      *int64 `json:"total_patients,omitempty"`
	RegisteredPatients *int64 `json:"registered_patients,omitempty"`
	ConsultingPatients int64  `json:"consulting_patients"`
	CompletedPatients  *int64 `json:"completed_patients,omitempty"`
	AssignedPatients   *int64 `json:"assigned_patients,omitempty"`
}

type UserListResponse struct {
	Users []*UserResponse `json:"users"`
	Total int             `json:"total"`
}
