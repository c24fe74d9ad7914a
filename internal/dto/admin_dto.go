// FILE: internal/dto/admin_dto.go
package dto

type VerifyProfessionalRequest struct {
	Approve bool   `json:"approve"`
	Message string `json:"message"`
}

type SetAccountStatusRequest struct {
	Active bool `json:"active"`
}

type DashboardResponse struct {
	TotalCustomers       int64            `json:"total_customers"`
	TotalProfessionals   int64            `json:"total_professionals"`
	TotalServices        int64            `json:"total_services"`
	TotalRequests        int64            `json:"total_requests"`
	PendingVerifications int64            `json:"pending_verifications"`
	RequestsByStatus     map[string]int64 `json:"requests_by_status"`
	RequestsLast7Days    int64            `json:"requests_last_7_days"`
	ReviewsLast7Days     int64            `json:"reviews_last_7_days"`
}
