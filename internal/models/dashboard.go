package models

// AdminDashboardStats is the super admin overview.
type AdminDashboardStats struct {
	TotalEmployees    int64 `json:"totalEmployees"`
	ClockedInToday    int64 `json:"clockedInToday"`
	PresentToday      int64 `json:"presentToday"`
	TotalPaymentLinks int64 `json:"totalPaymentLinks"`
}

// EmployeeDashboardStats is an employee's own overview.
type EmployeeDashboardStats struct {
	Status        AttendanceStatus `json:"status"`
	WorkedToday   string           `json:"workedToday"`
	GoalReached   bool             `json:"goalReached"`
	PaymentLinks  int64            `json:"paymentLinks"`
	CanIssueLinks bool             `json:"canIssueLinks"`
}
