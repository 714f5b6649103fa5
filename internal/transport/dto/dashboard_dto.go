package dto

// EmployerStats is the fixed-shape statistics record the employer dashboard
// renders from, reduced in one pass over the company's jobs and applications.
type EmployerStats struct {
	TotalJobs           int `json:"total_jobs"`
	ActiveJobs          int `json:"active_jobs"`
	TotalApplications   int `json:"total_applications"`
	NewApplications     int `json:"new_applications"`
	InterviewsScheduled int `json:"interviews_scheduled"`
}

// SeekerStats is the per-status breakdown of a job seeker's applications.
type SeekerStats struct {
	TotalApplications int `json:"total_applications"`
	Pending           int `json:"pending"`
	Interviewing      int `json:"interviewing"`
	Offered           int `json:"offered"`
	Rejected          int `json:"rejected"`
}

// EmployerDashboardResponse aggregates everything the employer dashboard
// shows: the company, its jobs (with application counts), the most recent
// applicants and the reduced statistics.
type EmployerDashboardResponse struct {
	Company          *CompanyResponse      `json:"company,omitempty"`
	Jobs             []JobResponse         `json:"jobs"`
	RecentApplicants []ApplicationResponse `json:"recent_applicants"`
	Stats            EmployerStats         `json:"stats"`
}

// SeekerDashboardResponse aggregates the job seeker dashboard: applications
// with their jobs and companies, a handful of recommended jobs, the profile
// completion percentage and the reduced statistics.
type SeekerDashboardResponse struct {
	Applications      []ApplicationResponse `json:"applications"`
	RecommendedJobs   []JobResponse         `json:"recommended_jobs"`
	ProfileCompletion int                   `json:"profile_completion"`
	Stats             SeekerStats           `json:"stats"`
}
