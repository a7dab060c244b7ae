package internal

// Job represents one job listing as served by the backend
type Job struct {
	Title            string      `json:"job_title"`
	Location         JobLocation `json:"location"`
	PostedDate       string      `json:"posted_date"`
	Summary          string      `json:"job_summary,omitempty"`
	PositionOverview string      `json:"position_overview,omitempty"`
	SuitabilityScore *int        `json:"suitability_score"`
	Compensation     string      `json:"compensation_benefits,omitempty"`
	WorkSchedule     string      `json:"work_schedule,omitempty"`
	HowToApply       string      `json:"how_to_apply,omitempty"`
	ContactName      string      `json:"contact_name,omitempty"`
	ContactEmails    string      `json:"contact_emails,omitempty"`
	ContactURL       string      `json:"contact_url,omitempty"`
	SourceURL        string      `json:"source_url,omitempty"`
}

// JobLocation is the nested location object of a job listing
type JobLocation struct {
	City  string `json:"city"`
	State string `json:"state"`
}

// JobsPage is one page of filtered job listings
type JobsPage struct {
	Total  int   `json:"total"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
	Jobs   []Job `json:"jobs"`
}

// JobsQuery carries the supported job listing filters. Zero values are
// omitted from the request.
type JobsQuery struct {
	Query      string // free-text match against title/summary/location
	Location   string
	PostedFrom string // YYYY-MM-DD
	PostedTo   string // YYYY-MM-DD
	MinScore   int    // 0 = no minimum
	Offset     int
	Limit      int // 0 = server default
}

// Stats is the site-wide listing summary
type Stats struct {
	Total      int    `json:"total"`
	AvgScore   string `json:"avgScore"`
	TopState   string `json:"topState"`
	LatestDate string `json:"latestDate"`
}

// EmailDraft is an assistant-drafted application email for one listing
type EmailDraft struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
