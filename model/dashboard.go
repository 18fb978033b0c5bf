package model

// DashboardDocument is the full contents of dashboard.json.
type DashboardDocument struct {
	Announcements []Announcement `json:"announcements"`
	Events        []Event        `json:"events"`
}

// Announcement visibility: VisibleTo holds audience tags, each of which is
// "All", a department name, or an employee id rendered as a string.
type Announcement struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Author      string   `json:"author"`
	AuthorID    int      `json:"author_id"`
	Date        string   `json:"date"`
	Priority    string   `json:"priority"`
	VisibleTo   []string `json:"visible_to"`
	Attachments []string `json:"attachments"`
	ReadBy      []int    `json:"read_by"`
}

type Event struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
}
