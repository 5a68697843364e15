package domain

// Product is the subset of an upstream product used for course selection
type Product struct {
	ID    string
	Title string
	Tags  string // comma-separated, as sent upstream
}

// CourseProduct is the minimal projection handed to the UI
type CourseProduct struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
