package dto

// ProjectCreateRequest represents a new project.
type ProjectCreateRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description"`
}

// ProjectRef is the short project form returned by listing endpoints that
// only need identity and name.
type ProjectRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DeveloperRef is the short user form returned by the developer listing.
type DeveloperRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
