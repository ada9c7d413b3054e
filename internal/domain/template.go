package domain

// TemplateExercise is an exercise reference inside a template: name only,
// no PB history.
type TemplateExercise struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SessionTemplate is a reusable, PB-free snapshot of a session's exercise
// list, decoupled from any specific day. Name is a case-insensitive unique
// key.
type SessionTemplate struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Exercises []TemplateExercise `json:"exercises"`
	CreatedAt string             `json:"createdAt"`
}
