package models

// Lifecycle flag shared by users and content entities.
const (
	StateActive   = 1 // active user / published content
	StateInactive = 2 // deactivated user / unpublished content
)

func ValidStateID(id int) bool {
	return id == StateActive || id == StateInactive
}
