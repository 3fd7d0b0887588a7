package domain

// Advantage is a marketing bullet shown on the landing page. Admin-managed.
type Advantage struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
}
