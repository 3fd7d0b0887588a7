package domain

// StudentReview is a curated student testimonial. Unlike Review it carries no
// ownership: entries are seeded or created by admins.
type StudentReview struct {
	ID     string `json:"id" bson:"_id,omitempty"`
	Name   string `json:"name" bson:"name"`
	Course string `json:"course" bson:"course"`
	Text   string `json:"text" bson:"text"`
}
