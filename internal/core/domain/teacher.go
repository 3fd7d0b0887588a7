package domain

// DefaultTeacherImage is used when a teacher profile has no uploaded photo.
const DefaultTeacherImage = "default-image.jpg"

// Teacher is a public teacher profile.
type Teacher struct {
	ID    string `json:"id" bson:"_id,omitempty"`
	Name  string `json:"name" bson:"name"`
	Image string `json:"image" bson:"image"`
	Bio   string `json:"bio" bson:"bio"`
}
