package domain

// Course is a published course, optionally linked to a teacher profile.
type Course struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	TeacherID   string `json:"teacher_id,omitempty" bson:"teacher_id,omitempty"`
}

// CourseWithTeacher is the read view of a course with its teacher resolved.
type CourseWithTeacher struct {
	Course
	Teacher *Teacher `json:"teacher,omitempty"`
}
