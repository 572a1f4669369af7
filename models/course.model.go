package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Resource represents a single external learning material attached to a course.
// Type is either "video" (YouTube) or "paid" (marketplace listing); the
// optional fields depend on the type.
type Resource struct {
	ID          string  `json:"id" bson:"id"`
	Type        string  `json:"type" bson:"type"`
	Title       string  `json:"title" bson:"title"`
	URL         string  `json:"url" bson:"url"`
	Channel     string  `json:"channel,omitempty" bson:"channel,omitempty"`
	Platform    string  `json:"platform,omitempty" bson:"platform,omitempty"`
	Duration    string  `json:"duration,omitempty" bson:"duration,omitempty"`
	Views       string  `json:"views,omitempty" bson:"views,omitempty"`
	Rating      float64 `json:"rating,omitempty" bson:"rating,omitempty"`
	Price       string  `json:"price,omitempty" bson:"price,omitempty"`
	Thumbnail   string  `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
}

// Module represents a learning unit within a course. Order in the course is
// the slice order; completion is tracked by progress records, not here.
type Module struct {
	ID          int    `json:"id" bson:"id"`
	Title       string `json:"title" bson:"title"`
	Duration    string `json:"duration" bson:"duration"`
	Description string `json:"description" bson:"description"`
}

// MCQ represents a multiple choice quiz question with exactly four options.
// Correct is the 0-3 index into Options.
type MCQ struct {
	ID          int      `json:"id" bson:"id"`
	Question    string   `json:"question" bson:"question"`
	Options     []string `json:"options" bson:"options"`
	Correct     int      `json:"correct" bson:"correct"`
	Explanation string   `json:"explanation,omitempty" bson:"explanation,omitempty"`
}

// CourseSummary holds the generated overview section of a course.
type CourseSummary struct {
	Overview  string   `json:"overview" bson:"overview"`
	KeyPoints []string `json:"keyPoints" bson:"keyPoints"`
	WhenToUse string   `json:"whenToUse" bson:"whenToUse"`
}

// Progress is the denormalized module-completion snapshot embedded in a
// course. It is written once at creation (all zero except Total) and mutated
// by the progress-tracking layer, not by this service.
type Progress struct {
	Completed  int     `json:"completed" bson:"completed"`
	Total      int     `json:"total" bson:"total"`
	Percentage float64 `json:"percentage" bson:"percentage"`
}

// Course is the persisted aggregate combining generated content with fetched
// learning resources for one topic. Topic is the original request input and
// is never overwritten by generated output. Courses are immutable once stored.
type Course struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Topic       string             `json:"topic" bson:"topic"`
	Modules     []Module           `json:"modules" bson:"modules"`
	Resources   []Resource         `json:"resources" bson:"resources"`
	Summary     CourseSummary      `json:"summary" bson:"summary"`
	MCQs        []MCQ              `json:"mcqs" bson:"mcqs"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UserID      string             `json:"user_id,omitempty" bson:"user_id,omitempty"`
	Progress    Progress           `json:"progress" bson:"progress"`
}
