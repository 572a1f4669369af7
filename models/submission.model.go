package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuizSubmission is the request payload for submitting quiz answers. Answers
// maps MCQ id to the selected option index (0-3); missing ids are allowed and
// score as incorrect.
type QuizSubmission struct {
	CourseID string      `json:"course_id"`
	UserID   string      `json:"user_id"`
	Answers  map[int]int `json:"answers"`
}

// QuizResult is the per-question outcome of a graded submission. UserAnswer
// is nil when the question was not answered.
type QuizResult struct {
	QuestionID    int    `json:"question_id" bson:"question_id"`
	Correct       bool   `json:"correct" bson:"correct"`
	UserAnswer    *int   `json:"user_answer" bson:"user_answer"`
	CorrectAnswer int    `json:"correct_answer" bson:"correct_answer"`
	Explanation   string `json:"explanation" bson:"explanation"`
}

// SubmissionRecord is the persisted outcome of one quiz submission. Records
// are append-only; repeat submissions for the same user and course are all
// retained.
type SubmissionRecord struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID      string             `json:"user_id" bson:"user_id"`
	CourseID    string             `json:"course_id" bson:"course_id"`
	QuizScore   float64            `json:"quiz_score" bson:"quiz_score"`
	Results     []QuizResult       `json:"results" bson:"results"`
	SubmittedAt time.Time          `json:"submitted_at" bson:"submitted_at"`
}

// CourseOverview is the projection of a course returned by the progress
// endpoint.
type CourseOverview struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Topic     string    `json:"topic"`
	CreatedAt time.Time `json:"created_at"`
}

// ProgressReport summarizes a user's activity across all their courses.
type ProgressReport struct {
	TotalCourses int              `json:"total_courses"`
	TotalQuizzes int              `json:"total_quizzes"`
	AverageScore float64          `json:"average_score"`
	Courses      []CourseOverview `json:"courses"`
}
