package services

import (
	"context"

	"coursebuilder/database"
	"coursebuilder/models"
)

// ProgressService aggregates per-user learning statistics from the store.
type ProgressService struct {
	store database.Store
}

// NewProgressService builds the aggregator.
func NewProgressService(store database.Store) *ProgressService {
	return &ProgressService{store: store}
}

// Aggregate summarizes a user's courses and quiz submissions. A user with no
// activity gets zero counts and a zero average, not an error.
func (s *ProgressService) Aggregate(ctx context.Context, userID string) (*models.ProgressReport, error) {
	courses, err := s.store.CoursesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	submissions, err := s.store.SubmissionsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	average := 0.0
	if len(submissions) > 0 {
		sum := 0.0
		for _, sub := range submissions {
			sum += sub.QuizScore
		}
		average = sum / float64(len(submissions))
	}

	overviews := make([]models.CourseOverview, 0, len(courses))
	for _, c := range courses {
		overviews = append(overviews, models.CourseOverview{
			ID:        c.ID.Hex(),
			Title:     c.Title,
			Topic:     c.Topic,
			CreatedAt: c.CreatedAt,
		})
	}

	return &models.ProgressReport{
		TotalCourses: len(courses),
		TotalQuizzes: len(submissions),
		AverageScore: average,
		Courses:      overviews,
	}, nil
}
