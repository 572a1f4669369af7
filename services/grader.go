package services

import "coursebuilder/models"

// GradeSummary is the outcome of grading one quiz submission.
type GradeSummary struct {
	Score   float64             `json:"score"`
	Correct int                 `json:"correct"`
	Total   int                 `json:"total"`
	Results []models.QuizResult `json:"results"`
}

// GradeQuiz scores a submission against the course's MCQs. Questions are
// graded in course order; an unanswered question counts as incorrect with a
// nil user answer. Grading is pure: persisting the result is the caller's
// responsibility.
func GradeQuiz(course *models.Course, answers map[int]int) GradeSummary {
	total := len(course.MCQs)
	correct := 0
	results := make([]models.QuizResult, 0, total)

	for _, mcq := range course.MCQs {
		var userAnswer *int
		if answer, ok := answers[mcq.ID]; ok {
			userAnswer = &answer
		}

		isCorrect := userAnswer != nil && *userAnswer == mcq.Correct
		if isCorrect {
			correct++
		}

		results = append(results, models.QuizResult{
			QuestionID:    mcq.ID,
			Correct:       isCorrect,
			UserAnswer:    userAnswer,
			CorrectAnswer: mcq.Correct,
			Explanation:   mcq.Explanation,
		})
	}

	// A stored course always has MCQs; guard the zero case anyway.
	score := 0.0
	if total > 0 {
		score = float64(correct) / float64(total) * 100
	}

	return GradeSummary{
		Score:   score,
		Correct: correct,
		Total:   total,
		Results: results,
	}
}
