package services

import (
	"context"
	"sync"
	"time"

	"coursebuilder/database"
	"coursebuilder/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testTimeout = 5 * time.Second

// memStore is an in-memory database.Store used by the pipeline tests.
type memStore struct {
	mu          sync.Mutex
	courses     []models.Course
	submissions []models.SubmissionRecord
}

func newMemStore() *memStore {
	return &memStore{}
}

func (s *memStore) InsertCourse(_ context.Context, course *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	course.ID = primitive.NewObjectID()
	s.courses = append(s.courses, *course)
	return nil
}

func (s *memStore) CourseByID(_ context.Context, id string) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.courses {
		if c.ID.Hex() == id {
			course := c
			return &course, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *memStore) CoursesByUser(_ context.Context, userID string) ([]models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	courses := []models.Course{}
	for _, c := range s.courses {
		if c.UserID == userID {
			courses = append(courses, c)
		}
	}
	return courses, nil
}

func (s *memStore) InsertSubmission(_ context.Context, record *models.SubmissionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record.ID = primitive.NewObjectID()
	s.submissions = append(s.submissions, *record)
	return nil
}

func (s *memStore) SubmissionsByUser(_ context.Context, userID string) ([]models.SubmissionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := []models.SubmissionRecord{}
	for _, r := range s.submissions {
		if r.UserID == userID {
			records = append(records, r)
		}
	}
	return records, nil
}

func (s *memStore) Ping(_ context.Context) error {
	return nil
}

func (s *memStore) courseCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.courses)
}

// stubGenerator returns a fixed draft or error.
type stubGenerator struct {
	draft *CourseDraft
	err   error
}

func (g *stubGenerator) Generate(context.Context, string) (*CourseDraft, error) {
	return g.draft, g.err
}

// stubVideoSource returns fixed resources or an error.
type stubVideoSource struct {
	resources []models.Resource
	err       error
}

func (v *stubVideoSource) Fetch(context.Context, string, int) ([]models.Resource, error) {
	return v.resources, v.err
}

// delayedPaid wraps the real paid provider with an artificial delay so
// ordering tests can force it to finish first or last.
type delayedPaid struct {
	inner *PaidProvider
	delay time.Duration
}

func (p *delayedPaid) Fetch(topic string) []models.Resource {
	time.Sleep(p.delay)
	return p.inner.Fetch(topic)
}

func testDraft() *CourseDraft {
	return &CourseDraft{
		Title:       "Mastering Recursion",
		Description: "A practical introduction to recursive thinking.",
		Modules: []models.Module{
			{ID: 1, Title: "Base Cases", Duration: "1 hour", Description: "Stopping conditions"},
			{ID: 2, Title: "Recursive Steps", Duration: "2 hours", Description: "Self-reference"},
			{ID: 3, Title: "Tree Recursion", Duration: "2 hours", Description: "Branching calls"},
		},
		Summary: &models.CourseSummary{
			Overview:  "Recursion solves problems by reducing them to smaller instances.",
			KeyPoints: []string{"Base cases", "Call stack", "Divide and conquer", "Memoization"},
			WhenToUse: "Tree traversal, parsing, divide-and-conquer algorithms.",
		},
		MCQs: []models.MCQ{
			{ID: 1, Question: "What stops a recursion?", Options: []string{"Base case", "Loop", "Goto", "Break"}, Correct: 0, Explanation: "The base case terminates the call chain."},
			{ID: 2, Question: "Where do recursive calls live?", Options: []string{"Heap", "Call stack", "Registers", "Disk"}, Correct: 1},
			{ID: 3, Question: "Which problem is naturally recursive?", Options: []string{"Array sum", "Tree traversal", "Swap", "Print"}, Correct: 1},
			{ID: 4, Question: "What does unbounded recursion cause?", Options: []string{"Deadlock", "Stack overflow", "Race", "Leak"}, Correct: 1},
			{ID: 5, Question: "Tail recursion is?", Options: []string{"First call", "Last operation", "Two calls", "No calls"}, Correct: 1},
		},
	}
}
