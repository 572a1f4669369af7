package database

import (
	"context"
	"errors"
	"log"
	"time"

	"coursebuilder/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	coursesCollection     = "courses"
	submissionsCollection = "quiz_submissions"
)

// ErrNotFound is returned when a looked-up document does not exist.
var ErrNotFound = errors.New("document not found")

// Store is the persistence boundary used by the service layer. Courses are
// insert-then-read-only; submissions are append-only. Find operations return
// documents in insertion order.
type Store interface {
	InsertCourse(ctx context.Context, course *models.Course) error
	CourseByID(ctx context.Context, id string) (*models.Course, error)
	CoursesByUser(ctx context.Context, userID string) ([]models.Course, error)
	InsertSubmission(ctx context.Context, record *models.SubmissionRecord) error
	SubmissionsByUser(ctx context.Context, userID string) ([]models.SubmissionRecord, error)
	Ping(ctx context.Context) error
}

// Mongo implements Store against a MongoDB database.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes a MongoDB connection and verifies it with a ping.
func Connect(ctx context.Context, url, dbName string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, err
	}

	log.Printf("Connected to MongoDB database %q", dbName)
	return &Mongo{client: client, db: client.Database(dbName)}, nil
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Ping reports whether the database is reachable.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

// InsertCourse stores a new course and fills in its assigned ObjectID.
func (m *Mongo) InsertCourse(ctx context.Context, course *models.Course) error {
	res, err := m.db.Collection(coursesCollection).InsertOne(ctx, course)
	if err != nil {
		return err
	}
	course.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// CourseByID fetches a course by its hex ObjectID. A malformed id is treated
// the same as an unknown one.
func (m *Mongo) CourseByID(ctx context.Context, id string) (*models.Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var course models.Course
	err = m.db.Collection(coursesCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&course)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// CoursesByUser returns all courses owned by the user in insertion order.
func (m *Mongo) CoursesByUser(ctx context.Context, userID string) ([]models.Course, error) {
	cursor, err := m.db.Collection(coursesCollection).Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}

	courses := []models.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// InsertSubmission appends a quiz submission record.
func (m *Mongo) InsertSubmission(ctx context.Context, record *models.SubmissionRecord) error {
	res, err := m.db.Collection(submissionsCollection).InsertOne(ctx, record)
	if err != nil {
		return err
	}
	record.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// SubmissionsByUser returns all quiz submissions by the user in insertion order.
func (m *Mongo) SubmissionsByUser(ctx context.Context, userID string) ([]models.SubmissionRecord, error) {
	cursor, err := m.db.Collection(submissionsCollection).Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}

	records := []models.SubmissionRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
