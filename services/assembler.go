package services

import (
	"context"
	"log"
	"time"

	"coursebuilder/database"
	"coursebuilder/models"

	"golang.org/x/sync/errgroup"
)

// Generator produces the AI-written portion of a course.
type Generator interface {
	Generate(ctx context.Context, topic string) (*CourseDraft, error)
}

// VideoSource fetches video learning resources for a topic.
type VideoSource interface {
	Fetch(ctx context.Context, topic string, maxResults int) ([]models.Resource, error)
}

// PaidSource fetches marketplace course listings for a topic.
type PaidSource interface {
	Fetch(topic string) []models.Resource
}

// Assembler orchestrates course creation: it fans out to the content
// generator and the resource providers, merges their outputs into one course
// document, and persists it. Any upstream failure aborts the whole assembly;
// no partial course is ever stored.
type Assembler struct {
	generator Generator
	videos    VideoSource
	paid      PaidSource
	store     database.Store

	maxVideoResults int
}

// NewAssembler wires the assembly pipeline.
func NewAssembler(generator Generator, videos VideoSource, paid PaidSource, store database.Store, maxVideoResults int) *Assembler {
	return &Assembler{
		generator:       generator,
		videos:          videos,
		paid:            paid,
		store:           store,
		maxVideoResults: maxVideoResults,
	}
}

// Assemble builds and stores a course for the topic. The three upstream
// fetches run concurrently; the resources list always orders video entries
// before paid entries regardless of which fetch finishes first.
func (a *Assembler) Assemble(ctx context.Context, topic, userID string) (*models.Course, error) {
	log.Printf("Generating course for topic: %s", topic)

	var (
		draft          *CourseDraft
		videoResources []models.Resource
		paidResources  []models.Resource
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := a.generator.Generate(gctx, topic)
		if err != nil {
			return err
		}
		draft = d
		return nil
	})
	g.Go(func() error {
		videos, err := a.videos.Fetch(gctx, topic, a.maxVideoResults)
		if err != nil {
			return err
		}
		videoResources = videos
		return nil
	})
	g.Go(func() error {
		paidResources = a.paid.Fetch(topic)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resources := make([]models.Resource, 0, len(videoResources)+len(paidResources))
	resources = append(resources, videoResources...)
	resources = append(resources, paidResources...)

	course := &models.Course{
		Title:       draft.Title,
		Description: draft.Description,
		Topic:       topic,
		Modules:     draft.Modules,
		Resources:   resources,
		Summary:     *draft.Summary,
		MCQs:        draft.MCQs,
		CreatedAt:   time.Now().UTC(),
		UserID:      userID,
		Progress: models.Progress{
			Completed:  0,
			Total:      len(draft.Modules),
			Percentage: 0,
		},
	}

	if err := a.store.InsertCourse(ctx, course); err != nil {
		return nil, err
	}

	log.Printf("Course created successfully with ID: %s", course.ID.Hex())
	return course, nil
}
