package services

import (
	"fmt"
	"net/url"

	"coursebuilder/models"
)

// PaidProvider returns marketplace course listings for a topic. This is a
// deterministic placeholder for a real affiliate integration (Udemy, Coursera
// and similar APIs); it never fails and always yields the same two records.
type PaidProvider struct{}

// NewPaidProvider builds the placeholder provider.
func NewPaidProvider() *PaidProvider {
	return &PaidProvider{}
}

// Fetch returns the two fixed paid-course listings templated with the topic.
func (p *PaidProvider) Fetch(topic string) []models.Resource {
	return []models.Resource{
		{
			ID:          "paid_1",
			Type:        "paid",
			Title:       fmt.Sprintf("Complete %s Masterclass", topic),
			Platform:    "Udemy",
			URL:         "https://www.udemy.com/courses/search/?q=" + url.QueryEscape(topic),
			Rating:      4.7,
			Price:       "$49.99",
			Thumbnail:   "📚",
			Description: fmt.Sprintf("Comprehensive course covering all aspects of %s", topic),
		},
		{
			ID:          "paid_2",
			Type:        "paid",
			Title:       fmt.Sprintf("%s Specialization", topic),
			Platform:    "Coursera",
			URL:         "https://www.coursera.org/search?query=" + url.QueryEscape(topic),
			Rating:      4.8,
			Price:       "$79.99",
			Thumbnail:   "🎓",
			Description: fmt.Sprintf("Professional certification in %s", topic),
		},
	}
}
