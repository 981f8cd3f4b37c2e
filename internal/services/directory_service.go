// internal/services/directory_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/medhub/medhub-backend/internal/models"
)

var ErrTopicNotFound = errors.New("topic not found")

// DirectoryService serves the browse-side reads: categories, topics,
// stats and the presentational content entities.
type DirectoryService struct {
	db *gorm.DB
}

func NewDirectoryService(db *gorm.DB) *DirectoryService {
	return &DirectoryService{db: db}
}

func (s *DirectoryService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

func (s *DirectoryService) ListTopics(categoryID *uint) ([]models.Topic, error) {
	query := s.db.Model(&models.Topic{}).Order("id")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var topics []models.Topic
	if err := query.Find(&topics).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch topics: %w", err)
	}
	if topics == nil {
		topics = []models.Topic{}
	}
	return topics, nil
}

// GetTopicBySlug returns the topic with its linked products.
// ErrTopicNotFound when the slug is absent.
func (s *DirectoryService) GetTopicBySlug(slug string) (*models.Topic, error) {
	var topic models.Topic
	if err := s.db.Preload("Products").Where("slug = ?", slug).First(&topic).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTopicNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &topic, nil
}

func (s *DirectoryService) ListStats() ([]models.Stat, error) {
	var stats []models.Stat
	if err := s.db.Order("id").Find(&stats).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch stats: %w", err)
	}
	if stats == nil {
		stats = []models.Stat{}
	}
	return stats, nil
}

func (s *DirectoryService) ListArticles(articleType string, limit int) ([]models.Article, error) {
	query := s.db.Model(&models.Article{}).Order("published_at DESC")
	if articleType != "" {
		query = query.Where("type = ?", articleType)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var articles []models.Article
	if err := query.Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch articles: %w", err)
	}
	if articles == nil {
		articles = []models.Article{}
	}
	return articles, nil
}

func (s *DirectoryService) ListEvents(limit int) ([]models.Event, error) {
	query := s.db.Model(&models.Event{}).Order("starts_at")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var events []models.Event
	if err := query.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}
