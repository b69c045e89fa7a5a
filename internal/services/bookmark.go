package services

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/recipe-keeper/internal/logger"
	"github.com/sbilibin2017/recipe-keeper/internal/metrics"
	"github.com/sbilibin2017/recipe-keeper/internal/models"
)

//go:generate mockgen -source=bookmark.go -destination=bookmark_mock.go -package=services

// BookmarkOutcome reports whether AddBookmark wrote a new bookmark.
type BookmarkOutcome int

const (
	BookmarkCreated BookmarkOutcome = iota + 1
	BookmarkAlreadyExists
)

func (o BookmarkOutcome) String() string {
	switch o {
	case BookmarkCreated:
		return "created"
	case BookmarkAlreadyExists:
		return "already_exists"
	default:
		return "unknown"
	}
}

// publishTimeout bounds a bookmark event write once the request that caused it is gone.
const publishTimeout = 5 * time.Second

// RecipeEnsurer materializes a recipe in the local store.
type RecipeEnsurer interface {
	EnsureRecipe(ctx context.Context, recipeID string) (*models.RecipeDB, error)
}

// BookmarkReader defines read operations for bookmarks.
type BookmarkReader interface {
	Get(ctx context.Context, userID uuid.UUID, recipeID string) (*models.BookmarkDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.BookmarkedRecipe, error)
}

// BookmarkWriter inserts bookmarks.
type BookmarkWriter interface {
	Save(ctx context.Context, bookmarkID, userID uuid.UUID, recipeID string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// BookmarkService keeps the idempotent user-recipe bookmark relation.
type BookmarkService struct {
	recipes     RecipeEnsurer
	reader      BookmarkReader
	writer      BookmarkWriter
	kafkaWriter KafkaWriter
}

// NewBookmarkService creates a new BookmarkService. kafkaWriter may be nil.
func NewBookmarkService(
	recipes RecipeEnsurer,
	reader BookmarkReader,
	writer BookmarkWriter,
	kafkaWriter KafkaWriter,
) *BookmarkService {
	return &BookmarkService{
		recipes:     recipes,
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// AddBookmark bookmarks recipeID for userID, caching the recipe first.
// Bookmarking the same recipe again is not an error and writes nothing.
func (s *BookmarkService) AddBookmark(ctx context.Context, userID uuid.UUID, recipeID string) (BookmarkOutcome, error) {
	if userID == uuid.Nil {
		return 0, ErrUnauthenticated
	}

	recipe, err := s.recipes.EnsureRecipe(ctx, recipeID)
	if err != nil {
		return 0, err
	}

	existing, err := s.reader.Get(ctx, userID, recipe.RecipeID)
	if err != nil {
		logger.Log.Errorw("failed to look up bookmark", "user_id", userID, "recipe_id", recipe.RecipeID, "error", err)
		return 0, &StorageError{Op: "get bookmark", Err: err}
	}
	if existing != nil {
		metrics.BookmarkOutcomes.WithLabelValues(BookmarkAlreadyExists.String()).Inc()
		return BookmarkAlreadyExists, nil
	}

	bookmarkID := uuid.New()
	err = s.writer.Save(ctx, bookmarkID, userID, recipe.RecipeID)
	if errors.Is(err, models.ErrAlreadyExists) {
		metrics.BookmarkOutcomes.WithLabelValues(BookmarkAlreadyExists.String()).Inc()
		return BookmarkAlreadyExists, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to save bookmark", "user_id", userID, "recipe_id", recipe.RecipeID, "error", err)
		return 0, &StorageError{Op: "save bookmark", Err: err}
	}

	metrics.BookmarkOutcomes.WithLabelValues(BookmarkCreated.String()).Inc()
	s.publishBookmark(ctx, models.BookmarkEvent{
		EventID:    uuid.NewString(),
		Timestamp:  time.Now().Unix(),
		UserID:     userID.String(),
		RecipeID:   recipe.RecipeID,
		BookmarkID: bookmarkID.String(),
	})

	return BookmarkCreated, nil
}

// ListBookmarks returns the recipes userID bookmarked, oldest first.
func (s *BookmarkService) ListBookmarks(ctx context.Context, userID uuid.UUID) ([]models.BookmarkedRecipe, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	recipes, err := s.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list bookmarks", "user_id", userID, "error", err)
		return nil, &StorageError{Op: "list bookmarks", Err: err}
	}
	return recipes, nil
}

// BookmarkImages returns the image URLs of the recipes userID bookmarked.
func (s *BookmarkService) BookmarkImages(ctx context.Context, userID uuid.UUID) ([]string, error) {
	recipes, err := s.ListBookmarks(ctx, userID)
	if err != nil {
		return nil, err
	}

	images := make([]string, 0, len(recipes))
	for _, r := range recipes {
		if r.ImageURL != "" {
			images = append(images, r.ImageURL)
		}
	}
	return images, nil
}

// publishBookmark publishes a bookmark event to Kafka.
// The bookmark is already stored, so the write outlives the caller's ctx.
func (s *BookmarkService) publishBookmark(ctx context.Context, event models.BookmarkEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal bookmark event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish bookmark event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Bookmark event published to Kafka", "event_id", event.EventID, "recipe_id", event.RecipeID)
	}
}
