// Package store persists service records through Supabase PostgREST.
// All writes are append-only; reads and deletes are exact-match filters, so
// nothing here depends on engine-specific behavior beyond that.
package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	postgrest "github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"

	"cliptag/backend/models"
)

// Table names.
const (
	usersTable         = "users"
	sourceVideosTable  = "source_videos"
	clipsTable         = "clips"
	storyCaptionsTable = "story_captions"
	contentItemsTable  = "content_items"
)

// Store wraps the Supabase client with typed record operations.
type Store struct {
	db  *supa.Client
	log *logrus.Logger
}

// New returns a Store backed by the given Supabase client.
func New(client *supa.Client, log *logrus.Logger) *Store {
	return &Store{db: client, log: log}
}

func (s *Store) from(table string) *postgrest.QueryBuilder {
	return s.db.From(table)
}

// ---- users ----

// CreateUser inserts a new account and returns the stored record.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	var results []models.User
	_, err := s.from(usersTable).
		Insert(user, false, "", "representation", "").
		ExecuteTo(&results)
	if err != nil {
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	if len(results) == 0 {
		return models.User{}, fmt.Errorf("insert user: no record returned")
	}
	return results[0], nil
}

// FindUserByEmail returns the account for email, or nil when none exists.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var users []models.User
	_, err := s.from(usersTable).
		Select("*", "", false).
		Eq("email", email).
		Limit(1, "").
		ExecuteTo(&users)
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

// FindUserByID returns the account for id, or nil when none exists.
func (s *Store) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	var users []models.User
	_, err := s.from(usersTable).
		Select("*", "", false).
		Eq("id", id).
		Limit(1, "").
		ExecuteTo(&users)
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

// UpdateUserName sets the display name and returns the refreshed record.
func (s *Store) UpdateUserName(ctx context.Context, id, name string) (models.User, error) {
	var results []models.User
	_, err := s.from(usersTable).
		Update(map[string]interface{}{"name": name}, "representation", "").
		Eq("id", id).
		ExecuteTo(&results)
	if err != nil {
		return models.User{}, fmt.Errorf("update user name: %w", err)
	}
	if len(results) == 0 {
		return models.User{}, fmt.Errorf("update user name: user %s not found", id)
	}
	return results[0], nil
}

// ---- source videos ----

// CreateSourceVideo records an uploaded file.
func (s *Store) CreateSourceVideo(ctx context.Context, video models.SourceVideo) error {
	_, _, err := s.from(sourceVideosTable).
		Insert(video, false, "", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("insert source video: %w", err)
	}
	return nil
}

// FindSourceVideo returns the upload record for id, or nil when none exists.
func (s *Store) FindSourceVideo(ctx context.Context, id string) (*models.SourceVideo, error) {
	var videos []models.SourceVideo
	_, err := s.from(sourceVideosTable).
		Select("*", "", false).
		Eq("id", id).
		Limit(1, "").
		ExecuteTo(&videos)
	if err != nil {
		return nil, fmt.Errorf("find source video: %w", err)
	}
	if len(videos) == 0 {
		return nil, nil
	}
	return &videos[0], nil
}

// ---- clips ----

// CreateClip records a completed clip generation.
func (s *Store) CreateClip(ctx context.Context, clip models.ClipResult) error {
	_, _, err := s.from(clipsTable).
		Insert(clip, false, "", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("insert clip: %w", err)
	}
	return nil
}

// ListClips returns every clip owned by userID.
func (s *Store) ListClips(ctx context.Context, userID string) ([]models.ClipResult, error) {
	var clips []models.ClipResult
	_, err := s.from(clipsTable).
		Select("*", "", false).
		Eq("user_id", userID).
		ExecuteTo(&clips)
	if err != nil {
		return nil, fmt.Errorf("list clips: %w", err)
	}
	return clips, nil
}

// DeleteClip removes a clip owned by userID. Returns false when no matching
// record existed.
func (s *Store) DeleteClip(ctx context.Context, id, userID string) (bool, error) {
	var results []models.ClipResult
	_, err := s.from(clipsTable).
		Delete("representation", "").
		Eq("id", id).
		Eq("user_id", userID).
		ExecuteTo(&results)
	if err != nil {
		return false, fmt.Errorf("delete clip: %w", err)
	}
	return len(results) > 0, nil
}

// ---- story captions ----

// CreateStoryCaptions records a story-caption run.
func (s *Store) CreateStoryCaptions(ctx context.Context, result models.StoryCaptionResult) error {
	_, _, err := s.from(storyCaptionsTable).
		Insert(result, false, "", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("insert story captions: %w", err)
	}
	return nil
}

// ListStoryCaptions returns every story-caption result owned by userID.
func (s *Store) ListStoryCaptions(ctx context.Context, userID string) ([]models.StoryCaptionResult, error) {
	var results []models.StoryCaptionResult
	_, err := s.from(storyCaptionsTable).
		Select("*", "", false).
		Eq("user_id", userID).
		ExecuteTo(&results)
	if err != nil {
		return nil, fmt.Errorf("list story captions: %w", err)
	}
	return results, nil
}

// DeleteStoryCaptions removes a story-caption result owned by userID. Returns
// false when no matching record existed.
func (s *Store) DeleteStoryCaptions(ctx context.Context, id, userID string) (bool, error) {
	var results []models.StoryCaptionResult
	_, err := s.from(storyCaptionsTable).
		Delete("representation", "").
		Eq("id", id).
		Eq("user_id", userID).
		ExecuteTo(&results)
	if err != nil {
		return false, fmt.Errorf("delete story captions: %w", err)
	}
	return len(results) > 0, nil
}

// ---- content items ----

// CreateContentItem records a text-only generation result.
func (s *Store) CreateContentItem(ctx context.Context, item models.ContentItem) error {
	_, _, err := s.from(contentItemsTable).
		Insert(item, false, "", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("insert content item: %w", err)
	}
	return nil
}

// ListContentItems returns every content item owned by userID.
func (s *Store) ListContentItems(ctx context.Context, userID string) ([]models.ContentItem, error) {
	var items []models.ContentItem
	_, err := s.from(contentItemsTable).
		Select("*", "", false).
		Eq("user_id", userID).
		ExecuteTo(&items)
	if err != nil {
		return nil, fmt.Errorf("list content items: %w", err)
	}
	return items, nil
}

// DeleteContentItem removes a content item owned by userID. Returns false
// when no matching record existed.
func (s *Store) DeleteContentItem(ctx context.Context, id, userID string) (bool, error) {
	var results []models.ContentItem
	_, err := s.from(contentItemsTable).
		Delete("representation", "").
		Eq("id", id).
		Eq("user_id", userID).
		ExecuteTo(&results)
	if err != nil {
		return false, fmt.Errorf("delete content item: %w", err)
	}
	return len(results) > 0, nil
}

// ---- library ----

// ListLibrary merges clips, story captions and content items into one
// newest-first list, capped at limit items.
func (s *Store) ListLibrary(ctx context.Context, userID string, limit int) ([]models.LibraryItem, error) {
	clips, err := s.ListClips(ctx, userID)
	if err != nil {
		return nil, err
	}
	stories, err := s.ListStoryCaptions(ctx, userID)
	if err != nil {
		return nil, err
	}
	content, err := s.ListContentItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]models.LibraryItem, 0, len(clips)+len(stories)+len(content))
	for i := range clips {
		items = append(items, models.LibraryItem{
			ID:        clips[i].ID,
			Type:      models.LibraryTypeClip,
			CreatedAt: clips[i].CreatedAt,
			Clip:      &clips[i],
		})
	}
	for i := range stories {
		items = append(items, models.LibraryItem{
			ID:        stories[i].ID,
			Type:      models.LibraryTypeStory,
			CreatedAt: stories[i].CreatedAt,
			Story:     &stories[i],
		})
	}
	for i := range content {
		items = append(items, models.LibraryItem{
			ID:        content[i].ID,
			Type:      content[i].Type,
			CreatedAt: content[i].CreatedAt,
			Content:   &content[i],
		})
	}

	// Newest first.
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
