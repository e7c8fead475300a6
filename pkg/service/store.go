package service

import (
	"context"
	"time"

	"github.com/pdtriglav/alpcontent/pkg/domain"
	"github.com/pdtriglav/alpcontent/pkg/repository"
)

// RepoStore provides unified access to repositories for the content manager
type RepoStore struct {
	historyRepo *repository.HistoryRepository
	newsRepo    *repository.NewsCacheRepository
	settingRepo *repository.SettingRepository
	pinger      interface{ Ping(ctx context.Context) error }
}

// NewRepoStore creates a store over the shared repositories
func NewRepoStore(repos *repository.Repositories) *RepoStore {
	return &RepoStore{
		historyRepo: repos.History,
		newsRepo:    repos.News,
		settingRepo: repos.Setting,
		pinger:      repos,
	}
}

// News cache methods

func (s *RepoStore) GetNewsDay(ctx context.Context, date string) (domain.NewsDay, error) {
	return s.newsRepo.GetNewsDay(ctx, date)
}

func (s *RepoStore) SaveNewsDay(ctx context.Context, day domain.NewsDay) error {
	return s.newsRepo.SaveNewsDay(ctx, day)
}

func (s *RepoStore) DeleteNewsBefore(ctx context.Context, before time.Time) (int64, error) {
	return s.newsRepo.DeleteNewsBefore(ctx, before)
}

func (s *RepoStore) CountNewsDays(ctx context.Context) (int, error) {
	return s.newsRepo.CountNewsDays(ctx)
}

// Historical event counters

func (s *RepoStore) CountEvents(ctx context.Context) (total, curated int, err error) {
	return s.historyRepo.CountEvents(ctx)
}

func (s *RepoStore) CountGeneratedSince(ctx context.Context, since time.Time) (int, error) {
	return s.historyRepo.CountGeneratedSince(ctx, since)
}

// Setting methods

func (s *RepoStore) GetJSON(ctx context.Context, key string, v any) (bool, error) {
	return s.settingRepo.GetJSON(ctx, key, v)
}

func (s *RepoStore) SetJSON(ctx context.Context, key string, v any) error {
	return s.settingRepo.SetJSON(ctx, key, v)
}

// Ping checks the database answers queries
func (s *RepoStore) Ping(ctx context.Context) error {
	return s.pinger.Ping(ctx)
}
