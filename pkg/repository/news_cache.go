package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pdtriglav/alpcontent/pkg/domain"
)

// NewsCacheRepository keeps the selected articles per calendar date
type NewsCacheRepository struct {
	db *sqlx.DB
}

type newsDaySQL struct {
	Date     string    `db:"news_date"`
	Articles string    `db:"articles"`
	CachedAt time.Time `db:"cached_at"`
}

// NewNewsCacheRepository creates a new news cache repository
func NewNewsCacheRepository(db *sqlx.DB) *NewsCacheRepository {
	return &NewsCacheRepository{db: db}
}

// GetNewsDay returns the cached articles for a date key (YYYY-MM-DD), ErrNotFound if nothing cached
func (r *NewsCacheRepository) GetNewsDay(ctx context.Context, date string) (domain.NewsDay, error) {
	var row newsDaySQL
	err := r.db.GetContext(ctx, &row, "SELECT news_date, articles, cached_at FROM daily_news WHERE news_date = ?", date)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewsDay{}, fmt.Errorf("news for %s: %w", date, ErrNotFound)
	}
	if err != nil {
		return domain.NewsDay{}, fmt.Errorf("get news for %s: %w", date, err)
	}

	res := domain.NewsDay{Date: row.Date, CachedAt: row.CachedAt.UTC(), Articles: []domain.Article{}}
	if err := json.Unmarshal([]byte(row.Articles), &res.Articles); err != nil {
		return domain.NewsDay{}, fmt.Errorf("unmarshal news for %s: %w", date, err)
	}
	return res, nil
}

// SaveNewsDay stores or replaces the articles for a date, one record per date
func (r *NewsCacheRepository) SaveNewsDay(ctx context.Context, day domain.NewsDay) error {
	if day.Date == "" {
		return errors.New("save news: empty date")
	}
	if day.Articles == nil {
		day.Articles = []domain.Article{}
	}
	articles, err := json.Marshal(day.Articles)
	if err != nil {
		return fmt.Errorf("marshal articles: %w", err)
	}
	if day.CachedAt.IsZero() {
		day.CachedAt = time.Now()
	}

	query := `
		INSERT INTO daily_news (news_date, articles, cached_at) VALUES (?, ?, ?)
		ON CONFLICT(news_date) DO UPDATE SET articles = excluded.articles, cached_at = excluded.cached_at
	`
	err = withLockRetry(ctx, func() error {
		_, e := r.db.ExecContext(ctx, query, day.Date, string(articles), day.CachedAt.UTC())
		return e
	})
	if err != nil {
		return fmt.Errorf("save news for %s: %w", day.Date, err)
	}
	return nil
}

// DeleteNewsBefore removes cached days with a date key before the given date, returns deleted count
func (r *NewsCacheRepository) DeleteNewsBefore(ctx context.Context, before time.Time) (int64, error) {
	var deleted int64
	err := withLockRetry(ctx, func() error {
		res, e := r.db.ExecContext(ctx, "DELETE FROM daily_news WHERE news_date < ?", domain.DateKey(before))
		if e != nil {
			return e
		}
		deleted, e = res.RowsAffected()
		return e
	})
	if err != nil {
		return 0, fmt.Errorf("delete news before %s: %w", domain.DateKey(before), err)
	}
	return deleted, nil
}

// CountNewsDays returns the number of cached days
func (r *NewsCacheRepository) CountNewsDays(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM daily_news"); err != nil {
		return 0, fmt.Errorf("count news days: %w", err)
	}
	return count, nil
}
