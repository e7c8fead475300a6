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

// HistoryRepository handles historical event storage
type HistoryRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// eventSQL represents a historical event row
type eventSQL struct {
	ID             int64     `db:"id"`
	Month          int       `db:"month"`
	Day            int       `db:"day"`
	Year           int       `db:"year"`
	Title          string    `db:"title"`
	Description    string    `db:"description"`
	Location       string    `db:"location"`
	People         string    `db:"people"`
	URL            string    `db:"url"`
	URLSecondary   string    `db:"url_secondary"`
	Category       string    `db:"category"`
	Methodology    string    `db:"methodology"`
	URLMethodology string    `db:"url_methodology"`
	IsGenerated    bool      `db:"is_generated"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

const eventColumns = `id, month, day, year, title, description, location, people, url, url_secondary,
	category, methodology, url_methodology, is_generated, created_at, updated_at`

// NewHistoryRepository creates a new historical event repository
func NewHistoryRepository(db *sqlx.DB) *HistoryRepository {
	return &HistoryRepository{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// CreateEvent inserts a new event and sets its id and timestamps.
// Returns ErrDuplicate if an event for the same month, day and year already exists.
func (r *HistoryRepository) CreateEvent(ctx context.Context, event *domain.HistoricalEvent) error {
	row, err := r.toSQL(event)
	if err != nil {
		return err
	}
	row.CreatedAt, row.UpdatedAt = r.now(), r.now()

	query := `
		INSERT INTO historical_events (month, day, year, title, description, location, people, url, url_secondary,
			category, methodology, url_methodology, is_generated, created_at, updated_at)
		VALUES (:month, :day, :year, :title, :description, :location, :people, :url, :url_secondary,
			:category, :methodology, :url_methodology, :is_generated, :created_at, :updated_at)
	`
	var res sql.Result
	err = withLockRetry(ctx, func() (e error) {
		res, e = r.db.NamedExecContext(ctx, query, row)
		return e
	})
	if isUniqueError(err) {
		return fmt.Errorf("create event %s: %w", event.FullDate(), ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}
	event.ID, event.CreatedAt, event.UpdatedAt = id, row.CreatedAt, row.UpdatedAt
	return nil
}

// CreateEventIfDayEmpty inserts event only if no event exists for its month and day, in one statement.
// Returns the stored event for the day and whether it was created by this call. Concurrent callers for
// the same day end up with exactly one row, the losers read the winner's record.
func (r *HistoryRepository) CreateEventIfDayEmpty(ctx context.Context, event domain.HistoricalEvent) (domain.HistoricalEvent, bool, error) {
	row, err := r.toSQL(&event)
	if err != nil {
		return domain.HistoricalEvent{}, false, err
	}
	row.CreatedAt, row.UpdatedAt = r.now(), r.now()

	query := `
		INSERT INTO historical_events (month, day, year, title, description, location, people, url, url_secondary,
			category, methodology, url_methodology, is_generated, created_at, updated_at)
		SELECT ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?
		WHERE NOT EXISTS (SELECT 1 FROM historical_events WHERE month = ? AND day = ?)
	`
	var affected int64
	err = withLockRetry(ctx, func() error {
		res, e := r.db.ExecContext(ctx, query, row.Month, row.Day, row.Year, row.Title, row.Description, row.Location,
			row.People, row.URL, row.URLSecondary, row.Category, row.Methodology, row.URLMethodology, row.IsGenerated,
			row.CreatedAt, row.UpdatedAt, row.Month, row.Day)
		if e != nil {
			return e
		}
		affected, e = res.RowsAffected()
		return e
	})
	if err != nil && !isUniqueError(err) {
		return domain.HistoricalEvent{}, false, fmt.Errorf("create event for %s: %w", event.DateLabel(), err)
	}

	// either inserted or lost the race, in both cases the day's preferred record is the answer
	stored, err := r.GetEventForDay(ctx, event.Month, event.Day)
	if err != nil {
		return domain.HistoricalEvent{}, false, fmt.Errorf("read event for %s: %w", event.DateLabel(), err)
	}
	return stored, affected > 0, nil
}

// GetEvent retrieves an event by id
func (r *HistoryRepository) GetEvent(ctx context.Context, id int64) (domain.HistoricalEvent, error) {
	var row eventSQL
	err := r.db.GetContext(ctx, &row, "SELECT "+eventColumns+" FROM historical_events WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.HistoricalEvent{}, fmt.Errorf("event %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return domain.HistoricalEvent{}, fmt.Errorf("get event %d: %w", id, err)
	}
	return r.toDomain(row), nil
}

// GetEventForDay returns the event for a calendar day. Curated records come first, then generated ones,
// then records stored from static fallback content.
func (r *HistoryRepository) GetEventForDay(ctx context.Context, month, day int) (domain.HistoricalEvent, error) {
	query := "SELECT " + eventColumns + ` FROM historical_events
		WHERE month = ? AND day = ?
		ORDER BY CASE
			WHEN is_generated = 0 AND methodology <> ? THEN 0
			WHEN is_generated = 1 THEN 1
			ELSE 2
		END, created_at ASC, id ASC
		LIMIT 1`
	var row eventSQL
	err := r.db.GetContext(ctx, &row, query, month, day, domain.FallbackMethodology)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.HistoricalEvent{}, fmt.Errorf("event for %02d-%02d: %w", month, day, ErrNotFound)
	}
	if err != nil {
		return domain.HistoricalEvent{}, fmt.Errorf("get event for %02d-%02d: %w", month, day, err)
	}
	return r.toDomain(row), nil
}

// ListEvents returns events for a month ordered by day and year, month 0 lists all events
func (r *HistoryRepository) ListEvents(ctx context.Context, month int) ([]domain.HistoricalEvent, error) {
	query := "SELECT " + eventColumns + " FROM historical_events"
	args := []any{}
	if month > 0 {
		query += " WHERE month = ?"
		args = append(args, month)
	}
	query += " ORDER BY month, day, year"

	var rows []eventSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	res := make([]domain.HistoricalEvent, len(rows))
	for i, row := range rows {
		res[i] = r.toDomain(row)
	}
	return res, nil
}

// UpdateEvent overwrites all content fields of an existing event and bumps updated_at.
// Month and day are kept, year may change and is subject to the uniqueness constraint.
func (r *HistoryRepository) UpdateEvent(ctx context.Context, event *domain.HistoricalEvent) error {
	row, err := r.toSQL(event)
	if err != nil {
		return err
	}
	row.UpdatedAt = r.now()

	query := `
		UPDATE historical_events SET
			year = :year, title = :title, description = :description, location = :location, people = :people,
			url = :url, url_secondary = :url_secondary, category = :category, methodology = :methodology,
			url_methodology = :url_methodology, is_generated = :is_generated, updated_at = :updated_at
		WHERE id = :id
	`
	var affected int64
	err = withLockRetry(ctx, func() error {
		res, e := r.db.NamedExecContext(ctx, query, row)
		if e != nil {
			return e
		}
		affected, e = res.RowsAffected()
		return e
	})
	if isUniqueError(err) {
		return fmt.Errorf("update event %d to %s: %w", event.ID, event.FullDate(), ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("update event %d: %w", event.ID, err)
	}
	if affected == 0 {
		return fmt.Errorf("update event %d: %w", event.ID, ErrNotFound)
	}
	event.UpdatedAt = row.UpdatedAt
	return nil
}

// ImportEvents upserts curated events in a single transaction, a failure rolls back the whole batch.
// Existing rows for the same month, day and year are overwritten.
func (r *HistoryRepository) ImportEvents(ctx context.Context, events []domain.HistoricalEvent) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO historical_events (month, day, year, title, description, location, people, url, url_secondary,
			category, methodology, url_methodology, is_generated, created_at, updated_at)
		VALUES (:month, :day, :year, :title, :description, :location, :people, :url, :url_secondary,
			:category, :methodology, :url_methodology, :is_generated, :created_at, :updated_at)
		ON CONFLICT(month, day, year) DO UPDATE SET
			title = excluded.title, description = excluded.description, location = excluded.location,
			people = excluded.people, url = excluded.url, url_secondary = excluded.url_secondary,
			category = excluded.category, methodology = excluded.methodology,
			url_methodology = excluded.url_methodology, is_generated = excluded.is_generated,
			updated_at = excluded.updated_at
	`
	err := withLockRetry(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		for i := range events {
			row, err := r.toSQL(&events[i])
			if err != nil {
				return err
			}
			row.CreatedAt, row.UpdatedAt = r.now(), r.now()
			if _, err := tx.NamedExecContext(ctx, query, row); err != nil {
				return fmt.Errorf("import event %s: %w", events[i].FullDate(), err)
			}
		}
		return tx.Commit()
	})
	if err != nil {
		return 0, fmt.Errorf("import events: %w", err)
	}
	return len(events), nil
}

// CountEvents returns total and curated event counts
func (r *HistoryRepository) CountEvents(ctx context.Context) (total, curated int, err error) {
	var counts struct {
		Total   int `db:"total"`
		Curated int `db:"curated"`
	}
	query := `SELECT COUNT(*) AS total, COALESCE(SUM(CASE WHEN is_generated = 0 THEN 1 ELSE 0 END), 0) AS curated
		FROM historical_events`
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		return 0, 0, fmt.Errorf("count events: %w", err)
	}
	return counts.Total, counts.Curated, nil
}

// CountGeneratedSince returns the number of generated events created at or after since
func (r *HistoryRepository) CountGeneratedSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM historical_events WHERE is_generated = 1 AND created_at >= ?", since.UTC())
	if err != nil {
		return 0, fmt.Errorf("count generated events: %w", err)
	}
	return count, nil
}

func (r *HistoryRepository) toSQL(e *domain.HistoricalEvent) (*eventSQL, error) {
	people := e.People
	if people == nil {
		people = []string{}
	}
	peopleJSON, err := json.Marshal(people)
	if err != nil {
		return nil, fmt.Errorf("marshal people: %w", err)
	}
	category := e.Category
	if category == "" {
		category = domain.CategoryAchievement
	}
	return &eventSQL{
		ID:             e.ID,
		Month:          e.Month,
		Day:            e.Day,
		Year:           e.Year,
		Title:          e.Title,
		Description:    e.Description,
		Location:       e.Location,
		People:         string(peopleJSON),
		URL:            e.URL,
		URLSecondary:   e.URLSecondary,
		Category:       string(category),
		Methodology:    e.Methodology,
		URLMethodology: e.URLMethodology,
		IsGenerated:    e.IsGenerated,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}, nil
}

func (r *HistoryRepository) toDomain(row eventSQL) domain.HistoricalEvent {
	people := []string{}
	if row.People != "" {
		_ = json.Unmarshal([]byte(row.People), &people) // a corrupted list reads as empty
	}
	return domain.HistoricalEvent{
		ID:             row.ID,
		Month:          row.Month,
		Day:            row.Day,
		Year:           row.Year,
		Title:          row.Title,
		Description:    row.Description,
		Location:       row.Location,
		People:         people,
		URL:            row.URL,
		URLSecondary:   row.URLSecondary,
		Category:       domain.EventCategory(row.Category),
		Methodology:    row.Methodology,
		URLMethodology: row.URLMethodology,
		IsGenerated:    row.IsGenerated,
		CreatedAt:      row.CreatedAt.UTC(),
		UpdatedAt:      row.UpdatedAt.UTC(),
	}
}
