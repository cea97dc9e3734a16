//go:build integration

package dao_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/safehaven-world/safehaven/config"
	"github.com/safehaven-world/safehaven/db"
	"github.com/safehaven-world/safehaven/db/dao"
	"github.com/safehaven-world/safehaven/db/entities"
	"github.com/safehaven-world/safehaven/db/migrator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// initDB connects to the database the configuration resolves to (defaults,
// .env, or SAFEHAVEN_DATABASE_* variables), migrates it, and empties every
// table. Run with -tags integration against a disposable database.
func initDB(t *testing.T) *db.DB {
	t.Helper()

	cfg := config.New()
	require.NoError(t, config.Load("", cfg))

	if err := migrator.New(&cfg.Database).Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	sqlDB, err := db.NewSqlDB(cfg.Database)
	require.NoError(t, err)
	database, err := db.NewDB(sqlDB, zap.NewNop().Sugar())
	require.NoError(t, err)
	require.NoError(t, database.Ping())
	t.Cleanup(func() { database.Close() })

	for _, table := range []string{
		"analytics_events",
		"newsletter_subscribers",
		"contact_submissions",
		"book_preorders",
		"book_purchases",
	} {
		require.NoError(t, database.Truncate(table))
	}
	return database
}

func insertEvent(t *testing.T, database *db.DB, eventType string, data json.RawMessage) *entities.AnalyticsEvent {
	t.Helper()
	event := &entities.AnalyticsEvent{
		EventType: eventType,
		EventData: data,
		IPAddress: "unknown",
		UserAgent: "unknown",
	}
	require.NoError(t, database.Events.Insert(context.TODO(), event))
	return event
}

// backdate rewrites created_at, which the DAO never does itself; the
// window and retention tests need rows in the past.
func backdate(t *testing.T, database *db.DB, id int64, days int) {
	t.Helper()
	_, err := database.DB.Exec(
		"UPDATE analytics_events SET created_at = now() - make_interval(days => $1) WHERE id = $2",
		days, id,
	)
	require.NoError(t, err)
}

func TestCountsByTypeMatchTotal(t *testing.T) {
	database := initDB(t)
	ctx := context.TODO()

	for i := 0; i < 3; i++ {
		insertEvent(t, database, "page_view", nil)
	}
	for i := 0; i < 2; i++ {
		insertEvent(t, database, "download", nil)
	}
	insertEvent(t, database, "newsletter_signup", nil)

	total, err := database.Events.Total(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 6, total)

	counts, err := database.Events.CountsByType(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 3)

	var sum int64
	for _, c := range counts {
		sum += c.Count
	}
	assert.Equal(t, total, sum)

	// ordered by count descending
	assert.Equal(t, "page_view", counts[0].EventType)
	assert.EqualValues(t, 3, counts[0].Count)
	for i := 1; i < len(counts); i++ {
		assert.GreaterOrEqual(t, counts[i-1].Count, counts[i].Count)
	}
}

func TestRecentEventsOrdering(t *testing.T) {
	database := initDB(t)
	ctx := context.TODO()

	// inside one transaction every row gets the same created_at, so only
	// the id can order them
	var ids []int64
	err := database.TX(ctx, func(ctx context.Context) error {
		for i := 0; i < 3; i++ {
			event := &entities.AnalyticsEvent{EventType: "page_view", IPAddress: "unknown", UserAgent: "unknown"}
			if err := database.Events.Insert(ctx, event); err != nil {
				return err
			}
			ids = append(ids, event.ID)
		}
		return nil
	})
	require.NoError(t, err)

	list, err := database.Events.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, ids[2], list[0].ID)
	for i := 1; i < len(list); i++ {
		assert.Greater(t, list[i-1].ID, list[i].ID)
	}

	list, err = database.Events.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestDailyCountsWindow(t *testing.T) {
	database := initDB(t)
	ctx := context.TODO()

	insertEvent(t, database, "page_view", nil)
	recent := insertEvent(t, database, "page_view", nil)
	backdate(t, database, recent.ID, 3)
	old := insertEvent(t, database, "page_view", nil)
	backdate(t, database, old.ID, 20)

	list, err := database.Events.DailyCounts(ctx, 14)
	require.NoError(t, err)

	// the 20-day-old row is outside the window, and days without events
	// produce no rows at all
	require.Len(t, list, 2)
	assert.True(t, list[0].Date.Before(list[1].Date.Time))
	var sum int64
	for _, d := range list {
		assert.EqualValues(t, 1, d.Count)
		sum += d.Count
	}
	assert.EqualValues(t, 2, sum)
}

func TestDownloadEventsHeuristic(t *testing.T) {
	database := initDB(t)
	ctx := context.TODO()

	insertEvent(t, database, "download", nil)
	insertEvent(t, database, "page_view", json.RawMessage(`{"file":"whitepaper-download.pdf"}`))
	insertEvent(t, database, "newsletter_signup", json.RawMessage(`{"source":"footer"}`))

	list, err := database.Events.DownloadEvents(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	types := []string{list[0].EventType, list[1].EventType}
	assert.Contains(t, types, "download")
	assert.Contains(t, types, "page_view")
}

func TestIdenticalSubmissionsBothStored(t *testing.T) {
	database := initDB(t)
	ctx := context.TODO()

	first := insertEvent(t, database, "page_view", json.RawMessage(`{"path":"/books"}`))
	second := insertEvent(t, database, "page_view", json.RawMessage(`{"path":"/books"}`))
	assert.NotEqual(t, first.ID, second.ID)

	total, err := database.Events.Total(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	submission := entities.ContactSubmission{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Subject:   "Hello",
		Message:   "Hi",
		Status:    "new",
	}
	a, b := submission, submission
	require.NoError(t, database.Contacts.Insert(ctx, &a))
	require.NoError(t, database.Contacts.Insert(ctx, &b))
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSubscriberUniqueEmail(t *testing.T) {
	database := initDB(t)
	ctx := context.TODO()

	subscriber := &entities.NewsletterSubscriber{Email: "ada@example.com", Status: entities.SubscriberStatusActive}
	require.NoError(t, database.Subscribers.Insert(ctx, subscriber))

	duplicate := &entities.NewsletterSubscriber{Email: "ada@example.com", Status: entities.SubscriberStatusActive}
	err := database.Subscribers.Insert(ctx, duplicate)
	assert.ErrorIs(t, err, dao.ErrConstraintViolation)

	found, err := database.Subscribers.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, subscriber.ID, found.ID)
}

func TestDeleteOlderThan(t *testing.T) {
	database := initDB(t)
	ctx := context.TODO()

	insertEvent(t, database, "page_view", nil)
	mid := insertEvent(t, database, "page_view", nil)
	backdate(t, database, mid.ID, 10)
	expired := insertEvent(t, database, "page_view", nil)
	backdate(t, database, expired.ID, 30)

	deleted, err := database.Events.DeleteOlderThan(ctx, 14)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	total, err := database.Events.Total(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}
