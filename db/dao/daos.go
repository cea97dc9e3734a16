package dao

import (
	"context"

	"github.com/safehaven-world/safehaven/db/entities"
)

type EventDAO interface {
	Insert(ctx context.Context, event *entities.AnalyticsEvent) error
	Get(ctx context.Context, id int64) (*entities.AnalyticsEvent, error)
	Recent(ctx context.Context, limit uint64) ([]*entities.AnalyticsEvent, error)
	CountsByType(ctx context.Context) ([]*entities.EventTypeCount, error)
	DailyCounts(ctx context.Context, days uint32) ([]*entities.DailyEventCount, error)
	DownloadEvents(ctx context.Context) ([]*entities.AnalyticsEvent, error)
	Total(ctx context.Context) (int64, error)
	DeleteOlderThan(ctx context.Context, days uint32) (int64, error)
}

type SubscriberDAO interface {
	Insert(ctx context.Context, subscriber *entities.NewsletterSubscriber) error
	Get(ctx context.Context, id int64) (*entities.NewsletterSubscriber, error)
	GetByEmail(ctx context.Context, email string) (*entities.NewsletterSubscriber, error)
}

type ContactDAO interface {
	Insert(ctx context.Context, submission *entities.ContactSubmission) error
	Get(ctx context.Context, id int64) (*entities.ContactSubmission, error)
}

type PreorderDAO interface {
	Insert(ctx context.Context, preorder *entities.BookPreorder) error
	Get(ctx context.Context, id int64) (*entities.BookPreorder, error)
}

type PurchaseDAO interface {
	Insert(ctx context.Context, purchase *entities.BookPurchase) error
	Get(ctx context.Context, id int64) (*entities.BookPurchase, error)
}
