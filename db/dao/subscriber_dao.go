package dao

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/safehaven-world/safehaven/db/entities"
)

type subscriberDao struct {
	*DAO[entities.NewsletterSubscriber]
}

func NewSubscriberDAO(db *sqlx.DB) SubscriberDAO {
	return &subscriberDao{
		DAO: NewDAO[entities.NewsletterSubscriber]("newsletter_subscribers", db, "id", "subscribed_at"),
	}
}

func (dao *subscriberDao) GetByEmail(ctx context.Context, email string) (*entities.NewsletterSubscriber, error) {
	return dao.selectByField(ctx, "email", email)
}
