package dao

import (
	"github.com/jmoiron/sqlx"
	"github.com/safehaven-world/safehaven/db/entities"
)

type contactDao struct {
	*DAO[entities.ContactSubmission]
}

func NewContactDAO(db *sqlx.DB) ContactDAO {
	return &contactDao{
		DAO: NewDAO[entities.ContactSubmission]("contact_submissions", db, "id", "submitted_at"),
	}
}
