package dao

import (
	"github.com/jmoiron/sqlx"
	"github.com/safehaven-world/safehaven/db/entities"
)

type preorderDao struct {
	*DAO[entities.BookPreorder]
}

func NewPreorderDAO(db *sqlx.DB) PreorderDAO {
	return &preorderDao{
		DAO: NewDAO[entities.BookPreorder]("book_preorders", db, "id", "submitted_at"),
	}
}
