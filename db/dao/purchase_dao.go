package dao

import (
	"github.com/jmoiron/sqlx"
	"github.com/safehaven-world/safehaven/db/entities"
)

type purchaseDao struct {
	*DAO[entities.BookPurchase]
}

func NewPurchaseDAO(db *sqlx.DB) PurchaseDAO {
	return &purchaseDao{
		DAO: NewDAO[entities.BookPurchase]("book_purchases", db, "id", "purchased_at"),
	}
}
