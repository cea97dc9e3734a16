package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/safehaven-world/safehaven/config"
	"github.com/safehaven-world/safehaven/db/dao"
	"github.com/safehaven-world/safehaven/db/transaction"
	"go.uber.org/zap"
)

type DB struct {
	DB  *sqlx.DB
	log *zap.SugaredLogger

	Events      dao.EventDAO
	Subscribers dao.SubscriberDAO
	Contacts    dao.ContactDAO
	Preorders   dao.PreorderDAO
	Purchases   dao.PurchaseDAO
}

func NewSqlDB(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.GetDSN())
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(int(cfg.MaxPoolSize))
	db.SetMaxIdleConns(int(cfg.MaxPoolSize))
	db.SetConnMaxLifetime(time.Second * time.Duration(cfg.MaxLifetime))
	return db, nil
}

func NewDB(sqlDB *sql.DB, log *zap.SugaredLogger) (*DB, error) {
	sqlxDB := sqlx.NewDb(sqlDB, "pgx")

	db := &DB{
		DB:          sqlxDB,
		log:         log,
		Events:      dao.NewEventDAO(sqlxDB),
		Subscribers: dao.NewSubscriberDAO(sqlxDB),
		Contacts:    dao.NewContactDAO(sqlxDB),
		Preorders:   dao.NewPreorderDAO(sqlxDB),
		Purchases:   dao.NewPurchaseDAO(sqlxDB),
	}

	return db, nil
}

func (db *DB) Ping() error {
	return db.DB.Ping()
}

// EventStore exposes the analytics event DAO behind an interface boundary
// for read-side consumers.
func (db *DB) EventStore() dao.EventDAO {
	return db.Events
}

func (db *DB) Stats() map[string]interface{} {
	stats := db.DB.Stats()
	return map[string]interface{}{
		"database.total_connections":  stats.OpenConnections,
		"database.active_connections": stats.InUse,
	}
}

func (db *DB) TX(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := db.DB.Beginx()
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			db.log.Errorf("panic recovered: %v", err)
			if rbErr := tx.Rollback(); rbErr != nil {
				db.log.Errorf("failed to rollback the tx: %v", rbErr)
			}
			panic(err)
		}
	}()

	ctx = transaction.WithTx(ctx, tx)

	err = fn(ctx)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Wrap(err, rbErr.Error())
		}
		return err
	}

	return tx.Commit()
}

func (db *DB) Truncate(table string) error {
	sql := fmt.Sprintf("DELETE FROM %s", table)
	_, err := db.DB.Exec(sql)
	return err
}

func (db *DB) SqlDB() *sql.DB {
	return db.DB.DB
}

func (db *DB) Close() error {
	return db.DB.Close()
}
