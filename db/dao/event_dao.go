package dao

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/safehaven-world/safehaven/constants"
	"github.com/safehaven-world/safehaven/db/entities"
)

type eventDao struct {
	*DAO[entities.AnalyticsEvent]
}

func NewEventDAO(db *sqlx.DB) EventDAO {
	return &eventDao{
		DAO: NewDAO[entities.AnalyticsEvent]("analytics_events", db, "id", "created_at"),
	}
}

// Recent returns the latest events ordered by creation time, id breaking
// ties so the order stays consistent with insertion order.
func (dao *eventDao) Recent(ctx context.Context, limit uint64) (list []*entities.AnalyticsEvent, err error) {
	statement, args := psql.Select("*").
		From(dao.table).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		MustSql()
	dao.debugSQL(statement, args)
	list = make([]*entities.AnalyticsEvent, 0)
	err = dao.UnsafeDB(ctx).SelectContext(ctx, &list, statement, args...)
	return
}

func (dao *eventDao) CountsByType(ctx context.Context) (list []*entities.EventTypeCount, err error) {
	statement, args := psql.Select("event_type", "COUNT(*) AS count").
		From(dao.table).
		GroupBy("event_type").
		OrderBy("count DESC").
		MustSql()
	dao.debugSQL(statement, args)
	list = make([]*entities.EventTypeCount, 0)
	err = dao.DB(ctx).SelectContext(ctx, &list, statement, args...)
	return
}

// DailyCounts buckets events of the trailing window by calendar date.
// Dates without events are not synthesized.
func (dao *eventDao) DailyCounts(ctx context.Context, days uint32) (list []*entities.DailyEventCount, err error) {
	statement, args := psql.Select("DATE(created_at) AS date", "COUNT(*) AS count").
		From(dao.table).
		Where("created_at >= NOW() - make_interval(days => ?)", days).
		GroupBy("DATE(created_at)").
		OrderBy("date").
		MustSql()
	dao.debugSQL(statement, args)
	list = make([]*entities.DailyEventCount, 0)
	err = dao.DB(ctx).SelectContext(ctx, &list, statement, args...)
	return
}

// DownloadEvents matches the type literal or a substring of the serialized
// payload. The loose payload match is historical behavior.
func (dao *eventDao) DownloadEvents(ctx context.Context) (list []*entities.AnalyticsEvent, err error) {
	statement, args := psql.Select("*").
		From(dao.table).
		Where(sq.Or{
			sq.Eq{"event_type": constants.EventTypeDownload},
			sq.Expr("event_data::text LIKE ?", "%download%"),
		}).
		OrderBy("created_at DESC", "id DESC").
		MustSql()
	dao.debugSQL(statement, args)
	list = make([]*entities.AnalyticsEvent, 0)
	err = dao.UnsafeDB(ctx).SelectContext(ctx, &list, statement, args...)
	return
}

func (dao *eventDao) Total(ctx context.Context) (int64, error) {
	return dao.Count(ctx, nil)
}

func (dao *eventDao) DeleteOlderThan(ctx context.Context, days uint32) (int64, error) {
	statement, args := psql.Delete(dao.table).
		Where("created_at < NOW() - make_interval(days => ?)", days).
		MustSql()
	dao.debugSQL(statement, args)
	result, err := dao.DB(ctx).ExecContext(ctx, statement, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
