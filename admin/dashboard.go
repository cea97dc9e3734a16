package admin

import (
	"net/http"
	"time"

	"github.com/safehaven-world/safehaven/db/entities"
	"github.com/safehaven-world/safehaven/pkg/http/response"
	"golang.org/x/sync/errgroup"
)

// DashboardData is the view model of the analytics dashboard page. When
// Error is set the page renders a degraded panel with empty result sets.
type DashboardData struct {
	GeneratedAt time.Time
	Error       string

	TotalEvents int64
	Recent      []*entities.AnalyticsEvent
	Counts      []*entities.EventTypeCount
	Daily       []*entities.DailyEventCount
	Downloads   []*entities.AnalyticsEvent
}

// Dashboard renders the analytics dashboard. The queries share one failure
// domain: any error degrades the whole page rather than showing partial
// data.
func (api *API) Dashboard(w http.ResponseWriter, r *http.Request) {
	data := DashboardData{GeneratedAt: time.Now()}

	if err := api.db.Ping(); err != nil {
		api.log.Errorw("dashboard store probe failed",
			"error", err,
			"source", api.cfg.Database.Source(),
		)
		data.Error = err.Error()
		api.render(w, data)
		return
	}

	events := api.db.EventStore()

	// the aggregations are independent reads; run them concurrently but
	// keep one failure domain
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		data.TotalEvents, err = events.Total(ctx)
		return
	})
	g.Go(func() (err error) {
		data.Recent, err = events.Recent(ctx, uint64(api.cfg.Analytics.RecentLimit))
		return
	})
	g.Go(func() (err error) {
		data.Counts, err = events.CountsByType(ctx)
		return
	})
	g.Go(func() (err error) {
		data.Daily, err = events.DailyCounts(ctx, api.cfg.Analytics.DailyWindowDays)
		return
	})
	g.Go(func() (err error) {
		data.Downloads, err = events.DownloadEvents(ctx)
		return
	})

	if err := g.Wait(); err != nil {
		api.log.Errorw("dashboard query failed", "error", err)
		data = DashboardData{GeneratedAt: data.GeneratedAt, Error: err.Error()}
	}

	api.render(w, data)
}

func (api *API) render(w http.ResponseWriter, data DashboardData) {
	out, err := renderDashboard(data)
	if err != nil {
		panic(err)
	}
	response.HTML(w, 200, out)
}
