package admin

import (
	"bytes"
	"html/template"
)

var dashboardFuncs = template.FuncMap{
	"datetime": func(t interface{ Format(string) string }) string {
		return t.Format("2006-01-02 15:04:05")
	},
	"date": func(t interface{ Format(string) string }) string {
		return t.Format("2006-01-02")
	},
}

var dashboardTemplate = template.Must(template.New("dashboard").Funcs(dashboardFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Analytics Dashboard</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 0; background: #f9fafb; color: #111; }
    .container { max-width: 1100px; margin: 0 auto; padding: 32px 16px; }
    h1 { color: #1e3a8a; }
    h2 { margin-top: 32px; }
    table { border-collapse: collapse; width: 100%; background: #fff; }
    th, td { border: 1px solid #e5e7eb; padding: 6px 10px; text-align: left; font-size: 14px; }
    th { background: #f3f4f6; }
    .error { background: #fef2f2; border: 1px solid #fecaca; color: #991b1b; padding: 16px; border-radius: 4px; }
    .meta { color: #666; font-size: 12px; }
    .bar { background: #3b82f6; display: inline-block; height: 12px; }
  </style>
</head>
<body>
<div class="container">
  <h1>Analytics Dashboard</h1>
  <p class="meta">Generated at {{datetime .GeneratedAt}}</p>

  {{if .Error}}
  <div class="error">
    <strong>Analytics data is unavailable.</strong>
    <p>{{.Error}}</p>
  </div>
  {{end}}

  <h2>Overview</h2>
  <p>Total events recorded: <strong>{{.TotalEvents}}</strong></p>

  <h2>Events by Type</h2>
  <table>
    <tr><th>Event Type</th><th>Count</th></tr>
    {{range .Counts}}
    <tr><td>{{.EventType}}</td><td>{{.Count}}</td></tr>
    {{else}}
    <tr><td colspan="2">No data</td></tr>
    {{end}}
  </table>

  <h2>Daily Events</h2>
  <table>
    <tr><th>Date</th><th>Count</th></tr>
    {{range .Daily}}
    <tr><td>{{date .Date}}</td><td>{{.Count}} <span class="bar" style="width: {{.Count}}px"></span></td></tr>
    {{else}}
    <tr><td colspan="2">No data</td></tr>
    {{end}}
  </table>

  <h2>Download Events</h2>
  <table>
    <tr><th>ID</th><th>Type</th><th>Data</th><th>IP</th><th>Recorded</th></tr>
    {{range .Downloads}}
    <tr><td>{{.ID}}</td><td>{{.EventType}}</td><td>{{printf "%s" .EventData}}</td><td>{{.IPAddress}}</td><td>{{datetime .CreatedAt}}</td></tr>
    {{else}}
    <tr><td colspan="5">No data</td></tr>
    {{end}}
  </table>

  <h2>Recent Events</h2>
  <table>
    <tr><th>ID</th><th>Type</th><th>User</th><th>IP</th><th>User Agent</th><th>Recorded</th></tr>
    {{range .Recent}}
    <tr>
      <td>{{.ID}}</td>
      <td>{{.EventType}}</td>
      <td>{{if .UserID}}{{.UserID}}{{else}}anonymous{{end}}</td>
      <td>{{.IPAddress}}</td>
      <td>{{.UserAgent}}</td>
      <td>{{datetime .CreatedAt}}</td>
    </tr>
    {{else}}
    <tr><td colspan="6">No data</td></tr>
    {{end}}
  </table>
</div>
</body>
</html>
`))

func renderDashboard(data DashboardData) ([]byte, error) {
	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
