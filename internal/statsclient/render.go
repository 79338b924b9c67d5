package statsclient

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/tidwall/gjson"
)

// RenderStats prints the aggregate counters and process info as a two-column table.
func RenderStats(w io.Writer, stats gjson.Result) error {
	rows := [][]string{
		{"Status", stats.Get("status").String()},
		{"Uptime", formatSeconds(stats.Get("uptime").Int())},
		{"Server started", stats.Get("serverStartTime").String()},
		{"Last updated", stats.Get("lastUpdated").String()},
		{"Total sessions", stats.Get("statistics.totalSessions").String()},
		{"Active sessions", stats.Get("statistics.activeSessions").String()},
		{"Total detections", stats.Get("statistics.totalDetections").String()},
		{"Face detections", stats.Get("statistics.totalFaceDetections").String()},
		{"Interactions", stats.Get("statistics.totalInteractions").String()},
		{"Avg detections/session", stats.Get("statistics.avgDetectionsPerSession").String()},
		{"Memory", stats.Get("system.memory").String()},
		{"PID", stats.Get("system.pid").String()},
		{"Environment", stats.Get("system.environment").String()},
	}
	return renderTable(w, []string{"Metric", "Value"}, rows)
}

// RenderHealth prints the health report.
func RenderHealth(w io.Writer, health gjson.Result) error {
	rows := [][]string{
		{"Status", health.Get("status").String()},
		{"Server", health.Get("server").String()},
		{"Environment", health.Get("environment").String()},
		{"Runtime", health.Get("goVersion").String()},
		{"Uptime", formatSeconds(health.Get("uptime").Int())},
		{"Heap used", formatBytes(health.Get("memory.heapUsed").Uint())},
		{"Heap total", formatBytes(health.Get("memory.heapTotal").Uint())},
		{"RSS", formatBytes(health.Get("memory.rss").Uint())},
	}
	return renderTable(w, []string{"Check", "Value"}, rows)
}

// RenderEvents prints one row per journal event, newest first.
func RenderEvents(w io.Writer, events gjson.Result) error {
	var rows [][]string
	events.Get("events").ForEach(func(_, event gjson.Result) bool {
		rows = append(rows, []string{
			event.Get("id").String(),
			event.Get("timestamp").String(),
			event.Get("type").String(),
			event.Get("sessionId").String(),
			event.Get("detail").Raw,
		})
		return true
	})
	if err := renderTable(w, []string{"ID", "Time", "Type", "Session", "Detail"}, rows); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d of %d events\n", len(rows), events.Get("total").Int())
	return err
}

func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(header)
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return table.Render()
}

func formatSeconds(total int64) string {
	h, m, s := total/3600, (total%3600)/60, total%60
	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

func formatBytes(n uint64) string {
	const mb = 1024 * 1024
	return fmt.Sprintf("%.1f MB", float64(n)/mb)
}
