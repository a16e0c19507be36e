package main

import (
	"log/slog"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

const statsviewAddress = "localhost:12600"

// launchStatsview serves GC and goroutine graphs at /debug/statsview, which
// is useful for spotting pauses that would blow the frame budget.
func launchStatsview() {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(statsviewAddress))
		mgr := statsview.New()
		mgr.Start()
	}()
	slog.Info("stats server available", "url", "http://"+statsviewAddress+"/debug/statsview")
}
