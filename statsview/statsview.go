// Package statsview serves live runtime statistics (heap, goroutines, GC)
// of the running emulator over HTTP.
package statsview

import (
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/retroenv/retrogolib/log"
)

// DefaultAddress is the address served on when none is configured.
const DefaultAddress = "localhost:12600"

const page = "/debug/statsview"

// URL returns the statistics page for a server listening on addr.
func URL(addr string) string {
	return "http://" + addr + page
}

// Serve runs the statistics server on addr in the background. A server that
// fails to start is logged and the emulator carries on without it.
func Serve(addr string, logger *log.Logger) {
	viewer.SetConfiguration(viewer.WithAddr(addr))
	mgr := statsview.New()

	go func() {
		if err := mgr.Start(); err != nil {
			logger.Error("Stats server stopped", err, log.String("addr", addr))
		}
	}()

	logger.Info("Stats server started", log.String("url", URL(addr)))
}
