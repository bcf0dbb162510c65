package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"

	"github.com/xlab/closer"

	"gvr-gl/internal/config"
	"gvr-gl/internal/logging"
	"gvr-gl/internal/profiling"
)

var (
	glErrors   = flag.Bool("gl-errors", true, "check glGetError after every texture call")
	anisotropy = flag.Int("anisotropy", 4, "anisotropic filtering level for the checker texture")
	verbose    = flag.Bool("v", false, "log texture lifecycle at debug level")
	dump       = flag.Bool("dump", true, "print the pending queue as JSON before and after the sweep")
)

func init() {
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	defer closer.Close()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	config.SetGLErrorChecks(*glErrors)

	// Runs on exit and on SIGINT, so it must not touch GL
	closer.Bind(func() {
		logging.Logger().Info("frame stats", "top", profiling.TopN(5), "counts", profiling.Counts())
	})

	closer.Checked(run, true)
}
