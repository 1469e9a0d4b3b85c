// Package log provides the small leveled Logger that pathfind searches
// report through.
//
// Searches never log unless a Logger is injected with the WithLogger option
// of the astar or dijkstra packages; the default is NoOpLogger, so the
// algorithms stay silent, side-effect-free functions.
//
// Two implementations ship with the package:
//
//   - GologLogger forwards to a github.com/kataras/golog Logger. New(level)
//     builds one writing to stderr; NewGologLogger wraps a logger you
//     configured yourself (prefix, output, time format).
//   - NoOpLogger discards everything.
//
// Levels, in order of increasing severity: LogLevelDebug, LogLevelInfo,
// LogLevelWarn, LogLevelError, LogLevelNone (disables output).
//
// Example:
//
//	glogger := golog.New()
//	glogger.SetPrefix("[router] ")
//	logger := log.NewGologLogger(glogger)
//	logger.SetLevel(log.LogLevelDebug)
//
//	path, err := astar.FindPath(grid, start, goal, astar.WithLogger(logger))
//
// There is deliberately no package-level default logger: every search
// receives its logger explicitly.
package log
