// Package logging builds the slog loggers used by mlvm.
//
// Terminal output goes through [Handler], a compact colored line format
// that masks secret-looking attributes. [New] picks that handler or
// slog's JSON handler from [Options] and, with Options.File set, mirrors
// every record as JSON through a [MultiHandler]:
//
//	logger := logging.New(logging.Options{
//		Level:  logging.LevelFromVerbosity(2),
//		Output: os.Stderr,
//	})
//	logger.Debug("resolved", "runtime", "node", "version", "v20.11.0")
//
// Commands carry their logger in the context; see [NewContext] and
// [FromContext]. Tests use [ForTest], which routes records to t.Log.
package logging
