// Package log provides the application logger, built on top of the
// standard slog package.
//
// The PathHandler rewrites file system paths under the user's home
// directory to the "~/..." form before they reach the output, so logs can
// be shared without exposing the local user name:
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Debug("artifact written", "path", "/home/alice/site/DELIVERY_SUMMARY.txt")
//	// level=DEBUG msg="artifact written" path=~/site/DELIVERY_SUMMARY.txt
//
// Verbose mode lowers the level from Warn to Debug.
package log
