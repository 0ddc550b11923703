package games

import "log/slog"

func testGameLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
