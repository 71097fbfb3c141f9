package cmd

import (
	"io"
	"log/slog"

	"github.com/kimicode/kimi-auth/internal/catalog"
)

// models prints the registration value the host runtime consumes: provider
// metadata, the model catalog and the serving API header set.
func models(logger *slog.Logger, stdout io.Writer) int {
	c, err := catalog.Load()
	if err != nil {
		logger.Error(err.Error())

		return 1
	}

	return printJSON(logger, stdout, c.Registration())
}
