package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/freedesktop-go/trash"
)

var deleteConfiguration struct {
	verbose bool
	workers int
}

var deleteCommand = &cobra.Command{
	Use:   "delete <path>...",
	Short: "Move one or more paths into the trash",
	Args:  cobra.MinimumNArgs(1),
	RunE:  deleteMain,
}

func init() {
	flags := deleteCommand.Flags()
	flags.BoolVarP(&deleteConfiguration.verbose, "verbose", "v", false, "Enable debug logging")
	flags.IntVar(&deleteConfiguration.workers, "workers", 4, "Maximum number of paths to delete concurrently")
}

// pathResult is the outcome of soft-deleting a single path, gathered so
// that the aggregate exit code can be computed once every worker has
// finished.
type pathResult struct {
	path   string
	status trash.Status
}

func deleteMain(command *cobra.Command, arguments []string) error {
	level := zerolog.InfoLevel
	if deleteConfiguration.verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("op", uuid.NewString()).
		Logger()

	workers := deleteConfiguration.workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(arguments) {
		workers = len(arguments)
	}

	paths := make(chan string)
	results := make(chan pathResult, len(arguments))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range paths {
				results <- deleteOne(log, path)
			}
		}()
	}
	go func() {
		for _, path := range arguments {
			paths <- path
		}
		close(paths)
	}()
	wg.Wait()
	close(results)

	worst := trash.StatusOK
	for result := range results {
		if result.status != trash.StatusOK && worst == trash.StatusOK {
			worst = result.status
		}
	}
	if worst != trash.StatusOK {
		return fmt.Errorf("%s", trash.StatusMessage(worst))
	}
	return nil
}

// deleteOne stats path for logging purposes only - the size reported is
// always that of the source, never read back out of the trash store -
// and then soft-deletes it.
func deleteOne(log zerolog.Logger, path string) pathResult {
	if info, err := os.Lstat(path); err == nil {
		log.Debug().
			Str("path", path).
			Str("size", humanize.Bytes(uint64(sizeOf(info)))).
			Msg("deleting")
	} else {
		log.Debug().Str("path", path).Msg("deleting (stat failed, proceeding anyway)")
	}

	status := trash.SoftDelete(path)
	event := log.Info()
	if status != trash.StatusOK {
		event = log.Error()
	}
	event.
		Str("path", path).
		Int("status", int(status)).
		Msg(trash.StatusMessage(status))

	return pathResult{path: path, status: status}
}

func sizeOf(info os.FileInfo) int64 {
	if info.IsDir() {
		return 0
	}
	return info.Size()
}
