package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/philipparndt/heightmap2obj/internal/convert"
	"github.com/philipparndt/heightmap2obj/internal/logger"
	"github.com/philipparndt/heightmap2obj/pkg/watcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchCmd = &cobra.Command{
	Use:   "watch <image> [output.obj]",
	Short: "Convert a heightmap and convert it again whenever it changes",
	Long: `Convert the heightmap once, then watch the image file and regenerate the
OBJ file after every change until interrupted.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addMeshFlags(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := applyMeshFlags(cmd); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchAndConvert(ctx, conversionRequest(args), conversionOptions(), cfg.Watch.Debounce, convert.WriterReporter(cmd.ErrOrStderr()))
}

// watchAndConvert converts req once and then again after every debounced
// change of the input image, until ctx is done. A failing first
// conversion is returned immediately; later failures are reported and
// watching goes on.
func watchAndConvert(ctx context.Context, req convert.Request, opts convert.Options, debounce time.Duration, reporter convert.Reporter) error {
	log := logger.Named("watch")

	if _, err := convert.Run(ctx, req, opts, reporter); err != nil {
		return err
	}

	var mu sync.Mutex
	convertOnce := func() {
		mu.Lock()
		defer mu.Unlock()
		if ctx.Err() != nil {
			return
		}

		summary, err := convert.Run(ctx, req, opts, reporter)
		if err != nil {
			// keep watching; the next save may fix the image
			return
		}
		log.Info(summary.Details())
	}

	fw, err := watcher.NewFileWatcher(debounce, log)
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Watch([]string{req.InputPath}, func(path string) {
		log.Info("heightmap changed", zap.String("path", path))
		convertOnce()
	}); err != nil {
		return err
	}
	fw.Start()

	log.Info("watching for changes", zap.String("path", req.InputPath), zap.String("output", req.OutputPath))
	<-ctx.Done()

	// no new callbacks after Close; wait for a conversion in flight
	fw.Close()
	mu.Lock()
	defer mu.Unlock()
	log.Info("stopped watching")
	return nil
}
