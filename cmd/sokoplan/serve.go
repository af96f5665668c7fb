package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	persistlog "sokoplan.ai/internal/persistence/log"
	"sokoplan.ai/internal/persistence/runindex"
	"sokoplan.ai/internal/protocol"
	"sokoplan.ai/internal/transport/ws"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the websocket solve service",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.New(os.Stdout, "[serve] ", log.LstdFlags|log.Lmicroseconds)

		listen := serveListen
		if listen == "" {
			listen = cfg.Listen
		}

		schemas, err := protocol.LoadSchemas(cfg.SchemaDir)
		if err != nil {
			return err
		}

		var recorders []ws.Recorder
		if cfg.RecordRuns {
			ix, err := runindex.Open(filepath.Join(cfg.DataDir, "runindex.db"))
			if err != nil {
				return err
			}
			defer ix.Close()
			lw := persistlog.NewWriter(filepath.Join(cfg.DataDir, "runs"), "runs")
			defer lw.Close()
			recorders = append(recorders, ix, runLogRecorder{lw})
		}

		srv := ws.NewServer(logger, schemas, recorders...)
		mux := http.NewServeMux()
		mux.HandleFunc("/v1/solve", srv.Handler())

		httpSrv := &http.Server{Addr: listen, Handler: mux}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Printf("listening on %s", listen)
			errCh <- httpSrv.ListenAndServe()
		}()

		select {
		case <-ctx.Done():
			logger.Printf("shutting down")
			shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return httpSrv.Shutdown(shutCtx)
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "listen address (default from config)")
}

// runLogRecorder adapts the JSONL writer to the service's Recorder.
type runLogRecorder struct {
	w *persistlog.Writer
}

func (r runLogRecorder) Record(run runindex.Run) {
	_ = r.w.Write(run)
}
