package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-reversi/internal/platform/tui"
	"github.com/vovakirdan/tui-reversi/internal/web"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server and results API",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the opponent menu. All
sessions record into the same results database. With --http, a read-only
JSON API over those results is served too:

  GET /healthz
  GET /api/results?mode=cpu&limit=20
  GET /api/results/{matchID}
  GET /api/stats?mode=friend

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key under the XDG data dir

Examples:
  reversi serve                          # SSH on :23234
  reversi serve --ssh :2222 --http :8080
  reversi serve --ssh "" --http :8080    # API only

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (empty to disable)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "Results API address (empty to disable)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	if flagSSHAddr == "" && flagHTTPAddr == "" {
		return errors.New("nothing to serve: set --ssh and/or --http")
	}

	srvLog := stderr.With("component", "serve")
	srvLog.SetReportTimestamp(true)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)
	running := 0

	if flagSSHAddr != "" {
		cfg := tui.DefaultSSHServerConfig()
		cfg.Address = flagSSHAddr
		cfg.HostKeyPath = flagHostKey
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
		cfg.TickRate = flagFPS

		server, err := tui.NewSSHServer(cfg, store, srvLog.WithPrefix("ssh"))
		if err != nil {
			return err
		}
		running++
		go func() { errCh <- server.ListenAndServe(ctx) }()
	}

	if flagHTTPAddr != "" {
		if store == nil {
			return errors.New("--http needs the results database")
		}
		running++
		go func() { errCh <- serveHTTP(ctx, flagHTTPAddr, web.NewServer(store), srvLog) }()
	}

	srvLog.Info("press Ctrl+C to stop")

	// The first failure stops everything
	var firstErr error
	for range running {
		if err := <-errCh; err != nil && firstErr == nil {
			firstErr = err
			stop()
		}
	}
	return firstErr
}

// serveHTTP runs the results API until ctx is done.
func serveHTTP(ctx context.Context, addr string, h http.Handler, l *log.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		l.Info("starting results API", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("results API: %w", err)
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
