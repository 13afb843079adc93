package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"dqx0.com/go/rawhttp/httpd"
	"dqx0.com/go/rawhttp/internal/obs"
)

const app = "rawhttpd"

var (
	flags *flag.FlagSet

	directory   string
	addr        string
	logLevel    string
	idleTimeout time.Duration
)

func init() {
	flags = flag.NewFlagSet(app, flag.ContinueOnError)
	flags.Usage = printUsage
	flags.SortFlags = false

	flags.StringVar(&directory, "directory", ".", "Directory serving /files/ content")
	flags.StringVarP(&addr, "addr", "a", "localhost:4221", "Listen address")
	flags.StringVarP(&logLevel, "log-level", "l", "info", "Log level (debug, info, warn, error)")
	flags.DurationVarP(&idleTimeout, "idle-timeout", "T", 0, "Close idle keep-alive connections after this duration (0 holds them forever)")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <options>\nOptions:\n", app)
	flags.PrintDefaults()
}

func main() {
	if err := flags.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		printUsage()
		os.Exit(1)
	}

	log := obs.NewLogrus(app, logLevel)
	srv := &httpd.Server{
		Addr:        addr,
		IdleTimeout: idleTimeout,
		Logger:      log,
		Handler: &httpd.Routes{
			FS:  afero.NewOsFs(),
			Dir: directory,
			Log: log,
		},
	}

	log.Logf(obs.Info, "listening on %s, serving files from %s", addr, directory)

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(srv.ListenAndServe)
	g.Go(func() error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		select {
		case s := <-sig:
			log.Logf(obs.Info, "received %s, shutting down", s)
		case <-ctx.Done():
			return nil
		}
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	if err := g.Wait(); err != nil && !errors.Is(err, httpd.ErrServerClosed) {
		log.Logf(obs.Error, "%v", err)
		os.Exit(1)
	}
}
