// Package httpserver runs an http.Server bound to a context.
//
// Run listens, serves and blocks until the context is cancelled, then shuts
// the server down within the configured timeout:
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", "error", err)
//	}
//
// Listening on port 0 picks a free port; Addr and WithStartHook expose the
// bound address.
//
// HealthCheckHandler serves liveness and readiness probes from a list of
// dependency checks.
//
// Errors are wrapped with ErrStart or ErrShutdown for errors.Is checks.
package httpserver
