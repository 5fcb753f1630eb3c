// Package observability provides logging and process lifecycle helpers
// shared by the plugingen commands.
//
// # Logging
//
// Loggers are logrus text loggers with full timestamps:
//
//	logger := observability.NewLogger(logrus.InfoLevel, os.Stderr)
//	logger.Infof("Generating %d modules", n)
//
// A logger travels with the context, tagged with the compilation unit in
// watch mode:
//
//	ctx = observability.WithLogger(ctx, logger)
//	ctx = observability.WithUnit(ctx, 3)
//	observability.FromContext(ctx).Info("Regenerating")
//
// # Shutdown
//
// Long running commands stop on SIGINT/SIGTERM and run registered cleanup:
//
//	ctx, stop := observability.SignalContext(ctx)
//	defer stop()
//	sm := observability.NewShutdownManager(logger, 0)
//	sm.RegisterShutdownFunc(func(context.Context) error { return watcher.Close() })
//	<-ctx.Done()
//	return sm.Shutdown()
package observability
