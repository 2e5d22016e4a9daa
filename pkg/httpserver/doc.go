// Package httpserver runs the stuffkit HTTP playground with graceful shutdown.
//
// A Server owns its listener: Run opens it (so an address of
// "127.0.0.1:0" picks a free port, reported by Addr and the start hooks),
// serves until the context is cancelled or SIGINT/SIGTERM arrives, and then
// drains in-flight requests within Config.ShutdownTimeout. Request bodies are
// capped at Config.MaxBodyBytes.
//
// # Usage
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, api.Router(log), httpserver.WithLogger(log))
//	if err := srv.Run(ctx); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// # Errors
//
// Listener and serve failures are joined with ErrStart, drain failures with
// ErrShutdown. Calling Run while the server is running returns
// ErrAlreadyRunning; once Run has returned the server can be run again.
package httpserver
