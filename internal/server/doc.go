// Package server provides the HTTP server for parcm.
//
// The server uses the Gin web framework with zap logging middleware.
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────┐
//	│                      HTTP Server                      │
//	├───────────────────────────────────────────────────────┤
//	│                   Middleware Stack                    │
//	│   ginzap.Ginzap          (request logging)            │
//	│   ginzap.RecoveryWithZap (panic recovery, 500)        │
//	├───────────────────────────────────────────────────────┤
//	│   GET /metrics   promhttp                             │
//	│   GET /health    200                                  │
//	│   /api/v1/*      handlers (registered via callback)   │
//	│   anything else  404 JSON                             │
//	└───────────────────────────────────────────────────────┘
//
// # Server Modes
//
//   - dev: Gin runs in debug mode
//   - prod: Gin runs in release mode
//
// # Server Lifecycle
//
//	srv, err := server.NewServer(cfg, registry, func(router *gin.RouterGroup) {
//	    v1.RegisterHandlers(router, handler)
//	})
//
//	go func() {
//	    if err := srv.Start(ctx); err != nil {
//	        zap.S().Errorw("server error", "error", err)
//	    }
//	}()
//
//	<-shutdownCh
//	srv.Stop(shutdownCtx)
//
// Stop performs a graceful shutdown, waiting for in-flight requests to complete.
package server
