// Package server provides the HTTP validation server.
//
// The server exposes three endpoints:
//
//   - POST /v1/validate: validate a candidate password against the
//     active rule set and return a per-rule report
//   - GET /healthz: liveness probe
//   - GET /metrics: Prometheus metrics (when metrics are enabled)
//
// Rules are pulled from a RuleProvider on every request, so a policy
// manager that hot-reloads its rule set takes effect without a restart.
//
// Example usage:
//
//	manager, _ := policy.NewManager("policy.yaml", slog.Default())
//	srv := server.NewServer(&cfg.Server, manager, collector)
//	if err := srv.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
