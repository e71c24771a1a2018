// Package health provides HTTP handlers for service health monitoring.
//
//   - Liveness: the process is running (no dependency checks).
//   - Readiness: every registered Check passes.
//
// Mount both on the router:
//
//	r.Get("/_health/live", health.Liveness[*AppContext])
//	r.Get("/_health/ready", health.Readiness[*AppContext](log,
//		health.Check{Name: "storage", Fn: store.Ping},
//	))
package health
