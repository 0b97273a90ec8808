/*
Package observability turns evaluation lifecycle hooks into metrics and logs.

Metrics exposes Prometheus counters for evaluations and strings, plus a
histogram of walk lengths. AuditHooks writes one structured log line per event.
Both return domain.LifecycleHooks, which can be merged:

	m := observability.NewMetrics()
	hooks := m.Hooks().Merge(observability.AuditHooks(logger))
	checker := fae.New(fae.WithHooks(hooks))
	http.Handle("/metrics", m.Handler())
*/
package observability
