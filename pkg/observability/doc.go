/*
Package observability provides Prometheus instrumentation for fixtura.

Metrics counts generated records, batches and failures, and records batch
latency. Register it on any prometheus.Registerer and expose it with
promhttp, as the HTTP adapter does on /metrics.
*/
package observability
