// Package metrics exports validation outcomes as Prometheus metrics.
//
//	reg := prometheus.NewRegistry()
//	v := formcheck.New(formcheck.WithObserver(metrics.NewCollector(reg)))
//
// Exported series:
//
//	formcheck_field_checks_total{field, outcome}
//	formcheck_validations_total{status}
//	formcheck_validate_duration_seconds
package metrics
