// Package infra contains technical adapters such as the zerolog logger,
// Prometheus metrics sink and HTML report renderer. These packages should
// depend only on the interfaces defined in the core packages.
package infra
