// Package metrics defines the Prometheus collectors of the portal: request
// submissions, workflow deliveries, RUT validations and HTTP traffic.
//
// Every recording method is safe on a nil *Metrics, so components take an
// optional *Metrics without guarding each call.
package metrics
