// Package environment names the deployment environments the portal runs in
// and parses them from configuration.
package environment
