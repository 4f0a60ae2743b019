// Package shared is the base service the tutorial calculator extends.
package shared

//go:generate go run ../../../../cmd/thriftgen generate --module-prefix miren.dev/thriftgen/pkg/thriftrt/example shared.yml
