// Package tutorial is a calculator service built on the shared service,
// generated from tutorial.yml.
package tutorial

//go:generate go run ../../../../cmd/thriftgen generate --module-prefix miren.dev/thriftgen/pkg/thriftrt/example tutorial.yml
