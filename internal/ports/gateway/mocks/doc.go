// Package mocks provides mock implementations for testing purposes.
package mocks

//go:generate mockgen -destination=mock_server.go -package=mocks github.com/Danilo-Couto/simulador-de-pix/internal/ports/gateway/server Connection,ConnectionProvider
//go:generate mockgen -destination=mock_platform.go -package=mocks github.com/Danilo-Couto/simulador-de-pix/internal/ports/gateway/platform IDGenerator
