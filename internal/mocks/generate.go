// Package mocks provides mock implementations for testing the portal's
// service and handler layers.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the consumer-side interfaces. To regenerate mocks after interface changes,
// run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	dir := mocks.NewMockEventDirectory(ctrl)
//	dir.EXPECT().List(gomock.Any(), gomock.Any()).Return(page, nil)
package mocks

// Generate mock for the EventDirectory interface from internal/service.
// This creates MockEventDirectory with methods for all EventDirectory
// interface methods: List, Get, Create, Update, Delete.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=event_directory_mock.go github.com/eventdesk/eventdesk/internal/service EventDirectory
