package interfaces

//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_interfaces.go -package=mocks

// Run `go generate ./...` from the project root to regenerate all mocks.
