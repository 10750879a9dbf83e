package ports

// Announcer receives command lines and captured output as they become available
type Announcer interface {
	// Announce publishes a single message
	Announce(msg string)
}
