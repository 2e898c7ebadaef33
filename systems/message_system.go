package systems

// DefaultMaxMessages is how many messages a new log keeps
const DefaultMaxMessages = 100

// MessageLog stores generation and viewer messages
type MessageLog struct {
	Messages    []ColoredMessage
	MaxMessages int
}

// Global message log instance (singleton)
var globalMessageLog *MessageLog

// GetMessageLog returns the global message log instance
func GetMessageLog() *MessageLog {
	if globalMessageLog == nil {
		globalMessageLog = NewMessageLog(DefaultMaxMessages)
	}
	return globalMessageLog
}

// NewMessageLog creates a message log that keeps at most maxMessages entries
func NewMessageLog(maxMessages int) *MessageLog {
	if maxMessages < 1 {
		maxMessages = 1
	}
	return &MessageLog{
		Messages:    []ColoredMessage{},
		MaxMessages: maxMessages,
	}
}

// Add adds a message to the log, typed by its prefix
func (ml *MessageLog) Add(message string) {
	ml.Messages = append(ml.Messages, ColoredMessage{Text: message, Type: ClassifyMessage(message)})

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// Tee returns a logging func that adds to the log and also passes every
// message to mirror, e.g. log.Print for the terminal.
func (ml *MessageLog) Tee(mirror func(string)) func(string) {
	return func(message string) {
		ml.Add(message)
		if mirror != nil {
			mirror(message)
		}
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]ColoredMessage, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = []ColoredMessage{}
}
