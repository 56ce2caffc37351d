package model

// Bot strategy constants
const (
	BotStrategyEasy = "easy"
)

// DefaultBotStrategy is assigned to games that do not name one
const DefaultBotStrategy = BotStrategyEasy

// BotStrategyDisplayName returns a human-readable label for a strategy
func BotStrategyDisplayName(strategy string) string {
	switch strategy {
	case BotStrategyEasy:
		return "Easy"
	default:
		return strategy
	}
}

// ValidBotStrategies returns all valid bot strategy names
func ValidBotStrategies() []string {
	return []string{BotStrategyEasy}
}
