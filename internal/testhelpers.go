package internal

import "fmt"

// CreateTestTurn creates a single turn for tests
func CreateTestTurn(role Role, content string) Turn {
	return Turn{Role: role, Content: content}
}

// CreateTestTranscript creates n alternating user/assistant turns with
// predictable contents ("user 0", "assistant 1", ...)
func CreateTestTranscript(n int) []Turn {
	turns := make([]Turn, 0, n)
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			turns = append(turns, Turn{Role: RoleUser, Content: fmt.Sprintf("user %d", i)})
		} else {
			turns = append(turns, Turn{Role: RoleAssistant, Content: fmt.Sprintf("assistant %d", i)})
		}
	}
	return turns
}
