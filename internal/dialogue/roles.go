package dialogue

import "github.com/lazypower/chatforge/internal/transcript"

// Role is one of the two symbolic speaker tokens used in the output
// document. The values are the literal JSON keys.
type Role string

const (
	RoleUser Role = "{{random_user_1}}"
	RoleChar Role = "{{char}}"
)

// Turn is one utterance in a role-mapped conversation.
type Turn struct {
	Role Role
	Text string
}

// Conversation is an ordered sequence of turns. The same role may appear
// any number of times; a valid conversation contains both roles.
type Conversation []Turn

// MapRoles rewrites each block's speakers to the two symbolic roles.
// Messages from speakers other than userName or charName are dropped, and
// blocks that do not end up containing both roles are discarded whole.
func MapRoles(blocks [][]transcript.Message, userName, charName string) []Conversation {
	var convs []Conversation

	for _, block := range blocks {
		var conv Conversation
		var sawUser, sawChar bool

		for _, msg := range block {
			var role Role
			switch msg.Speaker {
			case userName:
				role = RoleUser
				sawUser = true
			case charName:
				role = RoleChar
				sawChar = true
			default:
				// Unknown third-party speaker.
				continue
			}
			conv = append(conv, Turn{Role: role, Text: msg.Body})
		}

		if sawUser && sawChar && len(conv) > 0 {
			convs = append(convs, conv)
		}
	}

	return convs
}
