package dialogue

import (
	"time"

	"github.com/lazypower/chatforge/internal/transcript"
)

// Split groups messages into conversation blocks. A new block starts
// whenever the gap since the last message appended to the current block
// strictly exceeds maxGap.
func Split(msgs []transcript.Message, maxGap time.Duration) [][]transcript.Message {
	var blocks [][]transcript.Message
	var current []transcript.Message

	for _, msg := range msgs {
		if len(current) > 0 {
			prev := current[len(current)-1]
			if msg.Timestamp.Sub(prev.Timestamp) > maxGap {
				blocks = append(blocks, current)
				current = nil
			}
		}
		current = append(current, msg)
	}

	// Flush remaining.
	if len(current) > 0 {
		blocks = append(blocks, current)
	}

	return blocks
}

// FilterBlocks drops blocks that have only one speaker or fewer than
// minMessages messages.
func FilterBlocks(blocks [][]transcript.Message, minMessages int) [][]transcript.Message {
	var kept [][]transcript.Message
	for _, block := range blocks {
		if transcript.CountSpeakers(block) >= 2 && len(block) >= minMessages {
			kept = append(kept, block)
		}
	}
	return kept
}
