package dialogue

import (
	"math/rand"
	"time"
	"unicode/utf8"

	"github.com/lazypower/chatforge/internal/transcript"
)

// Options configures the dialogue pipeline. Messages are expected to be
// sanitized already; see transcript.Sanitize.
type Options struct {
	SplitGap       time.Duration // gap that closes a conversation block
	CharacterLimit int           // output document size cap, in characters
	MinMessages    int           // minimum messages per block
	UserName       string        // speaker mapped to RoleUser
	CharName       string        // speaker mapped to RoleChar
	Rand           *rand.Rand    // optional seeded source for the fallback shuffle
}

// Stats reports how many entities survived each pipeline stage.
type Stats struct {
	Blocks        int // blocks after time-gap segmentation
	Kept          int // blocks after the speaker/count filter
	Conversations int // conversations after role mapping
	Selected      int // conversations in the final document
	OutputChars   int // rendered document size
}

// Generate runs segmentation through serialization over sanitized messages
// and returns the rendered document plus per-stage counts.
func Generate(msgs []transcript.Message, opts Options) (string, Stats) {
	var stats Stats

	blocks := Split(msgs, opts.SplitGap)
	stats.Blocks = len(blocks)

	kept := FilterBlocks(blocks, opts.MinMessages)
	stats.Kept = len(kept)

	convs := MapRoles(kept, opts.UserName, opts.CharName)
	stats.Conversations = len(convs)

	selected := Fit(convs, opts.CharacterLimit, opts.Rand)
	stats.Selected = len(selected)

	doc := Render(selected)
	stats.OutputChars = utf8.RuneCountInString(doc)

	return doc, stats
}
