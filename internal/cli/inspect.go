package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/lazypower/chatforge/internal/config"
	"github.com/lazypower/chatforge/internal/dialogue"
	"github.com/lazypower/chatforge/internal/transcript"
	"github.com/spf13/cobra"
)

var (
	inspectInput string
	inspectCfg   = config.Default()
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Preview how an export splits into conversation blocks",
	Long:  "Inspect parses and segments an export without writing anything, so you can tune --split-minutes and --min-messages before converting.",
	RunE:  runInspect,
}

func init() {
	f := inspectCmd.Flags()
	f.StringVarP(&inspectInput, "input", "i", "", "Path to the exported chat .txt file")
	f.IntVar(&inspectCfg.Pipeline.SplitMinutes, "split-minutes", inspectCfg.Pipeline.SplitMinutes, "Gap in minutes that starts a new conversation block")
	f.IntVar(&inspectCfg.Pipeline.MinMessages, "min-messages", inspectCfg.Pipeline.MinMessages, "Minimum messages per conversation block")
	f.BoolVar(&inspectCfg.Filter.Media, "filter-media", inspectCfg.Filter.Media, "Drop media messages entirely")
	f.BoolVar(&inspectCfg.Filter.Links, "filter-links", inspectCfg.Filter.Links, "Drop link messages entirely")

	inspectCmd.MarkFlagRequired("input")
}

func runInspect(cmd *cobra.Command, args []string) error {
	msgs, err := transcript.ParseFile(inspectInput)
	if err != nil {
		return err
	}

	msgs = transcript.Sanitize(msgs, transcript.Policy{
		FilterMedia: inspectCfg.Filter.Media,
		FilterLinks: inspectCfg.Filter.Links,
	})

	blocks := dialogue.Split(msgs, inspectCfg.SplitGap())
	if len(blocks) == 0 {
		fmt.Println("No messages found.")
		return nil
	}

	kept := 0
	for i, block := range blocks {
		first := block[0]
		last := block[len(block)-1]
		speakers := transcript.CountSpeakers(block)

		marker := dimStyle.Render("drop")
		if speakers >= 2 && len(block) >= inspectCfg.Pipeline.MinMessages {
			marker = doneStyle.Render("keep")
			kept++
		}

		fmt.Printf("%4d │ %s │ %s │ %3d msgs │ %d speakers │ %s\n",
			i+1,
			first.Timestamp.Format("01/02/06 15:04"),
			fmtSpan(last.Timestamp.Sub(first.Timestamp)),
			len(block),
			speakers,
			marker)
	}

	fmt.Println(strings.Repeat("─", 60))
	fmt.Printf("%d messages, %d blocks, %d past the filter at min-messages=%d\n",
		len(msgs), len(blocks), kept, inspectCfg.Pipeline.MinMessages)
	return nil
}

// fmtSpan renders a block duration compactly, right-aligned for the table.
func fmtSpan(d time.Duration) string {
	mins := int(d.Minutes())
	if mins < 60 {
		return fmt.Sprintf("%3dm", mins)
	}
	return fmt.Sprintf("%2dh%02dm", mins/60, mins%60)
}
