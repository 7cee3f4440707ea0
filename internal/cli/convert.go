package cli

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/lazypower/chatforge/internal/config"
	"github.com/lazypower/chatforge/internal/dialogue"
	"github.com/lazypower/chatforge/internal/transcript"
	"github.com/spf13/cobra"
)

var (
	convertInput  string
	convertOutput string
	convertSeed   int64
	convertCfg    = config.Default()
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a chat export into example-conversation JSON",
	Long: "Convert parses a WhatsApp .txt export, splits it into conversation blocks " +
		"by time gap, maps the two speakers to {{random_user_1}} and {{char}}, and " +
		"writes a size-capped example_conversation JSON document.",
	RunE: runConvert,
}

func init() {
	f := convertCmd.Flags()
	f.StringVarP(&convertInput, "input", "i", "", "Path to the exported chat .txt file")
	f.StringVarP(&convertOutput, "output", "o", "", "Path for the output .json file")
	f.StringVar(&convertCfg.Roles.UserName, "user", "", "Speaker name mapped to {{random_user_1}}")
	f.StringVar(&convertCfg.Roles.CharName, "char", "", "Speaker name mapped to {{char}}")
	f.IntVar(&convertCfg.Pipeline.SplitMinutes, "split-minutes", convertCfg.Pipeline.SplitMinutes, "Gap in minutes that starts a new conversation block")
	f.IntVar(&convertCfg.Pipeline.CharacterLimit, "char-limit", convertCfg.Pipeline.CharacterLimit, "Maximum output size in characters")
	f.IntVar(&convertCfg.Pipeline.MinMessages, "min-messages", convertCfg.Pipeline.MinMessages, "Minimum messages per conversation block")
	f.BoolVar(&convertCfg.Filter.Media, "filter-media", convertCfg.Filter.Media, "Drop media messages entirely")
	f.BoolVar(&convertCfg.Filter.Links, "filter-links", convertCfg.Filter.Links, "Drop link messages entirely")
	f.StringVar(&convertCfg.Filter.MediaReplacement, "media-replacement", "", "Replace media bodies with this text (when not filtering)")
	f.StringVar(&convertCfg.Filter.LinkReplacement, "link-replacement", "", "Replace link bodies with this text (when not filtering)")
	f.Int64Var(&convertSeed, "seed", 0, "Seed for the fallback selection shuffle (0 = unseeded)")

	convertCmd.MarkFlagRequired("input")
	convertCmd.MarkFlagRequired("output")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := convertCfg

	// Env overrides for the role names, for scripted runs.
	if cfg.Roles.UserName == "" {
		cfg.Roles.UserName = os.Getenv("CHATFORGE_USER_NAME")
	}
	if cfg.Roles.CharName == "" {
		cfg.Roles.CharName = os.Getenv("CHATFORGE_CHAR_NAME")
	}
	if cfg.Roles.UserName == "" || cfg.Roles.CharName == "" {
		return fmt.Errorf("both --user and --char are required")
	}

	step("reading chat export from %s", dimStyle.Render(convertInput))
	msgs, err := transcript.ParseFile(convertInput)
	if err != nil {
		return err
	}
	step("parsed %s messages from %s speakers", count(len(msgs)), count(transcript.CountSpeakers(msgs)))

	msgs = transcript.Sanitize(msgs, transcript.Policy{
		FilterMedia:      cfg.Filter.Media,
		FilterLinks:      cfg.Filter.Links,
		MediaReplacement: cfg.Filter.MediaReplacement,
		LinkReplacement:  cfg.Filter.LinkReplacement,
	})
	step("%s messages after media/link filtering", count(len(msgs)))

	opts := dialogue.Options{
		SplitGap:       cfg.SplitGap(),
		CharacterLimit: cfg.Pipeline.CharacterLimit,
		MinMessages:    cfg.Pipeline.MinMessages,
		UserName:       cfg.Roles.UserName,
		CharName:       cfg.Roles.CharName,
	}
	if convertSeed != 0 {
		opts.Rand = rand.New(rand.NewSource(convertSeed))
	}

	doc, stats := dialogue.Generate(msgs, opts)
	step("grouped into %s blocks (%dm gaps), %s kept after filtering", count(stats.Blocks), cfg.Pipeline.SplitMinutes, count(stats.Kept))
	step("%s conversations role-mapped, %s selected under the %d character limit", count(stats.Conversations), count(stats.Selected), cfg.Pipeline.CharacterLimit)

	if err := os.WriteFile(convertOutput, []byte(doc), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	fmt.Fprintln(os.Stderr, doneStyle.Render(fmt.Sprintf("wrote %s (%d chars, %d conversations)", convertOutput, stats.OutputChars, stats.Selected)))
	return nil
}
