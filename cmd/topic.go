package cmd

import (
	"context"
	"flag"

	"github.com/gncbook/gncbook/docs"
	"github.com/google/subcommands"
)

// topicCmd holds the flags for the 'topic' subcommand.
type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "display a documentation topic" }
func (*topicCmd) Usage() string {
	return `gncq topic [<name>]

  Displays a documentation topic, or the list of available topics when no
  name is given. Use "*" to display all topics.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topic := "readme"
	if f.NArg() > 0 {
		topic = f.Arg(0)
	}
	doc, err := docs.GetTopic(topic)
	if err != nil {
		return fail("Error: %v", err)
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
