package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/opsheet/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "display documentation topics" }
func (*topicCmd) Usage() string {
	return `opsheet topic [<topic>...]

  Without arguments, lists the available topics. '*' displays them all.
`
}

func (*topicCmd) SetFlags(*flag.FlagSet) {}

func (*topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		doc, err := docs.GetTopic("readme")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(doc)
		return subcommands.ExitSuccess
	}
	doc, err := docs.GetTopics(f.Args()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		topics, _ := docs.GetAllTopics()
		fmt.Fprintf(os.Stderr, "Available topics: %s\n", strings.Join(topics, ", "))
		return subcommands.ExitUsageError
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
