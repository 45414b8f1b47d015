package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fwojciec/presrag"
)

// Run executes the ask command: build the pipeline, then answer questions
// interactively until "quit" or EOF.
func (c *AskCmd) Run(deps *Dependencies) error {
	if err := deps.Pipeline.Build(deps.Ctx, c.Folder); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", presrag.ErrorMessage(err))
		return err
	}

	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, "Enter your question (or 'quit' to exit): ")
		if !scanner.Scan() {
			break
		}

		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if strings.EqualFold(question, "quit") {
			break
		}

		answer, err := deps.Pipeline.Answer(deps.Ctx, question)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", presrag.ErrorMessage(err))
			continue
		}

		fmt.Fprintf(deps.Stdout, "%s\n\n", answer)
	}

	return scanner.Err()
}
