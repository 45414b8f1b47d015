package main_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/presrag"
	main "github.com/fwojciec/presrag/cmd/presrag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pipelineStub implements main.Pipeline with function fields.
type pipelineStub struct {
	BuildFn  func(ctx context.Context, dir string) error
	AnswerFn func(ctx context.Context, question string) (string, error)
}

func (p *pipelineStub) Build(ctx context.Context, dir string) error {
	return p.BuildFn(ctx, dir)
}

func (p *pipelineStub) Answer(ctx context.Context, question string) (string, error) {
	return p.AnswerFn(ctx, question)
}

func TestAskCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("builds pipeline and answers until quit", func(t *testing.T) {
		t.Parallel()

		var builtDir string
		var questions []string
		pipeline := &pipelineStub{
			BuildFn: func(_ context.Context, dir string) error {
				builtDir = dir
				return nil
			},
			AnswerFn: func(_ context.Context, question string) (string, error) {
				questions = append(questions, question)
				return "the answer", nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdin:    strings.NewReader("Where did Alice go?\nquit\n"),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Pipeline: pipeline,
		}

		cmd := &main.AskCmd{Folder: "corpus"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "corpus", builtDir)
		assert.Equal(t, []string{"Where did Alice go?"}, questions)
		assert.Contains(t, stdout.String(), "Enter your question (or 'quit' to exit): ")
		assert.Contains(t, stdout.String(), "the answer")
	})

	t.Run("quit is case-insensitive", func(t *testing.T) {
		t.Parallel()

		answered := 0
		pipeline := &pipelineStub{
			BuildFn: func(context.Context, string) error { return nil },
			AnswerFn: func(context.Context, string) (string, error) {
				answered++
				return "", nil
			},
		}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdin:    strings.NewReader("QUIT\n"),
			Stdout:   &bytes.Buffer{},
			Stderr:   &bytes.Buffer{},
			Pipeline: pipeline,
		}

		cmd := &main.AskCmd{Folder: "corpus"}
		require.NoError(t, cmd.Run(deps))
		assert.Zero(t, answered)
	})

	t.Run("exits cleanly on EOF", func(t *testing.T) {
		t.Parallel()

		pipeline := &pipelineStub{
			BuildFn: func(context.Context, string) error { return nil },
		}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdin:    strings.NewReader(""),
			Stdout:   &bytes.Buffer{},
			Stderr:   &bytes.Buffer{},
			Pipeline: pipeline,
		}

		cmd := &main.AskCmd{Folder: "corpus"}
		require.NoError(t, cmd.Run(deps))
	})

	t.Run("skips blank lines", func(t *testing.T) {
		t.Parallel()

		answered := 0
		pipeline := &pipelineStub{
			BuildFn: func(context.Context, string) error { return nil },
			AnswerFn: func(context.Context, string) (string, error) {
				answered++
				return "ok", nil
			},
		}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdin:    strings.NewReader("\n   \nreal question\nquit\n"),
			Stdout:   &bytes.Buffer{},
			Stderr:   &bytes.Buffer{},
			Pipeline: pipeline,
		}

		cmd := &main.AskCmd{Folder: "corpus"}
		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, 1, answered)
	})

	t.Run("prints per-question errors and continues", func(t *testing.T) {
		t.Parallel()

		calls := 0
		pipeline := &pipelineStub{
			BuildFn: func(context.Context, string) error { return nil },
			AnswerFn: func(context.Context, string) (string, error) {
				calls++
				if calls == 1 {
					return "", presrag.Errorf(presrag.EUNAVAILABLE, "embedding service unavailable")
				}
				return "recovered", nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdin:    strings.NewReader("first?\nsecond?\nquit\n"),
			Stdout:   stdout,
			Stderr:   stderr,
			Pipeline: pipeline,
		}

		cmd := &main.AskCmd{Folder: "corpus"}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stderr.String(), "embedding service unavailable")
		assert.Contains(t, stdout.String(), "recovered")
	})

	t.Run("returns error when build fails", func(t *testing.T) {
		t.Parallel()

		pipeline := &pipelineStub{
			BuildFn: func(context.Context, string) error {
				return presrag.Errorf(presrag.ENOTFOUND, "no .docx documents found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdin:    strings.NewReader(""),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Pipeline: pipeline,
		}

		cmd := &main.AskCmd{Folder: "empty"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, presrag.ENOTFOUND, presrag.ErrorCode(err))
		assert.Contains(t, stderr.String(), "no .docx documents found")
	})
}
