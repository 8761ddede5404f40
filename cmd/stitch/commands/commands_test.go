package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/cmd/stitch/commands"
	"go.trai.ch/stitch/internal/app"
	"go.trai.ch/stitch/internal/build"
)

type mockApp struct {
	buildFunc func(ctx context.Context, opts app.BuildOptions) error
	watchFunc func(ctx context.Context, opts app.WatchOptions) error
	cleanFunc func(ctx context.Context, opts app.CleanOptions) error
}

func (m *mockApp) Build(ctx context.Context, opts app.BuildOptions) error {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context, opts app.WatchOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context, opts app.CleanOptions) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Build(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.BuildOptions
		called := false

		mock := &mockApp{
			buildFunc: func(_ context.Context, opts app.BuildOptions) error {
				capturedOpts = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build", "src/app.js", "--workers", "3", "--keep-workers"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, []string{"src/app.js"}, capturedOpts.Entries)
		assert.Equal(t, 3, capturedOpts.Workers)
		assert.True(t, capturedOpts.KeepWorkers)
	})

	t.Run("returns error on build failure", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ app.BuildOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Watch(t *testing.T) {
	var capturedOpts app.WatchOptions

	mock := &mockApp{
		watchFunc: func(_ context.Context, opts app.WatchOptions) error {
			capturedOpts = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"watch", "--serve", "--root", "/tmp/project"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, capturedOpts.DevServer)
	assert.Equal(t, "/tmp/project", capturedOpts.Root)
}

func TestCommands_Clean(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCache  bool
		wantOutput bool
	}{
		{name: "default cleans cache", args: []string{"clean"}, wantCache: true},
		{name: "output flag", args: []string{"clean", "--output"}, wantOutput: true},
		{name: "all flag", args: []string{"clean", "--all"}, wantCache: true, wantOutput: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var capturedOpts app.CleanOptions
			mock := &mockApp{
				cleanFunc: func(_ context.Context, opts app.CleanOptions) error {
					capturedOpts = opts
					return nil
				},
			}

			cli := commands.New(mock)
			cli.SetArgs(tt.args)

			err := cli.Execute(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantCache, capturedOpts.Cache)
			assert.Equal(t, tt.wantOutput, capturedOpts.Output)
		})
	}
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
