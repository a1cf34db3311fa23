package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timmy/photofeed/internal/domain"
	"github.com/timmy/photofeed/internal/gallery"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line    string
		want    Command
		wantErr bool
	}{
		{line: "", want: Command{Kind: CmdNone}},
		{line: "a 3", want: Command{Kind: CmdAuthor, Index: 3}},
		{line: "author 1", want: Command{Kind: CmdAuthor, Index: 1}},
		{line: "t sunset", want: Command{Kind: CmdTag, Tag: "sunset"}},
		{line: "  H  ", want: Command{Kind: CmdHome}},
		{line: "r", want: Command{Kind: CmdReload}},
		{line: "?", want: Command{Kind: CmdHelp}},
		{line: "q", want: Command{Kind: CmdQuit}},
		{line: "a", wantErr: true},
		{line: "a zero", wantErr: true},
		{line: "a 0", wantErr: true},
		{line: "t", wantErr: true},
		{line: "x", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			got, err := ParseCommand(tc.line)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRenderState_Ready(t *testing.T) {
	st := gallery.NewState().SelectTag("sunset").Loaded([]domain.PhotoItem{
		{
			Title:    "Beach",
			Author:   `nobody@flickr.com ("alice")`,
			AuthorID: "1@N01",
			Tags:     "sunset beach",
			Media:    domain.Media{M: "https://live.staticflickr.com/1/2_m.jpg"},
		},
		{Title: "", Author: "raw author", AuthorID: "2@N02"},
	})

	out := RenderState(st, 120)

	assert.Contains(t, out, "sunset")
	assert.Contains(t, out, "2 photos")
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "Beach")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "beach")
	assert.Contains(t, out, "https://live.staticflickr.com/1/2_m.jpg")
	assert.Contains(t, out, "(untitled)")
	assert.Contains(t, out, "raw author")
	assert.Contains(t, out, "None")
}

func TestRenderState_EmptyFeed(t *testing.T) {
	out := RenderState(gallery.NewState().Loaded(nil), 0)

	assert.Contains(t, out, "0 photos")
	assert.NotContains(t, out, "#1")
}

func TestRenderState_LoadingAndFailed(t *testing.T) {
	loading := gallery.NewState().Loading()
	assert.Contains(t, RenderState(loading, 80), "Loading photos...")

	failed := loading.Failed(assert.AnError)
	out := RenderState(failed, 80)
	assert.Contains(t, out, "failed to load photos")
	assert.NotContains(t, out, "Loading photos...")
}

func TestHelp_ListsCommands(t *testing.T) {
	help := Help()
	for _, cmd := range []string{"a <n>", "t <tag>", "h", "r", "q"} {
		assert.True(t, strings.Contains(help, cmd), cmd)
	}
}
