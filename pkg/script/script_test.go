package script

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theapemachine/vimnav/pkg/errors"
)

func TestRenderScroll(t *testing.T) {
	src, err := Scroll{DX: 0, DY: 25}.Render(DefaultSelectors())
	require.NoError(t, err)

	assert.Contains(t, src, `document.querySelector(".scroller_e2e187")`)
	assert.Contains(t, src, "scroller.scrollBy(0, 25);")

	src, err = Scroll{DX: -25, DY: -100}.Render(DefaultSelectors())
	require.NoError(t, err)
	assert.Contains(t, src, "scroller.scrollBy(-25, -100);")
}

func TestRenderScrollBounds(t *testing.T) {
	top, err := ScrollToTop{}.Render(DefaultSelectors())
	require.NoError(t, err)
	assert.Contains(t, top, "scroller.scrollTop = 0;")

	end, err := ScrollToEnd{}.Render(DefaultSelectors())
	require.NoError(t, err)
	assert.Contains(t, end, "scroller.scrollTop = scroller.scrollHeight;")
}

func TestRenderShowLabels(t *testing.T) {
	src, err := ShowLabels{}.Render(DefaultSelectors())
	require.NoError(t, err)

	assert.Contains(t, src, `document.querySelectorAll("button, a, [role='button'], [role='listitem'], [class='link_c91bad']")`)
	assert.Contains(t, src, `const alphabet = "abcdefghijklmnopqrstuvwxyz";`)
	assert.Contains(t, src, "i = Math.floor(i / alphabet.length) - 1;")
	assert.Contains(t, src, "span.style.zIndex = '9999';")
	assert.Contains(t, src, "{ once: true }")
	assert.Contains(t, src, `const labelAttr = "data-vim-label";`)
}

func TestRenderHideLabels(t *testing.T) {
	src, err := HideLabels{}.Render(DefaultSelectors())
	require.NoError(t, err)

	assert.Contains(t, src, `'.' + "vim-label"`)
	assert.Contains(t, src, "removeAttribute(labelAttr)")
}

func TestRenderMatchLabelEscapes(t *testing.T) {
	src, err := MatchLabel{Text: `a"); alert(1); ("`}.Render(DefaultSelectors())
	require.NoError(t, err)

	assert.Contains(t, src, `const text = "a\"); alert(1); (\"";`)
	assert.False(t, strings.Contains(src, `"a"); alert(1)`))
}

func TestCustomSelectors(t *testing.T) {
	sel := Selectors{Scroller: "#chat", Clickable: "a.link"}

	src, err := ScrollToEnd{}.Render(sel)
	require.NoError(t, err)
	assert.Contains(t, src, `document.querySelector("#chat")`)

	src, err = ShowLabels{}.Render(sel)
	require.NoError(t, err)
	assert.Contains(t, src, `document.querySelectorAll("a.link")`)
}

func TestParse(t *testing.T) {
	cases := []struct {
		kind string
		args []string
		want Message
	}{
		{"scroll", []string{"0", "25"}, Scroll{DX: 0, DY: 25}},
		{"scroll", []string{"-25", "0"}, Scroll{DX: -25, DY: 0}},
		{"top", nil, ScrollToTop{}},
		{"end", nil, ScrollToEnd{}},
		{"show", nil, ShowLabels{}},
		{"hide", nil, HideLabels{}},
		{"match", []string{"ab"}, MatchLabel{Text: "ab"}},
	}

	for _, tc := range cases {
		msg, err := Parse(tc.kind, tc.args...)
		require.NoError(t, err, tc.kind)
		assert.Equal(t, tc.want, msg)
		assert.Equal(t, tc.kind, msg.Kind())
	}
}

func TestParseRejects(t *testing.T) {
	for _, args := range [][]string{
		{"scroll", "1"},
		{"scroll", "x", "1"},
		{"match"},
		{"zoom"},
	} {
		_, err := Parse(args[0], args[1:]...)
		assert.True(t, stderrors.Is(err, errors.ErrUnknownMessage), args)
	}
}
