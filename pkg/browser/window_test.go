package browser

import (
	"context"
	stderrors "errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-rod/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theapemachine/vimnav/pkg/errors"
	"github.com/theapemachine/vimnav/pkg/script"
	"github.com/theapemachine/vimnav/pkg/vim"
)

const chatPage = `<html><head><title>chat</title></head><body>
<div class="scroller_e2e187" style="height:100px;overflow:auto">
  <div style="height:2000px">
    <button onclick="document.title='clicked-a'">first</button>
    <button onclick="document.title='clicked-b'">second</button>
  </div>
</div>
</body></html>`

func openChat(t *testing.T) *Window {
	t.Helper()
	return openWith(t, Options{})
}

func openWith(t *testing.T, opts Options) *Window {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	opts.URL = "data:text/html," + url.PathEscape(chatPage)
	opts.Headless = true

	w, err := Open(ctx, opts)
	if err != nil {
		t.Skipf("browser not available: %v", err)
	}

	t.Cleanup(func() { w.Close() })
	return w
}

func waitFor(t *testing.T, w *Window, js string) {
	t.Helper()
	require.NoError(t, w.page.Timeout(5*time.Second).Wait(rod.Eval(js)))
}

func TestOpenRejectsScheme(t *testing.T) {
	_, err := Open(context.Background(), Options{URL: "ftp://example.com"})
	assert.Error(t, err)
}

func TestExecuteScroll(t *testing.T) {
	w := openChat(t)

	source, err := script.Scroll{DX: 0, DY: 25}.Render(script.DefaultSelectors())
	require.NoError(t, err)
	require.NoError(t, w.Execute(source))

	waitFor(t, w, `() => document.querySelector(".scroller_e2e187").scrollTop === 25`)
}

func TestLabelClickThroughDispatcher(t *testing.T) {
	w := openChat(t)

	session := vim.NewSession()
	ctrl := vim.NewController(session, w, script.DefaultSelectors())
	d := vim.NewDispatcher(session, ctrl)

	assert.True(t, d.BeforeInput(vim.KeyEvent{Type: vim.KeyDown, Key: "f"}))
	waitFor(t, w, `() => document.querySelectorAll(".vim-label").length === 2`)

	assert.True(t, d.BeforeInput(vim.KeyEvent{Type: vim.KeyDown, Key: "a"}))
	assert.True(t, d.BeforeInput(vim.KeyEvent{Type: vim.KeyDown, Key: "b"}))
	assert.Equal(t, vim.ModeNormal, session.Mode())

	waitFor(t, w, `() => document.title === "clicked-b"`)
	waitFor(t, w, `() => document.querySelectorAll(".vim-label").length === 0`)
}

func TestBrokenScriptDoesNotStopWorker(t *testing.T) {
	w := openChat(t)

	require.NoError(t, w.Execute(`document.querySelector(".missing").scrollBy(0, 1);`))
	require.NoError(t, w.Execute(`document.title = "still-running";`))

	waitFor(t, w, `() => document.title === "still-running"`)
}

func TestExecuteAfterClose(t *testing.T) {
	w := openChat(t)
	require.NoError(t, w.Close())

	err := w.Execute(`document.title = "late";`)
	assert.True(t, stderrors.Is(err, errors.ErrWindowClosed))
}

func TestExecuteQueueFull(t *testing.T) {
	// No worker drains the queue.
	w := &Window{jobs: make(chan job, 1), done: make(chan struct{})}

	require.NoError(t, w.Execute(`document.title = "first";`))

	err := w.Execute(`document.title = "second";`)
	assert.True(t, stderrors.Is(err, errors.ErrQueueFull))
	assert.Contains(t, err.Error(), "dropped script")
}

func TestOnNavigateMainFrameOnly(t *testing.T) {
	w := openChat(t)

	urls := make(chan string, 8)
	w.OnNavigate(func(u string) { urls <- u })

	next := "data:text/html," + url.PathEscape(
		`<html><body><iframe srcdoc="<p>inner</p>"></iframe></body></html>`,
	)

	require.NoError(t, w.page.Timeout(10*time.Second).Navigate(next))
	require.NoError(t, w.page.Timeout(10*time.Second).WaitLoad())

	select {
	case got := <-urls:
		assert.True(t, strings.HasPrefix(got, "data:text/html,"), got)
	case <-time.After(5 * time.Second):
		t.Fatal("no navigation reported for the main frame")
	}

	select {
	case got := <-urls:
		t.Fatalf("unexpected navigation reported: %s", got)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestSlowScriptTimesOut(t *testing.T) {
	w := openWith(t, Options{Timeout: 500 * time.Millisecond})

	require.NoError(t, w.Execute(`return new Promise(resolve => setTimeout(resolve, 60000));`))
	require.NoError(t, w.Execute(`document.title = "after-timeout";`))

	waitFor(t, w, `() => document.title === "after-timeout"`)
}

func TestCloseWithDialogOpen(t *testing.T) {
	w := openChat(t)

	require.NoError(t, w.Execute(`confirm("leave this page?");`))

	closed := make(chan error, 1)
	go func() { closed <- w.Close() }()

	select {
	case <-closed:
	case <-time.After(10 * time.Second):
		t.Fatal("close blocked on the page")
	}
}
