package browser

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	vimerrors "github.com/theapemachine/vimnav/pkg/errors"
)

// Options configures the browser that hosts the chat client.
type Options struct {
	URL      string
	Headless bool
	Bin      string
	Queue    int
	// Timeout bounds each script or key job; a blocking dialog in the page
	// otherwise stalls the worker.
	Timeout  time.Duration
}

const defaultJobTimeout = 5 * time.Second

type job struct {
	name string
	run  func(page *rod.Page) error
}

/*
Window is a Chromium page driven over the DevTools protocol. Everything sent
to the page goes through one queue worked by a single goroutine, so scripts
and forwarded keys reach the page in the order they were issued, but callers
never wait for them.
*/
type Window struct {
	browser *rod.Browser
	page    *rod.Page
	jobs    chan job
	done    chan struct{}
	cancel  func()
	timeout time.Duration
	wg      sync.WaitGroup
	mu      sync.RWMutex
	closed  bool
	once    sync.Once
}

/*
Open launches a browser, loads opts.URL and starts the injection worker. The
context bounds the launch and the initial page load.
*/
func Open(ctx context.Context, opts Options) (*Window, error) {
	u, err := url.Parse(opts.URL)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" && u.Scheme != "data" && u.Scheme != "file" {
		return nil, errors.New("unsupported URL scheme (allowed: http, https, data, file)")
	}

	launch := launcher.New().Headless(opts.Headless).Leakless(true).Context(ctx)
	if opts.Bin != "" {
		launch = launch.Bin(opts.Bin)
	}

	wsURL, err := launch.Launch()
	if err != nil {
		return nil, err
	}

	browser := rod.New().ControlURL(wsURL)
	if err := browser.Connect(); err != nil {
		return nil, err
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		browser.Close()
		return nil, err
	}

	if err := page.Context(ctx).Navigate(opts.URL); err != nil {
		browser.Close()
		return nil, err
	}

	if err := page.Context(ctx).WaitLoad(); err != nil {
		browser.Close()
		return nil, err
	}

	log.Info("page loaded", "url", opts.URL, "headless", opts.Headless)

	return newWindow(browser, page, opts.Queue, opts.Timeout), nil
}

func newWindow(browser *rod.Browser, page *rod.Page, queue int, timeout time.Duration) *Window {
	if queue <= 0 {
		queue = 64
	}

	if timeout <= 0 {
		timeout = defaultJobTimeout
	}

	// Close cancels the page to abort whatever the worker is waiting on.
	page, cancel := page.WithCancel()

	w := &Window{
		browser: browser,
		page:    page,
		jobs:    make(chan job, queue),
		done:    make(chan struct{}),
		cancel:  cancel,
		timeout: timeout,
	}

	w.wg.Add(1)
	go w.work()

	return w
}

func (w *Window) work() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case j := <-w.jobs:
			page := w.page.Timeout(w.timeout)
			if err := j.run(page); err != nil {
				log.Warn("page job failed", "job", j.name, "error", err)
			}
			page.CancelTimeout()
		}
	}
}

func (w *Window) enqueue(j job) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.closed {
		return vimerrors.ErrWindowClosed
	}

	select {
	case w.jobs <- j:
		return nil
	default:
		return vimerrors.ErrQueueFull.WithMessagef("dropped %s, %d jobs pending", j.name, len(w.jobs))
	}
}

/*
Execute queues source for evaluation in the page. Script failures are logged
by the worker and never reported back.
*/
func (w *Window) Execute(source string) error {
	return w.enqueue(job{
		name: "script",
		run: func(page *rod.Page) error {
			_, err := page.Eval("() => {\n" + source + "\n}")
			return err
		},
	})
}

// Press forwards a non-printable key to the page.
func (w *Window) Press(key input.Key) error {
	return w.enqueue(job{
		name: "press",
		run: func(page *rod.Page) error {
			return page.Keyboard.Type(key)
		},
	})
}

// Type forwards printable text to the focused element.
func (w *Window) Type(text string) error {
	return w.enqueue(job{
		name: "type",
		run: func(page *rod.Page) error {
			return page.InsertText(text)
		},
	})
}

/*
OnNavigate calls fn with the new URL every time the main frame commits a
navigation. fn runs on the event goroutine, not the caller's.
*/
func (w *Window) OnNavigate(fn func(url string)) {
	wait := w.page.EachEvent(func(e *proto.PageFrameNavigated) {
		if e.Frame.ParentID == "" {
			fn(e.Frame.URL)
		}
	})

	go wait()
}

// URL reports the address of the page as the browser sees it.
func (w *Window) URL() string {
	info, err := w.page.Info()
	if err != nil {
		return ""
	}

	return info.URL
}

/*
Close stops the worker, aborting the job in flight and dropping anything still
queued, and shuts the browser down.
*/
func (w *Window) Close() (err error) {
	w.once.Do(func() {
		w.mu.Lock()
		w.closed = true
		w.mu.Unlock()

		w.cancel()
		close(w.done)
		w.wg.Wait()

		err = vimerrors.NewError(w.browser.Close())
	})

	return err
}
