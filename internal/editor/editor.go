package editor

import (
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/toba/shellkit/internal/complete"
	"github.com/toba/shellkit/internal/histsearch"
	"github.com/toba/shellkit/internal/shellstate"
	"github.com/toba/shellkit/internal/termctl"
)

const (
	bell          = 0x07
	backspaceEcho = "\b \b"
	clearLine     = "\r\033[K"
	ctrlR         = 0x12
	ctrlY         = 0x19
	del           = 0x7F
	escByte       = 0x1B
	newline       = 0x0A
	tab           = 0x09
)

// Editor drives one interactive session: raw terminal I/O, echo, history
// navigation, and tab completion (spec.md §4.G). Grounded on the
// readInput loop in
// other_examples/47b8a67b_jassuwu-byo-sh__cmd-myshell-main.go.go.
type Editor struct {
	state   *shellstate.State
	stdin   io.Reader
	stdout  io.Writer
	prompt  string
	pathEnv func() string
	buf     *LineBuffer
	raw     bool // whether the terminal was successfully put in raw mode
}

// New builds an Editor reading from stdin and writing to stdout, with
// prompt written before each line and pathEnv consulted for PATH-based
// completion and resolution.
func New(state *shellstate.State, stdin io.Reader, stdout io.Writer, prompt string, pathEnv func() string) *Editor {
	return &Editor{
		state:   state,
		stdin:   stdin,
		stdout:  stdout,
		prompt:  prompt,
		pathEnv: pathEnv,
		buf:     NewLineBuffer(),
	}
}

// byteOrErr is one event from a single-byte read.
type byteOrErr struct {
	b   byte
	err error
}

func readOneByte(r io.Reader, ch chan<- byteOrErr) {
	one := make([]byte, 1)
	n, err := r.Read(one)
	if n > 0 {
		ch <- byteOrErr{b: one[0]}
		return
	}
	ch <- byteOrErr{err: err}
}

// byteSource fetches one stdin byte at a time, on demand. Each request
// spawns exactly one reader goroutine and nothing else touches stdin
// until that byte (or error) is consumed — unlike a free-running
// background reader, this guarantees there is never a read on stdin in
// flight while a pipeline's external stage is executing synchronously
// in onLine and itself reading from the same inherited stdin descriptor.
type byteSource struct {
	r  io.Reader
	ch chan byteOrErr
}

func newByteSource(r io.Reader) *byteSource {
	return &byteSource{r: r, ch: make(chan byteOrErr, 1)}
}

// request starts one single-byte read, to be collected via ch or next.
func (s *byteSource) request() {
	go readOneByte(s.r, s.ch)
}

// next requests and blocks for exactly one byte.
func (s *byteSource) next() (byte, bool) {
	s.request()
	be := <-s.ch
	return be.b, be.err == nil
}

// RunREPL puts the terminal in raw mode (falling back to a degraded,
// unbuffered-but-non-raw mode if stdin is not a TTY) and reads lines
// until EOF or a built-in `exit`, invoking onLine for each completed
// line. It installs a SIGINT handler per spec.md §4.G/§5: the handler
// writes "\n$ " and the main loop clears the in-progress buffer, rather
// than relying on the interrupted-read signal the C source uses — Go's
// runtime does not deliver notified signals as an EINTR on a blocked
// Read, so this is adapted to a select over a single-byte reader and a
// signal channel, which is the idiomatic Go equivalent.
func (e *Editor) RunREPL(onLine func(line string)) {
	mode, ok := termctl.MakeRaw(int(os.Stdin.Fd()))
	e.raw = ok
	if ok {
		e.state.RestoreTerm = mode.Restore
		defer mode.Restore()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT)
	defer signal.Stop(sigCh)

	src := newByteSource(e.stdin)
	src.request()

	e.writePrompt()
	for {
		select {
		case <-sigCh:
			io.WriteString(e.stdout, "\n"+e.prompt)
			e.buf.Reset()
		case be := <-src.ch:
			if be.err != nil {
				// spec.md §4.G distinguishes a zero-byte read against an
				// empty buffer (terminate) from one against a non-empty
				// buffer (ignored, keep editing). Deliberately not followed
				// to the letter here: io.Reader gives no way to tell "no
				// bytes right now" apart from "closed for good," and a
				// genuinely closed reader (stdin redirected from an
				// exhausted file) would make "ignored" mean retrying the
				// read forever in a tight, CPU-spinning loop with no
				// further input ever arriving. Any read error always ends
				// the session, regardless of buffer contents.
				return
			}
			if done := e.handleByte(be.b, src, onLine); done {
				return
			}
			src.request()
		}
	}
}

// handleByte applies spec.md §4.G's per-byte dispatch table. src is used
// only by the escape-sequence branch to pull the two follow-up bytes;
// every other branch ignores it. It returns true if the session should
// end (the caller's read-error path is what actually terminates the
// session; handleByte itself never does).
func (e *Editor) handleByte(c byte, src *byteSource, onLine func(string)) bool {
	// Any key other than Tab breaks a run of consecutive Tabs, per spec.md
	// §4.I's "second *consecutive* tab" — handleTab manages its own value
	// for the Tab case itself, both here and in its own branch below.
	if c != tab {
		e.buf.SetLastWasTab(false)
	}

	switch c {
	case newline:
		line := e.buf.String()
		io.WriteString(e.stdout, "\n")
		onLine(line)
		e.buf.Reset()
		e.writePrompt()

	case escByte:
		b1, ok1 := src.next()
		b2, ok2 := src.next()
		if !ok1 || !ok2 || b1 != '[' {
			return false
		}
		switch b2 {
		case 'A':
			e.navigateHistory(e.buf.Up)
		case 'B':
			e.navigateHistory(e.buf.Down)
		}

	case tab:
		e.handleTab()

	case del:
		if e.buf.Backspace() {
			io.WriteString(e.stdout, backspaceEcho)
		}

	case ctrlR:
		e.handleReverseSearch()

	case ctrlY:
		clipboard.WriteAll(e.buf.String()) //nolint:errcheck // best-effort, no clipboard provider is not an error condition

	default:
		if e.buf.Append(c) {
			e.stdout.Write([]byte{c})
		}
	}
	return false
}

func (e *Editor) navigateHistory(move func([]string) (string, bool)) {
	text, changed := move(e.state.History.Entries())
	if !changed {
		return
	}
	e.redrawBuffer(text)
}

func (e *Editor) handleTab() {
	prefix := currentWordPrefix(e.buf.String())
	candidates := complete.Candidates(prefix, e.pathEnv(), e.state.ExtraPath)
	outcome := complete.Decide(prefix, candidates, e.buf.LastWasTab())

	switch outcome.Action {
	case complete.Bell:
		io.WriteString(e.stdout, string(byte(bell)))
		e.buf.SetLastWasTab(len(candidates) > 1)
	case complete.Extend:
		e.buf.ReplacePrefix(len(prefix), outcome.Extension)
		if outcome.TrailingSpace {
			e.buf.Append(' ')
		}
		e.redrawBuffer(e.buf.String())
		e.buf.SetLastWasTab(false)
	case complete.List:
		width, _, _ := termctl.Size(int(os.Stdout.Fd()))
		rows := complete.Layout(outcome.Candidates, width)
		lines := make([]string, len(rows))
		for i, row := range rows {
			styled := make([]string, len(row))
			for j, c := range row {
				styled[j] = e.state.Styles.Candidate(c)
			}
			lines[i] = strings.Join(styled, "  ")
		}
		io.WriteString(e.stdout, "\n"+strings.Join(lines, "\n")+"\n"+e.prompt+e.buf.String())
		e.buf.SetLastWasTab(false)
	}
}

func (e *Editor) handleReverseSearch() {
	query := e.buf.String()
	if query == "" {
		return
	}
	idx, err := histsearch.New(e.state.History.Entries())
	if err != nil {
		return
	}
	defer idx.Close()

	hits, err := idx.Search(query, 1)
	if err != nil || len(hits) == 0 {
		return
	}
	entries := e.state.History.Entries()
	if hits[0] < 0 || hits[0] >= len(entries) {
		return
	}
	e.buf.setText(entries[hits[0]])
	e.redrawBuffer(e.buf.String())
}

// redrawBuffer clears the current line and reprints the prompt plus the
// given text, per spec.md §6's `\r\033[K` control-sequence usage.
func (e *Editor) redrawBuffer(text string) {
	io.WriteString(e.stdout, clearLine+e.prompt+text)
}

func (e *Editor) writePrompt() {
	io.WriteString(e.stdout, e.prompt)
}

// currentWordPrefix returns the suffix of buf back to the last space, or
// the whole buffer if there is none (spec.md §4.I).
func currentWordPrefix(buf string) string {
	if i := strings.LastIndexByte(buf, ' '); i >= 0 {
		return buf[i+1:]
	}
	return buf
}
