package io

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal is the interactive console device: keys are pumped from
// stdin by a reader goroutine, display output goes to stdout.
type Terminal struct {
	// Blocking makes Poll wait for a key instead of returning
	// immediately when none is pending.
	Blocking bool

	original unix.Termios
	raw      bool
	keys     chan byte
}

var _ Console = (*Terminal)(nil)

// Raw switches the controlling terminal into raw mode (no line
// buffering, no echo) and starts the keyboard reader. When stdin is not
// a tty, only the reader is started.
func (tt *Terminal) Raw() (err error) {
	tt.start()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return
	}

	err = termios.Tcgetattr(os.Stdin.Fd(), &tt.original)
	if err != nil {
		return
	}

	raw := tt.original
	raw.Lflag &^= unix.ICANON | unix.ECHO
	err = termios.Tcsetattr(os.Stdin.Fd(), termios.TCSANOW, &raw)
	if err != nil {
		return
	}

	tt.raw = true

	return
}

// Restore returns the controlling terminal to its original settings.
func (tt *Terminal) Restore() {
	if tt.raw {
		termios.Tcsetattr(os.Stdin.Fd(), termios.TCSANOW, &tt.original)
		tt.raw = false
	}
}

// ReadKey blocks until a key arrives.
func (tt *Terminal) ReadKey() (key byte, err error) {
	tt.start()

	key, ok := <-tt.keys
	if !ok {
		err = ErrKeyEOF
	}

	return
}

// Poll consumes a pending key. When Blocking is set it waits for one,
// modeling a keyboard status register that stalls until a key arrives.
func (tt *Terminal) Poll() (key byte, ok bool) {
	tt.start()

	if tt.Blocking {
		key, ok = <-tt.keys
		return
	}

	select {
	case key, ok = <-tt.keys:
	default:
	}

	return
}

// Write sends display output to stdout.
func (tt *Terminal) Write(data []byte) (n int, err error) {
	return os.Stdout.Write(data)
}

func (tt *Terminal) start() {
	if tt.keys != nil {
		return
	}

	tt.keys = make(chan byte, 8)

	go func() {
		for {
			var one [1]byte
			n, err := os.Stdin.Read(one[:])
			if err != nil {
				close(tt.keys)
				return
			}
			if n > 0 {
				tt.keys <- one[0]
			}
		}
	}()
}
