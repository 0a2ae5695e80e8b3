// Package sound plays the alert chime. Playback is fire-and-forget; a
// terminal without a bell simply stays quiet.
package sound

import "os"

// Bell rings the terminal bell in the background. It writes directly to the
// controlling tty because the TUI owns stdout, and never blocks the caller.
func Bell() {
	go func() {
		f, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
		if err != nil {
			return
		}
		defer f.Close()
		_, _ = f.Write([]byte("\a"))
	}()
}
