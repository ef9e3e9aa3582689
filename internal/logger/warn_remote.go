package logger

import (
	"fmt"
	"io"
	"sync"
)

var once sync.Once

// WarnOnce tells the player, a single time per process, that the remote
// phrase source could not be reached. fellBack says whether the local corpus
// files are used instead.
func WarnOnce(w io.Writer, err error, fellBack bool) {
	once.Do(func() {
		Debug("phrasefinder unreachable: %v", err)
		if fellBack {
			fmt.Fprintln(w, "⚠️ Unable to reach PhraseFinder. Falling back to the local corpus files.")
			return
		}
		fmt.Fprintln(w, "⚠️ Unable to reach PhraseFinder.")
		fmt.Fprintln(w, "🧠 Use --source file --corpus <path> to play offline.")
	})
}
