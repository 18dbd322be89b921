package browser

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/doeshing/voxsh/internal/ports"
)

// Opener implements ports.BrowserOpener using platform-specific launchers.
type Opener struct {
	goos     string
	lookPath func(string) (string, error)
	start    func(name string, args ...string) error
}

// NewOpener builds the browser helper.
func NewOpener() *Opener {
	return &Opener{
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		start: func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		},
	}
}

// Enabled reports whether a launcher exists for this platform.
func (o *Opener) Enabled() bool {
	_, _, err := o.launcher()
	return err == nil
}

// Open starts the launcher without waiting for the browser to exit.
func (o *Opener) Open(url string) error {
	name, args, err := o.launcher()
	if err != nil {
		return err
	}
	return o.start(name, append(args, url)...)
}

func (o *Opener) launcher() (string, []string, error) {
	switch o.goos {
	case "darwin":
		return "open", nil, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}, nil
	default: // linux, bsd
		for _, candidate := range []string{"xdg-open", "sensible-browser", "x-www-browser"} {
			if _, err := o.lookPath(candidate); err == nil {
				return candidate, nil, nil
			}
		}
		return "", nil, fmt.Errorf("browser launcher not found (tried xdg-open, sensible-browser, x-www-browser)")
	}
}

var _ ports.BrowserOpener = (*Opener)(nil)
