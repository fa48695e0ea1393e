package preflight

import (
	"fmt"
	"net"
	"time"
)

// DaemonProbe reports whether a daemon currently answers on the control socket.
type DaemonProbe struct {
	SocketPath string
	Listening  bool
}

// ProbeSocket attempts a short-lived connection to the control socket.
func ProbeSocket(path string) DaemonProbe {
	conn, err := net.DialTimeout("unix", path, time.Second)
	if err != nil {
		return DaemonProbe{SocketPath: path}
	}
	_ = conn.Close()
	return DaemonProbe{SocketPath: path, Listening: true}
}

// Detail renders a display-friendly summary for status UIs.
func (p DaemonProbe) Detail() string {
	if !p.Listening {
		return "no daemon listening"
	}
	return fmt.Sprintf("daemon answering on %s", p.SocketPath)
}
