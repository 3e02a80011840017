//go:build !linux

package web

import (
	"net"
	"time"
)

// tcpLatency is not available on this platform.
func tcpLatency(net.Conn) (time.Duration, error) {
	return 0, nil
}
