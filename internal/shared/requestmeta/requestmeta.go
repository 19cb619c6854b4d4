package requestmeta

import (
	"net"
	"net/http"
	"strings"

	"github.com/mssola/useragent"
)

const (
	UnknownIP      = "Unknown IP"
	UnknownDevice  = "Unknown Device"
	UnknownOS      = "Unknown OS"
	UnknownBrowser = "Unknown Browser"
)

// ClientMeta is what a request tells us about its caller.
type ClientMeta struct {
	IP          string
	UserAgent   string
	Geolocation string
}

// Device is the parsed form of a user-agent string.
type Device struct {
	DeviceType      string
	OperatingSystem string
	Browser         string
}

// FromRequest extracts the client IP and user agent. Geolocation is
// caller-supplied and set separately.
func FromRequest(r *http.Request) ClientMeta {
	return ClientMeta{
		IP:        ClientIP(r),
		UserAgent: r.UserAgent(),
	}
}

// ClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the
// socket address.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.Split(xff, ",")[0])
		if first != "" {
			return first
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return UnknownIP
}

func ParseUserAgent(raw string) Device {
	if strings.TrimSpace(raw) == "" {
		return Device{DeviceType: UnknownDevice, OperatingSystem: UnknownOS, Browser: UnknownBrowser}
	}

	ua := useragent.New(raw)

	d := Device{
		DeviceType:      "Desktop",
		OperatingSystem: ua.OS(),
		Browser:         UnknownBrowser,
	}
	switch {
	case ua.Bot():
		d.DeviceType = "Bot"
	case ua.Mobile():
		d.DeviceType = "Mobile"
		if model := ua.Model(); model != "" {
			d.DeviceType = "Mobile (" + model + ")"
		}
	}

	if name, version := ua.Browser(); name != "" {
		d.Browser = strings.TrimSpace(name + " " + version)
	}
	if d.OperatingSystem == "" {
		d.OperatingSystem = UnknownOS
	}
	return d
}
