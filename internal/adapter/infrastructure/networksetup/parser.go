package networksetup

import (
	"bufio"
	"bytes"
	"strings"

	"macnetconfig/internal/types"
)

// Prefixes of the lines printed by "networksetup -getinfo".
const (
	prefixIP     = "IP address:"
	prefixMask   = "Subnet mask:"
	prefixRouter = "Router:"
)

// ParseInfo extracts the IPv4 configuration from "networksetup -getinfo"
// output. Values are trimmed, empty values are ignored and the last
// non-empty value of a key wins.
func ParseInfo(out []byte) types.NetworkInfo {
	text := string(out)
	info := types.NetworkInfo{
		IsDHCP: strings.Contains(text, "DHCP Configuration") || strings.Contains(text, "dhcp"),
	}

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, prefixIP):
			setIfPresent(&info.IP, line[len(prefixIP):])
		case strings.HasPrefix(line, prefixMask):
			setIfPresent(&info.Mask, line[len(prefixMask):])
		case strings.HasPrefix(line, prefixRouter):
			setIfPresent(&info.Router, line[len(prefixRouter):])
		}
	}

	return info
}

func setIfPresent(dst *string, raw string) {
	if v := strings.TrimSpace(raw); v != "" {
		*dst = v
	}
}

// ParseServices extracts service names from "networksetup
// -listallnetworkservices" output. The first line is an informational
// notice; a leading asterisk marks a disabled service.
func ParseServices(out []byte) []string {
	var services []string

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for first := true; scanner.Scan(); first = false {
		line := strings.TrimSpace(scanner.Text())
		if first && strings.HasPrefix(line, "An asterisk") {
			continue
		}

		line = strings.TrimSpace(strings.TrimPrefix(line, "*"))
		if line != "" {
			services = append(services, line)
		}
	}

	return services
}
