package wifi

import "strings"

// ParseNetsh tokenizes the output of `netsh wlan show networks mode=bssid`
// into raw entries. A "SSID <n> :" line starts a new entry; subsequent
// "Authentication", "Signal", "Channel" and "BSSID" lines fill it. Only the
// first BSSID block per SSID contributes signal/channel/bssid values.
// Unrecognized lines are ignored.
func ParseNetsh(output string) []RawEntry {
	var entries []RawEntry
	var current *RawEntry

	for _, line := range strings.Split(output, "\n") {
		key, value, ok := splitField(line)
		if !ok {
			continue
		}

		switch {
		case strings.HasPrefix(key, "SSID"):
			entries = append(entries, RawEntry{SSID: value})
			current = &entries[len(entries)-1]
		case current == nil:
			// Field before any SSID header, e.g. the interface preamble.
		case key == "Authentication":
			current.Security = value
		case strings.HasPrefix(key, "BSSID"):
			if current.BSSID == "" {
				current.BSSID = value
			}
		case key == "Signal":
			if current.Signal == "" {
				current.Signal = value
			}
		case key == "Channel":
			if current.Channel == "" {
				current.Channel = value
			}
		}
	}
	return entries
}

// ParseNmcli tokenizes terse nmcli output
// (`nmcli -t -f SSID,SECURITY,SIGNAL,CHAN device wifi list`) into raw
// entries. Fields are colon-separated; nmcli escapes literal colons in
// SSIDs with a backslash. Lines with fewer than two fields are skipped.
func ParseNmcli(output string) []RawEntry {
	var entries []RawEntry

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := splitTerse(line)
		if len(fields) < 2 {
			continue
		}

		entry := RawEntry{SSID: fields[0], Security: fields[1]}
		if len(fields) > 2 {
			entry.Signal = fields[2]
		}
		if len(fields) > 3 {
			entry.Channel = fields[3]
		}
		// nmcli reports "--" for unencrypted networks; normalize to the
		// open-network token the classifier understands.
		if entry.Security == "--" {
			entry.Security = "OPEN"
		}
		entries = append(entries, entry)
	}
	return entries
}

// splitField splits a "Key : Value" netsh line, trimming both sides.
// Returns ok=false for lines without a separator.
func splitField(line string) (key, value string, ok bool) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:idx])
	value = strings.TrimSpace(line[idx+1:])
	if key == "" {
		return "", "", false
	}
	return key, value, true
}

// splitTerse splits an nmcli terse line on unescaped colons and unescapes
// the "\:" sequences inside fields.
func splitTerse(line string) []string {
	var fields []string
	var b strings.Builder
	escaped := false

	for _, r := range line {
		switch {
		case escaped:
			b.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ':':
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	fields = append(fields, b.String())
	return fields
}
