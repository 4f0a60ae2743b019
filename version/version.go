package version

import (
	"encoding/json"
	"fmt"
	"time"
)

// Build-time variables set via -ldflags
var (
	Version   = "unknown"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info represents version information
type Info struct {
	Version   string    `json:"version"`
	Commit    string    `json:"commit"`
	BuildDate time.Time `json:"build_date"`
}

func GetInfo() Info {
	info := Info{
		Version: Version,
		Commit:  Commit,
	}

	if BuildDate != "unknown" && BuildDate != "" {
		if t, err := time.Parse(time.RFC3339, BuildDate); err == nil {
			info.BuildDate = t.UTC()
		}
	}

	return info
}

func (i Info) String() string {
	if i.Version == "unknown" {
		return "thriftgen (development build)"
	}

	s := fmt.Sprintf("thriftgen %s", i.Version)
	if i.Commit != "unknown" && i.Commit != "" {
		s += fmt.Sprintf(" (%s)", i.Commit)
	}
	if !i.BuildDate.IsZero() {
		s += fmt.Sprintf(", built %s", i.BuildDate.Format("2006-01-02"))
	}
	return s
}

func (i Info) JSON() (string, error) {
	data, err := json.MarshalIndent(i, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
