// Package logrotate renders logrotate(8) policy blocks.
package logrotate

import (
	"fmt"
	"os"
	"strings"

	"github.com/hboehmecke/hbai-mon/internal/messages"
)

// Frequency is a logrotate rotation interval directive.
type Frequency string

const (
	Hourly  Frequency = "hourly"
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
	Yearly  Frequency = "yearly"
)

// CreateSpec is the `create mode owner group` directive.
type CreateSpec struct {
	Mode  os.FileMode
	Owner string
	Group string
}

// Policy is a single logrotate block for one log path.
type Policy struct {
	LogPath       string
	Frequency     Frequency
	Rotate        int
	Compress      bool
	DelayCompress bool
	MissingOK     bool
	NotIfEmpty    bool
	Create        *CreateSpec
}

// DefaultPolicy returns the audit log policy: daily rotation, 30 generations,
// delayed compression, tolerant of a missing or empty log, recreated 644 root:root.
func DefaultPolicy(logPath string) Policy {
	return Policy{
		LogPath:       logPath,
		Frequency:     Daily,
		Rotate:        30,
		Compress:      true,
		DelayCompress: true,
		MissingOK:     true,
		NotIfEmpty:    true,
		Create: &CreateSpec{
			Mode:  0o644,
			Owner: "root",
			Group: "root",
		},
	}
}

// Validate reports the first problem that would make the block unusable.
func (p Policy) Validate() error {
	if strings.TrimSpace(p.LogPath) == "" {
		return fmt.Errorf(messages.LogrotateInvalidFmt, messages.LogrotateLogPathRequired)
	}
	switch p.Frequency {
	case Hourly, Daily, Weekly, Monthly, Yearly:
	default:
		return fmt.Errorf(messages.LogrotateInvalidFmt, fmt.Sprintf(messages.LogrotateFrequencyInvalidFmt, p.Frequency))
	}
	if p.Rotate <= 0 {
		return fmt.Errorf(messages.LogrotateInvalidFmt, fmt.Sprintf(messages.LogrotateRotateInvalidFmt, p.Rotate))
	}
	if p.Create != nil && (p.Create.Owner == "" || p.Create.Group == "") {
		return fmt.Errorf(messages.LogrotateInvalidFmt, messages.LogrotateCreateOwnerRequired)
	}
	return nil
}

// Render returns the policy as logrotate config text, newline terminated.
// Directive order is fixed so repeated renders are byte-identical.
func (p Policy) Render() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s {\n", p.LogPath)
	directive(&b, string(p.Frequency))
	directive(&b, fmt.Sprintf("rotate %d", p.Rotate))
	if p.Compress {
		directive(&b, "compress")
	}
	if p.DelayCompress {
		directive(&b, "delaycompress")
	}
	if p.MissingOK {
		directive(&b, "missingok")
	}
	if p.NotIfEmpty {
		directive(&b, "notifempty")
	}
	if p.Create != nil {
		// logrotate takes the mode as bare octal digits: "644", not "0644".
		directive(&b, fmt.Sprintf("create %o %s %s", p.Create.Mode.Perm(), p.Create.Owner, p.Create.Group))
	}
	b.WriteString("}\n")
	return []byte(b.String()), nil
}

func directive(b *strings.Builder, text string) {
	b.WriteString("    ")
	b.WriteString(text)
	b.WriteString("\n")
}
