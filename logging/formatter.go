package logging

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorReset  = "\033[0m"
)

// DefaultTimestamp matches the std log LstdFlags layout.
const DefaultTimestamp = "2006/01/02 15:04:05"

// Formatter renders entries as "time [COMPONENT] [LEVEL] message k=v".
// Entries without a component field are tagged APP.
type Formatter struct {
	Color           bool
	TimestampFormat string
}

var _ logrus.Formatter = (*Formatter)(nil)

// Format implements logrus.Formatter.
func (f *Formatter) Format(e *logrus.Entry) ([]byte, error) {
	b := e.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}
	layout := f.TimestampFormat
	if layout == "" {
		layout = DefaultTimestamp
	}

	tag := "APP"
	if v, ok := e.Data[FieldComponent]; ok {
		tag = strings.ToUpper(fmt.Sprint(v))
	}
	name := levelName(e.Level)
	if f.Color {
		name = levelColor(e.Level) + name + colorReset
	}

	b.WriteString(e.Time.Format(layout))
	fmt.Fprintf(b, " [%s] [%s] %s", tag, name, e.Message)
	for _, k := range slices.Sorted(maps.Keys(e.Data)) {
		if k == FieldComponent {
			continue
		}
		fmt.Fprintf(b, " %s=%v", k, e.Data[k])
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func levelName(l logrus.Level) string {
	switch l {
	case logrus.WarnLevel:
		return "WARN"
	default:
		return strings.ToUpper(l.String())
	}
}

func levelColor(l logrus.Level) string {
	switch l {
	case logrus.DebugLevel, logrus.TraceLevel:
		return colorCyan
	case logrus.InfoLevel:
		return colorGreen
	case logrus.WarnLevel:
		return colorYellow
	default:
		return colorRed
	}
}
