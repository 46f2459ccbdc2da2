package logging

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// LineFormatter renders one compact line per entry: timestamp, level,
// message, then fields sorted by key.
type LineFormatter struct {
	Timestamp bool
	Colors    bool
}

func (f *LineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var out strings.Builder

	if f.Timestamp {
		out.WriteString(f.paint(36, entry.Time.Format("2006-01-02 15:04:05.000")))
		out.WriteByte(' ')
	}

	out.WriteString(f.paint(levelColor(entry.Level), strings.ToUpper(entry.Level.String())))
	out.WriteByte(' ')
	out.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out.WriteByte(' ')
		out.WriteString(f.paint(34, k))
		out.WriteByte('=')
		out.WriteString(formatValue(entry.Data[k]))
	}

	out.WriteByte('\n')
	return []byte(out.String()), nil
}

func (f *LineFormatter) paint(color int, s string) string {
	if !f.Colors {
		return s
	}
	return fmt.Sprintf("\033[%dm%s\033[0m", color, s)
}

func levelColor(level logrus.Level) int {
	switch level {
	case logrus.InfoLevel:
		return 32
	case logrus.WarnLevel:
		return 33
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return 31
	default:
		return 37
	}
}

// formatValue quotes strings containing spaces so patterns stay readable.
func formatValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		if strings.ContainsAny(v, " \t") {
			return fmt.Sprintf("%q", v)
		}
		return v
	case error:
		return fmt.Sprintf("%q", v.Error())
	default:
		return fmt.Sprintf("%v", v)
	}
}
