package network

import (
	"bufio"
	"io"
	"strings"
)

// Conn - построчный канал к движку игры.
// ReadLine возвращает io.EOF, когда движок закрыл ввод.
// WriteLine только буферизует, отправка происходит во Flush (на "go").
type Conn interface {
	ReadLine() (string, error)
	WriteLine(line string) error
	Flush() error
}

const maxLineSize = 64 * 1024

// StdioConn - классический транспорт контеста: stdin/stdout
type StdioConn struct {
	scanner *bufio.Scanner
	writer  *bufio.Writer
}

func NewStdioConn(r io.Reader, w io.Writer) *StdioConn {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	return &StdioConn{
		scanner: scanner,
		writer:  bufio.NewWriter(w),
	}
}

func (c *StdioConn) ReadLine() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(c.scanner.Text(), "\r"), nil
}

func (c *StdioConn) WriteLine(line string) error {
	if _, err := c.writer.WriteString(line); err != nil {
		return err
	}
	return c.writer.WriteByte('\n')
}

func (c *StdioConn) Flush() error {
	return c.writer.Flush()
}

// splitLines режет сообщение на строки протокола, убирая \r и завершающий перевод строки
func splitLines(msg string) []string {
	msg = strings.TrimRight(msg, "\n")
	lines := strings.Split(msg, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}
	return lines
}
