package network

import (
	"ants-bot/internal/domain"
	"io"
)

// ReplayConn проигрывает входящие строки записанной партии.
// Ответы бота не уходят никуда, а складываются в Output (для сравнения с записью).
type ReplayConn struct {
	input  []string
	Output []string
	buf    []string
}

func NewReplayConn(t *domain.Transcript) *ReplayConn {
	return &ReplayConn{input: t.Input()}
}

func (c *ReplayConn) ReadLine() (string, error) {
	if len(c.input) == 0 {
		return "", io.EOF
	}
	line := c.input[0]
	c.input = c.input[1:]
	return line, nil
}

func (c *ReplayConn) WriteLine(line string) error {
	c.buf = append(c.buf, line)
	return nil
}

func (c *ReplayConn) Flush() error {
	c.Output = append(c.Output, c.buf...)
	c.buf = c.buf[:0]
	return nil
}
