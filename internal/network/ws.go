package network

import (
	"ants-bot/internal/version"
	"ants-bot/pkg/logger"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// Настройки WebSocket
const (
	writeWait = 10 * time.Second
)

// WSConn - тот же построчный протокол, но через websocket-ретранслятор движка.
// Одно текстовое сообщение может содержать несколько строк.
// Все синхронно: без горутин, читаем только когда нужна следующая строка.
type WSConn struct {
	conn    *websocket.Conn
	pending []string
	out     []string
}

// DialWS подключается к ретранслятору, представляясь сборкой бота
func DialWS(url string) (*WSConn, error) {
	header := http.Header{"User-Agent": {version.Current().UserAgent()}}
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		return nil, err
	}
	logger.Log.WithField("url", url).Info("Connected to engine relay")
	return NewWSConn(conn), nil
}

func NewWSConn(conn *websocket.Conn) *WSConn {
	return &WSConn{conn: conn}
}

func (c *WSConn) ReadLine() (string, error) {
	for len(c.pending) == 0 {
		msgType, msg, err := c.conn.ReadMessage()
		if err != nil {
			// Нормальное закрытие - это конец ввода, а не ошибка транспорта
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return "", io.EOF
			}
			return "", err
		}
		if msgType != websocket.TextMessage {
			continue
		}
		c.pending = splitLines(string(msg))
	}

	line := c.pending[0]
	c.pending = c.pending[1:]
	return line, nil
}

func (c *WSConn) WriteLine(line string) error {
	c.out = append(c.out, line)
	return nil
}

// Flush отправляет накопленные строки одним сообщением
func (c *WSConn) Flush() error {
	if len(c.out) == 0 {
		return nil
	}
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set write deadline")
	}
	msg := strings.Join(c.out, "\n") + "\n"
	c.out = c.out[:0]
	return c.conn.WriteMessage(websocket.TextMessage, []byte(msg))
}

// Close корректно закрывает соединение
func (c *WSConn) Close() error {
	closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := c.conn.WriteControl(websocket.CloseMessage, closeMsg, time.Now().Add(writeWait)); err != nil {
		logger.Log.WithError(err).Debug("write close message failed")
	}
	return c.conn.Close()
}
