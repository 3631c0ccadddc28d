package domain

import (
	"errors"
	"fmt"
)

// Ошибки разбора протокола. Проверяются через errors.Is.
var (
	// ErrBadParameter - неизвестный ключ или неверное число токенов в строке настроек
	ErrBadParameter = errors.New("bad world parameter")
	// ErrBadInteger - поле, которое должно быть целым числом, им не является
	ErrBadInteger = errors.New("malformed integer")
	// ErrUnknownCommand - неизвестная или неполная команда хода
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUnexpectedLine - строка в неожиданном месте протокола (например, пустая)
	ErrUnexpectedLine = errors.New("unexpected line")
	// ErrUnexpectedEOF - ввод закончился до завершения игры
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	// ErrIO - ошибка чтения/записи транспорта
	ErrIO = errors.New("i/o failure")
)

// ParseError описывает строку, которую не удалось разобрать
type ParseError struct {
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseErr(line string, err error) error {
	return &ParseError{Line: line, Err: err}
}

// IOError оборачивает ошибку транспорта так, чтобы errors.Is(err, ErrIO) == true
func IOError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrIO, err)
}
