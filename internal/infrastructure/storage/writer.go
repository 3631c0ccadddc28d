package storage

import (
	"ants-bot/internal/domain"
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

const (
	MagicHeader string = `ANTR` // 4 байта
	Version1    uint32 = 1

	FileExt = ".antr"

	maxLineLen = 65535
)

var ErrInvalidTranscript = errors.New("invalid transcript")

// TranscriptFileHeader - заголовок файла записи (до сжатия).
// binary.Write пишет его целиком: только массивы и числа.
type TranscriptFileHeader struct {
	Magic      [4]byte // 4 байта
	Version    uint32  // 4 байта
	Seed       int64   // 8 байт
	Timestamp  int64   // 8 байт
	Rows       int32   // 4 байта
	Cols       int32   // 4 байта
	EntryCount int32   // 4 байта
}

// EntryHeader - заголовок каждой строки протокола.
type EntryHeader struct {
	Turn int32  // 4
	Dir  uint8  // 1
	Len  uint16 // 2
}

// TranscriptService сохраняет и загружает записи партий.
// Файл - zstd-поток поверх бинарного формата.
type TranscriptService struct {
	SaveDir string
}

func NewTranscriptService(dir string) *TranscriptService {
	return &TranscriptService{SaveDir: dir}
}

// FileName - имя файла записи: game_<seed>_<timestamp>.antr
func FileName(t *domain.Transcript) string {
	return fmt.Sprintf("game_%d_%d%s", t.Seed, t.Timestamp, FileExt)
}

// Save пишет запись в SaveDir и возвращает путь к файлу
func (s *TranscriptService) Save(t *domain.Transcript) (string, error) {
	if err := os.MkdirAll(s.SaveDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.SaveDir, FileName(t))

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := Encode(f, t); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	return path, f.Close()
}

// Encode пишет сжатую запись в w
func Encode(w io.Writer, t *domain.Transcript) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(enc)
	if err := writeBinary(bw, t); err != nil {
		enc.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

func writeBinary(w io.Writer, t *domain.Transcript) error {
	// 1. Заголовок
	header := TranscriptFileHeader{
		Version:    Version1,
		Seed:       t.Seed,
		Timestamp:  t.Timestamp,
		Rows:       int32(t.Rows),
		Cols:       int32(t.Cols),
		EntryCount: int32(len(t.Entries)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// 2. Строки протокола
	for i, e := range t.Entries {
		if len(e.Line) > maxLineLen {
			return fmt.Errorf("entry %d: line too long: %d", i, len(e.Line))
		}

		eh := EntryHeader{
			Turn: int32(e.Turn),
			Dir:  uint8(e.Dir),
			Len:  uint16(len(e.Line)),
		}
		if err := binary.Write(w, binary.LittleEndian, &eh); err != nil {
			return err
		}
		if _, err := io.WriteString(w, e.Line); err != nil {
			return err
		}
	}

	return nil
}
