package storage

import (
	"ants-bot/internal/domain"
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

func (s *TranscriptService) Load(path string) (*domain.Transcript, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// Decode читает сжатую запись из r
func Decode(r io.Reader) (*domain.Transcript, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	return readBinary(bufio.NewReader(dec))
}

func readBinary(r io.Reader) (*domain.Transcript, error) {
	// 1. Заголовок целиком
	var header TranscriptFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %w", ErrInvalidTranscript, err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("%w: invalid magic %q", ErrInvalidTranscript, header.Magic[:])
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("%w: unsupported version: %d (expected %d)", ErrInvalidTranscript, header.Version, Version1)
	}
	if header.EntryCount < 0 || header.Rows < 0 || header.Cols < 0 {
		return nil, fmt.Errorf("%w: corrupt header", ErrInvalidTranscript)
	}

	t := &domain.Transcript{
		Seed:      header.Seed,
		Timestamp: header.Timestamp,
		Rows:      int(header.Rows),
		Cols:      int(header.Cols),
	}

	// 2. Строки
	for i := 0; i < int(header.EntryCount); i++ {
		var eh EntryHeader
		if err := binary.Read(r, binary.LittleEndian, &eh); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrInvalidTranscript, i, err)
		}
		dir := domain.TranscriptDir(eh.Dir)
		if dir != domain.DirIn && dir != domain.DirOut {
			return nil, fmt.Errorf("%w: entry %d: bad direction %d", ErrInvalidTranscript, i, eh.Dir)
		}

		buf := make([]byte, eh.Len)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrInvalidTranscript, i, err)
		}

		t.Entries = append(t.Entries, domain.TranscriptEntry{
			Turn: int(eh.Turn),
			Dir:  dir,
			Line: string(buf),
		})
	}

	return t, nil
}
