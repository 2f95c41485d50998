package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/atinyakov/shortlink/internal/models"
)

const (
	opCreateLink = "link"
	opDeleteLink = "delete"
	opClick      = "click"
)

// journalEntry is one line of the storage file.
type journalEntry struct {
	Op      string             `json:"op"`
	Link    *models.Link       `json:"link,omitempty"`
	Click   *models.ClickEvent `json:"click,omitempty"`
	ID      string             `json:"id,omitempty"`
	OwnerID string             `json:"owner_id,omitempty"`
}

// FileStorage is a MemoryStorage whose mutations are appended to a
// JSON-lines journal and replayed on open.
type FileStorage struct {
	*MemoryStorage

	mu     sync.Mutex // serializes check, journal append and apply
	file   *os.File
	logger *zap.Logger
}

func NewFileStorage(p string, logger *zap.Logger) (*FileStorage, error) {
	if err := os.MkdirAll(filepath.Dir(p), 0770); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(p, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0660)
	if err != nil {
		return nil, err
	}

	mem, _ := CreateMemoryStorage()
	fs := &FileStorage{
		MemoryStorage: mem,
		file:          file,
		logger:        logger,
	}

	if err := fs.replay(); err != nil {
		file.Close()
		return nil, err
	}

	return fs, nil
}

func (fs *FileStorage) replay() error {
	if _, err := fs.file.Seek(0, io.SeekStart); err != nil {
		return err
	}

	ctx := context.Background()
	scanner := bufio.NewScanner(fs.file)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var n int
	for scanner.Scan() {
		var e journalEntry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			return fmt.Errorf("failed to parse JSON line: %w", err)
		}

		var err error
		switch e.Op {
		case opCreateLink:
			if e.Link != nil {
				_, err = fs.MemoryStorage.CreateLink(ctx, *e.Link)
			}
		case opDeleteLink:
			err = fs.MemoryStorage.DeleteLink(ctx, e.ID, e.OwnerID)
		case opClick:
			if e.Click != nil {
				err = fs.MemoryStorage.WriteClick(ctx, *e.Click)
			}
		}
		if err != nil {
			fs.logger.Warn("skipping journal entry", zap.String("op", e.Op), zap.Error(err))
		}
		n++
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	fs.logger.Info("storage file replayed", zap.Int("entries", n))
	return nil
}

func (fs *FileStorage) append(e journalEntry) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}

	_, err = fs.file.Write(append(b, '\n'))
	return err
}

func (fs *FileStorage) CreateLink(ctx context.Context, link models.Link) (*models.Link, error) {
	if link.ID == "" {
		link.ID = uuid.NewString()
	}
	if link.CreatedAt.IsZero() {
		link.CreatedAt = time.Now().UTC()
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.MemoryStorage.conflict(link); err != nil {
		return nil, err
	}
	if err := fs.append(journalEntry{Op: opCreateLink, Link: &link}); err != nil {
		return nil, err
	}

	return fs.MemoryStorage.CreateLink(ctx, link)
}

func (fs *FileStorage) DeleteLink(ctx context.Context, id, ownerID string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	link, err := fs.MemoryStorage.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if link.OwnerID != ownerID {
		return ErrForbidden
	}
	if err := fs.append(journalEntry{Op: opDeleteLink, ID: id, OwnerID: ownerID}); err != nil {
		return err
	}

	return fs.MemoryStorage.DeleteLink(ctx, id, ownerID)
}

func (fs *FileStorage) WriteClick(ctx context.Context, click models.ClickEvent) error {
	if click.ID == "" {
		click.ID = uuid.NewString()
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if _, err := fs.MemoryStorage.FindByID(ctx, click.LinkID); err != nil {
		return err
	}
	if err := fs.append(journalEntry{Op: opClick, Click: &click}); err != nil {
		return err
	}

	return fs.MemoryStorage.WriteClick(ctx, click)
}

// PingContext reports whether the journal file is still usable.
func (fs *FileStorage) PingContext(_ context.Context) error {
	_, err := fs.file.Stat()
	return err
}

func (fs *FileStorage) Close() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	return fs.file.Close()
}
