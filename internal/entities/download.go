package entities

import (
	"io"
	"time"
)

// Download открытый файл товара. Content закрывает получатель.
type Download struct {
	Content io.ReadSeekCloser
	Name    string
	Size    int64
	ModTime time.Time
}
