package ports

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound возвращается Delete-ом для отсутствующего ключа.
// При удалении парного transcript-файла вызывающий считает это успехом.
var ErrObjectNotFound = errors.New("object not found")

// ObjectInfo — одна запись листинга бакета
type ObjectInfo struct {
	Path string // полный ключ в бакете
	Name string // имя файла без префикса
}

// Низкоуровневый клиент к объектному хранилищу
type StorageClient interface {
	// Upload пишет блоб и возвращает публичный URL. Повторная загрузка
	// по тому же ключу перезаписывает объект.
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (publicURL string, err error)

	// PublicURL возвращает URL для неавторизованного GET
	PublicURL(key string) string

	// List возвращает полный листинг объектов под префиксом (один
	// проход, без курсора — для свежего вида вызывают List заново)
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)

	// Delete удаляет объект; отсутствующий ключ → ErrObjectNotFound
	Delete(ctx context.Context, key string) error
}
