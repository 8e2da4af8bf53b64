package ports

// VoiceMeta — отображаемые метаданные голоса в локальном кэше
type VoiceMeta struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UploadedAt  string `json:"uploaded_at,omitempty"`
	FileSize    int64  `json:"file_size,omitempty"`
}

// VoiceCache — локальный key-value кэш метаданных склонированных голосов.
// Листинг хранилища решает, какие голоса существуют; кэш — как их показывать.
type VoiceCache interface {
	Get(id string) (VoiceMeta, bool)
	Put(meta VoiceMeta) error
	Delete(id string) error

	// Replace целиком подменяет содержимое кэша (используется refresh-ом,
	// чтобы записи удалённых блобов не переживали сверку с хранилищем)
	Replace(metas []VoiceMeta) error

	All() []VoiceMeta
}
