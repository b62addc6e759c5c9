package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// RecordSchemaVersion - текущая версия формата сохраненного состояния
const RecordSchemaVersion = 1

// ErrUnsupportedRecord - запись в хранилище не соответствует ожидаемому формату
var ErrUnsupportedRecord = errors.New("unsupported interaction record")

// InteractionState - история пользователя: посещенные и отмеченные точки.
// Флаги независимы: закладка не снимает посещение и наоборот.
type InteractionState struct {
	Visited    IDSet `json:"visited"`
	Bookmarked IDSet `json:"bookmarked"`
}

// NewInteractionState - пустое состояние
func NewInteractionState() InteractionState {
	return InteractionState{
		Visited:    NewIDSet(),
		Bookmarked: NewIDSet(),
	}
}

// Clone - глубокая копия состояния
func (s InteractionState) Clone() InteractionState {
	return InteractionState{
		Visited:    s.Visited.Clone(),
		Bookmarked: s.Bookmarked.Clone(),
	}
}

// VisualState - желаемое визуальное состояние точки на карте
func (s InteractionState) VisualState(id PointID) VisualState {
	return VisualState{
		Visited:    s.Visited.Has(id),
		Bookmarked: s.Bookmarked.Has(id),
	}
}

// PersistedRecord - формат записи в хранилище (одна запись на namespace-ключ)
type PersistedRecord struct {
	Schema     *int      `json:"schema,omitempty"`
	Bookmarked []PointID `json:"bookmarked"`
	Visited    []PointID `json:"visited"`
}

// EncodeRecord сериализует состояние. Списки отсортированы, чтобы запись
// не зависела от порядка обхода множеств.
func EncodeRecord(state InteractionState) ([]byte, error) {
	version := RecordSchemaVersion
	rec := PersistedRecord{
		Schema:     &version,
		Bookmarked: state.Bookmarked.Sorted(),
		Visited:    state.Visited.Sorted(),
	}
	return json.Marshal(rec)
}

// DecodeRecord разбирает запись из хранилища.
// Запись без поля schema (первая версия формата) принимается как версия 1.
// Любая другая форма, включая старые ключи "lng,lat", дает ErrUnsupportedRecord.
func DecodeRecord(data []byte) (InteractionState, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var rec PersistedRecord
	if err := dec.Decode(&rec); err != nil {
		return InteractionState{}, fmt.Errorf("%w: %v", ErrUnsupportedRecord, err)
	}
	if dec.More() {
		return InteractionState{}, fmt.Errorf("%w: trailing data", ErrUnsupportedRecord)
	}
	if rec.Schema != nil && *rec.Schema != RecordSchemaVersion {
		return InteractionState{}, fmt.Errorf("%w: schema %d", ErrUnsupportedRecord, *rec.Schema)
	}

	return InteractionState{
		Visited:    NewIDSet(rec.Visited...),
		Bookmarked: NewIDSet(rec.Bookmarked...),
	}, nil
}
