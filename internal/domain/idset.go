package domain

import (
	"encoding/json"
	"sort"
)

// IDSet - множество идентификаторов точек.
// nil-множество допустимо для чтения и означает пустое множество.
type IDSet map[PointID]struct{}

// NewIDSet создает множество из списка идентификаторов
func NewIDSet(ids ...PointID) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) Add(id PointID) {
	s[id] = struct{}{}
}

func (s IDSet) Remove(id PointID) {
	delete(s, id)
}

func (s IDSet) Has(id PointID) bool {
	_, ok := s[id]
	return ok
}

func (s IDSet) Len() int {
	return len(s)
}

// Sorted возвращает элементы по возрастанию
func (s IDSet) Sorted() []PointID {
	ids := make([]PointID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Clone возвращает независимую копию (никогда не nil)
func (s IDSet) Clone() IDSet {
	out := make(IDSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Equal сравнивает множества без учета порядка
func (s IDSet) Equal(other IDSet) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

func (s IDSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *IDSet) UnmarshalJSON(data []byte) error {
	var ids []PointID
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewIDSet(ids...)
	return nil
}
