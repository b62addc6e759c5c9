package domain

import "sort"

// Dataset - неизменяемый набор точек, загружается один раз при старте.
// Порядок точек сохраняется как в источнике.
type Dataset struct {
	points     []PointRecord
	index      map[PointID]int
	duplicates []PointID
}

// NewDataset строит датасет. При повторяющемся id остается первая запись,
// повторы доступны через Duplicates.
func NewDataset(records []PointRecord) *Dataset {
	ds := &Dataset{
		points: make([]PointRecord, 0, len(records)),
		index:  make(map[PointID]int, len(records)),
	}

	for _, r := range records {
		if _, exists := ds.index[r.ID]; exists {
			ds.duplicates = append(ds.duplicates, r.ID)
			continue
		}
		r.Genres = append([]string(nil), r.Genres...)
		ds.index[r.ID] = len(ds.points)
		ds.points = append(ds.points, r)
	}

	return ds
}

// EmptyDataset - датасет без точек (ошибка загрузки => пустая карта)
func EmptyDataset() *Dataset {
	return NewDataset(nil)
}

// Points возвращает копию списка точек
func (d *Dataset) Points() []PointRecord {
	out := make([]PointRecord, len(d.points))
	copy(out, d.points)
	return out
}

func (d *Dataset) Len() int {
	return len(d.points)
}

// Get возвращает точку по id
func (d *Dataset) Get(id PointID) (PointRecord, bool) {
	i, ok := d.index[id]
	if !ok {
		return PointRecord{}, false
	}
	return d.points[i], true
}

func (d *Dataset) Has(id PointID) bool {
	_, ok := d.index[id]
	return ok
}

// Each обходит точки в порядке датасета без копирования
func (d *Dataset) Each(fn func(p *PointRecord)) {
	for i := range d.points {
		fn(&d.points[i])
	}
}

// Duplicates - id, встретившиеся в источнике больше одного раза
func (d *Dataset) Duplicates() []PointID {
	return append([]PointID(nil), d.duplicates...)
}

// AllGenres - все непустые теги жанров, отсортированные
func (d *Dataset) AllGenres() []string {
	seen := make(map[string]struct{})
	for _, p := range d.points {
		for _, g := range p.Genres {
			if g == "" {
				continue
			}
			seen[g] = struct{}{}
		}
	}

	genres := make([]string, 0, len(seen))
	for g := range seen {
		genres = append(genres, g)
	}
	sort.Strings(genres)
	return genres
}

// Bounds - bounding box точек с заполненными координатами.
// ok=false, если таких точек нет.
func (d *Dataset) Bounds() (BoundingBox, bool) {
	var (
		box   BoundingBox
		found bool
	)
	for _, p := range d.points {
		if p.Coordinates.IsZero() {
			continue
		}
		if !found {
			box = BoundingBox{
				MinLat: p.Coordinates.Lat,
				MaxLat: p.Coordinates.Lat,
				MinLon: p.Coordinates.Lon,
				MaxLon: p.Coordinates.Lon,
			}
			found = true
			continue
		}
		box = box.extend(p.Coordinates)
	}
	return box, found
}
