package sync

import "github.com/iudanet/routesync/internal/models"

// FlatBuffer координаты пачки активностей в одном срезе.
// Coords содержит пары lat,lng подряд; Offsets[i] индекс первой пары
// активности i. Длина последней активности выводится из len(Coords).
type FlatBuffer struct {
	IDs        []string
	Coords     []float64
	Offsets    []int
	SportTypes []string
}

// NewFlatBuffer собирает буфер в порядке traces
func NewFlatBuffer(traces []models.ActivityTrace) *FlatBuffer {
	total := 0
	for _, t := range traces {
		total += len(t.Points)
	}

	b := &FlatBuffer{
		IDs:        make([]string, 0, len(traces)),
		Coords:     make([]float64, 0, total*2),
		Offsets:    make([]int, 0, len(traces)),
		SportTypes: make([]string, 0, len(traces)),
	}
	for _, t := range traces {
		if len(t.Points) == 0 {
			// пустой трек нарушил бы строгое возрастание offsets
			continue
		}
		b.IDs = append(b.IDs, t.ID)
		b.Offsets = append(b.Offsets, len(b.Coords)/2)
		b.SportTypes = append(b.SportTypes, t.SportType)
		for _, p := range t.Points {
			b.Coords = append(b.Coords, p.Lat, p.Lng)
		}
	}
	return b
}

// Len количество активностей
func (b *FlatBuffer) Len() int {
	return len(b.IDs)
}

// PointCount число точек активности i
func (b *FlatBuffer) PointCount(i int) int {
	end := len(b.Coords) / 2
	if i+1 < len(b.Offsets) {
		end = b.Offsets[i+1]
	}
	return end - b.Offsets[i]
}

// Points точки активности i
func (b *FlatBuffer) Points(i int) models.Polyline {
	start := b.Offsets[i]
	n := b.PointCount(i)
	out := make(models.Polyline, 0, n)
	for j := start; j < start+n; j++ {
		out = append(out, models.RoutePoint{Lat: b.Coords[2*j], Lng: b.Coords[2*j+1]})
	}
	return out
}
