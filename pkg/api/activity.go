// Package api содержит wire-типы upstream fitness API.
// Описаны только поля, которые реально читает routesync.
package api

import "time"

// MapBounds прямоугольник трека в ответе /activity/{id}/map.
// Каждая точка передается как пара [lat, lng].
type MapBounds struct {
	NE []float64 `json:"ne"` // северо-восточный угол
	SW []float64 `json:"sw"` // юго-западный угол
}

// MapResponse ответ GET /api/v1/activity/{id}/map
type MapResponse struct {
	Bounds *MapBounds `json:"bounds,omitempty"`
	// Latlngs пары [lat, lng]; пропуски GPS приходят как null
	Latlngs [][]float64 `json:"latlngs"`
}

// Pairs возвращает только полные пары координат, null и обрезанные элементы отбрасываются.
func (r *MapResponse) Pairs() [][2]float64 {
	if r == nil {
		return nil
	}
	out := make([][2]float64, 0, len(r.Latlngs))
	for _, ll := range r.Latlngs {
		if len(ll) < 2 {
			continue
		}
		out = append(out, [2]float64{ll[0], ll[1]})
	}
	return out
}

// Activity элемент ответа GET /api/v1/athlete/{id}/activities
type Activity struct {
	FTP                *int     `json:"icu_ftp,omitempty"`
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Type               string   `json:"type"`
	StartDateLocal     string   `json:"start_date_local"`
	StreamTypes        []string `json:"stream_types,omitempty"`
	Distance           float64  `json:"distance"`
	TotalElevationGain float64  `json:"total_elevation_gain"`
	MovingTime         int64    `json:"moving_time"`
}

// activityDateLayout формат start_date_local (локальное время без зоны)
const activityDateLayout = "2006-01-02T15:04:05"

// StartTime разбирает StartDateLocal. Значение без зоны трактуется как UTC.
func (a Activity) StartTime() (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, a.StartDateLocal); err == nil {
		return t, nil
	}
	return time.Parse(activityDateLayout, a.StartDateLocal)
}

// HasGPS сообщает, есть ли у активности поток координат.
// Пустой список stream_types означает, что сервер его не прислал, и активность не отбрасывается.
func (a Activity) HasGPS() bool {
	if len(a.StreamTypes) == 0 {
		return true
	}
	for _, s := range a.StreamTypes {
		if s == "latlng" {
			return true
		}
	}
	return false
}
