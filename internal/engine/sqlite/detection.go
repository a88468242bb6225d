package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/routesync/internal/engine"
	"github.com/iudanet/routesync/internal/geo"
	"github.com/iudanet/routesync/internal/models"
	"github.com/iudanet/routesync/internal/signature"
)

// RouteGroup активности, прошедшие один и тот же маршрут
type RouteGroup struct {
	ID          string
	ActivityIDs []string
}

// StartSectionDetection запускает группировку маршрутов в фоне.
// Если поиск уже идет, повторный вызов ничего не делает.
func (e *Engine) StartSectionDetection(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status == engine.StatusRunning {
		return nil
	}
	if err := e.ctx.Err(); err != nil {
		return fmt.Errorf("engine closed: %w", err)
	}

	e.status = engine.StatusRunning
	e.lastErr = nil
	e.lastRunID = uuid.NewString()

	runID := e.lastRunID
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		e.detect(runID)
	}()

	return nil
}

// PollSectionDetection возвращает состояние поиска.
// complete и error сообщаются один раз, после чего движок снова idle.
func (e *Engine) PollSectionDetection(ctx context.Context) (engine.DetectionStatus, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	status := e.status
	if status == engine.StatusComplete || status == engine.StatusError {
		e.status = engine.StatusIdle
	}
	return status, nil
}

// LastError ошибка последнего неуспешного поиска
func (e *Engine) LastError() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastErr
}

func (e *Engine) detect(runID string) {
	started := time.Now()
	groups, err := e.buildGroups(e.ctx)
	if err == nil {
		err = e.saveGroups(e.ctx, groups)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err != nil {
		e.status = engine.StatusError
		e.lastErr = err
		e.logger.Error("Section detection failed", "run_id", runID, "error", err)
		return
	}

	e.status = engine.StatusComplete
	e.logger.Info("Section detection complete",
		"run_id", runID,
		"groups", len(groups),
		"duration", time.Since(started))
}

// matchPoints число точек трека, по которым считается перекрытие
const matchPoints = 100

// route сигнатура и прореженный исходный трек активности
type route struct {
	sig    *models.RouteSignature
	points models.Polyline
}

// buildGroups объединяет активности, у которых совпадают регионы старта/финиша
// и взаимное перекрытие не ниже groupingThreshold
func (e *Engine) buildGroups(ctx context.Context) ([][]string, error) {
	routes, err := e.loadRoutes(ctx)
	if err != nil {
		return nil, err
	}

	uf := newUnionFind(len(routes))
	for i := 0; i < len(routes); i++ {
		for j := i + 1; j < len(routes); j++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if uf.find(i) == uf.find(j) {
				continue
			}
			if e.sameRoute(routes[i], routes[j]) {
				uf.union(i, j)
			}
		}
	}

	byRoot := make(map[int][]string)
	for i, r := range routes {
		root := uf.find(i)
		byRoot[root] = append(byRoot[root], r.sig.ActivityID)
	}

	groups := make([][]string, 0, len(byRoot))
	for _, ids := range byRoot {
		// одиночные активности группой не считаются
		if len(ids) < 2 {
			continue
		}
		sort.Strings(ids)
		groups = append(groups, ids)
	}
	sort.Slice(groups, func(a, b int) bool { return groups[a][0] < groups[b][0] })
	return groups, nil
}

// loadRoutes читает сигнатуры вместе с треками. Перекрытие считается по
// равномерно прореженному треку: упрощенная сигнатура прямого участка
// состоит из двух точек и для сравнения не годится.
func (e *Engine) loadRoutes(ctx context.Context) ([]route, error) {
	rows, err := e.db.QueryContext(ctx, `
		SELECT a.signature, t.coords
		FROM activities a
		JOIN tracks t ON t.activity_id = a.id
		ORDER BY a.id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query routes: %w", err)
	}
	defer rows.Close()

	var out []route
	for rows.Next() {
		var (
			raw  string
			blob []byte
		)
		if err := rows.Scan(&raw, &blob); err != nil {
			return nil, fmt.Errorf("failed to scan route: %w", err)
		}
		var sig models.RouteSignature
		if err := json.Unmarshal([]byte(raw), &sig); err != nil {
			return nil, fmt.Errorf("failed to decode signature: %w", err)
		}
		out = append(out, route{
			sig:    &sig,
			points: signature.Downsample(unflatten(decodeCoords(blob)), matchPoints),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return out, nil
}

func (e *Engine) sameRoute(a, b route) bool {
	if !signature.Candidates(a.sig, b.sig) {
		return false
	}
	return geo.Overlap(a.points, b.points, e.overlapMeters) >= e.groupingThreshold &&
		geo.Overlap(b.points, a.points, e.overlapMeters) >= e.groupingThreshold
}

func (e *Engine) saveGroups(ctx context.Context, groups [][]string) error {
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM route_groups`); err != nil {
		return fmt.Errorf("failed to clear route groups: %w", err)
	}

	now := time.Now().Unix()
	for _, ids := range groups {
		groupID := uuid.NewString()
		for _, id := range ids {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO route_groups (group_id, activity_id, created_at) VALUES (?, ?, ?)`,
				groupID, id, now)
			if err != nil {
				return fmt.Errorf("failed to insert route group: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit route groups: %w", err)
	}
	return nil
}

// Groups возвращает результат последнего поиска
func (e *Engine) Groups(ctx context.Context) ([]RouteGroup, error) {
	rows, err := e.db.QueryContext(ctx,
		`SELECT group_id, activity_id FROM route_groups ORDER BY group_id, activity_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query route groups: %w", err)
	}
	defer rows.Close()

	var (
		out   []RouteGroup
		index = make(map[string]int)
	)
	for rows.Next() {
		var groupID, activityID string
		if err := rows.Scan(&groupID, &activityID); err != nil {
			return nil, fmt.Errorf("failed to scan route group: %w", err)
		}
		i, ok := index[groupID]
		if !ok {
			i = len(out)
			index[groupID] = i
			out = append(out, RouteGroup{ID: groupID})
		}
		out[i].ActivityIDs = append(out[i].ActivityIDs, activityID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return out, nil
}

// unionFind с сжатием путей и объединением по рангу
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	switch {
	case u.rank[ra] < u.rank[rb]:
		u.parent[ra] = rb
	case u.rank[ra] > u.rank[rb]:
		u.parent[rb] = ra
	default:
		u.parent[rb] = ra
		u.rank[ra]++
	}
}
