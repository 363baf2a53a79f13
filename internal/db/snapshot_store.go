package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ferohs/clashdata/internal/gamedata"
	"github.com/ferohs/clashdata/internal/model"
)

// UnitSnapshot — один юнит игрока в плоской форме для хранения.
type UnitSnapshot struct {
	Kind     string `json:"kind"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
	MaxLevel int    `json:"maxLevel"`
	Village  string `json:"village"`
	Active   bool   `json:"active,omitempty"`
}

// PlayerSnapshot — состояние профиля игрока на момент импорта.
type PlayerSnapshot struct {
	Tag      string
	Name     string
	TownHall int
	ExpLevel int
	Trophies int
	WarStars int
	ClanTag  string
	Units    []UnitSnapshot
	TakenAt  time.Time
}

// SnapshotOf разворачивает профиль игрока в форму для хранения.
func SnapshotOf(p *model.Player) PlayerSnapshot {
	s := PlayerSnapshot{
		Tag:      p.Tag,
		Name:     p.Name,
		TownHall: p.TownHall,
		ExpLevel: p.ExpLevel,
		Trophies: p.Trophies,
		WarStars: p.WarStars,
	}
	if p.Clan != nil {
		s.ClanTag = p.Clan.Tag
	}
	for _, group := range []struct {
		kind  string
		units []*gamedata.Instance
	}{
		{"troop", p.Troops},
		{"spell", p.Spells},
		{"hero", p.Heroes},
		{"pet", p.Pets},
	} {
		for _, u := range group.units {
			s.Units = append(s.Units, UnitSnapshot{
				Kind:     group.kind,
				Name:     u.Name(),
				Level:    u.Level(),
				MaxLevel: u.MaxLevel(),
				Village:  string(u.Village()),
				Active:   u.IsActive(),
			})
		}
	}
	return s
}

// SaveSnapshot сохраняет снапшот профиля.
func (d *DB) SaveSnapshot(ctx context.Context, s PlayerSnapshot) error {
	units, err := json.Marshal(s.Units)
	if err != nil {
		return fmt.Errorf("marshaling units for %q: %w", s.Tag, err)
	}
	takenAt := s.TakenAt
	if takenAt.IsZero() {
		takenAt = time.Now()
	}
	_, err = d.pool.Exec(ctx,
		`INSERT INTO player_snapshots (tag, name, town_hall, exp_level, trophies, war_stars, clan_tag, units, taken_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		s.Tag, s.Name, s.TownHall, s.ExpLevel, s.Trophies, s.WarStars, s.ClanTag, units, takenAt,
	)
	if err != nil {
		return fmt.Errorf("saving snapshot for %q: %w", s.Tag, err)
	}
	slog.Info("saved player snapshot", "tag", s.Tag, "units", len(s.Units))
	return nil
}

// LatestSnapshot возвращает последний снапшот игрока.
// Returns nil, nil если снапшотов нет.
func (d *DB) LatestSnapshot(ctx context.Context, tag string) (*PlayerSnapshot, error) {
	var s PlayerSnapshot
	var units []byte
	err := d.pool.QueryRow(ctx,
		`SELECT tag, name, town_hall, exp_level, trophies, war_stars, clan_tag, units, taken_at
		 FROM player_snapshots WHERE tag = $1
		 ORDER BY taken_at DESC LIMIT 1`, tag,
	).Scan(&s.Tag, &s.Name, &s.TownHall, &s.ExpLevel, &s.Trophies, &s.WarStars, &s.ClanTag, &units, &s.TakenAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying snapshot for %q: %w", tag, err)
	}
	if err := json.Unmarshal(units, &s.Units); err != nil {
		return nil, fmt.Errorf("unmarshaling units for %q: %w", tag, err)
	}
	return &s, nil
}

// SnapshotCount возвращает число снапшотов игрока.
func (d *DB) SnapshotCount(ctx context.Context, tag string) (int, error) {
	var n int
	err := d.pool.QueryRow(ctx,
		`SELECT count(*) FROM player_snapshots WHERE tag = $1`, tag,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting snapshots for %q: %w", tag, err)
	}
	return n, nil
}
