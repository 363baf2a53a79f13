package model

import (
	"encoding/json"
	"fmt"

	"github.com/ferohs/clashdata/internal/gamedata"
)

// Player — профиль игрока из ответа API. Списки юнитов материализованы
// через registries: каждый элемент — Instance поверх общего шаблона,
// в порядке исходного ответа.
type Player struct {
	Tag  string
	Name string

	TownHall       int
	TownHallWeapon int
	BuilderHall    int
	ExpLevel       int
	Trophies       int
	BestTrophies   int
	WarStars       int
	AttackWins     int
	DefenseWins    int

	Clan *PlayerClan

	Troops []*gamedata.Instance
	Spells []*gamedata.Instance
	Heroes []*gamedata.Instance
	Pets   []*gamedata.Instance
}

// rawPlayer — JSON-форма профиля игрока.
type rawPlayer struct {
	Tag            string              `json:"tag"`
	Name           string              `json:"name"`
	TownHall       int                 `json:"townHallLevel"`
	TownHallWeapon int                 `json:"townHallWeaponLevel"`
	BuilderHall    int                 `json:"builderHallLevel"`
	ExpLevel       int                 `json:"expLevel"`
	Trophies       int                 `json:"trophies"`
	BestTrophies   int                 `json:"bestTrophies"`
	WarStars       int                 `json:"warStars"`
	AttackWins     int                 `json:"attackWins"`
	DefenseWins    int                 `json:"defenseWins"`
	Clan           *PlayerClan         `json:"clan"`
	Troops         []gamedata.UnitData `json:"troops"`
	Spells         []gamedata.UnitData `json:"spells"`
	Heroes         []gamedata.UnitData `json:"heroes"`
}

// ParsePlayer строит Player из JSON-профиля. Петы приходят внутри списка
// troops и выделяются по фиксированному списку имён. Незнакомые юниты
// материализуются без шаблона — один неизвестный юнит не роняет парс
// всего профиля.
func ParsePlayer(data []byte, gd *gamedata.Store) (*Player, error) {
	var raw rawPlayer
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding player: %w", err)
	}
	if raw.Tag == "" {
		return nil, fmt.Errorf("player has no tag")
	}

	p := &Player{
		Tag:            raw.Tag,
		Name:           raw.Name,
		TownHall:       raw.TownHall,
		TownHallWeapon: raw.TownHallWeapon,
		BuilderHall:    raw.BuilderHall,
		ExpLevel:       raw.ExpLevel,
		Trophies:       raw.Trophies,
		BestTrophies:   raw.BestTrophies,
		WarStars:       raw.WarStars,
		AttackWins:     raw.AttackWins,
		DefenseWins:    raw.DefenseWins,
		Clan:           raw.Clan,
	}

	for _, u := range raw.Troops {
		if gamedata.IsPetName(u.Name) {
			p.Pets = append(p.Pets, gd.Pets.Materialize(u, nil))
			continue
		}
		p.Troops = append(p.Troops, gd.Troops.Materialize(u, nil))
	}
	for _, u := range raw.Spells {
		p.Spells = append(p.Spells, gd.Spells.Materialize(u, nil))
	}
	for _, u := range raw.Heroes {
		p.Heroes = append(p.Heroes, gd.Heroes.Materialize(u, nil))
	}

	return p, nil
}

// HomeTroops возвращает юниты домашней деревни в порядке ответа API.
func (p *Player) HomeTroops() []*gamedata.Instance {
	var out []*gamedata.Instance
	for _, t := range p.Troops {
		if t.IsHomeBase() {
			out = append(out, t)
		}
	}
	return out
}

// BuilderTroops возвращает юниты builder base в порядке ответа API.
func (p *Player) BuilderTroops() []*gamedata.Instance {
	var out []*gamedata.Instance
	for _, t := range p.Troops {
		if t.IsBuilderBase() {
			out = append(out, t)
		}
	}
	return out
}

// SuperTroops возвращает активированные super troops игрока.
func (p *Player) SuperTroops() []*gamedata.Instance {
	var out []*gamedata.Instance
	for _, t := range p.Troops {
		if t.IsActive() {
			out = append(out, t)
		}
	}
	return out
}

// GetTroop возвращает юнит по имени, как оно пришло в ответе API, или nil.
func (p *Player) GetTroop(name string) *gamedata.Instance {
	for _, t := range p.Troops {
		if t.Name() == name {
			return t
		}
	}
	return nil
}

func (p *Player) String() string {
	return fmt.Sprintf("<Player tag=%s name=%s>", p.Tag, p.Name)
}
