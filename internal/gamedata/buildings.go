package gamedata

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// BuildingTable — таблица разблокировки производственных зданий:
// building → уровень здания → требуемый town hall.
type BuildingTable map[string]map[int]int

// ParseBuildings декодирует buildings-файл в BuildingTable.
// Рядом с level-блоками в записях встречаются скалярные поля,
// разбираются только числовые ключи.
func ParseBuildings(data []byte) (BuildingTable, error) {
	var raw map[string]map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{File: "buildings", Err: err}
	}

	table := make(BuildingTable, len(raw))
	for building, fields := range raw {
		byLevel := make(map[int]int, len(fields))
		for key, msg := range fields {
			level, err := strconv.Atoi(key)
			if err != nil {
				continue
			}
			var block struct {
				TownHallLevel int `json:"TownHallLevel"`
			}
			if err := json.Unmarshal(msg, &block); err != nil {
				return nil, &LoadError{
					File: "buildings",
					Err:  fmt.Errorf("%s level %s: %w", building, key, err),
				}
			}
			byLevel[level] = block.TownHallLevel
		}
		table[building] = byLevel
	}
	return table, nil
}

// TownHallFor возвращает town hall, требуемый для уровня здания.
func (t BuildingTable) TownHallFor(building string, level int) (int, bool) {
	levels, ok := t[building]
	if !ok {
		return 0, false
	}
	th, ok := levels[level]
	return th, ok
}
