// Package gamedata реализует статический слой game-balance данных:
// per-level stat-серии, production-path resolution и registry шаблонов
// юнитов, поверх которых накладываются live-юниты игроков.
package gamedata

import (
	"slices"
	"time"
)

// Stat — упорядоченная серия значений одной характеристики по уровням юнита.
// Индекс 1 соответствует уровню 1. Absent (len 0), если источник не
// определяет характеристику для юнита вообще. Value type, не мутируется.
type Stat struct {
	values []int
}

// NewStat строит серию из per-level опциональных значений.
// Если все значения nil — серия absent, а не серия нулей.
func NewStat(values []*int) Stat {
	defined := false
	for _, v := range values {
		if v != nil {
			defined = true
			break
		}
	}
	if !defined {
		return Stat{}
	}
	out := make([]int, len(values))
	for i, v := range values {
		if v != nil {
			out[i] = *v
		}
	}
	return Stat{values: out}
}

// statOf оборачивает уже вычисленные значения (например, corrected
// laboratory-серию) без копирования. Вызывающий код отдаёт владение слайсом.
func statOf(values []int) Stat {
	return Stat{values: values}
}

// IsAbsent reports whether the source defined no usable values.
func (s Stat) IsAbsent() bool { return len(s.values) == 0 }

// Len возвращает число уровней, для которых серия определена.
func (s Stat) Len() int { return len(s.values) }

// At возвращает значение для уровня (1-indexed).
// Уровень вне [1, Len] — OutOfRangeError.
func (s Stat) At(level int) (int, error) {
	if level < 1 || level > len(s.values) {
		return 0, &OutOfRangeError{Level: level, Max: len(s.values)}
	}
	return s.values[level-1], nil
}

// Max возвращает значение максимального уровня (0 если серия absent).
func (s Stat) Max() int {
	if len(s.values) == 0 {
		return 0
	}
	return s.values[len(s.values)-1]
}

// Values возвращает копию значений серии.
func (s Stat) Values() []int {
	return slices.Clone(s.values)
}

// Equal — поэлементное сравнение.
func (s Stat) Equal(other Stat) bool {
	return slices.Equal(s.values, other.values)
}

// DurationStat — серия длительностей по уровням (upgrade time,
// regeneration time). Та же семантика индексации, что у Stat.
type DurationStat struct {
	values []time.Duration
}

// NewDurationStat строит серию из per-level значений в единицах unit
// (часы для UpgradeTimeH, минуты для RegenerationTimeMinutes).
// Уровни без значения пропускаются, как в исходных данных.
func NewDurationStat(values []*int, unit time.Duration) DurationStat {
	var out []time.Duration
	for _, v := range values {
		if v != nil {
			out = append(out, time.Duration(*v)*unit)
		}
	}
	return DurationStat{values: out}
}

// IsAbsent reports whether the source defined no usable values.
func (s DurationStat) IsAbsent() bool { return len(s.values) == 0 }

// Len возвращает число уровней, для которых серия определена.
func (s DurationStat) Len() int { return len(s.values) }

// At возвращает длительность для уровня (1-indexed).
func (s DurationStat) At(level int) (time.Duration, error) {
	if level < 1 || level > len(s.values) {
		return 0, &OutOfRangeError{Level: level, Max: len(s.values)}
	}
	return s.values[level-1], nil
}

// Equal — поэлементное сравнение.
func (s DurationStat) Equal(other DurationStat) bool {
	return slices.Equal(s.values, other.values)
}
