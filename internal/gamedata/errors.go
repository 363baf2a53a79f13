package gamedata

import (
	"errors"
	"fmt"
)

// ErrNoTemplate возвращается stat-аксессорами Instance, если юнит был
// материализован без известного шаблона и без fallback.
var ErrNoTemplate = errors.New("unit has no template")

// errSkipUnit — запись не может быть построена (неизвестное production
// building) и не должна попасть в registry.
var errSkipUnit = errors.New("unit not derivable")

// LoadError — малформленный статический файл. Fatal для всей загрузки.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// OutOfRangeError — запрос уровня вне определённого диапазона серии.
// Recoverable: сигнализирует о рассинхроне live-данных игрока и шаблона.
type OutOfRangeError struct {
	Level int
	Max   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("level %d outside defined range [1, %d]", e.Level, e.Max)
}

// AmbiguousUnlockError — обратный lab↔townhall lookup нашёл не ровно один
// laboratory level для требуемого town hall. Fatal для одного юнита,
// загрузка остальных продолжается.
type AmbiguousUnlockError struct {
	Unit     string
	TownHall int
	Matches  []int
}

func (e *AmbiguousUnlockError) Error() string {
	return fmt.Sprintf("unit %q: %d laboratory levels map to town hall %d, want exactly one",
		e.Unit, len(e.Matches), e.TownHall)
}
