// Package model содержит live-объекты, построенные из ответов statistics
// API: профиль игрока и его списки юнитов, наложенные на статические
// шаблоны gamedata.
package model

import "fmt"

// BadgeURLs — ссылки на изображения эмблемы клана.
type BadgeURLs struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}

// PlayerClan — клан, которому принадлежит игрок, как он приходит внутри
// профиля игрока (сокращённая форма).
type PlayerClan struct {
	Tag   string    `json:"tag"`
	Name  string    `json:"name"`
	Level int       `json:"clanLevel"`
	Badge BadgeURLs `json:"badgeUrls"`
}

func (c *PlayerClan) String() string {
	return fmt.Sprintf("<PlayerClan tag=%s name=%s>", c.Tag, c.Name)
}
