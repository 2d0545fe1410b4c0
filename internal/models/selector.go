package models

import (
	"encoding/json"
	"slices"
)

// SelectAll - литерал селектора, выбирающего всех участников
const SelectAll = "all"

// Selector выбирает участников правила: либо всех ("all"), либо непустой явный список id.
// Нулевое значение означает "all", поэтому пустой явный список невозможен.
type Selector struct {
	ids []string
}

// AllMembers возвращает селектор "all"
func AllMembers() Selector {
	return Selector{}
}

// NewSelector строит селектор из списка id. Пустой список или наличие "all" дают "all".
func NewSelector(ids ...string) Selector {
	var out []string
	for _, id := range ids {
		if id == SelectAll {
			return Selector{}
		}
		if id == "" || slices.Contains(out, id) {
			continue
		}
		out = append(out, id)
	}
	return Selector{ids: out}
}

// IsAll сообщает, выбирает ли селектор всех участников
func (s Selector) IsAll() bool {
	return len(s.ids) == 0
}

// IDs возвращает копию явного списка (nil для "all")
func (s Selector) IDs() []string {
	if s.IsAll() {
		return nil
	}
	return slices.Clone(s.ids)
}

// Matches проверяет, попадает ли участник в селектор
func (s Selector) Matches(memberID string) bool {
	return s.IsAll() || slices.Contains(s.ids, memberID)
}

// Toggle переключает участника в селекторе.
// Выбор "all" сбрасывает явный список, выбор id сбрасывает "all",
// а снятие последнего id возвращает селектор к "all".
func (s Selector) Toggle(memberID string) Selector {
	if memberID == SelectAll || memberID == "" {
		return Selector{}
	}
	if s.IsAll() {
		return Selector{ids: []string{memberID}}
	}
	if slices.Contains(s.ids, memberID) {
		rest := slices.DeleteFunc(slices.Clone(s.ids), func(id string) bool { return id == memberID })
		if len(rest) == 0 {
			return Selector{}
		}
		return Selector{ids: rest}
	}
	return Selector{ids: append(slices.Clone(s.ids), memberID)}
}

// Values возвращает селектор в сохраняемой форме: ["all"] или список id
func (s Selector) Values() []string {
	if s.IsAll() {
		return []string{SelectAll}
	}
	return slices.Clone(s.ids)
}

func (s Selector) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

// UnmarshalJSON принимает список строк. Любая другая форма трактуется как "all",
// чтобы не отключить правило молча из-за устаревшего формата.
func (s *Selector) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		*s = Selector{}
		return nil
	}
	*s = NewSelector(ids...)
	return nil
}
