package directory

import (
	"errors"
	"fmt"
	"sync"

	"github.com/shenikar/igloo_sync/internal/models"
)

const (
	// JustNow - метка свежести для только что полученной позиции пира
	JustNow = "Just now"
	// Waiting - метка свежести локального участника до первого фикса
	Waiting = "Waiting..."

	defaultColor = "#38bdf8"
	defaultIcon  = "Penguin"
)

var (
	ErrMemberNotFound  = errors.New("member not found")
	ErrInvalidMemberID = errors.New("invalid member id")
)

// Directory - авторитетная in-memory запись всех известных участников.
// Каждое изменение - точечный upsert по id, поэтому обновления разных
// участников коммутируют.
type Directory struct {
	mu      sync.RWMutex
	members []models.Member
	index   map[string]int
}

// New создает справочник с локальным участником "me"
func New(selfName string) *Directory {
	if selfName == "" {
		selfName = "YOU"
	}
	d := &Directory{index: make(map[string]int)}
	d.put(models.Member{
		ID:          models.SelfID,
		Name:        selfName,
		Role:        "Admin",
		LastSeen:    Waiting,
		Status:      models.StatusOffline,
		AvatarColor: defaultColor,
		AvatarIcon:  defaultIcon,
	})
	return d
}

// ApplySelfFix обновляет координаты локального участника
func (d *Directory) ApplySelfFix(lat, lng float64) models.Member {
	d.mu.Lock()
	defer d.mu.Unlock()

	m := &d.members[d.index[models.SelfID]]
	m.Latitude = lat
	m.Longitude = lng
	m.Status = models.StatusHome
	return *m
}

// ApplyPeerUpdate обновляет или добавляет участника по позиции, пришедшей от пира
func (d *Directory) ApplyPeerUpdate(memberID string, lat, lng float64) (models.Member, error) {
	if err := validatePeerID(memberID); err != nil {
		return models.Member{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	i, ok := d.index[memberID]
	if !ok {
		i = d.put(newPeer(memberID))
	}
	m := &d.members[i]
	m.Latitude = lat
	m.Longitude = lng
	m.LastSeen = JustNow
	m.Status = models.StatusHome
	return *m, nil
}

// Upsert заменяет запись пира целиком (MEMBER_JOINED / MEMBER_UPDATED)
func (d *Directory) Upsert(member models.Member) error {
	if err := validatePeerID(member.ID); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if i, ok := d.index[member.ID]; ok {
		d.members[i] = member
		return nil
	}
	d.put(member)
	return nil
}

// UpdateSelf меняет профиль локального участника
func (d *Directory) UpdateSelf(name, icon string) models.Member {
	d.mu.Lock()
	defer d.mu.Unlock()

	m := &d.members[d.index[models.SelfID]]
	if name != "" {
		m.Name = name
	}
	if icon != "" {
		m.AvatarIcon = icon
	}
	return *m
}

// Get возвращает участника по id
func (d *Directory) Get(memberID string) (models.Member, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	i, ok := d.index[memberID]
	if !ok {
		return models.Member{}, fmt.Errorf("%w: %s", ErrMemberNotFound, memberID)
	}
	return d.members[i], nil
}

// Self возвращает локального участника
func (d *Directory) Self() models.Member {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.members[d.index[models.SelfID]]
}

// All возвращает копию всех участников в порядке появления
func (d *Directory) All() []models.Member {
	d.mu.RLock()
	defer d.mu.RUnlock()

	result := make([]models.Member, len(d.members))
	copy(result, d.members)
	return result
}

// Restore загружает сохраненных участников. Запись "me" из сохранения
// заменяет засеянную, остальные добавляются как пиры.
func (d *Directory) Restore(members []models.Member) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, m := range members {
		if m.ID == "" {
			continue
		}
		if i, ok := d.index[m.ID]; ok {
			d.members[i] = m
			continue
		}
		d.put(m)
	}
}

func (d *Directory) put(m models.Member) int {
	d.members = append(d.members, m)
	i := len(d.members) - 1
	d.index[m.ID] = i
	return i
}

func newPeer(id string) models.Member {
	name := id
	if len(name) > 8 {
		name = name[:8]
	}
	return models.Member{
		ID:          id,
		Name:        name,
		Role:        "Member",
		AvatarColor: defaultColor,
		AvatarIcon:  defaultIcon,
	}
}

func validatePeerID(id string) error {
	if id == "" || id == models.SelfID {
		return fmt.Errorf("%w: %q", ErrInvalidMemberID, id)
	}
	return nil
}
