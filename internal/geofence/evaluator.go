package geofence

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/igloo_sync/internal/geo"
	"github.com/shenikar/igloo_sync/internal/models"
	"github.com/sirupsen/logrus"
)

// timestampLayout - формат метки времени отчета (часы:минуты)
const timestampLayout = "15:04"

type membershipKey struct {
	ruleID   string
	memberID string
}

// Evaluator отслеживает, внутри каких зон находится отслеживаемый участник,
// и срабатывает только на переходе OUTSIDE -> INSIDE.
// Состояние локально для инстанса и не синхронизируется.
type Evaluator struct {
	inside      map[membershipKey]struct{}
	mapLinkBase string
	logger      *logrus.Logger
	now         func() time.Time
	newID       func() string
}

// Option настраивает Evaluator
type Option func(*Evaluator)

// WithClock подменяет источник времени
func WithClock(now func() time.Time) Option {
	return func(e *Evaluator) { e.now = now }
}

// WithIDGenerator подменяет генератор id отчетов
func WithIDGenerator(newID func() string) Option {
	return func(e *Evaluator) { e.newID = newID }
}

// WithMapLinkBase задает базу ссылки на карту
func WithMapLinkBase(base string) Option {
	return func(e *Evaluator) { e.mapLinkBase = base }
}

// NewEvaluator создает Evaluator, у которого все зоны в состоянии OUTSIDE
func NewEvaluator(logger *logrus.Logger, opts ...Option) *Evaluator {
	e := &Evaluator{
		inside:      make(map[membershipKey]struct{}),
		mapLinkBase: geo.DefaultMapLinkBase,
		logger:      logger,
		now:         time.Now,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate пересчитывает принадлежность участника ко всем правилам по новому фиксу
// и возвращает по одному отчету на каждый вход в зону.
// Зоны, которых больше нет или которые выключены, переводятся в OUTSIDE.
func (e *Evaluator) Evaluate(member models.Member, lat, lng float64, rules []models.GeofenceRule) []models.ActivityReport {
	log := e.logger.WithFields(logrus.Fields{
		"component": "geofence",
		"method":    "Evaluate",
		"member_id": member.ID,
	})

	present := make(map[string]struct{}, len(rules))
	var entered []models.ActivityReport

	for _, rule := range rules {
		present[rule.ID] = struct{}{}
		key := membershipKey{ruleID: rule.ID, memberID: member.ID}
		_, wasInside := e.inside[key]

		isInside := rule.Enabled &&
			rule.TriggerMemberIDs.Matches(member.ID) &&
			geo.DistanceMeters(lat, lng, rule.Latitude, rule.Longitude) <= rule.RadiusMeters

		switch {
		case isInside && !wasInside:
			e.inside[key] = struct{}{}
			entered = append(entered, e.entryReport(member, rule))
			log.WithField("rule_id", rule.ID).Info("Member entered geofence")
		case !isInside && wasInside:
			delete(e.inside, key)
			log.WithField("rule_id", rule.ID).Debug("Member left geofence, rule re-armed")
		}
	}

	for key := range e.inside {
		if key.memberID != member.ID {
			continue
		}
		if _, ok := present[key.ruleID]; !ok {
			delete(e.inside, key)
		}
	}

	return entered
}

// Inside сообщает, считается ли участник находящимся внутри зоны
func (e *Evaluator) Inside(ruleID, memberID string) bool {
	_, ok := e.inside[membershipKey{ruleID: ruleID, memberID: memberID}]
	return ok
}

// Forget сбрасывает состояние зоны для всех участников (правило удалено или выключено)
func (e *Evaluator) Forget(ruleID string) {
	for key := range e.inside {
		if key.ruleID == ruleID {
			delete(e.inside, key)
		}
	}
}

// Reset переводит все зоны в OUTSIDE
func (e *Evaluator) Reset() {
	clear(e.inside)
}

func (e *Evaluator) entryReport(member models.Member, rule models.GeofenceRule) models.ActivityReport {
	return models.ActivityReport{
		ID:              e.newID(),
		SenderID:        member.ID,
		SenderName:      member.Name,
		Type:            models.ReportAutomation,
		Timestamp:       e.now().Format(timestampLayout),
		MapLink:         geo.MapLink(e.mapLinkBase, rule.Latitude, rule.Longitude),
		TargetMemberIDs: rule.ReceiverMemberIDs.Values(),
		Message:         fmt.Sprintf("%s ENTERED %s", member.Name, rule.Name),
	}
}
