package service

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/shenikar/igloo_sync/internal/bus"
	"github.com/shenikar/igloo_sync/internal/geo"
	"github.com/shenikar/igloo_sync/internal/models"
	"github.com/shenikar/igloo_sync/internal/position"
	"github.com/shenikar/igloo_sync/internal/webhook"
	"github.com/sirupsen/logrus"
)

// Значения по умолчанию для нового правила
const (
	DefaultRuleName    = "BUBBLE"
	DefaultRuleRadius  = 100.0
	DefaultRuleMessage = "ARRIVED"

	minFamilyCodeLength = 4
	reportTimeLayout    = "15:04"
)

// StartTracking перезапускает отслеживание позиции. Подписка на датчик живет
// столько же, сколько сервис, а не запрос, который ее инициировал.
func (s *syncService) StartTracking(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sync",
		"method":  "StartTracking",
	})

	s.mu.Lock()
	runCtx := s.runCtx
	running := s.cancel != nil
	s.mu.Unlock()

	if !running {
		return ErrNotRunning
	}

	if err := s.tracker.Start(runCtx); err != nil {
		log.WithError(err).Warn("Failed to start position tracking")
		if position.KindOf(err) == position.Unsupported {
			return fmt.Errorf("%w: %v", ErrSensorUnsupported, err)
		}
		return fmt.Errorf("service: could not start tracking: %w", err)
	}

	log.Info("Position tracking started")
	return nil
}

func (s *syncService) StopTracking(ctx context.Context) {
	s.tracker.Stop()
	s.logger.WithField("service", "sync").Info("Position tracking stopped")
}

func (s *syncService) TrackingStatus() position.Status {
	return s.tracker.Status()
}

// SubmitFix передает позицию, полученную от устройства, в датчик
func (s *syncService) SubmitFix(ctx context.Context, fix position.Fix) error {
	if s.sensor == nil {
		return ErrSensorUnsupported
	}
	if err := s.sensor.Push(fix); err != nil {
		return fmt.Errorf("service: could not accept fix: %w", err)
	}
	return nil
}

// ReportSensorError передает сбой датчика, о котором сообщило устройство
func (s *syncService) ReportSensorError(ctx context.Context, kind position.ErrorKind) error {
	if s.sensor == nil {
		return ErrSensorUnsupported
	}
	if err := s.sensor.Fail(kind); err != nil {
		return fmt.Errorf("service: could not report sensor error: %w", err)
	}
	return nil
}

func (s *syncService) Family() models.GroupState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.groupStateLocked()
}

func (s *syncService) Members() []models.Member {
	return s.directory.All()
}

func (s *syncService) Member(id string) (models.Member, error) {
	return s.directory.Get(id)
}

func (s *syncService) Reports() []models.ActivityReport {
	return s.reports.All()
}

// Broadcast отправляет ручной отчет локального участника всей семье
func (s *syncService) Broadcast(ctx context.Context, kind models.ReportKind) (models.ActivityReport, error) {
	if !kind.Valid() || kind == models.ReportAutomation {
		return models.ActivityReport{}, fmt.Errorf("%w: %q", ErrInvalidReportKind, kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	me := s.directory.Self()
	report := models.ActivityReport{
		ID:              s.newID(),
		SenderID:        me.ID,
		SenderName:      me.Name,
		Type:            kind,
		Timestamp:       s.now().Format(reportTimeLayout),
		TargetMemberIDs: models.AllMembers().Values(),
	}
	if kind == models.ReportLocation && me.HasPosition() {
		report.MapLink = geo.MapLink(s.cfg.MapLinkBase, me.Latitude, me.Longitude)
	}

	s.appendReportLocked(ctx, report, webhook.SourceLocal)
	s.publish(ctx, bus.NewStatusUpdate(s.toWireReport(report)))
	s.persistReportsLocked(ctx)

	s.logger.WithFields(logrus.Fields{
		"service":   "sync",
		"method":    "Broadcast",
		"report_id": report.ID,
		"kind":      kind,
	}).Info("Report broadcast")
	return report, nil
}

func (s *syncService) Automations() []models.GeofenceRule {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rules == nil {
		return []models.GeofenceRule{}
	}
	return slices.Clone(s.rules)
}

// AddAutomation создает правило с новым id и рассылает обновленный набор правил
func (s *syncService) AddAutomation(ctx context.Context, rule models.GeofenceRule) (models.GeofenceRule, error) {
	if rule.RadiusMeters < 0 {
		return models.GeofenceRule{}, fmt.Errorf("%w: negative radius", ErrInvalidRule)
	}

	rule.ID = s.newID()
	rule.Enabled = true
	if strings.TrimSpace(rule.Name) == "" {
		rule.Name = DefaultRuleName
	}
	if rule.RadiusMeters == 0 {
		rule.RadiusMeters = DefaultRuleRadius
	}
	if strings.TrimSpace(rule.Message) == "" {
		rule.Message = DefaultRuleMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.rules = append(slices.Clone(s.rules), rule)
	s.rulesChangedLocked(ctx)

	s.logger.WithFields(logrus.Fields{
		"service": "sync",
		"method":  "AddAutomation",
		"rule_id": rule.ID,
	}).Info("Automation created")
	return rule, nil
}

// ToggleAutomation включает или выключает правило. Выключение сбрасывает
// состояние INSIDE, поэтому повторное включение срабатывает на следующем входе.
func (s *syncService) ToggleAutomation(ctx context.Context, id string) (models.GeofenceRule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.ruleIndexLocked(id)
	if i < 0 {
		return models.GeofenceRule{}, fmt.Errorf("%w: %s", ErrRuleNotFound, id)
	}

	rules := slices.Clone(s.rules)
	rules[i].Enabled = !rules[i].Enabled
	if !rules[i].Enabled {
		s.evaluator.Forget(id)
	}
	s.rules = rules
	s.rulesChangedLocked(ctx)
	return rules[i], nil
}

// ToggleAutomationMember переключает участника в селекторе триггеров или получателей
func (s *syncService) ToggleAutomationMember(ctx context.Context, id string, target models.SelectorTarget, memberID string) (models.GeofenceRule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.ruleIndexLocked(id)
	if i < 0 {
		return models.GeofenceRule{}, fmt.Errorf("%w: %s", ErrRuleNotFound, id)
	}
	if memberID != models.SelectAll {
		if _, err := s.directory.Get(memberID); err != nil {
			return models.GeofenceRule{}, err
		}
	}

	rules := slices.Clone(s.rules)
	switch target {
	case models.TargetTrigger:
		rules[i].TriggerMemberIDs = rules[i].TriggerMemberIDs.Toggle(memberID)
	case models.TargetReceiver:
		rules[i].ReceiverMemberIDs = rules[i].ReceiverMemberIDs.Toggle(memberID)
	default:
		return models.GeofenceRule{}, fmt.Errorf("%w: unknown selector %q", ErrInvalidRule, target)
	}
	s.rules = rules
	s.rulesChangedLocked(ctx)
	return rules[i], nil
}

func (s *syncService) DeleteAutomation(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.ruleIndexLocked(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrRuleNotFound, id)
	}

	s.rules = slices.Delete(slices.Clone(s.rules), i, i+1)
	s.evaluator.Forget(id)
	s.rulesChangedLocked(ctx)

	s.logger.WithFields(logrus.Fields{
		"service": "sync",
		"method":  "DeleteAutomation",
		"rule_id": id,
	}).Info("Automation deleted")
	return nil
}

func (s *syncService) ruleIndexLocked(id string) int {
	return slices.IndexFunc(s.rules, func(r models.GeofenceRule) bool { return r.ID == id })
}

func (s *syncService) rulesChangedLocked(ctx context.Context) {
	s.publish(ctx, bus.NewAutomationsUpdate(s.toWireRules(s.rules)))
	s.persistStateLocked(ctx)
}

// CreateFamily создает новую семью со случайным кодом и переходит в ее канал
func (s *syncService) CreateFamily(ctx context.Context) (string, error) {
	code := s.newFamilyCode()
	if err := s.switchFamily(ctx, code); err != nil {
		return "", err
	}
	return code, nil
}

// JoinFamily переходит в канал семьи по коду приглашения
func (s *syncService) JoinFamily(ctx context.Context, code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) < minFamilyCodeLength {
		return fmt.Errorf("%w: code must be at least %d characters", ErrInvalidFamilyCode, minFamilyCodeLength)
	}
	return s.switchFamily(ctx, code)
}

func (s *syncService) switchFamily(ctx context.Context, familyID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "sync",
		"method":    "switchFamily",
		"family_id": familyID,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.familyID
	s.familyID = familyID

	if s.cancel != nil {
		if err := s.unsubscribeLocked(); err != nil {
			log.WithError(err).Warn("Failed to close previous subscription")
		}
		if err := s.subscribeLocked(s.runCtx); err != nil {
			log.WithError(err).Error("Failed to subscribe to family channel")
			s.familyID = previous
			if err := s.subscribeLocked(s.runCtx); err != nil {
				log.WithError(err).Error("Failed to restore previous subscription")
			}
			return fmt.Errorf("service: could not join family %s: %w", familyID, err)
		}
		s.publish(ctx, bus.NewMemberJoined(s.toWireMember(s.directory.Self())))
	}

	s.persistStateLocked(ctx)
	log.WithField("previous_family_id", previous).Info("Family switched")
	return nil
}

// UpdateProfile меняет имя и иконку локального участника и рассылает MEMBER_UPDATED
func (s *syncService) UpdateProfile(ctx context.Context, name, icon string) (models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	me := s.directory.UpdateSelf(strings.TrimSpace(name), strings.TrimSpace(icon))
	s.publish(ctx, bus.NewMemberUpdated(s.toWireMember(me)))
	s.persistStateLocked(ctx)
	return me, nil
}

func (s *syncService) Palette(ctx context.Context) (json.RawMessage, error) {
	palette, err := s.repo.LoadPalette(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not load palette: %w", err)
	}
	return palette, nil
}

func (s *syncService) SetPalette(ctx context.Context, palette json.RawMessage) error {
	if err := s.repo.SavePalette(ctx, palette); err != nil {
		return fmt.Errorf("service: could not save palette: %w", err)
	}
	return nil
}

// GetStats возвращает число участников с позицией за окно статистики
func (s *syncService) GetStats(ctx context.Context) (int, error) {
	count, err := s.repo.CountActiveMembers(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		s.logger.WithError(err).WithField("service", "sync").Error("Failed to get stats")
		return 0, fmt.Errorf("service: could not get stats: %w", err)
	}
	return count, nil
}
