package service

import (
	"context"

	"github.com/shenikar/igloo_sync/internal/bus"
	"github.com/shenikar/igloo_sync/internal/models"
	"github.com/shenikar/igloo_sync/internal/position"
	"github.com/shenikar/igloo_sync/internal/webhook"
	"github.com/sirupsen/logrus"
)

// HandleReading обрабатывает одно показание датчика локального участника
func (s *syncService) HandleReading(ctx context.Context, r position.Reading) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.Err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "sync",
			"kind":    position.KindOf(r.Err),
		}).WithError(r.Err).Warn("Position sensor error")
		return
	}

	fix := r.Fix
	me := s.directory.ApplySelfFix(fix.Latitude, fix.Longitude)
	s.publish(ctx, bus.NewLocationUpdate(s.cfg.MemberID, fix.Latitude, fix.Longitude))
	s.recordSighting(ctx, me.ID, fix.Latitude, fix.Longitude, models.SightingSelf)

	entered := s.evaluator.Evaluate(me, fix.Latitude, fix.Longitude, s.rules)
	for _, report := range entered {
		s.appendReportLocked(ctx, report, webhook.SourceLocal)
		s.publish(ctx, bus.NewStatusUpdate(s.toWireReport(report)))
	}

	// Позиции сохраняются в member_sightings; снимок семьи пишется при
	// изменении участников, правил или семьи и при остановке сервиса.
	if len(entered) > 0 {
		s.persistReportsLocked(ctx)
	}
}

// HandleMessage применяет входящее сообщение пира
func (s *syncService) HandleMessage(ctx context.Context, msg bus.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.logger.WithFields(logrus.Fields{
		"service": "sync",
		"type":    msg.Type,
		"origin":  msg.Origin,
	})

	switch msg.Type {
	case bus.LocationUpdate:
		id := s.fromWireID(msg.MemberID)
		if id == models.SelfID {
			log.WithField("member_id", msg.MemberID).Warn("Ignoring location update addressed to the local member")
			return
		}
		if _, err := s.directory.ApplyPeerUpdate(id, msg.Latitude, msg.Longitude); err != nil {
			log.WithError(err).Warn("Failed to apply peer location")
			return
		}
		s.recordSighting(ctx, id, msg.Latitude, msg.Longitude, models.SightingPeer)

	case bus.MemberJoined, bus.MemberUpdated:
		if msg.Member == nil {
			log.Warn("Ignoring member message without member")
			return
		}
		member := s.fromWireMember(*msg.Member)
		if err := s.directory.Upsert(member); err != nil {
			log.WithError(err).Warn("Failed to upsert peer member")
			return
		}
		s.persistStateLocked(ctx)

	case bus.AutomationsUpdate:
		s.replaceRulesLocked(s.fromWireRules(msg.Automations))
		s.persistStateLocked(ctx)

	case bus.StatusUpdate:
		if msg.Report == nil {
			log.Warn("Ignoring status update without report")
			return
		}
		s.appendReportLocked(ctx, s.fromWireReport(*msg.Report), webhook.SourcePeer)
		s.persistReportsLocked(ctx)

	default:
		log.Warn("Ignoring unknown sync message")
	}
}

func (s *syncService) appendReportLocked(ctx context.Context, report models.ActivityReport, source webhook.Source) {
	s.reports.Append(report)
	s.notify(ctx, report, source)
}

// replaceRulesLocked заменяет набор правил целиком; удаленные правила
// забываются вычислителем, чтобы повторное создание с тем же id сработало заново.
func (s *syncService) replaceRulesLocked(rules []models.GeofenceRule) {
	keep := make(map[string]struct{}, len(rules))
	for _, rule := range rules {
		keep[rule.ID] = struct{}{}
	}
	for _, rule := range s.rules {
		if _, ok := keep[rule.ID]; !ok {
			s.evaluator.Forget(rule.ID)
		}
	}
	s.rules = rules
}
