package service

import (
	"github.com/shenikar/igloo_sync/internal/models"
)

// Локальный участник называется "me" только внутри инстанса.
// В канал синхронизации уходит его глобальный id (MEMBER_ID), а входящий
// глобальный id этого инстанса снова становится "me".

func (s *syncService) toWireID(id string) string {
	if id == models.SelfID {
		return s.cfg.MemberID
	}
	return id
}

func (s *syncService) fromWireID(id string) string {
	if id == s.cfg.MemberID {
		return models.SelfID
	}
	return id
}

func mapIDs(ids []string, fn func(string) string) []string {
	if ids == nil {
		return nil
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		if id == models.SelectAll {
			out[i] = id
			continue
		}
		out[i] = fn(id)
	}
	return out
}

func mapSelector(sel models.Selector, fn func(string) string) models.Selector {
	if sel.IsAll() {
		return models.AllMembers()
	}
	return models.NewSelector(mapIDs(sel.IDs(), fn)...)
}

func (s *syncService) toWireMember(m models.Member) models.Member {
	m.ID = s.toWireID(m.ID)
	return m
}

func (s *syncService) fromWireMember(m models.Member) models.Member {
	m.ID = s.fromWireID(m.ID)
	return m
}

func (s *syncService) toWireReport(r models.ActivityReport) models.ActivityReport {
	r.SenderID = s.toWireID(r.SenderID)
	r.TargetMemberIDs = mapIDs(r.TargetMemberIDs, s.toWireID)
	return r
}

func (s *syncService) fromWireReport(r models.ActivityReport) models.ActivityReport {
	r.SenderID = s.fromWireID(r.SenderID)
	r.TargetMemberIDs = mapIDs(r.TargetMemberIDs, s.fromWireID)
	return r
}

func (s *syncService) toWireRules(rules []models.GeofenceRule) []models.GeofenceRule {
	out := make([]models.GeofenceRule, len(rules))
	for i, rule := range rules {
		rule.TriggerMemberIDs = mapSelector(rule.TriggerMemberIDs, s.toWireID)
		rule.ReceiverMemberIDs = mapSelector(rule.ReceiverMemberIDs, s.toWireID)
		out[i] = rule
	}
	return out
}

func (s *syncService) fromWireRules(rules []models.GeofenceRule) []models.GeofenceRule {
	out := make([]models.GeofenceRule, len(rules))
	for i, rule := range rules {
		rule.TriggerMemberIDs = mapSelector(rule.TriggerMemberIDs, s.fromWireID)
		rule.ReceiverMemberIDs = mapSelector(rule.ReceiverMemberIDs, s.fromWireID)
		out[i] = rule
	}
	return out
}
