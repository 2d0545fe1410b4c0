package service

import (
	"context"
	"slices"

	"github.com/shenikar/igloo_sync/internal/models"
	"github.com/sirupsen/logrus"
)

// loadLocked восстанавливает состояние инстанса: сначала из кеша, затем из базы.
// Ошибки хранилища не фатальны, инстанс стартует с состоянием по умолчанию.
func (s *syncService) loadLocked(ctx context.Context) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sync",
		"method":  "load",
	})

	state, err := s.repo.GetGroupStateFromCache(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read group state from cache, invalidating")
		if err := s.repo.InvalidateGroupStateCache(ctx); err != nil {
			log.WithError(err).Warn("Failed to invalidate group state cache")
		}
		state = nil
	}

	if state == nil {
		state, err = s.repo.LoadGroupState(ctx)
		if err != nil {
			log.WithError(err).Warn("Failed to load group state, starting fresh")
			state = nil
		}
		if state != nil {
			if err := s.repo.SetGroupStateCache(ctx, state); err != nil {
				log.WithError(err).Warn("Failed to cache group state")
			}
		}
	}

	if state != nil {
		if state.FamilyID != "" {
			s.familyID = state.FamilyID
		}
		if state.FamilyName != "" {
			s.familyName = state.FamilyName
		}
		s.directory.Restore(state.Members)
		s.rules = slices.Clone(state.Automations)
	}

	reports, err := s.repo.LoadReports(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to load activity reports")
	} else {
		s.reports.Restore(reports)
	}

	log.WithFields(logrus.Fields{
		"family_id":   s.familyID,
		"members":     len(s.directory.All()),
		"automations": len(s.rules),
		"reports":     s.reports.Len(),
	}).Info("State loaded")
}

func (s *syncService) groupStateLocked() models.GroupState {
	rules := s.rules
	if rules == nil {
		rules = []models.GeofenceRule{}
	}
	return models.GroupState{
		FamilyID:    s.familyID,
		FamilyName:  s.familyName,
		Members:     s.directory.All(),
		Automations: slices.Clone(rules),
	}
}

func (s *syncService) persistStateLocked(ctx context.Context) {
	state := s.groupStateLocked()
	if err := s.repo.SaveGroupState(ctx, &state); err != nil {
		s.logger.WithError(err).Warn("Failed to persist group state")
	}
}

func (s *syncService) persistReportsLocked(ctx context.Context) {
	if err := s.repo.SaveReports(ctx, s.reports.All()); err != nil {
		s.logger.WithError(err).Warn("Failed to persist activity reports")
	}
}

func (s *syncService) persistLocked(ctx context.Context) {
	s.persistStateLocked(ctx)
	s.persistReportsLocked(ctx)
}

func (s *syncService) recordSighting(ctx context.Context, memberID string, lat, lng float64, source models.SightingSource) {
	sighting := &models.Sighting{
		MemberID:  s.toWireID(memberID),
		Latitude:  lat,
		Longitude: lng,
		Source:    source,
	}
	if err := s.repo.SaveSighting(ctx, sighting); err != nil {
		s.logger.WithError(err).WithField("member_id", sighting.MemberID).Warn("Failed to save sighting")
	}
}
