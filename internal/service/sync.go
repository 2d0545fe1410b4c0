package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/igloo_sync/internal/activity"
	"github.com/shenikar/igloo_sync/internal/bus"
	"github.com/shenikar/igloo_sync/internal/config"
	"github.com/shenikar/igloo_sync/internal/directory"
	"github.com/shenikar/igloo_sync/internal/geofence"
	"github.com/shenikar/igloo_sync/internal/models"
	"github.com/shenikar/igloo_sync/internal/position"
	"github.com/shenikar/igloo_sync/internal/webhook"
	"github.com/sirupsen/logrus"
)

const inboundBufferSize = 64

var (
	ErrMemberNotFound    = directory.ErrMemberNotFound
	ErrRuleNotFound      = errors.New("automation rule not found")
	ErrInvalidRule       = errors.New("invalid automation rule")
	ErrInvalidFamilyCode = errors.New("invalid family code")
	ErrInvalidReportKind = errors.New("invalid report kind")
	ErrSensorUnsupported = errors.New("positioning is not supported")
	ErrNotRunning        = errors.New("sync service is not running")
	ErrAlreadyRunning    = errors.New("sync service is already running")
)

//go:generate mockgen -source=sync.go -destination=mocks/mock_sync.go -package=mocks

// StateRepository определяет контракт для сохранения состояния инстанса
type StateRepository interface {
	LoadGroupState(ctx context.Context) (*models.GroupState, error)
	SaveGroupState(ctx context.Context, state *models.GroupState) error
	LoadReports(ctx context.Context) ([]models.ActivityReport, error)
	SaveReports(ctx context.Context, reports []models.ActivityReport) error
	LoadPalette(ctx context.Context) (json.RawMessage, error)
	SavePalette(ctx context.Context, palette json.RawMessage) error
	SaveSighting(ctx context.Context, sighting *models.Sighting) error
	CountActiveMembers(ctx context.Context, minutes int) (int, error)
	GetGroupStateFromCache(ctx context.Context) (*models.GroupState, error)
	SetGroupStateCache(ctx context.Context, state *models.GroupState) error
	InvalidateGroupStateCache(ctx context.Context) error
}

// FixReceiver принимает позиции и ошибки датчика от устройства
type FixReceiver interface {
	Push(fix position.Fix) error
	Fail(kind position.ErrorKind) error
}

// SyncService определяет контракт движка синхронизации присутствия и геозон
type SyncService interface {
	Start(ctx context.Context) error
	Close() error

	StartTracking(ctx context.Context) error
	StopTracking(ctx context.Context)
	TrackingStatus() position.Status
	SubmitFix(ctx context.Context, fix position.Fix) error
	ReportSensorError(ctx context.Context, kind position.ErrorKind) error

	Family() models.GroupState
	Members() []models.Member
	Member(id string) (models.Member, error)
	Reports() []models.ActivityReport
	Broadcast(ctx context.Context, kind models.ReportKind) (models.ActivityReport, error)

	Automations() []models.GeofenceRule
	AddAutomation(ctx context.Context, rule models.GeofenceRule) (models.GeofenceRule, error)
	ToggleAutomation(ctx context.Context, id string) (models.GeofenceRule, error)
	ToggleAutomationMember(ctx context.Context, id string, target models.SelectorTarget, memberID string) (models.GeofenceRule, error)
	DeleteAutomation(ctx context.Context, id string) error

	CreateFamily(ctx context.Context) (string, error)
	JoinFamily(ctx context.Context, code string) error
	UpdateProfile(ctx context.Context, name, icon string) (models.Member, error)

	Palette(ctx context.Context) (json.RawMessage, error)
	SetPalette(ctx context.Context, palette json.RawMessage) error
	GetStats(ctx context.Context) (int, error)
}

type subscription struct {
	sub  bus.Subscription
	stop chan struct{}
	done chan struct{}
}

type syncService struct {
	repo     StateRepository
	bus      bus.Bus
	tracker  *position.Tracker
	sensor   FixReceiver
	webhooks webhook.WebhookPublisher
	logger   *logrus.Logger
	cfg      *config.Config

	directory *directory.Directory
	reports   *activity.Log
	evaluator *geofence.Evaluator

	// mu сериализует все изменения: события трекера и шины, а также команды
	mu         sync.Mutex
	familyID   string
	familyName string
	rules      []models.GeofenceRule
	sub        *subscription
	inbound    chan bus.Message
	runCtx     context.Context
	cancel     context.CancelFunc
	loopDone   chan struct{}

	now           func() time.Time
	newID         func() string
	newFamilyCode func() string
}

// NewSyncService создает движок синхронизации. sensor и webhookPublisher могут быть nil.
func NewSyncService(
	repo StateRepository,
	syncBus bus.Bus,
	tracker *position.Tracker,
	sensor FixReceiver,
	webhookPublisher webhook.WebhookPublisher,
	logger *logrus.Logger,
	cfg *config.Config,
) SyncService {
	return newSyncService(repo, syncBus, tracker, sensor, webhookPublisher, logger, cfg, time.Now, uuid.NewString)
}

func newSyncService(
	repo StateRepository,
	syncBus bus.Bus,
	tracker *position.Tracker,
	sensor FixReceiver,
	webhookPublisher webhook.WebhookPublisher,
	logger *logrus.Logger,
	cfg *config.Config,
	now func() time.Time,
	newID func() string,
) *syncService {
	return &syncService{
		repo:     repo,
		bus:      syncBus,
		tracker:  tracker,
		sensor:   sensor,
		webhooks: webhookPublisher,
		logger:   logger,
		cfg:      cfg,

		directory: directory.New(cfg.MemberName),
		reports:   activity.NewLog(cfg.ActivityLogCapacity),
		evaluator: geofence.NewEvaluator(logger,
			geofence.WithClock(now),
			geofence.WithIDGenerator(newID),
			geofence.WithMapLinkBase(cfg.MapLinkBase),
		),

		familyID:   cfg.FamilyID,
		familyName: cfg.FamilyName,
		inbound:    make(chan bus.Message, inboundBufferSize),

		now:           now,
		newID:         newID,
		newFamilyCode: randomFamilyCode,
	}
}

// Start загружает сохраненное состояние, подписывается на канал семьи,
// запускает отслеживание позиции и цикл обработки событий.
// Ошибка подписки фатальна: без нее синхронизация с пирами невозможна.
func (s *syncService) Start(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sync",
		"method":  "Start",
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return ErrAlreadyRunning
	}

	s.loadLocked(ctx)

	runCtx, cancel := context.WithCancel(ctx)
	if err := s.subscribeLocked(runCtx); err != nil {
		cancel()
		log.WithError(err).Error("Failed to subscribe to sync bus")
		return fmt.Errorf("service: could not subscribe to sync bus: %w", err)
	}
	s.runCtx = runCtx
	s.cancel = cancel
	s.loopDone = make(chan struct{})

	s.publish(runCtx, bus.NewMemberJoined(s.toWireMember(s.directory.Self())))

	// Ошибка датчика - это состояние, а не фатальная ошибка
	if err := s.tracker.Start(runCtx); err != nil {
		log.WithError(err).Warn("Position tracking is unavailable")
	}

	go s.loop(runCtx, s.loopDone)

	log.WithFields(logrus.Fields{
		"family_id": s.familyID,
		"member_id": s.cfg.MemberID,
	}).Info("Sync service started")
	return nil
}

// Close останавливает цикл событий и детерминированно освобождает
// подписку на датчик и на канал синхронизации
func (s *syncService) Close() error {
	s.mu.Lock()
	cancel, done := s.cancel, s.loopDone
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}

	cancel()
	<-done
	s.tracker.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.unsubscribeLocked()
	s.persistLocked(context.Background())
	s.logger.WithField("service", "sync").Info("Sync service stopped")
	return err
}

func (s *syncService) loop(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			return
		case r := <-s.tracker.Readings():
			s.HandleReading(ctx, r)
		case m := <-s.inbound:
			s.HandleMessage(ctx, m)
		}
	}
}

func (s *syncService) subscribeLocked(ctx context.Context) error {
	topic := bus.Topic(s.cfg.BusChannelPrefix, s.familyID)
	sub, err := s.bus.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	s.sub = &subscription{
		sub:  sub,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go s.forward(s.sub)

	s.logger.WithField("topic", topic).Debug("Subscribed to sync bus")
	return nil
}

func (s *syncService) unsubscribeLocked() error {
	if s.sub == nil {
		return nil
	}
	close(s.sub.stop)
	err := s.sub.sub.Close()
	<-s.sub.done
	s.sub = nil
	return err
}

func (s *syncService) forward(sub *subscription) {
	defer close(sub.done)

	for {
		select {
		case <-sub.stop:
			return
		case m, ok := <-sub.sub.Messages():
			if !ok {
				return
			}
			select {
			case s.inbound <- m:
			case <-sub.stop:
				return
			}
		}
	}
}

func (s *syncService) topic() string {
	return bus.Topic(s.cfg.BusChannelPrefix, s.familyID)
}

// publish отправляет сообщение в канал семьи. Ошибки только логируются:
// доставка at-most-once, повторов нет.
func (s *syncService) publish(ctx context.Context, msg bus.Message) {
	if err := s.bus.Publish(ctx, s.topic(), msg); err != nil {
		s.logger.WithError(err).WithField("type", msg.Type).Warn("Failed to publish sync message")
	}
}

func (s *syncService) notify(ctx context.Context, report models.ActivityReport, source webhook.Source) {
	if s.webhooks == nil {
		return
	}
	event := webhook.WebhookEvent{
		FamilyID:  s.familyID,
		Source:    source,
		Report:    report,
		Timestamp: s.now(),
	}
	if err := s.webhooks.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithField("report_id", report.ID).Warn("Failed to enqueue notification")
	}
}

var snowWords = []string{"SNOWY", "ARCTIC", "PENGUIN", "FROSTY", "GLACIAL", "BLIZZARD", "CHILLY", "TUNDRA", "ICE", "POLAR"}

// randomFamilyCode генерирует код семьи вида WORD-1234
func randomFamilyCode() string {
	word := snowWords[rand.IntN(len(snowWords))]
	num := 1000 + rand.IntN(8999)
	return fmt.Sprintf("%s-%d", word, num)
}
