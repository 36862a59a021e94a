package gate

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/loadmatrix/driverd/internal/config"
	"github.com/loadmatrix/driverd/internal/geoloc"
	"github.com/loadmatrix/driverd/internal/models"
)

// ConsentStore определяет контракт кеша согласий для шлюза
type ConsentStore interface {
	Get(ctx context.Context, userID string) (*models.ConsentRecord, error)
	Set(ctx context.Context, record *models.ConsentRecord) error
	Delete(ctx context.Context, userID string) error
}

// Locator определяет контракт одиночного запроса позиции
type Locator interface {
	Current(ctx context.Context, opts geoloc.ProbeOptions) (*models.LocationSample, error)
}

// ReporterControl определяет контракт управления циклом отправки координат
type ReporterControl interface {
	Start(ctx context.Context, initial *models.LocationSample) error
	Stop()
}

// Gate - шлюз допуска водителя к работе. По кешу согласий и живой пробе
// позиции решает, можно ли показать водителю операционные данные, и владеет
// переходами checking -> open | blocked_needs_consent. Любой переход в
// blocked_needs_consent останавливает цикл отправки координат.
type Gate struct {
	cfg      *config.Config
	store    ConsentStore
	locator  Locator // nil означает отсутствие геолокации на устройстве
	reporter ReporterControl
	logger   *logrus.Logger

	mu     sync.Mutex
	state  models.GateState
	userID string
	modal  *models.Notice
	toasts []models.Notice
	// gen защищает от поздних результатов проб после Close или Revoke
	gen    int
	closed bool
}

// New создает шлюз; locator может быть nil, если на устройстве нет геолокации
func New(cfg *config.Config, store ConsentStore, locator Locator, reporter ReporterControl, logger *logrus.Logger) *Gate {
	return &Gate{
		cfg:      cfg,
		store:    store,
		locator:  locator,
		reporter: reporter,
		logger:   logger,
		state:    models.GateChecking,
	}
}

// Mount выполняет контракт монтирования панели водителя: проверяет
// возможности устройства, кеш согласий и делает одну пробу позиции.
// ctx должен жить все время сессии - он передается в цикл отправки.
func (g *Gate) Mount(ctx context.Context, userID string) models.GateState {
	log := g.logger.WithFields(logrus.Fields{
		"component": "gate",
		"method":    "Mount",
		"user_id":   userID,
	})
	log.Info("Mounting driver dashboard gate")

	g.mu.Lock()
	g.userID = userID
	g.state = models.GateChecking
	g.modal = nil
	g.toasts = nil
	gen := g.gen
	g.mu.Unlock()

	// Без геолокации на устройстве повтор пробы бессмыслен
	if g.locator == nil {
		log.Error("Geolocation capability is absent on this device")
		g.block(gen, fatalModal())
		return g.State()
	}

	record, err := g.store.Get(ctx, userID)
	if err != nil {
		// Недоступный кеш равносилен его отсутствию: пойдем полной пробой
		log.WithError(err).Warn("Failed to read consent cache, treating as absent")
		record = nil
	}

	if record != nil && record.Status == models.ConsentGranted && record.Age(time.Now()) < g.cfg.ConsentTTL {
		g.silentPath(ctx, gen, record, log)
	} else {
		g.fullPath(ctx, gen, log)
	}
	return g.State()
}

// Retry - повтор из блокирующего модального окна. Выполняет ту же
// одиночную полную пробу, что и первая попытка. Легален только в
// состоянии blocked_needs_consent и бесполезен при фатальной ошибке.
func (g *Gate) Retry(ctx context.Context) models.GateState {
	g.mu.Lock()
	if g.closed || g.state != models.GateBlockedNeedConsent {
		state := g.state
		g.mu.Unlock()
		return state
	}
	if g.modal != nil && g.modal.Code == models.NoticeCapabilityAbsent {
		state := g.state
		g.mu.Unlock()
		return state
	}
	gen := g.gen
	userID := g.userID
	g.mu.Unlock()

	log := g.logger.WithFields(logrus.Fields{
		"component": "gate",
		"method":    "Retry",
		"user_id":   userID,
	})
	log.Info("Retrying location permission probe")

	g.fullPath(ctx, gen, log)
	return g.State()
}

// Revoke вызывается репортером при потере разрешения посреди смены:
// кеш согласия стирается, шлюз снова закрывается модальным окном.
func (g *Gate) Revoke(cause error) {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	g.gen++ // результаты проб в полете устаревают
	g.state = models.GateBlockedNeedConsent
	modal := probeModal(geoloc.NewProbeError(geoloc.CodePermissionDenied, cause))
	g.modal = &modal
	userID := g.userID
	g.mu.Unlock()

	g.reporter.Stop()

	log := g.logger.WithFields(logrus.Fields{
		"component": "gate",
		"method":    "Revoke",
		"user_id":   userID,
	})
	log.WithError(cause).Warn("Location permission revoked mid-session, dashboard blocked")

	deleteCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := g.store.Delete(deleteCtx, userID); err != nil {
		log.WithError(err).Warn("Failed to erase consent cache on revoke")
	}
}

// Close обрывает жизненный цикл шлюза при размонтировании панели.
// Поздние результаты проб после Close игнорируются.
func (g *Gate) Close() {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	g.closed = true
	g.gen++
	g.mu.Unlock()

	g.reporter.Stop()
}

// State возвращает текущее состояние шлюза
func (g *Gate) State() models.GateState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Snapshot возвращает состояние, активное модальное окно и накопленные
// тосты. Тосты отдаются один раз и очищаются при чтении.
func (g *Gate) Snapshot() (models.GateState, *models.Notice, []models.Notice) {
	g.mu.Lock()
	defer g.mu.Unlock()
	toasts := g.toasts
	g.toasts = nil
	return g.state, g.modal, toasts
}

// silentPath - тихая проба по действующему согласию: короткий таймаут,
// допускается закешированное измерение до SilentMaxFixAge
func (g *Gate) silentPath(ctx context.Context, gen int, record *models.ConsentRecord, log *logrus.Entry) {
	sample, err := g.locator.Current(ctx, geoloc.ProbeOptions{
		HighAccuracy: false,
		Timeout:      g.cfg.SilentProbeTimeout,
		MaxFixAge:    g.cfg.SilentMaxFixAge,
	})
	if err != nil {
		// Любой сбой тихой пробы, включая отзыв разрешения, стирает кеш:
		// пользователь оказывается в положении нового
		log.WithError(err).Warn("Silent probe failed, erasing consent cache")
		if derr := g.store.Delete(ctx, record.UserID); derr != nil {
			log.WithError(derr).Warn("Failed to erase consent cache")
		}
		g.block(gen, probeModal(err))
		return
	}

	var toasts []models.Notice
	// Тост "сессия возобновлена" только для согласий старше порога;
	// ровно на границе тост не показывается
	if record.Age(time.Now()) > g.cfg.ResumeNoticeAfter {
		toasts = append(toasts, resumedToast())
	}

	log.Info("Silent probe succeeded, opening gate")
	g.open(ctx, gen, sample, toasts)
}

// fullPath - полная проба для пользователя без действующего согласия:
// длинный таймаут, закешированные измерения не принимаются
func (g *Gate) fullPath(ctx context.Context, gen int, log *logrus.Entry) {
	g.mu.Lock()
	userID := g.userID
	g.mu.Unlock()

	sample, err := g.locator.Current(ctx, geoloc.ProbeOptions{
		HighAccuracy: false,
		Timeout:      g.cfg.FirstProbeTimeout,
		MaxFixAge:    0,
	})
	now := time.Now()
	if err != nil {
		log.WithError(err).Warn("Full probe failed, dashboard blocked")
		// Запись denied пишется в лучшем случае: она лишь спасает
		// от мгновенного повторного запроса при перемонтировании
		if !errors.Is(err, geoloc.ErrCapabilityAbsent) {
			if serr := g.store.Set(ctx, &models.ConsentRecord{
				UserID:    userID,
				Status:    models.ConsentDenied,
				GrantedAt: now,
			}); serr != nil {
				log.WithError(serr).Warn("Failed to cache denied consent")
			}
		}
		g.block(gen, probeModal(err))
		return
	}

	if serr := g.store.Set(ctx, &models.ConsentRecord{
		UserID:    userID,
		Status:    models.ConsentGranted,
		GrantedAt: now,
	}); serr != nil {
		log.WithError(serr).Warn("Failed to cache granted consent")
	}

	log.Info("Full probe succeeded, opening gate")
	g.open(ctx, gen, sample, []models.Notice{grantedToast()})
}

// open переводит шлюз в open и запускает цикл отправки с полученной
// пробой, без повторного измерения
func (g *Gate) open(ctx context.Context, gen int, sample *models.LocationSample, toasts []models.Notice) {
	g.mu.Lock()
	if g.closed || g.gen != gen {
		// Поздний результат пробы после размонтирования или отзыва
		g.mu.Unlock()
		return
	}
	g.state = models.GateOpen
	g.modal = nil
	g.toasts = append(g.toasts, toasts...)
	g.mu.Unlock()

	if err := g.reporter.Start(ctx, sample); err != nil {
		// Нарушение инварианта "один таймер на сессию"
		g.logger.WithField("component", "gate").WithError(err).Error("Failed to start location reporter")
	}
}

// block переводит шлюз в blocked_needs_consent и гасит цикл отправки
func (g *Gate) block(gen int, modal models.Notice) {
	g.mu.Lock()
	if g.closed || g.gen != gen {
		g.mu.Unlock()
		return
	}
	g.state = models.GateBlockedNeedConsent
	g.modal = &modal
	g.mu.Unlock()

	g.reporter.Stop()
}

func fatalModal() models.Notice {
	return models.Notice{
		Kind:      models.NoticeModal,
		Code:      models.NoticeCapabilityAbsent,
		Message:   "This device does not support location services. Going online is not possible.",
		Retryable: false,
	}
}

// probeModal мапит ошибку пробы на модальное окно с различимым сообщением
func probeModal(err error) models.Notice {
	if errors.Is(err, geoloc.ErrCapabilityAbsent) {
		return fatalModal()
	}
	switch geoloc.CodeOf(err) {
	case geoloc.CodePermissionDenied:
		return models.Notice{
			Kind:      models.NoticeModal,
			Code:      models.NoticePermissionDenied,
			Message:   "Location access is denied. Allow location for this app in your device settings, then retry.",
			Retryable: true,
		}
	case geoloc.CodeTimeout:
		return models.Notice{
			Kind:      models.NoticeModal,
			Code:      models.NoticeTimeout,
			Message:   "Timed out while acquiring your location. Check your signal and retry.",
			Retryable: true,
		}
	default:
		return models.Notice{
			Kind:      models.NoticeModal,
			Code:      models.NoticePositionUnavailable,
			Message:   "Your location is currently unavailable. Retry in a moment.",
			Retryable: true,
		}
	}
}

func grantedToast() models.Notice {
	return models.Notice{
		Kind:    models.NoticeToast,
		Code:    models.NoticeLocationOn,
		Message: "Location sharing is on. You are online.",
	}
}

func resumedToast() models.Notice {
	return models.Notice{
		Kind:    models.NoticeToast,
		Code:    models.NoticeSessionResumed,
		Message: "Welcome back. Your online session has resumed.",
	}
}
