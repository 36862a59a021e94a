package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/loadmatrix/driverd/internal/backend"
	"github.com/loadmatrix/driverd/internal/config"
	"github.com/loadmatrix/driverd/internal/consent"
	"github.com/loadmatrix/driverd/internal/gate"
	"github.com/loadmatrix/driverd/internal/geoloc"
	"github.com/loadmatrix/driverd/internal/models"
	"github.com/loadmatrix/driverd/internal/reporter"
)

// ErrNoSession возвращается операциями, требующими смонтированной панели
var ErrNoSession = errors.New("session: dashboard is not mounted")

// ErrNotOnline возвращается операциями, доступными только при открытом шлюзе
var ErrNotOnline = errors.New("session: driver is not online")

// Status - снимок состояния смонтированной сессии для UI-оболочки
type Status struct {
	SessionID uuid.UUID              `json:"session_id"`
	UserID    string                 `json:"user_id"`
	State     models.GateState       `json:"state"`
	Modal     *models.Notice         `json:"modal,omitempty"`
	Toasts    []models.Notice        `json:"toasts,omitempty"`
	Location  *models.LocationSample `json:"location,omitempty"`
}

// activeSession - ресурсы одной смонтированной панели водителя.
// Шлюз и репортер принадлежат сессии и умирают вместе с ней.
type activeSession struct {
	id     uuid.UUID
	userID string
	ctx    context.Context
	cancel context.CancelFunc
	gate   *gate.Gate
	rep    *reporter.Reporter
}

// Controller владеет жизненным циклом панели водителя: в каждый момент
// смонтирована максимум одна сессия, и размонтирование детерминированно
// освобождает ее таймер отправки координат.
type Controller struct {
	cfg     *config.Config
	store   consent.Store
	locator geoloc.Provider // nil означает отсутствие геолокации на устройстве
	api     *backend.Client
	logger  *logrus.Logger

	mu   sync.Mutex
	sess *activeSession
}

// NewController создает контроллер жизненного цикла панели
func NewController(cfg *config.Config, store consent.Store, locator geoloc.Provider, api *backend.Client, logger *logrus.Logger) *Controller {
	return &Controller{
		cfg:     cfg,
		store:   store,
		locator: locator,
		api:     api,
		logger:  logger,
	}
}

// Mount монтирует панель для пользователя и прогоняет шлюз допуска.
// Повторный Mount сначала размонтирует предыдущую сессию.
func (c *Controller) Mount(userID string) (Status, error) {
	if userID == "" {
		return Status{}, fmt.Errorf("session: user id is required")
	}

	ctx, cancel := context.WithCancel(context.Background())

	// Репортер эскалирует потерю разрешения обратно в шлюз этой же сессии
	var g *gate.Gate
	rep := reporter.New(c.cfg, c.locator, c.api, c.logger, func(err error) {
		g.Revoke(err)
	})
	g = gate.New(c.cfg, c.store, c.locator, rep, c.logger)

	sess := &activeSession{
		id:     uuid.New(),
		userID: userID,
		ctx:    ctx,
		cancel: cancel,
		gate:   g,
		rep:    rep,
	}

	c.mu.Lock()
	prev := c.sess
	c.sess = sess
	c.mu.Unlock()

	// Повторный Mount сначала размонтирует предыдущую сессию
	if prev != nil {
		c.teardown(prev)
	}

	c.logger.WithFields(logrus.Fields{
		"component":  "session",
		"session_id": sess.id,
		"user_id":    userID,
	}).Info("Driver dashboard mounted")

	// Проба может занять до FirstProbeTimeout; размонтирование во время
	// пробы безопасно - поздний результат шлюз отбросит сам
	g.Mount(ctx, userID)
	return c.Status()
}

// Unmount размонтирует панель: гасит шлюз и таймер, отменяет контекст
// сессии и в лучшем случае снимает водителя с линии на backend
func (c *Controller) Unmount() error {
	c.mu.Lock()
	sess := c.sess
	c.sess = nil
	c.mu.Unlock()

	if sess == nil {
		return ErrNoSession
	}
	c.teardown(sess)
	return nil
}

func (c *Controller) teardown(sess *activeSession) {
	sess.gate.Close()
	sess.cancel()

	offlineCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := c.api.GoOffline(offlineCtx); err != nil {
		// Снятие с линии - любезность по отношению к диспетчеризации,
		// неудача не мешает размонтированию
		c.logger.WithField("component", "session").WithError(err).Warn("Failed to mark driver offline on backend")
	}

	c.logger.WithFields(logrus.Fields{
		"component":  "session",
		"session_id": sess.id,
		"user_id":    sess.userID,
	}).Info("Driver dashboard unmounted")
}

// Status возвращает снимок состояния текущей сессии
func (c *Controller) Status() (Status, error) {
	c.mu.Lock()
	sess := c.sess
	c.mu.Unlock()

	if sess == nil {
		return Status{}, ErrNoSession
	}

	state, modal, toasts := sess.gate.Snapshot()
	return Status{
		SessionID: sess.id,
		UserID:    sess.userID,
		State:     state,
		Modal:     modal,
		Toasts:    toasts,
		Location:  sess.rep.Current(),
	}, nil
}

// State возвращает текущее состояние шлюза без побочных эффектов
// (в отличие от Status не очищает накопленные тосты)
func (c *Controller) State() (models.GateState, error) {
	c.mu.Lock()
	sess := c.sess
	c.mu.Unlock()

	if sess == nil {
		return "", ErrNoSession
	}
	return sess.gate.State(), nil
}

// Retry - повтор пробы из блокирующего модального окна
func (c *Controller) Retry(ctx context.Context) (models.GateState, error) {
	c.mu.Lock()
	sess := c.sess
	c.mu.Unlock()

	if sess == nil {
		return "", ErrNoSession
	}
	// Пробу привязываем к контексту сессии, а не HTTP-запроса:
	// успех должен запустить репортер на время жизни сессии
	return sess.gate.Retry(sess.ctx), nil
}

// RefreshLocation - ручное действие "обновить позицию сейчас"
func (c *Controller) RefreshLocation(ctx context.Context) (*models.LocationSample, error) {
	c.mu.Lock()
	sess := c.sess
	c.mu.Unlock()

	if sess == nil {
		return nil, ErrNoSession
	}
	// Пока шлюз закрыт, отправлять координаты нельзя: backend посчитал бы
	// водителя снова на линии, хотя шлюз только что его заблокировал
	if sess.gate.State() != models.GateOpen {
		return nil, ErrNotOnline
	}
	return sess.rep.PushNow(ctx)
}
