package reporter

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/loadmatrix/driverd/internal/config"
	"github.com/loadmatrix/driverd/internal/geoloc"
	"github.com/loadmatrix/driverd/internal/models"
)

// ErrAlreadyRunning возвращается при попытке запустить второй цикл отправки.
// На одну смонтированную сессию допустим ровно один таймер.
var ErrAlreadyRunning = errors.New("reporter: already running")

// Locator определяет контракт одиночного запроса позиции
type Locator interface {
	Current(ctx context.Context, opts geoloc.ProbeOptions) (*models.LocationSample, error)
}

// Pusher определяет контракт доставки координат на backend
type Pusher interface {
	PushLocation(ctx context.Context, lat, lng float64) error
}

// Reporter периодически снимает позицию устройства и отправляет ее на backend,
// пока шлюз допуска открыт. Потеря разрешения эскалируется через onPermissionLost,
// остальные сбои пробы и все сетевые сбои отправки поглощаются.
type Reporter struct {
	cfg     *config.Config
	locator Locator
	pusher  Pusher
	logger  *logrus.Logger

	// onPermissionLost вызывается из цикла после его остановки,
	// когда периодическая проба вернула отказ в разрешении
	onPermissionLost func(err error)

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
	current *models.LocationSample
}

// New создает репортер; цикл запускается отдельным вызовом Start
func New(cfg *config.Config, locator Locator, pusher Pusher, logger *logrus.Logger, onPermissionLost func(err error)) *Reporter {
	return &Reporter{
		cfg:              cfg,
		locator:          locator,
		pusher:           pusher,
		logger:           logger,
		onPermissionLost: onPermissionLost,
	}
}

// Start запускает цикл отправки. Переданная шлюзом позиция отправляется
// сразу, без повторной пробы. Повторный Start при работающем цикле запрещен.
func (r *Reporter) Start(ctx context.Context, initial *models.LocationSample) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return ErrAlreadyRunning
	}

	r.running = true
	r.stopCh = make(chan struct{})
	r.doneCh = make(chan struct{})
	r.current = initial

	go r.loop(ctx, r.stopCh, r.doneCh, initial)

	r.logger.WithField("component", "reporter").Info("Location reporting started")
	return nil
}

// Stop останавливает цикл и дожидается его завершения. Идемпотентен.
// После возврата ни одной новой отправки не произойдет.
func (r *Reporter) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	close(r.stopCh)
	done := r.doneCh
	r.mu.Unlock()

	<-done
	r.logger.WithField("component", "reporter").Info("Location reporting stopped")
}

// Current возвращает последнее известное измерение позиции
func (r *Reporter) Current() *models.LocationSample {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// PushNow выполняет ручную отправку "обновить сейчас": использует последнее
// известное измерение, а при его отсутствии делает одну разовую пробу.
// Периодический таймер не трогает.
func (r *Reporter) PushNow(ctx context.Context) (*models.LocationSample, error) {
	sample := r.Current()
	if sample == nil {
		var err error
		sample, err = r.locator.Current(ctx, r.periodicProbeOptions())
		if err != nil {
			return nil, fmt.Errorf("reporter: manual probe failed: %w", err)
		}
		r.setCurrent(sample)
	}

	if err := r.pusher.PushLocation(ctx, sample.Lat, sample.Lng); err != nil {
		return nil, fmt.Errorf("reporter: manual push failed: %w", err)
	}
	return sample, nil
}

func (r *Reporter) setCurrent(sample *models.LocationSample) {
	r.mu.Lock()
	r.current = sample
	r.mu.Unlock()
}

// detach помечает цикл остановленным изнутри самого цикла,
// чтобы последующий Stop не ждал уже мертвую горутину
func (r *Reporter) detach(stopCh chan struct{}) {
	r.mu.Lock()
	if r.stopCh == stopCh {
		r.running = false
	}
	r.mu.Unlock()
}

func (r *Reporter) periodicProbeOptions() geoloc.ProbeOptions {
	return geoloc.ProbeOptions{
		HighAccuracy: true,
		Timeout:      r.cfg.PeriodicProbeTimeout,
		MaxFixAge:    r.cfg.PeriodicMaxFixAge,
	}
}

func (r *Reporter) loop(ctx context.Context, stopCh, doneCh chan struct{}, initial *models.LocationSample) {
	defer close(doneCh)

	log := r.logger.WithField("component", "reporter")

	if initial != nil {
		r.push(ctx, initial)
	}

	ticker := time.NewTicker(r.cfg.ReportInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Session context cancelled, stopping location reporting")
			r.detach(stopCh)
			return
		case <-stopCh:
			return
		case <-ticker.C:
			sample, err := r.locator.Current(ctx, r.periodicProbeOptions())
			if err != nil {
				if geoloc.IsPermissionDenied(err) {
					// Потеря разрешения посреди смены: цикл гасит себя
					// и эскалирует наверх, шлюз снова покажет модальное окно
					log.WithError(err).Warn("Location permission lost, revoking online session")
					r.detach(stopCh)
					if r.onPermissionLost != nil {
						r.onPermissionLost(err)
					}
					return
				}
				// Недоступность позиции и таймауты переживаем до следующего тика
				log.WithError(err).Debug("Periodic probe failed, skipping tick")
				continue
			}

			r.setCurrent(sample)
			r.push(ctx, sample)
		}
	}
}

// push отправляет координаты в режиме fire-and-forget: сетевой сбой
// логируется и поглощается, потеря одного пинга не снимает водителя с линии
func (r *Reporter) push(ctx context.Context, sample *models.LocationSample) {
	if err := r.pusher.PushLocation(ctx, sample.Lat, sample.Lng); err != nil {
		r.logger.WithField("component", "reporter").WithError(err).Warn("Failed to push location, will retry on next tick")
	}
}
